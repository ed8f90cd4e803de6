//go:build linux

package wimage

import (
	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// System V shared memory segment mapped into this process.
type shmSeg struct {
	id  int
	buf []byte
}

func openShmSeg(size int) (*shmSeg, error) {
	id, err := unix.SysvShmGet(unix.IPC_PRIVATE, size, unix.IPC_CREAT|0600)
	if err != nil {
		return nil, errors.Wrap(err, "shmget")
	}
	buf, err := unix.SysvShmAttach(id, 0, 0)
	if err != nil {
		_, _ = unix.SysvShmCtl(id, unix.IPC_RMID, nil)
		return nil, errors.Wrap(err, "shmat")
	}
	return &shmSeg{id: id, buf: buf}, nil
}

// Detaches and marks the segment for removal. The server detaches its own
// mapping with shm.Detach.
func (s *shmSeg) close() error {
	err := unix.SysvShmDetach(s.buf)
	_, err2 := unix.SysvShmCtl(s.id, unix.IPC_RMID, nil)
	s.buf = nil
	if err != nil {
		return errors.Wrap(err, "shmdt")
	}
	if err2 != nil {
		return errors.Wrap(err2, "shmctl")
	}
	return nil
}
