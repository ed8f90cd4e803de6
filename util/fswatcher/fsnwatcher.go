// Package fswatcher reports changes of files inside watched directories.
package fswatcher

import (
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
)

type Op uint8

const (
	Create Op = 1 << iota
	Write
	Remove
	Rename
	Chmod
)

var opNames = [...]string{"create", "write", "remove", "rename", "chmod"}

func (op Op) HasAny(op2 Op) bool { return op&op2 != 0 }

func (op Op) String() string {
	u := []string{}
	for i, n := range opNames {
		if op.HasAny(1 << i) {
			u = append(u, n)
		}
	}
	return strings.Join(u, "|")
}

func fromFsnotify(op fsnotify.Op) Op {
	var u Op
	if op.Has(fsnotify.Create) {
		u |= Create
	}
	if op.Has(fsnotify.Write) {
		u |= Write
	}
	if op.Has(fsnotify.Remove) {
		u |= Remove
	}
	if op.Has(fsnotify.Rename) {
		u |= Rename
	}
	if op.Has(fsnotify.Chmod) {
		u |= Chmod
	}
	return u
}

//----------

// A file change, or a watcher error if Err is set.
type Event struct {
	Op   Op
	Name string // full path
	Err  error
}

//----------

type Watcher struct {
	w      *fsnotify.Watcher
	mask   Op
	events chan Event

	done      chan struct{}
	closeOnce sync.Once
}

// Only changes matching mask are reported.
func New(mask Op) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{
		w:      fw,
		mask:   mask,
		events: make(chan Event, 16),
		done:   make(chan struct{}),
	}
	go w.eventLoop()
	return w, nil
}

func (w *Watcher) Add(dir string) error {
	return w.w.Add(dir)
}

// Closed after Close.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.w.Close()
	})
	return err
}

func (w *Watcher) eventLoop() {
	defer close(w.events)
	for {
		select {
		case <-w.done:
			return
		case err, ok := <-w.w.Errors:
			if !ok {
				return
			}
			w.send(Event{Err: err})
		case ev, ok := <-w.w.Events:
			if !ok {
				return
			}
			if op := fromFsnotify(ev.Op); op.HasAny(w.mask) {
				w.send(Event{Op: op, Name: ev.Name})
			}
		}
	}
}

func (w *Watcher) send(ev Event) {
	select {
	case w.events <- ev:
	case <-w.done:
	}
}
