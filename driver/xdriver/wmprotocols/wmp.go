// Package wmprotocols opts the window into the ICCCM WM_DELETE_WINDOW
// protocol: the close button then sends a client message instead of the
// window manager killing the connection.
//
// https://tronche.com/gui/x/icccm/sec-4.html#s-4.2.8.1
package wmprotocols

import (
	"encoding/binary"
	"slices"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/jmigpin/glfwdemo/driver/xdriver/xutil"
	"github.com/jmigpin/glfwdemo/util/logutil"
	"github.com/pkg/errors"
)

type DeleteWindow struct {
	atoms struct {
		Protocols xproto.Atom `loadAtoms:"WM_PROTOCOLS"`
		Delete    xproto.Atom `loadAtoms:"WM_DELETE_WINDOW"`
	}
}

func Register(conn *xgb.Conn, win xproto.Window) (*DeleteWindow, error) {
	dw := &DeleteWindow{}
	if err := xutil.LoadAtoms(conn, &dw.atoms, false); err != nil {
		return nil, errors.Wrap(err, "wm protocols atoms")
	}
	// list of 32-bit atoms, in the connection byte order
	data := binary.LittleEndian.AppendUint32(nil, uint32(dw.atoms.Delete))
	c := xproto.ChangePropertyChecked(
		conn,
		xproto.PropModeAppend,
		win,
		dw.atoms.Protocols,
		xproto.AtomAtom,
		32,
		1, // number of atoms
		data)
	if err := c.Check(); err != nil {
		return nil, errors.Wrap(err, "wm protocols property")
	}
	return dw, nil
}

// Reports whether the window manager asked to close the window.
func (dw *DeleteWindow) Requested(ev *xproto.ClientMessageEvent) bool {
	return isDeleteWindow(ev, dw.atoms.Protocols, dw.atoms.Delete)
}

func isDeleteWindow(ev *xproto.ClientMessageEvent, protocols, del xproto.Atom) bool {
	if ev.Type != protocols {
		return false
	}
	if ev.Format != 32 {
		logutil.Logger().Warn("wm protocols: unexpected format", "format", ev.Format)
		return false
	}
	return slices.Contains(ev.Data.Data32, uint32(del))
}
