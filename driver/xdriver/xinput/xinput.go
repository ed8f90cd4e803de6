package xinput

import (
	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/jmigpin/glfwdemo/util/uiutil/event"
)

type XInput struct {
	km *KMap
}

func NewXInput(conn *xgb.Conn) (*XInput, error) {
	km, err := NewKMap(conn)
	if err != nil {
		return nil, err
	}
	return &XInput{km: km}, nil
}

//----------

func (xi *XInput) ReadMapTable() error {
	return xi.km.ReadMapping()
}

//----------

func (xi *XInput) KeyPress(ev *xproto.KeyPressEvent) *event.KeyDown {
	ks, ru := xi.km.Lookup(ev.Detail, ev.State)
	return &event.KeyDown{KeySym: ks, Mods: xi.km.Modifiers(ev.State), Rune: ru}
}
func (xi *XInput) KeyRelease(ev *xproto.KeyReleaseEvent) *event.KeyUp {
	ks, ru := xi.km.Lookup(ev.Detail, ev.State)
	return &event.KeyUp{KeySym: ks, Mods: xi.km.Modifiers(ev.State), Rune: ru}
}

// Built from the key press that follows a release with the same keycode
// and timestamp.
func (xi *XInput) KeyRepeat(ev *xproto.KeyPressEvent) *event.KeyRepeat {
	ks, ru := xi.km.Lookup(ev.Detail, ev.State)
	return &event.KeyRepeat{KeySym: ks, Mods: xi.km.Modifiers(ev.State), Rune: ru}
}

//----------

// The keyboard autorepeat sends a release/press pair with the same keycode
// and timestamp.
func IsAutoRepeat(rel *xproto.KeyReleaseEvent, next xgb.Event) (*xproto.KeyPressEvent, bool) {
	press, ok := next.(xproto.KeyPressEvent)
	if !ok {
		return nil, false
	}
	if press.Detail != rel.Detail || press.Time != rel.Time {
		return nil, false
	}
	return &press, true
}
