package event

import (
	"fmt"
	"image"
	"time"
	"unicode"
)

// Event is implemented only by the types of this package. Consumers use a
// type switch over the concrete types.
type Event interface {
	isEvent()
}

//----------

type WindowClose struct{}
type WindowResize struct {
	Rect image.Rectangle
}

//----------

type KeyDown struct {
	KeySym KeySym
	Mods   KeyModifiers
	Rune   rune
}

func (kd *KeyDown) LowerRune() rune {
	return unicode.ToLower(kd.Rune)
}

type KeyUp struct {
	KeySym KeySym
	Mods   KeyModifiers
	Rune   rune
}

func (ku *KeyUp) LowerRune() rune {
	return unicode.ToLower(ku.Rune)
}

// Key held down and repeated by the keyboard autorepeat.
type KeyRepeat struct {
	KeySym KeySym
	Mods   KeyModifiers
	Rune   rune
}

//----------

func (*WindowClose) isEvent()  {}
func (*WindowResize) isEvent() {}
func (*KeyDown) isEvent()      {}
func (*KeyUp) isEvent()        {}
func (*KeyRepeat) isEvent()    {}

//----------

// Event with its arrival time, relative to the start of the event source.
type Record struct {
	Time time.Duration
	Ev   Event
}

func (r *Record) String() string {
	return fmt.Sprintf("%v:%s", r.Time, EventString(r.Ev))
}

//----------

func EventString(ev Event) string {
	switch t := ev.(type) {
	case *WindowClose:
		return "windowclose"
	case *WindowResize:
		return fmt.Sprintf("windowresize(%v)", t.Rect)
	case *KeyDown:
		return fmt.Sprintf("keydown(%v,%v)", t.KeySym, t.Mods)
	case *KeyUp:
		return fmt.Sprintf("keyup(%v,%v)", t.KeySym, t.Mods)
	case *KeyRepeat:
		return fmt.Sprintf("keyrepeat(%v,%v)", t.KeySym, t.Mods)
	default:
		return fmt.Sprintf("%T", ev)
	}
}
