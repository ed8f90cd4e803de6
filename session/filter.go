package session

import "github.com/jmigpin/glfwdemo/util/uiutil/event"

type Action int

const (
	Ignore Action = iota
	RequestClose
)

func (a Action) String() string {
	switch a {
	case Ignore:
		return "ignore"
	case RequestClose:
		return "requestclose"
	}
	return "action?"
}

// Filter maps an event to an action. Must not have side effects.
type Filter func(event.Event) Action

// Closes on an escape key press, with any modifiers. Releases, repeats and
// every other event are ignored.
func EscapeFilter(ev event.Event) Action {
	switch t := ev.(type) {
	case *event.KeyDown:
		if t.KeySym == event.KSymEscape {
			return RequestClose
		}
	}
	return Ignore
}
