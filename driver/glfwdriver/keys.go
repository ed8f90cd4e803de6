package glfwdriver

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/jmigpin/glfwdemo/util/uiutil/event"
)

func keyEvent(key glfw.Key, action glfw.Action, mods glfw.ModifierKey) event.Event {
	ks := translateKey(key)
	m := translateMods(mods)
	ru := ks.Rune()
	switch action {
	case glfw.Press:
		return &event.KeyDown{KeySym: ks, Mods: m, Rune: ru}
	case glfw.Release:
		return &event.KeyUp{KeySym: ks, Mods: m, Rune: ru}
	case glfw.Repeat:
		return &event.KeyRepeat{KeySym: ks, Mods: m, Rune: ru}
	}
	return nil
}

func translateMods(m glfw.ModifierKey) event.KeyModifiers {
	em := event.ModNone
	add := func(m2 glfw.ModifierKey, em2 event.KeyModifiers) {
		if m&m2 != 0 {
			em |= em2
		}
	}
	add(glfw.ModShift, event.ModShift)
	add(glfw.ModControl, event.ModCtrl)
	add(glfw.ModAlt, event.ModAlt)
	add(glfw.ModSuper, event.ModSuper)
	add(glfw.ModCapsLock, event.ModCapsLock)
	add(glfw.ModNumLock, event.ModNumLock)
	return em
}

func translateKey(k glfw.Key) event.KeySym {
	switch {
	case k >= glfw.KeyA && k <= glfw.KeyZ:
		return event.KSymA + event.KeySym(k-glfw.KeyA)
	case k >= glfw.Key0 && k <= glfw.Key9:
		return event.KSym0 + event.KeySym(k-glfw.Key0)
	case k >= glfw.KeyF1 && k <= glfw.KeyF12:
		return event.KSymF1 + event.KeySym(k-glfw.KeyF1)
	case k >= glfw.KeyKP0 && k <= glfw.KeyKP9:
		return event.KSymKeypad0 + event.KeySym(k-glfw.KeyKP0)
	}

	switch k {
	case glfw.KeySpace:
		return event.KSymSpace
	case glfw.KeyApostrophe:
		return event.KSymApostrophe
	case glfw.KeyComma:
		return event.KSymComma
	case glfw.KeyMinus:
		return event.KSymMinus
	case glfw.KeyPeriod:
		return event.KSymPeriod
	case glfw.KeySlash:
		return event.KSymSlash
	case glfw.KeySemicolon:
		return event.KSymSemicolon
	case glfw.KeyEqual:
		return event.KSymEqual
	case glfw.KeyLeftBracket:
		return event.KSymBracketL
	case glfw.KeyBackslash:
		return event.KSymBackslash
	case glfw.KeyRightBracket:
		return event.KSymBracketR
	case glfw.KeyGraveAccent:
		return event.KSymGrave

	case glfw.KeyEscape:
		return event.KSymEscape
	case glfw.KeyEnter:
		return event.KSymReturn
	case glfw.KeyTab:
		return event.KSymTab
	case glfw.KeyBackspace:
		return event.KSymBackspace
	case glfw.KeyInsert:
		return event.KSymInsert
	case glfw.KeyDelete:
		return event.KSymDelete
	case glfw.KeyRight:
		return event.KSymRight
	case glfw.KeyLeft:
		return event.KSymLeft
	case glfw.KeyDown:
		return event.KSymDown
	case glfw.KeyUp:
		return event.KSymUp
	case glfw.KeyPageUp:
		return event.KSymPageUp
	case glfw.KeyPageDown:
		return event.KSymPageDown
	case glfw.KeyHome:
		return event.KSymHome
	case glfw.KeyEnd:
		return event.KSymEnd
	case glfw.KeyCapsLock:
		return event.KSymCapsLock
	case glfw.KeyScrollLock:
		return event.KSymScrollLock
	case glfw.KeyNumLock:
		return event.KSymNumLock
	case glfw.KeyPrintScreen:
		return event.KSymPrint
	case glfw.KeyPause:
		return event.KSymPause

	case glfw.KeyKPDecimal:
		return event.KSymKeypadDecimal
	case glfw.KeyKPDivide:
		return event.KSymKeypadDivide
	case glfw.KeyKPMultiply:
		return event.KSymKeypadMultiply
	case glfw.KeyKPSubtract:
		return event.KSymKeypadSubtract
	case glfw.KeyKPAdd:
		return event.KSymKeypadAdd
	case glfw.KeyKPEnter:
		return event.KSymKeypadEnter
	case glfw.KeyKPEqual:
		return event.KSymKeypadEqual

	case glfw.KeyLeftShift:
		return event.KSymShiftL
	case glfw.KeyRightShift:
		return event.KSymShiftR
	case glfw.KeyLeftControl:
		return event.KSymControlL
	case glfw.KeyRightControl:
		return event.KSymControlR
	case glfw.KeyLeftAlt:
		return event.KSymAltL
	case glfw.KeyRightAlt:
		return event.KSymAltR
	case glfw.KeyLeftSuper:
		return event.KSymSuperL
	case glfw.KeyRightSuper:
		return event.KSymSuperR
	case glfw.KeyMenu:
		return event.KSymMenu
	}
	return event.KSymNone
}
