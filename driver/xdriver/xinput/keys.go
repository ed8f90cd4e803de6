package xinput

import (
	"github.com/BurntSushi/xgb/xproto"
	"github.com/jmigpin/glfwdemo/util/uiutil/event"
)

// Constants from /usr/include/X11/keysymdef.h
func keysymToEventKeysym(xk xproto.Keysym) event.KeySym {
	switch {
	case xk >= 0x30 && xk <= 0x39:
		return event.KSym0 + event.KeySym(xk-0x30)
	case xk >= 0x41 && xk <= 0x5a:
		return event.KSymA + event.KeySym(xk-0x41)
	case xk >= 0x61 && xk <= 0x7a:
		return event.KSymA + event.KeySym(xk-0x61)
	case xk >= 0xffbe && xk <= 0xffc9:
		return event.KSymF1 + event.KeySym(xk-0xffbe)
	case xk >= 0xffb0 && xk <= 0xffb9:
		return event.KSymKeypad0 + event.KeySym(xk-0xffb0)
	}

	switch xk {
	case 0x20:
		return event.KSymSpace
	case 0x27:
		return event.KSymApostrophe
	case 0x2c:
		return event.KSymComma
	case 0x2d:
		return event.KSymMinus
	case 0x2e:
		return event.KSymPeriod
	case 0x2f:
		return event.KSymSlash
	case 0x3b:
		return event.KSymSemicolon
	case 0x3d:
		return event.KSymEqual
	case 0x5b:
		return event.KSymBracketL
	case 0x5c:
		return event.KSymBackslash
	case 0x5d:
		return event.KSymBracketR
	case 0x60:
		return event.KSymGrave

	case 0xff1b:
		return event.KSymEscape
	case 0xff0d:
		return event.KSymReturn
	case 0xff09:
		return event.KSymTab
	case 0xff08:
		return event.KSymBackspace
	case 0xff63:
		return event.KSymInsert
	case 0xffff:
		return event.KSymDelete
	case 0xff53:
		return event.KSymRight
	case 0xff51:
		return event.KSymLeft
	case 0xff54:
		return event.KSymDown
	case 0xff52:
		return event.KSymUp
	case 0xff55:
		return event.KSymPageUp
	case 0xff56:
		return event.KSymPageDown
	case 0xff50:
		return event.KSymHome
	case 0xff57:
		return event.KSymEnd
	case 0xffe5:
		return event.KSymCapsLock
	case 0xff14:
		return event.KSymScrollLock
	case 0xff7f:
		return event.KSymNumLock
	case 0xff61:
		return event.KSymPrint
	case 0xff13:
		return event.KSymPause

	case 0xffae:
		return event.KSymKeypadDecimal
	case 0xffaf:
		return event.KSymKeypadDivide
	case 0xffaa:
		return event.KSymKeypadMultiply
	case 0xffad:
		return event.KSymKeypadSubtract
	case 0xffab:
		return event.KSymKeypadAdd
	case 0xff8d:
		return event.KSymKeypadEnter
	case 0xffbd:
		return event.KSymKeypadEqual

	case 0xffe1:
		return event.KSymShiftL
	case 0xffe2:
		return event.KSymShiftR
	case 0xffe3:
		return event.KSymControlL
	case 0xffe4:
		return event.KSymControlR
	case 0xffe9:
		return event.KSymAltL
	case 0xffea:
		return event.KSymAltR
	case 0xfe03:
		return event.KSymAltGr // ISOLevel3Shift
	case 0xffeb:
		return event.KSymSuperL
	case 0xffec:
		return event.KSymSuperR
	case 0xff67:
		return event.KSymMenu
	}

	// other printable ascii keep their values
	if xk > 0x20 && xk < 0x7f {
		return event.KeySym(xk)
	}
	return event.KSymNone
}

func keysymRune(xk xproto.Keysym, eks event.KeySym) rune {
	switch {
	case (xk >= 0x20 && xk <= 0x7e) || (xk >= 0xa0 && xk <= 0xff):
		return rune(xk) // latin-1
	case xk&0xff000000 == 0x01000000:
		return rune(xk & 0x00ffffff) // unicode keysym
	}
	return eks.Rune()
}
