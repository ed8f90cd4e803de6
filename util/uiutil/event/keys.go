package event

import (
	"fmt"
	"strings"
)

type KeySym int

const (
	KSymNone KeySym = iota

	// let ascii codes keep their values (adding 256 ensures gap)
	KSym_dummy_ KeySym = 256 + iota

	KSym0
	KSym1
	KSym2
	KSym3
	KSym4
	KSym5
	KSym6
	KSym7
	KSym8
	KSym9

	KSymA
	KSymB
	KSymC
	KSymD
	KSymE
	KSymF
	KSymG
	KSymH
	KSymI
	KSymJ
	KSymK
	KSymL
	KSymM
	KSymN
	KSymO
	KSymP
	KSymQ
	KSymR
	KSymS
	KSymT
	KSymU
	KSymV
	KSymW
	KSymX
	KSymY
	KSymZ

	KSymSpace
	KSymApostrophe // '
	KSymComma      // ,
	KSymMinus      // -
	KSymPeriod     // .
	KSymSlash      // /
	KSymSemicolon  // ;
	KSymEqual      // =
	KSymBracketL   // [
	KSymBackslash  // \
	KSymBracketR   // ]
	KSymGrave      // `

	KSymEscape
	KSymReturn
	KSymTab
	KSymBackspace
	KSymInsert
	KSymDelete
	KSymRight
	KSymLeft
	KSymDown
	KSymUp
	KSymPageUp
	KSymPageDown
	KSymHome
	KSymEnd
	KSymCapsLock
	KSymScrollLock
	KSymNumLock
	KSymPrint
	KSymPause

	KSymF1
	KSymF2
	KSymF3
	KSymF4
	KSymF5
	KSymF6
	KSymF7
	KSymF8
	KSymF9
	KSymF10
	KSymF11
	KSymF12

	KSymKeypad0
	KSymKeypad1
	KSymKeypad2
	KSymKeypad3
	KSymKeypad4
	KSymKeypad5
	KSymKeypad6
	KSymKeypad7
	KSymKeypad8
	KSymKeypad9
	KSymKeypadDecimal
	KSymKeypadDivide
	KSymKeypadMultiply
	KSymKeypadSubtract
	KSymKeypadAdd
	KSymKeypadEnter
	KSymKeypadEqual

	KSymShiftL
	KSymShiftR
	KSymControlL
	KSymControlR
	KSymAltL
	KSymAltR
	KSymAltGr
	KSymSuperL // windows key
	KSymSuperR
	KSymMenu

	kSymEnd_
)

//----------

var kSymNames = map[KeySym]string{
	KSymNone:           "none",
	KSymSpace:          "space",
	KSymApostrophe:     "apostrophe",
	KSymComma:          "comma",
	KSymMinus:          "minus",
	KSymPeriod:         "period",
	KSymSlash:          "slash",
	KSymSemicolon:      "semicolon",
	KSymEqual:          "equal",
	KSymBracketL:       "bracketl",
	KSymBackslash:      "backslash",
	KSymBracketR:       "bracketr",
	KSymGrave:          "grave",
	KSymEscape:         "escape",
	KSymReturn:         "return",
	KSymTab:            "tab",
	KSymBackspace:      "backspace",
	KSymInsert:         "insert",
	KSymDelete:         "delete",
	KSymRight:          "right",
	KSymLeft:           "left",
	KSymDown:           "down",
	KSymUp:             "up",
	KSymPageUp:         "pageup",
	KSymPageDown:       "pagedown",
	KSymHome:           "home",
	KSymEnd:            "end",
	KSymCapsLock:       "capslock",
	KSymScrollLock:     "scrolllock",
	KSymNumLock:        "numlock",
	KSymPrint:          "print",
	KSymPause:          "pause",
	KSymKeypadDecimal:  "kpdecimal",
	KSymKeypadDivide:   "kpdivide",
	KSymKeypadMultiply: "kpmultiply",
	KSymKeypadSubtract: "kpsubtract",
	KSymKeypadAdd:      "kpadd",
	KSymKeypadEnter:    "kpenter",
	KSymKeypadEqual:    "kpequal",
	KSymShiftL:         "shiftl",
	KSymShiftR:         "shiftr",
	KSymControlL:       "controll",
	KSymControlR:       "controlr",
	KSymAltL:           "altl",
	KSymAltR:           "altr",
	KSymAltGr:          "altgr",
	KSymSuperL:         "superl",
	KSymSuperR:         "superr",
	KSymMenu:           "menu",
}

func (ks KeySym) String() string {
	if s, ok := kSymNames[ks]; ok {
		return s
	}
	switch {
	case ks >= KSym0 && ks <= KSym9:
		return string(rune('0' + ks - KSym0))
	case ks >= KSymA && ks <= KSymZ:
		return string(rune('a' + ks - KSymA))
	case ks >= KSymF1 && ks <= KSymF12:
		return fmt.Sprintf("f%d", ks-KSymF1+1)
	case ks >= KSymKeypad0 && ks <= KSymKeypad9:
		return fmt.Sprintf("kp%d", ks-KSymKeypad0)
	case ks > KSymNone && ks < KSym_dummy_:
		return fmt.Sprintf("%q", rune(ks))
	}
	return fmt.Sprintf("keysym(%d)", int(ks))
}

// Rune produced by the keysym when no text input translation is available.
func (ks KeySym) Rune() rune {
	switch {
	case ks >= KSym0 && ks <= KSym9:
		return rune('0' + ks - KSym0)
	case ks >= KSymA && ks <= KSymZ:
		return rune('a' + ks - KSymA)
	case ks >= KSymKeypad0 && ks <= KSymKeypad9:
		return rune('0' + ks - KSymKeypad0)
	case ks > KSymNone && ks < KSym_dummy_:
		return rune(ks)
	}
	switch ks {
	case KSymSpace:
		return ' '
	case KSymApostrophe:
		return '\''
	case KSymComma:
		return ','
	case KSymMinus, KSymKeypadSubtract:
		return '-'
	case KSymPeriod, KSymKeypadDecimal:
		return '.'
	case KSymSlash, KSymKeypadDivide:
		return '/'
	case KSymSemicolon:
		return ';'
	case KSymEqual, KSymKeypadEqual:
		return '='
	case KSymBracketL:
		return '['
	case KSymBackslash:
		return '\\'
	case KSymBracketR:
		return ']'
	case KSymGrave:
		return '`'
	case KSymKeypadMultiply:
		return '*'
	case KSymKeypadAdd:
		return '+'
	case KSymReturn, KSymKeypadEnter:
		return '\n'
	case KSymTab:
		return '\t'
	}
	return 0
}

//----------

type KeyModifiers uint16

const (
	ModNone  KeyModifiers = 0
	ModShift KeyModifiers = 1 << (iota - 1)
	ModCtrl
	ModAlt
	ModAltGr
	ModSuper
	ModMeta
	ModCapsLock
	ModNumLock
)

func (km KeyModifiers) HasAny(m KeyModifiers) bool {
	return km&m > 0
}
func (km KeyModifiers) Is(m KeyModifiers) bool {
	return km == m
}
func (km KeyModifiers) ClearLocks() KeyModifiers {
	return km &^ (ModCapsLock | ModNumLock)
}

func (km KeyModifiers) String() string {
	if km == ModNone {
		return "none"
	}
	names := []string{"shift", "ctrl", "alt", "altgr", "super", "meta", "capslock", "numlock"}
	u := []string{}
	for i, n := range names {
		if km.HasAny(1 << i) {
			u = append(u, n)
		}
	}
	return strings.Join(u, "|")
}
