package xinput

import (
	"fmt"
	"unicode"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/jmigpin/glfwdemo/util/uiutil/event"
)

// $ man keymaps
// https://tronche.com/gui/x/xlib/input/XGetKeyboardMapping.html
// https://tronche.com/gui/x/xlib/input/keyboard-encoding.html

// xproto.Keycode is a physical key.
// xproto.Keysym is the encoding of a symbol on the cap of a key.
// A list of keysyms is associated with each keycode.

//----------

// Keyboard mapping
type KMap struct {
	conn *xgb.Conn

	minKeycode xproto.Keycode
	maxKeycode xproto.Keycode
	perKeycode int
	keysyms    []xproto.Keysym

	modGroups modGroups
}

// Modifier group index (0-7) of the keys that act as modifiers. -1 if not detected.
type modGroups struct {
	numLock int8
	alt     int8
	altGr   int8
	super   int8
	meta    int8
}

func defaultModGroups() modGroups {
	return modGroups{numLock: 4, alt: 3, altGr: 7, super: -1, meta: -1}
}

func NewKMap(conn *xgb.Conn) (*KMap, error) {
	km := &KMap{conn: conn}
	if err := km.ReadMapping(); err != nil {
		return nil, err
	}
	return km, nil
}

//----------

func (km *KMap) ReadMapping() error {
	if err := km.readKeyboardMapping(); err != nil {
		return err
	}
	return km.readModMapping()
}

func (km *KMap) readKeyboardMapping() error {
	si := xproto.Setup(km.conn)
	count := int(si.MaxKeycode) - int(si.MinKeycode) + 1
	if count <= 0 {
		return fmt.Errorf("bad keycode count: %v", count)
	}
	reply, err := xproto.GetKeyboardMapping(km.conn, si.MinKeycode, byte(count)).Reply()
	if err != nil {
		return err
	}
	if reply.KeysymsPerKeycode < 2 {
		return fmt.Errorf("keysyms per keycode < 2")
	}
	km.minKeycode = si.MinKeycode
	km.maxKeycode = si.MaxKeycode
	km.perKeycode = int(reply.KeysymsPerKeycode)
	km.keysyms = reply.Keysyms
	return nil
}

func (km *KMap) readModMapping() error {
	modMap, err := xproto.GetModifierMapping(km.conn).Reply()
	if err != nil {
		return err
	}
	stride := int(modMap.KeycodesPerModifier)
	km.modGroups = km.detectModGroups(func(g int) []xproto.Keycode {
		return modMap.Keycodes[g*stride : (g+1)*stride]
	})
	return nil
}

// 8 modifiers groups, that can have n keycodes
//
//	0 Shift
//	1 Lock (Caps Lock)
//	2 Control
//	--- detect
//	3 Mod1 (Usually Alt)
//	4 Mod2 (Often Num Lock)
//	5 Mod3 (Rarely used)
//	6 Mod4 (Often Super/Meta)
//	7 Mod5 (Often AltGr)
func (km *KMap) detectModGroups(groupKeycodes func(int) []xproto.Keycode) modGroups {
	type KS = xproto.Keysym
	mg := defaultModGroups()
	pairs := []struct {
		group *int8
		kss   []KS
	}{
		{&mg.numLock, []KS{0xff7f}},               // XK_Num_Lock
		{&mg.alt, []KS{0xffe9, 0xffea}},           // XK_Alt_L, XK_Alt_R
		{&mg.altGr, []KS{0xfe03, 0xfe11, 0xff7e}}, // ISO_Level3_Shift, ISO_Level5_Shift, ISO_Group_Shift
		{&mg.super, []KS{0xffeb, 0xffec}},         // XK_Super_L, XK_Super_R
		{&mg.meta, []KS{0xffe7, 0xffe8}},          // XK_Meta_L, XK_Meta_R
	}
	for g := 3; g < 8; g++ {
	kcLoop: // keep first found pair for this group
		for _, kc := range groupKeycodes(g) {
			for _, ks := range km.keycodeToKeysyms(kc) {
				for _, p := range pairs {
					for _, ks2 := range p.kss {
						if ks == ks2 {
							*p.group = int8(g)
							break kcLoop
						}
					}
				}
			}
		}
	}
	return mg
}

//----------

func (km *KMap) Lookup(keycode xproto.Keycode, kmods uint16) (event.KeySym, rune) {
	kss := km.keycodeToKeysyms(keycode)
	ks := km.keysymsToKeysym(kss, kmods)
	eks := keysymToEventKeysym(ks)
	ru := keysymRune(ks, eks)
	return eks, ru
}

//----------

func (km *KMap) keycodeToKeysyms(keycode xproto.Keycode) []xproto.Keysym {
	if keycode < km.minKeycode || keycode > km.maxKeycode {
		return nil
	}
	y := int(keycode - km.minKeycode)
	stride := km.perKeycode // usually ~7
	if (y+1)*stride > len(km.keysyms) {
		return nil
	}
	return km.keysyms[y*stride : (y+1)*stride]
}

//----------

func (km *KMap) keysymsToKeysym(kss []xproto.Keysym, m uint16) xproto.Keysym {
	em := km.Modifiers(m)

	hasShift := em.HasAny(event.ModShift)
	hasCapsLock := em.HasAny(event.ModCapsLock)
	hasCtrl := em.HasAny(event.ModCtrl)
	hasAltGr := em.HasAny(event.ModAltGr)
	hasNumLock := em.HasAny(event.ModNumLock)

	// keysym group
	group := 0
	if hasCtrl {
		group = 1
	} else if hasAltGr {
		group = 2
	}

	// each group has two symbols
	i1 := group * 2
	i2 := i1 + 1
	if i1 >= len(kss) {
		return 0
	}
	if i2 >= len(kss) {
		i2 = i1
	}
	ks1, ks2 := kss[i1], kss[i2]
	if ks2 == 0 {
		ks2 = ks1
	}

	// keypad
	if hasNumLock && isKeypad(ks2) {
		if hasShift {
			return ks1
		}
		return ks2
	}

	r1 := rune(ks1)
	hasLower := unicode.IsLower(unicode.ToLower(r1))
	if hasLower {
		shifted := hasShift != hasCapsLock
		if shifted {
			return ks2
		}
		return ks1
	}

	if hasShift {
		return ks2
	}
	return ks1
}

// Translates the x state mask into event modifiers.
func (km *KMap) Modifiers(m uint16) event.KeyModifiers {
	em := event.ModNone

	add := func(m2 uint16, em2 event.KeyModifiers) {
		if m2 != 0 && m&m2 > 0 {
			em |= em2
		}
	}
	addGroup := func(g int8, em2 event.KeyModifiers) {
		if g < 0 { // not detected
			return
		}
		add(1<<g, em2)
	}

	add(xproto.KeyButMaskShift, event.ModShift)
	add(xproto.KeyButMaskLock, event.ModCapsLock)
	add(xproto.KeyButMaskControl, event.ModCtrl)

	addGroup(km.modGroups.numLock, event.ModNumLock)
	addGroup(km.modGroups.alt, event.ModAlt)
	addGroup(km.modGroups.altGr, event.ModAltGr)
	addGroup(km.modGroups.super, event.ModSuper)
	addGroup(km.modGroups.meta, event.ModMeta)

	return em
}

//----------

func isKeypad(ks xproto.Keysym) bool {
	return (0xFF80 <= ks && ks <= 0xFFBD) ||
		(0x11000000 <= ks && ks <= 0x1100FFFF)
}
