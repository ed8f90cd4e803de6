package xinput

import (
	"testing"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/jmigpin/glfwdemo/util/uiutil/event"
)

// Small keyboard: keycodes 8..12 with 2 groups of 2 keysyms each.
func testKMap() *KMap {
	kss := []xproto.Keysym{
		0xff1b, 0, 0, 0, // 8: escape
		0x61, 0x41, 0, 0, // 9: a A
		0x32, 0x40, 0, 0, // 10: 2 @
		0xff96, 0xffb4, 0, 0, // 11: kp_left kp_4
		0xffe1, 0, 0, 0, // 12: shift_l
	}
	return &KMap{
		minKeycode: 8,
		maxKeycode: 12,
		perKeycode: 4,
		keysyms:    kss,
		modGroups:  defaultModGroups(),
	}
}

func TestKMapLookup(t *testing.T) {
	km := testKMap()
	type pair struct {
		kc    xproto.Keycode
		kmods uint16

		eks event.KeySym
		ru  rune
	}
	pairs := []pair{
		{8, 0, event.KSymEscape, 0},
		{8, xproto.KeyButMaskShift, event.KSymEscape, 0},
		{9, 0, event.KSymA, 'a'},
		{9, xproto.KeyButMaskShift, event.KSymA, 'A'},
		{9, xproto.KeyButMaskLock, event.KSymA, 'A'},
		{9, xproto.KeyButMaskLock | xproto.KeyButMaskShift, event.KSymA, 'a'},
		{10, 0, event.KSym2, '2'},
		{10, xproto.KeyButMaskShift, event.KeySym('@'), '@'},
		{11, 0, event.KSymNone, 0},
		{11, xproto.KeyButMaskMod2, event.KSymKeypad4, '4'},
		{12, 0, event.KSymShiftL, 0},
		{99, 0, event.KSymNone, 0}, // out of range
	}
	for _, p := range pairs {
		eks, ru := km.Lookup(p.kc, p.kmods)
		if eks != p.eks || ru != p.ru {
			t.Errorf("kc=%v mods=%v: expected (%v,%q), got (%v,%q)", p.kc, p.kmods, p.eks, p.ru, eks, ru)
		}
	}
}

func TestKMapModifiers(t *testing.T) {
	km := testKMap()
	m := km.Modifiers(xproto.KeyButMaskShift | xproto.KeyButMaskControl | xproto.KeyButMaskMod1 | xproto.KeyButMaskMod2)
	if !m.Is(event.ModShift | event.ModCtrl | event.ModAlt | event.ModNumLock) {
		t.Fatal(m)
	}
	// super not detected by default
	if m := km.Modifiers(xproto.KeyButMaskMod4); m != event.ModNone {
		t.Fatal(m)
	}
}

func TestKMapDetectModGroups(t *testing.T) {
	km := testKMap()
	// shift_l (kc 12) placed in group 6 would be ignored; escape is not a modifier
	groups := map[int][]xproto.Keycode{
		5: {8},
		6: {12},
	}
	mg := km.detectModGroups(func(g int) []xproto.Keycode { return groups[g] })
	if mg != defaultModGroups() {
		t.Fatalf("%+v", mg)
	}

	km.keysyms[(9-8)*4] = 0xffeb // keycode 9 -> super_l
	groups[6] = []xproto.Keycode{9}
	mg = km.detectModGroups(func(g int) []xproto.Keycode { return groups[g] })
	if mg.super != 6 {
		t.Fatalf("%+v", mg)
	}
}

func TestIsAutoRepeat(t *testing.T) {
	rel := &xproto.KeyReleaseEvent{Detail: 9, Time: 1000}
	if _, ok := IsAutoRepeat(rel, xproto.KeyPressEvent{Detail: 9, Time: 1000}); !ok {
		t.Fatal("expecting repeat")
	}
	if _, ok := IsAutoRepeat(rel, xproto.KeyPressEvent{Detail: 9, Time: 1001}); ok {
		t.Fatal("different time")
	}
	if _, ok := IsAutoRepeat(rel, xproto.KeyPressEvent{Detail: 10, Time: 1000}); ok {
		t.Fatal("different key")
	}
	if _, ok := IsAutoRepeat(rel, nil); ok {
		t.Fatal("no next event")
	}
}
