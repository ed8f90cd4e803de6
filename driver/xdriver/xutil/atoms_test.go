package xutil

import (
	"reflect"
	"testing"

	"github.com/BurntSushi/xgb/xproto"
)

func TestAtomNames(t *testing.T) {
	var st struct {
		WM_PROTOCOLS xproto.Atom
		NetWMName    xproto.Atom `loadAtoms:"_NET_WM_NAME"`
	}
	names := AtomNames(&st)
	want := []string{"WM_PROTOCOLS", "_NET_WM_NAME"}
	if !reflect.DeepEqual(names, want) {
		t.Fatal(names)
	}
}
