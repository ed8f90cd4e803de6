package xutil

import (
	"reflect"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
)

// Tags can be used with: `loadAtoms:"atomname"`.
// "st" should be a pointer to a struct with xproto.Atom fields.
// "onlyIfExists" asks the x server to assign a value only if the atom exists.
func LoadAtoms(conn *xgb.Conn, st any, onlyIfExists bool) error {
	names := AtomNames(st)

	// request all before waiting for the replies
	cookies := make([]xproto.InternAtomCookie, len(names))
	for i, name := range names {
		cookies[i] = xproto.InternAtom(conn, onlyIfExists, uint16(len(name)), name)
	}

	val := reflect.Indirect(reflect.ValueOf(st))
	for i := range names {
		reply, err := cookies[i].Reply()
		if err != nil {
			return err
		}
		val.Field(i).Set(reflect.ValueOf(reply.Atom))
	}
	return nil
}

// Atom names requested by LoadAtoms, in field order.
func AtomNames(st any) []string {
	typ := reflect.Indirect(reflect.ValueOf(st)).Type()
	u := make([]string, 0, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		sf := typ.Field(i)
		name := sf.Name
		if tag := sf.Tag.Get("loadAtoms"); tag != "" {
			name = tag
		}
		u = append(u, name)
	}
	return u
}
