package types

import (
	"fmt"
	"reflect"
	"sort"
)

type attribute struct {
	ty  reflect.Type
	vfn ValueValidatorFn
}

// KeyTable declares the keys and value types of a subspace.
type KeyTable struct {
	m map[string]attribute
}

func NewKeyTable(pairs ...ParamSetPair) KeyTable {
	keyTable := KeyTable{
		m: make(map[string]attribute),
	}

	for _, psp := range pairs {
		keyTable = keyTable.RegisterType(psp)
	}

	return keyTable
}

// RegisterType registers a single key and the type of its value. It panics
// on a duplicated or malformed key.
func (t KeyTable) RegisterType(psp ParamSetPair) KeyTable {
	if len(psp.Key) == 0 {
		panic("cannot register ParamSetPair with an parameter empty key")
	}
	if !isAlphaNumeric(psp.Key) {
		panic("cannot register ParamSetPair with a non-alphanumeric parameter key")
	}
	if psp.ValidatorFn == nil {
		panic("cannot register ParamSetPair without a value validation function")
	}

	keystr := string(psp.Key)
	if _, ok := t.m[keystr]; ok {
		panic(fmt.Sprintf("duplicate parameter key: %s", keystr))
	}

	rty := reflect.TypeOf(psp.Value)

	// indirect rty if it is a pointer
	for rty.Kind() == reflect.Ptr {
		rty = rty.Elem()
	}

	t.m[keystr] = attribute{
		vfn: psp.ValidatorFn,
		ty:  rty,
	}

	return t
}

// RegisterParamSet registers every pair of ps.
func (t KeyTable) RegisterParamSet(ps ParamSet) KeyTable {
	for _, psp := range ps.ParamSetPairs() {
		t = t.RegisterType(psp)
	}
	return t
}

func isAlphaNumeric(key []byte) bool {
	for _, b := range key {
		if !((48 <= b && b <= 57) || // numeric
			(65 <= b && b <= 90) || // upper case
			(97 <= b && b <= 122)) { // lower case
			return false
		}
	}
	return true
}

// Keys lists the registered keys in order.
func (t KeyTable) Keys() []string {
	keys := make([]string, 0, len(t.m))
	for k := range t.m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
