package types

import (
	"encoding/json"
	"fmt"
	"reflect"

	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/babylonchain/chainkit/store/prefix"
	storetypes "github.com/babylonchain/chainkit/store/types"
	sdk "github.com/babylonchain/chainkit/types"
)

// Subspace is the slice of the params namespace owned by one module. Values
// are stored as JSON under name/key.
type Subspace struct {
	key   storetypes.StoreKey
	name  []byte
	table KeyTable
}

// NewSubspace returns the subspace name of the params namespace key.
func NewSubspace(key storetypes.StoreKey, name string) Subspace {
	return Subspace{
		key:   key,
		name:  []byte(name),
		table: NewKeyTable(),
	}
}

// HasKeyTable reports whether a key table was set.
func (s Subspace) HasKeyTable() bool {
	return len(s.table.m) > 0
}

// WithKeyTable declares the keys of the subspace. It panics if a key table
// was already set.
func (s Subspace) WithKeyTable(table KeyTable) Subspace {
	if table.m == nil {
		panic("WithKeyTable() called with nil KeyTable")
	}
	if len(s.table.m) != 0 {
		panic("WithKeyTable() called on already initialized Subspace")
	}

	for k, v := range table.m {
		s.table.m[k] = v
	}

	return s
}

// Name returns the name of the subspace.
func (s Subspace) Name() string {
	return string(s.name)
}

func (s Subspace) kvStore(ctx sdk.MutableContext) prefix.Store {
	return prefix.NewStore(ctx.KVStoreMut(s.key), SubspaceKeyPrefix(s.Name()))
}

func (s Subspace) kvReader(ctx sdk.QueryableContext) prefix.ReadStore {
	return prefix.NewReadStore(ctx.KVStore(s.key), SubspaceKeyPrefix(s.Name()))
}

// Validate runs the validator registered for key on value.
func (s Subspace) Validate(key []byte, value interface{}) error {
	attr, ok := s.table.m[string(key)]
	if !ok {
		return sdkerrors.Wrapf(ErrUnregisteredKey, "%s/%s", s.name, key)
	}

	if err := attr.vfn(reflect.Indirect(reflect.ValueOf(value)).Interface()); err != nil {
		return sdkerrors.Wrapf(ErrInvalidParam, "%s/%s: %v", s.name, key, err)
	}

	return nil
}

// Get decodes the value of key into ptr. A missing key is an error, there
// are no defaults.
func (s Subspace) Get(ctx sdk.QueryableContext, key []byte, ptr interface{}) error {
	bz, err := s.GetRaw(ctx, key)
	if err != nil {
		return err
	}
	if bz == nil {
		return sdkerrors.Wrapf(ErrParamNotFound, "%s/%s", s.name, key)
	}
	if err := json.Unmarshal(bz, ptr); err != nil {
		return fmt.Errorf("decode parameter %s/%s: %w", s.name, key, err)
	}
	return nil
}

// GetRaw returns the encoded value of key, nil if it is not set.
func (s Subspace) GetRaw(ctx sdk.QueryableContext, key []byte) ([]byte, error) {
	if len(key) == 0 {
		return nil, ErrEmptyKey
	}
	return s.kvReader(ctx).Get(key)
}

// Has reports whether key is set.
func (s Subspace) Has(ctx sdk.QueryableContext, key []byte) (bool, error) {
	if len(key) == 0 {
		return false, ErrEmptyKey
	}
	return s.kvReader(ctx).Has(key)
}

func (s Subspace) checkType(key []byte, value interface{}) error {
	attr, ok := s.table.m[string(key)]
	if !ok {
		return sdkerrors.Wrapf(ErrUnregisteredKey, "%s/%s", s.name, key)
	}

	ty := attr.ty
	pty := reflect.TypeOf(value)
	if pty.Kind() == reflect.Ptr {
		pty = pty.Elem()
	}

	if pty != ty {
		return sdkerrors.Wrapf(ErrSettingParameter, "type mismatch with registered table: %s != %s", pty, ty)
	}
	return nil
}

// Set validates and stores the value of a registered key.
func (s Subspace) Set(ctx sdk.MutableContext, key []byte, value interface{}) error {
	if err := s.checkType(key, value); err != nil {
		return err
	}
	if err := s.Validate(key, value); err != nil {
		return err
	}

	bz, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.kvStore(ctx).Set(key, bz)
}

// Update decodes raw JSON as the registered type of key, validates it and
// stores it. It is the entry point of governance parameter changes.
func (s Subspace) Update(ctx sdk.MutableContext, key, value []byte) error {
	attr, ok := s.table.m[string(key)]
	if !ok {
		return sdkerrors.Wrapf(ErrUnregisteredKey, "%s/%s", s.name, key)
	}

	dest := reflect.New(attr.ty).Interface()
	if err := json.Unmarshal(value, dest); err != nil {
		return sdkerrors.Wrapf(ErrSettingParameter, "decode %s/%s: %v", s.name, key, err)
	}

	return s.Set(ctx, key, dest)
}

// GetParamSet loads every pair of ps. A missing key is an error.
func (s Subspace) GetParamSet(ctx sdk.QueryableContext, ps ParamSet) error {
	for _, pair := range ps.ParamSetPairs() {
		if err := s.Get(ctx, pair.Key, pair.Value); err != nil {
			return err
		}
	}
	return nil
}

// SetParamSet validates every pair of ps before storing any of them.
func (s Subspace) SetParamSet(ctx sdk.MutableContext, ps ParamSet) error {
	pairs := ps.ParamSetPairs()
	for _, pair := range pairs {
		if err := s.checkType(pair.Key, pair.Value); err != nil {
			return err
		}
		if err := pair.ValidatorFn(reflect.Indirect(reflect.ValueOf(pair.Value)).Interface()); err != nil {
			return sdkerrors.Wrapf(ErrInvalidParam, "%s/%s: %v", s.name, pair.Key, err)
		}
	}

	for _, pair := range pairs {
		bz, err := json.Marshal(pair.Value)
		if err != nil {
			return err
		}
		if err := s.kvStore(ctx).Set(pair.Key, bz); err != nil {
			return err
		}
	}
	return nil
}

// ReadOnlySubspace is a Subspace without its writers.
type ReadOnlySubspace struct {
	s Subspace
}

// NewReadOnlySubspace wraps s.
func NewReadOnlySubspace(s Subspace) ReadOnlySubspace {
	return ReadOnlySubspace{s: s}
}

func (ros ReadOnlySubspace) Get(ctx sdk.QueryableContext, key []byte, ptr interface{}) error {
	return ros.s.Get(ctx, key, ptr)
}

func (ros ReadOnlySubspace) GetRaw(ctx sdk.QueryableContext, key []byte) ([]byte, error) {
	return ros.s.GetRaw(ctx, key)
}

func (ros ReadOnlySubspace) Has(ctx sdk.QueryableContext, key []byte) (bool, error) {
	return ros.s.Has(ctx, key)
}

func (ros ReadOnlySubspace) Name() string {
	return ros.s.Name()
}

// Keys lists the keys declared by the key table.
func (s Subspace) Keys() []string {
	return s.table.Keys()
}
