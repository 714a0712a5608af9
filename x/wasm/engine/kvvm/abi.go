package kvvm

import (
	"bytes"
	"encoding/json"
	"sort"
	"strconv"

	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	storetypes "github.com/babylonchain/chainkit/store/types"
	"github.com/babylonchain/chainkit/x/wasm/types"
)

// ErrContract is returned when a contract rejects a call.
var ErrContract = sdkerrors.Register("kvvm", 2, "contract error")

type keyMsg struct {
	Key string `json:"key"`
}

type setMsg struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type failMsg struct {
	Reason string `json:"reason"`
}

type executeMsg struct {
	Set    *setMsg  `json:"set,omitempty"`
	Delete *keyMsg  `json:"delete,omitempty"`
	Fail   *failMsg `json:"fail,omitempty"`
}

type queryMsg struct {
	Get  *keyMsg   `json:"get,omitempty"`
	List *struct{} `json:"list,omitempty"`
}

// Entry is one key-value pair returned by a list query.
type Entry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// GetResponse is the answer of a get query. Value is nil for a missing key.
type GetResponse struct {
	Value *string `json:"value"`
}

// ListResponse is the answer of a list query.
type ListResponse struct {
	Entries []Entry `json:"entries"`
}

func decodeStrict(msg []byte, v interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(msg))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return sdkerrors.Wrapf(types.ErrInvalidRequest, "decode msg: %v", err)
	}
	if dec.More() {
		return sdkerrors.Wrap(types.ErrInvalidRequest, "decode msg: trailing data")
	}
	return nil
}

func validKey(key string) error {
	if key == "" {
		return sdkerrors.Wrap(types.ErrInvalidRequest, "empty key")
	}
	return nil
}

// setEntries stores every pair of a JSON object in key order.
func setEntries(msg []byte, store storetypes.KVStore, action string) (*types.Response, error) {
	var entries map[string]string
	if err := decodeStrict(msg, &entries); err != nil {
		return nil, err
	}

	keys := make([]string, 0, len(entries))
	for k := range entries {
		if err := validKey(k); err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := store.Set([]byte(k), []byte(entries[k])); err != nil {
			return nil, err
		}
	}

	return &types.Response{Attributes: []types.EventAttribute{
		{Key: "action", Value: action},
		{Key: "entries", Value: strconv.Itoa(len(keys))},
	}}, nil
}

func execute(msg []byte, store storetypes.KVStore) (*types.Response, error) {
	var m executeMsg
	if err := decodeStrict(msg, &m); err != nil {
		return nil, err
	}

	switch {
	case m.Set != nil && m.Delete == nil && m.Fail == nil:
		if err := validKey(m.Set.Key); err != nil {
			return nil, err
		}
		if err := store.Set([]byte(m.Set.Key), []byte(m.Set.Value)); err != nil {
			return nil, err
		}
		return &types.Response{
			Data: []byte(m.Set.Value),
			Attributes: []types.EventAttribute{
				{Key: "action", Value: "set"},
				{Key: "key", Value: m.Set.Key},
			},
		}, nil
	case m.Delete != nil && m.Set == nil && m.Fail == nil:
		if err := validKey(m.Delete.Key); err != nil {
			return nil, err
		}
		if err := store.Delete([]byte(m.Delete.Key)); err != nil {
			return nil, err
		}
		return &types.Response{Attributes: []types.EventAttribute{
			{Key: "action", Value: "delete"},
			{Key: "key", Value: m.Delete.Key},
		}}, nil
	case m.Fail != nil && m.Set == nil && m.Delete == nil:
		return nil, sdkerrors.Wrap(ErrContract, m.Fail.Reason)
	default:
		return nil, sdkerrors.Wrap(types.ErrInvalidRequest, "execute msg must have exactly one of set, delete, fail")
	}
}

func query(msg []byte, store storetypes.KVReader, gasMeter storetypes.GasMeter) ([]byte, error) {
	var m queryMsg
	if err := decodeStrict(msg, &m); err != nil {
		return nil, err
	}

	switch {
	case m.Get != nil && m.List == nil:
		if err := validKey(m.Get.Key); err != nil {
			return nil, err
		}
		bz, err := store.Get([]byte(m.Get.Key))
		if err != nil {
			return nil, err
		}
		var res GetResponse
		if bz != nil {
			v := string(bz)
			res.Value = &v
		}
		return json.Marshal(res)
	case m.List != nil && m.Get == nil:
		iter, err := store.Iterator(nil, nil)
		if err != nil {
			return nil, err
		}
		defer iter.Close()

		res := ListResponse{Entries: []Entry{}}
		for ; iter.Valid(); iter.Next() {
			if err := gasMeter.ConsumeGas(GasCostPerEntry, "wasm list entry"); err != nil {
				return nil, err
			}
			res.Entries = append(res.Entries, Entry{Key: string(iter.Key()), Value: string(iter.Value())})
		}
		if err := iter.Error(); err != nil {
			return nil, err
		}
		return json.Marshal(res)
	default:
		return nil, sdkerrors.Wrap(types.ErrInvalidRequest, "query msg must have exactly one of get, list")
	}
}
