package codec

import (
	"bytes"
	"fmt"
	"reflect"
	"sync"

	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/gogo/protobuf/jsonpb"
	"github.com/gogo/protobuf/proto"
	gogotypes "github.com/gogo/protobuf/types"

	sdk "github.com/babylonchain/chainkit/types"
)

// BinaryCodec encodes state records and wire messages.
type BinaryCodec interface {
	Marshal(o proto.Message) ([]byte, error)
	MustMarshal(o proto.Message) []byte
	Unmarshal(bz []byte, ptr proto.Message) error
	MustUnmarshal(bz []byte, ptr proto.Message)

	PackAny(msg proto.Message) (*gogotypes.Any, error)
	UnpackMsg(any *gogotypes.Any) (sdk.Msg, error)
}

// JSONCodec encodes genesis states and query responses for humans.
type JSONCodec interface {
	MarshalJSON(o proto.Message) ([]byte, error)
	MustMarshalJSON(o proto.Message) []byte
	UnmarshalJSON(bz []byte, ptr proto.Message) error
	MustUnmarshalJSON(bz []byte, ptr proto.Message)
}

// Codec is the binary and JSON codec handed to modules.
type Codec interface {
	BinaryCodec
	JSONCodec

	RegisterMsgs(msgs ...sdk.Msg)
}

// ProtoCodec is the protobuf Codec. Only messages registered with it
// can be unpacked from an Any.
type ProtoCodec struct {
	mtx  sync.RWMutex
	msgs map[string]reflect.Type
}

var _ Codec = (*ProtoCodec)(nil)

func NewProtoCodec() *ProtoCodec {
	return &ProtoCodec{msgs: make(map[string]reflect.Type)}
}

// RegisterMsgs makes msgs decodable from transactions. Every msg type must
// carry a proto message name.
func (pc *ProtoCodec) RegisterMsgs(msgs ...sdk.Msg) {
	pc.mtx.Lock()
	defer pc.mtx.Unlock()

	for _, msg := range msgs {
		typeURL := MsgTypeURL(msg)
		if typeURL == "/" {
			panic(fmt.Sprintf("%T has no proto message name", msg))
		}
		if prev, ok := pc.msgs[typeURL]; ok && prev != reflect.TypeOf(msg) {
			panic(fmt.Sprintf("type URL %s registered twice", typeURL))
		}
		pc.msgs[typeURL] = reflect.TypeOf(msg)
	}
}

// MsgTypeURLs lists the registered message type URLs.
func (pc *ProtoCodec) MsgTypeURLs() []string {
	pc.mtx.RLock()
	defer pc.mtx.RUnlock()

	urls := make([]string, 0, len(pc.msgs))
	for url := range pc.msgs {
		urls = append(urls, url)
	}
	return urls
}

func (pc *ProtoCodec) Marshal(o proto.Message) ([]byte, error) {
	return proto.Marshal(o)
}

func (pc *ProtoCodec) MustMarshal(o proto.Message) []byte {
	bz, err := pc.Marshal(o)
	if err != nil {
		panic(err)
	}
	return bz
}

func (pc *ProtoCodec) Unmarshal(bz []byte, ptr proto.Message) error {
	return proto.Unmarshal(bz, ptr)
}

func (pc *ProtoCodec) MustUnmarshal(bz []byte, ptr proto.Message) {
	if err := pc.Unmarshal(bz, ptr); err != nil {
		panic(err)
	}
}

// MarshalJSON encodes o with the proto field names, emitting defaults.
func (pc *ProtoCodec) MarshalJSON(o proto.Message) ([]byte, error) {
	return ProtoMarshalJSON(o)
}

func (pc *ProtoCodec) MustMarshalJSON(o proto.Message) []byte {
	bz, err := pc.MarshalJSON(o)
	if err != nil {
		panic(err)
	}
	return bz
}

// UnmarshalJSON rejects unknown fields.
func (pc *ProtoCodec) UnmarshalJSON(bz []byte, ptr proto.Message) error {
	unmarshaler := jsonpb.Unmarshaler{}
	return unmarshaler.Unmarshal(bytes.NewReader(bz), ptr)
}

func (pc *ProtoCodec) MustUnmarshalJSON(bz []byte, ptr proto.Message) {
	if err := pc.UnmarshalJSON(bz, ptr); err != nil {
		panic(err)
	}
}

// ProtoMarshalJSON encodes msg with jsonpb.
func ProtoMarshalJSON(msg proto.Message) ([]byte, error) {
	jm := &jsonpb.Marshaler{OrigName: true, EmitDefaults: true}

	buf := new(bytes.Buffer)
	if err := jm.Marshal(buf, msg); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// PackAny wraps msg in an Any carrying its type URL.
func (pc *ProtoCodec) PackAny(msg proto.Message) (*gogotypes.Any, error) {
	bz, err := pc.Marshal(msg)
	if err != nil {
		return nil, err
	}
	return &gogotypes.Any{TypeUrl: MsgTypeURL(msg), Value: bz}, nil
}

// UnpackMsg decodes a registered message from an Any.
func (pc *ProtoCodec) UnpackMsg(any *gogotypes.Any) (sdk.Msg, error) {
	if any == nil {
		return nil, sdkerrors.Wrap(sdkerrors.ErrTxDecode, "nil message")
	}

	pc.mtx.RLock()
	typ, ok := pc.msgs[any.TypeUrl]
	pc.mtx.RUnlock()
	if !ok {
		return nil, sdkerrors.Wrapf(sdkerrors.ErrUnknownRequest, "unrecognized message type %s", any.TypeUrl)
	}

	msg := reflect.New(typ.Elem()).Interface().(sdk.Msg)
	if err := pc.Unmarshal(any.Value, msg); err != nil {
		return nil, sdkerrors.Wrapf(sdkerrors.ErrTxDecode, "decode %s: %v", any.TypeUrl, err)
	}
	return msg, nil
}

// MsgTypeURL returns the Any type URL of msg.
func MsgTypeURL(msg proto.Message) string {
	return "/" + proto.MessageName(msg)
}
