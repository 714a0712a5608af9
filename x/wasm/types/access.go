package types

import (
	"fmt"

	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/gogo/protobuf/proto"

	sdk "github.com/babylonchain/chainkit/types"
)

// AccessType is the permission model of code upload and instantiation.
type AccessType int32

const (
	AccessTypeUnspecified    AccessType = 0
	AccessTypeNobody         AccessType = 1
	AccessTypeEverybody      AccessType = 3
	AccessTypeAnyOfAddresses AccessType = 4
)

var AccessType_name = map[int32]string{
	0: "ACCESS_TYPE_UNSPECIFIED",
	1: "ACCESS_TYPE_NOBODY",
	3: "ACCESS_TYPE_EVERYBODY",
	4: "ACCESS_TYPE_ANY_OF_ADDRESSES",
}

var AccessType_value = map[string]int32{
	"ACCESS_TYPE_UNSPECIFIED":      0,
	"ACCESS_TYPE_NOBODY":           1,
	"ACCESS_TYPE_EVERYBODY":        3,
	"ACCESS_TYPE_ANY_OF_ADDRESSES": 4,
}

func init() {
	proto.RegisterEnum("chainkit.wasm.v1.AccessType", AccessType_name, AccessType_value)
}

func (x AccessType) String() string {
	return proto.EnumName(AccessType_name, int32(x))
}

// AccessConfig is an access type plus the addresses it names.
type AccessConfig struct {
	Permission AccessType `protobuf:"varint,1,opt,name=permission,proto3,enum=chainkit.wasm.v1.AccessType" json:"permission,omitempty" yaml:"permission"`
	Addresses  []string   `protobuf:"bytes,2,rep,name=addresses,proto3" json:"addresses,omitempty" yaml:"addresses"`
}

func (m *AccessConfig) Reset()                { *m = AccessConfig{} }
func (m *AccessConfig) String() string        { return proto.CompactTextString(m) }
func (*AccessConfig) ProtoMessage()           {}
func (*AccessConfig) XXX_MessageName() string { return "chainkit.wasm.v1.AccessConfig" }

var (
	AllowEverybody = AccessConfig{Permission: AccessTypeEverybody}
	AllowNobody    = AccessConfig{Permission: AccessTypeNobody}
)

// With returns a config of type a. Only AccessTypeAnyOfAddresses uses addrs.
func (a AccessType) With(addrs ...sdk.AccAddress) AccessConfig {
	switch a {
	case AccessTypeNobody:
		return AllowNobody
	case AccessTypeEverybody:
		return AllowEverybody
	case AccessTypeAnyOfAddresses:
		bech32Addrs := make([]string, len(addrs))
		for i, v := range addrs {
			bech32Addrs[i] = v.String()
		}
		return AccessConfig{Permission: AccessTypeAnyOfAddresses, Addresses: bech32Addrs}
	}
	panic(fmt.Sprintf("unsupported access type %s", a))
}

// ValidateBasic performs stateless checks.
func (a AccessConfig) ValidateBasic() error {
	switch a.Permission {
	case AccessTypeUnspecified:
		return sdkerrors.Wrap(ErrInvalidRequest, "type: unspecified")
	case AccessTypeNobody, AccessTypeEverybody:
		if len(a.Addresses) != 0 {
			return sdkerrors.Wrap(ErrInvalidRequest, "addresses must be empty")
		}
		return nil
	case AccessTypeAnyOfAddresses:
		if len(a.Addresses) == 0 {
			return sdkerrors.Wrap(ErrInvalidRequest, "addresses must not be empty")
		}
		seen := make(map[string]bool, len(a.Addresses))
		for _, addr := range a.Addresses {
			if _, err := sdk.AccAddressFromBech32(addr); err != nil {
				return sdkerrors.Wrapf(sdkerrors.ErrInvalidAddress, "address %s: %v", addr, err)
			}
			if seen[addr] {
				return sdkerrors.Wrapf(ErrInvalidRequest, "duplicate address %s", addr)
			}
			seen[addr] = true
		}
		return nil
	}
	return sdkerrors.Wrapf(ErrInvalidRequest, "unknown type: %d", a.Permission)
}

// Allowed reports whether actor passes the access check.
func (a AccessConfig) Allowed(actor sdk.AccAddress) bool {
	switch a.Permission {
	case AccessTypeNobody:
		return false
	case AccessTypeEverybody:
		return true
	case AccessTypeAnyOfAddresses:
		for _, addr := range a.Addresses {
			if addr == actor.String() {
				return true
			}
		}
		return false
	default:
		return false
	}
}
