package tx_test

import (
	"testing"

	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/gogo/protobuf/proto"
	"github.com/stretchr/testify/require"
	"github.com/tendermint/tendermint/crypto/ed25519"

	"github.com/babylonchain/chainkit/codec"
	sdk "github.com/babylonchain/chainkit/types"
	authtx "github.com/babylonchain/chainkit/x/auth/tx"
	"github.com/babylonchain/chainkit/x/auth/types"
)

type testMsg struct {
	Signer string `protobuf:"bytes,1,opt,name=signer,proto3" json:"signer,omitempty"`
	Value  uint64 `protobuf:"varint,2,opt,name=value,proto3" json:"value,omitempty"`
}

func (m *testMsg) Reset()                { *m = testMsg{} }
func (m *testMsg) String() string        { return proto.CompactTextString(m) }
func (*testMsg) ProtoMessage()           {}
func (*testMsg) XXX_MessageName() string { return "chainkit.test.v1.MsgValue" }
func (m *testMsg) ValidateBasic() error  { return nil }

func (m *testMsg) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{sdk.MustAccAddressFromBech32(m.Signer)}
}

func setup() (*codec.ProtoCodec, ed25519.PrivKey, sdk.AccAddress) {
	cdc := codec.NewProtoCodec()
	cdc.RegisterMsgs(&testMsg{})
	priv := ed25519.GenPrivKeyFromSecret([]byte("decoder"))
	return cdc, priv, types.AddressFromPubKey(priv.PubKey().Bytes())
}

func TestDecodeSignedTx(t *testing.T) {
	cdc, priv, addr := setup()

	msgs := []sdk.Msg{&testMsg{Signer: addr.String(), Value: 1}, &testMsg{Signer: addr.String(), Value: 2}}
	bz, err := authtx.NewBuilder(cdc).
		SetMsgs(msgs...).
		SetMemo("hello").
		SetTimeoutHeight(9).
		SetFee(25, 50_000).
		Sign(priv, "test-chain", 3, 4)
	require.NoError(t, err)

	tx, err := authtx.DefaultTxDecoder(cdc)(bz)
	require.NoError(t, err)
	require.NoError(t, tx.ValidateBasic())
	require.Equal(t, msgs, tx.GetMsgs())

	w := tx.(*authtx.Wrapper)
	require.Equal(t, "hello", w.GetMemo())
	require.Equal(t, uint64(9), w.GetTimeoutHeight())
	require.Equal(t, uint64(25), w.GetFee())
	require.Equal(t, uint64(50_000), w.GetGas())
	require.Equal(t, uint64(4), w.GetSequence())
	require.Equal(t, len(bz), w.Size())
	require.Equal(t, addr, w.GetSigner())

	signBytes, err := w.GetSignBytes("test-chain", 3)
	require.NoError(t, err)
	require.True(t, priv.PubKey().VerifySignature(signBytes, w.GetSignature()))

	otherBytes, err := w.GetSignBytes("test-chain", 4)
	require.NoError(t, err)
	require.False(t, priv.PubKey().VerifySignature(otherBytes, w.GetSignature()))

	encoded, err := authtx.DefaultTxEncoder(cdc)(tx)
	require.NoError(t, err)
	require.Equal(t, bz, encoded)
}

func TestDecodeRejects(t *testing.T) {
	cdc, priv, addr := setup()
	decode := authtx.DefaultTxDecoder(cdc)

	_, err := decode(nil)
	require.ErrorIs(t, err, sdkerrors.ErrTxDecode)

	_, err = decode([]byte{0xff, 0xff, 0xff})
	require.ErrorIs(t, err, sdkerrors.ErrTxDecode)

	// a codec without the message type cannot unpack it
	bz, err := authtx.NewBuilder(cdc).SetMsgs(&testMsg{Signer: addr.String()}).SetFee(0, 1).Sign(priv, "c", 0, 0)
	require.NoError(t, err)
	_, err = authtx.DefaultTxDecoder(codec.NewProtoCodec())(bz)
	require.ErrorIs(t, err, sdkerrors.ErrUnknownRequest)
}

func TestValidateBasic(t *testing.T) {
	cdc, priv, addr := setup()
	decode := authtx.DefaultTxDecoder(cdc)

	testCases := []struct {
		name    string
		builder *authtx.Builder
		err     error
	}{
		{"no messages", authtx.NewBuilder(cdc).SetFee(0, 10), sdkerrors.ErrInvalidRequest},
		{"zero gas", authtx.NewBuilder(cdc).SetMsgs(&testMsg{Signer: addr.String()}), sdkerrors.ErrInvalidRequest},
		{
			"foreign signer",
			authtx.NewBuilder(cdc).SetMsgs(&testMsg{Signer: sdk.NewModuleAddress("gov").String()}).SetFee(0, 10),
			types.ErrTooManySigners,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			bz, err := tc.builder.Sign(priv, "c", 0, 0)
			require.NoError(t, err)
			tx, err := decode(bz)
			require.NoError(t, err)
			require.ErrorIs(t, tx.ValidateBasic(), tc.err)
		})
	}

	// unsigned transactions
	body, err := cdc.Marshal(&types.TxBody{})
	require.NoError(t, err)
	authInfo, err := cdc.Marshal(&types.AuthInfo{Fee: &types.Fee{GasLimit: 10}})
	require.NoError(t, err)
	raw, err := cdc.Marshal(&types.TxRaw{BodyBytes: body, AuthInfoBytes: authInfo})
	require.NoError(t, err)
	tx, err := decode(raw)
	require.NoError(t, err)
	require.Error(t, tx.ValidateBasic())
}
