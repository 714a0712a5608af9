package ante_test

import (
	"strings"
	"testing"

	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/gogo/protobuf/proto"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/tendermint/tendermint/crypto/ed25519"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/babylonchain/chainkit/codec"
	storetypes "github.com/babylonchain/chainkit/store/types"
	testkeeper "github.com/babylonchain/chainkit/testutil/keeper"
	sdk "github.com/babylonchain/chainkit/types"
	"github.com/babylonchain/chainkit/x/auth/ante"
	"github.com/babylonchain/chainkit/x/auth/keeper"
	authtx "github.com/babylonchain/chainkit/x/auth/tx"
	"github.com/babylonchain/chainkit/x/auth/types"
)

const testGasLimit = 200_000

type testMsg struct {
	Signer string `protobuf:"bytes,1,opt,name=signer,proto3" json:"signer,omitempty"`
}

func (m *testMsg) Reset()                { *m = testMsg{} }
func (m *testMsg) String() string        { return proto.CompactTextString(m) }
func (*testMsg) ProtoMessage()           {}
func (*testMsg) XXX_MessageName() string { return "chainkit.test.v1.MsgTest" }
func (m *testMsg) ValidateBasic() error  { return nil }

func (m *testMsg) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{sdk.MustAccAddressFromBech32(m.Signer)}
}

type AnteTestSuite struct {
	suite.Suite

	cdc         *codec.ProtoCodec
	ak          keeper.AccountKeeper
	store       *testkeeper.TestStore
	decoder     sdk.TxDecoder
	anteHandler sdk.AnteHandler

	priv ed25519.PrivKey
	addr sdk.AccAddress
}

func (s *AnteTestSuite) SetupTest() {
	s.cdc = codec.NewProtoCodec()
	s.cdc.RegisterMsgs(&testMsg{})
	s.ak, s.store = testkeeper.AccountKeeper(s.T(), s.cdc)
	s.decoder = authtx.DefaultTxDecoder(s.cdc)

	anteHandler, err := ante.NewAnteHandler(ante.HandlerOptions{AccountKeeper: s.ak})
	s.Require().NoError(err)
	s.anteHandler = anteHandler

	s.priv = ed25519.GenPrivKeyFromSecret([]byte("ante"))
	s.addr = types.AddressFromPubKey(s.priv.PubKey().Bytes())
}

func (s *AnteTestSuite) builder() *authtx.Builder {
	return authtx.NewBuilder(s.cdc).
		SetMsgs(&testMsg{Signer: s.addr.String()}).
		SetFee(0, testGasLimit)
}

func (s *AnteTestSuite) decode(b *authtx.Builder, chainID string, accNum, seq uint64) sdk.Tx {
	bz, err := b.Sign(s.priv, chainID, accNum, seq)
	s.Require().NoError(err)
	tx, err := s.decoder(bz)
	s.Require().NoError(err)
	return tx
}

func (s *AnteTestSuite) signed(b *authtx.Builder, seq uint64) sdk.Tx {
	return s.decode(b, testkeeper.TestChainID, 0, seq)
}

func (s *AnteTestSuite) account() *types.BaseAccount {
	acc, err := s.ak.GetAccount(s.store.InitContext(), s.addr)
	s.Require().NoError(err)
	return acc
}

func (s *AnteTestSuite) TestFirstTxCreatesAccount() {
	tx := s.signed(s.builder(), 0)
	ctx := s.store.TxContext(testGasLimit)

	s.Require().NoError(s.anteHandler(ctx, tx))

	acc := s.account()
	s.Require().NotNil(acc)
	s.Require().Equal(uint64(0), acc.AccountNumber)
	s.Require().Equal(uint64(1), acc.Sequence)
	s.Require().Equal(s.priv.PubKey().Bytes(), acc.PubKey)

	events := ctx.EventsDrain()
	s.Require().Len(events, 1)
	s.Require().Equal(types.EventTypeNewAccount, events[0].Type)

	sizeTx := tx.(ante.TxWithSize)
	minGas := uint64(sizeTx.Size())*types.DefaultTxSizeCostPerByte + types.DefaultSigVerifyCostED25519
	s.Require().Greater(ctx.GasMeter().GasConsumed(), minGas)
}

func (s *AnteTestSuite) TestSequenceReplay() {
	tx := s.signed(s.builder(), 0)
	s.Require().NoError(s.anteHandler(s.store.TxContext(testGasLimit), tx))

	err := s.anteHandler(s.store.TxContext(testGasLimit), tx)
	s.Require().ErrorIs(err, sdkerrors.ErrWrongSequence)

	s.Require().NoError(s.anteHandler(s.store.TxContext(testGasLimit), s.signed(s.builder(), 1)))
	s.Require().Equal(uint64(2), s.account().Sequence)
}

func (s *AnteTestSuite) TestBadSignature() {
	tx := s.decode(s.builder(), "other-chain", 0, 0)

	err := s.anteHandler(s.store.TxContext(testGasLimit), tx)
	s.Require().ErrorIs(err, sdkerrors.ErrUnauthorized)

	// simulation charges the verification but skips it
	store := s.store
	ctx := sdk.NewSimulateTxContext(store.Pending(), store.Header(), storetypes.NewInfiniteGasMeter(), log.NewNopLogger())
	s.Require().NoError(s.anteHandler(ctx, tx))
}

func (s *AnteTestSuite) TestWrongAccountNumber() {
	tx := s.decode(s.builder(), testkeeper.TestChainID, 7, 0)
	err := s.anteHandler(s.store.TxContext(testGasLimit), tx)
	s.Require().ErrorIs(err, sdkerrors.ErrUnauthorized)
}

func (s *AnteTestSuite) TestMemoTooLarge() {
	memo := strings.Repeat("m", int(types.DefaultMaxMemoCharacters))
	s.Require().NoError(s.anteHandler(s.store.TxContext(testGasLimit), s.signed(s.builder().SetMemo(memo), 0)))

	err := s.anteHandler(s.store.TxContext(testGasLimit), s.signed(s.builder().SetMemo(memo+"m"), 1))
	s.Require().ErrorIs(err, sdkerrors.ErrMemoTooLarge)
}

func (s *AnteTestSuite) TestTimeoutHeight() {
	height := uint64(s.store.Header().Height)

	err := s.anteHandler(s.store.TxContext(testGasLimit), s.signed(s.builder().SetTimeoutHeight(height-1), 0))
	s.Require().ErrorIs(err, sdkerrors.ErrTxTimeoutHeight)

	s.Require().NoError(s.anteHandler(s.store.TxContext(testGasLimit), s.signed(s.builder().SetTimeoutHeight(height), 0)))
}

func (s *AnteTestSuite) TestMempoolFeeOnlyInCheckMode() {
	anteHandler, err := ante.NewAnteHandler(ante.HandlerOptions{AccountKeeper: s.ak, MinGasPriceMilli: 1000})
	s.Require().NoError(err)

	tx := s.signed(s.builder().SetFee(testGasLimit-1, testGasLimit), 0)
	err = anteHandler(s.store.CheckTxContext(testGasLimit), tx)
	s.Require().ErrorIs(err, sdkerrors.ErrInsufficientFee)

	s.Require().NoError(anteHandler(s.store.TxContext(testGasLimit), tx))
}

func (s *AnteTestSuite) TestConsensusMinGasPrice() {
	params := types.DefaultParams()
	params.MinGasPriceMilli = 500
	s.Require().NoError(s.ak.SetParams(s.store.InitContext(), params))

	// ceil(200_001 * 500 / 1000) = 100_001
	gas := uint64(testGasLimit + 1)
	err := s.anteHandler(s.store.TxContext(gas), s.signed(s.builder().SetFee(100_000, gas), 0))
	s.Require().ErrorIs(err, sdkerrors.ErrInsufficientFee)

	s.Require().NoError(s.anteHandler(s.store.TxContext(gas), s.signed(s.builder().SetFee(100_001, gas), 0)))
}

func (s *AnteTestSuite) TestSignerMismatch() {
	other := sdk.NewModuleAddress("other")
	tx := s.signed(s.builder().SetMsgs(&testMsg{Signer: other.String()}), 0)

	err := s.anteHandler(s.store.TxContext(testGasLimit), tx)
	s.Require().ErrorIs(err, types.ErrTooManySigners)
}

func (s *AnteTestSuite) TestOutOfGas() {
	tx := s.signed(s.builder().SetFee(0, 100), 0)
	err := s.anteHandler(s.store.TxContext(100), tx)
	s.Require().ErrorIs(err, sdkerrors.ErrOutOfGas)
	s.Require().Nil(s.account())
}

func TestAnteTestSuite(t *testing.T) {
	suite.Run(t, new(AnteTestSuite))
}

func TestRequiredFee(t *testing.T) {
	testCases := []struct {
		gas, price uint64
		fee        uint64
		ok         bool
	}{
		{0, 1000, 0, true},
		{1000, 0, 0, true},
		{1, 1, 1, true},
		{1000, 1, 1, true},
		{1001, 1, 2, true},
		{200_000, 25, 5000, true},
		{^uint64(0), 1000, ^uint64(0), true},
		{^uint64(0), 1001, 0, false},
	}

	for _, tc := range testCases {
		fee, ok := ante.RequiredFee(tc.gas, tc.price)
		require.Equal(t, tc.ok, ok, "gas %d price %d", tc.gas, tc.price)
		require.Equal(t, tc.fee, fee, "gas %d price %d", tc.gas, tc.price)
	}
}
