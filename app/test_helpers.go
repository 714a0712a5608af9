package app

import (
	"encoding/json"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/crypto/ed25519"
	"github.com/tendermint/tendermint/libs/log"
	tmproto "github.com/tendermint/tendermint/proto/tendermint/types"
	tmtypes "github.com/tendermint/tendermint/types"
	dbm "github.com/tendermint/tm-db"

	"github.com/babylonchain/chainkit/testutil/datagen"
	sdk "github.com/babylonchain/chainkit/types"
	authtx "github.com/babylonchain/chainkit/x/auth/tx"
	authtypes "github.com/babylonchain/chainkit/x/auth/types"
)

// TestChainID is the chain id of the apps built by Setup.
const TestChainID = "chainkit-test"

// DefaultConsensusParams defines the default Tendermint consensus params used in
// ChainApp testing.
var DefaultConsensusParams = &abci.ConsensusParams{
	Block: &abci.BlockParams{
		MaxBytes: 200000,
		MaxGas:   20_000_000,
	},
	Evidence: &tmproto.EvidenceParams{
		MaxAgeNumBlocks: 302400,
		MaxAgeDuration:  504 * time.Hour, // 3 weeks is the max duration
		MaxBytes:        10000,
	},
	Validator: &tmproto.ValidatorParams{
		PubKeyTypes: []string{
			tmtypes.ABCIPubKeyTypeEd25519,
		},
	},
}

// TestAccount is a genesis account and the key that signs for it.
type TestAccount struct {
	PrivKey       ed25519.PrivKey
	Address       sdk.AccAddress
	AccountNumber uint64
	Sequence      uint64
}

// TestApp is a ChainApp over a memory db together with its funded accounts.
// The first account is the params authority.
type TestApp struct {
	*ChainApp

	t        *testing.T
	db       dbm.DB
	Accounts []*TestAccount
}

// Setup initializes a new ChainApp with numAccounts genesis accounts and
// default module genesis. The genesis is committed with the first block.
func Setup(t *testing.T, r *rand.Rand, numAccounts int) *TestApp {
	t.Helper()
	return SetupWithGenesis(t, r, numAccounts, nil)
}

// SetupWithGenesis is like Setup but lets modify change the app state
// before InitChain.
func SetupWithGenesis(t *testing.T, r *rand.Rand, numAccounts int, modify func(GenesisState)) *TestApp {
	t.Helper()

	accs, keys := datagen.GenRandomAccounts(r, numAccounts)
	testAccs := make([]*TestAccount, numAccounts)
	for i, acc := range accs {
		testAccs[i] = &TestAccount{
			PrivKey:       keys[i],
			Address:       acc.GetAddress(),
			AccountNumber: acc.AccountNumber,
			Sequence:      acc.Sequence,
		}
	}

	db := dbm.NewMemDB()
	app := newTestApp(t, db, testAccs)

	genesisState := app.DefaultGenesis()
	authGenesis := authtypes.DefaultGenesis()
	authGenesis.Accounts = accs
	genesisState[authtypes.ModuleName] = app.AppCodec().MustMarshalJSON(authGenesis)
	if modify != nil {
		modify(genesisState)
	}

	stateBytes, err := json.MarshalIndent(genesisState, "", " ")
	require.NoError(t, err)

	app.InitChain(abci.RequestInitChain{
		ChainId:         TestChainID,
		Time:            time.Unix(1_600_000_000, 0).UTC(),
		ConsensusParams: DefaultConsensusParams,
		AppStateBytes:   stateBytes,
	})
	return app
}

func newTestApp(t *testing.T, db dbm.DB, accs []*TestAccount) *TestApp {
	opts := AppOptionsMap{FlagChainID: TestChainID}
	if len(accs) > 0 {
		opts[FlagAuthority] = accs[0].Address.String()
	}
	chainApp, err := NewChainApp(log.NewNopLogger(), db, opts)
	require.NoError(t, err)
	return &TestApp{ChainApp: chainApp, t: t, db: db, Accounts: accs}
}

// Restart builds a new app over the same db, as a node does after a
// restart.
func (app *TestApp) Restart() *TestApp {
	return newTestApp(app.t, app.db, app.Accounts)
}

// Header returns the header of the next block.
func (app *TestApp) Header() tmproto.Header {
	height := app.LastBlockHeight() + 1
	return tmproto.Header{
		ChainID: TestChainID,
		Height:  height,
		Time:    time.Unix(1_600_000_000+height*5, 0).UTC(),
	}
}

// SignTx signs msgs by acc with the given gas limit and advances the
// sequence of acc.
func (app *TestApp) SignTx(acc *TestAccount, gasLimit uint64, msgs ...sdk.Msg) []byte {
	app.t.Helper()
	txBytes, err := authtx.NewBuilder(app.AppCodec()).
		SetMsgs(msgs...).
		SetFee(0, gasLimit).
		Sign(acc.PrivKey, TestChainID, acc.AccountNumber, acc.Sequence)
	require.NoError(app.t, err)
	acc.Sequence++
	return txBytes
}

// NextBlock delivers txs in a new block and commits it.
func (app *TestApp) NextBlock(txs ...[]byte) (abci.ResponseBeginBlock, []abci.ResponseDeliverTx) {
	header := app.Header()
	resBegin := app.BeginBlock(abci.RequestBeginBlock{Header: header})
	results := make([]abci.ResponseDeliverTx, 0, len(txs))
	for _, tx := range txs {
		results = append(results, app.DeliverTx(abci.RequestDeliverTx{Tx: tx}))
	}
	app.EndBlock(abci.RequestEndBlock{Height: header.Height})
	app.Commit()
	return resBegin, results
}

// QueryContext reads the latest committed height.
func (app *TestApp) QueryContext() *sdk.QueryContext {
	ctx, err := app.CreateQueryContext(0)
	require.NoError(app.t, err)
	return ctx
}
