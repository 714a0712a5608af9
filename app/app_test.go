package app_test

import (
	"crypto/sha256"
	"encoding/json"
	"math/rand"
	"testing"
	"time"

	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/gogo/protobuf/proto"
	"github.com/stretchr/testify/require"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
	dbm "github.com/tendermint/tm-db"

	"github.com/babylonchain/chainkit/app"
	"github.com/babylonchain/chainkit/testutil/datagen"
	sdk "github.com/babylonchain/chainkit/types"
	authtypes "github.com/babylonchain/chainkit/x/auth/types"
	minttypes "github.com/babylonchain/chainkit/x/mint/types"
	wasmtypes "github.com/babylonchain/chainkit/x/wasm/types"
)

const txGas = 2_000_000

func query(t *testing.T, a *app.TestApp, path string, req, res proto.Message) abci.ResponseQuery {
	t.Helper()
	bz, err := a.AppCodec().Marshal(req)
	require.NoError(t, err)
	resp := a.Query(abci.RequestQuery{Path: path, Data: bz})
	if resp.Code == 0 && res != nil {
		require.NoError(t, a.AppCodec().Unmarshal(resp.Value, res))
	}
	return resp
}

func account(t *testing.T, a *app.TestApp, addr sdk.AccAddress) *authtypes.BaseAccount {
	var res authtypes.QueryAccountResponse
	resp := query(t, a, authtypes.QueryPathAccount, &authtypes.QueryAccountRequest{Address: addr.String()}, &res)
	require.Zero(t, resp.Code, resp.Log)
	return res.Account
}

func smartQuery(t *testing.T, a *app.TestApp, contract sdk.AccAddress, msg string) string {
	var res wasmtypes.QuerySmartContractStateResponse
	resp := query(t, a, wasmtypes.QueryPathSmartContractState, &wasmtypes.QuerySmartContractStateRequest{
		Address:   contract.String(),
		QueryData: []byte(msg),
	}, &res)
	require.Zero(t, resp.Code, resp.Log)
	return string(res.Data)
}

func TestGenesisAccounts(t *testing.T) {
	r := rand.New(rand.NewSource(time.Now().Unix()))
	a := app.Setup(t, r, 3)
	a.NextBlock()

	for _, acc := range a.Accounts {
		stored := account(t, a, acc.Address)
		require.Equal(t, acc.AccountNumber, stored.AccountNumber)
		require.Equal(t, acc.Sequence, stored.Sequence)
	}
}

func TestContractLifecycle(t *testing.T) {
	r := rand.New(rand.NewSource(time.Now().Unix()))
	a := app.Setup(t, r, 2)
	a.NextBlock()
	creator, user := a.Accounts[0], a.Accounts[1]

	code := datagen.GenRandomWasmCode(r, 64)
	_, res := a.NextBlock(a.SignTx(creator, txGas, &wasmtypes.MsgStoreCode{
		Sender:       creator.Address.String(),
		WASMByteCode: code,
	}))
	require.Zero(t, res[0].Code, res[0].Log)

	_, res = a.NextBlock(a.SignTx(user, txGas, &wasmtypes.MsgInstantiateContract{
		Sender: user.Address.String(),
		Admin:  user.Address.String(),
		CodeID: 1,
		Label:  "counter",
		Msg:    []byte(`{"owner":"bob"}`),
	}))
	require.Zero(t, res[0].Code, res[0].Log)
	contract := wasmtypes.BuildContractAddress(1, 1)

	_, res = a.NextBlock(a.SignTx(user, txGas, &wasmtypes.MsgExecuteContract{
		Sender:   user.Address.String(),
		Contract: contract.String(),
		Msg:      []byte(`{"set":{"key":"owner","value":"carol"}}`),
	}))
	require.Zero(t, res[0].Code, res[0].Log)
	require.Positive(t, res[0].GasUsed)
	require.LessOrEqual(t, res[0].GasUsed, res[0].GasWanted)

	require.JSONEq(t, `{"value":"carol"}`, smartQuery(t, a, contract, `{"get":{"key":"owner"}}`))

	// a contract failure aborts the transaction
	_, res = a.NextBlock(a.SignTx(user, txGas, &wasmtypes.MsgExecuteContract{
		Sender:   user.Address.String(),
		Contract: contract.String(),
		Msg:      []byte(`{"fail":{"reason":"nope"}}`),
	}))
	require.NotZero(t, res[0].Code)
	require.Equal(t, user.Sequence, account(t, a, user.Address).Sequence)
}

func TestFailedMessageRevertsWholeTx(t *testing.T) {
	r := rand.New(rand.NewSource(time.Now().Unix()))
	a := app.Setup(t, r, 1)
	a.NextBlock()
	acc := a.Accounts[0]

	tx := a.SignTx(acc, txGas,
		&wasmtypes.MsgStoreCode{
			Sender:       acc.Address.String(),
			WASMByteCode: datagen.GenRandomWasmCode(r, 32),
		},
		&wasmtypes.MsgInstantiateContract{
			Sender: acc.Address.String(),
			CodeID: 99,
			Label:  "missing",
			Msg:    []byte(`{}`),
		},
	)
	_, res := a.NextBlock(tx)
	require.Len(t, res, 1)
	require.Equal(t, wasmtypes.ErrNotFound.ABCICode(), res[0].Code, res[0].Log)
	require.Equal(t, wasmtypes.ModuleName, res[0].Codespace)

	// the stored code is gone but the ante checks still used the sequence
	var codes wasmtypes.QueryCodesResponse
	resp := query(t, a, wasmtypes.QueryPathCodes, &wasmtypes.QueryCodesRequest{}, &codes)
	require.Zero(t, resp.Code, resp.Log)
	require.Empty(t, codes.CodeInfos)
	require.Equal(t, acc.Sequence, account(t, a, acc.Address).Sequence)

	// the code id was not consumed
	_, res = a.NextBlock(a.SignTx(acc, txGas, &wasmtypes.MsgStoreCode{
		Sender:       acc.Address.String(),
		WASMByteCode: datagen.GenRandomWasmCode(r, 32),
	}))
	require.Zero(t, res[0].Code, res[0].Log)
	var code wasmtypes.QueryCodeResponse
	resp = query(t, a, wasmtypes.QueryPathCode, &wasmtypes.QueryCodeRequest{CodeID: 1}, &code)
	require.Zero(t, resp.Code, resp.Log)
}

func TestOnlyAuthorityUpdatesParams(t *testing.T) {
	r := rand.New(rand.NewSource(time.Now().Unix()))
	a := app.Setup(t, r, 2)
	a.NextBlock()
	authority, other := a.Accounts[0], a.Accounts[1]

	params := wasmtypes.DefaultParams()
	params.MaxContractSize = 100

	_, res := a.NextBlock(a.SignTx(other, txGas, &wasmtypes.MsgUpdateParams{
		Authority: other.Address.String(),
		Params:    &params,
	}))
	require.Equal(t, wasmtypes.ErrUnauthorized.ABCICode(), res[0].Code, res[0].Log)

	_, res = a.NextBlock(a.SignTx(authority, txGas, &wasmtypes.MsgUpdateParams{
		Authority: authority.Address.String(),
		Params:    &params,
	}))
	require.Zero(t, res[0].Code, res[0].Log)

	// oversized code is rejected before anything is written
	_, res = a.NextBlock(a.SignTx(other, txGas, &wasmtypes.MsgStoreCode{
		Sender:       other.Address.String(),
		WASMByteCode: datagen.GenRandomWasmCode(r, 200),
	}))
	require.Equal(t, wasmtypes.ErrInvalidRequest.ABCICode(), res[0].Code, res[0].Log)
}

func TestMintRunsEveryBlock(t *testing.T) {
	r := rand.New(rand.NewSource(time.Now().Unix()))
	a := app.Setup(t, r, 1)

	resBegin, _ := a.NextBlock()
	var eventTypes []string
	for _, event := range resBegin.Events {
		eventTypes = append(eventTypes, event.Type)
	}
	require.Contains(t, eventTypes, minttypes.EventTypeMint)

	a.NextBlock()
	var res minttypes.QueryAnnualProvisionsResponse
	resp := query(t, a, minttypes.QueryPathAnnualProvisions, &minttypes.QueryAnnualProvisionsRequest{}, &res)
	require.Zero(t, resp.Code, resp.Log)
	require.NotEmpty(t, res.AnnualProvisions)
}

func TestUnknownQueryPath(t *testing.T) {
	r := rand.New(rand.NewSource(time.Now().Unix()))
	a := app.Setup(t, r, 1)
	a.NextBlock()

	resp := a.Query(abci.RequestQuery{Path: "/chainkit.nothing.v1.Query/Nothing"})
	require.Equal(t, sdkerrors.ErrUnknownRequest.ABCICode(), resp.Code)
}

func TestRestartReloadsContracts(t *testing.T) {
	r := rand.New(rand.NewSource(time.Now().Unix()))
	a := app.Setup(t, r, 1)
	a.NextBlock()
	acc := a.Accounts[0]

	_, res := a.NextBlock(
		a.SignTx(acc, txGas, &wasmtypes.MsgStoreCode{
			Sender:       acc.Address.String(),
			WASMByteCode: datagen.GenRandomWasmCode(r, 48),
		}),
		a.SignTx(acc, txGas, &wasmtypes.MsgInstantiateContract{
			Sender: acc.Address.String(),
			CodeID: 1,
			Label:  "kv",
			Msg:    []byte(`{"a":"1"}`),
		}),
	)
	for _, rs := range res {
		require.Zero(t, rs.Code, rs.Log)
	}
	height := a.LastBlockHeight()
	appHash := a.LastCommitID().Hash

	restarted := a.Restart()
	require.Equal(t, height, restarted.LastBlockHeight())
	require.Equal(t, appHash, restarted.LastCommitID().Hash)
	require.Zero(t, restarted.WasmEngine.CacheLen())

	contract := wasmtypes.BuildContractAddress(1, 1)
	_, res = restarted.NextBlock(restarted.SignTx(acc, txGas, &wasmtypes.MsgExecuteContract{
		Sender:   acc.Address.String(),
		Contract: contract.String(),
		Msg:      []byte(`{"set":{"key":"b","value":"2"}}`),
	}))
	require.Zero(t, res[0].Code, res[0].Log)
	require.JSONEq(t,
		`{"entries":[{"key":"a","value":"1"},{"key":"b","value":"2"}]}`,
		smartQuery(t, restarted, contract, `{"list":{}}`))
	require.Equal(t, 1, restarted.WasmEngine.CacheLen())
}

func TestUncommittedCodeNeverReachesEngine(t *testing.T) {
	r := rand.New(rand.NewSource(time.Now().Unix()))
	a := app.Setup(t, r, 1)
	a.NextBlock()
	acc := a.Accounts[0]

	code := datagen.GenRandomWasmCode(r, 64)
	checksum := sha256.Sum256(code)
	storeCode := &wasmtypes.MsgStoreCode{Sender: acc.Address.String(), WASMByteCode: code}

	resp := a.Query(abci.RequestQuery{Path: "/app/simulate", Data: a.SignTx(acc, txGas, storeCode)})
	require.Zero(t, resp.Code, resp.Log)
	acc.Sequence--
	require.False(t, a.WasmEngine.HasCode(checksum[:]))
	require.Zero(t, a.WasmEngine.CacheLen())

	// a reverted upload leaves nothing behind either
	_, res := a.NextBlock(a.SignTx(acc, txGas, storeCode, &wasmtypes.MsgInstantiateContract{
		Sender: acc.Address.String(),
		CodeID: 99,
		Label:  "missing",
		Msg:    []byte(`{}`),
	}))
	require.NotZero(t, res[0].Code)
	require.False(t, a.WasmEngine.HasCode(checksum[:]))

	_, res = a.NextBlock(a.SignTx(acc, txGas, storeCode))
	require.Zero(t, res[0].Code, res[0].Log)
	require.False(t, a.WasmEngine.HasCode(checksum[:]))

	// params written by a simulated tx do not resize the cache
	params := wasmtypes.DefaultParams()
	params.MemoryCacheSize = 1
	resp = a.Query(abci.RequestQuery{Path: "/app/simulate", Data: a.SignTx(acc, txGas, &wasmtypes.MsgUpdateParams{
		Authority: acc.Address.String(),
		Params:    &params,
	})})
	require.Zero(t, resp.Code, resp.Log)
	acc.Sequence--
	a.NextBlock()

	for i := 0; i < 2; i++ {
		_, res = a.NextBlock(a.SignTx(acc, txGas, &wasmtypes.MsgStoreCode{
			Sender:       acc.Address.String(),
			WASMByteCode: datagen.GenRandomWasmCode(r, 32),
		}))
		require.Zero(t, res[0].Code, res[0].Log)
	}
	for codeID := uint64(1); codeID <= 3; codeID++ {
		_, res = a.NextBlock(a.SignTx(acc, txGas, &wasmtypes.MsgInstantiateContract{
			Sender: acc.Address.String(),
			CodeID: codeID,
			Label:  "kv",
			Msg:    []byte(`{}`),
		}))
		require.Zero(t, res[0].Code, res[0].Log)
	}
	require.Equal(t, 3, a.WasmEngine.CacheLen())
}

func TestExportImportRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(time.Now().Unix()))
	a := app.Setup(t, r, 2)
	a.NextBlock()
	acc := a.Accounts[1]

	_, res := a.NextBlock(
		a.SignTx(acc, txGas, &wasmtypes.MsgStoreCode{
			Sender:       acc.Address.String(),
			WASMByteCode: datagen.GenRandomWasmCode(r, 40),
		}),
		a.SignTx(acc, txGas, &wasmtypes.MsgInstantiateContract{
			Sender: acc.Address.String(),
			Admin:  acc.Address.String(),
			CodeID: 1,
			Label:  "exported",
			Msg:    []byte(`{"k":"v"}`),
		}),
	)
	for _, rs := range res {
		require.Zero(t, rs.Code, rs.Log)
	}

	exported, err := a.ExportAppStateAndValidators(0)
	require.NoError(t, err)
	require.Equal(t, a.LastBlockHeight(), exported.Height)
	require.Equal(t, app.DefaultConsensusParams.Block.MaxGas, exported.ConsensusParams.Block.MaxGas)

	var genesis app.GenesisState
	require.NoError(t, json.Unmarshal(exported.AppState, &genesis))
	require.NoError(t, app.ModuleBasics.ValidateGenesis(a.AppCodec(), genesis))

	imported, err := app.NewChainApp(log.NewNopLogger(), dbm.NewMemDB(), app.AppOptionsMap{
		app.FlagChainID:   app.TestChainID,
		app.FlagAuthority: a.Accounts[0].Address.String(),
	})
	require.NoError(t, err)
	imported.InitChain(abci.RequestInitChain{
		ChainId:         app.TestChainID,
		Time:            time.Unix(1_600_000_000, 0).UTC(),
		ConsensusParams: exported.ConsensusParams,
		AppStateBytes:   exported.AppState,
	})
	header := a.Header()
	header.Height = 1
	imported.BeginBlock(abci.RequestBeginBlock{Header: header})
	imported.EndBlock(abci.RequestEndBlock{Height: 1})
	imported.Commit()

	reexported, err := imported.ExportAppStateAndValidators(0)
	require.NoError(t, err)

	var regenesis app.GenesisState
	require.NoError(t, json.Unmarshal(reexported.AppState, &regenesis))
	for _, name := range []string{authtypes.ModuleName, wasmtypes.ModuleName} {
		require.JSONEq(t, string(genesis[name]), string(regenesis[name]), name)
	}
}
