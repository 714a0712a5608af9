package keeper_test

import (
	"encoding/json"
	"math/rand"
	"testing"

	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/stretchr/testify/require"

	"github.com/babylonchain/chainkit/testutil/datagen"
	sdk "github.com/babylonchain/chainkit/types"
	"github.com/babylonchain/chainkit/types/query"
	"github.com/babylonchain/chainkit/x/wasm/engine/kvvm"
	"github.com/babylonchain/chainkit/x/wasm/types"
)

func TestGRPCQueries(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	k, s, _ := setupKVVM(t, types.DefaultParams())
	creator := datagen.GenRandomAccAddress(r)

	ctx := s.TxContext(testGasLimit)
	var codeIDs []uint64
	for i := 0; i < 3; i++ {
		codeID, _, err := k.StoreCode(ctx, creator, datagen.GenRandomWasmCode(r, 40+i), nil)
		require.NoError(t, err)
		codeIDs = append(codeIDs, codeID)
	}
	var contracts []sdk.AccAddress
	for i := 0; i < 5; i++ {
		addr, _, err := k.Instantiate(ctx, codeIDs[0], creator, nil, []byte(`{"owner":"alice"}`), "kv")
		require.NoError(t, err)
		contracts = append(contracts, addr)
	}
	s.Commit()
	qctx := s.QueryContext()

	t.Run("contract info", func(t *testing.T) {
		res, err := k.ContractInfo(qctx, &types.QueryContractInfoRequest{Address: contracts[0].String()})
		require.NoError(t, err)
		require.Equal(t, codeIDs[0], res.ContractInfo.CodeID)
		require.Equal(t, creator.String(), res.ContractInfo.Creator)

		_, err = k.ContractInfo(qctx, &types.QueryContractInfoRequest{Address: datagen.GenRandomContractAddress(r).String()})
		require.ErrorIs(t, err, types.ErrNotFound)
		_, err = k.ContractInfo(qctx, &types.QueryContractInfoRequest{Address: "bad"})
		require.ErrorIs(t, err, sdkerrors.ErrInvalidAddress)
		_, err = k.ContractInfo(qctx, nil)
		require.ErrorIs(t, err, sdkerrors.ErrInvalidRequest)
	})

	t.Run("contracts by code", func(t *testing.T) {
		var seen []string
		var key []byte
		for {
			res, err := k.ContractsByCode(qctx, &types.QueryContractsByCodeRequest{
				CodeID:     codeIDs[0],
				Pagination: &query.PageRequest{Key: key, Limit: 2},
			})
			require.NoError(t, err)
			require.LessOrEqual(t, len(res.Contracts), 2)
			seen = append(seen, res.Contracts...)
			if res.Pagination.NextKey == nil {
				break
			}
			key = res.Pagination.NextKey
		}
		require.Len(t, seen, len(contracts))
		for _, addr := range contracts {
			require.Contains(t, seen, addr.String())
		}

		res, err := k.ContractsByCode(qctx, &types.QueryContractsByCodeRequest{CodeID: codeIDs[1]})
		require.NoError(t, err)
		require.Empty(t, res.Contracts)

		_, err = k.ContractsByCode(qctx, &types.QueryContractsByCodeRequest{CodeID: 0})
		require.ErrorIs(t, err, types.ErrInvalidRequest)
	})

	t.Run("contract state", func(t *testing.T) {
		raw, err := k.RawContractState(qctx, &types.QueryRawContractStateRequest{Address: contracts[1].String(), QueryData: []byte("owner")})
		require.NoError(t, err)
		require.Equal(t, []byte("alice"), raw.Data)

		raw, err = k.RawContractState(qctx, &types.QueryRawContractStateRequest{Address: contracts[1].String(), QueryData: []byte("missing")})
		require.NoError(t, err)
		require.Nil(t, raw.Data)

		_, err = k.RawContractState(qctx, &types.QueryRawContractStateRequest{Address: datagen.GenRandomContractAddress(r).String(), QueryData: []byte("owner")})
		require.ErrorIs(t, err, types.ErrNotFound)

		smart, err := k.SmartContractState(qctx, &types.QuerySmartContractStateRequest{Address: contracts[1].String(), QueryData: []byte(`{"get":{"key":"owner"}}`)})
		require.NoError(t, err)
		require.JSONEq(t, `{"value":"alice"}`, string(smart.Data))

		_, err = k.SmartContractState(qctx, &types.QuerySmartContractStateRequest{Address: contracts[1].String()})
		require.ErrorIs(t, err, types.ErrInvalidRequest)
	})

	t.Run("codes", func(t *testing.T) {
		res, err := k.Code(qctx, &types.QueryCodeRequest{CodeID: codeIDs[2]})
		require.NoError(t, err)
		require.Equal(t, codeIDs[2], res.CodeInfo.CodeID)
		require.Len(t, res.Data, 42)
		require.Equal(t, types.AccessTypeEverybody, res.CodeInfo.InstantiatePermission.Permission)

		_, err = k.Code(qctx, &types.QueryCodeRequest{CodeID: 99})
		require.ErrorIs(t, err, types.ErrNotFound)

		page, err := k.Codes(qctx, &types.QueryCodesRequest{Pagination: &query.PageRequest{Limit: 2, CountTotal: true}})
		require.NoError(t, err)
		require.Len(t, page.CodeInfos, 2)
		require.Equal(t, uint64(3), page.Pagination.Total)
		require.Equal(t, codeIDs[0], page.CodeInfos[0].CodeID)
		require.Equal(t, codeIDs[1], page.CodeInfos[1].CodeID)

		page, err = k.Codes(qctx, &types.QueryCodesRequest{Pagination: &query.PageRequest{Offset: 2}})
		require.NoError(t, err)
		require.Len(t, page.CodeInfos, 1)
		require.Equal(t, codeIDs[2], page.CodeInfos[0].CodeID)
	})

	t.Run("params", func(t *testing.T) {
		res, err := k.Params(qctx, &types.QueryParamsRequest{})
		require.NoError(t, err)
		require.Equal(t, types.DefaultParams(), *res.Params)
	})
}

func TestSmartQueryDoesNotWrite(t *testing.T) {
	r := rand.New(rand.NewSource(12))
	k, s, _ := setupKVVM(t, types.DefaultParams())
	creator := datagen.GenRandomAccAddress(r)

	ctx := s.TxContext(testGasLimit)
	codeID, _, err := k.StoreCode(ctx, creator, datagen.GenRandomWasmCode(r, 16), nil)
	require.NoError(t, err)
	addr, _, err := k.Instantiate(ctx, codeID, creator, nil, []byte(`{"b":"2","a":"1"}`), "kv")
	require.NoError(t, err)
	s.Commit()

	bz, err := k.QuerySmart(s.QueryContext(), addr, []byte(`{"list":{}}`))
	require.NoError(t, err)
	var list kvvm.ListResponse
	require.NoError(t, json.Unmarshal(bz, &list))
	require.Equal(t, []kvvm.Entry{{Key: "a", Value: "1"}, {Key: "b", Value: "2"}}, list.Entries)

	_, err = k.QuerySmart(s.QueryContext(), addr, []byte(`{"set":{"key":"a","value":"x"}}`))
	require.ErrorIs(t, err, types.ErrInvalidRequest)
}
