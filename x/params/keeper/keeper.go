package keeper

import (
	"fmt"
	"sort"

	"github.com/tendermint/tendermint/libs/log"

	"github.com/babylonchain/chainkit/codec"
	storetypes "github.com/babylonchain/chainkit/store/types"
	sdk "github.com/babylonchain/chainkit/types"
	"github.com/babylonchain/chainkit/x/params/types"
)

// Keeper issues the subspaces of the params namespace.
type Keeper struct {
	cdc    codec.BinaryCodec
	key    storetypes.StoreKey
	spaces map[string]*types.Subspace
}

func NewKeeper(cdc codec.BinaryCodec, key storetypes.StoreKey) Keeper {
	return Keeper{
		cdc:    cdc,
		key:    key,
		spaces: make(map[string]*types.Subspace),
	}
}

func (k Keeper) Logger(ctx sdk.QueryableContext) log.Logger {
	return ctx.Logger().With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

// Subspace allocates subspace name. It panics if the name is empty or taken.
func (k Keeper) Subspace(name string) types.Subspace {
	if name == "" {
		panic("cannot use empty string for subspace")
	}
	if _, ok := k.spaces[name]; ok {
		panic(fmt.Sprintf("subspace %s already occupied", name))
	}

	space := types.NewSubspace(k.key, name)
	k.spaces[name] = &space

	return space
}

// GetSubspace returns an existing subspace.
func (k Keeper) GetSubspace(name string) (types.Subspace, bool) {
	space, ok := k.spaces[name]
	if !ok {
		return types.Subspace{}, false
	}
	return *space, true
}

// GetSubspaces returns every subspace sorted by name.
func (k Keeper) GetSubspaces() []types.Subspace {
	names := make([]string, 0, len(k.spaces))
	for name := range k.spaces {
		names = append(names, name)
	}
	sort.Strings(names)

	spaces := make([]types.Subspace, 0, len(names))
	for _, name := range names {
		spaces = append(spaces, *k.spaces[name])
	}
	return spaces
}
