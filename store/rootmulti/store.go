package rootmulti

import (
	"errors"
	"fmt"
	"sync"
	"time"

	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/gogo/protobuf/proto"
	gogotypes "github.com/gogo/protobuf/types"
	"github.com/tendermint/tendermint/libs/log"
	dbm "github.com/tendermint/tm-db"

	"github.com/babylonchain/chainkit/store/cachemulti"
	"github.com/babylonchain/chainkit/store/iavl"
	"github.com/babylonchain/chainkit/store/prefix"
	"github.com/babylonchain/chainkit/store/types"
)

const (
	latestVersionKey = "s/latest"
	commitInfoKeyFmt = "s/%d" // s/<version>
	treePrefix       = "s/k:tree/"
)

var _ types.MultiStore = (*Store)(nil)

// Store is the process-wide multi store. Every registered StoreKey owns the
// disjoint key range Prefix()+key of one versioned tree.
type Store struct {
	db      dbm.DB
	keys    *types.KeyTable
	tree    *iavl.Store
	logger  log.Logger
	pruning types.PruningOptions

	mtx        sync.RWMutex
	lastCommit *types.CommitInfo
}

// Option configures a Store.
type Option func(*options)

type options struct {
	cacheSize int
	pruning   types.PruningOptions
	logger    log.Logger
}

// WithCacheSize sets the iavl node cache size.
func WithCacheSize(size int) Option {
	return func(o *options) { o.cacheSize = size }
}

// WithPruning sets the pruning strategy applied after each commit.
func WithPruning(po types.PruningOptions) Option {
	return func(o *options) { o.pruning = po }
}

func WithLogger(logger log.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// NewStore loads the latest committed state of db.
func NewStore(db dbm.DB, keys *types.KeyTable, opts ...Option) (*Store, error) {
	o := options{
		cacheSize: iavl.DefaultCacheSize,
		pruning:   types.PruneNothing,
		logger:    log.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.pruning.Validate(); err != nil {
		return nil, err
	}

	latest, err := GetLatestVersion(db)
	if err != nil {
		return nil, err
	}
	tree, err := iavl.LoadStore(dbm.NewPrefixDB(db, []byte(treePrefix)), o.cacheSize, latest)
	if err != nil {
		return nil, err
	}

	rs := &Store{
		db:         db,
		keys:       keys,
		tree:       tree,
		logger:     o.logger.With("module", "rootmulti"),
		pruning:    o.pruning,
		lastCommit: &types.CommitInfo{},
	}
	if latest > 0 {
		info, err := getCommitInfo(db, latest)
		if err != nil {
			return nil, err
		}
		rs.lastCommit = info
	}
	return rs, nil
}

func (rs *Store) KeyTable() *types.KeyTable {
	return rs.keys
}

// GetKVStore returns the namespace of key over the working version.
func (rs *Store) GetKVStore(key types.StoreKey) types.KVStore {
	return rs.Namespace(key)
}

// Namespace returns the namespace of key over the working version. It panics
// if key is not registered.
func (rs *Store) Namespace(key types.StoreKey) prefix.Store {
	rs.keys.Index(key)
	return prefix.NewStore(rs.tree, key.Prefix())
}

// CacheMultiStore branches the working version.
func (rs *Store) CacheMultiStore() *cachemulti.Store {
	return cachemulti.NewStore(rs)
}

// LastCommitID returns the id of the latest committed height.
func (rs *Store) LastCommitID() types.CommitID {
	rs.mtx.RLock()
	defer rs.mtx.RUnlock()
	return rs.lastCommit.CommitID()
}

// LatestVersion returns the latest committed height, 0 before genesis commit.
func (rs *Store) LatestVersion() int64 {
	return rs.LastCommitID().Version
}

// Commit persists the working version as the next height. The commit info
// and the latest height pointer are written in one synced batch after the
// tree is saved, so a crash leaves the previous height as the latest.
func (rs *Store) Commit(blockTime time.Time) (types.CommitID, error) {
	rs.mtx.Lock()
	defer rs.mtx.Unlock()

	expected := rs.lastCommit.Version + 1
	cid, err := rs.tree.Commit()
	if err != nil {
		return types.CommitID{}, fmt.Errorf("commit tree: %w", err)
	}
	if cid.Version != expected {
		return types.CommitID{}, fmt.Errorf("committed version %d, expected %d", cid.Version, expected)
	}

	info, err := types.NewCommitInfo(cid, blockTime)
	if err != nil {
		return types.CommitID{}, err
	}
	if err := flushMetadata(rs.db, info); err != nil {
		return types.CommitID{}, err
	}
	rs.lastCommit = info

	if pruneHeight := rs.pruning.PruneHeight(cid.Version); pruneHeight > 0 {
		if err := rs.pruneTo(pruneHeight); err != nil {
			rs.logger.Error("failed to prune store", "height", pruneHeight, "err", err)
		}
	}
	return cid, nil
}

// CommitInfo returns the persisted commit info of version.
func (rs *Store) CommitInfo(version int64) (*types.CommitInfo, error) {
	return getCommitInfo(rs.db, version)
}

// SnapshotAt returns an immutable view of the state committed at height.
// Height 0 is the empty state before the first commit.
func (rs *Store) SnapshotAt(height int64) (*Snapshot, error) {
	if height < 0 {
		return nil, fmt.Errorf("invalid height %d", height)
	}
	latest := rs.LatestVersion()
	if height > latest {
		return nil, sdkerrors.Wrapf(types.ErrVersionNotCommitted, "height %d, latest %d", height, latest)
	}
	if height > 0 && !rs.tree.VersionExists(height) {
		return nil, sdkerrors.Wrapf(types.ErrVersionPruned, "height %d", height)
	}

	tree, err := rs.tree.GetImmutable(height)
	if err != nil {
		return nil, err
	}
	var blockTime time.Time
	if height > 0 {
		info, err := getCommitInfo(rs.db, height)
		if err != nil {
			return nil, err
		}
		blockTime = info.BlockTime()
	}
	return &Snapshot{keys: rs.keys, tree: tree, height: height, time: blockTime}, nil
}

// AvailableVersions lists the heights that can still be read.
func (rs *Store) AvailableVersions() []int64 {
	return rs.tree.AvailableVersions()
}

// PruneVersions deletes every version except the keepRecent latest ones and
// returns the deleted heights.
func (rs *Store) PruneVersions(keepRecent int64) ([]int64, error) {
	if keepRecent < 1 {
		return nil, errors.New("keep-recent must be at least 1")
	}
	latest := rs.LatestVersion()
	if latest <= keepRecent {
		return nil, nil
	}
	return rs.pruneVersionsTo(latest - keepRecent)
}

func (rs *Store) pruneTo(height int64) error {
	_, err := rs.pruneVersionsTo(height)
	return err
}

func (rs *Store) pruneVersionsTo(height int64) ([]int64, error) {
	var pruned []int64
	for _, v := range rs.tree.AvailableVersions() {
		if v > height {
			break
		}
		if err := rs.tree.DeleteVersion(v); err != nil {
			return pruned, fmt.Errorf("delete version %d: %w", v, err)
		}
		pruned = append(pruned, v)
	}
	if len(pruned) > 0 {
		rs.logger.Debug("pruned store versions", "from", pruned[0], "to", pruned[len(pruned)-1])
	}
	return pruned, nil
}

// GetLatestVersion reads the latest committed height of db.
func GetLatestVersion(db dbm.DB) (int64, error) {
	bz, err := db.Get([]byte(latestVersionKey))
	if err != nil {
		return 0, err
	} else if bz == nil {
		return 0, nil
	}

	var latestVersion int64
	if err := gogotypes.StdInt64Unmarshal(&latestVersion, bz); err != nil {
		return 0, err
	}
	return latestVersion, nil
}

func getCommitInfo(db dbm.DB, ver int64) (*types.CommitInfo, error) {
	cInfoKey := fmt.Sprintf(commitInfoKeyFmt, ver)

	bz, err := db.Get([]byte(cInfoKey))
	if err != nil {
		return nil, fmt.Errorf("failed to get commit info: %w", err)
	} else if bz == nil {
		return nil, fmt.Errorf("no commit info found for version %d", ver)
	}

	cInfo := &types.CommitInfo{}
	if err = proto.Unmarshal(bz, cInfo); err != nil {
		return nil, fmt.Errorf("failed unmarshal commit info: %w", err)
	}
	return cInfo, nil
}

func flushMetadata(db dbm.DB, info *types.CommitInfo) error {
	batch := db.NewBatch()
	defer batch.Close()

	bz, err := proto.Marshal(info)
	if err != nil {
		return err
	}
	if err := batch.Set([]byte(fmt.Sprintf(commitInfoKeyFmt, info.Version)), bz); err != nil {
		return err
	}

	latest, err := gogotypes.StdInt64Marshal(info.Version)
	if err != nil {
		return err
	}
	if err := batch.Set([]byte(latestVersionKey), latest); err != nil {
		return err
	}
	return batch.WriteSync()
}

// Snapshot is a read-only multi store pinned to one committed height.
type Snapshot struct {
	keys   *types.KeyTable
	tree   *iavl.ReadOnlyTree
	height int64
	time   time.Time
}

var _ types.MultiStoreReader = (*Snapshot)(nil)

func (s *Snapshot) KeyTable() *types.KeyTable {
	return s.keys
}

func (s *Snapshot) Height() int64 { return s.height }

// Time is the block time of the snapshot height.
func (s *Snapshot) Time() time.Time { return s.time }

func (s *Snapshot) GetKVReader(key types.StoreKey) types.KVReader {
	return s.Namespace(key)
}

// Namespace returns the read-only namespace of key. It panics if key is not
// registered.
func (s *Snapshot) Namespace(key types.StoreKey) prefix.ReadStore {
	s.keys.Index(key)
	return prefix.NewReadStore(s.tree, key.Prefix())
}
