package types

import "fmt"

const (
	PruningOptionDefault    = "default"
	PruningOptionNothing    = "nothing"
	PruningOptionEverything = "everything"
	PruningOptionCustom     = "custom"
)

// PruningOptions controls which saved versions are deleted after a commit.
// Every Interval heights, versions older than the KeepRecent most recent ones
// are deleted. An Interval of 0 keeps every version.
type PruningOptions struct {
	KeepRecent uint64 `mapstructure:"pruning-keep-recent"`
	Interval   uint64 `mapstructure:"pruning-interval"`
}

var (
	PruneDefault    = PruningOptions{KeepRecent: 362880, Interval: 10}
	PruneNothing    = PruningOptions{KeepRecent: 0, Interval: 0}
	PruneEverything = PruningOptions{KeepRecent: 2, Interval: 10}
)

// NewPruningOptionsFromString maps a named strategy to its options.
func NewPruningOptionsFromString(strategy string) (PruningOptions, error) {
	switch strategy {
	case PruningOptionDefault:
		return PruneDefault, nil
	case PruningOptionNothing:
		return PruneNothing, nil
	case PruningOptionEverything:
		return PruneEverything, nil
	default:
		return PruningOptions{}, fmt.Errorf("unknown pruning strategy %q", strategy)
	}
}

func (po PruningOptions) Validate() error {
	if po.Interval > 0 && po.KeepRecent == 0 {
		return fmt.Errorf("pruning every %d heights requires keep-recent > 0", po.Interval)
	}
	return nil
}

// PruneHeight returns the height up to which versions may be deleted after
// committing version, or 0 if nothing should be pruned now.
func (po PruningOptions) PruneHeight(version int64) int64 {
	if po.Interval == 0 || version%int64(po.Interval) != 0 {
		return 0
	}
	if version <= int64(po.KeepRecent) {
		return 0
	}
	return version - int64(po.KeepRecent)
}
