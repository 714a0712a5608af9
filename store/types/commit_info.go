package types

import (
	"fmt"
	"time"

	"github.com/gogo/protobuf/proto"
	gogotypes "github.com/gogo/protobuf/types"
)

// CommitInfo is persisted once per committed height.
type CommitInfo struct {
	Version int64                `protobuf:"varint,1,opt,name=version,proto3" json:"version,omitempty"`
	Hash    []byte               `protobuf:"bytes,2,opt,name=hash,proto3" json:"hash,omitempty"`
	Time    *gogotypes.Timestamp `protobuf:"bytes,3,opt,name=time,proto3" json:"time,omitempty"`
}

func (m *CommitInfo) Reset()         { *m = CommitInfo{} }
func (m *CommitInfo) String() string { return proto.CompactTextString(m) }
func (*CommitInfo) ProtoMessage()    {}

// NewCommitInfo records a new version committed at blockTime.
func NewCommitInfo(cid CommitID, blockTime time.Time) (*CommitInfo, error) {
	ts, err := gogotypes.TimestampProto(blockTime)
	if err != nil {
		return nil, fmt.Errorf("invalid block time: %w", err)
	}
	return &CommitInfo{Version: cid.Version, Hash: cid.Hash, Time: ts}, nil
}

func (m *CommitInfo) CommitID() CommitID {
	return CommitID{Version: m.Version, Hash: m.Hash}
}

// BlockTime returns the time of the block committed at this version.
func (m *CommitInfo) BlockTime() time.Time {
	if m.Time == nil {
		return time.Time{}
	}
	t, err := gogotypes.TimestampFromProto(m.Time)
	if err != nil {
		return time.Time{}
	}
	return t
}
