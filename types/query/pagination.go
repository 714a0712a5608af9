package query

import (
	"fmt"
	"math"

	sdkquery "github.com/cosmos/cosmos-sdk/types/query"

	storetypes "github.com/babylonchain/chainkit/store/types"
)

// DefaultLimit is the page size used when a request does not set one.
const DefaultLimit = 100

type (
	PageRequest  = sdkquery.PageRequest
	PageResponse = sdkquery.PageResponse
)

// Paginate walks store one page at a time, calling onResult for every entry
// on the requested page. A request carries either a key cursor, returned as
// NextKey by the previous page, or an item offset, never both.
//
// Totals are only counted for offset requests with CountTotal set or when
// no limit is given.
func Paginate(
	store storetypes.KVReader,
	pageRequest *PageRequest,
	onResult func(key []byte, value []byte) error,
) (*PageResponse, error) {
	if pageRequest == nil {
		pageRequest = &PageRequest{}
	}

	offset := pageRequest.Offset
	key := pageRequest.Key
	limit := pageRequest.Limit
	countTotal := pageRequest.CountTotal
	reverse := pageRequest.Reverse

	if offset > 0 && key != nil {
		return nil, fmt.Errorf("invalid request, either offset or key is expected, got both")
	}

	if limit == 0 {
		limit = DefaultLimit
		countTotal = true
	}

	if len(key) != 0 {
		iterator, err := getIterator(store, key, reverse)
		if err != nil {
			return nil, err
		}
		defer iterator.Close()

		var count uint64
		var nextKey []byte
		for ; iterator.Valid(); iterator.Next() {
			if count == limit {
				nextKey = iterator.Key()
				break
			}
			if err := onResult(iterator.Key(), iterator.Value()); err != nil {
				return nil, err
			}
			count++
		}
		if err := iterator.Error(); err != nil {
			return nil, err
		}

		return &PageResponse{NextKey: nextKey}, nil
	}

	iterator, err := getIterator(store, nil, reverse)
	if err != nil {
		return nil, err
	}
	defer iterator.Close()

	end := offset + limit
	if end < offset {
		end = math.MaxUint64
	}

	var count uint64
	var nextKey []byte
	for ; iterator.Valid(); iterator.Next() {
		count++

		if count <= offset {
			continue
		}
		if count <= end {
			if err := onResult(iterator.Key(), iterator.Value()); err != nil {
				return nil, err
			}
		} else if count == end+1 {
			nextKey = iterator.Key()
			if !countTotal {
				break
			}
		}
	}
	if err := iterator.Error(); err != nil {
		return nil, err
	}

	res := &PageResponse{NextKey: nextKey}
	if countTotal {
		res.Total = count
	}
	return res, nil
}

// getIterator starts at the cursor, which is included in the page in both
// directions.
func getIterator(store storetypes.KVReader, start []byte, reverse bool) (storetypes.Iterator, error) {
	if reverse {
		var end []byte
		if start != nil {
			end = storetypes.InclusiveEndBytes(start)
		}
		return store.ReverseIterator(nil, end)
	}
	return store.Iterator(start, nil)
}
