package cachekv

import (
	"bytes"
	"errors"

	"github.com/babylonchain/chainkit/store/types"
)

// mergeIterator merges a parent iterator with the buffered entries. Buffered
// entries shadow the parent; buffered deletions (nil values) hide the key.
type mergeIterator struct {
	parent    types.Iterator
	cache     types.Iterator
	ascending bool
}

var _ types.Iterator = (*mergeIterator)(nil)

func newMergeIterator(parent, cache types.Iterator, ascending bool) *mergeIterator {
	iter := &mergeIterator{
		parent:    parent,
		cache:     cache,
		ascending: ascending,
	}
	iter.skipUntilExistsOrInvalid()
	return iter
}

func (iter *mergeIterator) Domain() ([]byte, []byte) {
	return iter.parent.Domain()
}

func (iter *mergeIterator) Valid() bool {
	return iter.skipUntilExistsOrInvalid()
}

func (iter *mergeIterator) Next() {
	iter.skipUntilExistsOrInvalid()
	iter.assertValid()

	switch {
	case !iter.parent.Valid():
		iter.cache.Next()
	case !iter.cache.Valid():
		iter.parent.Next()
	default:
		switch iter.compare(iter.parent.Key(), iter.cache.Key()) {
		case -1:
			iter.parent.Next()
		case 0:
			iter.parent.Next()
			iter.cache.Next()
		case 1:
			iter.cache.Next()
		}
	}
}

func (iter *mergeIterator) Key() []byte {
	iter.skipUntilExistsOrInvalid()
	iter.assertValid()

	switch {
	case !iter.parent.Valid():
		return iter.cache.Key()
	case !iter.cache.Valid():
		return iter.parent.Key()
	}
	if iter.compare(iter.parent.Key(), iter.cache.Key()) == -1 {
		return iter.parent.Key()
	}
	return iter.cache.Key()
}

func (iter *mergeIterator) Value() []byte {
	iter.skipUntilExistsOrInvalid()
	iter.assertValid()

	switch {
	case !iter.parent.Valid():
		return iter.cache.Value()
	case !iter.cache.Valid():
		return iter.parent.Value()
	}
	if iter.compare(iter.parent.Key(), iter.cache.Key()) == -1 {
		return iter.parent.Value()
	}
	return iter.cache.Value()
}

func (iter *mergeIterator) Close() error {
	err1 := iter.parent.Close()
	err2 := iter.cache.Close()
	if err1 != nil {
		return err1
	}
	return err2
}

func (iter *mergeIterator) Error() error {
	if err := iter.parent.Error(); err != nil {
		return err
	}
	return iter.cache.Error()
}

func (iter *mergeIterator) assertValid() {
	if !iter.Valid() {
		panic(errors.New("merge iterator is invalid"))
	}
}

// compare orders a and b in iteration direction.
func (iter *mergeIterator) compare(a, b []byte) int {
	if iter.ascending {
		return bytes.Compare(a, b)
	}
	return bytes.Compare(a, b) * -1
}

// skipCacheDeletes advances the cache past deletions that sort before
// until. A nil until skips all leading deletions.
func (iter *mergeIterator) skipCacheDeletes(until []byte) {
	for iter.cache.Valid() &&
		iter.cache.Value() == nil &&
		(until == nil || iter.compare(iter.cache.Key(), until) < 0) {
		iter.cache.Next()
	}
}

// skipUntilExistsOrInvalid moves to the next live entry and reports whether
// one exists.
func (iter *mergeIterator) skipUntilExistsOrInvalid() bool {
	for {
		if !iter.parent.Valid() {
			iter.skipCacheDeletes(nil)
			return iter.cache.Valid()
		}

		if !iter.cache.Valid() {
			return true
		}

		keyP := iter.parent.Key()
		keyC := iter.cache.Key()

		switch iter.compare(keyP, keyC) {
		case -1:
			return true
		case 0:
			if iter.cache.Value() == nil {
				// deleted in the buffer
				iter.parent.Next()
				iter.cache.Next()
				continue
			}
			return true
		case 1:
			if iter.cache.Value() == nil {
				iter.skipCacheDeletes(keyP)
				continue
			}
			return true
		}
	}
}
