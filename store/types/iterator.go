package types

import "errors"

var errIteratorInvalid = errors.New("iterator is invalid")

// sliceIterator iterates a fixed, already ordered list of pairs.
type sliceIterator struct {
	start, end []byte
	pairs      []KVPair
	pos        int
	closed     bool
}

var _ Iterator = (*sliceIterator)(nil)

// NewSliceIterator returns an Iterator over pairs, which must already be in
// iteration order.
func NewSliceIterator(start, end []byte, pairs []KVPair) Iterator {
	return &sliceIterator{start: start, end: end, pairs: pairs}
}

func (it *sliceIterator) Domain() ([]byte, []byte) {
	return it.start, it.end
}

func (it *sliceIterator) Valid() bool {
	return !it.closed && it.pos < len(it.pairs)
}

func (it *sliceIterator) assertValid() {
	if !it.Valid() {
		panic(errIteratorInvalid)
	}
}

func (it *sliceIterator) Next() {
	it.assertValid()
	it.pos++
}

func (it *sliceIterator) Key() []byte {
	it.assertValid()
	return it.pairs[it.pos].Key
}

func (it *sliceIterator) Value() []byte {
	it.assertValid()
	return it.pairs[it.pos].Value
}

func (it *sliceIterator) Error() error {
	return nil
}

func (it *sliceIterator) Close() error {
	it.closed = true
	it.pairs = nil
	return nil
}

// CollectKVPairs drains an iterator into a slice and closes it.
func CollectKVPairs(it Iterator) ([]KVPair, error) {
	defer it.Close()

	var pairs []KVPair
	for ; it.Valid(); it.Next() {
		pairs = append(pairs, KVPair{Key: it.Key(), Value: it.Value()})
	}
	return pairs, it.Error()
}
