package hashtable

import "iter"

// Cursor walks the live entries of a Table in bucket order, then chain order.
// The table must not be mutated while a cursor is in use; if it is, Next
// returns false and Err reports ErrConcurrentModification.
type Cursor[K comparable, V any] struct {
	table     *Table[K, V]
	version   uint64
	bucketIdx int
	entryIdx  int
	current   *entry[K, V]
	err       error
	done      bool
}

// Cursor returns a fresh cursor positioned before the first entry.
func (t *Table[K, V]) Cursor() *Cursor[K, V] {
	return &Cursor[K, V]{
		table:   t,
		version: t.version,
	}
}

func (c *Cursor[K, V]) Next() bool {
	if c.done {
		return false
	}
	if c.version != c.table.version {
		c.err = ErrConcurrentModification
		c.finish()
		return false
	}
	buckets := c.table.buckets
	for c.bucketIdx < len(buckets) {
		if c.entryIdx < len(buckets[c.bucketIdx]) {
			c.current = &buckets[c.bucketIdx][c.entryIdx]
			c.entryIdx++
			return true
		}
		c.bucketIdx++
		c.entryIdx = 0
	}
	c.finish()
	return false
}

func (c *Cursor[K, V]) finish() {
	c.done = true
	c.current = nil
}

func (c *Cursor[K, V]) Key() (k K) {
	if c.current == nil {
		return k
	}
	return c.current.key
}

func (c *Cursor[K, V]) Value() (v V) {
	if c.current == nil {
		return v
	}
	return c.current.value
}

func (c *Cursor[K, V]) Err() error {
	return c.err
}

// All returns an iterator over every key/value pair. It panics with
// ErrConcurrentModification if the table is mutated during the range.
func (t *Table[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		c := t.Cursor()
		for c.Next() {
			if !yield(c.Key(), c.Value()) {
				return
			}
		}
		if err := c.Err(); err != nil {
			panic(err)
		}
	}
}
