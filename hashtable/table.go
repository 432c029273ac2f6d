package hashtable

import (
	"hash/maphash"

	"github.com/tuannh982/chainmap/utils/math"

	log "github.com/sirupsen/logrus"
)

const initialBuckets = 1

type entry[K comparable, V any] struct {
	key   K
	value V
}

// Table maps unique keys to values using a bucket array with separate
// chaining. The zero value is an empty table ready to use.
//
// A Table is not safe for concurrent use.
type Table[K comparable, V any] struct {
	buckets [][]entry[K, V]
	count   int
	seed    maphash.Seed
	seeded  bool
	// bumped on every mutation, checked by cursors
	version uint64
	log     log.FieldLogger
}

func New[K comparable, V any](opts ...Option) *Table[K, V] {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	t := &Table[K, V]{
		log: o.logger,
	}
	if o.capacity > 0 {
		t.allocate(bucketsFor(o.capacity))
	}
	return t
}

// bucketsFor returns the smallest power of two that holds n entries under the
// load factor.
func bucketsFor(n int) int {
	need := math.DivCeil(n*4, 3)
	size := initialBuckets
	for size < need {
		size *= 2
	}
	return size
}

func (t *Table[K, V]) logger() log.FieldLogger {
	if t.log == nil {
		t.log = defaultLogger()
	}
	return t.log
}

func (t *Table[K, V]) threshold() int {
	return math.DivFloor(len(t.buckets)*3, 4)
}

func (t *Table[K, V]) hash(key K) uint64 {
	return maphash.Comparable(t.seed, key)
}

func (t *Table[K, V]) index(h uint64) int {
	return int(h % uint64(len(t.buckets)))
}

func lookup[K comparable, V any](key K, bucket []entry[K, V]) int {
	for i := range bucket {
		if bucket[i].key == key {
			return i
		}
	}
	return -1
}

// allocate replaces an empty bucket array with size empty buckets.
func (t *Table[K, V]) allocate(size int) {
	if !t.seeded {
		t.seed = maphash.MakeSeed()
		t.seeded = true
	}
	t.buckets = make([][]entry[K, V], size)
}

func (t *Table[K, V]) resize() {
	if len(t.buckets) == 0 {
		t.allocate(initialBuckets)
		t.version++
		return
	}
	from := len(t.buckets)
	target := from * 2
	staged := make([][]entry[K, V], target)
	for _, bucket := range t.buckets {
		for _, e := range bucket {
			i := int(t.hash(e.key) % uint64(target))
			staged[i] = append(staged[i], e)
		}
	}
	t.buckets = staged
	t.version++
	t.logger().WithFields(log.Fields{
		"from":    from,
		"to":      target,
		"entries": t.count,
	}).Debug("hashtable resized")
}

// Insert stores value under key. If key was already present its value is
// replaced and the previous value is returned with replaced set to true; the
// entry count only changes for new keys.
func (t *Table[K, V]) Insert(key K, value V) (old V, replaced bool) {
	if len(t.buckets) > 0 {
		bucket := t.buckets[t.index(t.hash(key))]
		if i := lookup(key, bucket); i >= 0 {
			old = bucket[i].value
			bucket[i].value = value
			t.version++
			return old, true
		}
	}
	for len(t.buckets) == 0 || t.count+1 > t.threshold() {
		t.resize()
	}
	b := t.index(t.hash(key))
	t.buckets[b] = append(t.buckets[b], entry[K, V]{key: key, value: value})
	t.count++
	t.version++
	return old, false
}

func (t *Table[K, V]) Get(key K) (v V, ok bool) {
	if len(t.buckets) == 0 {
		return v, false
	}
	bucket := t.buckets[t.index(t.hash(key))]
	if i := lookup(key, bucket); i >= 0 {
		return bucket[i].value, true
	}
	return v, false
}

func (t *Table[K, V]) ContainsKey(key K) bool {
	_, ok := t.Get(key)
	return ok
}

// Remove deletes key and returns its value. The last entry of the bucket is
// moved into the vacated slot, so intra-bucket order is not preserved.
func (t *Table[K, V]) Remove(key K) (v V, ok bool) {
	if len(t.buckets) == 0 {
		return v, false
	}
	b := t.index(t.hash(key))
	bucket := t.buckets[b]
	i := lookup(key, bucket)
	if i < 0 {
		return v, false
	}
	v = bucket[i].value
	last := len(bucket) - 1
	bucket[i] = bucket[last]
	bucket[last] = entry[K, V]{}
	t.buckets[b] = bucket[:last]
	t.count--
	t.version++
	return v, true
}

// Clear drops every entry. The bucket array keeps its size.
func (t *Table[K, V]) Clear() {
	for i := range t.buckets {
		clear(t.buckets[i])
		t.buckets[i] = t.buckets[i][:0]
	}
	t.logger().WithFields(log.Fields{
		"entries": t.count,
		"buckets": len(t.buckets),
	}).Debug("hashtable cleared")
	t.count = 0
	t.version++
}

func (t *Table[K, V]) Len() int {
	return t.count
}

func (t *Table[K, V]) IsEmpty() bool {
	return t.count == 0
}

func (t *Table[K, V]) BucketCount() int {
	return len(t.buckets)
}

func (t *Table[K, V]) Keys() []K {
	arr := make([]K, 0, t.count)
	for c := t.Cursor(); c.Next(); {
		arr = append(arr, c.Key())
	}
	return arr
}

func (t *Table[K, V]) Values() []V {
	arr := make([]V, 0, t.count)
	for c := t.Cursor(); c.Next(); {
		arr = append(arr, c.Value())
	}
	return arr
}
