package collections

import "github.com/tuannh982/chainmap/hashtable"

// hashSet stores values keyed by hashFunc(v); two values with the same key are
// the same set member.
type hashSet[R comparable, V any] struct {
	entries  *hashtable.Table[R, V]
	hashFunc HashSetHashFunc[R, V]
}

type HashSetHashFunc[R comparable, V any] func(V) R

func NewHashSet[R comparable, V any](f HashSetHashFunc[R, V]) Set[V] {
	return &hashSet[R, V]{
		entries:  hashtable.New[R, V](),
		hashFunc: f,
	}
}

func (s *hashSet[R, V]) Contains(v V) bool {
	return s.entries.ContainsKey(s.hashFunc(v))
}

func (s *hashSet[R, V]) Add(v V) error {
	key := s.hashFunc(v)
	if s.entries.ContainsKey(key) {
		return ErrValueExisted
	}
	s.entries.Insert(key, v)
	return nil
}

func (s *hashSet[R, V]) Remove(v V) error {
	if _, ok := s.entries.Remove(s.hashFunc(v)); !ok {
		return ErrValueNotExisted
	}
	return nil
}

func (s *hashSet[R, V]) Size() int {
	return s.entries.Len()
}

func (s *hashSet[R, V]) Entries() []V {
	return s.entries.Values()
}
