package collections

import "github.com/tuannh982/chainmap/hashtable"

type hashMap[K comparable, V any] struct {
	entries *hashtable.Table[K, V]
}

func NewHashMap[K comparable, V any]() Map[K, V] {
	return &hashMap[K, V]{
		entries: hashtable.New[K, V](),
	}
}

func (m *hashMap[K, V]) Contains(k K) bool {
	return m.entries.ContainsKey(k)
}

func (m *hashMap[K, V]) Put(k K, v V, forced bool) error {
	if !forced && m.Contains(k) {
		return ErrValueExisted
	}
	m.entries.Insert(k, v)
	return nil
}

func (m *hashMap[K, V]) Get(k K) (V, error) {
	v, ok := m.entries.Get(k)
	if !ok {
		return v, ErrValueNotExisted
	}
	return v, nil
}

func (m *hashMap[K, V]) Delete(k K) error {
	if _, ok := m.entries.Remove(k); !ok {
		return ErrValueNotExisted
	}
	return nil
}

func (m *hashMap[K, V]) Size() int {
	return m.entries.Len()
}

func (m *hashMap[K, V]) Keys() []K {
	return m.entries.Keys()
}

func (m *hashMap[K, V]) Values() []V {
	return m.entries.Values()
}
