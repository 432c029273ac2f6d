package collections

// Map is an error-returning key/value view. Put with forced=false refuses to
// overwrite an existing key.
type Map[K any, V any] interface {
	Contains(k K) bool
	Put(k K, v V, forced bool) error
	Get(k K) (V, error)
	Delete(k K) error
	Size() int
	Keys() []K
	Values() []V
}
