package hashtable

import "errors"

var (
	ErrConcurrentModification = errors.New("table modified during iteration")
)
