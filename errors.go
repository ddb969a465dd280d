package rmq

import "errors"

var (
	// ErrInvalidRange is returned by SparseTable.Min when left > right.
	ErrInvalidRange = errors.New("rmq: left index is greater than right index")
	// ErrOutOfRange is returned by SparseTable.Min when right >= Num().
	ErrOutOfRange = errors.New("rmq: index out of range")
	// ErrEmpty is returned when querying a structure built from no values.
	ErrEmpty = errors.New("rmq: query on empty sequence")
)
