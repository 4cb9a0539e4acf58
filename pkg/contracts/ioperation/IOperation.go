package ioperation

// Operation is one pending local mutation of a single field. Implementations
// are immutable values: MergeWithPrevious and Apply return new values and
// never touch the network.
type Operation interface {
	Kind() string
	MergeWithPrevious(previous Operation) (Operation, error)
	Apply(old interface{}, field string) (interface{}, error)
	Encode() (interface{}, error)
}
