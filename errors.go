package neurotron

import (
	"errors"
	"fmt"
)

var (
	//No dendrite of a target cell is free or already matches the requested
	//source indices.
	ErrSynapseExhausted = errors.New("no free synapses")
	ErrShapeMismatch    = errors.New("shape mismatch")
	ErrIndexOutOfRange  = errors.New("index out of range")
	//Train ran out of distinct cell representations for a word.
	ErrRepresentationOverflow = errors.New("representation overflow")
)

//panics with a wrapped sentinel so callers can recover and errors.Is the value
func fail(sentinel error, format string, args ...interface{}) {
	panic(fmt.Errorf("%w: "+format, append([]interface{}{sentinel}, args...)...))
}
