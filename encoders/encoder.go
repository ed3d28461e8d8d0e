package encoders

/*
 A value encoder takes a value and encodes it with a partial sparse representation
of bits.
*/
type ValueEncoder interface {
	//Width in bits
	GetWidth() int
	IsDelta() bool
	EncodeIntoArray(input interface{}) []bool
	GetName() string
	GetDescription() string
}

//Encodes multivariable input
type Encoder struct {
	Encoders []ValueEncoder
}

func (e *Encoder) Width() int {
	result := 0
	for _, val := range e.Encoders {
		result += val.GetWidth()
	}
	return result
}

//Concatenates the encodings of inputs, one input per sub encoder
func (e *Encoder) Encode(inputs ...interface{}) []bool {
	if len(inputs) != len(e.Encoders) {
		panic("Encode needs one input per encoder")
	}
	result := make([]bool, 0, e.Width())
	for idx, enc := range e.Encoders {
		result = append(result, enc.EncodeIntoArray(inputs[idx])...)
	}
	return result
}
