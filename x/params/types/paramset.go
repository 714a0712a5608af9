package types

type (
	// ValueValidatorFn validates a parameter value. It receives the value,
	// never a pointer to it.
	ValueValidatorFn func(value interface{}) error

	// ParamSetPair binds a parameter key to the field holding its value.
	ParamSetPair struct {
		Key         []byte
		Value       interface{}
		ValidatorFn ValueValidatorFn
	}

	// ParamSetPairs is the list of pairs of a ParamSet.
	ParamSetPairs []ParamSetPair

	// ParamSet is a typed parameter struct. ParamSetPairs must return
	// pointers to the fields of the receiver.
	ParamSet interface {
		ParamSetPairs() ParamSetPairs
	}
)

// NewParamSetPair returns a new ParamSetPair.
func NewParamSetPair(key []byte, value interface{}, vfn ValueValidatorFn) ParamSetPair {
	return ParamSetPair{key, value, vfn}
}
