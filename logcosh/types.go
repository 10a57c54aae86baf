package logcosh

// Floats is a constraint for the real widths LogCosh supports.
type Floats interface {
	~float32 | ~float64
}

// Complexes is a constraint for the complex widths CLogCosh supports.
type Complexes interface {
	~complex64 | ~complex128
}
