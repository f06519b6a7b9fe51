package env

// Binding associates a variable name with a way to obtain its value.
// The two implementations form a closed set: Value for fixed strings and
// Producer for lazy references.
type Binding interface {
	// Resolve produces the current value of the binding.
	Resolve() string
}

// Value is a binding to a fixed string.
type Value string

// Resolve returns the fixed string.
func (v Value) Resolve() string {
	return string(v)
}

// Producer is a binding to a zero-argument function. The function is
// invoked on every lookup; results are never cached, so a producer may
// reflect state that changes between lookups.
type Producer func() string

// Resolve invokes the producer.
func (p Producer) Resolve() string {
	return p()
}
