package model

// Function is a single-handler request/response slot
type Function[In, Out any] struct {
	name    string
	handler func(In) Out
}

// NewFunction creates a named function slot
func NewFunction[In, Out any](name string) *Function[In, Out] {
	return &Function[In, Out]{name: name}
}

// Name returns the field name
func (f *Function[In, Out]) Name() string { return f.name }

// Bind installs the handler, at most once
func (f *Function[In, Out]) Bind(fn func(In) Out) error {
	if f.handler != nil {
		return bindErr(f.name, "handler", ErrAlreadyBound)
	}
	f.handler = fn
	return nil
}

// IsBound reports whether a handler is installed
func (f *Function[In, Out]) IsBound() bool { return f.handler != nil }

// Invoke calls the handler, ErrNotBound when none is installed
func (f *Function[In, Out]) Invoke(in In) (Out, error) {
	if f.handler == nil {
		var zero Out
		return zero, bindErr(f.name, "handler", ErrNotBound)
	}
	return f.handler(in), nil
}

// MustInvoke calls the handler and panics when none is installed
// Use only where an unbound handler is a wiring bug
func (f *Function[In, Out]) MustInvoke(in In) Out {
	out, err := f.Invoke(in)
	if err != nil {
		panic(err)
	}
	return out
}
