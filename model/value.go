package model

// Value is a typed read surface backed by one authoritative getter
// Set does not store anything; it notifies OnSetValue so the owner can honour the request
type Value[T any] struct {
	name   string
	def    T
	getter func() T

	// OnSetValue fires on every external Set request
	OnSetValue *Event1[T]
}

// NewValue creates a named value that reads def until a getter is bound
func NewValue[T any](name string, def T) *Value[T] {
	return &Value[T]{
		name:       name,
		def:        def,
		OnSetValue: NewEvent1[T](name + ".OnSetValue"),
	}
}

// Name returns the field name
func (v *Value[T]) Name() string { return v.name }

// SetGetter binds the authoritative getter, at most once
func (v *Value[T]) SetGetter(fn func() T) error {
	if v.getter != nil {
		return bindErr(v.name, "getter", ErrAlreadyBound)
	}
	v.getter = fn
	return nil
}

// IsBound reports whether a getter has been bound
func (v *Value[T]) IsBound() bool { return v.getter != nil }

// Get returns the getter result, or the default when nothing is bound
func (v *Value[T]) Get() T {
	if v.getter == nil {
		return v.def
	}
	return v.getter()
}

// Set requests a value change from the owner
func (v *Value[T]) Set(val T) {
	v.OnSetValue.Fire(val)
}

// Collection is a read surface over a slice owned by a component
type Collection[T any] struct {
	name   string
	getter func() []T
}

// NewCollection creates a named collection
func NewCollection[T any](name string) *Collection[T] {
	return &Collection[T]{name: name}
}

// Name returns the field name
func (c *Collection[T]) Name() string { return c.name }

// SetGetter binds the authoritative getter, at most once
func (c *Collection[T]) SetGetter(fn func() []T) error {
	if c.getter != nil {
		return bindErr(c.name, "getter", ErrAlreadyBound)
	}
	c.getter = fn
	return nil
}

// Get returns the current elements, nil when unbound
func (c *Collection[T]) Get() []T {
	if c.getter == nil {
		return nil
	}
	return c.getter()
}

// Len returns the current element count
func (c *Collection[T]) Len() int { return len(c.Get()) }

// IndexFunc returns the index of the first element matching pred, or -1
func (c *Collection[T]) IndexFunc(pred func(T) bool) int {
	for i, el := range c.Get() {
		if pred(el) {
			return i
		}
	}
	return -1
}
