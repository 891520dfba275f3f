package model

// Number is the set of types a ModifiableValue can scale
type Number interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// ModifierFunc transforms the running value of a modifier chain
type ModifierFunc[T Number] func(T) T

// ModifierHandle identifies a registered modifier for removal
type ModifierHandle uint64

type modifier[T Number] struct {
	handle ModifierHandle
	source string
	fn     ModifierFunc[T]
}

// Float is the subset of Number that scales without truncation
type Float interface {
	~float32 | ~float64
}

// Multiply returns a modifier scaling the running value by f
// Integer values have no Multiply; a chain of truncating steps would drift from the product
func Multiply[T Float](f float64) ModifierFunc[T] {
	return func(v T) T { return T(float64(v) * f) }
}

// Add returns a modifier offsetting the running value by d
func Add[T Number](d T) ModifierFunc[T] {
	return func(v T) T { return v + d }
}

// ModifiableValue is a Value whose effective reading passes through a modifier chain
// Modifiers apply in registration order; removal keeps the order of the remainder
type ModifiableValue[T Number] struct {
	base       *Value[T]
	modifiers  []modifier[T]
	nextHandle ModifierHandle
}

// NewModifiableValue creates a named modifiable value with base def
func NewModifiableValue[T Number](name string, def T) *ModifiableValue[T] {
	return &ModifiableValue[T]{base: NewValue(name, def)}
}

// Name returns the field name
func (m *ModifiableValue[T]) Name() string { return m.base.name }

// SetGetter binds the base getter, at most once
func (m *ModifiableValue[T]) SetGetter(fn func() T) error {
	return m.base.SetGetter(fn)
}

// OnSetValue exposes the set-request channel of the base value
func (m *ModifiableValue[T]) OnSetValue() *Event1[T] { return m.base.OnSetValue }

// Set requests a base value change from the owner
func (m *ModifiableValue[T]) Set(v T) { m.base.Set(v) }

// Base returns the unmodified value
func (m *ModifiableValue[T]) Base() T { return m.base.Get() }

// Get returns the base value run through every modifier in registration order
func (m *ModifiableValue[T]) Get() T {
	v := m.base.Get()
	for _, mod := range m.modifiers {
		v = mod.fn(v)
	}
	return v
}

// AddModifier appends fn to the chain; source is informational (item, effect name)
func (m *ModifiableValue[T]) AddModifier(source string, fn ModifierFunc[T]) ModifierHandle {
	m.nextHandle++
	m.modifiers = append(m.modifiers, modifier[T]{handle: m.nextHandle, source: source, fn: fn})
	return m.nextHandle
}

// RemoveModifier drops a modifier, returns false if the handle is unknown
func (m *ModifiableValue[T]) RemoveModifier(h ModifierHandle) bool {
	for i, mod := range m.modifiers {
		if mod.handle == h {
			m.modifiers = append(m.modifiers[:i], m.modifiers[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveSource drops every modifier registered under source, returns the count removed
func (m *ModifiableValue[T]) RemoveSource(source string) int {
	kept := m.modifiers[:0]
	removed := 0
	for _, mod := range m.modifiers {
		if mod.source == source {
			removed++
			continue
		}
		kept = append(kept, mod)
	}
	m.modifiers = kept
	return removed
}

// Modifiers returns the number of registered modifiers
func (m *ModifiableValue[T]) Modifiers() int { return len(m.modifiers) }
