package model

// Attempt1 is a one-shot action gated by a condition on its argument
// A failed Try is a normal outcome reported through the return value and OnFail
type Attempt1[T any] struct {
	name      string
	condition func(T) bool

	// OnFire fires with the argument of every successful Try
	OnFire *Event1[T]

	// OnFail fires with the argument of every rejected Try
	OnFail *Event1[T]
}

// NewAttempt1 creates a named single-argument attempt
func NewAttempt1[T any](name string) *Attempt1[T] {
	return &Attempt1[T]{
		name:   name,
		OnFire: NewEvent1[T](name + ".OnFire"),
		OnFail: NewEvent1[T](name + ".OnFail"),
	}
}

// Name returns the field name
func (a *Attempt1[T]) Name() string { return a.name }

// SetCondition binds the gate, at most once
func (a *Attempt1[T]) SetCondition(fn func(T) bool) error {
	if a.condition != nil {
		return bindErr(a.name, "condition", ErrAlreadyBound)
	}
	a.condition = fn
	return nil
}

// CanTry evaluates the gate without side effects; true when unbound
func (a *Attempt1[T]) CanTry(x T) bool {
	return a.condition == nil || a.condition(x)
}

// Try fires OnFire iff the gate holds for x
func (a *Attempt1[T]) Try(x T) bool {
	if !a.CanTry(x) {
		a.OnFail.Fire(x)
		return false
	}
	a.OnFire.Fire(x)
	return true
}

// Attempt is the parameterless form of Attempt1
type Attempt struct {
	name      string
	condition func() bool

	OnFire *Event
	OnFail *Event
}

// NewAttempt creates a named parameterless attempt
func NewAttempt(name string) *Attempt {
	return &Attempt{
		name:   name,
		OnFire: NewEvent(name + ".OnFire"),
		OnFail: NewEvent(name + ".OnFail"),
	}
}

// Name returns the field name
func (a *Attempt) Name() string { return a.name }

// SetCondition binds the gate, at most once
func (a *Attempt) SetCondition(fn func() bool) error {
	if a.condition != nil {
		return bindErr(a.name, "condition", ErrAlreadyBound)
	}
	a.condition = fn
	return nil
}

// CanTry evaluates the gate; true when unbound
func (a *Attempt) CanTry() bool {
	return a.condition == nil || a.condition()
}

// Try fires OnFire iff the gate holds
func (a *Attempt) Try() bool {
	if !a.CanTry() {
		a.OnFail.Fire()
		return false
	}
	a.OnFire.Fire()
	return true
}
