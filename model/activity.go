package model

// activityCore holds the state authority and stop half shared by both activity arities
// The activity stores no boolean; IsActive always asks the bound getter
type activityCore struct {
	name          string
	isActive      func() bool
	stopCondition func() bool

	// OnStop fires after a successful TryStop or ForceStop
	OnStop *Event

	// OnFailStop fires when TryStop is rejected
	OnFailStop *Event
}

func newActivityCore(name string) activityCore {
	return activityCore{
		name:       name,
		OnStop:     NewEvent(name + ".OnStop"),
		OnFailStop: NewEvent(name + ".OnFailStop"),
	}
}

// Name returns the field name
func (a *activityCore) Name() string { return a.name }

// SetActivityGetter binds the component that owns the activity state, at most once
func (a *activityCore) SetActivityGetter(fn func() bool) error {
	if a.isActive != nil {
		return bindErr(a.name, "activity getter", ErrAlreadyBound)
	}
	a.isActive = fn
	return nil
}

// SetStopCondition binds an optional stop gate, at most once; unbound means always stoppable
func (a *activityCore) SetStopCondition(fn func() bool) error {
	if a.stopCondition != nil {
		return bindErr(a.name, "stop condition", ErrAlreadyBound)
	}
	a.stopCondition = fn
	return nil
}

// IsActive polls the bound getter; an unbound activity is never active
func (a *activityCore) IsActive() bool {
	return a.isActive != nil && a.isActive()
}

// CanStop reports whether TryStop would succeed
func (a *activityCore) CanStop() bool {
	return a.IsActive() && (a.stopCondition == nil || a.stopCondition())
}

// TryStop fires OnStop iff active and the stop gate holds
func (a *activityCore) TryStop() bool {
	if !a.CanStop() {
		a.OnFailStop.Fire()
		return false
	}
	a.OnStop.Fire()
	return true
}

// ForceStop fires OnStop iff active, ignoring the stop gate
func (a *activityCore) ForceStop() bool {
	if !a.IsActive() {
		return false
	}
	a.OnStop.Fire()
	return true
}

// Activity is a parameterless start/stop coordination surface
//
// Transitions:
//
//	Inactive --TryStart, start condition holds--> Active  (OnStart)
//	Active   --TryStop, stop condition holds-->   Inactive (OnStop)
//	Inactive --ForceStart-->                      Active  (OnStart)
//	Active   --ForceStop-->                       Inactive (OnStop)
//
// "Active" is whatever the bound getter reports; the OnStart / OnStop handlers
// of the owning component are expected to flip that state.
type Activity struct {
	activityCore
	startCondition func() bool

	// OnStart fires after a successful TryStart or ForceStart
	OnStart *Event

	// OnFailStart fires when TryStart is rejected
	OnFailStart *Event
}

// NewActivity creates a named parameterless activity
func NewActivity(name string) *Activity {
	return &Activity{
		activityCore: newActivityCore(name),
		OnStart:      NewEvent(name + ".OnStart"),
		OnFailStart:  NewEvent(name + ".OnFailStart"),
	}
}

// SetStartCondition binds the start gate, at most once
func (a *Activity) SetStartCondition(fn func() bool) error {
	if a.startCondition != nil {
		return bindErr(a.name, "start condition", ErrAlreadyBound)
	}
	a.startCondition = fn
	return nil
}

// CanStart reports whether TryStart would succeed
func (a *Activity) CanStart() bool {
	return !a.IsActive() && (a.startCondition == nil || a.startCondition())
}

// TryStart fires OnStart iff inactive and the start gate holds, else OnFailStart
func (a *Activity) TryStart() bool {
	if !a.CanStart() {
		a.OnFailStart.Fire()
		return false
	}
	a.OnStart.Fire()
	return true
}

// ForceStart fires OnStart iff inactive, ignoring the start gate
func (a *Activity) ForceStart() bool {
	if a.IsActive() {
		return false
	}
	a.OnStart.Fire()
	return true
}

// Activity1 is an activity whose start carries an argument (e.g. the interaction target)
type Activity1[T any] struct {
	activityCore
	startCondition func(T) bool

	OnStart     *Event1[T]
	OnFailStart *Event1[T]
}

// NewActivity1 creates a named parametrized activity
func NewActivity1[T any](name string) *Activity1[T] {
	return &Activity1[T]{
		activityCore: newActivityCore(name),
		OnStart:      NewEvent1[T](name + ".OnStart"),
		OnFailStart:  NewEvent1[T](name + ".OnFailStart"),
	}
}

// SetStartCondition binds the start gate, at most once
func (a *Activity1[T]) SetStartCondition(fn func(T) bool) error {
	if a.startCondition != nil {
		return bindErr(a.name, "start condition", ErrAlreadyBound)
	}
	a.startCondition = fn
	return nil
}

// CanStart reports whether TryStart(x) would succeed
func (a *Activity1[T]) CanStart(x T) bool {
	return !a.IsActive() && (a.startCondition == nil || a.startCondition(x))
}

// TryStart fires OnStart(x) iff inactive and the start gate holds for x
func (a *Activity1[T]) TryStart(x T) bool {
	if !a.CanStart(x) {
		a.OnFailStart.Fire(x)
		return false
	}
	a.OnStart.Fire(x)
	return true
}

// ForceStart fires OnStart(x) iff inactive
func (a *Activity1[T]) ForceStart(x T) bool {
	if a.IsActive() {
		return false
	}
	a.OnStart.Fire(x)
	return true
}
