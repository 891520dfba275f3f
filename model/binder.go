package model

import "errors"

// Binder collects binding errors so a component can wire every field and report all failures at once
//
//	var b model.Binder
//	b.Check(m.Health.SetGetter(h.health))
//	b.Check(m.Death.SetActivityGetter(h.isDead))
//	return b.Err()
type Binder struct {
	errs []error
}

// Check records err if non-nil
func (b *Binder) Check(err error) {
	if err != nil {
		b.errs = append(b.errs, err)
	}
}

// Err returns all recorded errors joined, nil if none
func (b *Binder) Err() error {
	return errors.Join(b.errs...)
}
