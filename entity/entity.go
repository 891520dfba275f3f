// Package entity holds the behaviour model container and the entity aggregate that owns it
//
// An entity is assembled in two phases:
//
//	e := entity.New(ctx, entity.NewFirstPersonModel(stats), body)
//	e.Add(motor, weapons, damage)
//	if err := e.Start(); err != nil { ... }
//
// Start lets every component bind into the model exactly once, in insertion
// order. After Start the component list is frozen and Tick drives the per-tick
// updates.
package entity

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/fps-model/engine"
)

var (
	ErrStarted = errors.New("entity already started")
	ErrNoModel = errors.New("entity has no model")

	// ErrStartFailed is returned by Start after a failed Start; partial bindings cannot be undone
	ErrStartFailed = errors.New("entity start failed earlier")
)

// Component is a capability that binds into the model once before any tick
type Component interface {
	RegisterBindings(e *Entity) error
}

// Updater components run every tick, in insertion order
type Updater interface {
	Update(dt time.Duration)
}

// LateUpdater components run after every Updater of the tick
type LateUpdater interface {
	LateUpdate(dt time.Duration)
}

// Entity owns one model and the components bound into it
type Entity struct {
	id   uuid.UUID
	ctx  *Context
	fp   *FirstPersonModel
	body Body
	log  *logrus.Entry

	components []Component
	updaters   []Updater
	late       []LateUpdater

	started     bool
	startFailed bool
	destroyed   bool
}

// New creates an unstarted entity; body may be nil for static entities
func New(ctx *Context, fp *FirstPersonModel, body Body) *Entity {
	id := uuid.New()
	return &Entity{
		id:   id,
		ctx:  ctx,
		fp:   fp,
		body: body,
		log:  ctx.Log.WithField("entity_id", id.String()),
	}
}

// ID returns the unique entity id
func (e *Entity) ID() uuid.UUID { return e.id }

// Model returns the shared entity model
func (e *Entity) Model() *Model { return &e.fp.Model }

// FP returns the first person model
func (e *Entity) FP() *FirstPersonModel { return e.fp }

// Body returns the physics collaborator, possibly nil
func (e *Entity) Body() Body { return e.body }

// Context returns the world services
func (e *Entity) Context() *Context { return e.ctx }

// Clock returns the world clock
func (e *Entity) Clock() engine.TimeProvider { return e.ctx.Clock }

// Log returns the entity-scoped logger
func (e *Entity) Log() *logrus.Entry { return e.log }

// Add appends components; only valid before Start
func (e *Entity) Add(cs ...Component) error {
	if e.started {
		return ErrStarted
	}
	e.components = append(e.components, cs...)
	return nil
}

// Components returns the registered components
func (e *Entity) Components() []Component { return e.components }

// Start registers every component's bindings once
// All binding errors are collected and returned together; a failed Start is terminal
func (e *Entity) Start() error {
	if e.started {
		return ErrStarted
	}
	if e.startFailed {
		return ErrStartFailed
	}
	if e.fp == nil {
		return ErrNoModel
	}

	var errs []error
	for _, c := range e.components {
		if err := c.RegisterBindings(e); err != nil {
			errs = append(errs, fmt.Errorf("%T: %w", c, err))
		}
	}
	if err := errors.Join(errs...); err != nil {
		e.startFailed = true
		e.log.WithError(err).Error("component binding failed")
		return err
	}

	for _, c := range e.components {
		if u, ok := c.(Updater); ok {
			e.updaters = append(e.updaters, u)
		}
		if l, ok := c.(LateUpdater); ok {
			e.late = append(e.late, l)
		}
	}
	e.started = true
	e.log.WithField("components", len(e.components)).Debug("entity started")
	return nil
}

// Started reports whether Start succeeded
func (e *Entity) Started() bool { return e.started }

// Tick runs Update on every Updater, then LateUpdate on every LateUpdater
// A component destroying the entity stops the remaining updates of the tick
func (e *Entity) Tick(dt time.Duration) {
	if !e.started || e.destroyed {
		return
	}
	for _, u := range e.updaters {
		u.Update(dt)
		if e.destroyed {
			return
		}
	}
	for _, l := range e.late {
		l.LateUpdate(dt)
		if e.destroyed {
			return
		}
	}
}

// Destroy marks the entity for removal at the end of the tick
func (e *Entity) Destroy() {
	if e.destroyed {
		return
	}
	e.destroyed = true
	e.log.Debug("entity destroyed")
}

// Destroyed reports whether Destroy was called
func (e *Entity) Destroyed() bool { return e.destroyed }
