package capability

import (
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/fps-model/entity"
	"github.com/lixenwraith/fps-model/model"
)

// DamageHandler owns health and starts death when it runs out
//
// Death is forced from inside the damage notification, so a lethal hit and
// every death consumer resolve within the same tick.
type DamageHandler struct {
	m   *entity.Model
	log *logrus.Entry

	health float64
	dead   bool
}

// NewDamageHandler creates a handler; health starts at MaxHealth on registration
func NewDamageHandler() *DamageHandler {
	return &DamageHandler{}
}

func (h *DamageHandler) RegisterBindings(e *entity.Entity) error {
	h.m = e.Model()
	h.log = e.Log().WithField("component", "damage")
	h.health = h.m.MaxHealth.Get()
	m := h.m

	var b model.Binder
	b.Check(m.Health.SetGetter(func() float64 { return h.health }))
	m.Health.OnSetValue.Subscribe(h.setHealth)
	m.OnDamageTaken.Subscribe(h.onDamage)

	b.Check(m.Death.SetStartCondition(h.canDie))
	b.Check(m.Death.SetActivityGetter(h.IsDead))
	m.Death.OnStart.Subscribe(func() {
		h.dead = true
		h.log.Info("died")
	})
	m.Death.OnStop.Subscribe(func() { h.dead = false })

	return b.Err()
}

// Health returns current health
func (h *DamageHandler) Health() float64 { return h.health }

// IsDead reports whether death has started
func (h *DamageHandler) IsDead() bool { return h.dead }

// TakeDamage routes a hit through the model so every damage subscriber sees it
func (h *DamageHandler) TakeDamage(ev entity.DamageEvent) {
	h.m.OnDamageTaken.Fire(ev)
}

func (h *DamageHandler) canDie() bool { return true }

// setHealth honours Health.Set; positive health revives a dead entity
func (h *DamageHandler) setHealth(v float64) {
	h.health = v
	if v > 0 {
		h.m.Death.ForceStop()
		return
	}
	h.checkDeath()
}

func (h *DamageHandler) onDamage(ev entity.DamageEvent) {
	dmg := ev.Damage * h.m.DamageTaken.Get()
	h.health -= dmg
	h.log.WithFields(logrus.Fields{"damage": dmg, "health": h.health}).Debug("damage taken")
	h.checkDeath()
}

func (h *DamageHandler) checkDeath() {
	if h.health <= 0 {
		h.m.Death.ForceStart()
	}
}
