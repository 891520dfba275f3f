package audio

import (
	"github.com/lixenwraith/fps-model/entity"
	"github.com/lixenwraith/fps-model/weapon"
)

// WeaponSound voices the fire, dry fire and reload activities of weapons it is attached to
type WeaponSound struct {
	player   Player
	attached map[*weapon.Weapon]bool
}

// NewWeaponSound creates a listener playing through p
func NewWeaponSound(p Player) *WeaponSound {
	return &WeaponSound{player: p, attached: make(map[*weapon.Weapon]bool)}
}

// Attach subscribes to w once; usable directly as an OnWeaponCreated handler
func (ws *WeaponSound) Attach(w *weapon.Weapon) {
	if w == nil || ws.attached[w] {
		return
	}
	ws.attached[w] = true
	w.WeaponFire.OnStart.Subscribe(func() { ws.player.Play(SoundFire) })
	w.WeaponFire.OnFailStart.Subscribe(func() {
		// Cooldown rejections are silent, only an empty clip clicks
		if w.AmmoInClip() <= 0 && !w.IsReloading() {
			ws.player.Play(SoundDryFire)
		}
	})
	w.WeaponReload.OnStart.Subscribe(func() { ws.player.Play(SoundReload) })
}

// FootstepSound plays a step sound for every footstep of its entity
type FootstepSound struct {
	player Player
	m      *entity.Model
}

// NewFootstepSound creates a footstep listener playing through p
func NewFootstepSound(p Player) *FootstepSound {
	return &FootstepSound{player: p}
}

func (fs *FootstepSound) RegisterBindings(e *entity.Entity) error {
	fs.m = e.Model()
	fs.m.Footstep.Subscribe(fs.onStep)
	return nil
}

func (fs *FootstepSound) onStep(entity.Foot) {
	if fs.m.Prone.IsActive() {
		fs.player.Play(SoundProneFootstep)
		return
	}
	fs.player.Play(SoundFootstep)
}
