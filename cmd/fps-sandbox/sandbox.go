package main

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/fps-model/audio"
	"github.com/lixenwraith/fps-model/capability"
	"github.com/lixenwraith/fps-model/config"
	"github.com/lixenwraith/fps-model/controller"
	"github.com/lixenwraith/fps-model/engine"
	"github.com/lixenwraith/fps-model/entity"
	"github.com/lixenwraith/fps-model/input"
	"github.com/lixenwraith/fps-model/vmath"
	"github.com/lixenwraith/fps-model/weapon"
)

const (
	shellLifetime = 2 * time.Second
	targetMinDot  = 0.7 // pickups sit on the floor below eye level
)

// sandbox is one player on a flat floor with the configured pickups and a hazard zone
type sandbox struct {
	cfg   *config.Config
	log   *logrus.Entry
	world *engine.World
	in    *input.State

	targets *controller.Targets
	pickups []*capability.WeaponPickup
	hazard  *hazard

	player  *entity.Entity
	body    *capability.KinematicBody
	ctl     *controller.FirstPersonController
	look    *controller.FirstPersonLook
	motor   *capability.Motor
	inv     *capability.Inventory
	weapons *capability.FirstPersonWeaponHandler
	damage  *capability.DamageHandler
	shells  *capability.ShellEjector
}

func newSandbox(cfg *config.Config, log *logrus.Logger, hud entity.HUD, sound audio.Player) (*sandbox, error) {
	reg, err := weapon.FromConfig(cfg.Weapons)
	if err != nil {
		return nil, err
	}

	sb := &sandbox{
		cfg:     cfg,
		log:     log.WithField("component", "sandbox"),
		world:   engine.NewWorld(time.Now(), logrus.NewEntry(log)),
		in:      input.NewState(input.DefaultHoldWindow),
		targets: controller.NewTargets(),
		body:    capability.NewKinematicBody(vmath.Vec3{}),
		look:    controller.NewFirstPersonLook(controller.DefaultLookConfig()),
		motor:   capability.NewMotor(capability.DefaultMotorConfig()),
		inv:     capability.NewInventory(cfg.Inventory.MaxWeapons),
		weapons: capability.NewFirstPersonWeaponHandler(),
		damage:  capability.NewDamageHandler(),
		shells:  capability.NewShellEjector(shellLifetime),
	}
	sb.targets.MinDot = targetMinDot
	sb.ctl = controller.NewFirstPersonController(sb.in, sb.targets)
	sb.ctl.Range = cfg.Interaction.Distance

	ctx := entity.NewContext(sb.world.Clock, log)
	ctx.HUD = hud

	sb.player = entity.New(ctx, entity.NewFirstPersonModel(cfg.Entity), sb.body)
	err = sb.player.Add(
		sb.ctl,
		sb.look,
		sb.motor,
		sb.inv,
		sb.weapons,
		capability.NewInteractionHandler(cfg.Interaction.Distance),
		capability.NewFootsteps(cfg.Footsteps.Distance, cfg.Footsteps.ProneDistance),
		sb.damage,
		capability.InstantDespawnDeathHandler{},
		sb.shells,
		audio.NewFootstepSound(sound),
	)
	if err != nil {
		return nil, err
	}
	sb.weapons.OnWeaponCreated.Subscribe(audio.NewWeaponSound(sound).Attach)
	if err := sb.player.Start(); err != nil {
		return nil, fmt.Errorf("start player: %w", err)
	}

	for _, entry := range cfg.Loadout {
		def, err := reg.Get(entry.Weapon)
		if err != nil {
			return nil, fmt.Errorf("loadout: %w", err)
		}
		pos := vmath.Vec3{X: entry.Position[0], Y: entry.Position[1], Z: entry.Position[2]}
		p := capability.NewWeaponPickup(def, entry.Ammo, pos, entity.InteractionParameters{Duration: entry.Duration.Duration})
		p.OnConsumed = sb.onConsumed
		sb.pickups = append(sb.pickups, p)
		sb.targets.Add(p)
	}

	sb.hazard = &hazard{
		Position:  vmath.Vec3{Z: -5},
		Radius:    1.5,
		DPS:       10,
		Push:      6,
		model:     sb.player.Model(),
		target:    sb.damage,
		body:      sb.body,
		destroyed: sb.player.Destroyed,
	}

	// Player before its body so movement requests apply in the same tick
	sb.world.Spawn(sb.player)
	sb.world.Spawn(sb.body)
	sb.world.Spawn(sb.hazard)

	sb.log.WithFields(logrus.Fields{
		"player":  sb.player.ID(),
		"pickups": len(sb.pickups),
		"weapons": reg.Names(),
	}).Info("sandbox ready")
	return sb, nil
}

func (sb *sandbox) onConsumed(p *capability.WeaponPickup, _ *entity.Entity) {
	sb.targets.Remove(p)
	sb.log.WithField("weapon", p.Weapon.Name).Info("pickup consumed")
}

// press routes one key intent, reporting false for quit
func (sb *sandbox) press(i input.Intent) bool {
	if i == input.IntentQuit {
		return false
	}
	sb.in.Press(i, sb.world.Clock.Now())
	return true
}

// statusLines describes the player for the HUD
func (sb *sandbox) statusLines() []string {
	fp := sb.player.FP()
	p := sb.body.Position()
	lines := []string{
		fmt.Sprintf("pos %5.1f %5.1f %5.1f  yaw %4.0f  pitch %4.0f  fov %3.0f",
			p.X, p.Y, p.Z, sb.look.Yaw(), sb.look.Pitch(), sb.look.FOV()),
	}

	health := fmt.Sprintf("health %3.0f/%3.0f", math.Max(0, fp.Health.Get()), fp.MaxHealth.Get())
	if sb.damage.IsDead() {
		health += "  DEAD (ctrl+q quits)"
	}
	lines = append(lines, health)

	if w := fp.CurrentWeapon.Get(); w != nil {
		s := fmt.Sprintf("%s [%s] %d/%d", w.Definition().Name, w.FireMode(), w.AmmoInClip(), w.Ammo())
		if w.IsReloading() {
			s += fmt.Sprintf("  reloading %3.0f%%", w.ReloadProgress()*100)
		}
		lines = append(lines, s)
	} else {
		lines = append(lines, fmt.Sprintf("unarmed, carrying %d", fp.AvailableWeapons.Len()))
	}

	flags := []string{sb.motor.Stance().String()}
	for _, a := range []struct {
		name   string
		active bool
	}{
		{"run", fp.Run.IsActive()},
		{"sneak", fp.Sneak.IsActive()},
		{"lean left", fp.LeanLeft.IsActive()},
		{"lean right", fp.LeanRight.IsActive()},
		{"zoom", fp.Zoom.IsActive()},
		{"airborne", !fp.Grounded.Get()},
	} {
		if a.active {
			flags = append(flags, a.name)
		}
	}
	lines = append(lines, strings.Join(flags, "  "))

	if fp.Interact.IsActive() {
		lines = append(lines, fmt.Sprintf("interacting %3.0f%%", fp.InteractionProgress.Get()*100))
	}
	lines = append(lines, fmt.Sprintf("shells %d", len(sb.shells.Live())))
	return lines
}

// hazard damages the player for every second spent inside its radius and pushes it outward
type hazard struct {
	Position vmath.Vec3
	Radius   float64
	DPS      float64
	Push     float64 // outward speed gained per second inside

	model     *entity.Model
	target    *capability.DamageHandler
	body      entity.Body
	destroyed func() bool
}

func (h *hazard) Tick(dt time.Duration) {
	at := vmath.V3Planar(h.body.Position())
	if h.destroyed() || vmath.V3Dist(at, h.Position) > h.Radius {
		return
	}
	out := vmath.V3Normalize(vmath.V3Sub(at, h.Position))
	h.model.ExternalForce.Fire(vmath.V3Scale(out, h.Push*dt.Seconds()))
	h.target.TakeDamage(entity.DamageEvent{
		Damage:      h.DPS * dt.Seconds(),
		HitPoint:    h.body.Position(),
		ByMechanics: true,
	})
}
