package controller

import (
	"math"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/lixenwraith/fps-model/capability"
	"github.com/lixenwraith/fps-model/config"
	"github.com/lixenwraith/fps-model/engine"
	"github.com/lixenwraith/fps-model/entity"
	"github.com/lixenwraith/fps-model/input"
	"github.com/lixenwraith/fps-model/vmath"
	"github.com/lixenwraith/fps-model/weapon"
)

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// player is a fully assembled first person entity on a mock clock
type player struct {
	clock   *engine.MockTimeProvider
	in      *input.State
	hud     *hudRecorder
	targets *Targets
	body    *capability.KinematicBody
	e       *entity.Entity
	fp      *entity.FirstPersonModel

	ctl    *FirstPersonController
	look   *FirstPersonLook
	motor  *capability.Motor
	inv    *capability.Inventory
	weapon *capability.FirstPersonWeaponHandler
}

func newPlayer(t *testing.T) *player {
	t.Helper()
	log, _ := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	clock := engine.NewMockTimeProvider(epoch)
	ctx := entity.NewContext(clock, log)
	hud := &hudRecorder{}
	ctx.HUD = hud

	p := &player{
		clock:   clock,
		in:      input.NewState(0),
		hud:     hud,
		targets: NewTargets(),
		body:    capability.NewKinematicBody(vmath.Vec3{}),
		look:    NewFirstPersonLook(DefaultLookConfig()),
		motor:   capability.NewMotor(capability.DefaultMotorConfig()),
		inv:     capability.NewInventory(2),
		weapon:  capability.NewFirstPersonWeaponHandler(),
	}
	p.ctl = NewFirstPersonController(p.in, p.targets)
	p.fp = entity.NewFirstPersonModel(config.Default().Entity)
	p.e = entity.New(ctx, p.fp, p.body)
	err := p.e.Add(
		p.ctl,
		p.look,
		p.motor,
		p.inv,
		p.weapon,
		capability.NewInteractionHandler(3),
		capability.NewFootsteps(1.5, 0.8),
		capability.NewDamageHandler(),
	)
	if err != nil {
		t.Fatal(err)
	}
	if err := p.e.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	return p
}

// press feeds intents as one batch of key events and runs a tick
func (p *player) press(d time.Duration, intents ...input.Intent) {
	for _, i := range intents {
		p.in.Press(i, p.clock.Now())
	}
	p.tick(d)
}

func (p *player) tick(d time.Duration) {
	p.clock.Advance(d)
	p.e.Tick(d)
	p.body.Tick(d)
	p.in.EndTick()
}

// arm picks up def with a loaded clip and selects it through the slot key
func (p *player) arm(t *testing.T, def *weapon.Definition) *weapon.Weapon {
	t.Helper()
	if !p.fp.PickupWeapon.Try(weapon.AmmoTuple{Weapon: def, Ammo: def.ClipSize}) {
		t.Fatal("pickup failed")
	}
	p.press(time.Millisecond, input.IntentWeapon1)
	p.in.Release(input.IntentWeapon1)
	w := p.weapon.Current()
	if w == nil {
		t.Fatal("weapon_1 should select the first slot")
	}
	w.SetAmmoInClip(def.ClipSize)
	return w
}

type hudRecorder struct {
	reticles []entity.ReticleState
	notes    []string
}

func (h *hudRecorder) SetReticle(s entity.ReticleState) { h.reticles = append(h.reticles, s) }
func (h *hudRecorder) Notify(msg string)                { h.notes = append(h.notes, msg) }

func (h *hudRecorder) last() entity.ReticleState {
	if len(h.reticles) == 0 {
		return entity.ReticleNone
	}
	return h.reticles[len(h.reticles)-1]
}

func pistol() *weapon.Definition {
	return &weapon.Definition{
		Name:             "pistol",
		ClipSize:         12,
		FireRate:         5,
		ReloadCooldown:   time.Second,
		Accuracy:         0.9,
		Mobility:         1,
		Recoil:           1,
		FireModes:        []weapon.FireMode{weapon.SemiAuto},
		RecoilPatternMin: vmath.Vec2{X: 0, Y: 1},
		RecoilPatternMax: vmath.Vec2{X: 0, Y: 1},
	}
}

func rifle() *weapon.Definition {
	return &weapon.Definition{
		Name:           "rifle",
		ClipSize:       30,
		FireRate:       10,
		ReloadCooldown: 2 * time.Second,
		Accuracy:       0.7,
		Mobility:       0.8,
		FireModes:      []weapon.FireMode{weapon.FullAuto, weapon.SemiAuto},
	}
}

func near(a, b float64) bool { return math.Abs(a-b) < 1e-6 }

func TestMovementFollowsLook(t *testing.T) {
	p := newPlayer(t)

	p.press(100*time.Millisecond, input.IntentMoveForward)
	v := p.body.Velocity()
	if !near(v.Z, 5) || !near(v.X, 0) {
		t.Fatalf("forward velocity = %+v, want Z=5", v)
	}

	// 120 deg/s for 750ms turns a quarter to the right
	p.press(750*time.Millisecond, input.IntentLookRight)
	if !near(p.look.Yaw(), 90) {
		t.Fatalf("yaw = %v, want 90", p.look.Yaw())
	}
	v = p.body.Velocity()
	if !near(v.X, 5) || !near(v.Z, 0) {
		t.Errorf("velocity after turning = %+v, want X=5", v)
	}
}

func TestPitchClamped(t *testing.T) {
	p := newPlayer(t)
	p.press(time.Second, input.IntentLookUp)
	if p.look.Pitch() != 45 {
		t.Errorf("pitch = %v, want clamp at 45", p.look.Pitch())
	}
	if d := p.fp.LookDir.Get(); d.Y <= 0 {
		t.Errorf("look dir %+v should point up", d)
	}
	p.in.Release(input.IntentLookUp)
	p.press(2*time.Second, input.IntentLookDown)
	if p.look.Pitch() != -45 {
		t.Errorf("pitch = %v, want clamp at -45", p.look.Pitch())
	}
}

func TestHeldActivities(t *testing.T) {
	p := newPlayer(t)

	p.press(10*time.Millisecond, input.IntentLeanLeft)
	if !p.fp.LeanLeft.IsActive() {
		t.Fatal("held lean_left should lean")
	}
	p.press(10*time.Millisecond, input.IntentLeanRight)
	if p.fp.LeanRight.IsActive() {
		t.Error("lean right must wait for lean left to end")
	}
	p.in.Release(input.IntentLeanLeft)
	p.tick(10 * time.Millisecond)
	if p.fp.LeanLeft.IsActive() {
		t.Error("released lean_left should stop leaning")
	}
	if !p.fp.LeanRight.IsActive() {
		t.Error("still held lean_right should start once free")
	}

	p.press(10*time.Millisecond, input.IntentRun)
	if p.fp.Run.IsActive() {
		t.Error("run without movement must not start")
	}
	p.press(10*time.Millisecond, input.IntentMoveForward)
	if !p.fp.Run.IsActive() {
		t.Error("held run with movement should run")
	}
	if v := p.body.Velocity(); !near(v.Z, 8) {
		t.Errorf("running velocity = %+v, want Z=8", v)
	}
}

func TestToggledActivities(t *testing.T) {
	p := newPlayer(t)

	p.press(10*time.Millisecond, input.IntentCrouch)
	if !p.fp.Crouch.IsActive() {
		t.Fatal("crouch should toggle on")
	}
	p.press(10*time.Millisecond, input.IntentProne)
	if p.fp.Prone.IsActive() {
		t.Error("prone from crouch must be rejected")
	}

	// A repeat while held is not a new press
	p.press(10*time.Millisecond, input.IntentCrouch)
	if !p.fp.Crouch.IsActive() {
		t.Error("auto-repeat must not toggle")
	}
	p.in.Release(input.IntentCrouch)
	p.press(10*time.Millisecond, input.IntentCrouch)
	if p.fp.Crouch.IsActive() {
		t.Error("second press should toggle crouch off")
	}

	p.press(10*time.Millisecond, input.IntentSneak)
	if !p.fp.Sneak.IsActive() {
		t.Error("sneak should toggle on")
	}
}

func TestFireAndRecoil(t *testing.T) {
	p := newPlayer(t)
	w := p.arm(t, pistol())

	p.press(10*time.Millisecond, input.IntentFire)
	if w.AmmoInClip() != 11 {
		t.Fatalf("clip = %d, want 11 after one press", w.AmmoInClip())
	}
	if !near(p.look.Pitch(), 1) {
		t.Errorf("pitch = %v, want recoil kick of 1", p.look.Pitch())
	}

	p.press(300*time.Millisecond, input.IntentFire)
	if w.AmmoInClip() != 11 {
		t.Errorf("holding semi-auto must not refire, clip = %d", w.AmmoInClip())
	}

	p.in.Release(input.IntentFire)
	p.tick(10 * time.Millisecond)
	p.press(10*time.Millisecond, input.IntentFire)
	if w.AmmoInClip() != 10 {
		t.Errorf("clip = %d, want 10 after second press", w.AmmoInClip())
	}
}

func TestReloadAndHolster(t *testing.T) {
	p := newPlayer(t)
	w := p.arm(t, pistol())
	w.SetAmmoInClip(3)

	p.press(10*time.Millisecond, input.IntentReload)
	if !w.IsReloading() {
		t.Fatal("reload key should start a reload")
	}
	p.tick(time.Second)
	if w.IsReloading() {
		t.Error("reload should finish after the cooldown")
	}

	p.press(10*time.Millisecond, input.IntentHolster)
	if p.fp.CurrentWeapon.Get() != nil {
		t.Error("holster should clear the current weapon")
	}
}

func TestCycleFireMode(t *testing.T) {
	p := newPlayer(t)
	w := p.arm(t, rifle())

	want := []weapon.FireMode{weapon.SemiAuto, weapon.FullAuto, weapon.SemiAuto}
	for i, fm := range want {
		p.in.Release(input.IntentFireMode)
		p.press(10*time.Millisecond, input.IntentFireMode)
		if w.FireMode() != fm {
			t.Errorf("press %d: mode = %v, want %v", i+1, w.FireMode(), fm)
		}
	}
}

func TestReticle(t *testing.T) {
	p := newPlayer(t)
	p.tick(10 * time.Millisecond)
	if p.hud.last() != entity.ReticleNone {
		t.Errorf("unarmed reticle = %v, want none", p.hud.last())
	}

	p.arm(t, pistol())
	if p.hud.last() != entity.ReticleCrosshair {
		t.Errorf("armed reticle = %v, want crosshair", p.hud.last())
	}

	p.press(10*time.Millisecond, input.IntentZoom)
	if !p.fp.Zoom.IsActive() {
		t.Fatal("zoom should start with a weapon held")
	}
	if p.hud.last() != entity.ReticleNone {
		t.Errorf("zoomed reticle = %v, want none", p.hud.last())
	}
	p.tick(time.Second)
	if !near(p.look.FOV(), 45) {
		t.Errorf("zoomed fov = %v, want 45", p.look.FOV())
	}

	before := len(p.hud.reticles)
	p.tick(10 * time.Millisecond)
	if len(p.hud.reticles) != before {
		t.Error("an unchanged reticle must not be re-sent")
	}
}

func TestInteractPicksUpTarget(t *testing.T) {
	p := newPlayer(t)
	def := pistol()
	pickup := capability.NewWeaponPickup(def, 24,
		vmath.Vec3{Y: capability.EyeHeight, Z: 1.5}, entity.InteractionParameters{})
	pickup.OnConsumed = func(it *capability.WeaponPickup, _ *entity.Entity) { p.targets.Remove(it) }
	p.targets.Add(pickup)

	behind := capability.NewWeaponPickup(rifle(), 30,
		vmath.Vec3{Y: capability.EyeHeight, Z: -1}, entity.InteractionParameters{})
	p.targets.Add(behind)

	p.tick(10 * time.Millisecond)
	if p.ctl.Target() != pickup {
		t.Fatalf("target = %v, want the pickup in front", p.ctl.Target())
	}
	if p.hud.last() != entity.ReticleInteraction {
		t.Errorf("reticle = %v, want interaction", p.hud.last())
	}

	p.press(10*time.Millisecond, input.IntentInteract)
	if !pickup.Consumed() || !p.inv.Has(def) {
		t.Fatal("instant interaction should pick the weapon up")
	}
	if p.targets.Len() != 1 {
		t.Errorf("targets = %d, consumed pickup should be removed", p.targets.Len())
	}

	p.tick(10 * time.Millisecond)
	if p.ctl.Target() != nil {
		t.Error("nothing should be targeted once the pickup is gone")
	}
}

func TestTargetsCone(t *testing.T) {
	ts := NewTargets()
	front := capability.NewWeaponPickup(pistol(), 0, vmath.Vec3{Z: 1}, entity.InteractionParameters{})
	side := capability.NewWeaponPickup(rifle(), 0, vmath.Vec3{X: 1}, entity.InteractionParameters{})
	far := capability.NewWeaponPickup(rifle(), 0, vmath.Vec3{Z: 5}, entity.InteractionParameters{})
	ts.Add(side)
	ts.Add(far)

	tests := []struct {
		name string
		dir  vmath.Vec3
		want entity.Interactable
	}{
		{"nothing ahead in range", vmath.Vec3{Z: 1}, nil},
		{"side target", vmath.Vec3{X: 1}, side},
		{"unnormalized direction", vmath.Vec3{X: 4}, side},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ts.Target(vmath.Vec3{}, tt.dir, 2); got != tt.want {
				t.Errorf("Target = %v, want %v", got, tt.want)
			}
		})
	}

	ts.Add(front)
	if got := ts.Target(vmath.Vec3{}, vmath.Vec3{Z: 1}, 10); got != front {
		t.Errorf("nearest in cone should win, got %v", got)
	}
	if !ts.Remove(front) || ts.Remove(front) {
		t.Error("Remove should report presence once")
	}
}
