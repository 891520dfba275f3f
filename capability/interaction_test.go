package capability

import (
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/lixenwraith/fps-model/capability/mocks"
	"github.com/lixenwraith/fps-model/entity"
	"github.com/lixenwraith/fps-model/vmath"
)

func target(ctrl *gomock.Controller, at vmath.Vec3, d time.Duration) *mocks.MockInteractable {
	it := mocks.NewMockInteractable(ctrl)
	it.EXPECT().ClosestPoint(gomock.Any()).Return(at).AnyTimes()
	it.EXPECT().Parameters().Return(entity.InteractionParameters{Duration: d}).AnyTimes()
	return it
}

func TestTimedInteraction(t *testing.T) {
	ctrl := gomock.NewController(t)
	body := NewKinematicBody(vmath.Vec3{})
	ih := NewInteractionHandler(3)
	r := newRig(t, body, ih)

	door := target(ctrl, vmath.Vec3{X: 1}, time.Second)
	gomock.InOrder(
		door.EXPECT().OnInteractionStarted(r.e),
		door.EXPECT().OnInteractionFinished(r.e),
	)

	if !r.m.Interact.TryStart(door) {
		t.Fatal("interaction within reach should start")
	}
	if r.m.Interact.TryStart(door) {
		t.Error("a second interaction while one runs must fail")
	}

	r.tick(500 * time.Millisecond)
	if p := r.m.InteractionProgress.Get(); !near(p, 0.5) {
		t.Errorf("progress = %v, want 0.5", p)
	}
	r.tick(500 * time.Millisecond)
	if r.m.Interact.IsActive() {
		t.Error("interaction should finish at its duration")
	}
	if p := r.m.InteractionProgress.Get(); p != 0 {
		t.Errorf("idle progress = %v, want 0", p)
	}
}

func TestInstantInteraction(t *testing.T) {
	ctrl := gomock.NewController(t)
	ih := NewInteractionHandler(3)
	r := newRig(t, NewKinematicBody(vmath.Vec3{}), ih)

	button := target(ctrl, vmath.Vec3{Z: 2}, 0)
	gomock.InOrder(
		button.EXPECT().OnInteractionStarted(r.e),
		button.EXPECT().OnInteractionFinished(r.e),
	)

	if !r.m.Interact.TryStart(button) {
		t.Fatal("instant interaction should start")
	}
	if r.m.Interact.IsActive() {
		t.Error("instant interaction completes within the start call")
	}
}

func TestInteractionCanceledOutOfReach(t *testing.T) {
	ctrl := gomock.NewController(t)
	body := NewKinematicBody(vmath.Vec3{})
	ih := NewInteractionHandler(3)
	r := newRig(t, body, ih)

	crate := target(ctrl, vmath.Vec3{X: 2}, 2*time.Second)
	gomock.InOrder(
		crate.EXPECT().OnInteractionStarted(r.e),
		crate.EXPECT().OnInteractionCanceled(r.e),
	)

	r.m.Interact.TryStart(crate)
	r.tick(time.Second)
	body.SetPosition(vmath.Vec3{X: 10})
	r.tick(100 * time.Millisecond)

	if r.m.Interact.IsActive() {
		t.Error("interaction should be canceled once out of reach")
	}
	r.tick(2 * time.Second)
}

func TestInteractionRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	ih := NewInteractionHandler(3)
	r := newRig(t, NewKinematicBody(vmath.Vec3{}), ih)

	far := target(ctrl, vmath.Vec3{X: 5}, 0)

	var rejected []entity.Interactable
	r.m.Interact.OnFailStart.Subscribe(func(it entity.Interactable) { rejected = append(rejected, it) })

	if r.m.Interact.TryStart(far) {
		t.Error("interaction out of reach must fail")
	}
	if r.m.Interact.TryStart(nil) {
		t.Error("interaction without a target must fail")
	}
	if len(rejected) != 2 {
		t.Errorf("rejections = %d, want 2", len(rejected))
	}
}

func TestWeaponPickupInteraction(t *testing.T) {
	inv := NewInventory(1)
	wh := NewWeaponHandler()
	ih := NewInteractionHandler(3)
	r := newRig(t, NewKinematicBody(vmath.Vec3{}), inv, wh, ih)

	rifle := NewWeaponPickup(rifleDef(), 60, vmath.Vec3{X: 1}, entity.InteractionParameters{Duration: 500 * time.Millisecond})
	var takenBy *entity.Entity
	rifle.OnConsumed = func(_ *WeaponPickup, user *entity.Entity) { takenBy = user }

	if !r.m.Interact.TryStart(rifle) {
		t.Fatal("pickup interaction should start")
	}
	r.tick(500 * time.Millisecond)
	if !rifle.Consumed() || takenBy != r.e {
		t.Fatal("finished interaction should consume the pickup")
	}
	if len(wh.Weapons()) != 1 || inv.Ammo(rifle.Weapon) != 60 {
		t.Errorf("held=%d reserve=%d, want 1/60", len(wh.Weapons()), inv.Ammo(rifle.Weapon))
	}

	pistol := NewWeaponPickup(pistolDef(), 12, vmath.Vec3{X: 1}, entity.InteractionParameters{})
	r.m.Interact.TryStart(pistol)
	if pistol.Consumed() {
		t.Error("a full inventory must leave the pickup in the world")
	}
	if n := len(r.hud.notes); n == 0 || r.hud.notes[n-1] != "cannot carry pistol" {
		t.Errorf("hud notes = %v", r.hud.notes)
	}
}
