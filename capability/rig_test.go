package capability

import (
	"math"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/lixenwraith/fps-model/config"
	"github.com/lixenwraith/fps-model/engine"
	"github.com/lixenwraith/fps-model/entity"
	"github.com/lixenwraith/fps-model/vmath"
	"github.com/lixenwraith/fps-model/weapon"
)

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// rig is one started entity on a mock clock
type rig struct {
	clock *engine.MockTimeProvider
	hook  *test.Hook
	hud   *hudRecorder
	e     *entity.Entity
	m     *entity.Model
	fp    *entity.FirstPersonModel
}

func newRig(t *testing.T, body entity.Body, cs ...entity.Component) *rig {
	t.Helper()
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	clock := engine.NewMockTimeProvider(epoch)
	ctx := entity.NewContext(clock, log)
	hud := &hudRecorder{}
	ctx.HUD = hud

	fp := entity.NewFirstPersonModel(config.Default().Entity)
	e := entity.New(ctx, fp, body)
	if err := e.Add(cs...); err != nil {
		t.Fatal(err)
	}
	if err := e.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	return &rig{clock: clock, hook: hook, hud: hud, e: e, m: e.Model(), fp: fp}
}

// tick advances the clock then runs one entity tick
func (r *rig) tick(d time.Duration) {
	r.clock.Advance(d)
	r.e.Tick(d)
}

type hudRecorder struct {
	reticle entity.ReticleState
	notes   []string
}

func (h *hudRecorder) SetReticle(s entity.ReticleState) { h.reticle = s }
func (h *hudRecorder) Notify(msg string)                { h.notes = append(h.notes, msg) }

func rifleDef() *weapon.Definition {
	return &weapon.Definition{
		Name:             "rifle",
		ClipSize:         30,
		FireRate:         10,
		ReloadCooldown:   2 * time.Second,
		Accuracy:         0.7,
		Mobility:         0.8,
		Recoil:           0.5,
		FireModes:        []weapon.FireMode{weapon.FullAuto, weapon.SemiAuto},
		RecoilPatternMin: vmath.Vec2{X: -1, Y: 1},
		RecoilPatternMax: vmath.Vec2{X: 1, Y: 2},
	}
}

func pistolDef() *weapon.Definition {
	return &weapon.Definition{
		Name:           "pistol",
		ClipSize:       12,
		FireRate:       5,
		ReloadCooldown: time.Second,
		Accuracy:       0.9,
		Mobility:       0.9,
		FireModes:      []weapon.FireMode{weapon.SemiAuto},
	}
}

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }
