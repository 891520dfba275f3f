package capability

import (
	"testing"

	"github.com/lixenwraith/fps-model/weapon"
)

func TestInventoryPickupDrop(t *testing.T) {
	inv := NewInventory(2)
	wh := NewWeaponHandler()
	r := newRig(t, nil, inv, wh)
	rifle, pistol, shotgun := rifleDef(), pistolDef(), &weapon.Definition{Name: "shotgun", ClipSize: 6, FireRate: 1}

	var picked, dropped []string
	r.m.OnPickedUpWeapon.Subscribe(func(d *weapon.Definition) { picked = append(picked, d.Name) })
	r.m.OnDroppedWeapon.Subscribe(func(d *weapon.Definition) { dropped = append(dropped, d.Name) })

	tests := []struct {
		name string
		def  *weapon.Definition
		ok   bool
	}{
		{"rifle", rifle, true},
		{"pistol", pistol, true},
		{"over capacity", shotgun, false},
		{"nil weapon", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.m.PickupWeapon.Try(weapon.AmmoTuple{Weapon: tt.def, Ammo: 10}); got != tt.ok {
				t.Errorf("pickup = %v, want %v", got, tt.ok)
			}
		})
	}
	if r.m.AvailableWeapons.Len() != 2 || len(picked) != 2 {
		t.Fatalf("available=%d picked=%v", r.m.AvailableWeapons.Len(), picked)
	}
	if i := r.m.AvailableWeapons.IndexFunc(func(d *weapon.Definition) bool { return d == pistol }); i != 1 {
		t.Errorf("pistol index = %d, want 1", i)
	}

	r.m.SelectWeapon.Try(rifle)
	if r.m.DropWeapon.Try(shotgun) {
		t.Error("dropping an unheld weapon must fail")
	}
	if !r.m.DropWeapon.Try(rifle) {
		t.Fatal("dropping a held weapon should succeed")
	}
	if r.m.CurrentWeapon.Get() != nil {
		t.Error("dropping the current weapon holsters it")
	}
	if len(wh.Weapons()) != 1 || inv.Has(rifle) {
		t.Error("dropped weapon should leave both inventory and handler")
	}
	if len(dropped) != 1 || dropped[0] != "rifle" {
		t.Errorf("dropped = %v, want [rifle]", dropped)
	}

	if !r.m.PickupWeapon.Try(weapon.AmmoTuple{Weapon: shotgun, Ammo: 4}) {
		t.Error("freed slot should accept a new weapon")
	}
}

func TestInventoryAmmo(t *testing.T) {
	inv := NewInventory(2)
	r := newRig(t, nil, inv)
	rifle := rifleDef()

	if n, err := r.m.GetWeaponAmmo.Invoke(rifle); err != nil || n != 0 {
		t.Errorf("unknown weapon ammo = (%d, %v), want 0", n, err)
	}
	r.m.SetWeaponAmmo.Fire(rifle, 50)
	if inv.Has(rifle) {
		t.Error("setting ammo must not add a weapon")
	}

	r.m.PickupWeapon.Try(weapon.AmmoTuple{Weapon: rifle, Ammo: 30})
	r.m.SetWeaponAmmo.Fire(rifle, 12)
	if got := r.m.GetWeaponAmmo.MustInvoke(rifle); got != 12 {
		t.Errorf("ammo = %d, want 12", got)
	}
}
