package capability

import "github.com/lixenwraith/fps-model/entity"

// InstantDespawnDeathHandler destroys the entity as soon as it dies
type InstantDespawnDeathHandler struct{}

func (InstantDespawnDeathHandler) RegisterBindings(e *entity.Entity) error {
	e.Model().Death.OnStart.Subscribe(e.Destroy)
	return nil
}
