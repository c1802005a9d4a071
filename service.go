package capture

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
)

// Spawner creates freshly spawned creatures for hatching
type Spawner interface {
	Spawn(kind Kind) (Creature, error)
}

// Despawner takes creatures out of the world
type Despawner interface {
	Despawn(creature Creature)
}

// World is the host side the capture service spawns into and captures from
type World interface {
	Spawner
	Despawner
}

// Service connects the host's projectile callbacks to the extractor, the item
// store and the applicator. It owns the session register; Close tears it down.
type Service struct {
	config   Config
	register *Register
	store    ItemStore
	world    World
}

// NewService builds a service with an empty register
func NewService(config Config, store ItemStore, world World) *Service {
	return &Service{
		config:   config,
		register: NewRegister(),
		store:    store,
		world:    world,
	}
}

// Register exposes the session register
func (s *Service) Register() *Register {
	return s.register
}

// ProjectileHit is called when a projectile damages a creature. The host always
// delivers this before ProjectileThrown for the same projectile. Non-creature
// targets are ignored.
func (s *Service) ProjectileHit(projectileID uuid.UUID, target Creature, projectile interface{}, tick uint64) error {
	if isNil(target) {
		return nil
	}

	_, err := s.register.AddEntry(projectileID, target, projectile, tick)
	return err
}

// ProjectileThrown resolves the capture once the thrower is known: the target
// is extracted into a stored capture item and removed from the world. A tamed
// creature can only be captured by its owner. The session is discarded whether
// or not the capture succeeds.
func (s *Service) ProjectileThrown(projectileID, thrower uuid.UUID) (*CaptureItem, error) {
	session, err := s.register.SetThrower(projectileID, thrower)
	if errors.Is(err, ErrSessionNotFound) {
		return nil, err
	}
	defer s.register.RemoveEntry(Session{ProjectileID: projectileID})

	if err != nil {
		return nil, err
	}

	if owner := ownerOf(session.Target); owner != uuid.Nil && owner != thrower {
		log.Printf("%s tried to capture a %s owned by %s", thrower, session.Target.Kind(), owner)
		return nil, ErrNotOwner
	}

	item, err := NewCaptureItem(session.Target)
	if err != nil {
		log.Printf("Capture by %s failed: %v", thrower, err)
		return nil, err
	}

	if err := s.store.Save(item); err != nil {
		log.Printf("Can't save capture item %s: %v", item.ID, err)
		return nil, err
	}

	s.world.Despawn(session.Target)
	log.Printf("%s captured a %s into %s", thrower, item.Kind, item.ID)

	return item, nil
}

// Hatch spawns the creature held by a stored capture item and uses up one of
// the item. A creature whose record fails to apply, or whose item can't be
// used up in the store, is despawned again.
func (s *Service) Hatch(itemID string) (Creature, error) {
	item, err := s.store.Load(itemID)
	if err != nil {
		return nil, err
	}

	if !item.IsCapture() {
		return nil, ErrNotCaptureItem
	}

	creature, err := s.world.Spawn(item.Kind)
	if err != nil {
		return nil, err
	}

	if err := ApplyItem(item, creature); err != nil {
		log.Printf("Can't hatch %s from %s: %v", item.Kind, item.ID, err)
		s.world.Despawn(creature)
		return nil, err
	}

	item.Amount--
	if item.Amount > 0 {
		err = s.store.Save(item)
	} else {
		err = s.store.Delete(item.ID)
	}

	if err != nil {
		log.Printf("Can't use up %s, taking the %s back: %v", item.ID, item.Kind, err)
		s.world.Despawn(creature)
		return nil, err
	}

	return creature, nil
}

// ownerOf is the owner of a tamed creature, or uuid.Nil
func ownerOf(creature Creature) uuid.UUID {
	if !creature.Kind().Hosts(GroupTameable) {
		return uuid.Nil
	}
	tameable, ok := creature.(Tameable)
	if !ok {
		return uuid.Nil
	}
	return tameable.Owner()
}

// Tick drops sessions whose throw confirmation never came
func (s *Service) Tick(now uint64) int {
	dropped := s.register.Sweep(now, s.config.SessionTTL)
	if dropped > 0 {
		log.Printf("Dropped %d stale capture sessions", dropped)
	}
	return dropped
}

// RunSweeper sweeps the register on every server tick it receives until the
// context is done or the tick channel closes.
func (s *Service) RunSweeper(ctx context.Context, ticks <-chan uint64) {
	done := ctx.Done()

	for {
		select {
		case now, ok := <-ticks:
			if !ok {
				return
			}
			s.Tick(now)
		case <-done:
			return
		}
	}
}

// Close clears the register and closes the item store
func (s *Service) Close() error {
	s.register.Close()
	return s.store.Close()
}
