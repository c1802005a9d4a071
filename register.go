package capture

import (
	"sync"

	"github.com/google/uuid"
)

// Session links a thrown projectile to the creature it hit and, once the throw
// is confirmed, to the player who threw it.
type Session struct {
	ProjectileID uuid.UUID
	Target       Creature
	Projectile   interface{}
	Thrower      uuid.UUID
	CreatedTick  uint64
}

// HasThrower reports whether the throw has been confirmed yet
func (s Session) HasThrower() bool {
	return s.Thrower != uuid.Nil
}

// Register holds in-flight capture sessions keyed by projectile. The host
// delivers the hit before the throw confirmation for the same projectile, so
// a session starts without a thrower and gains one exactly once.
type Register struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*Session
}

// NewRegister makes an empty register
func NewRegister() *Register {
	return &Register{sessions: make(map[uuid.UUID]*Session)}
}

// AddEntry opens a session for a projectile that just hit a creature
func (r *Register) AddEntry(projectileID uuid.UUID, target Creature, projectile interface{}, tick uint64) (Session, error) {
	if isNil(target) {
		return Session{}, &InvalidInputError{What: "target creature"}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[projectileID]; ok {
		return Session{}, ErrSessionExists
	}

	session := &Session{
		ProjectileID: projectileID,
		Target:       target,
		Projectile:   projectile,
		CreatedTick:  tick,
	}
	r.sessions[projectileID] = session

	return *session, nil
}

// GetEntry returns a copy of the projectile's session
func (r *Register) GetEntry(projectileID uuid.UUID) (Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[projectileID]
	if !ok {
		return Session{}, false
	}
	return *session, true
}

// SetThrower records who threw the projectile. Lookup and update happen under
// one lock so the thrower can only ever be set once.
func (r *Register) SetThrower(projectileID, thrower uuid.UUID) (Session, error) {
	if thrower == uuid.Nil {
		return Session{}, &InvalidInputError{What: "thrower"}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[projectileID]
	if !ok {
		return Session{}, ErrSessionNotFound
	}
	if session.HasThrower() {
		return *session, ErrThrowerAlreadySet
	}

	session.Thrower = thrower
	return *session, nil
}

// RemoveEntry discards a resolved session
func (r *Register) RemoveEntry(session Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, session.ProjectileID)
}

// Sweep drops sessions older than ttl ticks: hits whose throw confirmation
// never arrived. It returns how many were dropped.
func (r *Register) Sweep(now, ttl uint64) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	dropped := 0
	for id, session := range r.sessions {
		if now > session.CreatedTick && now-session.CreatedTick > ttl {
			delete(r.sessions, id)
			dropped++
		}
	}
	return dropped
}

// Len is the number of live sessions
func (r *Register) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Close forgets every session
func (r *Register) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions = make(map[uuid.UUID]*Session)
}
