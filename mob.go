package capture

import (
	"sort"
	"sync"

	"github.com/google/uuid"
)

// MobData is a JSON-serializable set of every attribute a creature can carry.
// Which of them matter is decided by CreatureType.
type MobData struct {
	ID            string       `json:""`
	CreatureType  Kind         `json:""`
	HP            float64      `json:""`
	MaxHP         float64      `json:""`
	MoveSpeed     float64      `json:""`
	Name          string       `json:",omitempty"`
	AgeTicks      int          `json:""`
	Wool          DyeColor     `json:""`
	Saddle        bool         `json:""`
	Coat          RabbitType   `json:""`
	Job           Profession   `json:""`
	Wealth        int          `json:""`
	Trades        []TradeOffer `json:",omitempty"`
	OwnerID       uuid.UUID    `json:""`
	Jump          float64      `json:""`
	Barding       HorseArmor   `json:""`
	HorseCoat     HorseColor   `json:""`
	Markings      HorseStyle   `json:""`
	Chest         bool         `json:""`
	LlamaCoat     LlamaColor   `json:""`
	LlamaStrength int          `json:""`
	Carpet        *ItemStack   `json:",omitempty"`
	Hostile       bool         `json:""`
	Collar        DyeColor     `json:""`
	Cat           CatType      `json:""`
	Resting       bool         `json:""`
	SlimeSize     int          `json:""`
	Charged       bool         `json:""`
	Young         bool         `json:""`
	Grudge        int          `json:""`
	Casting       Spell        `json:""`
	BuiltByPlayer bool         `json:""`
	Pumpkinless   bool         `json:""`
}

// Mob is an in-memory creature handle that satisfies every capability
// interface. Hosts without their own entity model can spawn these.
type Mob struct {
	MobData
}

// NewMob makes a freshly spawned creature of the given kind with stock attributes
func NewMob(kind Kind) *Mob {
	return &Mob{MobData: MobData{
		ID:            uuid.New().String(),
		CreatureType:  kind,
		HP:            20,
		MaxHP:         20,
		MoveSpeed:     0.25,
		Jump:          0.7,
		LlamaStrength: 1,
		Collar:        DyeRed,
		SlimeSize:     1,
	}}
}

// Kind is the creature's kind
func (m *Mob) Kind() Kind { return m.CreatureType }

func (m *Mob) Health() float64 { return m.HP }
func (m *Mob) SetHealth(hp float64) { m.HP = hp }
func (m *Mob) MaxHealth() float64 { return m.MaxHP }
func (m *Mob) SetMaxHealth(hp float64) { m.MaxHP = hp }
func (m *Mob) Speed() float64 { return m.MoveSpeed }
func (m *Mob) SetSpeed(speed float64) { m.MoveSpeed = speed }
func (m *Mob) CustomName() string { return m.Name }
func (m *Mob) SetCustomName(n string) { m.Name = n }

func (m *Mob) Age() int { return m.AgeTicks }
func (m *Mob) SetAge(age int) { m.AgeTicks = age }

func (m *Mob) WoolColor() DyeColor { return m.Wool }
func (m *Mob) SetWoolColor(c DyeColor) { m.Wool = c }

func (m *Mob) Saddled() bool { return m.Saddle }
func (m *Mob) SetSaddled(on bool) { m.Saddle = on }

func (m *Mob) RabbitType() RabbitType { return m.Coat }
func (m *Mob) SetRabbitType(t RabbitType) { m.Coat = t }

func (m *Mob) Profession() Profession { return m.Job }
func (m *Mob) SetProfession(p Profession) { m.Job = p }
func (m *Mob) Riches() int { return m.Wealth }
func (m *Mob) SetRiches(r int) { m.Wealth = r }

// Offers returns a copy of the merchant's trades
func (m *Mob) Offers() []TradeOffer {
	return append([]TradeOffer{}, m.Trades...)
}

func (m *Mob) SetOffers(offers []TradeOffer) {
	m.Trades = append([]TradeOffer{}, offers...)
}

func (m *Mob) Owner() uuid.UUID { return m.OwnerID }
func (m *Mob) SetOwner(owner uuid.UUID) { m.OwnerID = owner }
func (m *Mob) JumpStrength() float64 { return m.Jump }
func (m *Mob) SetJumpStrength(j float64) { m.Jump = j }

func (m *Mob) HorseArmor() HorseArmor { return m.Barding }
func (m *Mob) SetHorseArmor(a HorseArmor) { m.Barding = a }
func (m *Mob) HorseColor() HorseColor { return m.HorseCoat }
func (m *Mob) SetHorseColor(c HorseColor) { m.HorseCoat = c }
func (m *Mob) HorseStyle() HorseStyle { return m.Markings }
func (m *Mob) SetHorseStyle(s HorseStyle) { m.Markings = s }

func (m *Mob) CarryingChest() bool { return m.Chest }
func (m *Mob) SetCarryingChest(on bool) { m.Chest = on }
func (m *Mob) LlamaColor() LlamaColor { return m.LlamaCoat }
func (m *Mob) SetLlamaColor(c LlamaColor) { m.LlamaCoat = c }
func (m *Mob) Strength() int { return m.LlamaStrength }
func (m *Mob) SetStrength(s int) { m.LlamaStrength = s }
func (m *Mob) Decor() *ItemStack { return m.Carpet }
func (m *Mob) SetDecor(decor *ItemStack) { m.Carpet = decor }

func (m *Mob) Angry() bool { return m.Hostile }
func (m *Mob) SetAngry(angry bool) { m.Hostile = angry }
func (m *Mob) CollarColor() DyeColor { return m.Collar }
func (m *Mob) SetCollarColor(c DyeColor) { m.Collar = c }
func (m *Mob) CatType() CatType { return m.Cat }
func (m *Mob) SetCatType(t CatType) { m.Cat = t }
func (m *Mob) Sitting() bool { return m.Resting }
func (m *Mob) SetSitting(sitting bool) { m.Resting = sitting }
func (m *Mob) Size() int { return m.SlimeSize }
func (m *Mob) SetSize(size int) { m.SlimeSize = size }
func (m *Mob) Powered() bool { return m.Charged }
func (m *Mob) SetPowered(powered bool) { m.Charged = powered }
func (m *Mob) Baby() bool { return m.Young }
func (m *Mob) SetBaby(baby bool) { m.Young = baby }
func (m *Mob) Anger() int { return m.Grudge }
func (m *Mob) SetAnger(anger int) { m.Grudge = anger }
func (m *Mob) CurrentSpell() Spell { return m.Casting }
func (m *Mob) SetCurrentSpell(s Spell) { m.Casting = s }
func (m *Mob) PlayerCreated() bool { return m.BuiltByPlayer }
func (m *Mob) SetPlayerCreated(b bool) { m.BuiltByPlayer = b }
func (m *Mob) Derp() bool { return m.Pumpkinless }
func (m *Mob) SetDerp(derp bool) { m.Pumpkinless = derp }

// Pen is an in-memory world of mobs: it spawns and despawns them for the
// capture service when the host has no entity model of its own.
type Pen struct {
	mu   sync.RWMutex
	mobs map[string]*Mob
}

// NewPen makes an empty pen
func NewPen() *Pen {
	return &Pen{mobs: make(map[string]*Mob)}
}

// Spawn creates a fresh mob of the kind
func (p *Pen) Spawn(kind Kind) (Creature, error) {
	if !kind.Known() {
		return nil, &InvalidInputError{What: "known kind " + string(kind)}
	}

	mob := NewMob(kind)

	p.mu.Lock()
	defer p.mu.Unlock()
	p.mobs[mob.ID] = mob

	return mob, nil
}

// Despawn removes a mob from the pen; other creature handles are ignored
func (p *Pen) Despawn(creature Creature) {
	mob, ok := creature.(*Mob)
	if !ok || mob == nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.mobs, mob.ID)
}

// Add puts an existing mob in the pen
func (p *Pen) Add(mob *Mob) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.mobs[mob.ID] = mob
}

// Get looks a mob up by id
func (p *Pen) Get(id string) (*Mob, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	mob, ok := p.mobs[id]
	return mob, ok
}

// List returns the mobs ordered by id
func (p *Pen) List() []*Mob {
	p.mu.RLock()
	defer p.mu.RUnlock()

	out := make([]*Mob, 0, len(p.mobs))
	for _, mob := range p.mobs {
		out = append(out, mob)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
