package capture

import (
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Kind is the concrete type of a creature
type Kind string

// Creature kinds
const (
	KindCow            Kind = "cow"
	KindChicken        Kind = "chicken"
	KindMushroomCow    Kind = "mushroom_cow"
	KindPolarBear      Kind = "polar_bear"
	KindSheep          Kind = "sheep"
	KindPig            Kind = "pig"
	KindRabbit         Kind = "rabbit"
	KindVillager       Kind = "villager"
	KindHorse          Kind = "horse"
	KindSkeletonHorse  Kind = "skeleton_horse"
	KindZombieHorse    Kind = "zombie_horse"
	KindDonkey         Kind = "donkey"
	KindMule           Kind = "mule"
	KindLlama          Kind = "llama"
	KindWolf           Kind = "wolf"
	KindOcelot         Kind = "ocelot"
	KindSlime          Kind = "slime"
	KindMagmaCube      Kind = "magma_cube"
	KindCreeper        Kind = "creeper"
	KindZombie         Kind = "zombie"
	KindHusk           Kind = "husk"
	KindPigZombie      Kind = "pig_zombie"
	KindZombieVillager Kind = "zombie_villager"
	KindEvoker         Kind = "evoker"
	KindIronGolem      Kind = "iron_golem"
	KindSnowman        Kind = "snowman"
	KindSkeleton       Kind = "skeleton"
	KindSpider         Kind = "spider"
	KindWitch          Kind = "witch"
	KindEnderman       Kind = "enderman"
)

// Group is a capability group: a cluster of attributes shared by every kind
// that exhibits a given trait.
type Group byte

// Capability groups, in no particular order; traversal order comes from the hierarchy.
const (
	GroupLiving Group = iota
	GroupAgeable
	GroupSheep
	GroupPig
	GroupRabbit
	GroupVillager
	GroupTameable
	GroupRideable
	GroupHorse
	GroupChested
	GroupLlama
	GroupWolf
	GroupOcelot
	GroupSlime
	GroupCreeper
	GroupZombie
	GroupPigZombie
	GroupZombieVillager
	GroupEvoker
	GroupIronGolem
	GroupSnowman
)

var groupNames = []string{
	"living", "ageable", "sheep", "pig", "rabbit", "villager", "tameable", "rideable",
	"horse", "chested", "llama", "wolf", "ocelot", "slime", "creeper", "zombie",
	"pig_zombie", "zombie_villager", "evoker", "iron_golem", "snowman",
}

func (g Group) String() string { return enumName(groupNames, int(g)) }

// branch is one decision point of the kind hierarchy. Kinds listed on a branch
// stop there; children are only considered for creatures that matched the branch.
type branch struct {
	group    Group
	kinds    []Kind
	children []branch
}

// hierarchy is checked top-down: branches at the same level are mutually exclusive.
var hierarchy = []branch{
	{group: GroupAgeable, kinds: []Kind{KindCow, KindChicken, KindMushroomCow, KindPolarBear}, children: []branch{
		{group: GroupSheep, kinds: []Kind{KindSheep}},
		{group: GroupPig, kinds: []Kind{KindPig}},
		{group: GroupRabbit, kinds: []Kind{KindRabbit}},
		{group: GroupVillager, kinds: []Kind{KindVillager}},
		{group: GroupTameable, children: []branch{
			{group: GroupRideable, kinds: []Kind{KindSkeletonHorse, KindZombieHorse}, children: []branch{
				{group: GroupHorse, kinds: []Kind{KindHorse}},
				{group: GroupChested, kinds: []Kind{KindDonkey, KindMule}, children: []branch{
					{group: GroupLlama, kinds: []Kind{KindLlama}},
				}},
			}},
			{group: GroupWolf, kinds: []Kind{KindWolf}},
			{group: GroupOcelot, kinds: []Kind{KindOcelot}},
		}},
	}},
	{group: GroupSlime, kinds: []Kind{KindSlime, KindMagmaCube}},
	{group: GroupCreeper, kinds: []Kind{KindCreeper}},
	{group: GroupZombie, kinds: []Kind{KindZombie, KindHusk}, children: []branch{
		{group: GroupPigZombie, kinds: []Kind{KindPigZombie}},
		{group: GroupZombieVillager, kinds: []Kind{KindZombieVillager}},
	}},
	{group: GroupEvoker, kinds: []Kind{KindEvoker}},
	{group: GroupIronGolem, kinds: []Kind{KindIronGolem}},
	{group: GroupSnowman, kinds: []Kind{KindSnowman}},
}

// Kinds with nothing past the living group
var baseKinds = []Kind{KindSkeleton, KindSpider, KindWitch, KindEnderman}

// kindGroups maps every kind to the ordered groups it contributes, living first.
var kindGroups map[Kind][]Group

// Kinds lists every known kind in hierarchy order
var Kinds []Kind

func walkHierarchy(branches []branch, path []Group) {
	for _, b := range branches {
		groups := append(append([]Group{}, path...), b.group)
		for _, kind := range b.kinds {
			kindGroups[kind] = groups
			Kinds = append(Kinds, kind)
		}
		walkHierarchy(b.children, groups)
	}
}

// Groups returns the ordered capability groups a kind contributes to its trait
// record. Unknown kinds get nil.
func Groups(kind Kind) []Group {
	groups, ok := kindGroups[kind]
	if !ok {
		return nil
	}
	return append([]Group{}, groups...)
}

// Known reports whether the kind is part of the hierarchy
func (k Kind) Known() bool {
	_, ok := kindGroups[k]
	return ok
}

// Hosts reports whether creatures of this kind carry the capability group.
// Kinds outside the hierarchy only host the living group.
func (k Kind) Hosts(g Group) bool {
	for _, group := range groupsOf(k) {
		if group == g {
			return true
		}
	}
	return false
}

// DisplayName is the human name of a kind, e.g. "Zombie Villager"
func (k Kind) DisplayName() string {
	return cases.Title(language.English).String(strings.Replace(string(k), "_", " ", -1))
}

// KindByName resolves a kind id or display name ("zombie_villager", "Zombie Villager")
func KindByName(name string) (Kind, bool) {
	kind := Kind(strings.Replace(strings.ToLower(strings.TrimSpace(name)), " ", "_", -1))
	return kind, kind.Known()
}

// Creature is a live creature handle as seen through the living group. Every
// kind has health, movement speed and an optional custom name.
type Creature interface {
	Kind() Kind
	Health() float64
	SetHealth(float64)
	MaxHealth() float64
	SetMaxHealth(float64)
	Speed() float64
	SetSpeed(float64)
	CustomName() string
	SetCustomName(string)
}

// Ageable creatures grow up over time
type Ageable interface {
	Age() int
	SetAge(int)
}

// Woolly creatures carry a wool color
type Woolly interface {
	WoolColor() DyeColor
	SetWoolColor(DyeColor)
}

// Saddleable is shared by pigs and horses
type Saddleable interface {
	Saddled() bool
	SetSaddled(bool)
}

// RabbitTraits carries a rabbit's coat
type RabbitTraits interface {
	RabbitType() RabbitType
	SetRabbitType(RabbitType)
}

// Professional is shared by villagers and zombie villagers
type Professional interface {
	Profession() Profession
	SetProfession(Profession)
}

// Merchant is a villager that trades
type Merchant interface {
	Professional
	Riches() int
	SetRiches(int)
	Offers() []TradeOffer
	SetOffers([]TradeOffer)
}

// Tameable creatures may have an owner; uuid.Nil means untamed
type Tameable interface {
	Owner() uuid.UUID
	SetOwner(uuid.UUID)
}

// Rideable creatures are any horse-like mount
type Rideable interface {
	JumpStrength() float64
	SetJumpStrength(float64)
}

// HorseTraits is the coat and gear of a true horse
type HorseTraits interface {
	Saddleable
	HorseArmor() HorseArmor
	SetHorseArmor(HorseArmor)
	HorseColor() HorseColor
	SetHorseColor(HorseColor)
	HorseStyle() HorseStyle
	SetHorseStyle(HorseStyle)
}

// Chested creatures may carry a chest
type Chested interface {
	CarryingChest() bool
	SetCarryingChest(bool)
}

// LlamaTraits is a llama's coat, strength and carpet
type LlamaTraits interface {
	LlamaColor() LlamaColor
	SetLlamaColor(LlamaColor)
	Strength() int
	SetStrength(int)
	Decor() *ItemStack
	SetDecor(*ItemStack)
}

// WolfTraits is a wolf's temper and collar
type WolfTraits interface {
	Angry() bool
	SetAngry(bool)
	CollarColor() DyeColor
	SetCollarColor(DyeColor)
}

// OcelotTraits is an ocelot's coat and posture
type OcelotTraits interface {
	CatType() CatType
	SetCatType(CatType)
	Sitting() bool
	SetSitting(bool)
}

// Sized creatures split when killed
type Sized interface {
	Size() int
	SetSize(int)
}

// Chargeable is a creeper struck by lightning
type Chargeable interface {
	Powered() bool
	SetPowered(bool)
}

// ZombieTraits is shared by the whole zombie family
type ZombieTraits interface {
	Baby() bool
	SetBaby(bool)
}

// Angerable is a zombie pigman's grudge
type Angerable interface {
	Anger() int
	SetAnger(int)
}

// Spellcaster is an evoker
type Spellcaster interface {
	CurrentSpell() Spell
	SetCurrentSpell(Spell)
}

// Constructed is an iron golem, which may have been built by a player
type Constructed interface {
	PlayerCreated() bool
	SetPlayerCreated(bool)
}

// Derpable is a snowman that may have lost its pumpkin
type Derpable interface {
	Derp() bool
	SetDerp(bool)
}

func init() {
	kindGroups = make(map[Kind][]Group)
	Kinds = make([]Kind, 0)

	walkHierarchy(hierarchy, []Group{GroupLiving})

	for _, kind := range baseKinds {
		kindGroups[kind] = []Group{GroupLiving}
		Kinds = append(Kinds, kind)
	}
}
