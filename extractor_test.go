package capture

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testOwner = uuid.MustParse("6f1d2c3e-4b5a-4c7d-8e9f-0a1b2c3d4e5f")

// dressed is a mob of the kind with every attribute moved off its default
func dressed(kind Kind) *Mob {
	mob := NewMob(kind)
	mob.HP = 13.5
	mob.MaxHP = 26
	mob.MoveSpeed = 0.3125
	mob.AgeTicks = -12000
	mob.Wool = DyeLightBlue
	mob.Saddle = true
	mob.Coat = RabbitSaltAndPepper
	mob.Job = ProfessionLibrarian
	mob.Wealth = 7
	mob.Trades = []TradeOffer{
		{Ingredients: []ItemStack{{Material: "PAPER", Amount: 24}}, Result: ItemStack{Material: "EMERALD", Amount: 1}, Uses: 3, MaxUses: 7},
		{Ingredients: []ItemStack{{Material: "EMERALD", Amount: 5}, {Material: "BOOK", Amount: 1}}, Result: ItemStack{Material: "ENCHANTED_BOOK", Amount: 1}, MaxUses: 5},
	}
	mob.OwnerID = testOwner
	mob.Jump = 0.8625
	mob.Barding = ArmorDiamond
	mob.HorseCoat = HorseDarkBrown
	mob.Markings = StyleBlackDots
	mob.Chest = true
	mob.LlamaCoat = LlamaGray
	mob.LlamaStrength = 4
	mob.Carpet = &ItemStack{Material: "RED_CARPET", Amount: 1}
	mob.Hostile = true
	mob.Collar = DyeMagenta
	mob.Cat = CatSiamese
	mob.Resting = true
	mob.SlimeSize = 4
	mob.Charged = true
	mob.Young = true
	mob.Grudge = 400
	mob.Casting = SpellFangs
	mob.BuiltByPlayer = true
	mob.Pumpkinless = true
	return mob
}

func TestExtractBaseLinesComeFirst(t *testing.T) {
	for _, kind := range Kinds {
		record, err := Extract(dressed(kind))
		require.NoError(t, err, kind)
		require.True(t, len(record) >= 2, kind)
		assert.Equal(t, LabelHealth, record[0].Label, kind)
		assert.Equal(t, LabelSpeed, record[1].Label, kind)
		assert.True(t, IsTraitLore(record.Strings()), kind)
	}
}

func TestExtractSheep(t *testing.T) {
	record, err := Extract(dressed(KindSheep))
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Health: 13.5/26.0",
		"Speed: 0.3125",
		"Age (Ticks): -12000",
		"Color: LIGHT_BLUE",
	}, record.Strings())
}

func TestExtractLlama(t *testing.T) {
	record, err := Extract(dressed(KindLlama))
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Health: 13.5/26.0",
		"Speed: 0.3125",
		"Age (Ticks): -12000",
		"Owner: " + testOwner.String(),
		"Jump Power: 0.8625",
		"Carrying Chest: Yes",
		"Color: GRAY",
		"Strength: 4",
		"Decor: 1 RED_CARPET",
	}, record.Strings())
}

func TestExtractVillagerOffers(t *testing.T) {
	record, err := Extract(dressed(KindVillager))
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Health: 13.5/26.0",
		"Speed: 0.3125",
		"Age (Ticks): -12000",
		"Profession: LIBRARIAN",
		"Riches: 7",
		"Offer 1: 24 PAPER -> 1 EMERALD (3/7 uses)",
		"Offer 2: 5 EMERALD + 1 BOOK -> 1 ENCHANTED_BOOK (0/5 uses)",
	}, record.Strings())
}

func TestExtractSentinels(t *testing.T) {
	wolf := NewMob(KindWolf)
	record, err := Extract(wolf)
	require.NoError(t, err)
	assert.Contains(t, record.Strings(), "Owner: None")
	assert.Contains(t, record.Strings(), "Collar: None")

	horse := NewMob(KindHorse)
	record, err = Extract(horse)
	require.NoError(t, err)
	assert.Contains(t, record.Strings(), "Armor: None")

	llama := NewMob(KindLlama)
	record, err = Extract(llama)
	require.NoError(t, err)
	assert.Contains(t, record.Strings(), "Decor: None")
}

func TestExtractTamedWolfWearsCollar(t *testing.T) {
	wolf := NewMob(KindWolf)
	wolf.OwnerID = testOwner
	record, err := Extract(wolf)
	require.NoError(t, err)
	assert.Equal(t, "Collar: RED", record[len(record)-1].String())
}

func TestExtractSkipsOtherBranches(t *testing.T) {
	// A zombie villager carries a profession but none of the villager's trades
	record, err := Extract(dressed(KindZombieVillager))
	require.NoError(t, err)
	assert.Equal(t, []string{LabelHealth, LabelSpeed, LabelBaby, LabelProfession}, record.Labels())

	record, err = Extract(dressed(KindSpider))
	require.NoError(t, err)
	assert.Equal(t, []string{LabelHealth, LabelSpeed}, record.Labels())
}

func TestExtractUnknownKindIsLivingOnly(t *testing.T) {
	record, err := Extract(dressed(Kind("ghast")))
	require.NoError(t, err)
	assert.Equal(t, []string{LabelHealth, LabelSpeed}, record.Labels())
}

func TestExtractNil(t *testing.T) {
	_, err := Extract(nil)
	assert.True(t, IsInvalidInput(err))

	var mob *Mob
	_, err = Extract(mob)
	assert.True(t, IsInvalidInput(err))
}

// plainCreature only has the living group
type plainCreature struct {
	kind   Kind
	health float64
	name   string
}

func (p *plainCreature) Kind() Kind { return p.kind }
func (p *plainCreature) Health() float64 { return p.health }
func (p *plainCreature) SetHealth(h float64) { p.health = h }
func (p *plainCreature) MaxHealth() float64 { return 20 }
func (p *plainCreature) SetMaxHealth(float64) {}
func (p *plainCreature) Speed() float64 { return 0.25 }
func (p *plainCreature) SetSpeed(float64) {}
func (p *plainCreature) CustomName() string { return p.name }
func (p *plainCreature) SetCustomName(name string) { p.name = name }

func TestExtractHandleMissingCapability(t *testing.T) {
	_, err := Extract(&plainCreature{kind: KindSheep, health: 20})
	require.Error(t, err)

	var ke *KindMismatchError
	require.ErrorAs(t, err, &ke)
	assert.Equal(t, GroupAgeable, ke.Group)
}

func TestExtractRejectsValuesThatWontReadBack(t *testing.T) {
	sheep := NewMob(KindSheep)
	sheep.Wool = DyeColor(42)
	_, err := Extract(sheep)
	assert.True(t, IsInvalidInput(err))

	_, err = NewCaptureItem(sheep)
	assert.True(t, IsInvalidInput(err))

	llama := NewMob(KindLlama)
	llama.LlamaStrength = 9
	_, err = Extract(llama)
	assert.True(t, IsInvalidInput(err))

	cow := NewMob(KindCow)
	cow.HP = 30
	_, err = Extract(cow)
	assert.True(t, IsInvalidInput(err))

	villager := NewMob(KindVillager)
	villager.Trades = []TradeOffer{{Result: ItemStack{Material: "EMERALD", Amount: 1}, MaxUses: 1}}
	_, err = Extract(villager)
	assert.True(t, IsInvalidInput(err))
}
