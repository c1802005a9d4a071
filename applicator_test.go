package capture

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTripEveryKind(t *testing.T) {
	for _, kind := range Kinds {
		t.Run(string(kind), func(t *testing.T) {
			original, err := Extract(dressed(kind))
			require.NoError(t, err)

			hatched := NewMob(kind)
			require.NoError(t, ApplyRecord(original, hatched))

			again, err := Extract(hatched)
			require.NoError(t, err)
			assert.Equal(t, original, again)
		})
	}
}

func TestApplyLore(t *testing.T) {
	sheep := NewMob(KindSheep)
	err := Apply([]string{
		"Health: 4.0/8.0",
		"Speed: 0.23",
		"Age (Ticks): 100",
		"Color: BLACK",
	}, sheep)
	require.NoError(t, err)

	assert.Equal(t, 4.0, sheep.HP)
	assert.Equal(t, 8.0, sheep.MaxHP)
	assert.Equal(t, 0.23, sheep.MoveSpeed)
	assert.Equal(t, 100, sheep.AgeTicks)
	assert.Equal(t, DyeBlack, sheep.Wool)
}

func TestApplySentinels(t *testing.T) {
	record, err := Extract(NewMob(KindWolf))
	require.NoError(t, err)

	wolf := NewMob(KindWolf)
	wolf.OwnerID = testOwner
	wolf.Collar = DyeBlue
	require.NoError(t, ApplyRecord(record, wolf))

	assert.Equal(t, uuid.Nil, wolf.OwnerID)
	assert.Equal(t, DyeBlue, wolf.Collar)

	record, err = Extract(NewMob(KindLlama))
	require.NoError(t, err)

	llama := NewMob(KindLlama)
	llama.Carpet = &ItemStack{Material: "BLUE_CARPET", Amount: 1}
	require.NoError(t, ApplyRecord(record, llama))
	assert.Nil(t, llama.Carpet)
}

func TestApplyBadValueLeavesCreatureAlone(t *testing.T) {
	sheep := NewMob(KindSheep)
	before := sheep.MobData

	err := Apply([]string{
		"Health: 4.0/8.0",
		"Speed: 0.5",
		"Age (Ticks): 100",
		"Color: Bogus",
	}, sheep)
	require.Error(t, err)
	assert.True(t, IsFormatError(err))
	assert.False(t, IsKindMismatch(err))

	var fe *FormatError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, 3, fe.Index)
	assert.Equal(t, "Color: Bogus", fe.Line)

	assert.Equal(t, before, sheep.MobData)
}

func TestApplyHealthAboveMax(t *testing.T) {
	cow := NewMob(KindCow)
	err := Apply([]string{"Health: 30.0/20.0", "Speed: 0.2", "Age (Ticks): 0"}, cow)
	assert.True(t, IsFormatError(err))
	assert.Equal(t, 20.0, cow.HP)
}

func TestApplyWrongKind(t *testing.T) {
	horse, err := Extract(dressed(KindHorse))
	require.NoError(t, err)

	wolf := NewMob(KindWolf)
	before := wolf.MobData
	err = ApplyRecord(horse, wolf)
	require.Error(t, err)

	var ke *KindMismatchError
	require.ErrorAs(t, err, &ke)
	assert.Equal(t, KindWolf, ke.Kind)
	assert.Equal(t, GroupRideable, ke.Group)
	assert.Equal(t, LabelJumpPower, ke.Label)
	assert.Equal(t, before, wolf.MobData)

	llama, err := Extract(dressed(KindLlama))
	require.NoError(t, err)

	err = ApplyRecord(llama, NewMob(KindDonkey))
	require.ErrorAs(t, err, &ke)
	assert.Equal(t, GroupLlama, ke.Group)

	sheep, err := Extract(dressed(KindSheep))
	require.NoError(t, err)
	assert.True(t, IsKindMismatch(ApplyRecord(sheep, NewMob(KindPig))))
}

func TestApplyTruncatedRecord(t *testing.T) {
	record, err := Extract(dressed(KindHorse))
	require.NoError(t, err)

	err = ApplyRecord(record[:len(record)-1], NewMob(KindHorse))
	assert.True(t, IsFormatError(err))

	var fe *FormatError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, -1, fe.Index)
}

func TestApplyTrailingLine(t *testing.T) {
	record, err := Extract(dressed(KindCow))
	require.NoError(t, err)

	record = append(record, Line{Label: "Mood", Value: "Grumpy"})
	err = ApplyRecord(record, NewMob(KindCow))
	assert.True(t, IsFormatError(err))
}

func TestApplyLegacyBooleans(t *testing.T) {
	pig := NewMob(KindPig)
	err := Apply([]string{"Health: 10.0/10.0", "Speed: 0.25", "Age (Ticks): 0", "Saddle: true"}, pig)
	require.NoError(t, err)
	assert.True(t, pig.Saddle)
}

func TestApplyOffers(t *testing.T) {
	for _, n := range []int{0, 1, 5} {
		villager := dressed(KindVillager)
		villager.Trades = nil
		for i := 0; i < n; i++ {
			villager.Trades = append(villager.Trades, TradeOffer{
				Ingredients: []ItemStack{{Material: "WHEAT", Amount: 20 + i}},
				Result:      ItemStack{Material: "EMERALD", Amount: 1},
				Uses:        i,
				MaxUses:     7,
			})
		}

		record, err := Extract(villager)
		require.NoError(t, err)
		assert.Len(t, record, 5+n)

		hatched := NewMob(KindVillager)
		require.NoError(t, ApplyRecord(record, hatched))
		assert.Len(t, hatched.Offers(), n)
		if n > 0 {
			assert.Equal(t, villager.Trades, hatched.Trades)
		}
	}
}

func TestApplyOfferGap(t *testing.T) {
	lore := []string{
		"Health: 20.0/20.0",
		"Speed: 0.5",
		"Age (Ticks): 0",
		"Profession: FARMER",
		"Riches: 0",
		"Offer 1: 1 WHEAT -> 1 EMERALD (0/7 uses)",
		"Offer 3: 1 WHEAT -> 1 EMERALD (0/7 uses)",
	}
	err := Apply(lore, NewMob(KindVillager))
	require.Error(t, err)

	var fe *FormatError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, 6, fe.Index)
}

func TestApplyNil(t *testing.T) {
	assert.True(t, IsInvalidInput(ApplyRecord(Record{}, nil)))
	assert.True(t, IsInvalidInput(Apply(nil, nil)))
}

func TestApplyTamedWolfNeedsCollar(t *testing.T) {
	wolf := NewMob(KindWolf)
	before := wolf.MobData

	err := Apply([]string{
		"Health: 8.0/8.0",
		"Speed: 0.3",
		"Age (Ticks): 0",
		"Owner: " + testOwner.String(),
		"Angry: No",
		"Collar: None",
	}, wolf)
	require.Error(t, err)
	assert.True(t, IsFormatError(err))
	assert.False(t, IsKindMismatch(err))
	assert.Equal(t, before, wolf.MobData)
}
