package capture

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGroupsFollowHierarchy(t *testing.T) {
	assert.Equal(t, []Group{GroupLiving, GroupAgeable, GroupTameable, GroupRideable, GroupChested, GroupLlama}, Groups(KindLlama))
	assert.Equal(t, []Group{GroupLiving, GroupAgeable, GroupTameable, GroupRideable, GroupHorse}, Groups(KindHorse))
	assert.Equal(t, []Group{GroupLiving, GroupAgeable, GroupTameable, GroupWolf}, Groups(KindWolf))
	assert.Equal(t, []Group{GroupLiving, GroupZombie, GroupZombieVillager}, Groups(KindZombieVillager))
	assert.Equal(t, []Group{GroupLiving, GroupAgeable}, Groups(KindCow))
	assert.Equal(t, []Group{GroupLiving}, Groups(KindSkeleton))
	assert.Nil(t, Groups(Kind("ghast")))
}

func TestEveryKindStartsWithLiving(t *testing.T) {
	assert.Len(t, Kinds, 30)
	for _, kind := range Kinds {
		groups := Groups(kind)
		if assert.NotEmpty(t, groups, kind) {
			assert.Equal(t, GroupLiving, groups[0], kind)
		}
	}
}

func TestKindHosts(t *testing.T) {
	assert.True(t, KindMule.Hosts(GroupRideable))
	assert.True(t, KindMule.Hosts(GroupChested))
	assert.False(t, KindMule.Hosts(GroupLlama))
	assert.False(t, KindWolf.Hosts(GroupRideable))
	assert.False(t, KindCreeper.Hosts(GroupAgeable))
}

func TestKindNames(t *testing.T) {
	assert.Equal(t, "Zombie Villager", KindZombieVillager.DisplayName())
	assert.Equal(t, "Sheep", KindSheep.DisplayName())

	kind, ok := KindByName("Zombie Villager")
	assert.True(t, ok)
	assert.Equal(t, KindZombieVillager, kind)

	kind, ok = KindByName("iron_golem")
	assert.True(t, ok)
	assert.Equal(t, KindIronGolem, kind)

	_, ok = KindByName("Dragon")
	assert.False(t, ok)
}

func TestEnumTables(t *testing.T) {
	assert.Equal(t, "LIGHT_BLUE", DyeLightBlue.String())
	assert.Equal(t, "THE_KILLER_BUNNY", RabbitKiller.String())
	assert.Equal(t, "None", ArmorNone.String())
	assert.Equal(t, "?", DyeColor(200).String())

	style, ok := ParseHorseStyle("WHITE_DOTS")
	assert.True(t, ok)
	assert.Equal(t, StyleWhiteDots, style)

	_, ok = ParseDyeColor("Bogus")
	assert.False(t, ok)
	_, ok = ParseDyeColor("white")
	assert.False(t, ok)
}
