package capture

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// fieldCodec reads and writes one labelled attribute. format and parse are only
// called once the group's capability check has passed for the creature. prior
// holds the lines of the record that come before this one.
type fieldCodec struct {
	label  string
	format func(c Creature) string
	parse  func(value string, c Creature, prior Record) (func(), error)
}

// groupCodec is the fixed run of fields a capability group contributes,
// optionally followed by the variable-length trade offer tail.
type groupCodec struct {
	hosts  func(c Creature) bool
	fields []fieldCodec
	offers bool
}

var codecs map[Group]groupCodec

func capable[T any]() func(Creature) bool {
	return func(c Creature) bool {
		_, ok := c.(T)
		return ok
	}
}

func boolField[T any](label string, get func(T) bool, set func(T, bool)) fieldCodec {
	return fieldCodec{
		label:  label,
		format: func(c Creature) string { return formatBool(get(c.(T))) },
		parse: func(value string, c Creature, prior Record) (func(), error) {
			v, ok := parseBool(value)
			if !ok {
				return nil, fmt.Errorf("want Yes or No, got %q", value)
			}
			t := c.(T)
			return func() { set(t, v) }, nil
		},
	}
}

func intField[T any](label string, min, max int, get func(T) int, set func(T, int)) fieldCodec {
	return fieldCodec{
		label:  label,
		format: func(c Creature) string { return formatInt(get(c.(T))) },
		parse: func(value string, c Creature, prior Record) (func(), error) {
			v, ok := parseInt(value)
			if !ok {
				return nil, fmt.Errorf("want an integer, got %q", value)
			}
			if v < min || v > max {
				return nil, fmt.Errorf("%d out of range %d-%d", v, min, max)
			}
			t := c.(T)
			return func() { set(t, v) }, nil
		},
	}
}

func floatField[T any](label string, get func(T) float64, set func(T, float64)) fieldCodec {
	return fieldCodec{
		label:  label,
		format: func(c Creature) string { return formatFloat(get(c.(T))) },
		parse: func(value string, c Creature, prior Record) (func(), error) {
			v, ok := parseFloat(value)
			if !ok || v < 0 {
				return nil, fmt.Errorf("want a non-negative number, got %q", value)
			}
			t := c.(T)
			return func() { set(t, v) }, nil
		},
	}
}

func enumField[T any, E fmt.Stringer](label string, parseEnum func(string) (E, bool), get func(T) E, set func(T, E)) fieldCodec {
	return fieldCodec{
		label:  label,
		format: func(c Creature) string { return get(c.(T)).String() },
		parse: func(value string, c Creature, prior Record) (func(), error) {
			v, ok := parseEnum(value)
			if !ok {
				return nil, fmt.Errorf("unknown %s %q", strings.ToLower(label), value)
			}
			t := c.(T)
			return func() { set(t, v) }, nil
		},
	}
}

var healthField = fieldCodec{
	label: LabelHealth,
	format: func(c Creature) string {
		return formatFloat(c.Health()) + "/" + formatFloat(c.MaxHealth())
	},
	parse: func(value string, c Creature, prior Record) (func(), error) {
		currentText, maxText, found := strings.Cut(value, "/")
		if !found {
			return nil, fmt.Errorf("want current/max, got %q", value)
		}
		current, ok := parseFloat(currentText)
		if !ok {
			return nil, fmt.Errorf("bad current health %q", currentText)
		}
		max, ok := parseFloat(maxText)
		if !ok || max <= 0 {
			return nil, fmt.Errorf("bad max health %q", maxText)
		}
		if current < 0 || current > max {
			return nil, fmt.Errorf("health %s outside 0-%s", currentText, maxText)
		}
		return func() {
			c.SetMaxHealth(max)
			c.SetHealth(current)
		}, nil
	},
}

var ownerField = fieldCodec{
	label: LabelOwner,
	format: func(c Creature) string {
		owner := c.(Tameable).Owner()
		if owner == uuid.Nil {
			return NoneValue
		}
		return owner.String()
	},
	parse: func(value string, c Creature, prior Record) (func(), error) {
		t := c.(Tameable)
		if value == NoneValue {
			return func() { t.SetOwner(uuid.Nil) }, nil
		}
		owner, err := uuid.Parse(value)
		if err != nil {
			return nil, fmt.Errorf("bad owner id %q", value)
		}
		return func() { t.SetOwner(owner) }, nil
	},
}

var decorField = fieldCodec{
	label: LabelDecor,
	format: func(c Creature) string {
		decor := c.(LlamaTraits).Decor()
		if decor == nil {
			return NoneValue
		}
		return decor.String()
	},
	parse: func(value string, c Creature, prior Record) (func(), error) {
		t := c.(LlamaTraits)
		if value == NoneValue {
			return func() { t.SetDecor(nil) }, nil
		}
		decor, err := ParseItemStack(value)
		if err != nil {
			return nil, err
		}
		return func() { t.SetDecor(&decor) }, nil
	},
}

// Only tamed wolves wear a collar; an untamed wolf writes the sentinel and
// reading the sentinel leaves the collar alone. A record with an owner must
// name a collar.
var collarField = fieldCodec{
	label: LabelCollar,
	format: func(c Creature) string {
		if c.(Tameable).Owner() == uuid.Nil {
			return NoneValue
		}
		return c.(WolfTraits).CollarColor().String()
	},
	parse: func(value string, c Creature, prior Record) (func(), error) {
		if value == NoneValue {
			if owner, ok := prior.Value(LabelOwner); ok && owner != NoneValue {
				return nil, fmt.Errorf("tamed wolf without a collar")
			}
			return func() {}, nil
		}
		color, ok := ParseDyeColor(value)
		if !ok {
			return nil, fmt.Errorf("unknown collar %q", value)
		}
		t := c.(WolfTraits)
		return func() { t.SetCollarColor(color) }, nil
	},
}

func init() {
	codecs = map[Group]groupCodec{
		GroupLiving: {
			hosts: func(Creature) bool { return true },
			fields: []fieldCodec{
				healthField,
				floatField(LabelSpeed, Creature.Speed, Creature.SetSpeed),
			},
		},
		GroupAgeable: {
			hosts: capable[Ageable](),
			fields: []fieldCodec{
				intField(LabelAge, -1<<31, 1<<31-1, Ageable.Age, Ageable.SetAge),
			},
		},
		GroupSheep: {
			hosts: capable[Woolly](),
			fields: []fieldCodec{
				enumField(LabelColor, ParseDyeColor, Woolly.WoolColor, Woolly.SetWoolColor),
			},
		},
		GroupPig: {
			hosts: capable[Saddleable](),
			fields: []fieldCodec{
				boolField(LabelSaddle, Saddleable.Saddled, Saddleable.SetSaddled),
			},
		},
		GroupRabbit: {
			hosts: capable[RabbitTraits](),
			fields: []fieldCodec{
				enumField(LabelType, ParseRabbitType, RabbitTraits.RabbitType, RabbitTraits.SetRabbitType),
			},
		},
		GroupVillager: {
			hosts: capable[Merchant](),
			fields: []fieldCodec{
				enumField(LabelProfession, ParseProfession, Merchant.Profession, Merchant.SetProfession),
				intField(LabelRiches, 0, 1<<31-1, Merchant.Riches, Merchant.SetRiches),
			},
			offers: true,
		},
		GroupTameable: {
			hosts:  capable[Tameable](),
			fields: []fieldCodec{ownerField},
		},
		GroupRideable: {
			hosts: capable[Rideable](),
			fields: []fieldCodec{
				floatField(LabelJumpPower, Rideable.JumpStrength, Rideable.SetJumpStrength),
			},
		},
		GroupHorse: {
			hosts: capable[HorseTraits](),
			fields: []fieldCodec{
				enumField(LabelArmor, ParseHorseArmor, HorseTraits.HorseArmor, HorseTraits.SetHorseArmor),
				boolField(LabelSaddle, HorseTraits.Saddled, HorseTraits.SetSaddled),
				enumField(LabelColor, ParseHorseColor, HorseTraits.HorseColor, HorseTraits.SetHorseColor),
				enumField(LabelStyle, ParseHorseStyle, HorseTraits.HorseStyle, HorseTraits.SetHorseStyle),
			},
		},
		GroupChested: {
			hosts: capable[Chested](),
			fields: []fieldCodec{
				boolField(LabelCarryingChest, Chested.CarryingChest, Chested.SetCarryingChest),
			},
		},
		GroupLlama: {
			hosts: capable[LlamaTraits](),
			fields: []fieldCodec{
				enumField(LabelColor, ParseLlamaColor, LlamaTraits.LlamaColor, LlamaTraits.SetLlamaColor),
				intField(LabelStrength, 1, 5, LlamaTraits.Strength, LlamaTraits.SetStrength),
				decorField,
			},
		},
		GroupWolf: {
			hosts: func(c Creature) bool {
				return capable[WolfTraits]()(c) && capable[Tameable]()(c)
			},
			fields: []fieldCodec{
				boolField(LabelAngry, WolfTraits.Angry, WolfTraits.SetAngry),
				collarField,
			},
		},
		GroupOcelot: {
			hosts: capable[OcelotTraits](),
			fields: []fieldCodec{
				enumField(LabelType, ParseCatType, OcelotTraits.CatType, OcelotTraits.SetCatType),
				boolField(LabelSitting, OcelotTraits.Sitting, OcelotTraits.SetSitting),
			},
		},
		GroupSlime: {
			hosts: capable[Sized](),
			fields: []fieldCodec{
				intField(LabelSize, 1, 1<<31-1, Sized.Size, Sized.SetSize),
			},
		},
		GroupCreeper: {
			hosts: capable[Chargeable](),
			fields: []fieldCodec{
				boolField(LabelCharged, Chargeable.Powered, Chargeable.SetPowered),
			},
		},
		GroupZombie: {
			hosts: capable[ZombieTraits](),
			fields: []fieldCodec{
				boolField(LabelBaby, ZombieTraits.Baby, ZombieTraits.SetBaby),
			},
		},
		GroupPigZombie: {
			hosts: capable[Angerable](),
			fields: []fieldCodec{
				intField(LabelAnger, 0, 1<<31-1, Angerable.Anger, Angerable.SetAnger),
			},
		},
		GroupZombieVillager: {
			hosts: capable[Professional](),
			fields: []fieldCodec{
				enumField(LabelProfession, ParseProfession, Professional.Profession, Professional.SetProfession),
			},
		},
		GroupEvoker: {
			hosts: capable[Spellcaster](),
			fields: []fieldCodec{
				enumField(LabelSpell, ParseSpell, Spellcaster.CurrentSpell, Spellcaster.SetCurrentSpell),
			},
		},
		GroupIronGolem: {
			hosts: capable[Constructed](),
			fields: []fieldCodec{
				boolField(LabelPlayerCreated, Constructed.PlayerCreated, Constructed.SetPlayerCreated),
			},
		},
		GroupSnowman: {
			hosts: capable[Derpable](),
			fields: []fieldCodec{
				boolField(LabelDerp, Derpable.Derp, Derpable.SetDerp),
			},
		},
	}
}
