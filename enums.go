package capture

// Every enumeration written into a trait record has an explicit text table.
// The tables are append-only: the index is the in-memory value and the text
// is what ends up on an item.

// DyeColor is a sheep wool or wolf collar color
type DyeColor byte

// Dye colors
const (
	DyeWhite DyeColor = iota
	DyeOrange
	DyeMagenta
	DyeLightBlue
	DyeYellow
	DyeLime
	DyePink
	DyeGray
	DyeSilver
	DyeCyan
	DyePurple
	DyeBlue
	DyeBrown
	DyeGreen
	DyeRed
	DyeBlack
)

var dyeColorNames = []string{
	"WHITE", "ORANGE", "MAGENTA", "LIGHT_BLUE", "YELLOW", "LIME", "PINK", "GRAY",
	"SILVER", "CYAN", "PURPLE", "BLUE", "BROWN", "GREEN", "RED", "BLACK",
}

func (c DyeColor) String() string { return enumName(dyeColorNames, int(c)) }

// ParseDyeColor maps record text back to a DyeColor
func ParseDyeColor(s string) (DyeColor, bool) {
	i, ok := enumIndex(dyeColorNames, s)
	return DyeColor(i), ok
}

// RabbitType is a rabbit's coat
type RabbitType byte

// Rabbit coats
const (
	RabbitBrown RabbitType = iota
	RabbitWhite
	RabbitBlack
	RabbitBlackAndWhite
	RabbitGold
	RabbitSaltAndPepper
	RabbitKiller
)

var rabbitTypeNames = []string{
	"BROWN", "WHITE", "BLACK", "BLACK_AND_WHITE", "GOLD", "SALT_AND_PEPPER", "THE_KILLER_BUNNY",
}

func (t RabbitType) String() string { return enumName(rabbitTypeNames, int(t)) }

// ParseRabbitType maps record text back to a RabbitType
func ParseRabbitType(s string) (RabbitType, bool) {
	i, ok := enumIndex(rabbitTypeNames, s)
	return RabbitType(i), ok
}

// Profession is a villager's (or zombie villager's) trade
type Profession byte

// Professions
const (
	ProfessionFarmer Profession = iota
	ProfessionLibrarian
	ProfessionPriest
	ProfessionBlacksmith
	ProfessionButcher
	ProfessionNitwit
)

var professionNames = []string{
	"FARMER", "LIBRARIAN", "PRIEST", "BLACKSMITH", "BUTCHER", "NITWIT",
}

func (p Profession) String() string { return enumName(professionNames, int(p)) }

// ParseProfession maps record text back to a Profession
func ParseProfession(s string) (Profession, bool) {
	i, ok := enumIndex(professionNames, s)
	return Profession(i), ok
}

// HorseColor is a horse's base coat
type HorseColor byte

// Horse coats
const (
	HorseWhite HorseColor = iota
	HorseCreamy
	HorseChestnut
	HorseBrown
	HorseBlack
	HorseGray
	HorseDarkBrown
)

var horseColorNames = []string{
	"WHITE", "CREAMY", "CHESTNUT", "BROWN", "BLACK", "GRAY", "DARK_BROWN",
}

func (c HorseColor) String() string { return enumName(horseColorNames, int(c)) }

// ParseHorseColor maps record text back to a HorseColor
func ParseHorseColor(s string) (HorseColor, bool) {
	i, ok := enumIndex(horseColorNames, s)
	return HorseColor(i), ok
}

// HorseStyle is the marking pattern over a horse's coat
type HorseStyle byte

// Horse markings
const (
	StyleNone HorseStyle = iota
	StyleWhite
	StyleWhitefield
	StyleWhiteDots
	StyleBlackDots
)

var horseStyleNames = []string{"NONE", "WHITE", "WHITEFIELD", "WHITE_DOTS", "BLACK_DOTS"}

func (s HorseStyle) String() string { return enumName(horseStyleNames, int(s)) }

// ParseHorseStyle maps record text back to a HorseStyle
func ParseHorseStyle(s string) (HorseStyle, bool) {
	i, ok := enumIndex(horseStyleNames, s)
	return HorseStyle(i), ok
}

// HorseArmor is the barding worn by a horse
type HorseArmor byte

// Barding
const (
	ArmorNone HorseArmor = iota
	ArmorIron
	ArmorGold
	ArmorDiamond
)

var horseArmorNames = []string{NoneValue, "Iron", "Gold", "Diamond"}

func (a HorseArmor) String() string { return enumName(horseArmorNames, int(a)) }

// ParseHorseArmor maps record text back to a HorseArmor
func ParseHorseArmor(s string) (HorseArmor, bool) {
	i, ok := enumIndex(horseArmorNames, s)
	return HorseArmor(i), ok
}

// LlamaColor is a llama's coat
type LlamaColor byte

// Llama coats
const (
	LlamaCreamy LlamaColor = iota
	LlamaWhite
	LlamaBrown
	LlamaGray
)

var llamaColorNames = []string{"CREAMY", "WHITE", "BROWN", "GRAY"}

func (c LlamaColor) String() string { return enumName(llamaColorNames, int(c)) }

// ParseLlamaColor maps record text back to a LlamaColor
func ParseLlamaColor(s string) (LlamaColor, bool) {
	i, ok := enumIndex(llamaColorNames, s)
	return LlamaColor(i), ok
}

// CatType is an ocelot's coat
type CatType byte

// Ocelot coats
const (
	CatWildOcelot CatType = iota
	CatBlack
	CatRed
	CatSiamese
)

var catTypeNames = []string{"WILD_OCELOT", "BLACK_CAT", "RED_CAT", "SIAMESE_CAT"}

func (t CatType) String() string { return enumName(catTypeNames, int(t)) }

// ParseCatType maps record text back to a CatType
func ParseCatType(s string) (CatType, bool) {
	i, ok := enumIndex(catTypeNames, s)
	return CatType(i), ok
}

// Spell is what an evoker is currently casting
type Spell byte

// Evoker spells
const (
	SpellNone Spell = iota
	SpellSummonVex
	SpellFangs
	SpellWololo
	SpellDisappear
	SpellBlindness
)

var spellNames = []string{"NONE", "SUMMON_VEX", "FANGS", "WOLOLO", "DISAPPEAR", "BLINDNESS"}

func (s Spell) String() string { return enumName(spellNames, int(s)) }

// ParseSpell maps record text back to a Spell
func ParseSpell(s string) (Spell, bool) {
	i, ok := enumIndex(spellNames, s)
	return Spell(i), ok
}

func enumName(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return "?"
	}
	return names[i]
}

func enumIndex(names []string, s string) (int, bool) {
	for i, name := range names {
		if name == s {
			return i, true
		}
	}
	return 0, false
}
