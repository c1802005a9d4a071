package capture

import (
	"math"
	"strconv"
	"strings"
)

// Separator splits a trait line into its label and value, and an item display
// name into its kind and custom name.
const Separator = ": "

// NoneValue is the sentinel written for an attribute that is legitimately absent
const NoneValue = "None"

// Labels written by the capability groups
const (
	LabelHealth        = "Health"
	LabelSpeed         = "Speed"
	LabelAge           = "Age (Ticks)"
	LabelColor         = "Color"
	LabelSaddle        = "Saddle"
	LabelType          = "Type"
	LabelProfession    = "Profession"
	LabelRiches        = "Riches"
	LabelOwner         = "Owner"
	LabelJumpPower     = "Jump Power"
	LabelArmor         = "Armor"
	LabelStyle         = "Style"
	LabelCarryingChest = "Carrying Chest"
	LabelStrength      = "Strength"
	LabelDecor         = "Decor"
	LabelAngry         = "Angry"
	LabelCollar        = "Collar"
	LabelSitting       = "Sitting"
	LabelSize          = "Size"
	LabelCharged       = "Charged"
	LabelBaby          = "Baby"
	LabelAnger         = "Anger Level"
	LabelSpell         = "Active Spell"
	LabelPlayerCreated = "Player Created"
	LabelDerp          = "Derp"
)

// Line is one "Label: Value" attribute of a trait record
type Line struct {
	Label string
	Value string
}

func (l Line) String() string {
	return l.Label + Separator + l.Value
}

// Record is the ordered attribute lines describing one captured creature.
// Order matters: the applicator consumes lines in the order the extractor wrote them.
type Record []Line

// Strings renders the record as item lore
func (r Record) Strings() []string {
	out := make([]string, 0, len(r))
	for _, line := range r {
		out = append(out, line.String())
	}
	return out
}

// Labels lists the record's labels in order
func (r Record) Labels() []string {
	out := make([]string, 0, len(r))
	for _, line := range r {
		out = append(out, line.Label)
	}
	return out
}

// Value returns the value of the first line with the label
func (r Record) Value(label string) (string, bool) {
	for _, line := range r {
		if line.Label == label {
			return line.Value, true
		}
	}
	return "", false
}

// ParseLine splits "Label: Value" on the first separator
func ParseLine(s string) (Line, bool) {
	label, value, found := strings.Cut(s, Separator)
	if !found || label == "" {
		return Line{}, false
	}
	return Line{Label: label, Value: value}, true
}

// ParseRecord splits item lore back into attribute lines
func ParseRecord(lore []string) (Record, error) {
	record := make(Record, 0, len(lore))
	for i, s := range lore {
		line, ok := ParseLine(s)
		if !ok {
			return nil, &FormatError{Index: i, Line: s, Reason: "not a \"Label: Value\" line"}
		}
		record = append(record, line)
	}
	return record, nil
}

// IsTraitLore reports whether item lore looks like a trait record: the first
// line must start with "Health: ".
func IsTraitLore(lore []string) bool {
	return len(lore) > 0 && strings.HasPrefix(lore[0], LabelHealth+Separator)
}

func line(label, value string) Line {
	return Line{Label: label, Value: value}
}

// formatFloat writes the shortest decimal that parses back to the same value,
// always with a fractional part ("20.0", "0.25").
func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func parseFloat(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func formatInt(v int) string {
	return strconv.Itoa(v)
}

func parseInt(s string) (int, bool) {
	v, err := strconv.Atoi(s)
	return v, err == nil
}

func formatBool(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

// parseBool also takes the true/false spelling older items used for saddles and chests
func parseBool(s string) (bool, bool) {
	switch s {
	case "Yes", "true":
		return true, true
	case "No", "false":
		return false, true
	}
	return false, false
}
