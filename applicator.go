package capture

import (
	"errors"
	"fmt"
)

// decoder walks a record in the same group order the extractor wrote it,
// collecting writes without touching the creature.
type decoder struct {
	creature Creature
	record   Record
	pos      int
	writes   []func()
}

func (d *decoder) take(label string) (Line, error) {
	if d.pos >= len(d.record) {
		return Line{}, &FormatError{Index: -1, Reason: fmt.Sprintf("record ends before %q", label)}
	}

	l := d.record[d.pos]
	if l.Label != label {
		return l, formatErr(d.pos, l, "expected label %q", label)
	}

	d.pos++
	return l, nil
}

func (d *decoder) decodeGroup(group Group) error {
	codec := codecs[group]

	if !codec.hosts(d.creature) {
		return &KindMismatchError{Kind: d.creature.Kind(), Group: group}
	}

	for _, field := range codec.fields {
		l, err := d.take(field.label)
		if err != nil {
			return err
		}

		write, err := field.parse(l.Value, d.creature, d.record[:d.pos-1])
		if err != nil {
			return formatErr(d.pos-1, l, "%v", err)
		}
		d.writes = append(d.writes, write)
	}

	if codec.offers {
		offers, consumed, err := parseOffers(d.record, d.pos)
		if err != nil {
			return err
		}
		d.pos += consumed

		merchant := d.creature.(Merchant)
		d.writes = append(d.writes, func() { merchant.SetOffers(offers) })
	}

	return nil
}

// ApplyRecord writes a trait record onto a freshly spawned creature. Every line
// is decoded and validated before the first write, so a failed apply leaves the
// creature untouched.
func ApplyRecord(record Record, creature Creature) error {
	if isNil(creature) {
		return &InvalidInputError{What: "creature"}
	}

	d := &decoder{creature: creature, record: record}
	kind := creature.Kind()

	for _, group := range groupsOf(kind) {
		if err := d.decodeGroup(group); err != nil {
			return classify(record, kind, err)
		}
	}

	if d.pos < len(record) {
		l := record[d.pos]
		return classify(record, kind, formatErr(d.pos, l, "unexpected line for %s", kind))
	}

	for _, write := range d.writes {
		write()
	}

	return nil
}

// Apply parses item lore and writes it onto a freshly spawned creature.
func Apply(lore []string, creature Creature) error {
	if isNil(creature) {
		return &InvalidInputError{What: "creature"}
	}

	record, err := ParseRecord(lore)
	if err != nil {
		return err
	}

	return ApplyRecord(record, creature)
}

// classify turns a positional format error into a kind mismatch when the
// record as a whole was written for a kind carrying groups the target lacks.
func classify(record Record, kind Kind, err error) error {
	var fe *FormatError
	if !errors.As(err, &fe) {
		return err
	}

	claimed, ok := claimedGroups(record)
	if !ok {
		return err
	}

	for _, group := range claimed {
		if !kind.Hosts(group) {
			label := ""
			if fields := codecs[group].fields; len(fields) > 0 {
				label = fields[0].label
			}
			return &KindMismatchError{Kind: kind, Group: group, Label: label}
		}
	}

	return err
}

// claimedGroups finds the group path whose label layout the record follows.
func claimedGroups(record Record) ([]Group, bool) {
	for _, kind := range Kinds {
		groups := kindGroups[kind]
		if followsLayout(record, groups) {
			return groups, true
		}
	}
	return nil, false
}

func followsLayout(record Record, groups []Group) bool {
	pos := 0

	for _, group := range groups {
		codec := codecs[group]

		for _, field := range codec.fields {
			if pos >= len(record) || record[pos].Label != field.label {
				return false
			}
			pos++
		}

		if codec.offers {
			for pos < len(record) && isOfferLabel(record[pos].Label) {
				pos++
			}
		}
	}

	return pos == len(record)
}
