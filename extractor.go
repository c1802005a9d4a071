package capture

import "reflect"

// Extract builds the trait record for a live creature. The living group always
// comes first; the rest follow the kind's branch of the hierarchy, so groups
// outside that branch are never consulted. Kinds outside the hierarchy are
// recorded as plain living creatures. Every value is read back as it is
// written, and one that would not apply again fails with InvalidInputError.
func Extract(creature Creature) (Record, error) {
	if isNil(creature) {
		return nil, &InvalidInputError{What: "creature"}
	}

	record := make(Record, 0, 8)

	for _, group := range groupsOf(creature.Kind()) {
		codec := codecs[group]

		if !codec.hosts(creature) {
			return nil, &KindMismatchError{Kind: creature.Kind(), Group: group}
		}

		for _, field := range codec.fields {
			value := field.format(creature)
			if _, err := field.parse(value, creature, record); err != nil {
				return nil, &InvalidInputError{What: "creature " + field.label, Reason: err.Error()}
			}
			record = append(record, line(field.label, value))
		}

		if codec.offers {
			offers := offerLines(creature.(Merchant).Offers())
			for _, offer := range offers {
				if _, err := ParseTradeOffer(offer.Value); err != nil {
					return nil, &InvalidInputError{What: "creature " + offer.Label, Reason: err.Error()}
				}
			}
			record = append(record, offers...)
		}
	}

	return record, nil
}

func groupsOf(kind Kind) []Group {
	if groups, ok := kindGroups[kind]; ok {
		return groups
	}
	return []Group{GroupLiving}
}

// isNil catches typed nil pointers hidden inside a Creature interface
func isNil(creature Creature) bool {
	if creature == nil {
		return true
	}
	value := reflect.ValueOf(creature)
	return value.Kind() == reflect.Ptr && value.IsNil()
}
