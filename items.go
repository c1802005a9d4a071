package capture

import (
	"strings"

	"github.com/google/uuid"
)

// ITEMTYPECAPTURE is the Type of an item holding a captured creature
const ITEMTYPECAPTURE = "Capture Egg"

// CaptureItem is a spawn item carrying a captured creature's trait record as lore
type CaptureItem struct {
	ID          string   `json:""`
	Type        string   `json:""`
	Kind        Kind     `json:""`
	DisplayName string   `json:""`
	Lore        []string `json:""`
	Amount      int      `json:""`
}

// ItemStore keeps capture items between the capture and the hatch
type ItemStore interface {
	Save(item *CaptureItem) error
	Load(id string) (*CaptureItem, error)
	Delete(id string) error
	Close() error
}

// NewCaptureItem extracts a creature into a fresh single capture item. The item
// is named after the kind, with the creature's custom name spliced in after
// the separator: "Sheep: Dolly".
func NewCaptureItem(creature Creature) (*CaptureItem, error) {
	record, err := Extract(creature)
	if err != nil {
		return nil, err
	}

	kind := creature.Kind()
	name := kind.DisplayName()
	if custom := creature.CustomName(); custom != "" {
		name += Separator + custom
	}

	return &CaptureItem{
		ID:          uuid.New().String(),
		Type:        ITEMTYPECAPTURE,
		Kind:        kind,
		DisplayName: name,
		Lore:        record.Strings(),
		Amount:      1,
	}, nil
}

// SplitCustomName returns the text after the first separator of an item's
// display name. The text before it (the kind name) is discarded.
func SplitCustomName(displayName string) (string, bool) {
	_, custom, found := strings.Cut(displayName, Separator)
	if !found || custom == "" {
		return "", false
	}
	return custom, true
}

// IsCapture reports whether the item carries a trait record
func (item *CaptureItem) IsCapture() bool {
	return item != nil && IsTraitLore(item.Lore)
}

// Record parses the item's lore
func (item *CaptureItem) Record() (Record, error) {
	if !item.IsCapture() {
		return nil, ErrNotCaptureItem
	}
	return ParseRecord(item.Lore)
}

// ApplyItem writes a capture item's record onto a freshly spawned creature and,
// once that succeeded, gives it the custom name from the item's display name.
func ApplyItem(item *CaptureItem, creature Creature) error {
	if item == nil {
		return &InvalidInputError{What: "item"}
	}

	record, err := item.Record()
	if err != nil {
		return err
	}

	if err := ApplyRecord(record, creature); err != nil {
		return err
	}

	if name, ok := SplitCustomName(item.DisplayName); ok {
		creature.SetCustomName(name)
	}

	return nil
}
