package capture

import (
	"fmt"
	"strconv"
	"strings"
)

// OfferLabelPrefix starts every indexed trade offer label ("Offer 1", "Offer 2", ...)
const OfferLabelPrefix = "Offer "

const (
	ingredientSeparator = " + "
	resultSeparator     = " -> "
)

// TradeOffer is one villager trade: one or two ingredients for a result
type TradeOffer struct {
	Ingredients []ItemStack `json:""`
	Result      ItemStack   `json:""`
	Uses        int         `json:""`
	MaxUses     int         `json:""`
}

// String renders "1 WHEAT + 2 SUGAR -> 1 EMERALD (0/7 uses)"
func (offer TradeOffer) String() string {
	ingredients := make([]string, 0, len(offer.Ingredients))
	for _, ingredient := range offer.Ingredients {
		ingredients = append(ingredients, ingredient.String())
	}

	return fmt.Sprintf("%s%s%s (%d/%d uses)",
		strings.Join(ingredients, ingredientSeparator), resultSeparator, offer.Result, offer.Uses, offer.MaxUses)
}

// ParseTradeOffer reads the format written by TradeOffer.String
func ParseTradeOffer(s string) (TradeOffer, error) {
	var offer TradeOffer

	left, right, found := strings.Cut(s, resultSeparator)
	if !found {
		return offer, fmt.Errorf("trade offer %q: missing %q", s, strings.TrimSpace(resultSeparator))
	}

	ingredientTexts := strings.Split(left, ingredientSeparator)
	if len(ingredientTexts) > 2 {
		return offer, fmt.Errorf("trade offer %q: at most two ingredients", s)
	}

	for _, text := range ingredientTexts {
		ingredient, err := ParseItemStack(text)
		if err != nil {
			return offer, err
		}
		offer.Ingredients = append(offer.Ingredients, ingredient)
	}

	resultText, usesText, found := strings.Cut(right, " (")
	if !found || !strings.HasSuffix(usesText, " uses)") {
		return offer, fmt.Errorf("trade offer %q: missing use counter", s)
	}

	result, err := ParseItemStack(resultText)
	if err != nil {
		return offer, err
	}
	offer.Result = result

	usesText = strings.TrimSuffix(usesText, " uses)")
	usedText, maxText, found := strings.Cut(usesText, "/")
	if !found {
		return offer, fmt.Errorf("trade offer %q: want uses/max", s)
	}

	offer.Uses, err = strconv.Atoi(usedText)
	if err != nil || offer.Uses < 0 {
		return offer, fmt.Errorf("trade offer %q: bad use count %q", s, usedText)
	}
	offer.MaxUses, err = strconv.Atoi(maxText)
	if err != nil || offer.MaxUses < offer.Uses {
		return offer, fmt.Errorf("trade offer %q: bad max uses %q", s, maxText)
	}

	return offer, nil
}

func offerLabel(index int) string {
	return OfferLabelPrefix + strconv.Itoa(index)
}

// offerLines writes one self-describing line per offer, 1-indexed, in the
// merchant's own order.
func offerLines(offers []TradeOffer) []Line {
	lines := make([]Line, 0, len(offers))
	for i, offer := range offers {
		lines = append(lines, line(offerLabel(i+1), offer.String()))
	}
	return lines
}

// parseOffers consumes the contiguous "Offer 1", "Offer 2", ... run starting at
// record[start]. There is no count field: the run ends at the first line whose
// label is not the next offer label, or at the end of the record. It returns the
// offers and how many lines were consumed.
func parseOffers(record Record, start int) ([]TradeOffer, int, error) {
	offers := make([]TradeOffer, 0)
	pos := start

	for pos < len(record) && record[pos].Label == offerLabel(len(offers)+1) {
		offer, err := ParseTradeOffer(record[pos].Value)
		if err != nil {
			return nil, 0, &FormatError{Index: pos, Line: record[pos].String(), Reason: err.Error()}
		}
		offers = append(offers, offer)
		pos++
	}

	return offers, pos - start, nil
}

func isOfferLabel(label string) bool {
	if !strings.HasPrefix(label, OfferLabelPrefix) {
		return false
	}
	index, err := strconv.Atoi(strings.TrimPrefix(label, OfferLabelPrefix))
	return err == nil && index > 0
}
