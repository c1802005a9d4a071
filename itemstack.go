package capture

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// MaxStackAmount is the largest stack a single item slot holds
const MaxStackAmount = 64

var materialPattern = regexp.MustCompile(`^[A-Z][A-Z0-9_]*$`)

// ItemStack is an amount of one material, as carried in a trade or worn as decor
type ItemStack struct {
	Material string `json:""`
	Amount   int    `json:""`
}

func (stack ItemStack) String() string {
	return fmt.Sprintf("%d %s", stack.Amount, stack.Material)
}

// ParseItemStack reads "<amount> <MATERIAL>"
func ParseItemStack(s string) (ItemStack, error) {
	amountText, material, found := strings.Cut(strings.TrimSpace(s), " ")
	if !found {
		return ItemStack{}, fmt.Errorf("item stack %q: want \"<amount> <MATERIAL>\"", s)
	}

	amount, err := strconv.Atoi(amountText)
	if err != nil || amount < 1 || amount > MaxStackAmount {
		return ItemStack{}, fmt.Errorf("item stack %q: amount must be 1-%d", s, MaxStackAmount)
	}

	if !materialPattern.MatchString(material) {
		return ItemStack{}, fmt.Errorf("item stack %q: bad material %q", s, material)
	}

	return ItemStack{Material: material, Amount: amount}, nil
}
