package booking

// DiscountPolicy adjusts a base price for a discount code. The exact
// price-adjustment rule is deployment configuration, not engine logic, so
// it is injected rather than hardcoded.
type DiscountPolicy interface {
	Apply(code string, base int) int
}

// NoDiscount leaves every price unchanged.
type NoDiscount struct{}

func (NoDiscount) Apply(_ string, base int) int {
	return base
}

// PercentTable maps discount codes to a percent off the base price.
// Unknown or empty codes leave the price unchanged.
type PercentTable map[string]int

func (t PercentTable) Apply(code string, base int) int {
	percent, ok := t[code]
	if !ok {
		return base
	}

	return base - base*percent/100
}
