package pricing

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Largest subscription that can be priced. At these bounds the total stays
// far below the int64 range of minor units.
const (
	MAX_ASSET_COUNT     = 1_000_000
	MAX_DURATION_MONTHS = 1200
)

// Tolerance is the largest difference allowed between a server computed
// price and a price echoed back by a caller.
var Tolerance = decimal.New(1, -2)

type DiscountTier struct {
	MinMonths int
	Percent   int64
}

// Schedule describes how a subscription is priced. Discounts must be ordered
// by MinMonths, largest first.
type Schedule struct {
	TierAssetCount int
	TierPrice      *money.Money
	PerAssetPrice  *money.Money
	MinimumCharge  *money.Money
	Discounts      []DiscountTier
}

// Default is $50/month for exactly five assets, $10 per asset per month
// otherwise, with 10% off from six months and 20% off from twelve.
var Default = Schedule{
	TierAssetCount: 5,
	TierPrice:      money.New(5000, money.USD),
	PerAssetPrice:  money.New(1000, money.USD),
	MinimumCharge:  money.New(50, money.USD),
	Discounts: []DiscountTier{
		{MinMonths: 12, Percent: 20},
		{MinMonths: 6, Percent: 10},
	},
}

func Compute(assetCount, durationMonths int) decimal.Decimal {
	return Default.Compute(assetCount, durationMonths)
}

func (s Schedule) Compute(assetCount, durationMonths int) decimal.Decimal {
	return ToDecimal(s.ComputeMoney(assetCount, durationMonths))
}

// InRange reports whether a subscription of the given shape can be priced.
func InRange(assetCount, durationMonths int) bool {
	return assetCount > 0 && assetCount <= MAX_ASSET_COUNT &&
		durationMonths > 0 && durationMonths <= MAX_DURATION_MONTHS
}

// ComputeMoney expects InRange to hold for its arguments.
func (s Schedule) ComputeMoney(assetCount, durationMonths int) *money.Money {
	total := s.monthlyBase(assetCount).Multiply(int64(durationMonths))

	keep := decimal.NewFromInt(100 - s.DiscountPercent(durationMonths))
	discounted := decimal.NewFromInt(total.Amount()).
		Mul(keep).
		Div(decimal.NewFromInt(100)).
		Round(0).
		IntPart()

	price := money.New(discounted, total.Currency().Code)
	if below, err := price.LessThan(s.MinimumCharge); err == nil && below {
		return s.MinimumCharge
	}
	return price
}

// DiscountPercent returns the whole-number percentage taken off for a
// subscription of the given length.
func (s Schedule) DiscountPercent(durationMonths int) int64 {
	for _, d := range s.Discounts {
		if durationMonths >= d.MinMonths {
			return d.Percent
		}
	}
	return 0
}

// The tier is a single breakpoint: only exactly TierAssetCount assets get the
// flat price, fewer assets are still charged per asset.
func (s Schedule) monthlyBase(assetCount int) *money.Money {
	if assetCount == s.TierAssetCount {
		return s.TierPrice
	}
	return s.PerAssetPrice.Multiply(int64(assetCount))
}

func ToDecimal(m *money.Money) decimal.Decimal {
	return decimal.New(m.Amount(), -int32(m.Currency().Fraction))
}

// MinorUnits converts a major unit amount to the smallest currency unit,
// rounding half away from zero.
func MinorUnits(price decimal.Decimal) int64 {
	return price.Shift(2).Round(0).IntPart()
}

func Matches(expected, supplied decimal.Decimal) bool {
	return expected.Sub(supplied).Abs().LessThanOrEqual(Tolerance)
}

func Parse(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(s)
}
