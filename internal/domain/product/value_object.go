package product

import "github.com/shopspring/decimal"

// Price is a strictly positive monetary amount.
type Price struct {
	value decimal.Decimal
}

func (p Price) Value() decimal.Decimal {
	return p.value
}

func NewPrice(value decimal.Decimal) (Price, error) {
	if !value.IsPositive() {
		return Price{}, ErrInvalidPrice
	}
	return Price{value: value}, nil
}
