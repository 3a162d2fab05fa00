package product

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewPrice(t *testing.T) {
	price, err := NewPrice(decimal.NewFromInt(100))

	assert.NoError(t, err)
	assert.True(t, decimal.NewFromInt(100).Equal(price.Value()))
}

func TestNewPrice_Invalid(t *testing.T) {
	_, err := NewPrice(decimal.NewFromInt(-1))
	assert.ErrorIs(t, err, ErrInvalidPrice)

	_, err = NewPrice(decimal.Zero)
	assert.ErrorIs(t, err, ErrInvalidPrice)
}

func TestNewPrice_SmallestValid(t *testing.T) {
	price, err := NewPrice(decimal.NewFromFloat(0.01))

	assert.NoError(t, err)
	assert.Equal(t, "0.01", price.Value().String())
}
