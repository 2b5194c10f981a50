package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookmart/bookstore-api/models"
)

func orderItem(t *testing.T, price string, qty int) models.OrderItem {
	t.Helper()
	p, err := models.MoneyFromString(price)
	require.NoError(t, err)
	return models.OrderItem{Name: "item", Qty: qty, Price: p}
}

func TestCalcPricesFreeShippingAboveThreshold(t *testing.T) {
	items := []models.OrderItem{
		orderItem(t, "50.00", 2),
		orderItem(t, "10.00", 1),
	}

	prices := CalcPrices(items)

	assert.Equal(t, "110.00", prices.ItemsPrice.StringFixed(2))
	assert.Equal(t, "0.00", prices.ShippingPrice.StringFixed(2))
	assert.Equal(t, "16.50", prices.TaxPrice.StringFixed(2))
	assert.Equal(t, "126.50", prices.TotalPrice.StringFixed(2))
}

func TestCalcPricesFlatShippingBelowThreshold(t *testing.T) {
	items := []models.OrderItem{orderItem(t, "10.00", 1)}

	prices := CalcPrices(items)

	assert.Equal(t, "10.00", prices.ItemsPrice.StringFixed(2))
	assert.Equal(t, "10.00", prices.ShippingPrice.StringFixed(2))
	assert.Equal(t, "1.50", prices.TaxPrice.StringFixed(2))
	assert.Equal(t, "21.50", prices.TotalPrice.StringFixed(2))
}

func TestCalcPricesThresholdIsExclusive(t *testing.T) {
	// Exactly 100 still pays shipping; only strictly greater ships free.
	items := []models.OrderItem{orderItem(t, "100.00", 1)}

	prices := CalcPrices(items)

	assert.Equal(t, "100.00", prices.ItemsPrice.StringFixed(2))
	assert.Equal(t, "10.00", prices.ShippingPrice.StringFixed(2))
	assert.Equal(t, "15.00", prices.TaxPrice.StringFixed(2))
	assert.Equal(t, "125.00", prices.TotalPrice.StringFixed(2))

	items = []models.OrderItem{orderItem(t, "100.01", 1)}
	prices = CalcPrices(items)
	assert.Equal(t, "0.00", prices.ShippingPrice.StringFixed(2))
}

func TestCalcPricesRoundsToTwoDecimals(t *testing.T) {
	items := []models.OrderItem{orderItem(t, "3.333", 3)}

	prices := CalcPrices(items)

	// 3.333 * 3 = 9.999 rounds to 10.00, tax 1.50, shipping 10.00.
	assert.Equal(t, "10.00", prices.ItemsPrice.StringFixed(2))
	assert.Equal(t, "1.50", prices.TaxPrice.StringFixed(2))
	assert.Equal(t, "21.50", prices.TotalPrice.StringFixed(2))
}

func TestCalcPricesEmptyItems(t *testing.T) {
	prices := CalcPrices(nil)

	assert.Equal(t, "0.00", prices.ItemsPrice.StringFixed(2))
	assert.Equal(t, "10.00", prices.ShippingPrice.StringFixed(2))
	assert.Equal(t, "0.00", prices.TaxPrice.StringFixed(2))
	assert.Equal(t, "10.00", prices.TotalPrice.StringFixed(2))
}
