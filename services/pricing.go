package services

import (
	"github.com/shopspring/decimal"

	"github.com/bookmart/bookstore-api/models"
)

// Flat shipping policy: orders above the threshold ship free, everything
// else pays the fee. These are fixed business constants, not configuration.
var (
	freeShippingThreshold = decimal.NewFromInt(100)
	flatShippingFee       = decimal.NewFromInt(10)
	taxRate               = decimal.RequireFromString("0.15")
)

// OrderPrices holds the four derived monetary fields of an order, each
// rounded to two decimals.
type OrderPrices struct {
	ItemsPrice    models.Money
	ShippingPrice models.Money
	TaxPrice      models.Money
	TotalPrice    models.Money
}

// CalcPrices derives the order totals from its line items. It is a pure
// function; guarding against an empty item list is the order builder's job.
func CalcPrices(items []models.OrderItem) OrderPrices {
	itemsPrice := decimal.Zero
	for _, item := range items {
		itemsPrice = itemsPrice.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Qty))))
	}
	itemsPrice = itemsPrice.Round(2)

	shippingPrice := flatShippingFee
	if itemsPrice.GreaterThan(freeShippingThreshold) {
		shippingPrice = decimal.Zero
	}

	taxPrice := itemsPrice.Mul(taxRate).Round(2)
	totalPrice := itemsPrice.Add(shippingPrice).Add(taxPrice).Round(2)

	return OrderPrices{
		ItemsPrice:    models.NewMoney(itemsPrice),
		ShippingPrice: models.NewMoney(shippingPrice),
		TaxPrice:      models.NewMoney(taxPrice),
		TotalPrice:    models.NewMoney(totalPrice),
	}
}
