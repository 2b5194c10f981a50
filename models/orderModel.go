package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ShippingAddress struct {
	Name        string `bson:"name" json:"name"`
	Address     string `bson:"address" json:"address"`
	City        string `bson:"city" json:"city"`
	PostalCode  string `bson:"postalCode" json:"postalCode"`
	Country     string `bson:"country" json:"country"`
	PhoneNumber string `bson:"phoneNumber" json:"phoneNumber"`
}

type PaymentResult struct {
	ID           string `bson:"id" json:"id"`
	Status       string `bson:"status" json:"status"`
	UpdateTime   string `bson:"update_time" json:"update_time"`
	EmailAddress string `bson:"email_address" json:"email_address"`
}

type Order struct {
	ID              primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	User            primitive.ObjectID   `bson:"user" json:"user"`
	PaymentBill     primitive.ObjectID   `bson:"paymentBill" json:"paymentBill"`
	OrderItems      []primitive.ObjectID `bson:"orderItems" json:"orderItems"`
	ShippingAddress ShippingAddress      `bson:"shippingAddress" json:"shippingAddress"`
	PaymentMethod   string               `bson:"paymentMethod" json:"paymentMethod"`
	ItemsPrice      Money                `bson:"itemsPrice" json:"itemsPrice"`
	ShippingPrice   Money                `bson:"shippingPrice" json:"shippingPrice"`
	TaxPrice        Money                `bson:"taxPrice" json:"taxPrice"`
	TotalPrice      Money                `bson:"totalPrice" json:"totalPrice"`
	IsPaid          bool                 `bson:"isPaid" json:"isPaid"`
	PaidAt          *time.Time           `bson:"paidAt,omitempty" json:"paidAt,omitempty"`
	IsDelivered     bool                 `bson:"isDelivered" json:"isDelivered"`
	DeliveredAt     *time.Time           `bson:"deliveredAt,omitempty" json:"deliveredAt,omitempty"`
	PaymentResult   *PaymentResult       `bson:"paymentResult,omitempty" json:"paymentResult,omitempty"`
	CreatedAt       time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time            `bson:"updatedAt" json:"updatedAt"`
}
