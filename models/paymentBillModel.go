package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PaymentBill records a bank transfer referenced by an order. It is inert
// data, created once and never mutated.
type PaymentBill struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SenderName      string             `bson:"senderName" json:"senderName"`
	SenderBank      string             `bson:"senderBank" json:"senderBank"`
	SenderAccount   string             `bson:"senderAccount" json:"senderAccount"`
	ReceiverName    string             `bson:"receiverName" json:"receiverName"`
	ReceiverBank    string             `bson:"receiverBank" json:"receiverBank"`
	ReceiverAccount string             `bson:"receiverAccount" json:"receiverAccount"`
	Date            string             `bson:"date" json:"date"`
	Amount          Money              `bson:"amount" json:"amount"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
}
