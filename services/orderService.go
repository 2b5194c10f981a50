package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bookmart/bookstore-api/models"
	"github.com/bookmart/bookstore-api/store"
)

// OrderStore is the slice of the data store that order creation needs.
type OrderStore interface {
	FindUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindPaymentBillByID(ctx context.Context, id primitive.ObjectID) (*models.PaymentBill, error)
	FindProductsByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Product, error)
	InsertOrderItem(ctx context.Context, item *models.OrderItem) error
	InsertOrder(ctx context.Context, o *models.Order) error
	DeleteOrder(ctx context.Context, id primitive.ObjectID) error
	DeleteOrderItems(ctx context.Context, ids []primitive.ObjectID) error
	DecrementStock(ctx context.Context, productID primitive.ObjectID, qty int) error
	IncrementStock(ctx context.Context, productID primitive.ObjectID, qty int) error
}

type OrderService struct {
	store OrderStore
}

func NewOrderService(st OrderStore) *OrderService {
	return &OrderService{store: st}
}

// RequestedItem is one (product, quantity) pair of an incoming order.
type RequestedItem struct {
	ProductID primitive.ObjectID
	Qty       int
}

// CreateOrderInput carries everything needed to place an order.
type CreateOrderInput struct {
	UserID          primitive.ObjectID
	PaymentBillID   primitive.ObjectID
	Items           []RequestedItem
	ShippingAddress models.ShippingAddress
	PaymentMethod   string
}

// Create places an order: it validates the referenced user and payment bill,
// materializes the line items, computes the prices, persists the order and
// finally decrements the stock of every ordered product. Stock is touched
// only after the order is durably created; if any decrement is refused, the
// already-applied decrements are restored and the order and its items are
// removed again.
func (s *OrderService) Create(ctx context.Context, in CreateOrderInput) (*models.Order, error) {
	if len(in.Items) == 0 {
		return nil, &InvalidRequestError{Reason: "no order items provided"}
	}

	if _, err := s.store.FindPaymentBillByID(ctx, in.PaymentBillID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{Resource: "payment bill", ID: in.PaymentBillID.Hex()}
		}
		return nil, fmt.Errorf("fetch payment bill: %w", err)
	}

	user, err := s.store.FindUserByID(ctx, in.UserID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{Resource: "user", ID: in.UserID.Hex()}
		}
		return nil, fmt.Errorf("fetch user: %w", err)
	}

	items, err := s.assembleItems(ctx, user.ID, in.Items)
	if err != nil {
		return nil, err
	}

	prices := CalcPrices(items)

	itemIDs := make([]primitive.ObjectID, len(items))
	for i, item := range items {
		itemIDs[i] = item.ID
	}

	order := &models.Order{
		User:            user.ID,
		PaymentBill:     in.PaymentBillID,
		OrderItems:      itemIDs,
		ShippingAddress: in.ShippingAddress,
		PaymentMethod:   in.PaymentMethod,
		ItemsPrice:      prices.ItemsPrice,
		ShippingPrice:   prices.ShippingPrice,
		TaxPrice:        prices.TaxPrice,
		TotalPrice:      prices.TotalPrice,
	}
	if err := s.store.InsertOrder(ctx, order); err != nil {
		s.discardItems(ctx, itemIDs)
		return nil, fmt.Errorf("insert order: %w", err)
	}

	if err := s.decrementStock(ctx, order, items); err != nil {
		return nil, err
	}

	return order, nil
}

// assembleItems resolves every requested product and persists one line item
// per request line, preserving the request order. The snapshot of name,
// image and price is taken here.
func (s *OrderService) assembleItems(ctx context.Context, userID primitive.ObjectID, requested []RequestedItem) ([]models.OrderItem, error) {
	productIDs := make([]primitive.ObjectID, len(requested))
	for i, r := range requested {
		productIDs[i] = r.ProductID
	}

	products, err := s.store.FindProductsByIDs(ctx, productIDs)
	if err != nil {
		return nil, fmt.Errorf("fetch products: %w", err)
	}

	byID := make(map[primitive.ObjectID]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	if len(products) != len(requested) {
		for _, r := range requested {
			if _, ok := byID[r.ProductID]; !ok {
				return nil, &NotFoundError{Resource: "product", ID: r.ProductID.Hex()}
			}
		}
	}

	items := make([]models.OrderItem, 0, len(requested))
	inserted := make([]primitive.ObjectID, 0, len(requested))
	for _, r := range requested {
		p := byID[r.ProductID]
		item := models.OrderItem{
			Name:    p.Name,
			Qty:     r.Qty,
			Image:   p.Image,
			Price:   p.Price,
			Product: p.ID,
			User:    userID,
		}
		if err := s.store.InsertOrderItem(ctx, &item); err != nil {
			s.discardItems(ctx, inserted)
			return nil, fmt.Errorf("insert order item: %w", err)
		}
		inserted = append(inserted, item.ID)
		items = append(items, item)
	}
	return items, nil
}

// decrementStock applies the conditional decrement for each line item. On a
// refusal it rolls the earlier decrements back and deletes the order along
// with its items, so no persisted order disagrees with the catalog.
func (s *OrderService) decrementStock(ctx context.Context, order *models.Order, items []models.OrderItem) error {
	for i, item := range items {
		err := s.store.DecrementStock(ctx, item.Product, item.Qty)
		if err == nil {
			continue
		}

		for j := i - 1; j >= 0; j-- {
			if incErr := s.store.IncrementStock(ctx, items[j].Product, items[j].Qty); incErr != nil {
				log.Printf("failed to restore stock for product %s: %v", items[j].Product.Hex(), incErr)
			}
		}
		if delErr := s.store.DeleteOrder(ctx, order.ID); delErr != nil {
			log.Printf("failed to remove order %s after stock failure: %v", order.ID.Hex(), delErr)
		}
		s.discardItems(ctx, order.OrderItems)

		if errors.Is(err, store.ErrInsufficientStock) {
			return &ConflictError{Reason: "insufficient stock for product " + item.Product.Hex()}
		}
		return fmt.Errorf("decrement stock: %w", err)
	}
	return nil
}

func (s *OrderService) discardItems(ctx context.Context, ids []primitive.ObjectID) {
	if err := s.store.DeleteOrderItems(ctx, ids); err != nil {
		log.Printf("failed to remove order items: %v", err)
	}
}
