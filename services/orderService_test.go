package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bookmart/bookstore-api/models"
	"github.com/bookmart/bookstore-api/store"
)

// fakeOrderStore is an in-memory OrderStore recording the mutations order
// creation performs.
type fakeOrderStore struct {
	users map[primitive.ObjectID]*models.User
	bills map[primitive.ObjectID]*models.PaymentBill
	stock map[primitive.ObjectID]*models.Product

	orders     map[primitive.ObjectID]*models.Order
	orderItems map[primitive.ObjectID]*models.OrderItem

	decrements []primitive.ObjectID
}

func newFakeOrderStore() *fakeOrderStore {
	return &fakeOrderStore{
		users:      map[primitive.ObjectID]*models.User{},
		bills:      map[primitive.ObjectID]*models.PaymentBill{},
		stock:      map[primitive.ObjectID]*models.Product{},
		orders:     map[primitive.ObjectID]*models.Order{},
		orderItems: map[primitive.ObjectID]*models.OrderItem{},
	}
}

func (f *fakeOrderStore) FindUserByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return u, nil
}

func (f *fakeOrderStore) FindPaymentBillByID(_ context.Context, id primitive.ObjectID) (*models.PaymentBill, error) {
	b, ok := f.bills[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return b, nil
}

func (f *fakeOrderStore) FindProductsByIDs(_ context.Context, ids []primitive.ObjectID) ([]models.Product, error) {
	var products []models.Product
	seen := map[primitive.ObjectID]bool{}
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if p, ok := f.stock[id]; ok {
			products = append(products, *p)
		}
	}
	return products, nil
}

func (f *fakeOrderStore) InsertOrderItem(_ context.Context, item *models.OrderItem) error {
	item.ID = primitive.NewObjectID()
	stored := *item
	f.orderItems[item.ID] = &stored
	return nil
}

func (f *fakeOrderStore) InsertOrder(_ context.Context, o *models.Order) error {
	o.ID = primitive.NewObjectID()
	stored := *o
	f.orders[o.ID] = &stored
	return nil
}

func (f *fakeOrderStore) DeleteOrder(_ context.Context, id primitive.ObjectID) error {
	delete(f.orders, id)
	return nil
}

func (f *fakeOrderStore) DeleteOrderItems(_ context.Context, ids []primitive.ObjectID) error {
	for _, id := range ids {
		delete(f.orderItems, id)
	}
	return nil
}

func (f *fakeOrderStore) DecrementStock(_ context.Context, productID primitive.ObjectID, qty int) error {
	p, ok := f.stock[productID]
	if !ok || p.Stock < qty {
		return store.ErrInsufficientStock
	}
	p.Stock -= qty
	f.decrements = append(f.decrements, productID)
	return nil
}

func (f *fakeOrderStore) IncrementStock(_ context.Context, productID primitive.ObjectID, qty int) error {
	if p, ok := f.stock[productID]; ok {
		p.Stock += qty
	}
	return nil
}

func (f *fakeOrderStore) addUser(t *testing.T) primitive.ObjectID {
	t.Helper()
	id := primitive.NewObjectID()
	f.users[id] = &models.User{ID: id, Username: "buyer", Email: "buyer@example.com"}
	return id
}

func (f *fakeOrderStore) addBill(t *testing.T) primitive.ObjectID {
	t.Helper()
	id := primitive.NewObjectID()
	f.bills[id] = &models.PaymentBill{ID: id, SenderName: "buyer"}
	return id
}

func (f *fakeOrderStore) addProduct(t *testing.T, name, price string, stock int) primitive.ObjectID {
	t.Helper()
	p, err := models.MoneyFromString(price)
	require.NoError(t, err)
	id := primitive.NewObjectID()
	f.stock[id] = &models.Product{ID: id, Name: name, Image: name + ".jpg", Price: p, Stock: stock}
	return id
}

func TestCreateOrderNoItems(t *testing.T) {
	svc := NewOrderService(newFakeOrderStore())

	_, err := svc.Create(context.Background(), CreateOrderInput{UserID: primitive.NewObjectID()})

	var invalid *InvalidRequestError
	require.ErrorAs(t, err, &invalid)
}

func TestCreateOrderMissingPaymentBill(t *testing.T) {
	fs := newFakeOrderStore()
	userID := fs.addUser(t)
	productID := fs.addProduct(t, "novel", "20.00", 5)
	svc := NewOrderService(fs)

	_, err := svc.Create(context.Background(), CreateOrderInput{
		UserID:        userID,
		PaymentBillID: primitive.NewObjectID(),
		Items:         []RequestedItem{{ProductID: productID, Qty: 1}},
	})

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "payment bill", notFound.Resource)
	assert.Empty(t, fs.orders)
	assert.Empty(t, fs.orderItems)
}

func TestCreateOrderMissingUser(t *testing.T) {
	fs := newFakeOrderStore()
	billID := fs.addBill(t)
	productID := fs.addProduct(t, "novel", "20.00", 5)
	svc := NewOrderService(fs)

	_, err := svc.Create(context.Background(), CreateOrderInput{
		UserID:        primitive.NewObjectID(),
		PaymentBillID: billID,
		Items:         []RequestedItem{{ProductID: productID, Qty: 1}},
	})

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "user", notFound.Resource)
	assert.Empty(t, fs.orders)
}

func TestCreateOrderMissingProduct(t *testing.T) {
	fs := newFakeOrderStore()
	userID := fs.addUser(t)
	billID := fs.addBill(t)
	productID := fs.addProduct(t, "novel", "20.00", 5)
	svc := NewOrderService(fs)

	_, err := svc.Create(context.Background(), CreateOrderInput{
		UserID:        userID,
		PaymentBillID: billID,
		Items: []RequestedItem{
			{ProductID: productID, Qty: 1},
			{ProductID: primitive.NewObjectID(), Qty: 2},
		},
	})

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "product", notFound.Resource)
	assert.Empty(t, fs.orders)
	assert.Equal(t, 5, fs.stock[productID].Stock)
}

func TestCreateOrderSuccess(t *testing.T) {
	fs := newFakeOrderStore()
	userID := fs.addUser(t)
	billID := fs.addBill(t)
	bookID := fs.addProduct(t, "novel", "50.00", 5)
	penID := fs.addProduct(t, "pen", "10.00", 3)
	svc := NewOrderService(fs)

	order, err := svc.Create(context.Background(), CreateOrderInput{
		UserID:        userID,
		PaymentBillID: billID,
		Items: []RequestedItem{
			{ProductID: bookID, Qty: 2},
			{ProductID: penID, Qty: 1},
		},
		ShippingAddress: models.ShippingAddress{Name: "buyer", City: "Astana"},
		PaymentMethod:   "bank transfer",
	})
	require.NoError(t, err)

	assert.Equal(t, "110.00", order.ItemsPrice.StringFixed(2))
	assert.Equal(t, "0.00", order.ShippingPrice.StringFixed(2))
	assert.Equal(t, "16.50", order.TaxPrice.StringFixed(2))
	assert.Equal(t, "126.50", order.TotalPrice.StringFixed(2))

	require.Len(t, order.OrderItems, 2)
	first := fs.orderItems[order.OrderItems[0]]
	require.NotNil(t, first)
	assert.Equal(t, "novel", first.Name)
	assert.Equal(t, "50.00", first.Price.StringFixed(2))
	assert.Equal(t, 2, first.Qty)
	assert.Equal(t, userID, first.User)

	assert.Equal(t, 3, fs.stock[bookID].Stock)
	assert.Equal(t, 2, fs.stock[penID].Stock)
	assert.Equal(t, []primitive.ObjectID{bookID, penID}, fs.decrements)
	assert.Len(t, fs.orders, 1)
}

func TestCreateOrderInsufficientStockRollsBack(t *testing.T) {
	fs := newFakeOrderStore()
	userID := fs.addUser(t)
	billID := fs.addBill(t)
	bookID := fs.addProduct(t, "novel", "50.00", 5)
	penID := fs.addProduct(t, "pen", "10.00", 1)
	svc := NewOrderService(fs)

	_, err := svc.Create(context.Background(), CreateOrderInput{
		UserID:        userID,
		PaymentBillID: billID,
		Items: []RequestedItem{
			{ProductID: bookID, Qty: 2},
			{ProductID: penID, Qty: 4},
		},
	})

	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Contains(t, conflict.Reason, penID.Hex())

	// Everything is back where it started.
	assert.Equal(t, 5, fs.stock[bookID].Stock)
	assert.Equal(t, 1, fs.stock[penID].Stock)
	assert.Empty(t, fs.orders)
	assert.Empty(t, fs.orderItems)
}
