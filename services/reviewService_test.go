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

// fakeReviewStore mimics the guarded append: it refuses a second review from
// the same user and derives numReviews and rating from the stored array.
type fakeReviewStore struct {
	products map[primitive.ObjectID]*models.Product
	users    map[primitive.ObjectID]*models.User

	appendErr error
}

func newFakeReviewStore() *fakeReviewStore {
	return &fakeReviewStore{
		products: map[primitive.ObjectID]*models.Product{},
		users:    map[primitive.ObjectID]*models.User{},
	}
}

func (f *fakeReviewStore) FindProductByID(_ context.Context, id primitive.ObjectID) (*models.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	snapshot := *p
	snapshot.Reviews = append([]models.Review(nil), p.Reviews...)
	return &snapshot, nil
}

func (f *fakeReviewStore) FindUserByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return u, nil
}

func (f *fakeReviewStore) AppendReview(_ context.Context, productID primitive.ObjectID, review models.Review) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	p, ok := f.products[productID]
	if !ok {
		return store.ErrAlreadyReviewed
	}
	for _, r := range p.Reviews {
		if r.User == review.User {
			return store.ErrAlreadyReviewed
		}
	}
	p.Reviews = append(p.Reviews, review)
	p.NumReviews = len(p.Reviews)
	sum := 0.0
	for _, r := range p.Reviews {
		sum += r.Rating
	}
	p.Rating = sum / float64(len(p.Reviews))
	return nil
}

func (f *fakeReviewStore) addUser(name string) primitive.ObjectID {
	id := primitive.NewObjectID()
	f.users[id] = &models.User{ID: id, Username: name}
	return id
}

func (f *fakeReviewStore) addProduct(reviews ...models.Review) primitive.ObjectID {
	id := primitive.NewObjectID()
	f.products[id] = &models.Product{
		ID:         id,
		Name:       "novel",
		Reviews:    reviews,
		NumReviews: len(reviews),
	}
	return id
}

func TestAddReviewMissingProduct(t *testing.T) {
	fs := newFakeReviewStore()
	userID := fs.addUser("reader")
	svc := NewReviewService(fs)

	err := svc.AddReview(context.Background(), primitive.NewObjectID(), userID, 4, "fine")

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "product", notFound.Resource)
}

func TestAddReviewMissingUser(t *testing.T) {
	fs := newFakeReviewStore()
	productID := fs.addProduct()
	svc := NewReviewService(fs)

	err := svc.AddReview(context.Background(), productID, primitive.NewObjectID(), 4, "fine")

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "user", notFound.Resource)
}

func TestAddReviewAppendsSnapshot(t *testing.T) {
	fs := newFakeReviewStore()
	userID := fs.addUser("reader")
	productID := fs.addProduct(
		models.Review{Name: "a", Rating: 5, User: primitive.NewObjectID()},
		models.Review{Name: "b", Rating: 2, User: primitive.NewObjectID()},
	)
	svc := NewReviewService(fs)

	err := svc.AddReview(context.Background(), productID, userID, 4, "good read")
	require.NoError(t, err)

	p := fs.products[productID]
	require.Len(t, p.Reviews, 3)
	appended := p.Reviews[2]
	assert.Equal(t, "reader", appended.Name)
	assert.Equal(t, 4.0, appended.Rating)
	assert.Equal(t, "good read", appended.Comment)
	assert.Equal(t, userID, appended.User)
	assert.False(t, appended.CreatedAt.IsZero())

	assert.Equal(t, 3, p.NumReviews)
	assert.InDelta(t, (5.0+2.0+4.0)/3.0, p.Rating, 1e-9)
}

func TestAddReviewFirstReview(t *testing.T) {
	fs := newFakeReviewStore()
	userID := fs.addUser("reader")
	productID := fs.addProduct()
	svc := NewReviewService(fs)

	err := svc.AddReview(context.Background(), productID, userID, 5, "")
	require.NoError(t, err)

	p := fs.products[productID]
	assert.Equal(t, 1, p.NumReviews)
	assert.Equal(t, 5.0, p.Rating)
}

func TestAddReviewDistinctUsersKeepAggregateConsistent(t *testing.T) {
	// Two reviewers working from the same product snapshot: both appends
	// land, and the derived fields reflect the full array rather than
	// either reviewer's stale view.
	fs := newFakeReviewStore()
	firstUser := fs.addUser("first")
	secondUser := fs.addUser("second")
	productID := fs.addProduct()
	svc := NewReviewService(fs)

	require.NoError(t, svc.AddReview(context.Background(), productID, firstUser, 5, "great"))
	require.NoError(t, svc.AddReview(context.Background(), productID, secondUser, 2, "meh"))

	p := fs.products[productID]
	require.Len(t, p.Reviews, 2)
	assert.Equal(t, len(p.Reviews), p.NumReviews)
	assert.InDelta(t, 3.5, p.Rating, 1e-9)
}

func TestAddReviewDuplicate(t *testing.T) {
	fs := newFakeReviewStore()
	userID := fs.addUser("reader")
	productID := fs.addProduct(models.Review{Name: "reader", Rating: 5, User: userID})
	svc := NewReviewService(fs)

	err := svc.AddReview(context.Background(), productID, userID, 3, "again")

	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, 1, fs.products[productID].NumReviews)
}

func TestAddReviewDuplicateRace(t *testing.T) {
	// The snapshot misses the concurrent review; the store-level guard
	// still refuses the append.
	fs := newFakeReviewStore()
	userID := fs.addUser("reader")
	productID := fs.addProduct()
	fs.appendErr = store.ErrAlreadyReviewed
	svc := NewReviewService(fs)

	err := svc.AddReview(context.Background(), productID, userID, 3, "again")

	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
}
