package request

import (
	"context"
	"testing"

	"lifeline/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockRequestStore struct {
	mock.Mock
}

func (m *MockRequestStore) Create(ctx context.Context, b *domain.BloodRequest) error {
	args := m.Called(ctx, b)
	if b != nil {
		b.ID = 11 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockRequestStore) ListByRequester(ctx context.Context, uid string) ([]domain.BloodRequest, error) {
	args := m.Called(ctx, uid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BloodRequest), args.Error(1)
}

func (m *MockRequestStore) CloseOwned(ctx context.Context, uid string, id int64) (*domain.BloodRequest, error) {
	args := m.Called(ctx, uid, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BloodRequest), args.Error(1)
}

func (m *MockRequestStore) DeleteOwned(ctx context.Context, uid string, id int64) (int64, error) {
	args := m.Called(ctx, uid, id)
	return args.Get(0).(int64), args.Error(1)
}

func TestService_Create_Defaults(t *testing.T) {
	store := new(MockRequestStore)
	svc := NewService(store)

	store.On("Create", mock.Anything, mock.Anything).Return(nil)

	b, err := svc.Create(context.Background(), "uid-1", "claim@mail.com", CreateRequest{
		BloodGroup: "O+",
		District:   "Rajshahi",
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.RequestOpen, b.Status)
	assert.Equal(t, 1, b.Units, "units defaults to 1")
	assert.Equal(t, "claim@mail.com", b.RequesterEmail, "email snapshot falls back to the token claim")
	assert.Equal(t, "uid-1", b.RequesterUID)
}

func TestService_Create_MissingBloodGroup(t *testing.T) {
	store := new(MockRequestStore)
	svc := NewService(store)

	_, err := svc.Create(context.Background(), "uid-1", "a@mail.com", CreateRequest{
		District: "Rajshahi",
	})

	assert.ErrorIs(t, err, ErrValidation)
	store.AssertNotCalled(t, "Create")
}

func TestService_Close_NotOwned(t *testing.T) {
	store := new(MockRequestStore)
	svc := NewService(store)

	store.On("CloseOwned", mock.Anything, "uid-b", int64(5)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Close(context.Background(), "uid-b", 5)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Close_AlreadyClosedIsNoop(t *testing.T) {
	store := new(MockRequestStore)
	svc := NewService(store)

	closed := &domain.BloodRequest{ID: 5, RequesterUID: "uid-a", Status: domain.RequestClosed}
	store.On("CloseOwned", mock.Anything, "uid-a", int64(5)).Return(closed, nil)

	b, err := svc.Close(context.Background(), "uid-a", 5)

	assert.NoError(t, err)
	assert.Equal(t, domain.RequestClosed, b.Status)
}

func TestService_Delete_NotOwned(t *testing.T) {
	store := new(MockRequestStore)
	svc := NewService(store)

	store.On("DeleteOwned", mock.Anything, "uid-b", int64(5)).Return(int64(0), nil)

	err := svc.Delete(context.Background(), "uid-b", 5)

	assert.ErrorIs(t, err, ErrNotFound)
}
