package donation

import (
	"context"
	"testing"
	"time"

	"lifeline/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockDonationStore struct {
	mock.Mock
}

func (m *MockDonationStore) Create(ctx context.Context, d *domain.Donation) error {
	args := m.Called(ctx, d)
	if d != nil {
		d.ID = 42 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockDonationStore) ListByUID(ctx context.Context, uid string, limit int) ([]domain.Donation, error) {
	args := m.Called(ctx, uid, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Donation), args.Error(1)
}

func (m *MockDonationStore) DeleteOwned(ctx context.Context, uid string, id int64) (int64, error) {
	args := m.Called(ctx, uid, id)
	return args.Get(0).(int64), args.Error(1)
}

type MockDonorReader struct {
	mock.Mock
}

func (m *MockDonorReader) GetByUID(ctx context.Context, uid string) (*domain.Donor, error) {
	args := m.Called(ctx, uid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Donor), args.Error(1)
}

func TestService_Create_Success(t *testing.T) {
	store := new(MockDonationStore)
	donors := new(MockDonorReader)
	svc := NewService(store, donors)

	donors.On("GetByUID", mock.Anything, "uid-1").Return(&domain.Donor{ID: 3, UID: "uid-1"}, nil)
	store.On("Create", mock.Anything, mock.Anything).Return(nil)

	d, err := svc.Create(context.Background(), "uid-1", CreateDonationRequest{
		Date:  "2024-01-01",
		Place: "Rajshahi Medical",
	})

	assert.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), d.Date)
	assert.Equal(t, 1, d.Units, "units defaults to 1")
	assert.NotNil(t, d.DonorID)
	assert.Equal(t, int64(3), *d.DonorID)
}

func TestService_Create_MissingDate(t *testing.T) {
	store := new(MockDonationStore)
	donors := new(MockDonorReader)
	svc := NewService(store, donors)

	_, err := svc.Create(context.Background(), "uid-1", CreateDonationRequest{Units: 2})

	assert.ErrorIs(t, err, ErrValidation)
	store.AssertNotCalled(t, "Create")
}

func TestService_Create_NoProfileStillRecords(t *testing.T) {
	store := new(MockDonationStore)
	donors := new(MockDonorReader)
	svc := NewService(store, donors)

	donors.On("GetByUID", mock.Anything, "uid-1").Return(nil, gorm.ErrRecordNotFound)
	store.On("Create", mock.Anything, mock.Anything).Return(nil)

	d, err := svc.Create(context.Background(), "uid-1", CreateDonationRequest{
		Date:  "2024-02-10",
		Units: 2,
	})

	assert.NoError(t, err)
	assert.Nil(t, d.DonorID)
	assert.Equal(t, 2, d.Units)
}

func TestService_Delete_NotOwnedIsNotFound(t *testing.T) {
	store := new(MockDonationStore)
	donors := new(MockDonorReader)
	svc := NewService(store, donors)

	store.On("DeleteOwned", mock.Anything, "uid-b", int64(9)).Return(int64(0), nil)

	err := svc.Delete(context.Background(), "uid-b", 9)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_ListMine_CapsAtLimit(t *testing.T) {
	store := new(MockDonationStore)
	donors := new(MockDonorReader)
	svc := NewService(store, donors)

	store.On("ListByUID", mock.Anything, "uid-1", listLimit).Return([]domain.Donation{}, nil)

	_, err := svc.ListMine(context.Background(), "uid-1")

	assert.NoError(t, err)
	store.AssertExpectations(t)
}
