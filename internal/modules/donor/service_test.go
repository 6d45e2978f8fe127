package donor

import (
	"context"
	"testing"

	"lifeline/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockDonorStore struct {
	mock.Mock
}

func (m *MockDonorStore) Upsert(ctx context.Context, d *domain.Donor) error {
	args := m.Called(ctx, d)
	if d != nil {
		d.ID = 7 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockDonorStore) GetByUID(ctx context.Context, uid string) (*domain.Donor, error) {
	args := m.Called(ctx, uid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Donor), args.Error(1)
}

func TestService_Upsert_Success(t *testing.T) {
	store := new(MockDonorStore)
	svc := NewService(store)

	store.On("Upsert", mock.Anything, mock.Anything).Return(nil)

	d, err := svc.Upsert(context.Background(), "uid-1", "A@Mail.Com", UpsertDonorRequest{
		FirstName:  "Rahim",
		LastName:   "Uddin",
		Phone:      "01711111111",
		BloodGroup: "O+",
		District:   "Rajshahi",
		Division:   "Rajshahi",
	})

	assert.NoError(t, err)
	assert.Equal(t, "uid-1", d.UID)
	assert.Equal(t, int64(7), d.ID)
	store.AssertExpectations(t)
}

func TestService_Upsert_MissingRequiredFields(t *testing.T) {
	store := new(MockDonorStore)
	svc := NewService(store)

	_, err := svc.Upsert(context.Background(), "uid-1", "a@mail.com", UpsertDonorRequest{
		FirstName: "Rahim",
		Phone:     "01711111111",
	})

	assert.ErrorIs(t, err, ErrValidation)
	store.AssertNotCalled(t, "Upsert")
}

func TestService_GetMine_MissingProfileIsNil(t *testing.T) {
	store := new(MockDonorStore)
	svc := NewService(store)

	store.On("GetByUID", mock.Anything, "uid-1").Return(nil, gorm.ErrRecordNotFound)

	d, err := svc.GetMine(context.Background(), "uid-1")

	assert.NoError(t, err)
	assert.Nil(t, d)
}
