package notification

import (
	"context"
	"testing"

	"lifeline/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockNotificationStore struct {
	mock.Mock
}

func (m *MockNotificationStore) Create(ctx context.Context, n *domain.Notification) error {
	args := m.Called(ctx, n)
	if n != nil {
		n.ID = 101 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockNotificationStore) ListByRecipient(ctx context.Context, uid string, limit int) ([]domain.Notification, error) {
	args := m.Called(ctx, uid, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notification), args.Error(1)
}

func (m *MockNotificationStore) CountUnread(ctx context.Context, uid string) (int64, error) {
	args := m.Called(ctx, uid)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationStore) GetOwned(ctx context.Context, uid string, id int64) (*domain.Notification, error) {
	args := m.Called(ctx, uid, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Notification), args.Error(1)
}

func (m *MockNotificationStore) MarkRead(ctx context.Context, uid string, id int64) error {
	args := m.Called(ctx, uid, id)
	return args.Error(0)
}

func (m *MockNotificationStore) MarkAllRead(ctx context.Context, uid string) error {
	args := m.Called(ctx, uid)
	return args.Error(0)
}

type MockRequestReader struct {
	mock.Mock
}

func (m *MockRequestReader) GetByID(ctx context.Context, id int64) (*domain.BloodRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BloodRequest), args.Error(1)
}

func openRequest() *domain.BloodRequest {
	return &domain.BloodRequest{
		ID:           5,
		RequesterUID: "requester",
		BloodGroup:   "O+",
		District:     "Rajshahi",
		HospitalName: "Rajshahi Medical",
		Units:        2,
		Status:       domain.RequestOpen,
	}
}

func TestService_Send_Success(t *testing.T) {
	store := new(MockNotificationStore)
	requests := new(MockRequestReader)
	svc := NewService(store, requests)

	requests.On("GetByID", mock.Anything, int64(5)).Return(openRequest(), nil)
	store.On("Create", mock.Anything, mock.Anything).Return(nil)

	n, err := svc.Send(context.Background(), "sender", SendRequest{ToUID: "donor-x", RequestID: 5})

	assert.NoError(t, err)
	assert.Equal(t, "donor-x", n.ToUID)
	assert.Equal(t, "sender", n.FromUID)
	assert.Equal(t, domain.NotificationTypeBloodRequest, n.Type)
	assert.Equal(t, "Blood Request", n.Title)
	assert.Equal(t, "O+ needed at Rajshahi Medical (Rajshahi), 2 unit(s)", n.Message)
	assert.False(t, n.IsRead)
	assert.Equal(t, int64(5), *n.RequestID)
}

func TestService_Send_RequestMissing(t *testing.T) {
	store := new(MockNotificationStore)
	requests := new(MockRequestReader)
	svc := NewService(store, requests)

	requests.On("GetByID", mock.Anything, int64(99)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Send(context.Background(), "sender", SendRequest{ToUID: "donor-x", RequestID: 99})

	assert.ErrorIs(t, err, ErrRequestNotFound)
	store.AssertNotCalled(t, "Create")
}

func TestService_Send_ClosedRequest(t *testing.T) {
	store := new(MockNotificationStore)
	requests := new(MockRequestReader)
	svc := NewService(store, requests)

	closed := openRequest()
	closed.Status = domain.RequestClosed
	requests.On("GetByID", mock.Anything, int64(5)).Return(closed, nil)

	_, err := svc.Send(context.Background(), "sender", SendRequest{ToUID: "donor-x", RequestID: 5})

	assert.ErrorIs(t, err, ErrRequestNotOpen)
	store.AssertNotCalled(t, "Create")
}

func TestService_Send_MissingFields(t *testing.T) {
	store := new(MockNotificationStore)
	requests := new(MockRequestReader)
	svc := NewService(store, requests)

	_, err := svc.Send(context.Background(), "sender", SendRequest{RequestID: 5})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Send(context.Background(), "sender", SendRequest{ToUID: "donor-x"})
	assert.ErrorIs(t, err, ErrValidation)

	requests.AssertNotCalled(t, "GetByID")
}

func TestService_ListForRecipient_LimitBounds(t *testing.T) {
	store := new(MockNotificationStore)
	requests := new(MockRequestReader)
	svc := NewService(store, requests)

	store.On("ListByRecipient", mock.Anything, "donor-x", defaultListLimit).Return([]domain.Notification{}, nil).Once()
	store.On("ListByRecipient", mock.Anything, "donor-x", maxListLimit).Return([]domain.Notification{}, nil).Once()
	store.On("ListByRecipient", mock.Anything, "donor-x", 10).Return([]domain.Notification{}, nil).Once()

	_, err := svc.ListForRecipient(context.Background(), "donor-x", 0)
	assert.NoError(t, err)

	_, err = svc.ListForRecipient(context.Background(), "donor-x", 500)
	assert.NoError(t, err)

	_, err = svc.ListForRecipient(context.Background(), "donor-x", 10)
	assert.NoError(t, err)

	store.AssertExpectations(t)
}

func TestService_MarkRead_Idempotent(t *testing.T) {
	store := new(MockNotificationStore)
	requests := new(MockRequestReader)
	svc := NewService(store, requests)

	// the store reports success whether or not the flag was already set
	store.On("MarkRead", mock.Anything, "donor-x", int64(7)).Return(nil).Twice()

	assert.NoError(t, svc.MarkRead(context.Background(), "donor-x", 7))
	assert.NoError(t, svc.MarkRead(context.Background(), "donor-x", 7))
	store.AssertExpectations(t)
}

func TestService_MarkRead_NotOwned(t *testing.T) {
	store := new(MockNotificationStore)
	requests := new(MockRequestReader)
	svc := NewService(store, requests)

	store.On("MarkRead", mock.Anything, "uid-b", int64(7)).Return(gorm.ErrRecordNotFound)

	err := svc.MarkRead(context.Background(), "uid-b", 7)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_GetByID_NotOwned(t *testing.T) {
	store := new(MockNotificationStore)
	requests := new(MockRequestReader)
	svc := NewService(store, requests)

	store.On("GetOwned", mock.Anything, "uid-b", int64(7)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.GetByID(context.Background(), "uid-b", 7)

	assert.ErrorIs(t, err, ErrNotFound)
}
