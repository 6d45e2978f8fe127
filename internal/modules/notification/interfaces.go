package notification

import (
	"context"

	"lifeline/internal/domain"
)

type NotificationStore interface {
	Create(ctx context.Context, n *domain.Notification) error
	ListByRecipient(ctx context.Context, uid string, limit int) ([]domain.Notification, error)
	CountUnread(ctx context.Context, uid string) (int64, error)
	GetOwned(ctx context.Context, uid string, id int64) (*domain.Notification, error)
	MarkRead(ctx context.Context, uid string, id int64) error
	MarkAllRead(ctx context.Context, uid string) error
}

type RequestReader interface {
	GetByID(ctx context.Context, id int64) (*domain.BloodRequest, error)
}
