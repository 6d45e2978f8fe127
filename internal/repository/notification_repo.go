package repository

import (
	"context"
	"time"

	"lifeline/internal/domain"

	"gorm.io/gorm"
)

type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

type notificationModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	ToUID     string    `gorm:"column:to_uid;index"`
	FromUID   string    `gorm:"column:from_uid"`
	Type      string    `gorm:"column:type"`
	Title     string    `gorm:"column:title"`
	Message   string    `gorm:"column:message"`
	RequestID *int64    `gorm:"column:request_id"`
	IsRead    bool      `gorm:"column:is_read;index"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (notificationModel) TableName() string { return "notifications" }

func toDomainNotification(m notificationModel) *domain.Notification {
	return &domain.Notification{
		ID:        m.ID,
		ToUID:     m.ToUID,
		FromUID:   m.FromUID,
		Type:      m.Type,
		Title:     m.Title,
		Message:   m.Message,
		RequestID: m.RequestID,
		IsRead:    m.IsRead,
		CreatedAt: m.CreatedAt,
	}
}

func toNotificationModel(n *domain.Notification) notificationModel {
	return notificationModel{
		ID:        n.ID,
		ToUID:     n.ToUID,
		FromUID:   n.FromUID,
		Type:      n.Type,
		Title:     n.Title,
		Message:   n.Message,
		RequestID: n.RequestID,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}

func (r *NotificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	m := toNotificationModel(n)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*n = *toDomainNotification(m)
	return nil
}

// ListByRecipient returns the recipient's notifications newest first,
// each with its referenced request expanded for display.
func (r *NotificationRepository) ListByRecipient(ctx context.Context, uid string, limit int) ([]domain.Notification, error) {
	var ms []notificationModel
	tx := r.db.WithContext(ctx).
		Where("to_uid = ?", uid).
		Order("created_at DESC").
		Limit(limit).
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Notification, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainNotification(m))
	}

	if err := r.attachRequests(ctx, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *NotificationRepository) attachRequests(ctx context.Context, ns []domain.Notification) error {
	ids := make([]int64, 0, len(ns))
	for _, n := range ns {
		if n.RequestID != nil {
			ids = append(ids, *n.RequestID)
		}
	}
	if len(ids) == 0 {
		return nil
	}

	var ms []bloodRequestModel
	tx := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&ms)
	if tx.Error != nil {
		return tx.Error
	}

	byID := make(map[int64]*domain.BloodRequest, len(ms))
	for _, m := range ms {
		byID[m.ID] = toDomainRequest(m)
	}
	for i := range ns {
		if ns[i].RequestID != nil {
			ns[i].Request = byID[*ns[i].RequestID]
		}
	}
	return nil
}

func (r *NotificationRepository) CountUnread(ctx context.Context, uid string) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).
		Model(&notificationModel{}).
		Where("to_uid = ? AND is_read = ?", uid, false).
		Count(&cnt)
	return cnt, tx.Error
}

// GetOwned fetches a notification scoped to its recipient. Missing and
// not-owned rows are indistinguishable to the caller.
func (r *NotificationRepository) GetOwned(ctx context.Context, uid string, id int64) (*domain.Notification, error) {
	var m notificationModel
	tx := r.db.WithContext(ctx).
		Where("id = ? AND to_uid = ?", id, uid).
		First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}

	n := toDomainNotification(m)
	one := []domain.Notification{*n}
	if err := r.attachRequests(ctx, one); err != nil {
		return nil, err
	}
	return &one[0], nil
}

func (r *NotificationRepository) MarkRead(ctx context.Context, uid string, id int64) error {
	tx := r.db.WithContext(ctx).
		Model(&notificationModel{}).
		Where("id = ? AND to_uid = ?", id, uid).
		Update("is_read", true)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, uid string) error {
	tx := r.db.WithContext(ctx).
		Model(&notificationModel{}).
		Where("to_uid = ? AND is_read = ?", uid, false).
		Update("is_read", true)
	return tx.Error
}
