package repository

import (
	"context"
	"time"

	"lifeline/internal/domain"

	"gorm.io/gorm"
)

type FeedbackRepository struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

type feedbackModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name"`
	Email     string    `gorm:"column:email"`
	Role      string    `gorm:"column:role"`
	Rating    int       `gorm:"column:rating"`
	Message   string    `gorm:"column:message"`
	UID       string    `gorm:"column:uid"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (feedbackModel) TableName() string { return "feedbacks" }

func toDomainFeedback(m feedbackModel) *domain.Feedback {
	return &domain.Feedback{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Role:      domain.FeedbackRole(m.Role),
		Rating:    m.Rating,
		Message:   m.Message,
		UID:       m.UID,
		CreatedAt: m.CreatedAt,
	}
}

func (r *FeedbackRepository) Create(ctx context.Context, f *domain.Feedback) error {
	m := feedbackModel{
		Name:    f.Name,
		Email:   f.Email,
		Role:    string(f.Role),
		Rating:  f.Rating,
		Message: f.Message,
		UID:     f.UID,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*f = *toDomainFeedback(m)
	return nil
}

// ListRecent returns the newest entries with the public projection only
// (no email, no uid).
func (r *FeedbackRepository) ListRecent(ctx context.Context, limit int) ([]domain.Feedback, error) {
	var ms []feedbackModel
	tx := r.db.WithContext(ctx).
		Select("id", "name", "role", "rating", "message", "created_at").
		Order("created_at DESC").
		Limit(limit).
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Feedback, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainFeedback(m))
	}
	return out, nil
}

func (r *FeedbackRepository) Count(ctx context.Context) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&feedbackModel{}).Count(&cnt)
	return cnt, tx.Error
}
