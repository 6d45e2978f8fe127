package repository

import (
	"context"
	"time"

	"lifeline/internal/domain"

	"gorm.io/gorm"
)

type DonationRepository struct {
	db *gorm.DB
}

func NewDonationRepository(db *gorm.DB) *DonationRepository {
	return &DonationRepository{db: db}
}

type donationModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	UID       string    `gorm:"column:uid;index"`
	DonorID   *int64    `gorm:"column:donor_id"`
	Date      time.Time `gorm:"column:date"`
	Units     int       `gorm:"column:units"`
	Place     *string   `gorm:"column:place"`
	Note      *string   `gorm:"column:note"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (donationModel) TableName() string { return "donations" }

func toDomainDonation(m donationModel) *domain.Donation {
	var place, note string
	if m.Place != nil {
		place = *m.Place
	}
	if m.Note != nil {
		note = *m.Note
	}

	return &domain.Donation{
		ID:        m.ID,
		UID:       m.UID,
		DonorID:   m.DonorID,
		Date:      m.Date,
		Units:     m.Units,
		Place:     place,
		Note:      note,
		CreatedAt: m.CreatedAt,
	}
}

func toDonationModel(d *domain.Donation) donationModel {
	var place, note *string
	if d.Place != "" {
		v := d.Place
		place = &v
	}
	if d.Note != "" {
		v := d.Note
		note = &v
	}

	return donationModel{
		ID:        d.ID,
		UID:       d.UID,
		DonorID:   d.DonorID,
		Date:      d.Date,
		Units:     d.Units,
		Place:     place,
		Note:      note,
		CreatedAt: d.CreatedAt,
	}
}

func (r *DonationRepository) Create(ctx context.Context, d *domain.Donation) error {
	m := toDonationModel(d)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*d = *toDomainDonation(m)
	return nil
}

func (r *DonationRepository) ListByUID(ctx context.Context, uid string, limit int) ([]domain.Donation, error) {
	var ms []donationModel
	tx := r.db.WithContext(ctx).
		Where("uid = ?", uid).
		Order("date DESC").
		Limit(limit).
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Donation, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainDonation(m))
	}
	return out, nil
}

// DeleteOwned removes the donation only when it belongs to uid. The
// returned count is zero both for a missing row and for someone else's
// row; callers must not tell those cases apart.
func (r *DonationRepository) DeleteOwned(ctx context.Context, uid string, id int64) (int64, error) {
	tx := r.db.WithContext(ctx).
		Where("id = ? AND uid = ?", id, uid).
		Delete(&donationModel{})
	if tx.Error != nil {
		return 0, tx.Error
	}
	return tx.RowsAffected, nil
}
