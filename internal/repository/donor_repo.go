package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"lifeline/internal/domain"

	"gorm.io/gorm"
)

type DonorRepository struct {
	db *gorm.DB
}

func NewDonorRepository(db *gorm.DB) *DonorRepository {
	return &DonorRepository{db: db}
}

type donorModel struct {
	ID                int64     `gorm:"column:id;primaryKey"`
	UID               string    `gorm:"column:uid;uniqueIndex"`
	Email             string    `gorm:"column:email"`
	FirstName         string    `gorm:"column:first_name"`
	LastName          string    `gorm:"column:last_name"`
	Phone             string    `gorm:"column:phone"`
	Address           *string   `gorm:"column:address"`
	Age               *int      `gorm:"column:age"`
	BloodGroup        string    `gorm:"column:blood_group;index"`
	District          string    `gorm:"column:district;index"`
	Division          string    `gorm:"column:division"`
	PinCode           string    `gorm:"column:pin_code"`
	LastDonationMonth string    `gorm:"column:last_donation_month"`
	LastDonationYear  string    `gorm:"column:last_donation_year"`
	CreatedAt         time.Time `gorm:"column:created_at"`
	UpdatedAt         time.Time `gorm:"column:updated_at"`
}

func (donorModel) TableName() string { return "donors" }

func toDomainDonor(m donorModel) *domain.Donor {
	var address string
	if m.Address != nil {
		address = *m.Address
	}

	return &domain.Donor{
		ID:                m.ID,
		UID:               m.UID,
		Email:             m.Email,
		FirstName:         m.FirstName,
		LastName:          m.LastName,
		Phone:             m.Phone,
		Address:           address,
		Age:               m.Age,
		BloodGroup:        m.BloodGroup,
		District:          m.District,
		Division:          m.Division,
		PinCode:           m.PinCode,
		LastDonationMonth: m.LastDonationMonth,
		LastDonationYear:  m.LastDonationYear,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

func toDonorModel(d *domain.Donor) donorModel {
	email := strings.TrimSpace(strings.ToLower(d.Email))

	var address *string
	if d.Address != "" {
		v := d.Address
		address = &v
	}

	return donorModel{
		ID:                d.ID,
		UID:               d.UID,
		Email:             email,
		FirstName:         d.FirstName,
		LastName:          d.LastName,
		Phone:             d.Phone,
		Address:           address,
		Age:               d.Age,
		BloodGroup:        d.BloodGroup,
		District:          d.District,
		Division:          d.Division,
		PinCode:           d.PinCode,
		LastDonationMonth: d.LastDonationMonth,
		LastDonationYear:  d.LastDonationYear,
		CreatedAt:         d.CreatedAt,
		UpdatedAt:         d.UpdatedAt,
	}
}

func (r *DonorRepository) GetByUID(ctx context.Context, uid string) (*domain.Donor, error) {
	var m donorModel
	tx := r.db.WithContext(ctx).Where("uid = ?", uid).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainDonor(m), nil
}

// Upsert replaces the profile keyed by uid, creating it on first save.
// A concurrent first save can lose the insert race on the unique uid
// index; that race is resolved by falling back to the update path.
func (r *DonorRepository) Upsert(ctx context.Context, d *domain.Donor) error {
	m := toDonorModel(d)

	var existing donorModel
	tx := r.db.WithContext(ctx).Where("uid = ?", d.UID).First(&existing)
	if tx.Error != nil {
		if !errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return tx.Error
		}

		err := r.db.WithContext(ctx).Create(&m).Error
		if err == nil {
			*d = *toDomainDonor(m)
			return nil
		}
		if !IsUniqueViolation(err) {
			return err
		}
		if err := r.db.WithContext(ctx).Where("uid = ?", d.UID).First(&existing).Error; err != nil {
			return err
		}
	}

	m.ID = existing.ID
	m.CreatedAt = existing.CreatedAt
	if err := r.db.WithContext(ctx).Save(&m).Error; err != nil {
		return err
	}
	*d = *toDomainDonor(m)
	return nil
}

func (r *DonorRepository) Count(ctx context.Context) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&donorModel{}).Count(&cnt)
	return cnt, tx.Error
}

func (r *DonorRepository) DistinctDistricts(ctx context.Context) ([]string, error) {
	var districts []string
	tx := r.db.WithContext(ctx).
		Model(&donorModel{}).
		Distinct("district").
		Where("district <> ''").
		Pluck("district", &districts)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return districts, nil
}

// DonorSearchRow is the privacy-limited projection used for discovery.
// Email, address, pin code and age stay out on purpose.
type DonorSearchRow struct {
	UID               string
	FirstName         string
	LastName          string
	Phone             string
	BloodGroup        string
	District          string
	Division          string
	LastDonationMonth string
	LastDonationYear  string
	LastDonationDate  *time.Time
	UpdatedAt         time.Time
}

// SearchWithLastDonation joins each matching donor to the most recent
// date in their donation ledger. The join is a best-effort read: a
// donation added mid-query may or may not show up, which is accepted.
func (r *DonorRepository) SearchWithLastDonation(ctx context.Context, bloodGroup, district, division string, limit int) ([]DonorSearchRow, error) {
	q := `
SELECT d.uid,
       d.first_name,
       d.last_name,
       d.phone,
       d.blood_group,
       d.district,
       d.division,
       d.last_donation_month,
       d.last_donation_year,
       d.updated_at,
       MAX(dn.date) AS last_donation_date
FROM donors d
LEFT JOIN donations dn ON dn.uid = d.uid
WHERE d.blood_group = ? AND d.district = ? AND d.division = ?
GROUP BY d.id, d.uid, d.first_name, d.last_name, d.phone, d.blood_group,
         d.district, d.division, d.last_donation_month, d.last_donation_year, d.updated_at
ORDER BY d.updated_at DESC
LIMIT ?
`
	var rows []DonorSearchRow
	tx := r.db.WithContext(ctx).Raw(q, bloodGroup, district, division, limit).Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return rows, nil
}
