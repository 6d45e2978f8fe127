package repository

import (
	"context"
	"time"

	"lifeline/internal/domain"

	"gorm.io/gorm"
)

type RequestRepository struct {
	db *gorm.DB
}

func NewRequestRepository(db *gorm.DB) *RequestRepository {
	return &RequestRepository{db: db}
}

type bloodRequestModel struct {
	ID              int64     `gorm:"column:id;primaryKey"`
	RequesterUID    string    `gorm:"column:requester_uid;index"`
	RequesterName   string    `gorm:"column:requester_name"`
	RequesterEmail  string    `gorm:"column:requester_email"`
	RequesterPhone  string    `gorm:"column:requester_phone"`
	BloodGroup      string    `gorm:"column:blood_group"`
	Division        string    `gorm:"column:division"`
	District        string    `gorm:"column:district"`
	HospitalName    string    `gorm:"column:hospital_name"`
	HospitalAddress string    `gorm:"column:hospital_address"`
	PatientName     string    `gorm:"column:patient_name"`
	Relation        string    `gorm:"column:relation"`
	Units           int       `gorm:"column:units"`
	NeededDate      string    `gorm:"column:needed_date"`
	NeededTime      string    `gorm:"column:needed_time"`
	Reason          string    `gorm:"column:reason"`
	Note            string    `gorm:"column:note"`
	Status          string    `gorm:"column:status;index"`
	CreatedAt       time.Time `gorm:"column:created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at"`
}

func (bloodRequestModel) TableName() string { return "blood_requests" }

func toDomainRequest(m bloodRequestModel) *domain.BloodRequest {
	return &domain.BloodRequest{
		ID:              m.ID,
		RequesterUID:    m.RequesterUID,
		RequesterName:   m.RequesterName,
		RequesterEmail:  m.RequesterEmail,
		RequesterPhone:  m.RequesterPhone,
		BloodGroup:      m.BloodGroup,
		Division:        m.Division,
		District:        m.District,
		HospitalName:    m.HospitalName,
		HospitalAddress: m.HospitalAddress,
		PatientName:     m.PatientName,
		Relation:        m.Relation,
		Units:           m.Units,
		NeededDate:      m.NeededDate,
		NeededTime:      m.NeededTime,
		Reason:          m.Reason,
		Note:            m.Note,
		Status:          domain.RequestStatus(m.Status),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func toRequestModel(b *domain.BloodRequest) bloodRequestModel {
	return bloodRequestModel{
		ID:              b.ID,
		RequesterUID:    b.RequesterUID,
		RequesterName:   b.RequesterName,
		RequesterEmail:  b.RequesterEmail,
		RequesterPhone:  b.RequesterPhone,
		BloodGroup:      b.BloodGroup,
		Division:        b.Division,
		District:        b.District,
		HospitalName:    b.HospitalName,
		HospitalAddress: b.HospitalAddress,
		PatientName:     b.PatientName,
		Relation:        b.Relation,
		Units:           b.Units,
		NeededDate:      b.NeededDate,
		NeededTime:      b.NeededTime,
		Reason:          b.Reason,
		Note:            b.Note,
		Status:          string(b.Status),
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

func (r *RequestRepository) Create(ctx context.Context, b *domain.BloodRequest) error {
	m := toRequestModel(b)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*b = *toDomainRequest(m)
	return nil
}

func (r *RequestRepository) GetByID(ctx context.Context, id int64) (*domain.BloodRequest, error) {
	var m bloodRequestModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainRequest(m), nil
}

func (r *RequestRepository) ListByRequester(ctx context.Context, uid string) ([]domain.BloodRequest, error) {
	var ms []bloodRequestModel
	tx := r.db.WithContext(ctx).
		Where("requester_uid = ?", uid).
		Order("created_at DESC").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.BloodRequest, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainRequest(m))
	}
	return out, nil
}

// CloseOwned marks the request closed when it belongs to uid. Closing
// an already-closed request is a no-op success. Missing and not-owned
// rows both come back as gorm.ErrRecordNotFound.
func (r *RequestRepository) CloseOwned(ctx context.Context, uid string, id int64) (*domain.BloodRequest, error) {
	tx := r.db.WithContext(ctx).
		Model(&bloodRequestModel{}).
		Where("id = ? AND requester_uid = ?", id, uid).
		Update("status", string(domain.RequestClosed))
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	var m bloodRequestModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return toDomainRequest(m), nil
}

func (r *RequestRepository) DeleteOwned(ctx context.Context, uid string, id int64) (int64, error) {
	tx := r.db.WithContext(ctx).
		Where("id = ? AND requester_uid = ?", id, uid).
		Delete(&bloodRequestModel{})
	if tx.Error != nil {
		return 0, tx.Error
	}
	return tx.RowsAffected, nil
}
