package repository

import (
	"context"
	"time"

	"craftconnect/internal/domain"
	"craftconnect/internal/pkg/utils"

	"gorm.io/gorm"
)

type ArtisanRepository struct {
	db *gorm.DB
}

func NewArtisanRepository(db *gorm.DB) *ArtisanRepository {
	return &ArtisanRepository{db: db}
}

type artisanModel struct {
	ID          int64   `gorm:"column:id;primaryKey"`
	UserID      int64   `gorm:"column:user_id;uniqueIndex"`
	Name        string  `gorm:"column:name"`
	Bio         string  `gorm:"column:bio"`
	City        string  `gorm:"column:city"`
	State       string  `gorm:"column:state"`
	Country     string  `gorm:"column:country"`
	Specialties string  `gorm:"column:specialties"`
	Experience  int     `gorm:"column:experience"`
	Instagram   *string `gorm:"column:instagram"`
	Facebook    *string `gorm:"column:facebook"`
	Website     *string `gorm:"column:website"`

	IsVerified     bool       `gorm:"column:is_verified"`
	DocumentType   string     `gorm:"column:document_type"`
	DocumentNumber string     `gorm:"column:document_number"`
	AccountNumber  string     `gorm:"column:account_number"`
	IFSCCode       string     `gorm:"column:ifsc_code"`
	BankName       string     `gorm:"column:bank_name"`
	VerifiedAt     *time.Time `gorm:"column:verified_at"`

	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (artisanModel) TableName() string { return "artisans" }

func toDomainArtisan(m artisanModel) *domain.Artisan {
	a := &domain.Artisan{
		ID:     m.ID,
		UserID: m.UserID,
		Name:   m.Name,
		Bio:    m.Bio,
		Location: domain.Location{
			City:    m.City,
			State:   m.State,
			Country: m.Country,
		},
		Specialties: utils.JSONToStrings(m.Specialties),
		Experience:  m.Experience,
		Verification: domain.Verification{
			IsVerified:     m.IsVerified,
			DocumentType:   m.DocumentType,
			DocumentNumber: m.DocumentNumber,
			BankDetails: domain.BankDetails{
				AccountNumber: m.AccountNumber,
				IFSCCode:      m.IFSCCode,
				BankName:      m.BankName,
			},
		},
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.Instagram != nil {
		a.Socials.Instagram = *m.Instagram
	}
	if m.Facebook != nil {
		a.Socials.Facebook = *m.Facebook
	}
	if m.Website != nil {
		a.Socials.Website = *m.Website
	}
	if m.VerifiedAt != nil {
		a.Verification.VerifiedAt = *m.VerifiedAt
	}
	return a
}

func toArtisanModel(a *domain.Artisan) artisanModel {
	m := artisanModel{
		ID:          a.ID,
		UserID:      a.UserID,
		Name:        a.Name,
		Bio:         a.Bio,
		City:        a.Location.City,
		State:       a.Location.State,
		Country:     a.Location.Country,
		Specialties: utils.StringsToJSON(a.Specialties),
		Experience:  a.Experience,

		IsVerified:     a.Verification.IsVerified,
		DocumentType:   a.Verification.DocumentType,
		DocumentNumber: a.Verification.DocumentNumber,
		AccountNumber:  a.Verification.BankDetails.AccountNumber,
		IFSCCode:       a.Verification.BankDetails.IFSCCode,
		BankName:       a.Verification.BankDetails.BankName,

		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
	if a.Socials.Instagram != "" {
		v := a.Socials.Instagram
		m.Instagram = &v
	}
	if a.Socials.Facebook != "" {
		v := a.Socials.Facebook
		m.Facebook = &v
	}
	if a.Socials.Website != "" {
		v := a.Socials.Website
		m.Website = &v
	}
	if !a.Verification.VerifiedAt.IsZero() {
		v := a.Verification.VerifiedAt
		m.VerifiedAt = &v
	}
	return m
}

func (r *ArtisanRepository) GetByUserID(ctx context.Context, userID int64) (*domain.Artisan, error) {
	var m artisanModel
	tx := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainArtisan(m), nil
}

// Save upserts the artisan: insert when it has no ID yet, full update
// otherwise. Atomicity of the single row write is the store's concern;
// concurrent saves for the same user are last-writer-wins.
func (r *ArtisanRepository) Save(ctx context.Context, a *domain.Artisan) error {
	m := toArtisanModel(a)
	var tx *gorm.DB
	if m.ID == 0 {
		tx = r.db.WithContext(ctx).Create(&m)
	} else {
		tx = r.db.WithContext(ctx).Save(&m)
	}
	if tx.Error != nil {
		return tx.Error
	}
	*a = *toDomainArtisan(m)
	return nil
}
