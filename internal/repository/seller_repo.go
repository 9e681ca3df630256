package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"craftconnect/internal/domain"
	"craftconnect/internal/pkg/utils"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type SellerApplicationRepository struct {
	db *gorm.DB
}

func NewSellerApplicationRepository(db *gorm.DB) *SellerApplicationRepository {
	return &SellerApplicationRepository{db: db}
}

type sellerApplicationModel struct {
	ID               int64     `gorm:"column:id;primaryKey"`
	UserID           int64     `gorm:"column:user_id;uniqueIndex"`
	BusinessName     string    `gorm:"column:business_name"`
	OwnerName        string    `gorm:"column:owner_name"`
	Email            string    `gorm:"column:email"`
	Phone            string    `gorm:"column:phone"`
	Address          string    `gorm:"column:address"`
	Experience       string    `gorm:"column:experience"`
	SellerType       string    `gorm:"column:seller_type"`
	GSTNumber        string    `gorm:"column:gst_number"`
	PANNumber        string    `gorm:"column:pan_number"`
	Categories       string    `gorm:"column:categories"`
	Description      string    `gorm:"column:description"`
	PriceRange       string    `gorm:"column:price_range"`
	StockQuantity    string    `gorm:"column:stock_quantity"`
	PickupAvailable  string    `gorm:"column:pickup_available"`
	DispatchTime     string    `gorm:"column:dispatch_time"`
	PackagingType    string    `gorm:"column:packaging_type"`
	AccountNumber    string    `gorm:"column:account_number"`
	IFSCCode         string    `gorm:"column:ifsc_code"`
	BankName         string    `gorm:"column:bank_name"`
	PaymentFrequency string    `gorm:"column:payment_frequency"`
	Story            string    `gorm:"column:story"`
	ProfilePhotoURL  string    `gorm:"column:profile_photo_url"`
	CertificateURL   string    `gorm:"column:certificate_url"`
	IdentityProofURL string    `gorm:"column:identity_proof_url"`
	ProductPhotoURLs string    `gorm:"column:product_photo_urls"`
	CraftVideoURL    string    `gorm:"column:craft_video_url"`
	Status           string    `gorm:"column:status"`
	CreatedAt        time.Time `gorm:"column:created_at"`
	UpdatedAt        time.Time `gorm:"column:updated_at"`
}

func (sellerApplicationModel) TableName() string { return "seller_applications" }

func toSellerApplicationModel(a *domain.SellerApplication) sellerApplicationModel {
	return sellerApplicationModel{
		ID:               a.ID,
		UserID:           a.UserID,
		BusinessName:     a.BusinessName,
		OwnerName:        a.OwnerName,
		Email:            strings.TrimSpace(strings.ToLower(a.Email)),
		Phone:            a.Phone,
		Address:          a.Address,
		Experience:       a.Experience,
		SellerType:       a.SellerType,
		GSTNumber:        a.GSTNumber,
		PANNumber:        a.PANNumber,
		Categories:       utils.StringsToJSON(a.Categories),
		Description:      a.Description,
		PriceRange:       a.PriceRange,
		StockQuantity:    a.StockQuantity,
		PickupAvailable:  a.PickupAvailable,
		DispatchTime:     a.DispatchTime,
		PackagingType:    a.PackagingType,
		AccountNumber:    a.AccountNumber,
		IFSCCode:         a.IFSCCode,
		BankName:         a.BankName,
		PaymentFrequency: a.PaymentFrequency,
		Story:            a.Story,
		ProfilePhotoURL:  a.ProfilePhotoURL,
		CertificateURL:   a.CertificateURL,
		IdentityProofURL: a.IdentityProofURL,
		ProductPhotoURLs: utils.StringsToJSON(a.ProductPhotoURLs),
		CraftVideoURL:    a.CraftVideoURL,
		Status:           string(a.Status),
		CreatedAt:        a.CreatedAt,
		UpdatedAt:        a.UpdatedAt,
	}
}

func toDomainSellerApplication(m sellerApplicationModel) *domain.SellerApplication {
	return &domain.SellerApplication{
		ID:               m.ID,
		UserID:           m.UserID,
		BusinessName:     m.BusinessName,
		OwnerName:        m.OwnerName,
		Email:            m.Email,
		Phone:            m.Phone,
		Address:          m.Address,
		Experience:       m.Experience,
		SellerType:       m.SellerType,
		GSTNumber:        m.GSTNumber,
		PANNumber:        m.PANNumber,
		Categories:       utils.JSONToStrings(m.Categories),
		Description:      m.Description,
		PriceRange:       m.PriceRange,
		StockQuantity:    m.StockQuantity,
		PickupAvailable:  m.PickupAvailable,
		DispatchTime:     m.DispatchTime,
		PackagingType:    m.PackagingType,
		AccountNumber:    m.AccountNumber,
		IFSCCode:         m.IFSCCode,
		BankName:         m.BankName,
		PaymentFrequency: m.PaymentFrequency,
		Story:            m.Story,
		ProfilePhotoURL:  m.ProfilePhotoURL,
		CertificateURL:   m.CertificateURL,
		IdentityProofURL: m.IdentityProofURL,
		ProductPhotoURLs: utils.JSONToStrings(m.ProductPhotoURLs),
		CraftVideoURL:    m.CraftVideoURL,
		Status:           domain.ApplicationStatus(m.Status),
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func (r *SellerApplicationRepository) Create(ctx context.Context, a *domain.SellerApplication) error {
	m := toSellerApplicationModel(a)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*a = *toDomainSellerApplication(m)
	return nil
}

func (r *SellerApplicationRepository) GetByUserID(ctx context.Context, userID int64) (*domain.SellerApplication, error) {
	var m sellerApplicationModel
	tx := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainSellerApplication(m), nil
}

// IsUniqueViolation reports whether err is a unique-constraint failure,
// covering both the postgres driver and the sqlite fallback used in tests.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	msg := err.Error()
	return strings.Contains(msg, "SQLSTATE 23505") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
