package seller

import (
	"context"

	"craftconnect/internal/domain"
	"craftconnect/internal/repository"
)

type ApplicationStore interface {
	Create(ctx context.Context, a *domain.SellerApplication) error
	GetByUserID(ctx context.Context, userID int64) (*domain.SellerApplication, error)
}

type Service struct {
	applications ApplicationStore
}

func NewService(applications ApplicationStore) *Service {
	return &Service{applications: applications}
}

// Register stores one pending application per caller. The unique index
// on user_id is the dedup guard; a violation maps to ErrAlreadyRegistered.
func (s *Service) Register(ctx context.Context, userID int64, req RegisterSellerRequest) (*domain.SellerApplication, error) {
	app := &domain.SellerApplication{
		UserID:           userID,
		BusinessName:     req.BusinessName,
		OwnerName:        req.OwnerName,
		Email:            req.Email,
		Phone:            req.Phone,
		Address:          req.Address,
		Experience:       req.Experience,
		SellerType:       req.SellerType,
		GSTNumber:        req.GSTNumber,
		PANNumber:        req.PANNumber,
		Categories:       req.Categories,
		Description:      req.Description,
		PriceRange:       req.PriceRange,
		StockQuantity:    req.StockQuantity,
		PickupAvailable:  req.PickupAvailable,
		DispatchTime:     req.DispatchTime,
		PackagingType:    req.PackagingType,
		AccountNumber:    req.AccountNumber,
		IFSCCode:         req.IFSCCode,
		BankName:         req.BankName,
		PaymentFrequency: req.PaymentFrequency,
		Story:            req.Story,
		ProfilePhotoURL:  req.ProfilePhoto,
		CertificateURL:   req.Certificate,
		IdentityProofURL: req.IdentityProof,
		ProductPhotoURLs: req.ProductPhotos,
		CraftVideoURL:    req.CraftVideo,
		Status:           domain.ApplicationPending,
	}

	if err := s.applications.Create(ctx, app); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrAlreadyRegistered
		}
		return nil, err
	}
	return app, nil
}

func (s *Service) GetMyApplication(ctx context.Context, userID int64) (*domain.SellerApplication, error) {
	return s.applications.GetByUserID(ctx, userID)
}
