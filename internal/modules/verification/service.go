package verification

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"craftconnect/internal/domain"
)

type ArtisanStore interface {
	GetByUserID(ctx context.Context, userID int64) (*domain.Artisan, error)
	Save(ctx context.Context, a *domain.Artisan) error
}

type Service struct {
	artisans ArtisanStore
	now      func() time.Time
}

func NewService(artisans ArtisanStore) *Service {
	return &Service{artisans: artisans, now: time.Now}
}

// VerifyAndStore upserts the artisan record for userID from a request
// that already passed schema validation.
//
// Create: supplied profile fields, empty defaults for the rest. Update:
// name is overwritten unconditionally, optional profile fields only when
// present in the request. The verification block is replaced wholesale
// either way; format checks passing is the whole verification, no
// external authority is consulted. Concurrent submissions for the same
// user are last-writer-wins.
func (s *Service) VerifyAndStore(ctx context.Context, userID int64, req VerifyBankAccountRequest) (*domain.Artisan, error) {
	artisan, err := s.artisans.GetByUserID(ctx, userID)
	switch {
	case err == nil:
		artisan.Name = req.Name
		if req.Bio != nil {
			artisan.Bio = *req.Bio
		}
		if req.Location != nil {
			artisan.Location = locationFromPayload(req.Location)
		}
		if req.Specialties != nil {
			artisan.Specialties = req.Specialties
		}
		if req.Experience != nil {
			artisan.Experience = *req.Experience
		}
		if req.Socials != nil {
			artisan.Socials = socialsFromPayload(req.Socials)
		}

	case errors.Is(err, gorm.ErrRecordNotFound):
		artisan = &domain.Artisan{
			UserID:      userID,
			Name:        req.Name,
			Specialties: []string{},
		}
		if req.Bio != nil {
			artisan.Bio = *req.Bio
		}
		if req.Location != nil {
			artisan.Location = locationFromPayload(req.Location)
		}
		if req.Specialties != nil {
			artisan.Specialties = req.Specialties
		}
		if req.Experience != nil {
			artisan.Experience = *req.Experience
		}
		if req.Socials != nil {
			artisan.Socials = socialsFromPayload(req.Socials)
		}

	default:
		return nil, err
	}

	artisan.Verification = domain.Verification{
		IsVerified:     true,
		DocumentType:   req.DocumentType,
		DocumentNumber: req.DocumentNumber,
		BankDetails: domain.BankDetails{
			AccountNumber: req.AccountNumber,
			IFSCCode:      req.IFSCCode,
			BankName:      req.BankName,
		},
		VerifiedAt: s.now(),
	}

	if err := s.artisans.Save(ctx, artisan); err != nil {
		return nil, err
	}
	return artisan, nil
}

func locationFromPayload(p *LocationPayload) domain.Location {
	loc := domain.Location{
		City:    p.City,
		State:   p.State,
		Country: p.Country,
	}
	if loc.Country == "" {
		loc.Country = domain.DefaultCountry
	}
	return loc
}

func socialsFromPayload(p *SocialsPayload) domain.SocialLinks {
	return domain.SocialLinks{
		Instagram: p.Instagram,
		Facebook:  p.Facebook,
		Website:   p.Website,
	}
}
