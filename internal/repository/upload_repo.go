package repository

import (
	"context"
	"time"

	"craftconnect/internal/domain"

	"gorm.io/gorm"
)

type UploadRepository struct {
	db *gorm.DB
}

func NewUploadRepository(db *gorm.DB) *UploadRepository {
	return &UploadRepository{db: db}
}

type uploadModel struct {
	ID        string    `gorm:"column:id;primaryKey"`
	UserID    int64     `gorm:"column:user_id;index"`
	Kind      string    `gorm:"column:kind"`
	Filename  string    `gorm:"column:filename"`
	Path      string    `gorm:"column:path"`
	MimeType  string    `gorm:"column:mime_type"`
	Size      int64     `gorm:"column:size"`
	URL       string    `gorm:"column:url"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (uploadModel) TableName() string { return "uploads" }

func (r *UploadRepository) Create(ctx context.Context, u *domain.Upload) error {
	m := uploadModel{
		ID:        u.ID,
		UserID:    u.UserID,
		Kind:      string(u.Kind),
		Filename:  u.Filename,
		Path:      u.Path,
		MimeType:  u.MimeType,
		Size:      u.Size,
		URL:       u.URL,
		CreatedAt: u.CreatedAt,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	u.CreatedAt = m.CreatedAt
	return nil
}

func (r *UploadRepository) GetByID(ctx context.Context, id string) (*domain.Upload, error) {
	var m uploadModel
	tx := r.db.WithContext(ctx).First(&m, "id = ?", id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &domain.Upload{
		ID:        m.ID,
		UserID:    m.UserID,
		Kind:      domain.FileKind(m.Kind),
		Filename:  m.Filename,
		Path:      m.Path,
		MimeType:  m.MimeType,
		Size:      m.Size,
		URL:       m.URL,
		CreatedAt: m.CreatedAt,
	}, nil
}
