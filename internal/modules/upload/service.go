package upload

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"craftconnect/internal/domain"
)

const (
	MaxFileSize    = 50 * 1024 * 1024 // 50 MB
	UploadsBaseDir = "./uploads"
	StaticURLBase  = "/static/uploads"
)

// allowedMimeTypes maps each declared kind to the content types it accepts.
var allowedMimeTypes = map[domain.FileKind]map[string]bool{
	domain.FileImage: {
		"image/jpeg": true,
		"image/png":  true,
		"image/gif":  true,
		"image/webp": true,
	},
	domain.FileVideo: {
		"video/mp4":  true,
		"video/webm": true,
	},
	domain.FileDocument: {
		"application/pdf": true,
		"image/jpeg":      true,
		"image/png":       true,
	},
}

type Store interface {
	Create(ctx context.Context, u *domain.Upload) error
	GetByID(ctx context.Context, id string) (*domain.Upload, error)
}

// Service saves an uploaded file to local disk and records it.
// Simple: save file -> record in DB -> return URL.
type Service struct {
	store      Store
	baseDir    string // path to uploads dir
	staticBase string // URL prefix for serving files
}

func NewService(store Store, baseDir, staticBase string) *Service {
	if baseDir == "" {
		baseDir = UploadsBaseDir
	}
	if staticBase == "" {
		staticBase = StaticURLBase
	}
	return &Service{store: store, baseDir: baseDir, staticBase: staticBase}
}

// Upload validates the declared kind against the detected content type,
// writes the file under baseDir and records an Upload row.
func (s *Service) Upload(ctx context.Context, userID int64, kind domain.FileKind, fileHeader *multipart.FileHeader) (*domain.Upload, error) {
	if !kind.Valid() {
		return nil, ErrInvalidKind
	}
	if fileHeader.Size == 0 {
		return nil, ErrEmptyFile
	}
	if fileHeader.Size > MaxFileSize {
		return nil, ErrFileTooLarge
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	// Detect MIME type from first 512 bytes
	buf := make([]byte, 512)
	n, _ := file.Read(buf)
	mimeType := http.DetectContentType(buf[:n])
	mimeType = strings.Split(mimeType, ";")[0] // strip charset params

	if !allowedMimeTypes[kind][mimeType] {
		return nil, ErrInvalidMimeType
	}

	if seeker, ok := file.(io.Seeker); ok {
		_, _ = seeker.Seek(0, io.SeekStart)
	}

	// Directory layout: uploads/<kind>/YYYY/MM/
	now := time.Now()
	relDir := filepath.Join(string(kind), fmt.Sprintf("%d/%02d", now.Year(), now.Month()))
	absDir := filepath.Join(s.baseDir, relDir)
	if err := os.MkdirAll(absDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	id := uuid.New().String()
	ext := filepath.Ext(fileHeader.Filename)
	if ext == "" {
		ext = mimeToExt(mimeType)
	}
	filename := fmt.Sprintf("%s_%s%s", id, sanitizeName(fileHeader.Filename), ext)

	absPath := filepath.Join(absDir, filename)
	dst, err := os.Create(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		_ = os.Remove(absPath)
		return nil, fmt.Errorf("failed to write file: %w", err)
	}

	relPath := filepath.Join(relDir, filename)
	fileURL := s.staticBase + "/" + strings.ReplaceAll(relPath, "\\", "/")

	upload := &domain.Upload{
		ID:        id,
		UserID:    userID,
		Kind:      kind,
		Filename:  fileHeader.Filename,
		Path:      relPath,
		MimeType:  mimeType,
		Size:      fileHeader.Size,
		URL:       fileURL,
		CreatedAt: now,
	}

	if err := s.store.Create(ctx, upload); err != nil {
		_ = os.Remove(absPath) // rollback file on DB error
		return nil, fmt.Errorf("failed to save upload record: %w", err)
	}

	return upload, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.Upload, error) {
	return s.store.GetByID(ctx, id)
}

func sanitizeName(name string) string {
	name = filepath.Base(name)
	name = strings.TrimSuffix(name, filepath.Ext(name)) // extension is added separately
	name = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' {
			return r
		}
		return '_'
	}, name)
	if len(name) > 40 {
		name = name[:40]
	}
	if name == "" {
		return "file"
	}
	return name
}

func mimeToExt(mime string) string {
	switch mime {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	case "video/mp4":
		return ".mp4"
	case "video/webm":
		return ".webm"
	case "application/pdf":
		return ".pdf"
	default:
		return ".bin"
	}
}
