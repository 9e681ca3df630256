package domain

import "time"

type FileKind string

const (
	FileDocument FileKind = "document"
	FileImage    FileKind = "image"
	FileVideo    FileKind = "video"
)

func (k FileKind) Valid() bool {
	switch k {
	case FileDocument, FileImage, FileVideo:
		return true
	default:
		return false
	}
}

// Upload records one stored file and the URL it is served under.
type Upload struct {
	ID        string
	UserID    int64
	Kind      FileKind
	Filename  string
	Path      string
	MimeType  string
	Size      int64
	URL       string
	CreatedAt time.Time
}
