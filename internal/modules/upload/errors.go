package upload

import "errors"

var (
	ErrEmptyFile       = errors.New("file is empty")
	ErrFileTooLarge    = errors.New("file is too large")
	ErrInvalidKind     = errors.New("type must be one of document, image, video")
	ErrInvalidMimeType = errors.New("file type is not allowed")
)
