package storage

import (
	"context"

	"github.com/cloudinary/cloudinary-go/v2"
)

// StorageService stores provider qualification documents and resolves
// their public URLs.
type StorageService interface {
	UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error)
	DeleteFile(ctx context.Context, publicID string) error
	GetDownloadURL(ctx context.Context, publicID string) (string, error)
}

// StorageServiceImpl is the Cloudinary-backed implementation.
type StorageServiceImpl struct {
	cld *cloudinary.Cloudinary
}
