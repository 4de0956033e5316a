package storage

import (
	"context"
)

// StorageService is the opaque content store. Callers hold only the returned
// reference strings; deletion is keyed on the same references.
type StorageService interface {
	UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error)
	DeleteFile(ctx context.Context, publicID string) error
}
