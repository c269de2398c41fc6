// Package storage provides object storage for document files that are
// too large to embed in the document collection as data URLs.
package storage

import "context"

// ObjectStorage stores and retrieves raw file content under opaque keys
type ObjectStorage interface {
	Upload(ctx context.Context, storageKey string, data []byte, contentType string) error
	Download(ctx context.Context, storageKey string) ([]byte, string, error)
	Delete(ctx context.Context, storageKey string) error
}
