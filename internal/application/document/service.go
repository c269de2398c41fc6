// Package document provides the document vault operations: upload with
// extension and size validation, download, and the document-to-budget
// sync trigger. Small files are embedded in the collection as data
// URLs; files over the offload threshold go to object storage.
package document

import (
	"context"
	"mime"
	"path/filepath"
	"time"

	"github.com/bridallink/backend/internal/application/sync"
	"github.com/bridallink/backend/internal/domain/budget"
	"github.com/bridallink/backend/internal/domain/document"
	"github.com/bridallink/backend/internal/domain/shared"
	"github.com/bridallink/backend/internal/infrastructure/persistence"
	"github.com/bridallink/backend/internal/infrastructure/storage"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Limits bounds what can be uploaded
type Limits struct {
	MaxFileBytes      int64
	AllowedExtensions []string
	// Files larger than this are stored in object storage instead of
	// being embedded as a data URL. Zero disables offloading.
	OffloadThresholdBytes int64
}

// DefaultLimits returns the limits used when the configuration does
// not override them
func DefaultLimits() Limits {
	return Limits{
		MaxFileBytes:      document.DefaultMaxFileBytes,
		AllowedExtensions: document.DefaultAllowedExtensions,
	}
}

// Service provides document operations
type Service struct {
	documents *persistence.Collection[document.Document]
	objects   storage.ObjectStorage
	bridge    *sync.Bridge
	limits    Limits
	log       *zap.Logger
}

// NewService creates a document service. objects may be nil when no
// object storage is configured; offloading is then disabled.
func NewService(
	documents *persistence.Collection[document.Document],
	objects storage.ObjectStorage,
	bridge *sync.Bridge,
	limits Limits,
	log *zap.Logger,
) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	if limits.MaxFileBytes <= 0 {
		limits.MaxFileBytes = document.DefaultMaxFileBytes
	}
	if len(limits.AllowedExtensions) == 0 {
		limits.AllowedExtensions = document.DefaultAllowedExtensions
	}
	return &Service{
		documents: documents,
		objects:   objects,
		bridge:    bridge,
		limits:    limits,
		log:       log,
	}
}

// UploadRequest represents a document upload
type UploadRequest struct {
	Name     string
	Category string
	Amount   *decimal.Decimal
	Vendor   string
	Notes    string
	FileName string
	Data     []byte
}

// UpdateDocumentRequest represents a partial metadata update
type UpdateDocumentRequest struct {
	Name     *string          `json:"name"`
	Category *string          `json:"category"`
	Amount   *decimal.Decimal `json:"amount"`
	Vendor   *string          `json:"vendor"`
	Notes    *string          `json:"notes"`
}

// List returns all documents in insertion order
func (s *Service) List(ctx context.Context) []document.Document {
	return s.documents.All(ctx)
}

// Get returns one document by identifier
func (s *Service) Get(ctx context.Context, id string) (document.Document, error) {
	d, ok := s.documents.Get(ctx, id)
	if !ok {
		return document.Document{}, shared.ErrNotFound
	}
	return d, nil
}

// Upload validates and stores a document. The file extension must be in
// the allow list and the file must not exceed the size cap.
func (s *Service) Upload(ctx context.Context, req UploadRequest) (document.Document, error) {
	if req.Name == "" || req.FileName == "" || len(req.Data) == 0 {
		return document.Document{}, shared.ErrInvalidInput
	}
	if req.Amount != nil && req.Amount.IsNegative() {
		return document.Document{}, shared.ErrInvalidInput
	}
	if !document.ExtensionAllowed(req.FileName, s.limits.AllowedExtensions) {
		return document.Document{}, shared.ErrFileType
	}
	if int64(len(req.Data)) > s.limits.MaxFileBytes {
		return document.Document{}, shared.ErrFileTooLarge
	}

	contentType := mime.TypeByExtension(filepath.Ext(req.FileName))
	offload := s.objects != nil &&
		s.limits.OffloadThresholdBytes > 0 &&
		int64(len(req.Data)) > s.limits.OffloadThresholdBytes

	d := s.documents.Create(ctx, func(id string) document.Document {
		doc := document.Document{
			ID:         id,
			Name:       req.Name,
			Category:   req.Category,
			Amount:     req.Amount,
			Vendor:     req.Vendor,
			Notes:      req.Notes,
			FileName:   req.FileName,
			UploadedAt: time.Now(),
		}
		if offload {
			doc.StorageKey = "documents/" + id + filepath.Ext(req.FileName)
		} else {
			doc.FileContent = document.EncodeDataURL(contentType, req.Data)
		}
		return doc
	})

	if offload {
		if err := s.objects.Upload(ctx, d.StorageKey, req.Data, contentType); err != nil {
			// keep the record usable without the remote copy
			s.log.Warn("object storage upload failed, embedding file instead",
				zap.String("document_id", d.ID), zap.Error(err))
			updated, _ := s.documents.Update(ctx, d.ID, func(doc document.Document) document.Document {
				doc.StorageKey = ""
				doc.FileContent = document.EncodeDataURL(contentType, req.Data)
				return doc
			})
			return updated, nil
		}
	}
	return d, nil
}

// Update applies a partial metadata update; the stored file is immutable
func (s *Service) Update(ctx context.Context, id string, req UpdateDocumentRequest) (document.Document, error) {
	if req.Amount != nil && req.Amount.IsNegative() {
		return document.Document{}, shared.ErrInvalidInput
	}
	d, ok := s.documents.Update(ctx, id, func(d document.Document) document.Document {
		if req.Name != nil {
			d.Name = *req.Name
		}
		if req.Category != nil {
			d.Category = *req.Category
		}
		if req.Amount != nil {
			d.Amount = req.Amount
		}
		if req.Vendor != nil {
			d.Vendor = *req.Vendor
		}
		if req.Notes != nil {
			d.Notes = *req.Notes
		}
		return d
	})
	if !ok {
		return document.Document{}, shared.ErrNotFound
	}
	return d, nil
}

// Download returns the raw file content and its content type, fetching
// from object storage when the file was offloaded
func (s *Service) Download(ctx context.Context, id string) ([]byte, string, error) {
	d, ok := s.documents.Get(ctx, id)
	if !ok {
		return nil, "", shared.ErrNotFound
	}
	if d.StorageKey != "" {
		if s.objects == nil {
			return nil, "", shared.ErrInvalidState
		}
		return s.objects.Download(ctx, d.StorageKey)
	}
	contentType, data, err := document.DecodeDataURL(d.FileContent)
	if err != nil {
		return nil, "", err
	}
	return data, contentType, nil
}

// Delete removes a document and its offloaded file, if any. The derived
// expense, if any, stays in the budget until it is deleted there.
func (s *Service) Delete(ctx context.Context, id string) error {
	d, ok := s.documents.Get(ctx, id)
	if !ok {
		return shared.ErrNotFound
	}
	if d.StorageKey != "" && s.objects != nil {
		if err := s.objects.Delete(ctx, d.StorageKey); err != nil {
			s.log.Warn("failed to delete offloaded file",
				zap.String("document_id", id), zap.Error(err))
		}
	}
	s.documents.Delete(ctx, id)
	return nil
}

// SyncToBudget derives a budget expense from the document's amount
func (s *Service) SyncToBudget(ctx context.Context, id string) (budget.Expense, error) {
	d, ok := s.documents.Get(ctx, id)
	if !ok {
		return budget.Expense{}, shared.ErrNotFound
	}
	return s.bridge.SyncDocument(ctx, d)
}
