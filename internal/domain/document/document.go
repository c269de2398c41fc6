package document

import (
	"encoding/base64"
	"errors"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ErrNotDataURL is returned when decoding content that is not a data URL
var ErrNotDataURL = errors.New("content is not a data URL")

// Key is the fixed storage key for the document collection
const Key = "bridallink_documents"

// DefaultAllowedExtensions is the upload allow list used when the
// configuration does not override it
var DefaultAllowedExtensions = []string{".pdf", ".doc", ".docx", ".jpg", ".jpeg", ".png", ".txt", ".csv"}

// DefaultMaxFileBytes caps uploaded file size at 5 MiB
const DefaultMaxFileBytes = 5 << 20

// Document is a stored wedding document (contract, invoice, receipt).
// Small files are embedded as a data URL; larger files may keep only an
// object-storage key. A document with an amount can be synced into the
// budget as a derived expense.
type Document struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Category    string           `json:"category,omitempty"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Vendor      string           `json:"vendor,omitempty"`
	Notes       string           `json:"notes,omitempty"`
	FileName    string           `json:"fileName,omitempty"`
	FileContent string           `json:"fileContent,omitempty"` // data URL
	StorageKey  string           `json:"storageKey,omitempty"`
	UploadedAt  time.Time        `json:"uploadedAt"`
}

// RecordID returns the document identifier
func (d Document) RecordID() string {
	return d.ID
}

// SyncAmount returns the amount to sync into the budget, or false when
// the document carries no amount
func (d Document) SyncAmount() (decimal.Decimal, bool) {
	if d.Amount == nil {
		return decimal.Zero, false
	}
	return *d.Amount, true
}

// ExtensionAllowed reports whether the file name's extension is in the
// allow list. Matching is case-insensitive.
func ExtensionAllowed(fileName string, allowed []string) bool {
	ext := strings.ToLower(filepath.Ext(fileName))
	if ext == "" {
		return false
	}
	for _, a := range allowed {
		if ext == strings.ToLower(a) {
			return true
		}
	}
	return false
}

// EncodeDataURL encodes raw file content as an embeddable data URL
func EncodeDataURL(contentType string, data []byte) string {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// DecodeDataURL extracts the content type and raw bytes from a data URL
func DecodeDataURL(dataURL string) (contentType string, data []byte, err error) {
	rest, ok := strings.CutPrefix(dataURL, "data:")
	if !ok {
		return "", nil, ErrNotDataURL
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, ErrNotDataURL
	}
	contentType = strings.TrimSuffix(meta, ";base64")
	data, err = base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, err
	}
	return contentType, data, nil
}
