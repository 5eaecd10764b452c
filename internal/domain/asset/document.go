package asset

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/assettrack/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// MaxDocumentFileSize is the maximum allowed file size (5MB)
const MaxDocumentFileSize = 5 * 1024 * 1024

// DocumentType represents the type of asset document
type DocumentType string

const (
	DocumentTypeImage   DocumentType = "image"
	DocumentTypeInvoice DocumentType = "invoice"
	DocumentTypeManual  DocumentType = "manual"
	DocumentTypeOther   DocumentType = "other"
)

// IsValid checks if the document type is valid
func (t DocumentType) IsValid() bool {
	switch t {
	case DocumentTypeImage, DocumentTypeInvoice, DocumentTypeManual, DocumentTypeOther:
		return true
	default:
		return false
	}
}

// DocumentStatus represents the upload status of a document
type DocumentStatus string

const (
	DocumentStatusPending DocumentStatus = "pending"
	DocumentStatusActive  DocumentStatus = "active"
	DocumentStatusDeleted DocumentStatus = "deleted"
)

// allowedContentTypes lists the MIME types accepted for asset documents
var allowedContentTypes = map[string]bool{
	"image/jpeg":         true,
	"image/png":          true,
	"image/webp":         true,
	"image/gif":          true,
	"application/pdf":    true,
	"text/plain":         true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	"application/vnd.ms-excel": true,
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": true,
}

// Document is a file attached to an asset. It is created in pending status
// when a presigned upload URL is issued, and activated once the client
// confirms the upload.
type Document struct {
	shared.TrackedAggregateRoot
	AssetID     uuid.UUID      `gorm:"type:uuid;not null;index"`
	Type        DocumentType   `gorm:"type:varchar(20);not null"`
	Status      DocumentStatus `gorm:"type:varchar(20);not null;default:'pending';index"`
	FileName    string         `gorm:"type:varchar(255);not null"`
	FileSize    int64          `gorm:"not null"`
	ContentType string         `gorm:"type:varchar(150);not null"`
	StorageKey  string         `gorm:"type:varchar(500);not null;uniqueIndex"`
}

// TableName returns the table name for GORM
func (Document) TableName() string {
	return "asset_documents"
}

// NewDocument creates a new document in pending status
func NewDocument(assetID uuid.UUID, docType DocumentType, fileName string, fileSize int64, contentType, storageKey string) (*Document, error) {
	if assetID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ASSET", "Asset is required")
	}
	if !docType.IsValid() {
		return nil, shared.NewDomainError("INVALID_DOCUMENT_TYPE", "Unknown document type: "+string(docType))
	}
	if err := validateFileName(fileName); err != nil {
		return nil, err
	}
	if err := ValidateFileSize(fileSize); err != nil {
		return nil, err
	}
	if err := ValidateContentType(contentType); err != nil {
		return nil, err
	}
	if storageKey == "" {
		return nil, shared.NewDomainError("INVALID_STORAGE_KEY", "Storage key cannot be empty")
	}
	if docType == DocumentTypeImage && !strings.HasPrefix(contentType, "image/") {
		return nil, shared.NewDomainError("INVALID_CONTENT_TYPE", "Image documents must have an image content type")
	}

	return &Document{
		TrackedAggregateRoot: shared.NewTrackedAggregateRoot(),
		AssetID:              assetID,
		Type:                 docType,
		Status:               DocumentStatusPending,
		FileName:             fileName,
		FileSize:             fileSize,
		ContentType:          contentType,
		StorageKey:           storageKey,
	}, nil
}

// Confirm activates the document after a successful upload
func (d *Document) Confirm() error {
	if d.Status == DocumentStatusActive {
		return shared.NewDomainError("ALREADY_CONFIRMED", "Document is already confirmed")
	}
	if d.Status == DocumentStatusDeleted {
		return shared.NewDomainError("CANNOT_CONFIRM_DELETED", "Cannot confirm a deleted document")
	}

	d.Status = DocumentStatusActive
	d.UpdatedAt = time.Now()
	d.IncrementVersion()
	d.AddDomainEvent(NewDocumentUploadedEvent(d))

	return nil
}

// Delete marks the document as deleted (soft delete)
func (d *Document) Delete() error {
	if d.Status == DocumentStatusDeleted {
		return shared.NewDomainError("ALREADY_DELETED", "Document is already deleted")
	}

	d.Status = DocumentStatusDeleted
	d.UpdatedAt = time.Now()
	d.IncrementVersion()

	return nil
}

// IsPending returns true if the document is awaiting upload confirmation
func (d *Document) IsPending() bool {
	return d.Status == DocumentStatusPending
}

// IsActive returns true if the document is active
func (d *Document) IsActive() bool {
	return d.Status == DocumentStatusActive
}

// IsImage returns true if the document holds an image
func (d *Document) IsImage() bool {
	return d.Type == DocumentTypeImage
}

// ValidateFileSize rejects empty and oversized files
func ValidateFileSize(size int64) error {
	if size <= 0 {
		return shared.NewDomainError("INVALID_FILE_SIZE", "File size must be positive")
	}
	if size > MaxDocumentFileSize {
		return shared.NewDomainError("FILE_TOO_LARGE", "File size cannot exceed 5MB")
	}
	return nil
}

// ValidateContentType rejects MIME types outside the allowed set
func ValidateContentType(contentType string) error {
	if contentType == "" {
		return shared.NewDomainError("INVALID_CONTENT_TYPE", "Content type cannot be empty")
	}
	if !allowedContentTypes[strings.ToLower(contentType)] {
		return shared.NewDomainError("INVALID_CONTENT_TYPE", "Content type is not allowed: "+contentType)
	}
	return nil
}

func validateFileName(fileName string) error {
	if fileName == "" {
		return shared.NewDomainError("INVALID_FILE_NAME", "File name cannot be empty")
	}
	if len(fileName) > 255 {
		return shared.NewDomainError("INVALID_FILE_NAME", "File name cannot exceed 255 characters")
	}
	if filepath.Base(fileName) != fileName {
		return shared.NewDomainError("INVALID_FILE_NAME", "File name cannot contain path separators")
	}
	return nil
}
