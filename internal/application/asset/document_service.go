package asset

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/assettrack/backend/internal/domain/asset"
	"github.com/assettrack/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ObjectStorageService defines the interface for object storage operations.
// Implemented by the infrastructure layer (S3-compatible storage).
type ObjectStorageService interface {
	// GenerateUploadURL generates a presigned URL for uploading a file
	GenerateUploadURL(ctx context.Context, storageKey, contentType string, expiresIn time.Duration) (string, time.Time, error)

	// GenerateDownloadURL generates a presigned URL for downloading a file
	GenerateDownloadURL(ctx context.Context, storageKey string, expiresIn time.Duration) (string, time.Time, error)

	// DeleteObject deletes an object from storage
	DeleteObject(ctx context.Context, storageKey string) error

	// ObjectExists checks if an object exists in storage
	ObjectExists(ctx context.Context, storageKey string) (bool, error)
}

// DocumentListingCache caches per-asset document listings with a TTL.
// Implementations must tolerate concurrent access; a miss returns
// (nil, false, nil).
type DocumentListingCache interface {
	Get(ctx context.Context, assetID uuid.UUID) ([]DocumentResponse, bool, error)
	Set(ctx context.Context, assetID uuid.UUID, docs []DocumentResponse) error
	Invalidate(ctx context.Context, assetID uuid.UUID) error
}

// DocumentServiceConfig holds configuration for the document service
type DocumentServiceConfig struct {
	// UploadURLExpiry is the duration for which upload URLs are valid
	UploadURLExpiry time.Duration
	// DownloadURLExpiry is the duration for which download URLs are valid
	DownloadURLExpiry time.Duration
	// MaxDocumentsPerAsset is the maximum number of active documents per asset
	MaxDocumentsPerAsset int
}

// DefaultDocumentServiceConfig returns the default configuration
func DefaultDocumentServiceConfig() DocumentServiceConfig {
	return DocumentServiceConfig{
		UploadURLExpiry:      15 * time.Minute,
		DownloadURLExpiry:    time.Hour,
		MaxDocumentsPerAsset: 50,
	}
}

// DocumentService handles asset document uploads and listings
type DocumentService struct {
	documentRepo   asset.DocumentRepository
	assetRepo      asset.Repository
	storageService ObjectStorageService
	listingCache   DocumentListingCache
	eventPublisher shared.EventPublisher
	config         DocumentServiceConfig
}

// NewDocumentService creates a new DocumentService
func NewDocumentService(
	documentRepo asset.DocumentRepository,
	assetRepo asset.Repository,
	storageService ObjectStorageService,
	listingCache DocumentListingCache,
) *DocumentService {
	return &DocumentService{
		documentRepo:   documentRepo,
		assetRepo:      assetRepo,
		storageService: storageService,
		listingCache:   listingCache,
		config:         DefaultDocumentServiceConfig(),
	}
}

// SetConfig sets the service configuration
func (s *DocumentService) SetConfig(config DocumentServiceConfig) {
	s.config = config
}

// SetEventPublisher sets the event publisher for publishing domain events
func (s *DocumentService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// InitiateUpload creates a pending document and returns a presigned upload URL
func (s *DocumentService) InitiateUpload(ctx context.Context, assetID uuid.UUID, req InitiateUploadRequest, createdBy *uuid.UUID) (*InitiateUploadResponse, error) {
	if _, err := s.assetRepo.FindByID(ctx, assetID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("ASSET_NOT_FOUND", "Asset not found")
		}
		return nil, err
	}

	active, err := s.documentRepo.FindByAsset(ctx, assetID, true)
	if err != nil {
		return nil, err
	}
	if len(active) >= s.config.MaxDocumentsPerAsset {
		return nil, shared.NewDomainError("DOCUMENT_LIMIT_EXCEEDED",
			fmt.Sprintf("Maximum %d documents per asset allowed", s.config.MaxDocumentsPerAsset))
	}

	storageKey := s.generateStorageKey(assetID, req.FileName)

	doc, err := asset.NewDocument(assetID, asset.DocumentType(req.Type), req.FileName, req.FileSize, req.ContentType, storageKey)
	if err != nil {
		return nil, err
	}
	if createdBy != nil {
		doc.SetCreatedBy(*createdBy)
	}

	uploadURL, expiresAt, err := s.storageService.GenerateUploadURL(ctx, storageKey, req.ContentType, s.config.UploadURLExpiry)
	if err != nil {
		return nil, err
	}

	if err := s.documentRepo.Save(ctx, doc); err != nil {
		return nil, err
	}

	return &InitiateUploadResponse{
		DocumentID: doc.ID,
		UploadURL:  uploadURL,
		StorageKey: storageKey,
		ExpiresAt:  expiresAt,
	}, nil
}

// ConfirmUpload verifies the object landed in storage and activates the
// document. The asset's cached listing is invalidated.
func (s *DocumentService) ConfirmUpload(ctx context.Context, documentID uuid.UUID) (*DocumentResponse, error) {
	doc, err := s.documentRepo.FindByID(ctx, documentID)
	if err != nil {
		return nil, err
	}

	exists, err := s.storageService.ObjectExists(ctx, doc.StorageKey)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, shared.NewDomainError("UPLOAD_NOT_FOUND", "File has not been uploaded to storage")
	}

	if err := doc.Confirm(); err != nil {
		return nil, err
	}

	if err := s.documentRepo.Save(ctx, doc); err != nil {
		return nil, err
	}

	s.invalidateListing(ctx, doc.AssetID)
	if s.eventPublisher != nil {
		_ = s.eventPublisher.Publish(ctx, doc.GetDomainEvents()...)
		doc.ClearDomainEvents()
	}

	return ToDocumentResponse(doc), nil
}

// ListByAsset returns the asset's active documents, served from the TTL
// cache when fresh.
func (s *DocumentService) ListByAsset(ctx context.Context, assetID uuid.UUID) ([]DocumentResponse, error) {
	if s.listingCache != nil {
		if cached, ok, err := s.listingCache.Get(ctx, assetID); err == nil && ok {
			return cached, nil
		}
	}

	if _, err := s.assetRepo.FindByID(ctx, assetID); err != nil {
		return nil, err
	}

	docs, err := s.documentRepo.FindByAsset(ctx, assetID, true)
	if err != nil {
		return nil, err
	}

	responses := make([]DocumentResponse, len(docs))
	for i := range docs {
		responses[i] = *ToDocumentResponse(&docs[i])
	}

	if s.listingCache != nil {
		_ = s.listingCache.Set(ctx, assetID, responses)
	}

	return responses, nil
}

// GetDownloadURL returns a presigned download URL for an active document
func (s *DocumentService) GetDownloadURL(ctx context.Context, documentID uuid.UUID) (*DownloadURLResponse, error) {
	doc, err := s.documentRepo.FindByID(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if !doc.IsActive() {
		return nil, shared.NewDomainError("DOCUMENT_NOT_ACTIVE", "Document is not available for download")
	}

	url, expiresAt, err := s.storageService.GenerateDownloadURL(ctx, doc.StorageKey, s.config.DownloadURLExpiry)
	if err != nil {
		return nil, err
	}

	return &DownloadURLResponse{DownloadURL: url, ExpiresAt: expiresAt}, nil
}

// Delete soft-deletes a document and removes the stored object. The asset's
// cached listing is invalidated.
func (s *DocumentService) Delete(ctx context.Context, documentID uuid.UUID) error {
	doc, err := s.documentRepo.FindByID(ctx, documentID)
	if err != nil {
		return err
	}

	if err := doc.Delete(); err != nil {
		return err
	}

	if err := s.documentRepo.Save(ctx, doc); err != nil {
		return err
	}

	// Best effort; the object is unreachable once the record is deleted
	_ = s.storageService.DeleteObject(ctx, doc.StorageKey)

	s.invalidateListing(ctx, doc.AssetID)

	return nil
}

// CleanupStalePending removes pending documents whose upload never completed.
// Returns the number of documents removed.
func (s *DocumentService) CleanupStalePending(ctx context.Context, olderThan time.Duration) (int, error) {
	stale, err := s.documentRepo.FindStalePending(ctx, olderThan)
	if err != nil {
		return 0, err
	}

	removed := 0
	for i := range stale {
		doc := &stale[i]
		if err := doc.Delete(); err != nil {
			continue
		}
		if err := s.documentRepo.Save(ctx, doc); err != nil {
			continue
		}
		_ = s.storageService.DeleteObject(ctx, doc.StorageKey)
		removed++
	}

	return removed, nil
}

func (s *DocumentService) invalidateListing(ctx context.Context, assetID uuid.UUID) {
	if s.listingCache == nil {
		return
	}
	_ = s.listingCache.Invalidate(ctx, assetID)
}

// generateStorageKey builds a collision-free storage key preserving the
// file extension
func (s *DocumentService) generateStorageKey(assetID uuid.UUID, fileName string) string {
	ext := strings.ToLower(filepath.Ext(fileName))
	return fmt.Sprintf("assets/%s/documents/%s%s", assetID, uuid.New(), ext)
}
