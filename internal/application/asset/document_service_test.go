package asset

import (
	"context"
	"testing"
	"time"

	"github.com/assettrack/backend/internal/domain/asset"
	"github.com/assettrack/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDocumentServiceWithMocks() (*DocumentService, *MockDocumentRepository, *MockAssetRepository, *MockObjectStorageService, *MockDocumentListingCache) {
	documentRepo := new(MockDocumentRepository)
	assetRepo := new(MockAssetRepository)
	storage := new(MockObjectStorageService)
	cache := new(MockDocumentListingCache)
	svc := NewDocumentService(documentRepo, assetRepo, storage, cache)
	return svc, documentRepo, assetRepo, storage, cache
}

func mustDocument(t *testing.T, assetID uuid.UUID) *asset.Document {
	t.Helper()
	doc, err := asset.NewDocument(assetID, asset.DocumentTypeInvoice, "invoice.pdf", 2048, "application/pdf", "assets/x/documents/y.pdf")
	require.NoError(t, err)
	return doc
}

func TestDocumentService_InitiateUpload(t *testing.T) {
	ctx := context.Background()

	t.Run("creates pending document with upload URL", func(t *testing.T) {
		svc, documentRepo, assetRepo, storage, _ := newDocumentServiceWithMocks()
		a := mustAsset(t, uuid.New())
		expiresAt := time.Now().Add(15 * time.Minute)

		assetRepo.On("FindByID", ctx, a.ID).Return(a, nil)
		documentRepo.On("FindByAsset", ctx, a.ID, true).Return([]asset.Document{}, nil)
		storage.On("GenerateUploadURL", ctx, mock.AnythingOfType("string"), "application/pdf", 15*time.Minute).
			Return("https://storage.test/upload", expiresAt, nil)
		documentRepo.On("Save", ctx, mock.AnythingOfType("*asset.Document")).Return(nil)

		resp, err := svc.InitiateUpload(ctx, a.ID, InitiateUploadRequest{
			Type:        "invoice",
			FileName:    "invoice.pdf",
			FileSize:    2048,
			ContentType: "application/pdf",
		}, nil)

		require.NoError(t, err)
		assert.Equal(t, "https://storage.test/upload", resp.UploadURL)
		assert.NotEqual(t, uuid.Nil, resp.DocumentID)
		assert.Contains(t, resp.StorageKey, a.ID.String())
		documentRepo.AssertExpectations(t)
	})

	t.Run("rejects upload for unknown asset", func(t *testing.T) {
		svc, _, assetRepo, _, _ := newDocumentServiceWithMocks()
		assetID := uuid.New()

		assetRepo.On("FindByID", ctx, assetID).Return(nil, shared.ErrNotFound)

		_, err := svc.InitiateUpload(ctx, assetID, InitiateUploadRequest{
			Type:        "invoice",
			FileName:    "invoice.pdf",
			FileSize:    2048,
			ContentType: "application/pdf",
		}, nil)

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ASSET_NOT_FOUND", domainErr.Code)
	})

	t.Run("rejects oversized file", func(t *testing.T) {
		svc, documentRepo, assetRepo, _, _ := newDocumentServiceWithMocks()
		a := mustAsset(t, uuid.New())

		assetRepo.On("FindByID", ctx, a.ID).Return(a, nil)
		documentRepo.On("FindByAsset", ctx, a.ID, true).Return([]asset.Document{}, nil)

		_, err := svc.InitiateUpload(ctx, a.ID, InitiateUploadRequest{
			Type:        "invoice",
			FileName:    "invoice.pdf",
			FileSize:    asset.MaxDocumentFileSize + 1,
			ContentType: "application/pdf",
		}, nil)

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "FILE_TOO_LARGE", domainErr.Code)
	})

	t.Run("enforces document limit per asset", func(t *testing.T) {
		svc, documentRepo, assetRepo, _, _ := newDocumentServiceWithMocks()
		a := mustAsset(t, uuid.New())
		svc.SetConfig(DocumentServiceConfig{
			UploadURLExpiry:      15 * time.Minute,
			DownloadURLExpiry:    time.Hour,
			MaxDocumentsPerAsset: 1,
		})
		existing := mustDocument(t, a.ID)

		assetRepo.On("FindByID", ctx, a.ID).Return(a, nil)
		documentRepo.On("FindByAsset", ctx, a.ID, true).Return([]asset.Document{*existing}, nil)

		_, err := svc.InitiateUpload(ctx, a.ID, InitiateUploadRequest{
			Type:        "invoice",
			FileName:    "invoice.pdf",
			FileSize:    2048,
			ContentType: "application/pdf",
		}, nil)

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "DOCUMENT_LIMIT_EXCEEDED", domainErr.Code)
	})
}

func TestDocumentService_ConfirmUpload(t *testing.T) {
	ctx := context.Background()

	t.Run("activates document and invalidates listing", func(t *testing.T) {
		svc, documentRepo, _, storage, cache := newDocumentServiceWithMocks()
		doc := mustDocument(t, uuid.New())

		documentRepo.On("FindByID", ctx, doc.ID).Return(doc, nil)
		storage.On("ObjectExists", ctx, doc.StorageKey).Return(true, nil)
		documentRepo.On("Save", ctx, doc).Return(nil)
		cache.On("Invalidate", ctx, doc.AssetID).Return(nil)

		resp, err := svc.ConfirmUpload(ctx, doc.ID)

		require.NoError(t, err)
		assert.Equal(t, string(asset.DocumentStatusActive), resp.Status)
		cache.AssertExpectations(t)
	})

	t.Run("fails when object missing from storage", func(t *testing.T) {
		svc, documentRepo, _, storage, cache := newDocumentServiceWithMocks()
		doc := mustDocument(t, uuid.New())

		documentRepo.On("FindByID", ctx, doc.ID).Return(doc, nil)
		storage.On("ObjectExists", ctx, doc.StorageKey).Return(false, nil)

		_, err := svc.ConfirmUpload(ctx, doc.ID)

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "UPLOAD_NOT_FOUND", domainErr.Code)
		documentRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		cache.AssertNotCalled(t, "Invalidate", mock.Anything, mock.Anything)
	})

	t.Run("rejects double confirmation", func(t *testing.T) {
		svc, documentRepo, _, storage, _ := newDocumentServiceWithMocks()
		doc := mustDocument(t, uuid.New())
		require.NoError(t, doc.Confirm())

		documentRepo.On("FindByID", ctx, doc.ID).Return(doc, nil)
		storage.On("ObjectExists", ctx, doc.StorageKey).Return(true, nil)

		_, err := svc.ConfirmUpload(ctx, doc.ID)

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ALREADY_CONFIRMED", domainErr.Code)
	})
}

func TestDocumentService_ListByAsset(t *testing.T) {
	ctx := context.Background()

	t.Run("serves cached listing without repository access", func(t *testing.T) {
		svc, documentRepo, assetRepo, _, cache := newDocumentServiceWithMocks()
		assetID := uuid.New()
		cached := []DocumentResponse{{ID: uuid.New(), AssetID: assetID, FileName: "invoice.pdf"}}

		cache.On("Get", ctx, assetID).Return(cached, true, nil)

		docs, err := svc.ListByAsset(ctx, assetID)

		require.NoError(t, err)
		assert.Equal(t, cached, docs)
		documentRepo.AssertNotCalled(t, "FindByAsset", mock.Anything, mock.Anything, mock.Anything)
		assetRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("populates cache on miss", func(t *testing.T) {
		svc, documentRepo, assetRepo, _, cache := newDocumentServiceWithMocks()
		a := mustAsset(t, uuid.New())
		doc := mustDocument(t, a.ID)
		require.NoError(t, doc.Confirm())

		cache.On("Get", ctx, a.ID).Return(nil, false, nil)
		assetRepo.On("FindByID", ctx, a.ID).Return(a, nil)
		documentRepo.On("FindByAsset", ctx, a.ID, true).Return([]asset.Document{*doc}, nil)
		cache.On("Set", ctx, a.ID, mock.AnythingOfType("[]asset.DocumentResponse")).Return(nil)

		docs, err := svc.ListByAsset(ctx, a.ID)

		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, "invoice.pdf", docs[0].FileName)
		cache.AssertExpectations(t)
	})

	t.Run("works without a cache configured", func(t *testing.T) {
		documentRepo := new(MockDocumentRepository)
		assetRepo := new(MockAssetRepository)
		storage := new(MockObjectStorageService)
		svc := NewDocumentService(documentRepo, assetRepo, storage, nil)
		a := mustAsset(t, uuid.New())

		assetRepo.On("FindByID", ctx, a.ID).Return(a, nil)
		documentRepo.On("FindByAsset", ctx, a.ID, true).Return([]asset.Document{}, nil)

		docs, err := svc.ListByAsset(ctx, a.ID)

		require.NoError(t, err)
		assert.Empty(t, docs)
	})
}

func TestDocumentService_GetDownloadURL(t *testing.T) {
	ctx := context.Background()

	t.Run("returns presigned URL for active document", func(t *testing.T) {
		svc, documentRepo, _, storage, _ := newDocumentServiceWithMocks()
		doc := mustDocument(t, uuid.New())
		require.NoError(t, doc.Confirm())
		expiresAt := time.Now().Add(time.Hour)

		documentRepo.On("FindByID", ctx, doc.ID).Return(doc, nil)
		storage.On("GenerateDownloadURL", ctx, doc.StorageKey, time.Hour).
			Return("https://storage.test/download", expiresAt, nil)

		resp, err := svc.GetDownloadURL(ctx, doc.ID)

		require.NoError(t, err)
		assert.Equal(t, "https://storage.test/download", resp.DownloadURL)
	})

	t.Run("refuses pending document", func(t *testing.T) {
		svc, documentRepo, _, storage, _ := newDocumentServiceWithMocks()
		doc := mustDocument(t, uuid.New())

		documentRepo.On("FindByID", ctx, doc.ID).Return(doc, nil)

		_, err := svc.GetDownloadURL(ctx, doc.ID)

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "DOCUMENT_NOT_ACTIVE", domainErr.Code)
		storage.AssertNotCalled(t, "GenerateDownloadURL", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestDocumentService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("soft-deletes document, removes object and invalidates listing", func(t *testing.T) {
		svc, documentRepo, _, storage, cache := newDocumentServiceWithMocks()
		doc := mustDocument(t, uuid.New())
		require.NoError(t, doc.Confirm())

		documentRepo.On("FindByID", ctx, doc.ID).Return(doc, nil)
		documentRepo.On("Save", ctx, doc).Return(nil)
		storage.On("DeleteObject", ctx, doc.StorageKey).Return(nil)
		cache.On("Invalidate", ctx, doc.AssetID).Return(nil)

		err := svc.Delete(ctx, doc.ID)

		require.NoError(t, err)
		assert.False(t, doc.IsActive())
		cache.AssertExpectations(t)
	})
}

func TestDocumentService_CleanupStalePending(t *testing.T) {
	ctx := context.Background()

	t.Run("removes stale pending documents", func(t *testing.T) {
		svc, documentRepo, _, storage, _ := newDocumentServiceWithMocks()
		doc := mustDocument(t, uuid.New())

		documentRepo.On("FindStalePending", ctx, time.Hour).Return([]asset.Document{*doc}, nil)
		documentRepo.On("Save", ctx, mock.AnythingOfType("*asset.Document")).Return(nil)
		storage.On("DeleteObject", ctx, doc.StorageKey).Return(nil)

		removed, err := svc.CleanupStalePending(ctx, time.Hour)

		require.NoError(t, err)
		assert.Equal(t, 1, removed)
	})
}
