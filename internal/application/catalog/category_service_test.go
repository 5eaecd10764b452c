package catalog

import (
	"context"
	"testing"

	"github.com/assettrack/backend/internal/domain/catalog"
	"github.com/assettrack/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCategoryService() (*CategoryService, *MockCategoryRepository, *MockSubCategoryRepository, *MockAssetRepository) {
	categoryRepo := new(MockCategoryRepository)
	subCategoryRepo := new(MockSubCategoryRepository)
	assetRepo := new(MockAssetRepository)
	return NewCategoryService(categoryRepo, subCategoryRepo, assetRepo), categoryRepo, subCategoryRepo, assetRepo
}

func TestCategoryServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("creates category", func(t *testing.T) {
		svc, categoryRepo, _, _ := newCategoryService()
		categoryRepo.On("ExistsByCode", ctx, "IT").Return(false, nil)
		categoryRepo.On("Save", ctx, mock.AnythingOfType("*catalog.Category")).Return(nil)

		resp, err := svc.Create(ctx, CreateCategoryRequest{Code: "IT", Name: "IT Equipment"})
		require.NoError(t, err)

		assert.Equal(t, "IT", resp.Code)
		assert.Equal(t, "IT Equipment", resp.Name)
		categoryRepo.AssertExpectations(t)
	})

	t.Run("rejects duplicate code", func(t *testing.T) {
		svc, categoryRepo, _, _ := newCategoryService()
		categoryRepo.On("ExistsByCode", ctx, "IT").Return(true, nil)

		_, err := svc.Create(ctx, CreateCategoryRequest{Code: "IT", Name: "IT Equipment"})
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
		categoryRepo.AssertNotCalled(t, "Save")
	})

	t.Run("stamps creator", func(t *testing.T) {
		svc, categoryRepo, _, _ := newCategoryService()
		userID := uuid.New()
		categoryRepo.On("ExistsByCode", ctx, "IT").Return(false, nil)
		categoryRepo.On("Save", ctx, mock.MatchedBy(func(c *catalog.Category) bool {
			return c.CreatedBy != nil && *c.CreatedBy == userID
		})).Return(nil)

		_, err := svc.Create(ctx, CreateCategoryRequest{Code: "IT", Name: "IT Equipment", CreatedBy: &userID})
		require.NoError(t, err)
		categoryRepo.AssertExpectations(t)
	})
}

func TestCategoryServiceDelete(t *testing.T) {
	ctx := context.Background()

	existing := func(t *testing.T) *catalog.Category {
		c, err := catalog.NewCategory("IT", "IT Equipment")
		require.NoError(t, err)
		return c
	}

	t.Run("deletes unused category", func(t *testing.T) {
		svc, categoryRepo, _, assetRepo := newCategoryService()
		c := existing(t)
		categoryRepo.On("FindByID", ctx, c.ID).Return(c, nil)
		categoryRepo.On("HasSubCategories", ctx, c.ID).Return(false, nil)
		assetRepo.On("CountByCategory", ctx, c.ID).Return(int64(0), nil)
		categoryRepo.On("Delete", ctx, c.ID).Return(nil)

		require.NoError(t, svc.Delete(ctx, c.ID))
		categoryRepo.AssertExpectations(t)
	})

	t.Run("refuses when subcategories exist", func(t *testing.T) {
		svc, categoryRepo, _, _ := newCategoryService()
		c := existing(t)
		categoryRepo.On("FindByID", ctx, c.ID).Return(c, nil)
		categoryRepo.On("HasSubCategories", ctx, c.ID).Return(true, nil)

		err := svc.Delete(ctx, c.ID)
		require.Error(t, err)
		categoryRepo.AssertNotCalled(t, "Delete")
	})

	t.Run("refuses when assets reference it", func(t *testing.T) {
		svc, categoryRepo, _, assetRepo := newCategoryService()
		c := existing(t)
		categoryRepo.On("FindByID", ctx, c.ID).Return(c, nil)
		categoryRepo.On("HasSubCategories", ctx, c.ID).Return(false, nil)
		assetRepo.On("CountByCategory", ctx, c.ID).Return(int64(3), nil)

		err := svc.Delete(ctx, c.ID)
		require.Error(t, err)
		categoryRepo.AssertNotCalled(t, "Delete")
	})

	t.Run("propagates not found", func(t *testing.T) {
		svc, categoryRepo, _, _ := newCategoryService()
		id := uuid.New()
		categoryRepo.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

		err := svc.Delete(ctx, id)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestSubCategoryServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("creates subcategory under active parent", func(t *testing.T) {
		categoryRepo := new(MockCategoryRepository)
		subCategoryRepo := new(MockSubCategoryRepository)
		svc := NewSubCategoryService(categoryRepo, subCategoryRepo, new(MockAssetRepository))

		parent, err := catalog.NewCategory("IT", "IT Equipment")
		require.NoError(t, err)

		categoryRepo.On("FindByID", ctx, parent.ID).Return(parent, nil)
		subCategoryRepo.On("ExistsByCode", ctx, parent.ID, "LAPTOPS").Return(false, nil)
		subCategoryRepo.On("Save", ctx, mock.AnythingOfType("*catalog.SubCategory")).Return(nil)

		resp, err := svc.Create(ctx, CreateSubCategoryRequest{
			CategoryID: parent.ID,
			Code:       "LAPTOPS",
			Name:       "Laptops",
		})
		require.NoError(t, err)
		assert.Equal(t, parent.ID, resp.CategoryID)
	})

	t.Run("maps missing parent to INVALID_PARENT", func(t *testing.T) {
		categoryRepo := new(MockCategoryRepository)
		svc := NewSubCategoryService(categoryRepo, new(MockSubCategoryRepository), new(MockAssetRepository))

		id := uuid.New()
		categoryRepo.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

		_, err := svc.Create(ctx, CreateSubCategoryRequest{CategoryID: id, Code: "X", Name: "X"})
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_PARENT", domainErr.Code)
	})
}
