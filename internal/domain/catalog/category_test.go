package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCategory(t *testing.T) {
	t.Run("creates category with valid inputs", func(t *testing.T) {
		category, err := NewCategory("ELECTRONICS", "Electronics")
		require.NoError(t, err)
		require.NotNil(t, category)

		assert.Equal(t, "ELECTRONICS", category.Code)
		assert.Equal(t, "Electronics", category.Name)
		assert.Equal(t, CategoryStatusActive, category.Status)
		assert.NotEmpty(t, category.ID)
	})

	t.Run("converts code to uppercase", func(t *testing.T) {
		category, err := NewCategory("electronics", "Electronics")
		require.NoError(t, err)
		assert.Equal(t, "ELECTRONICS", category.Code)
	})

	t.Run("publishes CategoryCreated event", func(t *testing.T) {
		category, err := NewCategory("TEST", "Test")
		require.NoError(t, err)

		events := category.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeCategoryCreated, events[0].EventType())
	})

	t.Run("fails with empty code", func(t *testing.T) {
		_, err := NewCategory("", "Electronics")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot be empty")
	})

	t.Run("fails with code too long", func(t *testing.T) {
		longCode := "ABCDEFGHIJKLMNOPQRSTUVWXYZ1234567890ABCDEFGHIJKLMNOP"
		_, err := NewCategory(longCode, "Electronics")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot exceed 50 characters")
	})

	t.Run("fails with invalid code characters", func(t *testing.T) {
		_, err := NewCategory("ELEC@TRONICS", "Electronics")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "can only contain letters")
	})

	t.Run("fails with empty name", func(t *testing.T) {
		_, err := NewCategory("ELECTRONICS", "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot be empty")
	})

	t.Run("accepts code with underscore and hyphen", func(t *testing.T) {
		category, err := NewCategory("ELEC_TRONICS-001", "Electronics")
		require.NoError(t, err)
		assert.Equal(t, "ELEC_TRONICS-001", category.Code)
	})
}

func TestCategoryUpdate(t *testing.T) {
	t.Run("updates name and description", func(t *testing.T) {
		category, err := NewCategory("IT", "IT Equipment")
		require.NoError(t, err)
		originalVersion := category.Version

		err = category.Update("Computing Equipment", "Laptops, desktops and servers")
		require.NoError(t, err)

		assert.Equal(t, "Computing Equipment", category.Name)
		assert.Equal(t, "Laptops, desktops and servers", category.Description)
		assert.Equal(t, originalVersion+1, category.Version)
	})

	t.Run("fails with empty name", func(t *testing.T) {
		category, err := NewCategory("IT", "IT Equipment")
		require.NoError(t, err)

		err = category.Update("", "desc")
		require.Error(t, err)
	})
}

func TestCategoryActivation(t *testing.T) {
	t.Run("deactivates active category", func(t *testing.T) {
		category, err := NewCategory("IT", "IT Equipment")
		require.NoError(t, err)

		err = category.Deactivate()
		require.NoError(t, err)
		assert.Equal(t, CategoryStatusInactive, category.Status)
		assert.False(t, category.IsActive())
	})

	t.Run("fails to deactivate inactive category", func(t *testing.T) {
		category, err := NewCategory("IT", "IT Equipment")
		require.NoError(t, err)
		require.NoError(t, category.Deactivate())

		err = category.Deactivate()
		require.Error(t, err)
	})

	t.Run("reactivates inactive category", func(t *testing.T) {
		category, err := NewCategory("IT", "IT Equipment")
		require.NoError(t, err)
		require.NoError(t, category.Deactivate())

		err = category.Activate()
		require.NoError(t, err)
		assert.True(t, category.IsActive())
	})

	t.Run("fails to activate active category", func(t *testing.T) {
		category, err := NewCategory("IT", "IT Equipment")
		require.NoError(t, err)

		err = category.Activate()
		require.Error(t, err)
	})
}

func TestNewSubCategory(t *testing.T) {
	parent, err := NewCategory("IT", "IT Equipment")
	require.NoError(t, err)

	t.Run("creates subcategory under active parent", func(t *testing.T) {
		sub, err := NewSubCategory(parent, "laptops", "Laptops")
		require.NoError(t, err)
		require.NotNil(t, sub)

		assert.Equal(t, parent.ID, sub.CategoryID)
		assert.Equal(t, "LAPTOPS", sub.Code)
		assert.Equal(t, "Laptops", sub.Name)
		assert.Equal(t, CategoryStatusActive, sub.Status)
	})

	t.Run("fails with nil parent", func(t *testing.T) {
		_, err := NewSubCategory(nil, "LAPTOPS", "Laptops")
		require.Error(t, err)
	})

	t.Run("fails with inactive parent", func(t *testing.T) {
		inactive, err := NewCategory("FURNITURE", "Furniture")
		require.NoError(t, err)
		require.NoError(t, inactive.Deactivate())

		_, err = NewSubCategory(inactive, "DESKS", "Desks")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not active")
	})

	t.Run("fails with invalid code", func(t *testing.T) {
		_, err := NewSubCategory(parent, "LAP TOPS", "Laptops")
		require.Error(t, err)
	})
}

func TestSubCategoryUpdate(t *testing.T) {
	parent, err := NewCategory("IT", "IT Equipment")
	require.NoError(t, err)
	sub, err := NewSubCategory(parent, "LAPTOPS", "Laptops")
	require.NoError(t, err)

	t.Run("updates name and description", func(t *testing.T) {
		err := sub.Update("Notebooks", "Portable computers")
		require.NoError(t, err)
		assert.Equal(t, "Notebooks", sub.Name)
		assert.Equal(t, "Portable computers", sub.Description)
	})

	t.Run("toggles status", func(t *testing.T) {
		require.NoError(t, sub.Deactivate())
		assert.Equal(t, CategoryStatusInactive, sub.Status)
		require.NoError(t, sub.Activate())
		assert.Equal(t, CategoryStatusActive, sub.Status)
	})
}
