package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assettrack/backend/internal/interfaces/http/dto"
)

func TestSetupValidator(t *testing.T) {
	// Should not panic
	SetupValidator()

	v, ok := binding.Validator.Engine().(*validator.Validate)
	assert.True(t, ok)
	assert.NotNil(t, v)
}

func TestFormatValidationErrors(t *testing.T) {
	type createItemBody struct {
		SKU             string `json:"sku" binding:"required,min=1,max=50"`
		MinimumQuantity int    `json:"minimum_quantity" binding:"omitempty,min=0"`
	}

	SetupValidator()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/items", func(c *gin.Context) {
		var req createItemBody
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, FormatValidationErrors(err, "req-1"))
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	t.Run("returns field details for invalid input", func(t *testing.T) {
		body := strings.NewReader(`{"minimum_quantity": -1}`)
		req := httptest.NewRequest("POST", "/items", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp dto.Response
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		require.NoError(t, err)

		assert.False(t, resp.Success)
		require.NotNil(t, resp.Error)
		assert.Equal(t, dto.ErrCodeValidation, resp.Error.Code)
		assert.Equal(t, "Request validation failed", resp.Error.Message)
		assert.Equal(t, "req-1", resp.Error.RequestID)
		require.Len(t, resp.Error.Details, 2)

		// Field names come from json tags, not Go struct fields
		fields := []string{resp.Error.Details[0].Field, resp.Error.Details[1].Field}
		assert.Contains(t, fields, "sku")
		assert.Contains(t, fields, "minimum_quantity")
	})

	t.Run("passes valid input through", func(t *testing.T) {
		body := strings.NewReader(`{"sku": "FILTER-01", "minimum_quantity": 2}`)
		req := httptest.NewRequest("POST", "/items", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("malformed JSON produces no field details", func(t *testing.T) {
		body := strings.NewReader(`{"sku": `)
		req := httptest.NewRequest("POST", "/items", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp dto.Response
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		require.NoError(t, err)
		require.NotNil(t, resp.Error)
		assert.Empty(t, resp.Error.Details)
	})
}

func TestGetValidationMessage(t *testing.T) {
	type body struct {
		Email string `json:"email" binding:"required,email"`
		Name  string `json:"name" binding:"required,max=5"`
		Kind  string `json:"kind" binding:"required,oneof=a b"`
	}

	SetupValidator()

	v, ok := binding.Validator.Engine().(*validator.Validate)
	require.True(t, ok)

	err := v.Struct(body{Email: "nope", Name: "toolong", Kind: "c"})
	require.Error(t, err)

	validationErrors, ok := err.(validator.ValidationErrors)
	require.True(t, ok)

	messages := make(map[string]string)
	for _, e := range validationErrors {
		messages[e.Field()] = getValidationMessage(e)
	}

	assert.Equal(t, "Invalid email format", messages["email"])
	assert.Equal(t, "Must be at most 5 characters", messages["name"])
	assert.Equal(t, "Must be one of: a b", messages["kind"])
}
