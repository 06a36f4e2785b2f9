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
	"github.com/marketplace/backend/internal/interfaces/http/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupValidator(t *testing.T) {
	SetupValidator()

	v, ok := binding.Validator.Engine().(*validator.Validate)
	assert.True(t, ok)
	assert.NotNil(t, v)
}

type cartItemInput struct {
	ProductID int64 `json:"product_id" binding:"required,gt=0"`
	Quantity  int   `json:"quantity" binding:"omitempty,gte=1,lte=1000"`
}

func setupValidationRouter() *gin.Engine {
	SetupValidator()

	router := gin.New()
	router.Use(RequestID())
	router.POST("/test", func(c *gin.Context) {
		var req cartItemInput
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleValidationError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.NewSuccessResponse(req))
	})
	return router
}

func postJSON(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(RequestIDHeader, "req-42")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandleValidationError(t *testing.T) {
	router := setupValidationRouter()

	t.Run("reports each failing field by json name", func(t *testing.T) {
		w := postJSON(router, `{"product_id": 0, "quantity": 5000}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp dto.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
		require.NotNil(t, resp.Error)
		assert.Equal(t, dto.ErrCodeValidation, resp.Error.Code)
		assert.Equal(t, "req-42", resp.Error.RequestID)
		require.Len(t, resp.Error.Details, 2)
		assert.Equal(t, "product_id", resp.Error.Details[0].Field)
		assert.Equal(t, "This field is required", resp.Error.Details[0].Message)
		assert.Equal(t, "quantity", resp.Error.Details[1].Field)
		assert.Equal(t, "Must be less than or equal to 1000", resp.Error.Details[1].Message)
	})

	t.Run("malformed body is invalid json", func(t *testing.T) {
		w := postJSON(router, `{"product_id": `)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp dto.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.NotNil(t, resp.Error)
		assert.Equal(t, dto.ErrCodeInvalidJSON, resp.Error.Code)
		assert.Empty(t, resp.Error.Details)
	})

	t.Run("valid input passes", func(t *testing.T) {
		w := postJSON(router, `{"product_id": 3}`)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestGetValidationMessage(t *testing.T) {
	type input struct {
		Name     string `validate:"required"`
		Short    string `validate:"min=5"`
		Long     string `validate:"max=3"`
		Count    int    `validate:"gt=0"`
		Low      int    `validate:"gte=10"`
		High     int    `validate:"lte=100"`
		Under    int    `validate:"lt=5"`
		Status   string `validate:"oneof=pending completed"`
		Hostname string `validate:"hostname"`
	}

	err := validator.New().Struct(input{
		Short:    "ab",
		Long:     "abcdef",
		High:     101,
		Under:    9,
		Status:   "lost",
		Hostname: "not a host",
	})
	require.Error(t, err)

	got := map[string]string{}
	for _, e := range err.(validator.ValidationErrors) {
		got[e.Field()] = getValidationMessage(e)
	}

	assert.Equal(t, map[string]string{
		"Name":     "This field is required",
		"Short":    "Must be at least 5 characters",
		"Long":     "Must be at most 3 characters",
		"Count":    "Must be greater than 0",
		"Low":      "Must be greater than or equal to 10",
		"High":     "Must be less than or equal to 100",
		"Under":    "Must be less than 5",
		"Status":   "Must be one of: pending completed",
		"Hostname": "Invalid value",
	}, got)
}
