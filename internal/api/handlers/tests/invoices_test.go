package routes_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"invoice-api/config"
	"invoice-api/internal/api/handlers"
	"invoice-api/internal/api/middleware"
	"invoice-api/internal/api/routes"
	"invoice-api/internal/models"
	"invoice-api/internal/services"
	"invoice-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

// MockInvoiceService is a mock implementation of services.InvoiceService
type MockInvoiceService struct {
	mock.Mock
}

func (m *MockInvoiceService) CreateInvoice(ctx context.Context, req *dto.CreateInvoiceRequest) (*models.Invoice, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Invoice), args.Error(1)
}

func (m *MockInvoiceService) CreateDraftInvoice(ctx context.Context, req *dto.DraftInvoiceRequest) (*models.Invoice, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Invoice), args.Error(1)
}

func (m *MockInvoiceService) UpdateInvoice(ctx context.Context, id uuid.UUID, req *dto.CreateInvoiceRequest) (*models.Invoice, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Invoice), args.Error(1)
}

func (m *MockInvoiceService) MarkInvoiceAsPaid(ctx context.Context, id uuid.UUID) (*models.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Invoice), args.Error(1)
}

func (m *MockInvoiceService) GetInvoiceByID(ctx context.Context, id uuid.UUID) (*models.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Invoice), args.Error(1)
}

func (m *MockInvoiceService) ListInvoices(ctx context.Context) ([]models.Invoice, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Invoice), args.Error(1)
}

func (m *MockInvoiceService) ListOverdueInvoices(ctx context.Context) ([]models.Invoice, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Invoice), args.Error(1)
}

func (m *MockInvoiceService) DeleteInvoice(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Ensure mock implements the interface (compile-time check)
var _ services.InvoiceService = (*MockInvoiceService)(nil)

// setupTestRouter wires the real handler, validator and auth middleware
// around a mocked service, the same shape the application container
// builds at startup.
func setupTestRouter(authBypass bool) (*gin.Engine, *MockInvoiceService) {
	gin.SetMode(gin.TestMode)

	mockService := new(MockInvoiceService)
	validate := validator.New()
	handlers.RegisterFieldNames(validate)
	responder := handlers.NewErrorResponder(false)
	handler := handlers.NewInvoiceHandler(mockService, validate, responder, zerolog.Nop())

	jwtCfg := config.JWTConfig{Secret: testSecret, AuthBypass: authBypass}
	authMiddleware := middleware.JWTAuthMiddleware(jwtCfg, zerolog.Nop())

	router := gin.New()
	api := router.Group("/api")
	routes.RegisterInvoiceRoutes(api, handler, authMiddleware)
	return router, mockService
}

func doJSONRequest(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	request := httptest.NewRequest(method, path, reader)
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Authorization", "Bearer test-token")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	return recorder
}

func validCreateBody() map[string]any {
	address := map[string]any{
		"street": "19 Union Terrace", "city": "London", "postCode": "E1 3EZ", "country": "United Kingdom",
	}
	return map[string]any{
		"description":   "Graphic Design",
		"paymentTerms":  30,
		"clientName":    "Alex Grim",
		"clientEmail":   "alexgrim@mail.com",
		"status":        "pending",
		"senderAddress": address,
		"clientAddress": address,
		"items": []map[string]any{
			{"name": "Banner Design", "quantity": 1, "price": 156.00, "total": 156.00},
		},
	}
}

func TestRegisterInvoiceRoutes(t *testing.T) {
	router, _ := setupTestRouter(true)

	expectedRoutes := []struct {
		Method string
		Path   string
	}{
		{http.MethodGet, "/api/invoices"},
		{http.MethodGet, "/api/invoices/overdue"},
		{http.MethodPost, "/api/invoice"},
		{http.MethodPost, "/api/invoice/saveAsDraft"},
		{http.MethodPost, "/api/invoice/:invoiceId"},
		{http.MethodPut, "/api/invoice/markAsPaid/:invoiceId"},
		{http.MethodGet, "/api/invoice/:id"},
		{http.MethodDelete, "/api/invoice/:id"},
	}

	registeredMap := make(map[string]bool)
	for _, routeInfo := range router.Routes() {
		registeredMap[routeInfo.Method+" "+routeInfo.Path] = true
	}

	assert.Len(t, router.Routes(), len(expectedRoutes))
	for _, expected := range expectedRoutes {
		assert.True(t, registeredMap[expected.Method+" "+expected.Path],
			"Expected route %s %s to be registered", expected.Method, expected.Path)
	}
}

func TestAuthMiddleware(t *testing.T) {
	t.Run("Missing Authorization header", func(t *testing.T) {
		router, mockService := setupTestRouter(false)

		request := httptest.NewRequest(http.MethodGet, "/api/invoices", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Auth token is not supplied")
		mockService.AssertNotCalled(t, "ListInvoices")
	})

	t.Run("Malformed Authorization header", func(t *testing.T) {
		router, mockService := setupTestRouter(false)

		request := httptest.NewRequest(http.MethodGet, "/api/invoices", nil)
		request.Header.Set("Authorization", "not-a-bearer-token")
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Invalid Authorization header format")
		mockService.AssertNotCalled(t, "ListInvoices")
	})

	t.Run("Invalid token signature", func(t *testing.T) {
		router, mockService := setupTestRouter(false)

		token, err := generateTestToken("wrong-secret", time.Hour)
		require.NoError(t, err)

		request := httptest.NewRequest(http.MethodGet, "/api/invoices", nil)
		request.Header.Set("Authorization", "Bearer "+token)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Invalid token")
		mockService.AssertNotCalled(t, "ListInvoices")
	})

	t.Run("Valid token reaches the handler", func(t *testing.T) {
		router, mockService := setupTestRouter(false)
		mockService.On("ListInvoices", mock.Anything).Return([]models.Invoice{}, nil).Once()

		token, err := generateTestToken(testSecret, time.Hour)
		require.NoError(t, err)

		request := httptest.NewRequest(http.MethodGet, "/api/invoices", nil)
		request.Header.Set("Authorization", "Bearer "+token)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Bypass skips verification but still requires the header", func(t *testing.T) {
		router, mockService := setupTestRouter(true)
		mockService.On("ListInvoices", mock.Anything).Return([]models.Invoice{}, nil).Once()

		// Any well-formed bearer value passes in bypass mode.
		recorder := doJSONRequest(router, http.MethodGet, "/api/invoices", nil)
		assert.Equal(t, http.StatusOK, recorder.Code)

		// The header itself is never optional.
		request := httptest.NewRequest(http.MethodGet, "/api/invoices", nil)
		missing := httptest.NewRecorder()
		router.ServeHTTP(missing, request)
		assert.Equal(t, http.StatusUnauthorized, missing.Code)

		mockService.AssertExpectations(t)
	})
}

func TestInvoiceHandler_CreateInvoice(t *testing.T) {
	t.Run("Success - payment due formatted as DD MMM YYYY", func(t *testing.T) {
		router, mockService := setupTestRouter(true)

		due := time.Date(2021, time.September, 20, 0, 0, 0, 0, time.UTC)
		created := &models.Invoice{
			ID:         uuid.New(),
			Code:       "XM9141",
			Status:     models.InvoiceStatusPending,
			Total:      556.00,
			PaymentDue: &due,
			CreatedAt:  due.AddDate(0, 0, -30),
			UpdatedAt:  due.AddDate(0, 0, -30),
		}
		mockService.On("CreateInvoice", mock.Anything, mock.AnythingOfType("*dto.CreateInvoiceRequest")).
			Return(created, nil).Once()

		recorder := doJSONRequest(router, http.MethodPost, "/api/invoice", validCreateBody())

		assert.Equal(t, http.StatusCreated, recorder.Code)

		var response dto.InvoiceResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		assert.Equal(t, "XM9141", response.Code)
		assert.Equal(t, "20 Sep 2021", response.PaymentDue)
		assert.Equal(t, 556.00, response.Total)

		mockService.AssertExpectations(t)
	})

	t.Run("Validation failure aggregates every field error", func(t *testing.T) {
		router, mockService := setupTestRouter(true)

		body := validCreateBody()
		delete(body, "description")
		delete(body, "clientEmail")
		body["status"] = "draft" // rejected by the strict schema

		recorder := doJSONRequest(router, http.MethodPost, "/api/invoice", body)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)

		var response map[string]string
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		assert.Contains(t, response["error"], `"description" is required`)
		assert.Contains(t, response["error"], `"clientEmail" is required`)
		assert.Contains(t, response["error"], `"status" must be one of [paid pending]`)

		mockService.AssertNotCalled(t, "CreateInvoice")
	})

	t.Run("Zero-valued item fields pass validation", func(t *testing.T) {
		router, mockService := setupTestRouter(true)

		body := validCreateBody()
		body["items"] = []map[string]any{
			{"name": "Free Consultation", "quantity": 1, "price": 0, "total": 0},
		}
		mockService.On("CreateInvoice", mock.Anything, mock.AnythingOfType("*dto.CreateInvoiceRequest")).
			Return(&models.Invoice{ID: uuid.New(), Code: "AB0001"}, nil).Once()

		recorder := doJSONRequest(router, http.MethodPost, "/api/invoice", body)

		assert.Equal(t, http.StatusCreated, recorder.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("Service failure yields a generic 500", func(t *testing.T) {
		router, mockService := setupTestRouter(true)

		mockService.On("CreateInvoice", mock.Anything, mock.AnythingOfType("*dto.CreateInvoiceRequest")).
			Return(nil, errors.New("connection refused")).Once()

		recorder := doJSONRequest(router, http.MethodPost, "/api/invoice", validCreateBody())

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Failed to create invoice")

		mockService.AssertExpectations(t)
	})
}

func TestInvoiceHandler_CreateDraftInvoice(t *testing.T) {
	t.Run("Empty body is accepted", func(t *testing.T) {
		router, mockService := setupTestRouter(true)

		draft := &models.Invoice{ID: uuid.New(), Code: "FV2353", Status: models.InvoiceStatusDraft}
		mockService.On("CreateDraftInvoice", mock.Anything, mock.AnythingOfType("*dto.DraftInvoiceRequest")).
			Return(draft, nil).Once()

		recorder := doJSONRequest(router, http.MethodPost, "/api/invoice/saveAsDraft", map[string]any{})

		assert.Equal(t, http.StatusCreated, recorder.Code)

		var response models.Invoice
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		assert.Equal(t, models.InvoiceStatusDraft, response.Status)
		assert.Equal(t, "FV2353", response.Code)

		mockService.AssertExpectations(t)
	})

	t.Run("Non-draft status is rejected", func(t *testing.T) {
		router, mockService := setupTestRouter(true)

		recorder := doJSONRequest(router, http.MethodPost, "/api/invoice/saveAsDraft", map[string]any{
			"status": "pending",
		})

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "must be one of [draft]")
		mockService.AssertNotCalled(t, "CreateDraftInvoice")
	})

	t.Run("Service failure yields the draft-specific 500", func(t *testing.T) {
		router, mockService := setupTestRouter(true)

		mockService.On("CreateDraftInvoice", mock.Anything, mock.AnythingOfType("*dto.DraftInvoiceRequest")).
			Return(nil, errors.New("connection refused")).Once()

		recorder := doJSONRequest(router, http.MethodPost, "/api/invoice/saveAsDraft", map[string]any{})

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Failed to save draft invoice.")

		mockService.AssertExpectations(t)
	})
}

func TestInvoiceHandler_UpdateInvoice(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		router, mockService := setupTestRouter(true)
		id := uuid.New()

		updated := &models.Invoice{ID: id, Code: "XM9141", Status: models.InvoiceStatusPending}
		mockService.On("UpdateInvoice", mock.Anything, id, mock.AnythingOfType("*dto.CreateInvoiceRequest")).
			Return(updated, nil).Once()

		recorder := doJSONRequest(router, http.MethodPost, "/api/invoice/"+id.String(), validCreateBody())

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response models.Invoice
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		assert.Equal(t, id, response.ID)

		mockService.AssertExpectations(t)
	})

	t.Run("Malformed ID short-circuits before the service", func(t *testing.T) {
		router, mockService := setupTestRouter(true)

		recorder := doJSONRequest(router, http.MethodPost, "/api/invoice/not-a-uuid", validCreateBody())

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Invalid invoice ID")
		mockService.AssertNotCalled(t, "UpdateInvoice")
	})

	t.Run("Unknown invoice", func(t *testing.T) {
		router, mockService := setupTestRouter(true)
		id := uuid.New()

		mockService.On("UpdateInvoice", mock.Anything, id, mock.AnythingOfType("*dto.CreateInvoiceRequest")).
			Return(nil, fmt.Errorf("%w: updating invoice", services.ErrNotFound)).Once()

		recorder := doJSONRequest(router, http.MethodPost, "/api/invoice/"+id.String(), validCreateBody())

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Invoice not found")

		mockService.AssertExpectations(t)
	})
}

func TestInvoiceHandler_MarkInvoiceAsPaid(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		router, mockService := setupTestRouter(true)
		id := uuid.New()

		paid := &models.Invoice{ID: id, Code: "RT3080", Status: models.InvoiceStatusPaid}
		mockService.On("MarkInvoiceAsPaid", mock.Anything, id).Return(paid, nil).Once()

		recorder := doJSONRequest(router, http.MethodPut, "/api/invoice/markAsPaid/"+id.String(), nil)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response models.Invoice
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		assert.Equal(t, models.InvoiceStatusPaid, response.Status)

		mockService.AssertExpectations(t)
	})

	t.Run("Malformed ID", func(t *testing.T) {
		router, mockService := setupTestRouter(true)

		recorder := doJSONRequest(router, http.MethodPut, "/api/invoice/markAsPaid/123", nil)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		mockService.AssertNotCalled(t, "MarkInvoiceAsPaid")
	})
}

func TestInvoiceHandler_ListInvoices(t *testing.T) {
	t.Run("Success - payment due formatted as YYYY-MM-DD", func(t *testing.T) {
		router, mockService := setupTestRouter(true)

		due := time.Date(2021, time.August, 19, 0, 0, 0, 0, time.UTC)
		invoices := []models.Invoice{
			{ID: uuid.New(), Code: "RT3080", Status: models.InvoiceStatusPaid, Total: 1800.90, PaymentDue: &due},
		}
		mockService.On("ListInvoices", mock.Anything).Return(invoices, nil).Once()

		recorder := doJSONRequest(router, http.MethodGet, "/api/invoices", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response []dto.InvoiceResponse
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		require.Len(t, response, 1)
		assert.Equal(t, "RT3080", response[0].Code)
		assert.Equal(t, "2021-08-19", response[0].PaymentDue)

		mockService.AssertExpectations(t)
	})

	t.Run("Success - empty list", func(t *testing.T) {
		router, mockService := setupTestRouter(true)
		mockService.On("ListInvoices", mock.Anything).Return([]models.Invoice{}, nil).Once()

		recorder := doJSONRequest(router, http.MethodGet, "/api/invoices", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.JSONEq(t, "[]", recorder.Body.String())

		mockService.AssertExpectations(t)
	})
}

func TestInvoiceHandler_ListOverdueInvoices(t *testing.T) {
	router, mockService := setupTestRouter(true)

	due := time.Date(2021, time.October, 12, 0, 0, 0, 0, time.UTC)
	invoices := []models.Invoice{
		{ID: uuid.New(), Code: "RT2080", Status: models.InvoiceStatusPending, Total: 102.04, PaymentDue: &due},
	}
	mockService.On("ListOverdueInvoices", mock.Anything).Return(invoices, nil).Once()

	recorder := doJSONRequest(router, http.MethodGet, "/api/invoices/overdue", nil)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var response []dto.InvoiceResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	require.Len(t, response, 1)
	assert.Equal(t, "2021-10-12", response[0].PaymentDue)

	mockService.AssertExpectations(t)
}

func TestInvoiceHandler_GetInvoiceByID(t *testing.T) {
	t.Run("Success - returns the raw entity", func(t *testing.T) {
		router, mockService := setupTestRouter(true)
		id := uuid.New()

		due := time.Date(2021, time.September, 20, 0, 0, 0, 0, time.UTC)
		invoice := &models.Invoice{ID: id, Code: "XM9141", Status: models.InvoiceStatusPending, PaymentDue: &due}
		mockService.On("GetInvoiceByID", mock.Anything, id).Return(invoice, nil).Once()

		recorder := doJSONRequest(router, http.MethodGet, "/api/invoice/"+id.String(), nil)

		assert.Equal(t, http.StatusOK, recorder.Code)

		// paymentDue is not reformatted here; the entity serializes its
		// time.Time fields as RFC 3339.
		var response map[string]any
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		assert.Equal(t, "XM9141", response["id"])
		assert.Equal(t, "2021-09-20T00:00:00Z", response["paymentDue"])

		mockService.AssertExpectations(t)
	})

	t.Run("Malformed ID", func(t *testing.T) {
		router, mockService := setupTestRouter(true)

		recorder := doJSONRequest(router, http.MethodGet, "/api/invoice/not-a-uuid", nil)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Invalid invoice ID")
		mockService.AssertNotCalled(t, "GetInvoiceByID")
	})

	t.Run("Not found", func(t *testing.T) {
		router, mockService := setupTestRouter(true)
		id := uuid.New()

		mockService.On("GetInvoiceByID", mock.Anything, id).
			Return(nil, fmt.Errorf("%w: fetching invoice", services.ErrNotFound)).Once()

		recorder := doJSONRequest(router, http.MethodGet, "/api/invoice/"+id.String(), nil)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Invoice not found")

		mockService.AssertExpectations(t)
	})
}

func TestInvoiceHandler_DeleteInvoice(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		router, mockService := setupTestRouter(true)
		id := uuid.New()

		mockService.On("DeleteInvoice", mock.Anything, id).Return(nil).Once()

		recorder := doJSONRequest(router, http.MethodDelete, "/api/invoice/"+id.String(), nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Invoice deleted successfully")

		mockService.AssertExpectations(t)
	})

	t.Run("Not found", func(t *testing.T) {
		router, mockService := setupTestRouter(true)
		id := uuid.New()

		mockService.On("DeleteInvoice", mock.Anything, id).
			Return(fmt.Errorf("%w: deleting invoice", services.ErrNotFound)).Once()

		recorder := doJSONRequest(router, http.MethodDelete, "/api/invoice/"+id.String(), nil)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Invoice not found")

		mockService.AssertExpectations(t)
	})
}
