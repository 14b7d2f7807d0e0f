// internal/handlers/scan_handler_test.go
package handlers_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ammerola/shoplist-be/internal/core/domain"
	"github.com/ammerola/shoplist-be/internal/handlers"
	"github.com/ammerola/shoplist-be/test/helpers"
	"github.com/ammerola/shoplist-be/test/mocks"
)

func TestProductHandler_Lookup(t *testing.T) {
	tests := []struct {
		name           string
		barcode        string
		setupMocks     func(*mocks.MockProductService)
		expectedStatus int
		validateBody   func(*testing.T, []byte)
	}{
		{
			name:    "found",
			barcode: "5900512300108",
			setupMocks: func(m *mocks.MockProductService) {
				m.EXPECT().Resolve(gomock.Any(), "5900512300108").Return(&domain.Product{
					Barcode:           "5900512300108",
					Name:              "Mleko 2%",
					Category:          "mleka",
					SuggestedCategory: "Nabiał",
					Found:             true,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			validateBody: func(t *testing.T, body []byte) {
				var product domain.Product
				require.NoError(t, json.Unmarshal(body, &product))
				assert.True(t, product.Found)
				assert.Equal(t, "Nabiał", product.SuggestedCategory)
			},
		},
		{
			name:    "lookup_failure_serves_fallback",
			barcode: "123",
			setupMocks: func(m *mocks.MockProductService) {
				m.EXPECT().Resolve(gomock.Any(), "123").Return(
					domain.FallbackProduct("123", "Nie znaleziono produktu"),
					domain.NewLookupError("123", domain.ErrProductNotFound))
			},
			expectedStatus: http.StatusOK,
			validateBody: func(t *testing.T, body []byte) {
				var product domain.Product
				require.NoError(t, json.Unmarshal(body, &product))
				assert.False(t, product.Found)
				assert.Equal(t, "Produkt 123", product.Name)
				assert.NotEmpty(t, product.Notice)
			},
		},
		{
			name:    "non_numeric_barcode",
			barcode: "abc",
			setupMocks: func(m *mocks.MockProductService) {
				m.EXPECT().Resolve(gomock.Any(), "abc").
					Return(nil, domain.NewValidationError("barcode must be numeric"))
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockService := mocks.NewMockProductService(ctrl)
			handler := handlers.NewProductHandler(mockService, helpers.TestLogger())
			tt.setupMocks(mockService)

			req := httptest.NewRequest("GET", "/api/v1/products/"+tt.barcode, nil)
			req.SetPathValue("barcode", tt.barcode)
			w := httptest.NewRecorder()

			handler.Lookup(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.validateBody != nil {
				tt.validateBody(t, w.Body.Bytes())
			}
		})
	}
}

func TestScanHandler_Start(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMocks     func(*mocks.MockScanService)
		expectedStatus int
		validateBody   func(*testing.T, []byte)
	}{
		{
			name: "arms_session",
			body: `{"list_id":1}`,
			setupMocks: func(m *mocks.MockScanService) {
				m.EXPECT().Start(gomock.Any(), "phone-1", int64(1)).Return(&domain.ScanSnapshot{
					Session:     "phone-1",
					State:       domain.ScanArmed,
					RequestID:   1,
					ListID:      1,
					ScannerOpen: true,
					NavigateTo:  "/lists/1/scan",
				}, nil)
			},
			expectedStatus: http.StatusOK,
			validateBody: func(t *testing.T, body []byte) {
				var snap domain.ScanSnapshot
				require.NoError(t, json.Unmarshal(body, &snap))
				assert.Equal(t, domain.ScanArmed, snap.State)
				assert.Equal(t, uint64(1), snap.RequestID)
				assert.Equal(t, "/lists/1/scan", snap.NavigateTo)
			},
		},
		{
			name:           "missing_list_id",
			body:           `{}`,
			setupMocks:     func(m *mocks.MockScanService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "unknown_list",
			body: `{"list_id":42}`,
			setupMocks: func(m *mocks.MockScanService) {
				m.EXPECT().Start(gomock.Any(), "phone-1", int64(42)).
					Return(nil, fmt.Errorf("list 42: %w", domain.ErrNotFound))
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockService := mocks.NewMockScanService(ctrl)
			handler := handlers.NewScanHandler(mockService, helpers.TestLogger())
			tt.setupMocks(mockService)

			req := httptest.NewRequest("POST", "/api/v1/scan/phone-1/start", strings.NewReader(tt.body))
			req.SetPathValue("session", "phone-1")
			w := httptest.NewRecorder()

			handler.Start(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.validateBody != nil {
				tt.validateBody(t, w.Body.Bytes())
			}
		})
	}
}

func TestScanHandler_Scanned(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMocks     func(*mocks.MockScanService)
		expectedStatus int
		wantDelivered  bool
	}{
		{
			name: "delivered_to_pending_request",
			body: `{"code":"5900512300108"}`,
			setupMocks: func(m *mocks.MockScanService) {
				m.EXPECT().Scanned(gomock.Any(), "phone-1", "5900512300108").Return(true, nil)
			},
			expectedStatus: http.StatusOK,
			wantDelivered:  true,
		},
		{
			name: "duplicate_scan_is_dropped",
			body: `{"code":"5900512300108"}`,
			setupMocks: func(m *mocks.MockScanService) {
				m.EXPECT().Scanned(gomock.Any(), "phone-1", "5900512300108").Return(false, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "non_numeric_code",
			body: `{"code":"QR:abc"}`,
			setupMocks: func(m *mocks.MockScanService) {
				m.EXPECT().Scanned(gomock.Any(), "phone-1", "QR:abc").
					Return(false, domain.NewValidationError("code must be a non-empty numeric string"))
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed_json",
			body:           `code=1`,
			setupMocks:     func(m *mocks.MockScanService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockService := mocks.NewMockScanService(ctrl)
			handler := handlers.NewScanHandler(mockService, helpers.TestLogger())
			tt.setupMocks(mockService)

			req := httptest.NewRequest("POST", "/api/v1/scan/phone-1/scanned", strings.NewReader(tt.body))
			req.SetPathValue("session", "phone-1")
			w := httptest.NewRecorder()

			handler.Scanned(w, req)

			require.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				var response struct {
					Delivered bool `json:"delivered"`
				}
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
				assert.Equal(t, tt.wantDelivered, response.Delivered)
			}
		})
	}
}

func TestScanHandler_Reset(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockScanService(ctrl)
	handler := handlers.NewScanHandler(mockService, helpers.TestLogger())

	mockService.EXPECT().Reset(gomock.Any(), "phone-1").Return(nil)

	req := httptest.NewRequest("POST", "/api/v1/scan/phone-1/reset", nil)
	req.SetPathValue("session", "phone-1")
	w := httptest.NewRecorder()

	handler.Reset(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestScanHandler_Snapshot(t *testing.T) {
	t.Run("returns_result", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockService := mocks.NewMockScanService(ctrl)
		handler := handlers.NewScanHandler(mockService, helpers.TestLogger())

		mockService.EXPECT().Snapshot(gomock.Any(), "phone-1").Return(&domain.ScanSnapshot{
			Session: "phone-1",
			State:   domain.ScanLocked,
			Result:  &domain.Product{Barcode: "123", Name: "Produkt 123"},
		}, nil)

		req := httptest.NewRequest("GET", "/api/v1/scan/phone-1", nil)
		req.SetPathValue("session", "phone-1")
		w := httptest.NewRecorder()
		handler.Snapshot(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var snap domain.ScanSnapshot
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))
		require.NotNil(t, snap.Result)
		assert.Equal(t, "Produkt 123", snap.Result.Name)
	})

	t.Run("unknown_session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockService := mocks.NewMockScanService(ctrl)
		handler := handlers.NewScanHandler(mockService, helpers.TestLogger())

		mockService.EXPECT().Snapshot(gomock.Any(), "gone").
			Return(nil, fmt.Errorf("scan session %q: %w", "gone", domain.ErrNotFound))

		req := httptest.NewRequest("GET", "/api/v1/scan/gone", nil)
		req.SetPathValue("session", "gone")
		w := httptest.NewRecorder()
		handler.Snapshot(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("cache_failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockService := mocks.NewMockScanService(ctrl)
		handler := handlers.NewScanHandler(mockService, helpers.TestLogger())

		mockService.EXPECT().Snapshot(gomock.Any(), "phone-1").Return(nil, errors.New("i/o timeout"))

		req := httptest.NewRequest("GET", "/api/v1/scan/phone-1", nil)
		req.SetPathValue("session", "phone-1")
		w := httptest.NewRecorder()
		handler.Snapshot(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "i/o timeout")
	})
}
