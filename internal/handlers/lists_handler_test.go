// internal/handlers/lists_handler_test.go
package handlers_test

import (
	"bytes"
	"context"
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

func errorMessage(t *testing.T, body []byte) string {
	t.Helper()
	var response map[string]string
	require.NoError(t, json.Unmarshal(body, &response))
	return response["error"]
}

func TestListHandler_CreateList(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMocks     func(*mocks.MockShoppingService)
		expectedStatus int
		validateBody   func(*testing.T, []byte)
	}{
		{
			name: "creates_list",
			body: `{"name":"Zakupy na weekend"}`,
			setupMocks: func(m *mocks.MockShoppingService) {
				m.EXPECT().
					CreateList(gomock.Any(), "Zakupy na weekend").
					Return(helpers.CreateTestList(), nil)
			},
			expectedStatus: http.StatusCreated,
			validateBody: func(t *testing.T, body []byte) {
				var list domain.ShoppingList
				require.NoError(t, json.Unmarshal(body, &list))
				assert.Equal(t, int64(1), list.ID)
				assert.Equal(t, "Zakupy na weekend", list.Name)
			},
		},
		{
			name: "blank_name_is_rejected",
			body: `{"name":"   "}`,
			setupMocks: func(m *mocks.MockShoppingService) {
				m.EXPECT().
					CreateList(gomock.Any(), "   ").
					Return(nil, domain.NewValidationError("name is required"))
			},
			expectedStatus: http.StatusBadRequest,
			validateBody: func(t *testing.T, body []byte) {
				assert.Contains(t, errorMessage(t, body), "name is required")
			},
		},
		{
			name:           "malformed_json",
			body:           `{"name":`,
			setupMocks:     func(m *mocks.MockShoppingService) {},
			expectedStatus: http.StatusBadRequest,
			validateBody: func(t *testing.T, body []byte) {
				assert.Equal(t, "Invalid request body", errorMessage(t, body))
			},
		},
		{
			name: "store_failure_is_generic",
			body: `{"name":"Dom"}`,
			setupMocks: func(m *mocks.MockShoppingService) {
				m.EXPECT().
					CreateList(gomock.Any(), "Dom").
					Return(nil, errors.New("failed to create list: connection refused"))
			},
			expectedStatus: http.StatusInternalServerError,
			validateBody: func(t *testing.T, body []byte) {
				assert.Equal(t, "Failed to create list", errorMessage(t, body))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockService := mocks.NewMockShoppingService(ctrl)
			handler := handlers.NewListHandler(mockService, helpers.TestLogger())
			tt.setupMocks(mockService)

			req := httptest.NewRequest("POST", "/api/v1/lists", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler.CreateList(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.validateBody != nil {
				tt.validateBody(t, w.Body.Bytes())
			}
		})
	}
}

func TestListHandler_GetLists(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockShoppingService(ctrl)
	handler := handlers.NewListHandler(mockService, helpers.TestLogger())

	mockService.EXPECT().GetLists(gomock.Any()).Return([]*domain.ShoppingList{
		helpers.CreateTestList(func(l *domain.ShoppingList) { l.ID = 2; l.Name = "Apteka" }),
		helpers.CreateTestList(),
	}, nil)

	w := httptest.NewRecorder()
	handler.GetLists(w, httptest.NewRequest("GET", "/api/v1/lists", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var response struct {
		Lists []domain.ShoppingList `json:"lists"`
		Count int                   `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, 2, response.Count)
	assert.Equal(t, "Apteka", response.Lists[0].Name)
}

func TestListHandler_GetList(t *testing.T) {
	tests := []struct {
		name           string
		listID         string
		setupMocks     func(*mocks.MockShoppingService)
		expectedStatus int
	}{
		{
			name:   "found",
			listID: "1",
			setupMocks: func(m *mocks.MockShoppingService) {
				m.EXPECT().GetList(gomock.Any(), int64(1)).Return(helpers.CreateTestList(), nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "not_found",
			listID: "9",
			setupMocks: func(m *mocks.MockShoppingService) {
				m.EXPECT().GetList(gomock.Any(), int64(9)).
					Return(nil, fmt.Errorf("failed to get list: %w", domain.ErrNotFound))
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "invalid_id",
			listID:         "abc",
			setupMocks:     func(m *mocks.MockShoppingService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "non_positive_id",
			listID:         "0",
			setupMocks:     func(m *mocks.MockShoppingService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockService := mocks.NewMockShoppingService(ctrl)
			handler := handlers.NewListHandler(mockService, helpers.TestLogger())
			tt.setupMocks(mockService)

			req := httptest.NewRequest("GET", "/api/v1/lists/"+tt.listID, nil)
			req.SetPathValue("id", tt.listID)
			w := httptest.NewRecorder()

			handler.GetList(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestListHandler_DeleteList(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockShoppingService(ctrl)
	handler := handlers.NewListHandler(mockService, helpers.TestLogger())

	mockService.EXPECT().DeleteList(gomock.Any(), int64(3)).Return(nil)

	req := httptest.NewRequest("DELETE", "/api/v1/lists/3", nil)
	req.SetPathValue("id", "3")
	w := httptest.NewRecorder()

	handler.DeleteList(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestListHandler_Summary(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockShoppingService(ctrl)
	handler := handlers.NewListHandler(mockService, helpers.TestLogger())

	mockService.EXPECT().Summary(gomock.Any(), int64(1)).Return(&domain.ListSummary{
		ListID:     1,
		TotalItems: 3,
		Completed:  1,
		Remaining:  2,
		ByCategory: map[string]int{"Nabiał": 2, "Pieczywo": 1},
	}, nil)

	req := httptest.NewRequest("GET", "/api/v1/lists/1/summary", nil)
	req.SetPathValue("id", "1")
	w := httptest.NewRecorder()

	handler.Summary(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var summary domain.ListSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	assert.Equal(t, 2, summary.Remaining)
	assert.Equal(t, 2, summary.ByCategory["Nabiał"])
}

func TestItemHandler_CreateItem(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMocks     func(*mocks.MockShoppingService)
		expectedStatus int
		validateBody   func(*testing.T, []byte)
	}{
		{
			name: "creates_counted_item",
			body: `{"name":"Mleko","quantity":2,"category":"Nabiał","barcode":"5900000000017"}`,
			setupMocks: func(m *mocks.MockShoppingService) {
				m.EXPECT().
					AddItem(gomock.Any(), int64(1), gomock.Any()).
					DoAndReturn(func(_ context.Context, listID int64, item *domain.ShoppingItem) (*domain.ShoppingItem, error) {
						assert.Equal(t, "Mleko", item.Name)
						assert.Equal(t, 2, item.Quantity)
						assert.Nil(t, item.Weight)
						item.ID = 10
						item.ListID = listID
						return item, nil
					})
			},
			expectedStatus: http.StatusCreated,
			validateBody: func(t *testing.T, body []byte) {
				var item domain.ShoppingItem
				require.NoError(t, json.Unmarshal(body, &item))
				assert.Equal(t, int64(10), item.ID)
				assert.Equal(t, "2 szt.", item.MeasureLabel())
			},
		},
		{
			name: "creates_weighed_item",
			body: `{"name":"Jabłka","weight":"1.5"}`,
			setupMocks: func(m *mocks.MockShoppingService) {
				m.EXPECT().
					AddItem(gomock.Any(), int64(1), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ int64, item *domain.ShoppingItem) (*domain.ShoppingItem, error) {
						require.NotNil(t, item.Weight)
						assert.Equal(t, "1.5", item.Weight.String())
						return item, nil
					})
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "invalid_barcode",
			body: `{"name":"Mleko","barcode":"59-00"}`,
			setupMocks: func(m *mocks.MockShoppingService) {
				m.EXPECT().
					AddItem(gomock.Any(), int64(1), gomock.Any()).
					Return(nil, domain.NewValidationError("barcode must be numeric"))
			},
			expectedStatus: http.StatusBadRequest,
			validateBody: func(t *testing.T, body []byte) {
				assert.Contains(t, errorMessage(t, body), "barcode must be numeric")
			},
		},
		{
			name:           "malformed_json",
			body:           `[1,2]`,
			setupMocks:     func(m *mocks.MockShoppingService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockService := mocks.NewMockShoppingService(ctrl)
			handler := handlers.NewItemHandler(mockService, helpers.TestLogger())
			tt.setupMocks(mockService)

			req := httptest.NewRequest("POST", "/api/v1/lists/1/items", strings.NewReader(tt.body))
			req.SetPathValue("id", "1")
			w := httptest.NewRecorder()

			handler.CreateItem(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.validateBody != nil {
				tt.validateBody(t, w.Body.Bytes())
			}
		})
	}
}

func TestItemHandler_ListItems(t *testing.T) {
	t.Run("returns_items", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockService := mocks.NewMockShoppingService(ctrl)
		handler := handlers.NewItemHandler(mockService, helpers.TestLogger())
		mockService.EXPECT().GetItems(gomock.Any(), int64(1)).Return(helpers.CreateTestItems(3), nil)

		req := httptest.NewRequest("GET", "/api/v1/lists/1/items", nil)
		req.SetPathValue("id", "1")
		w := httptest.NewRecorder()
		handler.ListItems(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var response struct {
			Items []domain.ShoppingItem `json:"items"`
			Count int                   `json:"count"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, 3, response.Count)
		assert.Len(t, response.Items, 3)
	})

	t.Run("empty_list_is_empty_array", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockService := mocks.NewMockShoppingService(ctrl)
		handler := handlers.NewItemHandler(mockService, helpers.TestLogger())
		mockService.EXPECT().GetItems(gomock.Any(), int64(1)).Return(nil, nil)

		req := httptest.NewRequest("GET", "/api/v1/lists/1/items", nil)
		req.SetPathValue("id", "1")
		w := httptest.NewRecorder()
		handler.ListItems(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"items":[]`)
	})

	t.Run("unknown_list_is_not_found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockService := mocks.NewMockShoppingService(ctrl)
		handler := handlers.NewItemHandler(mockService, helpers.TestLogger())
		mockService.EXPECT().GetItems(gomock.Any(), int64(99)).
			Return(nil, fmt.Errorf("list 99: %w", domain.ErrNotFound))

		req := httptest.NewRequest("GET", "/api/v1/lists/99/items", nil)
		req.SetPathValue("id", "99")
		w := httptest.NewRecorder()
		handler.ListItems(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestItemHandler_UpdateItem(t *testing.T) {
	tests := []struct {
		name           string
		itemID         string
		setupMocks     func(*mocks.MockShoppingService)
		expectedStatus int
	}{
		{
			name:   "updates_item",
			itemID: "7",
			setupMocks: func(m *mocks.MockShoppingService) {
				m.EXPECT().
					UpdateItem(gomock.Any(), int64(1), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ int64, item *domain.ShoppingItem) (*domain.ShoppingItem, error) {
						assert.Equal(t, int64(7), item.ID)
						assert.Equal(t, "Masło", item.Name)
						return item, nil
					})
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "missing_item",
			itemID: "8",
			setupMocks: func(m *mocks.MockShoppingService) {
				m.EXPECT().
					UpdateItem(gomock.Any(), int64(1), gomock.Any()).
					Return(nil, fmt.Errorf("failed to update item: %w", domain.ErrNotFound))
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "invalid_item_id",
			itemID:         "x",
			setupMocks:     func(m *mocks.MockShoppingService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockService := mocks.NewMockShoppingService(ctrl)
			handler := handlers.NewItemHandler(mockService, helpers.TestLogger())
			tt.setupMocks(mockService)

			req := httptest.NewRequest("PUT", "/api/v1/lists/1/items/"+tt.itemID,
				bytes.NewBufferString(`{"name":"Masło","quantity":1}`))
			req.SetPathValue("id", "1")
			req.SetPathValue("itemId", tt.itemID)
			w := httptest.NewRecorder()

			handler.UpdateItem(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestItemHandler_SetCompleted(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMocks     func(*mocks.MockShoppingService)
		expectedStatus int
	}{
		{
			name: "marks_completed",
			body: `{"completed":true}`,
			setupMocks: func(m *mocks.MockShoppingService) {
				m.EXPECT().SetItemCompleted(gomock.Any(), int64(1), int64(4), true).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "marks_open",
			body: `{"completed":false}`,
			setupMocks: func(m *mocks.MockShoppingService) {
				m.EXPECT().SetItemCompleted(gomock.Any(), int64(1), int64(4), false).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing_flag",
			body:           `{}`,
			setupMocks:     func(m *mocks.MockShoppingService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockService := mocks.NewMockShoppingService(ctrl)
			handler := handlers.NewItemHandler(mockService, helpers.TestLogger())
			tt.setupMocks(mockService)

			req := httptest.NewRequest("PATCH", "/api/v1/lists/1/items/4/completed", strings.NewReader(tt.body))
			req.SetPathValue("id", "1")
			req.SetPathValue("itemId", "4")
			w := httptest.NewRecorder()

			handler.SetCompleted(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestItemHandler_DeleteItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockShoppingService(ctrl)
	handler := handlers.NewItemHandler(mockService, helpers.TestLogger())

	mockService.EXPECT().DeleteItem(gomock.Any(), int64(2), int64(5)).Return(nil)

	req := httptest.NewRequest("DELETE", "/api/v1/lists/2/items/5", nil)
	req.SetPathValue("id", "2")
	req.SetPathValue("itemId", "5")
	w := httptest.NewRecorder()

	handler.DeleteItem(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestItemHandler_DeleteCompleted(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockShoppingService(ctrl)
	handler := handlers.NewItemHandler(mockService, helpers.TestLogger())

	mockService.EXPECT().DeleteCompleted(gomock.Any(), int64(2)).Return(int64(4), nil)

	req := httptest.NewRequest("DELETE", "/api/v1/lists/2/items/completed", nil)
	req.SetPathValue("id", "2")
	w := httptest.NewRecorder()

	handler.DeleteCompleted(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var response map[string]int64
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, int64(4), response["deleted"])
}
