// internal/handlers/export_handler_test.go
package handlers_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ammerola/shoplist-be/internal/core/domain"
	"github.com/ammerola/shoplist-be/internal/handlers"
	"github.com/ammerola/shoplist-be/internal/workers"
	"github.com/ammerola/shoplist-be/test/helpers"
	"github.com/ammerola/shoplist-be/test/mocks"
)

func TestExportHandler_ExportExcel(t *testing.T) {
	t.Run("streams_workbook", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockShopping := mocks.NewMockShoppingService(ctrl)
		handler := handlers.NewExportHandler(mockShopping, mocks.NewMockTaskQueue(ctrl), helpers.TestLogger())

		items := helpers.CreateTestItems(6)
		mockShopping.EXPECT().GetList(gomock.Any(), int64(1)).Return(helpers.CreateTestList(), nil)
		mockShopping.EXPECT().GetItems(gomock.Any(), int64(1)).Return(items, nil)

		req := httptest.NewRequest("GET", "/api/v1/lists/1/export/excel", nil)
		req.SetPathValue("id", "1")
		w := httptest.NewRecorder()

		handler.ExportExcel(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, workers.ContentTypeXLSX, w.Header().Get("Content-Type"))
		assert.Contains(t, w.Header().Get("Content-Disposition"), `filename="lista_1_`)

		parsed, skipped, err := workers.ReadWorkbook(w.Body.Bytes())
		require.NoError(t, err)
		assert.Zero(t, skipped)
		require.Len(t, parsed, len(items))
		assert.Equal(t, items[0].Name, parsed[0].Name)
	})

	t.Run("unknown_list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockShopping := mocks.NewMockShoppingService(ctrl)
		handler := handlers.NewExportHandler(mockShopping, mocks.NewMockTaskQueue(ctrl), helpers.TestLogger())

		mockShopping.EXPECT().GetList(gomock.Any(), int64(9)).
			Return(nil, fmt.Errorf("list 9: %w", domain.ErrNotFound))

		req := httptest.NewRequest("GET", "/api/v1/lists/9/export/excel", nil)
		req.SetPathValue("id", "9")
		w := httptest.NewRecorder()

		handler.ExportExcel(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
	})
}

func TestExportHandler_EnqueueExport(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockShopping := mocks.NewMockShoppingService(ctrl)
	mockQueue := mocks.NewMockTaskQueue(ctrl)
	handler := handlers.NewExportHandler(mockShopping, mockQueue, helpers.TestLogger())

	job := domain.NewJob(domain.JobExportList, 1)
	mockShopping.EXPECT().GetList(gomock.Any(), int64(1)).Return(helpers.CreateTestList(), nil)
	mockQueue.EXPECT().EnqueueExport(gomock.Any(), int64(1)).Return(job, nil)

	req := httptest.NewRequest("POST", "/api/v1/lists/1/export", nil)
	req.SetPathValue("id", "1")
	w := httptest.NewRecorder()

	handler.EnqueueExport(w, req)

	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Contains(t, w.Body.String(), job.ID)
}

func multipartUpload(t *testing.T, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func TestImportHandler_Import(t *testing.T) {
	var workbook bytes.Buffer
	require.NoError(t, workers.WriteWorkbook(&workbook, helpers.CreateTestList(), helpers.CreateTestItems(3)))

	tests := []struct {
		name           string
		filename       string
		content        []byte
		setupMocks     func(*mocks.MockShoppingService, *mocks.MockFileStorage, *mocks.MockTaskQueue)
		expectedStatus int
	}{
		{
			name:     "queues_excel_import",
			filename: "zakupy.xlsx",
			content:  workbook.Bytes(),
			setupMocks: func(s *mocks.MockShoppingService, f *mocks.MockFileStorage, q *mocks.MockTaskQueue) {
				s.EXPECT().GetList(gomock.Any(), int64(1)).Return(helpers.CreateTestList(), nil)
				f.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, key string, body io.Reader, _ string) (string, error) {
						assert.True(t, strings.HasPrefix(key, "imports/list-1/"))
						assert.True(t, strings.HasSuffix(key, ".xlsx"))
						data, err := io.ReadAll(body)
						require.NoError(t, err)
						assert.Equal(t, workbook.Len(), len(data))
						return key, nil
					})
				q.EXPECT().EnqueueImport(gomock.Any(), int64(1), domain.JobImportExcel, gomock.Any()).
					Return(domain.NewJob(domain.JobImportExcel, 1), nil)
			},
			expectedStatus: http.StatusAccepted,
		},
		{
			name:     "queues_pdf_import",
			filename: "Paragon.PDF",
			content:  []byte("%PDF-1.4"),
			setupMocks: func(s *mocks.MockShoppingService, f *mocks.MockFileStorage, q *mocks.MockTaskQueue) {
				s.EXPECT().GetList(gomock.Any(), int64(1)).Return(helpers.CreateTestList(), nil)
				f.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("key", nil)
				q.EXPECT().EnqueueImport(gomock.Any(), int64(1), domain.JobImportPDF, gomock.Any()).
					Return(domain.NewJob(domain.JobImportPDF, 1), nil)
			},
			expectedStatus: http.StatusAccepted,
		},
		{
			name:           "unsupported_extension",
			filename:       "zakupy.csv",
			content:        []byte("Mleko,1"),
			setupMocks:     func(*mocks.MockShoppingService, *mocks.MockFileStorage, *mocks.MockTaskQueue) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:     "unknown_list",
			filename: "zakupy.xlsx",
			content:  workbook.Bytes(),
			setupMocks: func(s *mocks.MockShoppingService, f *mocks.MockFileStorage, q *mocks.MockTaskQueue) {
				s.EXPECT().GetList(gomock.Any(), int64(1)).
					Return(nil, fmt.Errorf("list 1: %w", domain.ErrNotFound))
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:     "enqueue_failure_removes_upload",
			filename: "zakupy.xlsx",
			content:  workbook.Bytes(),
			setupMocks: func(s *mocks.MockShoppingService, f *mocks.MockFileStorage, q *mocks.MockTaskQueue) {
				var stored string
				s.EXPECT().GetList(gomock.Any(), int64(1)).Return(helpers.CreateTestList(), nil)
				f.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, key string, _ io.Reader, _ string) (string, error) {
						stored = key
						return key, nil
					})
				q.EXPECT().EnqueueImport(gomock.Any(), int64(1), domain.JobImportExcel, gomock.Any()).
					Return(nil, errors.New("redis unavailable"))
				f.EXPECT().Delete(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, key string) error {
						assert.Equal(t, stored, key)
						return nil
					})
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockShopping := mocks.NewMockShoppingService(ctrl)
			mockFiles := mocks.NewMockFileStorage(ctrl)
			mockQueue := mocks.NewMockTaskQueue(ctrl)
			handler := handlers.NewImportHandler(mockShopping, mockFiles, mockQueue, 1<<20, helpers.TestLogger())
			tt.setupMocks(mockShopping, mockFiles, mockQueue)

			body, contentType := multipartUpload(t, tt.filename, tt.content)
			req := httptest.NewRequest("POST", "/api/v1/lists/1/import", body)
			req.Header.Set("Content-Type", contentType)
			req.SetPathValue("id", "1")
			w := httptest.NewRecorder()

			handler.Import(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestImportHandler_Import_TooLarge(t *testing.T) {
	ctrl := gomock.NewController(t)
	handler := handlers.NewImportHandler(
		mocks.NewMockShoppingService(ctrl),
		mocks.NewMockFileStorage(ctrl),
		mocks.NewMockTaskQueue(ctrl),
		1024,
		helpers.TestLogger(),
	)

	body, contentType := multipartUpload(t, "zakupy.xlsx", bytes.Repeat([]byte("x"), 4096))
	req := httptest.NewRequest("POST", "/api/v1/lists/1/import", body)
	req.Header.Set("Content-Type", contentType)
	req.SetPathValue("id", "1")
	w := httptest.NewRecorder()

	handler.Import(w, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}
