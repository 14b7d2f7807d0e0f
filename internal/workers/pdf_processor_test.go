// internal/workers/pdf_processor_test.go
package workers_test

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ammerola/shoplist-be/internal/core/domain"
	"github.com/ammerola/shoplist-be/internal/workers"
	"github.com/ammerola/shoplist-be/test/helpers"
	"github.com/ammerola/shoplist-be/test/mocks"
)

// buildTextPDF writes a one-page PDF showing each line in its own text block
func buildTextPDF(lines []string) []byte {
	escape := strings.NewReplacer(`\`, `\\`, "(", `\(`, ")", `\)`)

	var content bytes.Buffer
	y := 760
	for _, line := range lines {
		fmt.Fprintf(&content, "BT /F1 12 Tf 1 0 0 1 72 %d Tm (%s) Tj ET\n", y, escape.Replace(line))
		y -= 18
	}

	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 5 0 R >> >> /Contents 4 0 R >>",
		fmt.Sprintf("<< /Length %d >>\nstream\n%sendstream", content.Len(), content.String()),
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>",
	}

	var out bytes.Buffer
	out.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = out.Len()
		fmt.Fprintf(&out, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}

	xref := out.Len()
	fmt.Fprintf(&out, "xref\n0 %d\n0000000000 65535 f \n", len(objects)+1)
	for _, off := range offsets {
		fmt.Fprintf(&out, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&out, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)

	return out.Bytes()
}

func TestImportProcessor_ProcessPDF(t *testing.T) {
	const fileKey = "imports/list-3/a.pdf"

	tests := []struct {
		name          string
		file          []byte
		setupMocks    func(*mocks.MockShoppingService, *mocks.MockFileStorage)
		expectedError bool
		skipRetry     bool
		wantStatus    domain.JobStatus
		wantProcessed int
		wantSkipped   int
	}{
		{
			name: "imports_shared_list_text",
			file: buildTextPDF([]string{
				"Lista zakupow:",
				"Nabial:",
				"- Mleko (2 szt.)",
				"- Ser (0.25 kg)",
				"Bez kategorii:",
				"- Chleb (1 szt.)",
				"- Woda (0 szt.)",
			}),
			setupMocks: func(shopping *mocks.MockShoppingService, storage *mocks.MockFileStorage) {
				shopping.EXPECT().
					AddItems(gomock.Any(), int64(3), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ int64, items []*domain.ShoppingItem) (int, error) {
						require.Len(t, items, 3)
						assert.Equal(t, "Mleko", items[0].Name)
						assert.Equal(t, 2, items[0].Quantity)
						assert.Equal(t, "Nabial", items[0].Category)
						require.NotNil(t, items[1].Weight)
						assert.Equal(t, "0.25", items[1].Weight.String())
						assert.Equal(t, "Chleb", items[2].Name)
						assert.Empty(t, items[2].Category)
						return 3, nil
					})
				storage.EXPECT().Delete(gomock.Any(), fileKey).Return(nil)
			},
			wantStatus:    domain.JobCompleted,
			wantProcessed: 3,
			wantSkipped:   1,
		},
		{
			name:          "rejects_file_that_is_not_a_pdf",
			file:          []byte("name,quantity\nMleko,2\n"),
			setupMocks:    func(*mocks.MockShoppingService, *mocks.MockFileStorage) {},
			expectedError: true,
			skipRetry:     true,
			wantStatus:    domain.JobFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			ctx := context.Background()

			shopping := mocks.NewMockShoppingService(ctrl)
			storage := mocks.NewMockFileStorage(ctrl)
			jobs := newJobStore(t)

			storage.EXPECT().Download(gomock.Any(), fileKey).Return(tt.file, nil)
			tt.setupMocks(shopping, storage)

			processor := workers.NewImportProcessor(shopping, storage, jobs, helpers.TestLogger())
			task := newTask(t, workers.TypeImportPDF, workers.ImportPayload{JobID: "job-pdf", ListID: 3, FileKey: fileKey})

			err := processor.ProcessPDF(ctx, task)

			if tt.expectedError {
				require.Error(t, err)
				assert.Equal(t, tt.skipRetry, isSkipRetry(err))
			} else {
				require.NoError(t, err)
			}

			job, err := jobs.Get(ctx, "job-pdf")
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, job.Status)
			assert.Equal(t, tt.wantProcessed, job.Processed)
			assert.Equal(t, tt.wantSkipped, job.Skipped)
		})
	}
}

func TestImportProcessor_ProcessPDF_BadPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	processor := workers.NewImportProcessor(mocks.NewMockShoppingService(ctrl),
		mocks.NewMockFileStorage(ctrl), mocks.NewMockJobTracker(ctrl), helpers.TestLogger())

	err := processor.ProcessPDF(context.Background(), asynq.NewTask(workers.TypeImportPDF, []byte("{")))

	require.Error(t, err)
	assert.True(t, isSkipRetry(err))
}
