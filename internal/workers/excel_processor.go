// internal/workers/excel_processor.go
package workers

import (
	"context"

	"github.com/hibiken/asynq"

	"github.com/ammerola/shoplist-be/internal/core/domain"
)

// ProcessExcel imports the rows of an uploaded workbook into a list
func (p *ImportProcessor) ProcessExcel(ctx context.Context, t *asynq.Task) error {
	return p.run(ctx, t, domain.JobImportExcel, func(_ context.Context, data []byte) ([]*domain.ShoppingItem, int, error) {
		return ReadWorkbook(data)
	})
}
