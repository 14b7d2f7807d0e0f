// internal/workers/pdf_processor.go
package workers

import (
	"bytes"
	"context"
	"log/slog"
	"strings"

	"github.com/hibiken/asynq"
	"github.com/ledongthuc/pdf"

	"github.com/ammerola/shoplist-be/internal/core/domain"
)

// ProcessPDF imports the lines of an uploaded PDF into a list
func (p *ImportProcessor) ProcessPDF(ctx context.Context, t *asynq.Task) error {
	return p.run(ctx, t, domain.JobImportPDF, func(ctx context.Context, data []byte) ([]*domain.ShoppingItem, int, error) {
		lines, err := p.extractLines(ctx, data)
		if err != nil {
			return nil, 0, err
		}
		items, skipped := ParseListText(lines)
		return items, skipped, nil
	})
}

// extractLines returns the text of every page, one entry per line
func (p *ImportProcessor) extractLines(ctx context.Context, data []byte) ([]string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, domain.NewValidationError("not a valid pdf file: %v", err)
	}

	var lines []string
	totalPages := r.NumPage()

	for pageNum := 1; pageNum <= totalPages; pageNum++ {
		page := r.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			p.logger.WarnContext(ctx, "failed to extract text from page",
				slog.Int("page", pageNum),
				slog.String("error", err.Error()))
			continue
		}

		lines = append(lines, strings.Split(text, "\n")...)
	}

	if totalPages > 0 && len(lines) == 0 {
		return nil, domain.NewValidationError("no text could be extracted from %d pages", totalPages)
	}

	p.logger.DebugContext(ctx, "extracted pdf text",
		slog.Int("pages", totalPages),
		slog.Int("lines", len(lines)))

	return lines, nil
}
