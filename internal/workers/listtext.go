// internal/workers/listtext.go
package workers

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ammerola/shoplist-be/internal/core/domain"
)

var (
	// "- Mleko (2 szt.)" or "- Jabłka (1.5 kg)", as written by share text
	bracketMeasureRe = regexp.MustCompile(`^(.+?)\s*\(\s*(\d+(?:[.,]\d+)?)\s*(szt\.?|kg)\s*\)$`)
	// "Jabłka 1.5 kg" or "Mleko 2 szt."
	trailingMeasureRe = regexp.MustCompile(`^(.+?)\s+(\d+(?:[.,]\d+)?)\s*(szt\.?|kg)$`)
	bulletRe          = regexp.MustCompile(`^[-•*–]\s*`)
)

var shareHeaderLine = strings.TrimSpace(domain.ShareHeader)

// ParseListText turns lines of text into items. It understands the format
// produced by share text, so a shared list can be imported again:
// "Category:" lines set the category of the items that follow, and each item
// line is "name (2 szt.)", "name 1.5 kg" or just "name". Lines with a
// measure that cannot be used are counted as skipped.
func ParseListText(lines []string) ([]*domain.ShoppingItem, int) {
	var items []*domain.ShoppingItem
	skipped := 0
	category := ""

	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" || line == shareHeaderLine {
			continue
		}

		bulleted := bulletRe.MatchString(line)
		if !bulleted && strings.HasSuffix(line, ":") {
			category = strings.TrimSpace(strings.TrimSuffix(line, ":"))
			if category == domain.UncategorizedLabel {
				category = ""
			}
			continue
		}

		line = strings.TrimSpace(bulletRe.ReplaceAllString(line, ""))
		if line == "" {
			continue
		}

		item, ok := parseItemLine(line)
		if !ok {
			skipped++
			continue
		}
		item.Category = category
		items = append(items, item)
	}

	return items, skipped
}

func parseItemLine(line string) (*domain.ShoppingItem, bool) {
	m := bracketMeasureRe.FindStringSubmatch(line)
	if m == nil {
		m = trailingMeasureRe.FindStringSubmatch(line)
	}
	if m == nil {
		return &domain.ShoppingItem{Name: line, Quantity: 1}, true
	}

	item := &domain.ShoppingItem{Name: strings.TrimSpace(m[1]), Quantity: 1}
	amount := strings.ReplaceAll(m[2], ",", ".")

	if m[3] == "kg" {
		w, err := decimal.NewFromString(amount)
		if err != nil || !w.IsPositive() {
			return nil, false
		}
		item.Weight = &w
		return item, true
	}

	q, err := strconv.Atoi(amount)
	if err != nil || q < 1 {
		return nil, false
	}
	item.Quantity = q
	return item, true
}
