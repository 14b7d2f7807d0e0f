// test/benchmarks/helpers.go
package benchmarks

import (
	"fmt"
	"strings"

	"github.com/ammerola/shoplist-be/internal/core/domain"
)

// navigatorStub counts scanner presentations
type navigatorStub struct {
	opened int
}

func (n *navigatorStub) ToScanner(uint64) {
	n.opened++
}

// offTags are category tags as returned by the product directory
var offTags = []string{
	"pl:mleka",
	"pl:napoje-gazowane",
	"pl:pieczywo-pszenne",
	"en:chocolates",
	"pl:warzywa",
	"pl:wedliny",
	"en:crisps",
	"pl:kawa-ziarnista",
}

// createShareLines renders numItems items as the lines of a shared list
func createShareLines(numItems int) []string {
	items := make([]*domain.ShoppingItem, numItems)
	for i := range items {
		items[i] = &domain.ShoppingItem{
			Name:     fmt.Sprintf("Produkt %d", i+1),
			Quantity: i%5 + 1,
			Category: domain.Categories[i%len(domain.Categories)],
		}
	}
	return strings.Split(domain.FormatShareText(items), "\n")
}
