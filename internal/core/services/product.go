// internal/core/services/product.go
package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/agnivade/levenshtein"

	"github.com/ammerola/shoplist-be/internal/core/domain"
	"github.com/ammerola/shoplist-be/internal/core/ports"
)

const (
	minCategorySimilarity = 0.5

	noticeNotFound   = "Nie znaleziono produktu. Wpisz nazwę ręcznie."
	noticeConnection = "Błąd połączenia z bazą produktów. Wpisz nazwę ręcznie."
)

// ProductService resolves barcodes through the lookup service with caching
type ProductService struct {
	lookup   ports.ProductLookup
	cache    ports.CacheRepository
	cacheTTL time.Duration
	logger   *slog.Logger
}

var _ ports.ProductService = (*ProductService)(nil)

// NewProductService creates a new product service
func NewProductService(lookup ports.ProductLookup, cache ports.CacheRepository,
	cacheTTL time.Duration, logger *slog.Logger) *ProductService {
	return &ProductService{
		lookup:   lookup,
		cache:    cache,
		cacheTTL: cacheTTL,
		logger:   logger.With(slog.String("service", "product")),
	}
}

// Resolve returns the product for barcode. The returned product is never nil
// for a numeric barcode: failed lookups yield a fallback product together
// with a *domain.LookupError.
func (s *ProductService) Resolve(ctx context.Context, barcode string) (*domain.Product, error) {
	barcode = strings.TrimSpace(barcode)
	if !domain.IsNumericCode(barcode) {
		return nil, domain.NewValidationError("barcode must be numeric")
	}

	var product domain.Product
	err := s.cache.GetOrSet(ctx, ports.CacheKey(ports.PrefixProduct, barcode), &product,
		func() (interface{}, error) {
			found, err := s.lookup.Lookup(ctx, barcode)
			if err != nil {
				return nil, err
			}
			found.SuggestedCategory = SuggestCategory(found.Category)
			return found, nil
		}, s.cacheTTL)
	if err != nil {
		lookupErr := domain.NewLookupError(barcode, unwrapLookup(err))
		notice := noticeConnection
		if errors.Is(err, domain.ErrProductNotFound) {
			notice = noticeNotFound
		}

		s.logger.InfoContext(ctx, "barcode lookup failed",
			slog.String("barcode", barcode),
			slog.String("error", err.Error()))

		return domain.FallbackProduct(barcode, notice), lookupErr
	}

	return &product, nil
}

// unwrapLookup strips the cache wrapper so the lookup cause is kept
func unwrapLookup(err error) error {
	if errors.Is(err, domain.ErrProductNotFound) {
		return domain.ErrProductNotFound
	}
	if inner := errors.Unwrap(err); inner != nil {
		return inner
	}
	return err
}

// SuggestCategory maps an external category tag onto the closest entry of
// domain.Categories. It returns an empty string when nothing is close enough.
func SuggestCategory(tag string) string {
	tag = foldCategory(tag)
	if tag == "" {
		return ""
	}

	best, bestScore := "", 0.0
	for _, category := range domain.Categories {
		candidate := foldCategory(category)
		dist := levenshtein.ComputeDistance(tag, candidate)
		score := 1 - float64(dist)/float64(max(len(tag), len(candidate)))
		if score > bestScore {
			best, bestScore = category, score
		}
	}

	if bestScore < minCategorySimilarity {
		return ""
	}
	return best
}

var diacriticFolder = strings.NewReplacer(
	"ą", "a", "ć", "c", "ę", "e", "ł", "l", "ń", "n",
	"ó", "o", "ś", "s", "ź", "z", "ż", "z",
	"-", " ", "_", " ",
)

func foldCategory(s string) string {
	return strings.TrimSpace(diacriticFolder.Replace(strings.ToLower(s)))
}
