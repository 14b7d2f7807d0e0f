// internal/core/services/product_service_test.go
package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	redis_a "github.com/ammerola/shoplist-be/internal/adapters/redis_adapter"
	"github.com/ammerola/shoplist-be/internal/core/domain"
	"github.com/ammerola/shoplist-be/internal/core/services"
	"github.com/ammerola/shoplist-be/test/helpers"
	"github.com/ammerola/shoplist-be/test/mocks"
)

func newProductService(t *testing.T) (*services.ProductService, *mocks.MockProductLookup, *helpers.TestRedis) {
	t.Helper()
	ctrl := gomock.NewController(t)

	testRedis := helpers.SetupTestRedis(t)
	cache := redis_a.NewCache(testRedis.Client, time.Hour, helpers.TestLogger())
	lookup := mocks.NewMockProductLookup(ctrl)

	return services.NewProductService(lookup, cache, time.Hour, helpers.TestLogger()), lookup, testRedis
}

func TestProductService_Resolve(t *testing.T) {
	tests := []struct {
		name         string
		barcode      string
		setupMocks   func(m *mocks.MockProductLookup)
		wantName     string
		wantFound    bool
		wantCategory string
		wantErr      error
	}{
		{
			name:    "found_with_suggested_category",
			barcode: "5900512300108",
			setupMocks: func(m *mocks.MockProductLookup) {
				m.EXPECT().Lookup(gomock.Any(), "5900512300108").Return(&domain.Product{
					Barcode:  "5900512300108",
					Name:     "Mleko 2%",
					Category: "nabial",
					Found:    true,
				}, nil)
			},
			wantName:     "Mleko 2%",
			wantFound:    true,
			wantCategory: "Nabiał",
		},
		{
			name:    "not_found_returns_fallback",
			barcode: "123",
			setupMocks: func(m *mocks.MockProductLookup) {
				m.EXPECT().Lookup(gomock.Any(), "123").Return(nil, domain.ErrProductNotFound)
			},
			wantName: "Produkt 123",
			wantErr:  domain.ErrProductNotFound,
		},
		{
			name:    "connection_error_returns_fallback",
			barcode: "456",
			setupMocks: func(m *mocks.MockProductLookup) {
				m.EXPECT().Lookup(gomock.Any(), "456").Return(nil, errors.New("dial tcp: timeout"))
			},
			wantName: "Produkt 456",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, lookup, _ := newProductService(t)
			tt.setupMocks(lookup)

			product, err := service.Resolve(context.Background(), tt.barcode)

			require.NotNil(t, product)
			assert.Equal(t, tt.wantName, product.Name)
			assert.Equal(t, tt.wantFound, product.Found)
			assert.Equal(t, tt.wantCategory, product.SuggestedCategory)

			if tt.wantFound {
				assert.NoError(t, err)
				return
			}

			var lookupErr *domain.LookupError
			require.ErrorAs(t, err, &lookupErr)
			assert.Equal(t, tt.wantName, lookupErr.Fallback)
			assert.NotEmpty(t, product.Notice)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestProductService_Resolve_UsesCache(t *testing.T) {
	service, lookup, testRedis := newProductService(t)

	lookup.EXPECT().Lookup(gomock.Any(), "5901234123457").Return(&domain.Product{
		Barcode: "5901234123457",
		Name:    "Chleb razowy",
		Found:   true,
	}, nil).Times(1)

	for i := 0; i < 3; i++ {
		product, err := service.Resolve(context.Background(), "5901234123457")
		require.NoError(t, err)
		assert.Equal(t, "Chleb razowy", product.Name)
	}

	assert.True(t, testRedis.Server.Exists("product:5901234123457"))
}

func TestProductService_Resolve_FailuresAreNotCached(t *testing.T) {
	service, lookup, testRedis := newProductService(t)

	lookup.EXPECT().Lookup(gomock.Any(), "777").Return(nil, domain.ErrProductNotFound).Times(2)

	_, err := service.Resolve(context.Background(), "777")
	require.Error(t, err)
	_, err = service.Resolve(context.Background(), "777")
	require.Error(t, err)

	assert.False(t, testRedis.Server.Exists("product:777"))
}

func TestProductService_Resolve_RejectsNonNumeric(t *testing.T) {
	service, _, _ := newProductService(t)

	product, err := service.Resolve(context.Background(), "abc")

	assert.Nil(t, product)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestSuggestCategory(t *testing.T) {
	tests := []struct {
		tag  string
		want string
	}{
		{tag: "napoje", want: "Napoje"},
		{tag: "slodycze", want: "Słodycze"},
		{tag: "pieczywa", want: "Pieczywo"},
		{tag: "przekaski", want: "Przekąski"},
		{tag: "mieso-i-wedliny", want: "Mięso i wędliny"},
		{tag: "", want: ""},
		{tag: "elektronika-domowa", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			assert.Equal(t, tt.want, services.SuggestCategory(tt.tag))
		})
	}
}
