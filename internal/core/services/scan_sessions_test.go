// internal/core/services/scan_sessions_test.go
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

type scanFixture struct {
	service  *services.ScanService
	lists    *mocks.MockListRepository
	products *mocks.MockProductService
	redis    *helpers.TestRedis
}

func newScanService(t *testing.T, opts services.ScanOptions) scanFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	testRedis := helpers.SetupTestRedis(t)
	cache := redis_a.NewCache(testRedis.Client, time.Hour, helpers.TestLogger())
	lists := mocks.NewMockListRepository(ctrl)
	products := mocks.NewMockProductService(ctrl)

	return scanFixture{
		service:  services.NewScanService(lists, products, cache, opts, helpers.TestLogger()),
		lists:    lists,
		products: products,
		redis:    testRedis,
	}
}

func TestScanService_StartAndScan(t *testing.T) {
	f := newScanService(t, services.ScanOptions{})
	ctx := context.Background()

	f.lists.EXPECT().Exists(gomock.Any(), int64(3)).Return(true, nil)
	f.products.EXPECT().Resolve(gomock.Any(), "5901234123457").Return(&domain.Product{
		Barcode: "5901234123457",
		Name:    "Mleko",
		Found:   true,
	}, nil)

	snap, err := f.service.Start(ctx, "phone-1", 3)
	require.NoError(t, err)
	assert.Equal(t, domain.ScanArmed, snap.State)
	assert.Equal(t, uint64(1), snap.RequestID)
	assert.True(t, snap.ScannerOpen)
	assert.Equal(t, "/lists/3/scan", snap.NavigateTo)

	delivered, err := f.service.Scanned(ctx, "phone-1", "5901234123457")
	require.NoError(t, err)
	assert.True(t, delivered)

	snap, err = f.service.Snapshot(ctx, "phone-1")
	require.NoError(t, err)
	assert.Equal(t, domain.ScanLocked, snap.State)
	assert.False(t, snap.ScannerOpen)
	require.NotNil(t, snap.Result)
	assert.Equal(t, "Mleko", snap.Result.Name)

	assert.True(t, f.redis.Server.Exists("scan:phone-1"))
}

func TestScanService_DuplicateDecodeIsDropped(t *testing.T) {
	f := newScanService(t, services.ScanOptions{})
	ctx := context.Background()

	f.lists.EXPECT().Exists(gomock.Any(), int64(1)).Return(true, nil)
	f.products.EXPECT().Resolve(gomock.Any(), "111").Return(&domain.Product{Barcode: "111", Name: "A", Found: true}, nil).Times(1)

	_, err := f.service.Start(ctx, "s", 1)
	require.NoError(t, err)

	first, err := f.service.Scanned(ctx, "s", "111")
	require.NoError(t, err)
	second, err := f.service.Scanned(ctx, "s", "111")
	require.NoError(t, err)

	assert.True(t, first)
	assert.False(t, second)
}

func TestScanService_LookupFailureStoresFallback(t *testing.T) {
	f := newScanService(t, services.ScanOptions{})
	ctx := context.Background()

	f.lists.EXPECT().Exists(gomock.Any(), int64(1)).Return(true, nil)
	f.products.EXPECT().Resolve(gomock.Any(), "999").Return(
		domain.FallbackProduct("999", "not found"),
		domain.NewLookupError("999", domain.ErrProductNotFound),
	)

	_, err := f.service.Start(ctx, "s", 1)
	require.NoError(t, err)

	delivered, err := f.service.Scanned(ctx, "s", "999")
	require.NoError(t, err)
	assert.True(t, delivered)

	snap, err := f.service.Snapshot(ctx, "s")
	require.NoError(t, err)
	assert.Equal(t, "Produkt 999", snap.Result.Name)
	assert.False(t, snap.Result.Found)
}

func TestScanService_UnknownSessionDropsScan(t *testing.T) {
	f := newScanService(t, services.ScanOptions{})

	delivered, err := f.service.Scanned(context.Background(), "nobody", "000")

	require.NoError(t, err)
	assert.False(t, delivered)
	assert.NoError(t, f.service.Reset(context.Background(), "nobody"))
}

func TestScanService_Validation(t *testing.T) {
	f := newScanService(t, services.ScanOptions{})
	ctx := context.Background()

	_, err := f.service.Scanned(ctx, "s", "12a")
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = f.service.Scanned(ctx, "s", "")
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = f.service.Start(ctx, "", 1)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestScanService_StartUnknownList(t *testing.T) {
	f := newScanService(t, services.ScanOptions{})

	f.lists.EXPECT().Exists(gomock.Any(), int64(9)).Return(false, nil)

	_, err := f.service.Start(context.Background(), "s", 9)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestScanService_StartStoreFailure(t *testing.T) {
	f := newScanService(t, services.ScanOptions{})

	f.lists.EXPECT().Exists(gomock.Any(), int64(9)).Return(false, errors.New("db down"))

	_, err := f.service.Start(context.Background(), "s", 9)
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}

func TestScanService_ResetAfterCooldown(t *testing.T) {
	f := newScanService(t, services.ScanOptions{ResetCooldown: 20 * time.Millisecond})
	ctx := context.Background()

	f.lists.EXPECT().Exists(gomock.Any(), int64(1)).Return(true, nil)
	f.products.EXPECT().Resolve(gomock.Any(), "111").Return(&domain.Product{Name: "A", Found: true}, nil)

	_, err := f.service.Start(ctx, "s", 1)
	require.NoError(t, err)
	_, err = f.service.Scanned(ctx, "s", "111")
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		snap, err := f.service.Snapshot(ctx, "s")
		return err == nil && snap.State == domain.ScanIdle
	}, time.Second, 10*time.Millisecond)
}

func TestScanService_SnapshotFallsBackToCache(t *testing.T) {
	f := newScanService(t, services.ScanOptions{})
	ctx := context.Background()

	_, err := f.service.Snapshot(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, f.redis.Server.Set("scan:evicted",
		`{"session":"evicted","state":"locked","request_id":4,"result":{"barcode":"1","name":"Ser","found":true}}`))

	snap, err := f.service.Snapshot(ctx, "evicted")
	require.NoError(t, err)
	assert.Equal(t, uint64(4), snap.RequestID)
	assert.Equal(t, "Ser", snap.Result.Name)
}

func TestScanService_RestartSupersedesPendingRequest(t *testing.T) {
	f := newScanService(t, services.ScanOptions{})
	ctx := context.Background()

	f.lists.EXPECT().Exists(gomock.Any(), gomock.Any()).Return(true, nil).Times(2)
	f.products.EXPECT().Resolve(gomock.Any(), "222").Return(&domain.Product{Name: "B", Found: true}, nil)

	_, err := f.service.Start(ctx, "s", 1)
	require.NoError(t, err)
	snap, err := f.service.Start(ctx, "s", 2)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), snap.RequestID)

	delivered, err := f.service.Scanned(ctx, "s", "222")
	require.NoError(t, err)
	assert.True(t, delivered)

	snap, err = f.service.Snapshot(ctx, "s")
	require.NoError(t, err)
	assert.Equal(t, int64(2), snap.ListID)
}

func TestScanService_SupersededLookupIsDiscarded(t *testing.T) {
	f := newScanService(t, services.ScanOptions{})
	ctx := context.Background()

	lookupStarted := make(chan struct{})
	releaseLookup := make(chan struct{})

	f.lists.EXPECT().Exists(gomock.Any(), gomock.Any()).Return(true, nil).Times(2)
	f.products.EXPECT().Resolve(gomock.Any(), "111").DoAndReturn(
		func(context.Context, string) (*domain.Product, error) {
			close(lookupStarted)
			<-releaseLookup
			return &domain.Product{Barcode: "111", Name: "Old", Found: true}, nil
		})

	_, err := f.service.Start(ctx, "s", 1)
	require.NoError(t, err)

	scanned := make(chan bool)
	go func() {
		delivered, _ := f.service.Scanned(ctx, "s", "111")
		scanned <- delivered
	}()
	<-lookupStarted

	_, err = f.service.Start(ctx, "s", 2)
	require.NoError(t, err)

	close(releaseLookup)
	assert.True(t, <-scanned)

	snap, err := f.service.Snapshot(ctx, "s")
	require.NoError(t, err)
	assert.Equal(t, domain.ScanArmed, snap.State)
	assert.Equal(t, uint64(2), snap.RequestID)
	assert.Equal(t, int64(2), snap.ListID)
	assert.True(t, snap.ScannerOpen)
	assert.Nil(t, snap.Result)
	assert.False(t, f.redis.Server.Exists("scan:s"))
}
