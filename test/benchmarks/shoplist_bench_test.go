package benchmarks

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/ammerola/shoplist-be/internal/adapters/db"
	redis_a "github.com/ammerola/shoplist-be/internal/adapters/redis_adapter"
	"github.com/ammerola/shoplist-be/internal/core/domain"
	"github.com/ammerola/shoplist-be/internal/core/services"
	"github.com/ammerola/shoplist-be/internal/workers"
	"github.com/ammerola/shoplist-be/test/helpers"
)

func BenchmarkShoppingOperations(b *testing.B) {
	t := &testing.T{}
	testDB := helpers.SetupTestDB(t)
	testRedis := helpers.SetupTestRedis(t)
	logger := helpers.TestLogger()

	cache := redis_a.NewCache(testRedis.Client, 0, logger)
	service := services.NewShoppingService(
		db.NewListRepository(testDB.Database, logger),
		db.NewItemRepository(testDB.Database, logger),
		cache,
		logger,
	)
	ctx := context.Background()

	list, err := service.CreateList(ctx, "Benchmark")
	if err != nil {
		b.Fatal(err)
	}

	b.Run("AddItem", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			item := &domain.ShoppingItem{
				Name:     fmt.Sprintf("Produkt %d", i),
				Quantity: 1,
				Category: "Inne",
			}
			_, _ = service.AddItem(ctx, list.ID, item)
		}
	})

	b.Run("GetItems", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = service.GetItems(ctx, list.ID)
		}
	})

	b.Run("CachedSummary", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = service.Summary(ctx, list.ID)
		}
	})

	b.Run("BatchAdd", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = service.AddItems(ctx, list.ID, helpers.CreateTestItems(100))
		}
	})
}

func BenchmarkScanCoordinator(b *testing.B) {
	coordinator := services.NewScanCoordinator(&navigatorStub{}, helpers.TestLogger())
	callback := func(string) {}

	b.Run("HandOff", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			coordinator.StartScan(callback)
			coordinator.OnScanned("5900512300108")
			coordinator.ResetScan()
		}
	})

	b.Run("DuplicateFrames", func(b *testing.B) {
		coordinator.StartScan(callback)
		coordinator.OnScanned("5900512300108")

		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			coordinator.OnScanned("5900512300108")
		}
	})
}

func BenchmarkParseListText(b *testing.B) {
	lines := createShareLines(100)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = workers.ParseListText(lines)
	}
}

func BenchmarkWorkbook(b *testing.B) {
	list := helpers.CreateTestList()
	items := helpers.CreateTestItems(200)

	b.Run("Write", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			var buf bytes.Buffer
			_ = workers.WriteWorkbook(&buf, list, items)
		}
	})

	var buf bytes.Buffer
	if err := workers.WriteWorkbook(&buf, list, items); err != nil {
		b.Fatal(err)
	}
	data := buf.Bytes()

	b.Run("Read", func(b *testing.B) {
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _, _ = workers.ReadWorkbook(data)
		}
	})
}

func BenchmarkShareText(b *testing.B) {
	items := helpers.CreateTestItems(100)

	b.Run("Format", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_ = domain.FormatShareText(items)
		}
	})

	text := domain.FormatShareText(items)
	b.Run("SMSURI", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_ = domain.SMSURI(text)
		}
	})
}

func BenchmarkSuggestCategory(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = services.SuggestCategory(offTags[i%len(offTags)])
	}
}
