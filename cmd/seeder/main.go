// cmd/seeder/main.go
package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/ammerola/shoplist-be/internal/adapters/db"
	redis_a "github.com/ammerola/shoplist-be/internal/adapters/redis_adapter"
	"github.com/ammerola/shoplist-be/internal/core/domain"
	"github.com/ammerola/shoplist-be/internal/core/services"
	"github.com/ammerola/shoplist-be/internal/pkg/config"
	"github.com/ammerola/shoplist-be/internal/pkg/logger"
	"github.com/ammerola/shoplist-be/internal/workers"
)

// seederState tracks files that were already seeded
type seederState struct {
	SeededFiles []string  `json:"seeded_files"`
	LastUpdate  time.Time `json:"last_update"`
}

// sampleList is a list seeded when no file is given
type sampleList struct {
	name  string
	items []*domain.ShoppingItem
}

func kg(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func sampleLists() []sampleList {
	return []sampleList{
		{
			name: "Zakupy na weekend",
			items: []*domain.ShoppingItem{
				{Name: "Mleko 2%", Quantity: 2, Category: "Nabiał", Barcode: "5900820000011"},
				{Name: "Masło", Quantity: 1, Category: "Nabiał"},
				{Name: "Jabłka", Weight: kg("1.5"), Category: "Warzywa i owoce"},
				{Name: "Ziemniaki", Weight: kg("2"), Category: "Warzywa i owoce"},
				{Name: "Chleb żytni", Quantity: 1, Category: "Pieczywo"},
				{Name: "Kurczak", Weight: kg("0.8"), Category: "Mięso i wędliny"},
				{Name: "Woda mineralna", Quantity: 6, Category: "Napoje"},
			},
		},
		{
			name: "Impreza",
			items: []*domain.ShoppingItem{
				{Name: "Chipsy", Quantity: 3, Category: "Przekąski"},
				{Name: "Czekolada gorzka", Quantity: 2, Category: "Słodycze"},
				{Name: "Sok pomarańczowy", Quantity: 2, Category: "Napoje"},
				{Name: "Serwetki", Quantity: 1},
			},
		},
	}
}

func main() {
	var (
		file      = flag.String("file", "", "Workbook (.xlsx) or share text (.txt) to seed a list from")
		listName  = flag.String("list", "", "Name of the list to create, defaults to the file name")
		stateFile = flag.String("state", "./.seed_state.json", "State file for tracking seeded files")
		logLevel  = flag.String("log-level", "info", "Log level (debug, info, warn, error)")
		reset     = flag.Bool("reset", false, "Delete all lists and items before seeding")
		dryRun    = flag.Bool("dry-run", false, "Parse input without modifying the database")
		force     = flag.Bool("force", false, "Seed files that were already seeded")
	)
	flag.Parse()

	slogger := logger.SetupLogger(*logLevel, "json")
	slog.SetDefault(slogger)

	var lists []sampleList
	if *file != "" {
		list, skipped, err := loadFile(*file, *listName)
		if err != nil {
			slogger.Error("failed to read seed file", slog.String("file", *file), slog.String("error", err.Error()))
			os.Exit(1)
		}
		fmt.Printf("Parsed %s: %d items, %d skipped\n", *file, len(list.items), skipped)
		lists = append(lists, list)
	} else {
		lists = sampleLists()
	}

	if *dryRun {
		for _, l := range lists {
			fmt.Print(domain.FormatShareText(l.items))
		}
		fmt.Println("[DRY RUN] No changes were made to the database")
		return
	}

	state := loadState(*stateFile)
	if *file != "" && !*force && slices.Contains(state.SeededFiles, filepath.Base(*file)) {
		slogger.Info("file already seeded, use -force to seed it again", slog.String("file", *file))
		return
	}

	cfg, err := config.Load(slogger)
	if err != nil {
		slogger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()
	database, err := db.NewDatabase(ctx, &db.Config{
		Host:           cfg.Database.Host,
		Port:           cfg.Database.Port,
		User:           cfg.Database.User,
		Password:       cfg.Database.Password,
		Database:       cfg.Database.Name,
		SSLMode:        cfg.Database.SSLMode,
		MaxConnections: 4,
		MinConnections: 1,
		ConnectTimeout: cfg.Database.ConnectTimeout,
	}, slogger)
	if err != nil {
		slogger.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddress(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	cache := redis_a.NewCache(redisClient, cfg.Redis.TTL, slogger)
	shopping := services.NewShoppingService(
		db.NewListRepository(database, slogger),
		db.NewItemRepository(database, slogger),
		cache,
		slogger,
	)

	if *reset {
		if err := database.Truncate(ctx, "shopping_items", "shopping_lists"); err != nil {
			slogger.Error("failed to reset tables", slog.String("error", err.Error()))
			os.Exit(1)
		}
		if err := redis_a.NewCacheManager(cache, slogger).InvalidateDerived(ctx); err != nil {
			slogger.Warn("failed to clear cached summaries", slog.String("error", err.Error()))
		}
		fmt.Println("Removed all lists and items")
	}

	totalItems := 0
	for _, l := range lists {
		list, err := shopping.CreateList(ctx, l.name)
		if err != nil {
			slogger.Error("failed to create list", slog.String("name", l.name), slog.String("error", err.Error()))
			os.Exit(1)
		}

		added, err := shopping.AddItems(ctx, list.ID, l.items)
		if err != nil {
			slogger.Error("failed to add items",
				slog.Int64("list_id", list.ID),
				slog.String("error", err.Error()))
			os.Exit(1)
		}
		totalItems += added
		fmt.Printf("SUCCESS: list %d %q - %d items\n", list.ID, list.Name, added)
	}

	if *file != "" {
		state.SeededFiles = append(state.SeededFiles, filepath.Base(*file))
		state.LastUpdate = time.Now()
		saveState(*stateFile, state, slogger)
	}

	slogger.Info("seed operation completed",
		slog.Int("lists_created", len(lists)),
		slog.Int("items_created", totalItems))
}

// loadFile reads a list from a workbook or a share text file
func loadFile(path, name string) (sampleList, int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return sampleList{}, 0, err
	}

	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	var (
		items   []*domain.ShoppingItem
		skipped int
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		items, skipped, err = workers.ReadWorkbook(data)
		if err != nil {
			return sampleList{}, 0, err
		}
	case ".txt":
		var lines []string
		scanner := bufio.NewScanner(bytes.NewReader(data))
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return sampleList{}, 0, err
		}
		items, skipped = workers.ParseListText(lines)
	default:
		return sampleList{}, 0, fmt.Errorf("unsupported file type %q", filepath.Ext(path))
	}

	if len(items) == 0 {
		return sampleList{}, skipped, fmt.Errorf("no items found in %s", path)
	}
	return sampleList{name: name, items: items}, skipped, nil
}

func loadState(path string) seederState {
	var state seederState
	if data, err := os.ReadFile(path); err == nil {
		_ = json.Unmarshal(data, &state)
	}
	return state
}

func saveState(path string, state seederState, logger *slog.Logger) {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		logger.Warn("failed to save seeder state", slog.String("error", err.Error()))
	}
}
