// test/mocks/mocks.go

// Package mocks contains generated mocks for the application's interfaces.
// To regenerate mocks, run `go generate ./test/mocks` from the root directory.
package mocks

//go:generate mockgen -source=../../internal/core/ports/list_repository.go -destination=list_repository_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/item_repository.go -destination=item_repository_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/shopping_service.go -destination=shopping_service_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/product_lookup.go -destination=product_lookup_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/scan.go -destination=scan_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/share.go -destination=share_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/storage.go -destination=storage_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/jobs.go -destination=jobs_mock.go -package=mocks
//go:generate mockgen -source=../../internal/core/ports/cache.go -destination=cache_repository_mock.go -package=mocks
