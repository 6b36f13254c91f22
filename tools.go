//go:build tools

// Package tools pins the versions of the build-time binaries used by this repo.
//
//	swag init -g cmd/app/main.go -o docs      regenerate the OpenAPI docs
//	goose -dir internal/database/migrations   inspect migrations by hand
//	benchstat old.txt new.txt                 compare benchmarks/engine runs
package tools

import (
	_ "github.com/golangci/golangci-lint/cmd/golangci-lint"
	_ "github.com/pressly/goose/v3/cmd/goose"
	_ "github.com/swaggo/swag/cmd/swag"
	_ "github.com/vektra/mockery/v2"
	_ "golang.org/x/perf/cmd/benchstat"
)
