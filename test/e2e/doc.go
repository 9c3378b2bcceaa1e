/*
Package main provides end-to-end tests for the record-manager HTTP API.

# Package Structure

	test/e2e/
	├── main.go          Entry point: flags, config, InfraManager setup, Ginkgo runner
	├── tests.go         Ginkgo test specs (view, records, selection, export)
	├── doc.go           This file
	├── infra/           Server lifecycle
	│   ├── infra.go     InfraManager interface + ServerConfig
	│   ├── process.go   ProcessInfraManager (runs the binary)
	│   └── external.go  ExternalInfraManager (no-op, server managed elsewhere)
	└── service/
	    └── service.go   RecordsSvc, HTTP client for /api/v1

# InfraManager

	type InfraManager interface {
	    StartServer() (baseURL, error)
	    StopServer()
	    RestartServer()
	}

Two implementations:
  - ProcessInfraManager: starts `record-manager serve` on a temp DuckDB file and
    waits for /api/v1/view to answer (default).
  - ExternalInfraManager: no-op; the server is already running at -api-url.

Selected via the -infra-mode flag ("process" or "external").

The specs are Ordered: they share one server and build on each other's state.

# Running

	go build -o bin/record-manager ./cmd/record-manager
	go run ./test/e2e -binary bin/record-manager
	go run ./test/e2e -infra-mode external -api-url http://localhost:8000
*/
package main
