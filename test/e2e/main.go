package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"github.com/tupyy/record-manager/test/e2e/infra"
)

type configuration struct {
	InfraMode string // "process" or "external"
	Binary    string
	APIUrl    string
	HTTPPort  int
	WorkDir   string
	KeepDB    bool
}

var (
	cfg          configuration
	infraManager infra.InfraManager
)

func (c configuration) Validate() error {
	if c.InfraMode != "process" && c.InfraMode != "external" {
		return fmt.Errorf("invalid infra-mode %q: must be 'process' or 'external'", c.InfraMode)
	}
	if c.InfraMode == "process" && c.Binary == "" {
		return errors.New("record-manager binary is empty")
	}
	if c.InfraMode == "external" {
		if _, err := url.Parse(c.APIUrl); err != nil {
			return fmt.Errorf("failed to parse api url: %v", err)
		}
	}
	return nil
}

func main() {
	flag.StringVar(&cfg.InfraMode, "infra-mode", "process", "Infrastructure mode: 'process' (start the binary) or 'external' (already running)")
	flag.StringVar(&cfg.Binary, "binary", "bin/record-manager", "Path to the record-manager binary")
	flag.StringVar(&cfg.APIUrl, "api-url", "http://localhost:8000", "Server url in external mode")
	flag.IntVar(&cfg.HTTPPort, "http-port", 18000, "Port used in process mode")
	flag.StringVar(&cfg.WorkDir, "work-dir", "", "Directory for the test database (default: a temp dir)")
	flag.BoolVar(&cfg.KeepDB, "keep-db", false, "Keep the test database after completion (useful for debugging)")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	zap.ReplaceGlobals(logger)
	defer logger.Sync()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("failed to validate configuration: %v", err)
	}

	switch cfg.InfraMode {
	case "process":
		dir := cfg.WorkDir
		if dir == "" {
			dir, err = os.MkdirTemp("", "record-manager-e2e-")
			if err != nil {
				log.Fatalf("failed to create work dir: %v", err)
			}
		}
		if !cfg.KeepDB {
			defer os.RemoveAll(dir)
		}

		im, err := infra.NewProcessInfraManager(infra.ServerConfig{
			Binary:       cfg.Binary,
			HTTPPort:     cfg.HTTPPort,
			DatabasePath: filepath.Join(dir, "records.duckdb"),
			SeedDemo:     true,
			PerPage:      5,
		})
		if err != nil {
			log.Fatalf("failed to create process infra manager: %v", err)
		}
		infraManager = im
	case "external":
		infraManager = infra.NewExternalInfraManager(cfg.APIUrl)
	}

	RegisterFailHandler(Fail)
	if !RunSpecs(&testing.T{}, "E2E Suite") {
		os.Exit(1)
	}
}
