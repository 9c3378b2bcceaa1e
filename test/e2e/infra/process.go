package infra

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"strconv"
	"syscall"
	"time"

	"github.com/cenkalti/backoff/v5"
	"go.uber.org/zap"
)

const readyTimeout = 30 * time.Second

// ProcessInfraManager runs the record-manager binary as a child process.
type ProcessInfraManager struct {
	cfg ServerConfig
	cmd *exec.Cmd
}

func NewProcessInfraManager(cfg ServerConfig) (*ProcessInfraManager, error) {
	if _, err := os.Stat(cfg.Binary); err != nil {
		return nil, fmt.Errorf("record-manager binary not found: %w", err)
	}
	return &ProcessInfraManager{cfg: cfg}, nil
}

func (p *ProcessInfraManager) baseURL() string {
	return fmt.Sprintf("http://localhost:%d", p.cfg.HTTPPort)
}

// StartServer launches the binary and waits until the API answers.
func (p *ProcessInfraManager) StartServer() (string, error) {
	args := []string{
		"serve",
		"--http-port", strconv.Itoa(p.cfg.HTTPPort),
		"--db", p.cfg.DatabasePath,
		"--seed-demo=" + strconv.FormatBool(p.cfg.SeedDemo),
		"--log-format", "json",
	}
	if p.cfg.PerPage > 0 {
		args = append(args, "--per-page", strconv.Itoa(p.cfg.PerPage))
	}

	cmd := exec.Command(p.cfg.Binary, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Start(); err != nil {
		return "", fmt.Errorf("failed to start server: %w", err)
	}
	p.cmd = cmd

	zap.S().Infow("server process started", "pid", cmd.Process.Pid, "url", p.baseURL())

	if err := p.waitReady(); err != nil {
		_ = p.StopServer()
		return "", err
	}
	return p.baseURL(), nil
}

func (p *ProcessInfraManager) waitReady() error {
	ctx, cancel := context.WithTimeout(context.Background(), readyTimeout)
	defer cancel()

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 100 * time.Millisecond
	b.MaxInterval = time.Second

	_, err := backoff.Retry(ctx, func() (struct{}, error) {
		resp, err := http.Get(p.baseURL() + "/api/v1/view")
		if err != nil {
			return struct{}{}, err
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return struct{}{}, fmt.Errorf("server not ready: status %d", resp.StatusCode)
		}
		return struct{}{}, nil
	}, backoff.WithBackOff(b))
	if err != nil {
		return fmt.Errorf("server did not become ready: %w", err)
	}
	return nil
}

// StopServer sends SIGTERM and waits for the process to exit.
func (p *ProcessInfraManager) StopServer() error {
	cmd := p.cmd
	if cmd == nil || cmd.Process == nil {
		return nil
	}
	p.cmd = nil

	if err := cmd.Process.Signal(syscall.SIGTERM); err != nil {
		return fmt.Errorf("failed to signal server: %w", err)
	}

	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()

	select {
	case <-done:
		return nil
	case <-time.After(10 * time.Second):
		return cmd.Process.Kill()
	}
}

// RestartServer stops and starts the server on the same database.
func (p *ProcessInfraManager) RestartServer() error {
	if err := p.StopServer(); err != nil {
		return err
	}
	_, err := p.StartServer()
	return err
}
