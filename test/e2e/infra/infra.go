package infra

// InfraManager abstracts the lifecycle of the record-manager server for e2e tests.
// Process-based: starts the binary locally on a throwaway database.
// External: no-op, the server is managed outside the test run.
type InfraManager interface {
	StartServer() (string, error)
	StopServer() error
	RestartServer() error
}

// ServerConfig holds configuration for starting a server instance.
type ServerConfig struct {
	Binary       string
	HTTPPort     int
	DatabasePath string
	SeedDemo     bool
	PerPage      int
}
