package infra

// ExternalInfraManager implements InfraManager for a server started outside
// the test run. Every lifecycle call is a no-op.
type ExternalInfraManager struct {
	baseURL string
}

func NewExternalInfraManager(baseURL string) *ExternalInfraManager {
	return &ExternalInfraManager{baseURL: baseURL}
}

func (e *ExternalInfraManager) StartServer() (string, error) { return e.baseURL, nil }
func (e *ExternalInfraManager) StopServer() error            { return nil }
func (e *ExternalInfraManager) RestartServer() error         { return nil }
