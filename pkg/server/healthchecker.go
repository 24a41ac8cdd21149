package server

import "context"

// HealthChecker reports whether a dependency is able to serve requests.
// Storage backends implement it so the health endpoint can surface their
// state.
type HealthChecker interface {
	Healthy(ctx context.Context) bool
}

// OkHealthChecker always reports healthy. It backs setups with no external
// dependencies to probe.
type OkHealthChecker struct{}

func NewOkHealthChecker() *OkHealthChecker {
	return &OkHealthChecker{}
}

func (hc *OkHealthChecker) Healthy(ctx context.Context) bool {
	return true
}
