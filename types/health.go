package types

type HealthStatus string

const (
	HealthStatusUp       HealthStatus = "UP"
	HealthStatusDown     HealthStatus = "DOWN"
	HealthStatusDegraded HealthStatus = "DEGRADED"
)

type HealthComponent struct {
	Status  HealthStatus `json:"status"`
	Details string       `json:"details,omitempty"`
}

// HealthCheck is the body served by the /health endpoints. Components is keyed
// by dependency name ("database", "redis", "workerPool").
type HealthCheck struct {
	Status     HealthStatus               `json:"status"`
	Components map[string]HealthComponent `json:"components"`
	Version    string                     `json:"version"`
	Timestamp  string                     `json:"timestamp"`
	Uptime     string                     `json:"uptime"`
}

// Worse returns the more severe of two statuses.
func (s HealthStatus) Worse(other HealthStatus) HealthStatus {
	if s == HealthStatusDown || other == HealthStatusDown {
		return HealthStatusDown
	}
	if s == HealthStatusDegraded || other == HealthStatusDegraded {
		return HealthStatusDegraded
	}
	return HealthStatusUp
}
