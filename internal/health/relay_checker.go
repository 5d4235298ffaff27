package health

import "context"

// RelayProber is the slice of the relay client the checker needs.
type RelayProber interface {
	Healthy(ctx context.Context) error
	Model() string
}

// RelayChecker verifies the completion relay can reach its provider.
type RelayChecker struct {
	relay RelayProber
}

// NewRelayChecker creates a checker for the given relay client.
func NewRelayChecker(relay RelayProber) *RelayChecker {
	return &RelayChecker{relay: relay}
}

// Name implements Checker.
func (c *RelayChecker) Name() string {
	return "completion-relay"
}

// Check implements Checker. A relay failure degrades the service rather
// than failing it outright: plan generation still works via the fallback.
func (c *RelayChecker) Check(ctx context.Context) *Result {
	if c.relay == nil {
		return &Result{
			Status:  StatusDegraded,
			Message: "relay not configured; fallback plans only",
		}
	}

	if err := c.relay.Healthy(ctx); err != nil {
		return &Result{
			Status:  StatusDegraded,
			Message: "provider unreachable; fallback plans only",
			Details: map[string]any{"error": err.Error()},
		}
	}

	result := Healthy("provider reachable")
	result.Details = map[string]any{"model": c.relay.Model()}
	return result
}
