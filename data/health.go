package data

import (
	"context"
	"time"
)

// Health reports the database status for the health endpoint
func (d *Data) Health(ctx context.Context) map[string]any {
	start := time.Now()
	err := d.Ping(ctx)

	status := "healthy"
	if err != nil {
		status = "unhealthy"
	}

	return map[string]any{
		"status":      status,
		"driver":      d.Driver(),
		"response_ms": time.Since(start).Milliseconds(),
		"error":       getErrorString(err),
	}
}

func getErrorString(err error) string {
	if err != nil {
		return err.Error()
	}
	return ""
}
