// Package lifecycle holds shared constants for application startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of servers and store connections.
const DefaultTimeout = 10 * time.Second
