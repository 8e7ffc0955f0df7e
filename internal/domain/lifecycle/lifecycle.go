// Package lifecycle holds shared settings for component start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds every start/stop hook (DB ping, HTTP shutdown, publisher close).
const DefaultTimeout = 10 * time.Second
