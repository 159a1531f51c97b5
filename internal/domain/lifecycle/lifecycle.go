// Package lifecycle holds shared start/stop settings for fx hooks.
package lifecycle

import "time"

// DefaultTimeout bounds every OnStart/OnStop hook (pings, migrations, shutdown).
const DefaultTimeout = 15 * time.Second
