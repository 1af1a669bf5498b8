package until

import (
	"sync"
	"time"
)

// Defaults are the process-wide values applied by Try. Zero MaxTryCount and
// TimeLimit mean unbounded.
type Defaults struct {
	TryInterval time.Duration
	MaxTryCount int
	TimeLimit   time.Duration
}

const DefaultTryInterval = 100 * time.Millisecond

var (
	defaultsMtx sync.RWMutex
	defaults    = Defaults{
		TryInterval: DefaultTryInterval,
	}
)

// CurrentDefaults returns a snapshot of the process-wide defaults.
func CurrentDefaults() Defaults {
	defaultsMtx.RLock()
	defer defaultsMtx.RUnlock()

	return defaults
}

// SetDefaults replaces the process-wide defaults used by subsequent Try
// calls. Configurations already built keep their values.
func SetDefaults(d Defaults) {
	defaultsMtx.Lock()
	defer defaultsMtx.Unlock()

	defaults = d
}
