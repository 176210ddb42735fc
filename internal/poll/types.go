// internal/poll/types.go
package poll

import (
	"time"

	"github.com/tamzrod/modbus-sensorbridge/internal/mapping"
)

// EntryError is one failed sensor read within a cycle.
type EntryError struct {
	Entry mapping.Entry
	Err   error
}

// Result is the summary of one refresh cycle.
type Result struct {
	At        time.Time
	Refreshed int          // entries written this cycle
	Errors    []EntryError // failed entries; their stale words were kept
}
