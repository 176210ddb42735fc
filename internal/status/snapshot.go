// internal/status/snapshot.go
package status

// Snapshot is the bridge state exactly as exposed to Modbus clients.
// It contains no logic and no memory of the past beyond current state.
type Snapshot struct {
	Health      uint16
	EntryCount  uint16
	Heartbeat   uint16
	FailedReads uint16
}
