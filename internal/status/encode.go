// internal/status/encode.go
package status

// Encode converts a Snapshot into a full status block.
// Layout is locked. No IO. No side effects.
func Encode(s Snapshot) []uint16 {
	words := make([]uint16, BlockWords)

	words[SlotHealthCode] = s.Health
	words[SlotEntryCount] = s.EntryCount
	words[SlotHeartbeat] = s.Heartbeat
	words[SlotFailedReads] = s.FailedReads

	return words
}
