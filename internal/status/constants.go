// internal/status/constants.go
package status

// Bridge status block layout constants.
// The block occupies BlockWords consecutive holding registers at the
// configured base address. These values define the layout and MUST NOT
// be configurable.

// ---- BLOCK GEOMETRY ----

// BlockWords is the fixed size of the status block.
const BlockWords = 8

// ---- SLOT INDICES ----

// SlotHealthCode holds the bridge health state.
const SlotHealthCode = 0

// SlotEntryCount holds the number of mapped entries.
const SlotEntryCount = 1

// SlotHeartbeat holds a counter that increments once per refresh cycle.
const SlotHeartbeat = 2

// SlotFailedReads holds the number of failed sensor reads in the last cycle.
const SlotFailedReads = 3

// ---- RESERVED RANGE ----

// Slots 4-7 are reserved for future use.
const SlotReservedStart = 4
const SlotReservedEnd = 7

// ---- HEALTH CODES ----

// HealthUnknown represents the boot state before the first cycle.
const HealthUnknown uint16 = 0

// HealthOK means every mapped sensor was read in the last cycle.
const HealthOK uint16 = 1

// HealthDegraded means at least one sensor read failed in the last cycle.
const HealthDegraded uint16 = 2
