// internal/store/store.go
package store

import (
	"sync"

	"github.com/simonvetter/modbus"
)

// RegisterStore is the shared holding-register table. The refresh loop
// writes mapped values into it; server connections read from it
// concurrently. One RWMutex guards the whole table: a multi-register
// value is always written under a single lock and a client request is
// always answered under a single read lock, so a register pair can never
// be observed torn.
type RegisterStore struct {
	mu   sync.RWMutex
	regs map[uint16]uint16
}

// New creates an empty store. Unset addresses read as zero.
func New() *RegisterStore {
	return &RegisterStore{regs: make(map[uint16]uint16)}
}

// SetRegisters writes a group of consecutive words starting at addr.
func (s *RegisterStore) SetRegisters(addr uint16, words []uint16) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, w := range words {
		s.regs[addr+uint16(i)] = w
	}
}

// Registers returns quantity words starting at addr.
func (s *RegisterStore) Registers(addr, quantity uint16) []uint16 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]uint16, quantity)
	for i := range out {
		out[i] = s.regs[addr+uint16(i)]
	}
	return out
}

// ---- modbus.RequestHandler ----

// HandleCoils rejects bit access: the bridge serves registers only.
func (s *RegisterStore) HandleCoils(req *modbus.CoilsRequest) ([]bool, error) {
	return nil, modbus.ErrIllegalFunction
}

// HandleDiscreteInputs rejects bit access.
func (s *RegisterStore) HandleDiscreteInputs(req *modbus.DiscreteInputsRequest) ([]bool, error) {
	return nil, modbus.ErrIllegalFunction
}

// HandleHoldingRegisters serves reads from the table. Writes are stored
// verbatim; anything under a mapped entry is overwritten again on the
// next refresh cycle.
func (s *RegisterStore) HandleHoldingRegisters(req *modbus.HoldingRegistersRequest) ([]uint16, error) {
	if err := checkRange(req.Addr, req.Quantity); err != nil {
		return nil, err
	}
	if req.IsWrite {
		s.SetRegisters(req.Addr, req.Args)
		return req.Args, nil
	}
	return s.Registers(req.Addr, req.Quantity), nil
}

// HandleInputRegisters serves the same table as holding registers.
func (s *RegisterStore) HandleInputRegisters(req *modbus.InputRegistersRequest) ([]uint16, error) {
	if err := checkRange(req.Addr, req.Quantity); err != nil {
		return nil, err
	}
	return s.Registers(req.Addr, req.Quantity), nil
}

func checkRange(addr, quantity uint16) error {
	if quantity == 0 {
		return modbus.ErrIllegalDataValue
	}
	if uint32(addr)+uint32(quantity) > 0x10000 {
		return modbus.ErrIllegalDataAddress
	}
	return nil
}
