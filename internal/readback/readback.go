// internal/readback/readback.go
package readback

import (
	"errors"
	"fmt"
	"time"

	"github.com/goburrow/modbus"

	"github.com/tamzrod/modbus-sensorbridge/internal/mapping"
)

// regReader is the one Modbus call the readback path needs.
type regReader interface {
	ReadHoldingRegisters(address, quantity uint16) ([]byte, error)
}

// Client reads mapped entries back from a running bridge and decodes
// them. It is the verification-side counterpart of the refresh loop.
type Client struct {
	handler *modbus.TCPClientHandler
	reader  regReader
}

// Config is minimal transport config.
type Config struct {
	Target  string // host:port
	UnitID  uint8
	Timeout time.Duration
}

// New creates a connected Modbus TCP client.
func New(cfg Config) (*Client, error) {
	if cfg.Target == "" {
		return nil, errors.New("readback: target required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 2 * time.Second
	}

	h := modbus.NewTCPClientHandler(cfg.Target)
	h.Timeout = cfg.Timeout
	h.SlaveId = cfg.UnitID

	if err := h.Connect(); err != nil {
		return nil, err
	}

	return &Client{handler: h, reader: modbus.NewClient(h)}, nil
}

// Close closes the TCP connection.
func (c *Client) Close() error {
	if c == nil || c.handler == nil {
		return nil
	}
	return c.handler.Close()
}

// ReadEntry reads one mapped entry and decodes it per its encoding.
func (c *Client) ReadEntry(e mapping.Entry) (float64, error) {
	words := e.Enc.Words()

	raw, err := c.reader.ReadHoldingRegisters(e.Address, words)
	if err != nil {
		return 0, fmt.Errorf("readback: %s @%d: %w", e.Path, e.Address, err)
	}
	if len(raw) != int(words)*2 {
		return 0, fmt.Errorf("readback: %s @%d: short response (%d bytes)", e.Path, e.Address, len(raw))
	}

	// registers arrive big-endian on the wire
	regs := make([]uint16, words)
	for i := range regs {
		regs[i] = uint16(raw[2*i])<<8 | uint16(raw[2*i+1])
	}

	return e.Enc.Decode(regs)
}
