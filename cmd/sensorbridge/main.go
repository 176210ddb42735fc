// cmd/sensorbridge/main.go
package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/simonvetter/modbus"

	"github.com/tamzrod/modbus-sensorbridge/internal/config"
	"github.com/tamzrod/modbus-sensorbridge/internal/mapping"
	"github.com/tamzrod/modbus-sensorbridge/internal/poll"
	"github.com/tamzrod/modbus-sensorbridge/internal/status"
	"github.com/tamzrod/modbus-sensorbridge/internal/store"
)

const defaultConfigPath = "sensorbridge.yaml"

func main() {
	cfgPath := defaultConfigPath
	if len(os.Args) > 1 {
		cfgPath = os.Args[1]
	}

	// --------------------
	// Load + validate config
	// --------------------

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	if err := config.Validate(cfg); err != nil {
		log.Fatalf("config validation failed: %v", err)
	}
	config.Normalize(cfg)

	bridge := cfg.Bridge

	// --------------------
	// Load mapping table
	// --------------------

	entries, err := mapping.Load(bridge.MappingFile)
	if err != nil {
		log.Fatalf("mapping load failed: %v", err)
	}
	if len(entries) == 0 {
		log.Fatalf("mapping %s: no entries", bridge.MappingFile)
	}

	statusEnabled := bridge.StatusAddress != nil
	if statusEnabled {
		if !mapping.FitsRegisterSpace(*bridge.StatusAddress, status.BlockWords) {
			log.Fatalf("status block at %d extends past end of register space", *bridge.StatusAddress)
		}
		if mapping.Overlaps(entries, *bridge.StatusAddress, status.BlockWords) {
			log.Fatalf("status block at %d collides with a mapping entry", *bridge.StatusAddress)
		}
	}

	log.Printf("loaded %d mapping entries from %s", len(entries), bridge.MappingFile)

	// --------------------
	// Register store + refresher
	// --------------------

	regs := store.New()

	r, err := poll.Build(bridge, entries, regs)
	if err != nil {
		log.Fatalf("refresher build failed: %v", err)
	}

	var snap status.Snapshot
	snap.Health = status.HealthUnknown
	snap.EntryCount = uint16(len(entries))

	// Seed the registers before serving so the first client read does not
	// see an all-zero table.
	first := r.RefreshOnce()
	logReadErrors(first)
	if statusEnabled {
		advance(&snap, first)
		regs.SetRegisters(*bridge.StatusAddress, status.Encode(snap))
	}

	// --------------------
	// Modbus TCP server
	// --------------------

	server, err := modbus.NewServer(&modbus.ServerConfiguration{
		URL:        bridge.Listen,
		Timeout:    30 * time.Second,
		MaxClients: 5,
	}, regs)
	if err != nil {
		log.Fatalf("server setup failed: %v", err)
	}

	if err := server.Start(); err != nil {
		log.Fatalf("server start failed: %v", err)
	}
	defer server.Stop()

	log.Printf("serving holding registers on %s", bridge.Listen)

	// --------------------
	// Refresh loop + status bookkeeping
	// --------------------

	ctx := context.Background()
	out := make(chan poll.Result)

	go r.Run(ctx, out)

	for res := range out {
		logReadErrors(res)

		if !statusEnabled {
			continue
		}
		advance(&snap, res)
		regs.SetRegisters(*bridge.StatusAddress, status.Encode(snap))
	}
}

// advance updates the status snapshot with the outcome of one cycle.
func advance(snap *status.Snapshot, res poll.Result) {
	snap.Heartbeat++
	snap.FailedReads = uint16(len(res.Errors))
	if len(res.Errors) == 0 {
		snap.Health = status.HealthOK
	} else {
		snap.Health = status.HealthDegraded
	}
}

func logReadErrors(res poll.Result) {
	for _, fe := range res.Errors {
		log.Printf(
			"sensor read failed (path=%s addr=%d): %v (stale value kept)",
			fe.Entry.Path, fe.Entry.Address, fe.Err,
		)
	}
}
