// cmd/regread/main.go
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/tamzrod/modbus-sensorbridge/internal/mapping"
	"github.com/tamzrod/modbus-sensorbridge/internal/readback"
)

func main() {
	var (
		target  = flag.String("target", "localhost:5020", "bridge address (host:port)")
		unitID  = flag.Uint("unit", 1, "unit/slave id to use")
		mapFile = flag.String("mapping", "device-mapping.txt", "mapping file the bridge was started with")
		timeout = flag.Duration("timeout", 2*time.Second, "request timeout")
	)
	flag.Parse()

	entries, err := mapping.Load(*mapFile)
	if err != nil {
		log.Fatalf("mapping load failed: %v", err)
	}

	cli, err := readback.New(readback.Config{
		Target:  *target,
		UnitID:  uint8(*unitID),
		Timeout: *timeout,
	})
	if err != nil {
		log.Fatalf("connect failed: %v", err)
	}
	defer cli.Close()

	failed := 0
	for _, e := range entries {
		v, err := cli.ReadEntry(e)
		if err != nil {
			failed++
			fmt.Printf("0x%04x  %-32s %-8s ERROR: %v\n", e.Address, e.Path, e.Enc, err)
			continue
		}
		fmt.Printf("0x%04x  %-32s %-8s %g\n", e.Address, e.Path, e.Enc, v)
	}

	if failed > 0 {
		os.Exit(1)
	}
}
