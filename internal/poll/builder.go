// internal/poll/builder.go
package poll

import (
	"fmt"
	"time"

	cfg "github.com/tamzrod/modbus-sensorbridge/internal/config"
	"github.com/tamzrod/modbus-sensorbridge/internal/mapping"
	"github.com/tamzrod/modbus-sensorbridge/internal/sensor/sim"
	"github.com/tamzrod/modbus-sensorbridge/internal/sensor/yhub"
)

// Build constructs a Refresher wired to the sensor source the config
// names. Source construction failure is a startup error.
func Build(b cfg.BridgeConfig, entries []mapping.Entry, store Store) (*Refresher, error) {
	var source Source

	switch b.Source.Kind {
	case cfg.SourceYHub:
		c, err := yhub.New(yhub.Config{
			Endpoint: b.Source.Endpoint,
			Timeout:  time.Duration(b.Source.TimeoutMs) * time.Millisecond,
		})
		if err != nil {
			return nil, err
		}
		source = c

	case cfg.SourceSim:
		source = sim.New()

	default:
		return nil, fmt.Errorf("poll: unknown source kind %q", b.Source.Kind)
	}

	return New(
		Config{
			Interval: time.Duration(b.Poll.IntervalMs) * time.Millisecond,
			Entries:  entries,
		},
		source,
		store,
	)
}
