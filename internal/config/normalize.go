// internal/config/normalize.go
package config

// Normalize applies post-validation defaults.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	b := &cfg.Bridge

	if b.Listen == "" {
		b.Listen = "tcp://localhost:5020"
	}
	if b.MappingFile == "" {
		b.MappingFile = "device-mapping.txt"
	}
	if b.Poll.IntervalMs == 0 {
		b.Poll.IntervalMs = 1000
	}
	if b.Source.Kind == "" {
		b.Source.Kind = SourceYHub
	}
	if b.Source.Kind == SourceYHub && b.Source.Endpoint == "" {
		b.Source.Endpoint = "http://127.0.0.1:4444"
	}
	if b.Source.TimeoutMs == 0 {
		b.Source.TimeoutMs = 500
	}
}
