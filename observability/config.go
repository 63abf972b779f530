package observability

// Config configures command telemetry. With Enabled false every
// instrument is a no-op and nothing leaves the process.
type Config struct {
	// Enabled turns on OTLP export of spans and metrics.
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`
	// Endpoint is the OTLP HTTP endpoint host:port (e.g., "localhost:4318").
	Endpoint string `yaml:"endpoint" mapstructure:"endpoint"`
	// Insecure allows plain HTTP to the collector.
	Insecure bool `yaml:"insecure" mapstructure:"insecure"`
	// SampleRate is the trace sampling ratio; 0 falls back to 1.
	SampleRate float64 `yaml:"sample_rate" mapstructure:"sample_rate" validate:"gte=0,lte=1"`
}

// Resource names the process that emits telemetry.
type Resource struct {
	ServiceName    string
	ServiceVersion string
	Environment    string
}

// ApplyDefaults fills unset values.
func (c *Config) ApplyDefaults() {
	if c.Endpoint == "" {
		c.Endpoint = "localhost:4318"
	}
	if c.SampleRate == 0 {
		c.SampleRate = 1.0
	}
}
