package configs

import "time"

// API configures the client side connection to the system of record.
type API struct {
	// BaseURL includes the /api prefix.
	BaseURL string `env:"BASE_URL" envDefault:"http://localhost:8080/api"`
	// Timeout bounds every request. A request that times out fails with a
	// network error and leaves nothing half-applied on the client.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"15s"`
	// ReadRetries is how many times idempotent reads are retried on network
	// errors and 5xx answers. Mutations are never retried.
	ReadRetries int           `env:"READ_RETRIES" envDefault:"2"`
	RetryBase   time.Duration `env:"RETRY_BASE" envDefault:"200ms"`
}
