package configs

// Redis configures the shared transition lock. When Addr is empty the
// server falls back to an in-process lock, which is only correct for a
// single instance.
type Redis struct {
	Addr      string `env:"ADDR"`
	Password  string `env:"PASSWORD"`
	DB        int    `env:"DB" envDefault:"0"`
	KeyPrefix string `env:"KEY_PREFIX" envDefault:"campaign-manager:lock:"`
}
