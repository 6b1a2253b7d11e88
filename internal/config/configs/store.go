package configs

// Store selects the persistence backend: "postgres" (default) or "memory".
// Seed fills an empty in-memory store with demo data; PostgreSQL uses
// Postgres.Seed.
type Store struct {
	Driver string `env:"DRIVER" envDefault:"postgres"`
	Seed   bool   `env:"SEED" envDefault:"false"`
}
