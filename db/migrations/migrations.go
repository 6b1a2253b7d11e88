package migrations

import "embed"

// FS embeds the SQL migration files stored in this directory. They are
// applied through golang-migrate's iofs source.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version the server expects.
const Version = 1
