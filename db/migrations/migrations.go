package migrations

import "embed"

// FS embeds the ledger schema migrations; internal/db applies them through
// the golang-migrate iofs source.
//
//go:embed *.sql
var FS embed.FS

const Version = 1
