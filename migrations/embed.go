// Package migrations ships the goose schema inside the binaries so neither
// the service nor auctionctl depends on the working directory.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
