package migrations

import "embed"

// FS は goose 用に埋め込んだSQLマイグレーション
//
//go:embed *.sql
var FS embed.FS
