//go:build !puresqlite
// +build !puresqlite

package load

import (
	_ "github.com/mattn/go-sqlite3"
)

const sqliteDriverName = "sqlite3"
