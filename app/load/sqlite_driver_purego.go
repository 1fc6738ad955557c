//go:build puresqlite
// +build puresqlite

package load

import (
	_ "modernc.org/sqlite"
)

const sqliteDriverName = "sqlite"
