package storage

import (
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"sort"
)

//go:embed migrations/*.sql
var schemaFS embed.FS

const (
	upSuffix   = ".up.sql"
	downSuffix = ".down.sql"
)

// MigrateUp applies every up script in lexical order. The scripts are
// embedded, so the binary carries its own schema.
func MigrateUp(db *sql.DB) error {
	return runScripts(db, upSuffix, false)
}

// MigrateDown unwinds the schema, newest script first.
func MigrateDown(db *sql.DB) error {
	return runScripts(db, downSuffix, true)
}

func runScripts(db *sql.DB, suffix string, newestFirst bool) error {
	names, err := fs.Glob(schemaFS, "migrations/*"+suffix)
	if err != nil {
		return fmt.Errorf("list schema scripts: %w", err)
	}
	if newestFirst {
		sort.Sort(sort.Reverse(sort.StringSlice(names)))
	} else {
		sort.Strings(names)
	}
	for _, name := range names {
		if err := runScript(db, name); err != nil {
			return err
		}
	}
	return nil
}

// runScript executes one script inside a transaction so a failing
// statement leaves the schema where the previous script put it.
func runScript(db *sql.DB, name string) error {
	script, err := schemaFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("read schema script %s: %w", name, err)
	}
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin %s: %w", name, err)
	}
	if _, err := tx.Exec(string(script)); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("apply %s: %w", name, err)
	}
	return tx.Commit()
}
