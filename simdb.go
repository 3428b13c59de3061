// Package simdb resolves carrier network configuration for a test device.
//
// Lookups are keyed by the device's ICCID and IMSI and answered from a
// static XML sim database (simdb.xml) describing the SIMs and operators
// known to the bench.
//
// Example usage:
//
//	res, err := simdb.Open("/bench/config/uicc/simdb.xml", simdb.WithSite("lab1"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	info, ok := res.Resolve(iccid, imsi)
//	if !ok {
//	    // No bench data for this SIM; a normal outcome, not an error.
//	}
package simdb

import (
	"context"

	"github.com/letp-labs/simdb/internal/resolver"
	"github.com/letp-labs/simdb/pkg/log"
)

// SimInfo is the result of a successful lookup: carrier network
// configuration followed by the detail identifiers of the matched SIM.
type SimInfo = resolver.SimInfo

// Resolver answers ICCID/IMSI lookups against a parsed sim database.
type Resolver = resolver.Resolver

// Database is the parsed, read-only, in-memory sim database.
type Database = resolver.Database

// DetailRecord is one <uicc> entry from the sim database.
type DetailRecord = resolver.DetailRecord

// OperatorRecord is one carrier entry from the <Operator> section.
type OperatorRecord = resolver.OperatorRecord

// LoadError is the fatal error class for a missing, unreadable or
// malformed sim database file.
type LoadError = resolver.LoadError

// Watcher keeps a Resolver current while the database file changes on disk.
type Watcher = resolver.Watcher

// Option configures optional behavior of a Resolver.
type Option = resolver.Option

// Open loads the sim database at path and returns a Resolver over it.
// The returned error is a *LoadError; a broken database is fatal.
func Open(path string, opts ...Option) (*Resolver, error) {
	return resolver.Open(path, opts...)
}

// New returns a Resolver over an already parsed database.
func New(db *Database, opts ...Option) *Resolver {
	return resolver.New(db, opts...)
}

// Load reads and parses the sim database at path.
func Load(path string) (*Database, error) {
	return resolver.Load(path)
}

// Parse parses raw XML into a Database.
func Parse(data []byte) (*Database, error) {
	return resolver.Parse(data)
}

// Watch loads the sim database at path and reloads it on file changes.
func Watch(ctx context.Context, path string, opts ...Option) (*Watcher, error) {
	return resolver.Watch(ctx, path, opts...)
}

// WithSite sets the active bench site. When an operator name contains
// "Amarisoft", the resolved carrier becomes "<Name>_<site>".
func WithSite(site string) Option {
	return resolver.WithSite(site)
}

// WithLogger sets a custom logger for lookup diagnostics.
func WithLogger(logger log.Logger) Option {
	return resolver.WithLogger(logger)
}
