// Package resolver looks up carrier network configuration for a test
// device. Lookups are keyed by the device's ICCID and IMSI and answered
// from a static XML sim database (simdb.xml): prefix entries select an
// operator record, and an optional detail record contributes the exact
// SIM identifiers and an APN override.
package resolver

import (
	"strings"

	"github.com/letp-labs/simdb/pkg/log"
)

// Resolver answers ICCID/IMSI lookups against a parsed sim database.
// The database is loaded once and never mutated, so a single Resolver is
// safe for concurrent use.
type Resolver struct {
	db     *Database
	site   string
	logger log.Logger
}

// Open loads the sim database at path and returns a Resolver over it.
// The returned error is a *LoadError; a broken database is fatal, there
// is no fallback.
func Open(path string, opts ...Option) (*Resolver, error) {
	db, err := Load(path)
	if err != nil {
		return nil, err
	}
	return New(db, opts...), nil
}

// New returns a Resolver over an already parsed database.
func New(db *Database, opts ...Option) *Resolver {
	r := &Resolver{
		db:     db,
		logger: log.NewNoopLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Database returns the underlying parsed database.
func (r *Resolver) Database() *Database {
	return r.db
}

// Resolve returns the carrier configuration for the given identifiers.
// A miss is a normal outcome, reported as ok == false with a logged
// warning, never an error: an empty ICCID, or identifiers that no
// operator record covers, simply mean the bench has no data for this SIM.
// An empty IMSI disables the IMSI prefix filter rather than failing the
// lookup.
func (r *Resolver) Resolve(iccid, imsi string) (SimInfo, bool) {
	if iccid == "" {
		r.logger.Warn("no ICCID from current device")
		return SimInfo{}, false
	}

	var detail *DetailRecord
	for i := range r.db.Details {
		d := &r.db.Details[i]
		if d.ICCID != "" && strings.Contains(iccid, d.ICCID) {
			detail = d
			break
		}
	}

	var op *OperatorRecord
	for i := range r.db.Operators {
		if r.db.Operators[i].Matches(iccid, imsi) {
			op = &r.db.Operators[i]
			break
		}
	}
	if op == nil {
		r.logger.Warn("no operator record for device identifiers",
			log.String("iccid", iccid),
			log.String("imsi", imsi))
		return SimInfo{}, false
	}

	carrier := op.Name
	if strings.Contains(carrier, "Amarisoft") && r.site != "" {
		carrier = carrier + "_" + r.site
	}

	info := SimInfo{
		Carrier: carrier,
		APN:     op.APN,
		APNTCP:  op.APNTCP,
		PDP:     op.PDP,
		Band:    op.Band,
	}
	if detail != nil {
		// The per-SIM apn takes priority over the operator default.
		if detail.APN != "" {
			info.APN = detail.APN
		}
		info.ICCID = detail.ICCID
		info.IMSI = detail.IMSI
		info.MCC = detail.MCC
		info.MNC = detail.MNC
		info.Tel = detail.Tel
		info.PIN = detail.PIN
		info.PUK = detail.PUK
		info.SMSC = detail.SMSC
	}

	r.logger.Debug("resolved sim configuration",
		log.String("iccid", iccid),
		log.String("carrier", info.Carrier))
	return info, true
}

// APN returns the configured APN for the named carrier.
func (r *Resolver) APN(carrier string) string {
	op, _ := r.db.Operator(carrier)
	return op.APN
}

// APNTCP returns the configured TCP APN for the named carrier.
func (r *Resolver) APNTCP(carrier string) string {
	op, _ := r.db.Operator(carrier)
	return op.APNTCP
}

// PDP returns the configured PDP type for the named carrier.
func (r *Resolver) PDP(carrier string) string {
	op, _ := r.db.Operator(carrier)
	return op.PDP
}

// Band returns the configured RF band for the named carrier.
func (r *Resolver) Band(carrier string) string {
	op, _ := r.db.Operator(carrier)
	return op.Band
}
