package resolver

import (
	"encoding/xml"
	"fmt"
	"os"
	"strings"
)

// DetailRecord is one <uicc> entry from the sim database. It describes a
// physical SIM known to the bench, keyed by its ICCID. All fields are
// optional; an empty string means the value is absent.
type DetailRecord struct {
	ICCID string
	IMSI  string
	MCC   string
	MNC   string
	Tel   string
	PIN   string
	PUK   string
	SMSC  string
	APN   string
}

// OperatorRecord is one carrier entry from the <Operator> section. The
// element name is the carrier name; prefixes are matched by substring
// containment against the device identifiers.
type OperatorRecord struct {
	Name          string
	ICCIDPrefixes []string
	IMSIPrefixes  []string
	APN           string
	APNTCP        string
	PDP           string
	Band          string
}

// Matches reports whether the record applies to the given identifiers.
// At least one ICCID prefix must be contained in iccid. When imsi is
// non-empty and the record lists IMSI prefixes, one of them must be
// contained in imsi; a record without IMSI prefixes does not constrain
// the IMSI.
func (o OperatorRecord) Matches(iccid, imsi string) bool {
	if !containsAny(iccid, o.ICCIDPrefixes) {
		return false
	}
	if imsi != "" && len(o.IMSIPrefixes) > 0 && !containsAny(imsi, o.IMSIPrefixes) {
		return false
	}
	return true
}

// containsAny reports whether any of the prefixes is a substring of id.
// Containment is deliberately loose: a prefix matches anywhere in the
// identifier, not only at the start.
func containsAny(id string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.Contains(id, p) {
			return true
		}
	}
	return false
}

// Database is the parsed, read-only, in-memory sim database. It is never
// mutated after loading, so concurrent lookups need no locking.
type Database struct {
	Details   []DetailRecord
	Operators []OperatorRecord
}

// Operator returns the operator record with the given carrier name.
func (db *Database) Operator(name string) (OperatorRecord, bool) {
	for _, op := range db.Operators {
		if op.Name == name {
			return op, true
		}
	}
	return OperatorRecord{}, false
}

// LoadError is the fatal error class for a missing, unreadable or
// malformed sim database file. Per-lookup misses are never errors.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load sim database %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// xmlUICC mirrors a <uicc> element.
type xmlUICC struct {
	ICCID string `xml:"iccid"`
	IMSI  string `xml:"imsi"`
	MCC   string `xml:"mcc"`
	MNC   string `xml:"mnc"`
	Tel   string `xml:"tel"`
	PIN   string `xml:"pin"`
	PUK   string `xml:"puk"`
	SMSC  string `xml:"smsc"`
	APN   string `xml:"apn"`
}

// xmlOperator mirrors one child of <Operator>. The element name carries
// the carrier name, so the record is captured via ",any".
type xmlOperator struct {
	XMLName      xml.Name
	ICCIDPrefix  string `xml:"ICCID_prefix"`
	IMSIPrefixes string `xml:"IMSI_prefixes"`
	APN          string `xml:"APN"`
	APNTCP       string `xml:"APN_TCP"`
	PDP          string `xml:"PDP"`
	Band         string `xml:"Band"`
}

// xmlSimdb mirrors the <simdb> section.
type xmlSimdb struct {
	UICC     []xmlUICC `xml:"uicc"`
	Operator struct {
		Records []xmlOperator `xml:",any"`
	} `xml:"Operator"`
}

// xmlDocument matches a document whose root wraps a <simdb> element.
type xmlDocument struct {
	Simdb xmlSimdb `xml:"simdb"`
}

// Load reads and parses the sim database at path. It returns a *LoadError
// when the file is missing, unreadable or not well-formed XML.
func Load(path string) (*Database, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	db, err := Parse(data)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return db, nil
}

// Parse parses raw XML into a Database. The document root either wraps a
// <simdb> element or is the <simdb> element itself.
func Parse(data []byte) (*Database, error) {
	var doc xmlDocument
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	sim := doc.Simdb
	if len(sim.UICC) == 0 && len(sim.Operator.Records) == 0 {
		// No <simdb> child found; retry with <simdb> as the root.
		if err := xml.Unmarshal(data, &sim); err != nil {
			return nil, err
		}
	}

	db := &Database{}
	for _, u := range sim.UICC {
		db.Details = append(db.Details, DetailRecord{
			ICCID: strings.TrimSpace(u.ICCID),
			IMSI:  strings.TrimSpace(u.IMSI),
			MCC:   strings.TrimSpace(u.MCC),
			MNC:   strings.TrimSpace(u.MNC),
			Tel:   strings.TrimSpace(u.Tel),
			PIN:   strings.TrimSpace(u.PIN),
			PUK:   strings.TrimSpace(u.PUK),
			SMSC:  strings.TrimSpace(u.SMSC),
			APN:   strings.TrimSpace(u.APN),
		})
	}
	for _, o := range sim.Operator.Records {
		db.Operators = append(db.Operators, OperatorRecord{
			Name:          o.XMLName.Local,
			ICCIDPrefixes: splitPrefixes(o.ICCIDPrefix),
			IMSIPrefixes:  splitPrefixes(o.IMSIPrefixes),
			APN:           strings.TrimSpace(o.APN),
			APNTCP:        strings.TrimSpace(o.APNTCP),
			PDP:           strings.TrimSpace(o.PDP),
			Band:          strings.TrimSpace(o.Band),
		})
	}
	return db, nil
}

// splitPrefixes splits a comma-separated prefix list, trimming whitespace
// and dropping empty entries.
func splitPrefixes(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
