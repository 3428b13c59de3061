package simdb_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/letp-labs/simdb"
)

const benchDB = `<sim>
  <simdb>
    <uicc>
      <iccid>8930212345</iccid>
      <imsi>302220123456789</imsi>
      <pin>1234</pin>
    </uicc>
    <Operator>
      <Telus>
        <ICCID_prefix>89302</ICCID_prefix>
        <APN>telus.apn</APN>
        <PDP>IP</PDP>
        <Band>4</Band>
      </Telus>
    </Operator>
  </simdb>
</sim>`

// ExampleOpen demonstrates a bench-side lookup against a sim database file.
func ExampleOpen() {
	db, err := simdb.Parse([]byte(benchDB))
	if err != nil {
		fmt.Printf("failed to parse database: %v\n", err)
		return
	}
	res := simdb.New(db)

	info, ok := res.Resolve("8930212345678", "302220123456789")
	if !ok {
		fmt.Println("no sim configuration for this device")
		return
	}
	fmt.Printf("%s apn=%s pdp=%s band=%s pin=%s\n",
		info.Carrier, info.APN, info.PDP, info.Band, info.PIN)

	// Output: Telus apn=telus.apn pdp=IP band=4 pin=1234
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "simdb.xml")
	if err := os.WriteFile(path, []byte(benchDB), 0644); err != nil {
		t.Fatalf("write database: %v", err)
	}

	res, err := simdb.Open(path, simdb.WithSite("lab1"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	info, ok := res.Resolve("8930212345678", "")
	if !ok {
		t.Fatal("Resolve() ok = false, want true")
	}
	if info.Carrier != "Telus" {
		t.Errorf("Carrier = %q, want Telus", info.Carrier)
	}

	if _, ok := res.Resolve("00000000000", ""); ok {
		t.Error("Resolve() with unknown prefix ok = true, want false")
	}
}

func TestOpenMissingDatabase(t *testing.T) {
	_, err := simdb.Open(filepath.Join(t.TempDir(), "missing.xml"))
	if err == nil {
		t.Fatal("Open() expected error for missing database")
	}
}
