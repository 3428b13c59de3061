package resolver

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

const watcherDBv1 = `<sim>
  <simdb>
    <Operator>
      <Telus>
        <ICCID_prefix>89302</ICCID_prefix>
        <APN>telus.apn</APN>
      </Telus>
    </Operator>
  </simdb>
</sim>`

const watcherDBv2 = `<sim>
  <simdb>
    <Operator>
      <Telus>
        <ICCID_prefix>89302</ICCID_prefix>
        <APN>telus.v2</APN>
      </Telus>
    </Operator>
  </simdb>
</sim>`

func shortenDebounce(t *testing.T) {
	t.Helper()
	old := debounceDelay
	debounceDelay = 10 * time.Millisecond
	t.Cleanup(func() { debounceDelay = old })
}

// waitForAPN polls the watcher until the resolved APN matches or the
// deadline passes.
func waitForAPN(t *testing.T, w *Watcher, want string) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if info, ok := w.Resolve("8930212345678", ""); ok && info.APN == want {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	info, ok := w.Resolve("8930212345678", "")
	t.Fatalf("watcher did not pick up APN %q; last result = %+v, ok = %v", want, info, ok)
}

func TestWatchInitialLoadFails(t *testing.T) {
	_, err := Watch(context.Background(), filepath.Join(t.TempDir(), "missing.xml"))
	if err == nil {
		t.Fatal("Watch() expected error for missing database")
	}
}

func TestWatcherReloadsOnChange(t *testing.T) {
	shortenDebounce(t)

	path := filepath.Join(t.TempDir(), "simdb.xml")
	if err := os.WriteFile(path, []byte(watcherDBv1), 0644); err != nil {
		t.Fatalf("write database: %v", err)
	}

	w, err := Watch(context.Background(), path)
	if err != nil {
		t.Fatalf("Watch() error = %v", err)
	}
	defer w.Close()

	info, ok := w.Resolve("8930212345678", "")
	if !ok || info.APN != "telus.apn" {
		t.Fatalf("initial Resolve() = %+v, ok = %v", info, ok)
	}

	if err := os.WriteFile(path, []byte(watcherDBv2), 0644); err != nil {
		t.Fatalf("rewrite database: %v", err)
	}
	waitForAPN(t, w, "telus.v2")
}

func TestWatcherKeepsPreviousOnBadReload(t *testing.T) {
	shortenDebounce(t)

	path := filepath.Join(t.TempDir(), "simdb.xml")
	if err := os.WriteFile(path, []byte(watcherDBv1), 0644); err != nil {
		t.Fatalf("write database: %v", err)
	}

	w, err := Watch(context.Background(), path)
	if err != nil {
		t.Fatalf("Watch() error = %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("<sim><simdb>"), 0644); err != nil {
		t.Fatalf("rewrite database: %v", err)
	}

	// Give the watcher time to attempt the reload, then verify the old
	// database is still served.
	time.Sleep(300 * time.Millisecond)
	info, ok := w.Resolve("8930212345678", "")
	if !ok || info.APN != "telus.apn" {
		t.Errorf("Resolve() after bad reload = %+v, ok = %v, want previous database", info, ok)
	}
}

func TestWatcherClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "simdb.xml")
	if err := os.WriteFile(path, []byte(watcherDBv1), 0644); err != nil {
		t.Fatalf("write database: %v", err)
	}

	w, err := Watch(context.Background(), path)
	if err != nil {
		t.Fatalf("Watch() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}

	// Lookups against the last snapshot still work after Close.
	if _, ok := w.Resolve("8930212345678", ""); !ok {
		t.Error("Resolve() after Close ok = false, want true")
	}
}
