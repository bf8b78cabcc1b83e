package bench

import (
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := OpenStore(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("OpenStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStoreRecordAndRecent(t *testing.T) {
	s := openTestStore(t)

	results := []Result{
		{Engine: "central", Iterations: 100, NsPerIter: 2031.4, Scalar: 333334000},
		{Engine: "threaded2", Iterations: 100, NsPerIter: 1870.2, Scalar: 333334000},
		{Engine: "threaded3", Iterations: 100, NsPerIter: 1912.8, Scalar: 333334000},
	}
	if err := s.RecordAll("sum-of-squares", results); err != nil {
		t.Fatalf("RecordAll: %v", err)
	}

	runs, err := s.Recent(10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Recent returned %d rows, want 3", len(runs))
	}

	// Most recent first means reverse insertion order.
	if runs[0].Engine != "threaded3" || runs[2].Engine != "central" {
		t.Errorf("row order = %s..%s", runs[0].Engine, runs[2].Engine)
	}
	for _, r := range runs {
		if r.Program != "sum-of-squares" {
			t.Errorf("program = %q", r.Program)
		}
		if r.Scalar != 333334000 || r.Iters != 100 {
			t.Errorf("row = %+v", r)
		}
		if r.CreatedAt.IsZero() || time.Since(r.CreatedAt) > time.Minute {
			t.Errorf("created_at = %v", r.CreatedAt)
		}
	}
}

func TestStoreRecentLimit(t *testing.T) {
	s := openTestStore(t)

	for i := 0; i < 5; i++ {
		err := s.RecordAll("countdown", []Result{
			{Engine: "central", Iterations: 1, NsPerIter: 1, Scalar: int64(i)},
		})
		if err != nil {
			t.Fatal(err)
		}
	}

	runs, err := s.Recent(2)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 2 {
		t.Fatalf("Recent(2) returned %d rows", len(runs))
	}
	if runs[0].Scalar != 4 {
		t.Errorf("newest row scalar = %d, want 4", runs[0].Scalar)
	}
}

func TestStoreEmptyRecent(t *testing.T) {
	s := openTestStore(t)
	runs, err := s.Recent(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 0 {
		t.Errorf("empty store returned %d rows", len(runs))
	}
}
