package migrations

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	_ "github.com/mattn/go-sqlite3"
)

func TestApply(t *testing.T) {
	t.Parallel()

	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	applied, err := Apply(t.Context(), db)
	if err != nil {
		t.Fatalf("Apply() error: %v", err)
	}
	if diff := cmp.Diff([]string{"0001_device_state.sql"}, applied); diff != "" {
		t.Errorf("applied mismatch (-want +got):\n%s", diff)
	}

	var faces int
	if err := db.QueryRowContext(t.Context(), "SELECT COUNT(*) FROM faces").Scan(&faces); err != nil {
		t.Fatalf("counting faces: %v", err)
	}
	if faces != 8 {
		t.Errorf("faces rows = %d, want 8", faces)
	}

	again, err := Apply(t.Context(), db)
	if err != nil {
		t.Fatalf("second Apply() error: %v", err)
	}
	if len(again) != 0 {
		t.Errorf("second Apply() re-ran %v", again)
	}
}
