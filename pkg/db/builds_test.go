package db

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/pulsescore/seogen/models"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "seogen-test.db")
	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestRecordAndListBuilds(t *testing.T) {
	db := setupTestDB(t)

	rec := BuildRecord{
		GeneratedAt:  time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		RouteCount:   101,
		SitemapCount: 101,
		CatalogSize:  90,
		Duration:     1250 * time.Millisecond,
		Families: map[models.PageFamily]int{
			models.FamilyTemplates: 20,
			models.FamilyGlossary:  20,
		},
	}

	buildID, err := db.RecordBuild(rec)
	if err != nil {
		t.Fatalf("RecordBuild() error = %v", err)
	}
	if buildID <= 0 {
		t.Fatalf("RecordBuild() buildID = %d, want positive", buildID)
	}

	builds, err := db.ListBuilds(10)
	if err != nil {
		t.Fatalf("ListBuilds() error = %v", err)
	}
	if len(builds) != 1 {
		t.Fatalf("ListBuilds() returned %d builds, want 1", len(builds))
	}

	got := builds[0]
	if got.BuildID != buildID {
		t.Errorf("BuildID = %d, want %d", got.BuildID, buildID)
	}
	if !got.GeneratedAt.Equal(rec.GeneratedAt) {
		t.Errorf("GeneratedAt = %v, want %v", got.GeneratedAt, rec.GeneratedAt)
	}
	if got.RouteCount != rec.RouteCount {
		t.Errorf("RouteCount = %d, want %d", got.RouteCount, rec.RouteCount)
	}
	if got.SitemapCount != rec.SitemapCount {
		t.Errorf("SitemapCount = %d, want %d", got.SitemapCount, rec.SitemapCount)
	}
	if got.CatalogSize != rec.CatalogSize {
		t.Errorf("CatalogSize = %d, want %d", got.CatalogSize, rec.CatalogSize)
	}
	if got.Duration != rec.Duration {
		t.Errorf("Duration = %v, want %v", got.Duration, rec.Duration)
	}
	if got.Families[models.FamilyTemplates] != 20 {
		t.Errorf("templates count = %d, want 20", got.Families[models.FamilyTemplates])
	}
	if got.Families[models.FamilyGlossary] != 20 {
		t.Errorf("glossary count = %d, want 20", got.Families[models.FamilyGlossary])
	}
}

func TestListBuildsNewestFirst(t *testing.T) {
	db := setupTestDB(t)

	for i := 0; i < 3; i++ {
		_, err := db.RecordBuild(BuildRecord{
			GeneratedAt: time.Now().UTC(),
			RouteCount:  100 + i,
			CatalogSize: 90,
		})
		if err != nil {
			t.Fatalf("RecordBuild() error = %v", err)
		}
	}

	builds, err := db.ListBuilds(2)
	if err != nil {
		t.Fatalf("ListBuilds() error = %v", err)
	}
	if len(builds) != 2 {
		t.Fatalf("ListBuilds(2) returned %d builds, want 2", len(builds))
	}
	if builds[0].BuildID <= builds[1].BuildID {
		t.Errorf("builds out of order: %d before %d, want newest first", builds[0].BuildID, builds[1].BuildID)
	}
	if builds[0].RouteCount != 102 {
		t.Errorf("newest RouteCount = %d, want 102", builds[0].RouteCount)
	}
}

func TestOpenReusesExistingDatabase(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "seogen-test.db")

	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if _, err := db.RecordBuild(BuildRecord{GeneratedAt: time.Now().UTC(), RouteCount: 1, CatalogSize: 50}); err != nil {
		t.Fatalf("RecordBuild() error = %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	reopened, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() reopen error = %v", err)
	}
	defer reopened.Close()

	builds, err := reopened.ListBuilds(10)
	if err != nil {
		t.Fatalf("ListBuilds() error = %v", err)
	}
	if len(builds) != 1 {
		t.Errorf("reopened database lost builds: got %d, want 1", len(builds))
	}
}
