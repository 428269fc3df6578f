package db

import (
	"fmt"
	"time"

	"github.com/pulsescore/seogen/models"
)

// BuildRecord is one completed generation run.
type BuildRecord struct {
	BuildID      int64
	GeneratedAt  time.Time
	RouteCount   int
	SitemapCount int
	CatalogSize  int
	Duration     time.Duration
	Families     map[models.PageFamily]int
}

// RecordBuild inserts a build row plus its per-family counts in one
// transaction.
func (db *DB) RecordBuild(rec BuildRecord) (int64, error) {
	tx, err := db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.Exec(
		`INSERT INTO builds (generated_at, route_count, sitemap_count, catalog_size, duration_ms)
		 VALUES (?, ?, ?, ?, ?)`,
		rec.GeneratedAt.UTC().Format(time.RFC3339),
		rec.RouteCount,
		rec.SitemapCount,
		rec.CatalogSize,
		rec.Duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert build: %w", err)
	}

	buildID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get build ID: %w", err)
	}

	for _, family := range models.AllFamilies {
		count, ok := rec.Families[family]
		if !ok {
			continue
		}
		if _, err := tx.Exec(
			`INSERT INTO build_families (build_id, family, page_count) VALUES (?, ?, ?)`,
			buildID, string(family), count,
		); err != nil {
			return 0, fmt.Errorf("failed to insert family count for %s: %w", family, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit build: %w", err)
	}
	return buildID, nil
}

// ListBuilds returns the most recent builds, newest first.
func (db *DB) ListBuilds(limit int) ([]BuildRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := db.Query(
		`SELECT build_id, generated_at, route_count, sitemap_count, catalog_size, duration_ms
		 FROM builds ORDER BY build_id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query builds: %w", err)
	}
	defer rows.Close()

	var builds []BuildRecord
	for rows.Next() {
		var rec BuildRecord
		var generatedAt string
		var durationMS int64
		if err := rows.Scan(&rec.BuildID, &generatedAt, &rec.RouteCount, &rec.SitemapCount, &rec.CatalogSize, &durationMS); err != nil {
			return nil, fmt.Errorf("failed to scan build row: %w", err)
		}
		rec.GeneratedAt, err = time.Parse(time.RFC3339, generatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse build timestamp %q: %w", generatedAt, err)
		}
		rec.Duration = time.Duration(durationMS) * time.Millisecond
		builds = append(builds, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate builds: %w", err)
	}

	for i := range builds {
		families, err := db.buildFamilies(builds[i].BuildID)
		if err != nil {
			return nil, err
		}
		builds[i].Families = families
	}
	return builds, nil
}

func (db *DB) buildFamilies(buildID int64) (map[models.PageFamily]int, error) {
	rows, err := db.Query(`SELECT family, page_count FROM build_families WHERE build_id = ?`, buildID)
	if err != nil {
		return nil, fmt.Errorf("failed to query family counts: %w", err)
	}
	defer rows.Close()

	families := make(map[models.PageFamily]int)
	for rows.Next() {
		var family string
		var count int
		if err := rows.Scan(&family, &count); err != nil {
			return nil, fmt.Errorf("failed to scan family count: %w", err)
		}
		families[models.PageFamily(family)] = count
	}
	return families, rows.Err()
}
