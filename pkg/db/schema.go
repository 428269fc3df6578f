package db

const schema = `
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;

-- Builds table: one row per completed generation run
CREATE TABLE IF NOT EXISTS builds (
    build_id INTEGER PRIMARY KEY AUTOINCREMENT,
    generated_at TIMESTAMP NOT NULL,
    route_count INTEGER NOT NULL,
    sitemap_count INTEGER NOT NULL,
    catalog_size INTEGER NOT NULL,
    duration_ms INTEGER NOT NULL,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_builds_generated ON builds(generated_at);

-- Per-family counts for each build
CREATE TABLE IF NOT EXISTS build_families (
    build_id INTEGER NOT NULL,
    family TEXT NOT NULL,
    page_count INTEGER NOT NULL,
    PRIMARY KEY (build_id, family),
    FOREIGN KEY (build_id) REFERENCES builds(build_id) ON DELETE CASCADE
);
`
