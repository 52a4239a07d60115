package schema

// SQLiteSchemaSQL initializes the embedded single-file store.
// Dates are stored as YYYY-MM-DD text and timestamps as unix milliseconds.
const SQLiteSchemaSQL = `
CREATE TABLE IF NOT EXISTS plants (
    slug TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    scientific_name TEXT NOT NULL DEFAULT '',
    family TEXT NOT NULL DEFAULT '',
    variety TEXT NOT NULL DEFAULT '',
    description TEXT NOT NULL DEFAULT '',
    sun TEXT NOT NULL DEFAULT '',
    water TEXT NOT NULL DEFAULT '',
    soil TEXT NOT NULL DEFAULT '',
    frost_hardiness TEXT NOT NULL DEFAULT '',
    spacing_in_row_in REAL,
    planting_depth_in REAL,
    tags TEXT NOT NULL DEFAULT '[]',
    start_offset_days INTEGER,
    direct_sow_from INTEGER,
    direct_sow_to INTEGER,
    transplant_from INTEGER,
    transplant_to INTEGER,
    days_to_maturity INTEGER,
    updated_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS tasks (
    owner_id TEXT NOT NULL,
    id TEXT NOT NULL,
    plant_slug TEXT NOT NULL,
    type TEXT NOT NULL,
    due_date TEXT NOT NULL,
    notes TEXT NOT NULL DEFAULT '',
    done INTEGER NOT NULL DEFAULT 0,
    done_at INTEGER,
    created_at INTEGER NOT NULL,
    updated_at INTEGER NOT NULL,
    PRIMARY KEY (owner_id, id)
);

CREATE INDEX IF NOT EXISTS idx_tasks_owner_due ON tasks (owner_id, due_date);

CREATE TABLE IF NOT EXISTS user_settings (
    owner_id TEXT PRIMARY KEY,
    last_frost TEXT,
    watering_cadence_days INTEGER,
    watering_weeks INTEGER,
    updated_at INTEGER NOT NULL
);
`
