package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS bookings (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    booked_on   TEXT NOT NULL,
    project     TEXT NOT NULL,
    activity    TEXT NOT NULL DEFAULT '',
    hours       REAL NOT NULL CHECK(hours >= 0)
);

CREATE INDEX IF NOT EXISTS idx_bookings_scope ON bookings(project, activity, booked_on);
CREATE INDEX IF NOT EXISTS idx_bookings_date  ON bookings(booked_on);

CREATE TABLE IF NOT EXISTS budget_history (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    project     TEXT NOT NULL,
    activity    TEXT NOT NULL DEFAULT '',
    hours       REAL NOT NULL,
    change_type TEXT NOT NULL CHECK(change_type IN ('initial','extension','correction','reduction')),
    valid_from  TEXT NOT NULL,
    reason      TEXT NOT NULL,
    reference   TEXT,
    created_by  TEXT NOT NULL,
    created_at  TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_budget_scope ON budget_history(project, activity, valid_from DESC);

CREATE TABLE IF NOT EXISTS overrides (
    project          TEXT NOT NULL,
    activity         TEXT NOT NULL DEFAULT '',
    hours_per_sprint REAL NOT NULL CHECK(hours_per_sprint >= 0),
    reason           TEXT NOT NULL,
    author           TEXT NOT NULL,
    created_at       TEXT NOT NULL,
    PRIMARY KEY (project, activity)
);
`
