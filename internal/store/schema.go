package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS runs (
    id                 INTEGER PRIMARY KEY AUTOINCREMENT,
    ran_at             TEXT NOT NULL,
    principal          REAL NOT NULL,
    annual_return      REAL NOT NULL,
    monthly_expense    REAL NOT NULL,
    months             INTEGER NOT NULL,
    final_principal    REAL NOT NULL,
    indefinite_growth  INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS run_years (
    run_id                INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
    year                  INTEGER NOT NULL,
    starting_principal    REAL NOT NULL,
    annual_return_percent REAL NOT NULL,
    total_interest        REAL NOT NULL,
    charity_deducted      REAL NOT NULL,
    total_expense         REAL NOT NULL,
    ending_principal      REAL NOT NULL,
    PRIMARY KEY (run_id, year)
);

CREATE INDEX IF NOT EXISTS idx_runs_ran_at ON runs(ran_at);
`
