package store

// migration holds a single schema migration with its target version and SQL.
type migration struct {
	version int
	sql     string
}

// migrations is the ordered list of schema migrations.
// Each migration's version must be sequential starting from 1.
var migrations = []migration{
	{
		version: 1,
		sql: `
CREATE TABLE IF NOT EXISTS schema_version (
	version INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS users (
	name   TEXT PRIMARY KEY,
	avatar TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS companies (
	id            TEXT PRIMARY KEY,
	name          TEXT NOT NULL,
	icon          TEXT NOT NULL DEFAULT '',
	url           TEXT NOT NULL DEFAULT '',
	created_by    TEXT NOT NULL DEFAULT '',
	address       TEXT NOT NULL DEFAULT '',
	account_owner TEXT NOT NULL DEFAULT '',
	is_icp        INTEGER NOT NULL DEFAULT 0,
	arr           TEXT NOT NULL DEFAULT '',
	linkedin      TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS tasks (
	id                  TEXT PRIMARY KEY,
	seq                 INTEGER NOT NULL,
	title               TEXT NOT NULL,
	description         TEXT NOT NULL DEFAULT '',
	related_record      TEXT NOT NULL DEFAULT '',
	related_record_id   TEXT NOT NULL DEFAULT '',
	assigned_to         TEXT,
	status              INTEGER NOT NULL DEFAULT 0,
	due_date            TEXT NOT NULL DEFAULT '',
	type                INTEGER NOT NULL DEFAULT 0,
	assigned_by         TEXT NOT NULL DEFAULT '',
	created_at_relative TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS notifications (
	id         TEXT PRIMARY KEY,
	task_id    TEXT NOT NULL,
	message    TEXT NOT NULL,
	read       INTEGER NOT NULL DEFAULT 0,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_tasks_status ON tasks(status);
CREATE INDEX IF NOT EXISTS idx_tasks_assigned_to ON tasks(assigned_to);
CREATE INDEX IF NOT EXISTS idx_notifications_task ON notifications(task_id);

INSERT INTO schema_version (version) VALUES (1);
`,
	},
}
