package sqlite

// schema creates the three record tables. Timestamps are stored as unix
// milliseconds; boolean flags as 0/1 integers.
const schema = `
CREATE TABLE IF NOT EXISTS users (
	id        INTEGER PRIMARY KEY AUTOINCREMENT,
	uid       TEXT,
	username  TEXT NOT NULL UNIQUE,
	email     TEXT,
	password  TEXT NOT NULL,
	isAdmin   INTEGER NOT NULL DEFAULT 0,
	createdAt INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS products (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	title       TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	price       REAL NOT NULL,
	currency    TEXT NOT NULL DEFAULT 'USD',
	category    TEXT NOT NULL DEFAULT '',
	images      TEXT,
	isActive    INTEGER NOT NULL DEFAULT 1,
	createdAt   INTEGER NOT NULL,
	updatedAt   INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS announcements (
	id        INTEGER PRIMARY KEY AUTOINCREMENT,
	message   TEXT NOT NULL,
	isActive  INTEGER NOT NULL DEFAULT 1,
	createdAt INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_products_active ON products (isActive, createdAt DESC);
`
