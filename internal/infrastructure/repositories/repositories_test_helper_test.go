package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createUserTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		email TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL,
		is_active BOOLEAN NOT NULL DEFAULT 1,
		is_staff BOOLEAN NOT NULL DEFAULT 0,
		is_superuser BOOLEAN NOT NULL DEFAULT 0,
		is_verified BOOLEAN NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE profiles (
		id TEXT PRIMARY KEY,
		user_id TEXT UNIQUE NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		first_name TEXT,
		last_name TEXT,
		description TEXT,
		image TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createStoneTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE stones (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		stone_type TEXT NOT NULL,
		description TEXT,
		main_color TEXT,
		image TEXT
	);`)
	mustExec(t, db, `CREATE TABLE stone_comments (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		stone_id INTEGER NOT NULL REFERENCES stones(id) ON DELETE CASCADE,
		author_name TEXT NOT NULL,
		text TEXT NOT NULL,
		created_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE stone_faqs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		stone_id INTEGER NOT NULL REFERENCES stones(id) ON DELETE CASCADE,
		question TEXT NOT NULL,
		answer TEXT NOT NULL DEFAULT ''
	);`)
}

func createProductTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE product_stones (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		scientific_name TEXT,
		stone_type TEXT NOT NULL,
		colors TEXT,
		hardness TEXT,
		density TEXT,
		description TEXT,
		applications TEXT,
		extraction_sites TEXT,
		image TEXT,
		price_per_kg TEXT,
		available_quantity INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createOrderTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE orders (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		total_price TEXT NOT NULL DEFAULT '0',
		payment_date DATETIME,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE order_items (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		order_id INTEGER NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
		product_id INTEGER NOT NULL REFERENCES product_stones(id) ON DELETE RESTRICT,
		quantity INTEGER NOT NULL,
		price_per_unit TEXT NOT NULL
	);`)
}
