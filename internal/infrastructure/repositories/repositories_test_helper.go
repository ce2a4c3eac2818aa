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
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		// Mirrors the production connection: constraint violations
		// surface as gorm.ErrDuplicatedKey.
		TranslateError: true,
	})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createAccountTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE accounts (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		phone TEXT NOT NULL UNIQUE,
		kind TEXT NOT NULL,
		status TEXT NOT NULL,
		disabled BOOLEAN NOT NULL DEFAULT 0,
		assigned_reviewer_id TEXT,
		zone_id TEXT,
		city_id TEXT,
		district_id TEXT,
		address_line TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createShopTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE shops (
		id TEXT PRIMARY KEY,
		owner_account_id TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		tax_id TEXT NOT NULL UNIQUE,
		crn TEXT NOT NULL UNIQUE,
		image_url TEXT,
		code TEXT UNIQUE,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createProfileTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE seller_profiles (
		account_id TEXT PRIMARY KEY,
		shop_id TEXT NOT NULL,
		created_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE technician_profiles (
		account_id TEXT PRIMARY KEY,
		specialty TEXT,
		created_at DATETIME
	);`)
}

func createApprovalRecordTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE approval_records (
		id TEXT PRIMARY KEY,
		account_id TEXT NOT NULL,
		actor_id TEXT NOT NULL,
		action TEXT NOT NULL,
		from_status TEXT NOT NULL,
		to_status TEXT NOT NULL,
		reason TEXT,
		created_at DATETIME
	);`)
}

func createGeographyTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE zones (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL UNIQUE
	);`)
	mustExec(t, db, `CREATE TABLE cities (
		id TEXT PRIMARY KEY,
		zone_id TEXT NOT NULL,
		name TEXT NOT NULL
	);`)
	mustExec(t, db, `CREATE TABLE districts (
		id TEXT PRIMARY KEY,
		city_id TEXT NOT NULL,
		name TEXT NOT NULL,
		assigned_sales_id TEXT
	);`)
}
