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

func createMerchantTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE merchants (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		phone TEXT,
		business_name TEXT,
		business_type TEXT,
		website TEXT,
		address TEXT,
		photo_url TEXT,
		password_hash TEXT NOT NULL,
		approval_status TEXT NOT NULL DEFAULT 'pending',
		is_approved BOOLEAN NOT NULL DEFAULT 0,
		is_active BOOLEAN NOT NULL DEFAULT 1,
		access_fee REAL NOT NULL DEFAULT 0,
		access_fee_paid BOOLEAN NOT NULL DEFAULT 0,
		access_fee_payment_date DATETIME,
		access_fee_payment_id TEXT,
		package_id TEXT,
		package_start_date DATETIME,
		package_end_date DATETIME,
		package_status TEXT NOT NULL DEFAULT 'pending',
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createPaymentTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE payments (
		id TEXT PRIMARY KEY,
		merchant_id TEXT NOT NULL,
		amount REAL NOT NULL,
		payment_method TEXT NOT NULL,
		transaction_id TEXT NOT NULL,
		sender_phone TEXT,
		sender_account TEXT,
		receiver_phone TEXT,
		receiver_account TEXT,
		bank_name TEXT,
		bank_account_number TEXT,
		payment_proof TEXT,
		status TEXT NOT NULL DEFAULT 'pending',
		admin_notes TEXT,
		approved_at DATETIME,
		approved_by TEXT,
		commission_id TEXT,
		package_id TEXT,
		package_duration_months INTEGER,
		session_key TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createCommissionTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE commissions (
		id TEXT PRIMARY KEY,
		merchant_id TEXT NOT NULL UNIQUE,
		total_commission REAL NOT NULL DEFAULT 0,
		paid_commission REAL NOT NULL DEFAULT 0,
		pending_commission REAL NOT NULL DEFAULT 0,
		commission_rate REAL NOT NULL DEFAULT 10,
		last_updated DATETIME,
		created_at DATETIME
	);`)
}

func createPackageTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE packages (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		duration_in_months INTEGER NOT NULL,
		price REAL NOT NULL,
		description TEXT,
		features TEXT DEFAULT '[]',
		is_active BOOLEAN NOT NULL DEFAULT 1,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createStoreTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE stores (
		id TEXT PRIMARY KEY,
		merchant_id TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		description TEXT,
		category TEXT,
		logo_url TEXT,
		address TEXT,
		approval_status TEXT NOT NULL DEFAULT 'pending',
		is_active BOOLEAN NOT NULL DEFAULT 1,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE offers (
		id TEXT PRIMARY KEY,
		merchant_id TEXT NOT NULL,
		store_id TEXT NOT NULL,
		title TEXT NOT NULL,
		description TEXT,
		discount_percent REAL NOT NULL,
		category TEXT,
		image_url TEXT,
		start_date DATETIME,
		end_date DATETIME,
		approval_status TEXT NOT NULL DEFAULT 'pending',
		is_active BOOLEAN NOT NULL DEFAULT 1,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createNotificationTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE notifications (
		id TEXT PRIMARY KEY,
		merchant_id TEXT,
		offer_id TEXT,
		store_id TEXT,
		message TEXT NOT NULL,
		type TEXT NOT NULL DEFAULT 'info',
		is_read BOOLEAN NOT NULL DEFAULT 0,
		sent_by TEXT NOT NULL DEFAULT 'system',
		read_at DATETIME,
		created_at DATETIME
	);`)
}

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'admin',
		created_at DATETIME,
		updated_at DATETIME
	);`)
}
