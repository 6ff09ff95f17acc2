package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// Open connects to MySQL and verifies the connection.
func Open(user, pass, host, port, name string) (*sql.DB, error) {
	auth := user
	if pass != "" {
		auth = fmt.Sprintf("%s:%s", user, pass)
	}
	// parseTime=true -> DATETIME -> time.Time | loc=UTC keeps times consistent
	dsn := fmt.Sprintf("%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
		auth, host, port, name)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	// Pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(30 * time.Minute)

	// Ping with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}
	return db, nil
}

// EnsureSchema creates the application tables when they do not exist.
// The unique key on bookings(date, room_id, hour) is what turns a slot
// collision into a duplicate-key error at insert time.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
			email VARCHAR(255) NOT NULL UNIQUE,
			password_hash VARCHAR(255) NOT NULL,
			role VARCHAR(16) NOT NULL DEFAULT 'MEMBER',
			is_active TINYINT(1) NOT NULL DEFAULT 1,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS refresh_tokens (
			id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
			user_id BIGINT UNSIGNED NOT NULL,
			token_hash CHAR(64) NOT NULL UNIQUE,
			expires_at DATETIME NOT NULL,
			revoked_at DATETIME NULL,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			KEY idx_refresh_user (user_id)
		)`,
		`CREATE TABLE IF NOT EXISTS rooms (
			id VARCHAR(64) NOT NULL PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			type VARCHAR(16) NOT NULL,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS vouchers (
			id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
			partner VARCHAR(255) NOT NULL,
			slots_left INT NOT NULL DEFAULT 0,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS bookings (
			id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
			date DATE NOT NULL,
			room_id VARCHAR(64) NOT NULL,
			hour TINYINT NOT NULL,
			type VARCHAR(16) NOT NULL,
			room_name VARCHAR(255) NOT NULL,
			mode VARCHAR(16) NOT NULL,
			voucher_partner VARCHAR(255) NULL,
			booked_for VARCHAR(255) NULL,
			group_code VARCHAR(32) NOT NULL,
			price INT NOT NULL,
			created_by VARCHAR(64) NOT NULL,
			inserted_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			UNIQUE KEY uq_slot (date, room_id, hour),
			KEY idx_bookings_creator (created_by)
		)`,
		`CREATE TABLE IF NOT EXISTS access_grants (
			id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
			booking_id BIGINT UNSIGNED NOT NULL,
			provider VARCHAR(64) NOT NULL,
			door_ids VARCHAR(255) NOT NULL,
			secret VARCHAR(64) NULL,
			deep_link VARCHAR(512) NULL,
			start_at DATETIME NOT NULL,
			end_at DATETIME NOT NULL,
			status VARCHAR(16) NOT NULL,
			created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			KEY idx_grants_booking (booking_id)
		)`,
	}
	for _, s := range stmts {
		if _, err := db.ExecContext(ctx, s); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
