package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"

	"gst-rates/models"
	"gst-rates/utils"
)

const insertBatchSize = 100

// PostgresWriter publishes the built HSN table to the hsn_codes table so other
// services can read the same catalog.
type PostgresWriter struct {
	db *sql.DB
}

// NewPostgresWriter opens a connection to PostgreSQL, runs schema migrations,
// and returns a ready-to-use PostgresWriter.
func NewPostgresWriter(ctx context.Context, dsn string, logger *utils.Logger) (*PostgresWriter, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}

	retry := &utils.RetryConfig{MaxAttempts: 5, BaseDelay: time.Second, Logger: logger}
	if err := retry.Do(ctx, "postgres-ping", func() error { return db.PingContext(ctx) }); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres: ping: %w", err)
	}

	pw := &PostgresWriter{db: db}
	if err := pw.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres: migrate: %w", err)
	}

	return pw, nil
}

func (pw *PostgresWriter) migrate(ctx context.Context) error {
	_, err := pw.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS hsn_codes (
			code        VARCHAR(16)  PRIMARY KEY,
			description TEXT         NOT NULL DEFAULT '',
			cgst        NUMERIC(6,3) NOT NULL DEFAULT 0,
			sgst        NUMERIC(6,3) NOT NULL DEFAULT 0,
			igst        NUMERIC(6,3) NOT NULL DEFAULT 0,
			cess        NUMERIC(6,3) NOT NULL DEFAULT 0,
			updated_at  TIMESTAMPTZ  NOT NULL DEFAULT NOW()
		);

		CREATE INDEX IF NOT EXISTS idx_hsn_codes_igst ON hsn_codes(igst);
	`)
	return err
}

// WriteCodes replaces the catalog with codes. The delete and all inserts run
// in one transaction, so a failure leaves the previous catalog untouched.
func (pw *PostgresWriter) WriteCodes(ctx context.Context, codes []models.HSNCode) (err error) {
	if len(codes) == 0 {
		return nil
	}

	tx, err := pw.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("postgres: begin: %w", err)
	}
	defer func() {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) && err == nil {
			err = fmt.Errorf("postgres: rollback: %w", rbErr)
		}
	}()

	if _, err := tx.ExecContext(ctx, "DELETE FROM hsn_codes"); err != nil {
		return fmt.Errorf("postgres: clear: %w", err)
	}

	for i := 0; i < len(codes); i += insertBatchSize {
		end := i + insertBatchSize
		if end > len(codes) {
			end = len(codes)
		}
		if err := insertBatch(ctx, tx, codes[i:end]); err != nil {
			return fmt.Errorf("postgres: insert batch at %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("postgres: commit: %w", err)
	}
	return nil
}

func insertBatch(ctx context.Context, tx *sql.Tx, batch []models.HSNCode) error {
	const cols = 6
	valueStrings := make([]string, 0, len(batch))
	valueArgs := make([]interface{}, 0, len(batch)*cols)

	for idx, c := range batch {
		base := idx * cols
		valueStrings = append(valueStrings,
			fmt.Sprintf("($%d,$%d,$%d,$%d,$%d,$%d)",
				base+1, base+2, base+3, base+4, base+5, base+6))
		valueArgs = append(valueArgs, c.Code, c.Description, c.CGST, c.SGST, c.IGST, c.Cess)
	}

	query := fmt.Sprintf(`
		INSERT INTO hsn_codes (code, description, cgst, sgst, igst, cess)
		VALUES %s
	`, strings.Join(valueStrings, ","))

	_, err := tx.ExecContext(ctx, query, valueArgs...)
	return err
}

// FetchAll retrieves the stored catalog ordered by code.
func (pw *PostgresWriter) FetchAll(ctx context.Context) ([]models.HSNCode, error) {
	rows, err := pw.db.QueryContext(ctx, `
		SELECT code, description, cgst, sgst, igst, cess
		FROM hsn_codes
		ORDER BY code
	`)
	if err != nil {
		return nil, fmt.Errorf("postgres: fetch all: %w", err)
	}
	defer rows.Close()

	var codes []models.HSNCode
	for rows.Next() {
		var c models.HSNCode
		if err := rows.Scan(&c.Code, &c.Description, &c.CGST, &c.SGST, &c.IGST, &c.Cess); err != nil {
			return nil, fmt.Errorf("postgres: scan row: %w", err)
		}
		codes = append(codes, c)
	}
	return codes, rows.Err()
}

func (pw *PostgresWriter) Close() error {
	return pw.db.Close()
}
