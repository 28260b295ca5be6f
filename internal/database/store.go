// Package database provides the prediction source for augur.
//
// It implements the Store interface on SQLite. The dashboard opens it
// with the in-memory DSN, fills it with seed records and loads the
// collection back in insertion order; nothing outlives the process.
package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/Mr-Dark-debug/augur/internal/prediction"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaFS embed.FS

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

// ErrNotFound is returned when no prediction has the requested ID.
var ErrNotFound = errors.New("prediction not found")

// Store defines the interface for prediction records.
type Store interface {
	// InsertPrediction appends a record to the collection.
	InsertPrediction(r prediction.Record) error
	// BatchInsertPredictions appends records in a single transaction.
	BatchInsertPredictions(records []prediction.Record) error
	// ListPredictions returns every prediction in insertion order.
	ListPredictions() ([]prediction.Prediction, error)
	// GetPrediction returns the prediction with the given ID.
	GetPrediction(id prediction.ID) (prediction.Prediction, error)
	// Close releases the database.
	Close() error
}

// DBService implements the Store interface using SQLite.
type DBService struct {
	db   *sql.DB
	mu   sync.RWMutex
	path string

	stmtInsert *sql.Stmt
}

// NewDBService opens the database at path, initializes the schema and
// prepares the insert statement. Use MemoryPath for a throwaway store.
func NewDBService(path string) (*DBService, error) {
	dsn := fmt.Sprintf("%s?_foreign_keys=ON", path)

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database at %s: %w", path, err)
	}

	// An in-memory database lives and dies with its connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	svc := &DBService{
		db:   db,
		path: path,
	}

	if err := svc.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}

	svc.stmtInsert, err = db.Prepare(`
		INSERT INTO predictions (id, title, description, certainty, created_at, created_nsec, due_at, due_nsec)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("preparing InsertPrediction: %w", err)
	}

	return svc, nil
}

func (s *DBService) initSchema() error {
	schema, err := schemaFS.ReadFile("schema.sql")
	if err != nil {
		return fmt.Errorf("reading embedded schema: %w", err)
	}

	if _, err := s.db.Exec(string(schema)); err != nil {
		return fmt.Errorf("executing schema: %w", err)
	}

	return nil
}

// InsertPrediction validates r and appends it to the collection.
func (s *DBService) InsertPrediction(r prediction.Record) error {
	args, err := insertArgs(r)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.stmtInsert.Exec(args...); err != nil {
		return fmt.Errorf("inserting prediction %d: %w", r.ID, err)
	}
	return nil
}

// BatchInsertPredictions appends all records or none of them.
func (s *DBService) BatchInsertPredictions(records []prediction.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning batch prediction transaction: %w", err)
	}
	defer tx.Rollback() // No-op if committed

	stmt := tx.Stmt(s.stmtInsert)
	for _, r := range records {
		args, err := insertArgs(r)
		if err != nil {
			return err
		}
		if _, err := stmt.Exec(args...); err != nil {
			return fmt.Errorf("batch inserting prediction %d: %w", r.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing batch prediction transaction: %w", err)
	}
	return nil
}

// ListPredictions returns every prediction ordered by insertion.
func (s *DBService) ListPredictions() ([]prediction.Prediction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT id, title, description, certainty, created_at, created_nsec, due_at, due_nsec
		FROM predictions
		ORDER BY seq ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("querying predictions: %w", err)
	}
	defer rows.Close()

	var out []prediction.Prediction
	for rows.Next() {
		p, err := scanPrediction(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// GetPrediction returns the prediction with the given ID, or ErrNotFound.
func (s *DBService) GetPrediction(id prediction.ID) (prediction.Prediction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRow(`
		SELECT id, title, description, certainty, created_at, created_nsec, due_at, due_nsec
		FROM predictions
		WHERE id = ?
	`, int64(id))

	p, err := scanPrediction(row)
	if errors.Is(err, sql.ErrNoRows) {
		return prediction.Prediction{}, fmt.Errorf("prediction %d: %w", id, ErrNotFound)
	}
	return p, err
}

// Close closes the prepared statement and the connection pool.
func (s *DBService) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stmtInsert != nil {
		s.stmtInsert.Close()
	}
	return s.db.Close()
}

// ── Scan helpers ──

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPrediction(row rowScanner) (prediction.Prediction, error) {
	var (
		r           prediction.Record
		id          int64
		created     int64
		createdNsec int64
		due         sql.NullInt64
		dueNsec     sql.NullInt64
	)
	if err := row.Scan(&id, &r.Title, &r.Description, &r.Certainty, &created, &createdNsec, &due, &dueNsec); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return prediction.Prediction{}, err
		}
		return prediction.Prediction{}, fmt.Errorf("scanning prediction row: %w", err)
	}
	r.ID = prediction.ID(id)
	r.Created = time.Unix(created, createdNsec)
	if due.Valid {
		d := time.Unix(due.Int64, dueNsec.Int64)
		r.Due = &d
	}

	p, err := prediction.FromRecord(r)
	if err != nil {
		return prediction.Prediction{}, fmt.Errorf("loading prediction %d: %w", id, err)
	}
	return p, nil
}

func insertArgs(r prediction.Record) ([]any, error) {
	if uint64(r.ID) > math.MaxInt64 {
		return nil, fmt.Errorf("prediction id %d exceeds storage range", r.ID)
	}
	if !prediction.ValidCertainty(r.Certainty) {
		return nil, &prediction.ValidationError{
			Field: "certainty",
			Value: r.Certainty,
			Err:   prediction.ErrCertaintyOutOfRange,
		}
	}

	var due, dueNsec *int64
	if r.Due != nil {
		sec, nsec := r.Due.Unix(), int64(r.Due.Nanosecond())
		due, dueNsec = &sec, &nsec
	}
	return []any{
		int64(r.ID), r.Title, r.Description, r.Certainty,
		r.Created.Unix(), int64(r.Created.Nanosecond()),
		due, dueNsec,
	}, nil
}
