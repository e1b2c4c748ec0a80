package postgres

// Package postgres provides a pgx-backed document store. The whole document
// is held as one jsonb row, keeping the same load/save contract as the flat
// file: full read, full write, last writer wins via upsert.

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"budgetd/internal/budget"
)

// Store holds a pgx connection pool. All methods are safe for concurrent use.
type Store struct {
	pool *pgxpool.Pool
}

// Open establishes a pgx pool using the provided connection string and
// ensures the document table exists.
func Open(ctx context.Context, dsn string) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	s := &Store{pool: pool}
	if err := s.migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the underlying pool.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Ready pings the pool to verify connectivity.
func (s *Store) Ready(ctx context.Context) error { return s.pool.Ping(ctx) }

func (s *Store) migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
        create table if not exists budget_document (
            id int primary key,
            doc jsonb not null
        )
    `)
	return err
}

// the singleton row key; the table only ever holds one document
const docID = 1

// Load returns the stored document, or the default empty document when the
// row does not exist yet.
func (s *Store) Load(ctx context.Context) (budget.Document, error) {
	var raw []byte
	err := s.pool.QueryRow(ctx, `select doc from budget_document where id = $1`, docID).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return budget.DefaultDocument(), nil
	}
	if err != nil {
		return budget.Document{}, err
	}
	var doc budget.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return budget.Document{}, err
	}
	doc.Normalize()
	return doc, nil
}

// Save upserts the full document into the singleton row.
func (s *Store) Save(ctx context.Context, doc budget.Document) error {
	doc.Normalize()
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	_, err = s.pool.Exec(ctx, `
        insert into budget_document (id, doc) values ($1, $2)
        on conflict (id) do update set doc = excluded.doc
    `, docID, raw)
	return err
}
