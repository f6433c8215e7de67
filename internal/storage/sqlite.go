package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"confviz/internal/graph"
)

// SQLiteStore persists graph snapshots. A snapshot is an inspection and
// automation artifact only; the pipeline never reads one back to assemble
// a graph.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates or opens a SQLite database.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	s := &SQLiteStore{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to init schema: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) initSchema() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS nodes (
			id TEXT PRIMARY KEY,
			label TEXT,
			type TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS edges (
			from_id TEXT,
			to_id TEXT,
			key TEXT,
			value TEXT,
			PRIMARY KEY (from_id, to_id, key)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_nodes_type ON nodes(type);`,
	}

	for _, q := range queries {
		if _, err := s.db.Exec(q); err != nil {
			return err
		}
	}
	return nil
}

// SaveGraph replaces any previous snapshot with the given graph.
func (s *SQLiteStore) SaveGraph(ctx context.Context, g *graph.Graph) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// 1. Clear the previous snapshot
	if _, err := tx.ExecContext(ctx, `DELETE FROM nodes`); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM edges`); err != nil {
		return err
	}

	// 2. Save Nodes
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO nodes (id, label, type) VALUES (?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, node := range g.Nodes {
		if _, err := stmt.Exec(node.ID, node.Label, string(node.Type)); err != nil {
			return err
		}
	}

	// 3. Save Edges
	edgeStmt, err := tx.PrepareContext(ctx, `INSERT INTO edges (from_id, to_id, key, value) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer edgeStmt.Close()

	for _, edge := range g.Edges {
		if _, err := edgeStmt.Exec(edge.From, edge.To, edge.Key, edge.Value); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// LoadGraph reads the stored snapshot back into a graph.
func (s *SQLiteStore) LoadGraph(ctx context.Context) (*graph.Graph, error) {
	g := graph.NewGraph()

	// 1. Load Nodes
	rows, err := s.db.QueryContext(ctx, `SELECT id, label, type FROM nodes`)
	if err != nil {
		return nil, fmt.Errorf("failed to query nodes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id, label, nodeType string
		if err := rows.Scan(&id, &label, &nodeType); err != nil {
			return nil, fmt.Errorf("failed to scan node: %w", err)
		}
		g.AddNode(id, label, graph.NodeType(nodeType))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// 2. Load Edges
	edgeRows, err := s.db.QueryContext(ctx, `SELECT from_id, to_id, key, value FROM edges`)
	if err != nil {
		return nil, fmt.Errorf("failed to query edges: %w", err)
	}
	defer edgeRows.Close()

	for edgeRows.Next() {
		var from, to, key, value string
		if err := edgeRows.Scan(&from, &to, &key, &value); err != nil {
			return nil, fmt.Errorf("failed to scan edge: %w", err)
		}
		g.AddEdge(from, to, key, value)
	}
	if err := edgeRows.Err(); err != nil {
		return nil, err
	}

	return g, nil
}
