package graph

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	_ "modernc.org/sqlite"
)

// StatusCompleted is the step status that places a node in group 1.
const StatusCompleted = "completed"

// Graph is the node-link document consumed by force-directed layouts.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Links []Link `json:"links"`
}

// Node is one workflow step. ID keeps the SQLite storage type of step_id.
type Node struct {
	ID          any    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Group       int    `json:"group"`
}

// Link points from a predecessor step to the step that depends on it.
type Link struct {
	Source any `json:"source"`
	Target any `json:"target"`
	Value  int `json:"value"`
}

// Open opens a SQLite workflow database.
func Open(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", dbPath, err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("open sqlite %s: %w", dbPath, err)
	}
	return db, nil
}

// ExportFile reads the steps and dependencies tables from the database at
// dbPath.
func ExportFile(ctx context.Context, dbPath string, log *slog.Logger) (*Graph, error) {
	// The driver creates missing files on open.
	if _, err := os.Stat(dbPath); err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", dbPath, err)
	}
	db, err := Open(dbPath)
	if err != nil {
		return nil, err
	}
	defer func() { _ = db.Close() }() // safe to ignore

	return Export(ctx, db, log)
}

// Export builds the node-link graph from an open database.
func Export(ctx context.Context, db *sql.DB, log *slog.Logger) (*Graph, error) {
	nodes, err := loadSteps(ctx, db)
	if err != nil {
		return nil, err
	}
	links, err := loadDependencies(ctx, db)
	if err != nil {
		return nil, err
	}
	if log != nil {
		log.Debug("graph exported", "nodes", len(nodes), "links", len(links))
	}
	return &Graph{Nodes: nodes, Links: links}, nil
}

func loadSteps(ctx context.Context, db *sql.DB) ([]Node, error) {
	rows, err := db.QueryContext(ctx, "SELECT step_id, name, description, status FROM steps")
	if err != nil {
		return nil, fmt.Errorf("query steps: %w", err)
	}
	defer func() { _ = rows.Close() }() // safe to ignore

	nodes := []Node{}
	for rows.Next() {
		var (
			id     any
			name   sql.NullString
			desc   sql.NullString
			status sql.NullString
		)
		if err := rows.Scan(&id, &name, &desc, &status); err != nil {
			return nil, fmt.Errorf("scan step: %w", err)
		}
		nodes = append(nodes, newNode(normalizeID(id), name.String, desc.String, status))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate steps: %w", err)
	}
	return nodes, nil
}

func newNode(id any, name, desc string, status sql.NullString) Node {
	n := Node{
		ID:          id,
		Name:        name,
		Description: desc,
		Status:      status.String,
		Group:       2,
	}
	if n.Status == "" {
		n.Status = "pending"
	}
	if status.Valid && status.String == StatusCompleted {
		n.Group = 1
	}
	return n
}

func loadDependencies(ctx context.Context, db *sql.DB) ([]Link, error) {
	rows, err := db.QueryContext(ctx, "SELECT step_id, predecessor_id FROM dependencies")
	if err != nil {
		return nil, fmt.Errorf("query dependencies: %w", err)
	}
	defer func() { _ = rows.Close() }() // safe to ignore

	links := []Link{}
	for rows.Next() {
		var stepID, predID any
		if err := rows.Scan(&stepID, &predID); err != nil {
			return nil, fmt.Errorf("scan dependency: %w", err)
		}
		links = append(links, Link{
			Source: normalizeID(predID),
			Target: normalizeID(stepID),
			Value:  1,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate dependencies: %w", err)
	}
	return links, nil
}

// normalizeID turns BLOB ids into strings so they serialize as text instead
// of base64.
func normalizeID(v any) any {
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return v
}
