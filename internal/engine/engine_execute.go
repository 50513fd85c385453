package engine

import (
	"fmt"

	"minidb/internal/sql"
	"minidb/internal/storage"
)

// Result is what a statement evaluates to.
type Result struct {
	Columns []string      // set for SELECT
	Rows    []storage.Row // SELECT output, in file order
	Count   int64         // rows affected (INSERT/UPDATE/DELETE) or returned (SELECT)
	Message string        // human-readable confirmation for non-SELECT statements
}

// Execute takes a parsed SQL Statement and runs it against the engine.
func (e *Engine) Execute(stmt sql.Statement) (*Result, error) {
	switch s := stmt.(type) {
	case *sql.CreateTableStmt:
		return e.executeCreateTable(s)

	case *sql.InsertStmt:
		return e.executeInsert(s)

	case *sql.SelectStmt:
		return e.executeSelect(s)

	case *sql.UpdateStmt:
		count, err := e.Update(s.TableName, s.Assignments, s.Where)
		if err != nil {
			return nil, err
		}
		return &Result{
			Count:   count,
			Message: fmt.Sprintf("OK (%d rows updated)", count),
		}, nil

	case *sql.DeleteStmt:
		count, err := e.Delete(s.TableName, s.Where)
		if err != nil {
			return nil, err
		}
		return &Result{
			Count:   count,
			Message: fmt.Sprintf("OK (%d rows deleted)", count),
		}, nil

	default:
		return nil, fmt.Errorf("unsupported statement type %T", stmt)
	}
}
