package sql

import (
	"strings"
)

// parseInsert parses an INSERT INTO ... VALUES (...) statement.
// Supported forms:
//
//	INSERT INTO users VALUES (1, 'Alice', true);
//	INSERT INTO users (id, name, active) VALUES (1, 'Alice', true);
func parseInsert(query string) (Statement, error) {
	// query is trimmed and has no trailing semicolon here.

	upper := strings.ToUpper(query)

	idxInto := strings.Index(upper, "INTO")
	if idxInto == -1 {
		return nil, malformed("INSERT: missing INTO")
	}

	afterInto := strings.TrimSpace(query[idxInto+len("INTO"):])

	idxValues := strings.Index(strings.ToUpper(afterInto), "VALUES")
	if idxValues == -1 {
		return nil, malformed("INSERT: missing VALUES")
	}

	headPart := strings.TrimSpace(afterInto[:idxValues])
	if headPart == "" {
		return nil, malformed("INSERT: missing table name")
	}

	// The head is either "users" or "users (id, name, active)".
	var tableName string
	var columns []string

	if openIdx := strings.Index(headPart, "("); openIdx != -1 {
		closeIdx := strings.LastIndex(headPart, ")")
		if closeIdx == -1 || closeIdx <= openIdx {
			return nil, malformed("INSERT: missing ')' after column list")
		}

		tableName = strings.TrimSpace(headPart[:openIdx])
		columns = splitCommaSeparated(headPart[openIdx+1 : closeIdx])
		if len(columns) == 0 {
			return nil, malformed("INSERT: empty column list")
		}
	} else {
		tableName = headPart
	}

	if tableName == "" || len(strings.Fields(tableName)) != 1 {
		return nil, malformed("INSERT: invalid table name %q", tableName)
	}

	rest := strings.TrimSpace(afterInto[idxValues+len("VALUES"):])
	if !strings.HasPrefix(rest, "(") {
		return nil, malformed("INSERT: expected '(' after VALUES")
	}
	closeIdx := strings.LastIndex(rest, ")")
	if closeIdx == -1 {
		return nil, malformed("INSERT: missing closing ')'")
	}

	valuesPart := strings.TrimSpace(rest[1:closeIdx])
	if valuesPart == "" {
		return nil, malformed("INSERT: empty VALUES list")
	}

	rawVals := splitCommaSeparated(valuesPart)
	values := make([]Value, 0, len(rawVals))
	for _, raw := range rawVals {
		v, err := parseLiteral(raw)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}

	if len(columns) > 0 && len(columns) != len(values) {
		return nil, malformed("INSERT: %d columns but %d values", len(columns), len(values))
	}

	return &InsertStmt{
		TableName: tableName,
		Columns:   columns,
		Values:    values,
	}, nil
}
