package sql

import (
	"strings"
)

// parseSelect parses a simple SELECT statement.
// Supported forms (case-insensitive, flexible spaces):
//
//	SELECT * FROM users;
//	SELECT id, name FROM users;
//	SELECT * FROM users WHERE id = 1 AND active = true;
func parseSelect(query string) (Statement, error) {
	// query is trimmed and has no trailing semicolon here.

	upper := strings.ToUpper(query)

	idxFrom := strings.Index(upper, "FROM")
	if idxFrom == -1 {
		return nil, malformed("SELECT: FROM not found")
	}

	projPart := strings.TrimSpace(query[len("SELECT"):idxFrom])
	if projPart == "" {
		return nil, malformed("SELECT: missing column list")
	}

	// "*" means all columns, represented as a nil list.
	var columns []string
	if projPart != "*" {
		columns = splitCommaSeparated(projPart)
		if len(columns) == 0 {
			return nil, malformed("SELECT: missing column list")
		}
	}

	afterFrom := strings.TrimSpace(query[idxFrom+len("FROM"):])
	if afterFrom == "" {
		return nil, malformed("SELECT: missing table name")
	}

	idxWhere := strings.Index(strings.ToUpper(afterFrom), "WHERE")

	var tableName string
	var where []Condition

	if idxWhere == -1 {
		toks := strings.Fields(afterFrom)
		if len(toks) == 0 {
			return nil, malformed("SELECT: missing table name")
		}
		tableName = toks[0]
	} else {
		toks := strings.Fields(strings.TrimSpace(afterFrom[:idxWhere]))
		if len(toks) == 0 {
			return nil, malformed("SELECT: missing table name before WHERE")
		}
		tableName = toks[0]

		w, err := parseWhereClause(afterFrom[idxWhere+len("WHERE"):])
		if err != nil {
			return nil, err
		}
		where = w
	}

	return &SelectStmt{
		TableName: tableName,
		Columns:   columns,
		Where:     where,
	}, nil
}
