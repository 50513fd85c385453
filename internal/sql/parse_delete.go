package sql

import (
	"strings"
)

// parseDelete parses:
//
//	DELETE FROM tableName [WHERE col = literal [AND ...]];
//
// WHERE may be omitted; the statement then deletes every row.
func parseDelete(query string) (Statement, error) {
	q := strings.TrimSpace(query)

	if !strings.HasPrefix(strings.ToUpper(q), "DELETE") {
		return nil, malformed("DELETE: expected DELETE")
	}

	rest := strings.TrimSpace(q[len("DELETE"):])
	restFields := strings.Fields(rest)
	if len(restFields) == 0 || strings.ToUpper(restFields[0]) != "FROM" {
		return nil, malformed("DELETE: expected FROM after DELETE")
	}

	afterFrom := strings.TrimSpace(rest[len(restFields[0]):])
	if afterFrom == "" {
		return nil, malformed("DELETE: missing table name")
	}

	idxWhere := strings.Index(strings.ToUpper(afterFrom), "WHERE")

	var tableName string
	var where []Condition

	if idxWhere == -1 {
		toks := strings.Fields(afterFrom)
		tableName = toks[0]
	} else {
		tableNameStr := strings.TrimSpace(afterFrom[:idxWhere])
		if tableNameStr == "" {
			return nil, malformed("DELETE: missing table name before WHERE")
		}
		tableName = strings.Fields(tableNameStr)[0]

		w, err := parseWhereClause(afterFrom[idxWhere+len("WHERE"):])
		if err != nil {
			return nil, err
		}
		where = w
	}

	return &DeleteStmt{
		TableName: tableName,
		Where:     where,
	}, nil
}
