package sql

import (
	"strings"
)

// parseUpdate parses:
//
//	UPDATE tableName SET col1 = value1, col2 = value2 [WHERE col = literal [AND ...]];
//
// WHERE may be omitted; the statement then applies to every row.
func parseUpdate(query string) (Statement, error) {
	q := strings.TrimSpace(query)

	fields := strings.Fields(q)
	if len(fields) == 0 || strings.ToUpper(fields[0]) != "UPDATE" {
		return nil, malformed("UPDATE: expected UPDATE")
	}
	rest := strings.TrimSpace(q[len(fields[0]):])

	idxSet := strings.Index(strings.ToUpper(rest), "SET")
	if idxSet == -1 {
		return nil, malformed("UPDATE: missing SET")
	}

	tableName := strings.TrimSpace(rest[:idxSet])
	if tableName == "" {
		return nil, malformed("UPDATE: missing table name")
	}

	afterSet := strings.TrimSpace(rest[idxSet+len("SET"):])
	if afterSet == "" {
		return nil, malformed("UPDATE: missing assignments after SET")
	}

	idxWhere := strings.Index(strings.ToUpper(afterSet), "WHERE")

	assignsPart := afterSet
	var where []Condition

	if idxWhere != -1 {
		assignsPart = strings.TrimSpace(afterSet[:idxWhere])
		w, err := parseWhereClause(afterSet[idxWhere+len("WHERE"):])
		if err != nil {
			return nil, err
		}
		where = w
	}

	if strings.TrimSpace(assignsPart) == "" {
		return nil, malformed("UPDATE: empty SET assignments")
	}

	// Parse assignments: "col1 = val1, col2 = val2"
	assignDefs := splitCommaSeparated(assignsPart)
	assignments := make([]Assignment, 0, len(assignDefs))

	for _, def := range assignDefs {
		idxEq := strings.Index(def, "=")
		if idxEq == -1 {
			return nil, malformed("UPDATE: expected '=' in assignment %q", def)
		}

		colPart := strings.TrimSpace(def[:idxEq])
		valPart := strings.TrimSpace(def[idxEq+1:])
		if colPart == "" || valPart == "" {
			return nil, malformed("UPDATE: invalid assignment %q", def)
		}

		val, err := parseLiteral(valPart)
		if err != nil {
			return nil, err
		}

		assignments = append(assignments, Assignment{Column: colPart, Value: val})
	}

	if len(assignments) == 0 {
		return nil, malformed("UPDATE: no valid assignments")
	}

	return &UpdateStmt{
		TableName:   tableName,
		Assignments: assignments,
		Where:       where,
	}, nil
}
