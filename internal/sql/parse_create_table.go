package sql

import (
	"strings"
)

// parseCreateTable parses:
//
//	CREATE TABLE users (id INT PRIMARY KEY, email TEXT UNIQUE, name TEXT NOT NULL);
func parseCreateTable(query string) (Statement, error) {
	// At this point:
	// - query has been trimmed
	// - trailing ';' removed
	// - we already know it's some form of CREATE TABLE

	openIdx := strings.Index(query, "(")
	if openIdx == -1 {
		return nil, malformed("CREATE TABLE: missing '('")
	}

	closeIdx := strings.LastIndex(query, ")")
	if closeIdx == -1 || closeIdx <= openIdx {
		return nil, malformed("CREATE TABLE: missing or misplaced ')'")
	}

	head := strings.TrimSpace(query[:openIdx])
	colsPart := strings.TrimSpace(query[openIdx+1 : closeIdx])
	if colsPart == "" {
		return nil, malformed("CREATE TABLE: no column definitions")
	}

	headTokens := strings.Fields(head)
	if len(headTokens) < 3 {
		return nil, malformed("CREATE TABLE: missing table name")
	}
	if strings.ToUpper(headTokens[0]) != "CREATE" || strings.ToUpper(headTokens[1]) != "TABLE" {
		return nil, malformed("CREATE TABLE: invalid syntax")
	}
	tableName := headTokens[len(headTokens)-1]

	colDefs := splitCommaSeparated(colsPart)
	if len(colDefs) == 0 {
		return nil, malformed("CREATE TABLE: no valid columns")
	}

	columns := make([]ColumnDef, 0, len(colDefs))
	for _, def := range colDefs {
		parts := strings.Fields(def)
		if len(parts) < 2 {
			return nil, malformed("invalid column definition: %q", def)
		}

		colName := parts[0]
		dt, err := ParseDataType(parts[1])
		if err != nil {
			return nil, malformed("invalid column definition %q: %v", def, err)
		}

		// Everything after the type is a run of column options, e.g.
		// "PRIMARY KEY NOT NULL".
		rest := strings.ToUpper(strings.Join(parts[2:], " "))

		columns = append(columns, ColumnDef{
			Name:       colName,
			Type:       dt,
			PrimaryKey: strings.Contains(rest, "PRIMARY KEY"),
			Unique:     strings.Contains(rest, "UNIQUE"),
			NotNull:    strings.Contains(rest, "NOT NULL"),
		})
	}

	return &CreateTableStmt{
		TableName: tableName,
		Columns:   columns,
	}, nil
}
