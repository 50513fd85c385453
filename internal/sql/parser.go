package sql

import (
	"errors"
	"strings"
)

// ErrMalformedStatement is wrapped by every parse error.
var ErrMalformedStatement = errors.New("malformed statement")

// Parse parses a single SQL statement string into an AST Statement.
// Supported: CREATE TABLE, INSERT, SELECT, UPDATE, DELETE.
func Parse(query string) (Statement, error) {
	// Trim leading & trailing whitespace.
	q := strings.TrimSpace(query)
	if q == "" {
		return nil, malformed("empty statement")
	}

	// Remove trailing semicolon if present.
	if strings.HasSuffix(q, ";") {
		q = strings.TrimSpace(q[:len(q)-1])
	}

	tokens := strings.Fields(strings.ToUpper(q))
	if len(tokens) == 0 {
		return nil, malformed("empty statement")
	}

	switch tokens[0] {
	case "CREATE":
		if len(tokens) >= 2 && tokens[1] == "TABLE" {
			return parseCreateTable(q)
		}
		return nil, malformed("CREATE: only CREATE TABLE is supported")
	case "INSERT":
		if len(tokens) >= 2 && tokens[1] == "INTO" {
			return parseInsert(q)
		}
		return nil, malformed("INSERT: expected INTO")
	case "SELECT":
		return parseSelect(q)
	case "UPDATE":
		return parseUpdate(q)
	case "DELETE":
		return parseDelete(q)
	default:
		return nil, malformed("unrecognized statement (supported: CREATE TABLE, INSERT, SELECT, UPDATE, DELETE)")
	}
}

// SplitScript splits input into statements separated by semicolons,
// ignoring semicolons inside quoted string literals.
func SplitScript(script string) []string {
	var statements []string
	var buf strings.Builder
	inSingle := false
	inDouble := false

	for _, ch := range script {
		switch {
		case ch == '\'' && !inDouble:
			inSingle = !inSingle
		case ch == '"' && !inSingle:
			inDouble = !inDouble
		}

		if ch == ';' && !inSingle && !inDouble {
			if stmt := strings.TrimSpace(buf.String()); stmt != "" {
				statements = append(statements, stmt)
			}
			buf.Reset()
			continue
		}
		buf.WriteRune(ch)
	}

	if tail := strings.TrimSpace(buf.String()); tail != "" {
		statements = append(statements, tail)
	}
	return statements
}
