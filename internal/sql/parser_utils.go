package sql

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedStatement, fmt.Sprintf(format, args...))
}

// splitCommaSeparated splits a string by commas, trimming each part.
// Fine for "id INT, name TEXT, active BOOL" and SET/VALUES lists without
// commas inside literals.
func splitCommaSeparated(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// parseLiteral parses a single literal token into a Value.
// Supports:
//   - integers:  1, -42
//   - strings:   'Alice' or "Alice"
//   - booleans:  true / false (case-insensitive)
//   - NULL
//
// A bare unquoted word falls back to a text value, matching the lenient
// front-end behavior (WHERE name = Alice).
func parseLiteral(tok string) (Value, error) {
	s := strings.TrimSpace(tok)
	if s == "" {
		return Value{}, malformed("empty literal")
	}

	switch strings.ToUpper(s) {
	case "TRUE":
		return BoolValue(true), nil
	case "FALSE":
		return BoolValue(false), nil
	case "NULL":
		return NullValue(), nil
	}

	// Quoted string, single or double quotes.
	if len(s) >= 2 {
		if (s[0] == '\'' && s[len(s)-1] == '\'') || (s[0] == '"' && s[len(s)-1] == '"') {
			return TextValue(s[1 : len(s)-1]), nil
		}
	}

	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return IntValue(i), nil
	}

	return TextValue(s), nil
}

var andSplitRE = regexp.MustCompile(`(?i)\s+and\s+`)

// parseWhereClause parses "col = literal AND col2 = literal2 ..." into a
// list of Conditions. Only the '=' operator is produced here; anything
// else is a parse error.
func parseWhereClause(wherePart string) ([]Condition, error) {
	conds := andSplitRE.Split(strings.TrimSpace(wherePart), -1)

	out := make([]Condition, 0, len(conds))
	for _, cond := range conds {
		cond = strings.TrimSpace(cond)
		if cond == "" {
			continue
		}

		idxEq := strings.Index(cond, "=")
		if idxEq == -1 {
			return nil, malformed("WHERE: only '=' is supported in %q", cond)
		}

		colPart := strings.TrimSpace(cond[:idxEq])
		valPart := strings.TrimSpace(cond[idxEq+1:])
		if colPart == "" {
			return nil, malformed("WHERE: missing column name in %q", cond)
		}
		if valPart == "" {
			return nil, malformed("WHERE: missing value after '=' in %q", cond)
		}

		val, err := parseLiteral(valPart)
		if err != nil {
			return nil, err
		}

		out = append(out, Condition{Column: colPart, Op: "=", Value: val})
	}

	if len(out) == 0 {
		return nil, malformed("WHERE: empty clause")
	}
	return out, nil
}
