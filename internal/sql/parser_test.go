package sql

import (
	"errors"
	"testing"
)

func TestParseCreateTable_Basic(t *testing.T) {
	query := "CREATE TABLE users (id INT PRIMARY KEY, email TEXT UNIQUE, name TEXT NOT NULL);"

	stmt, err := Parse(query)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	ct, ok := stmt.(*CreateTableStmt)
	if !ok {
		t.Fatalf("expected *CreateTableStmt, got %T", stmt)
	}

	if ct.TableName != "users" {
		t.Fatalf("expected table name %q, got %q", "users", ct.TableName)
	}
	if len(ct.Columns) != 3 {
		t.Fatalf("expected 3 columns, got %d", len(ct.Columns))
	}

	assertCol := func(idx int, name string, dt DataType, pk, unique, notNull bool) {
		c := ct.Columns[idx]
		if c.Name != name || c.Type != dt {
			t.Fatalf("column %d: expected %s %v, got %s %v", idx, name, dt, c.Name, c.Type)
		}
		if c.PrimaryKey != pk || c.Unique != unique || c.NotNull != notNull {
			t.Fatalf("column %d: unexpected options %+v", idx, c)
		}
	}

	assertCol(0, "id", TypeInt, true, false, false)
	assertCol(1, "email", TypeText, false, true, false)
	assertCol(2, "name", TypeText, false, false, true)
}

func TestParseCreateTable_CaseAndSpaces(t *testing.T) {
	query := "  create   table   Accounts  (  owner  text ,  active  boolean  not null );  "

	stmt, err := Parse(query)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	ct, ok := stmt.(*CreateTableStmt)
	if !ok {
		t.Fatalf("expected *CreateTableStmt, got %T", stmt)
	}

	if ct.TableName != "Accounts" {
		t.Fatalf("expected table name %q, got %q", "Accounts", ct.TableName)
	}
	if len(ct.Columns) != 2 {
		t.Fatalf("expected 2 columns, got %d", len(ct.Columns))
	}
	if ct.Columns[0].Name != "owner" || ct.Columns[0].Type != TypeText {
		t.Fatalf("unexpected first column: %+v", ct.Columns[0])
	}
	if ct.Columns[1].Name != "active" || ct.Columns[1].Type != TypeBool || !ct.Columns[1].NotNull {
		t.Fatalf("unexpected second column: %+v", ct.Columns[1])
	}
}

func TestParseCreateTable_UnknownType(t *testing.T) {
	_, err := Parse("CREATE TABLE t (x BLOB);")
	if !errors.Is(err, ErrMalformedStatement) {
		t.Fatalf("expected ErrMalformedStatement, got %v", err)
	}
}

func TestParseInsert_Basic(t *testing.T) {
	query := "INSERT INTO users VALUES (1, 'Alice', true);"

	stmt, err := Parse(query)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	ins, ok := stmt.(*InsertStmt)
	if !ok {
		t.Fatalf("expected *InsertStmt, got %T", stmt)
	}

	if ins.TableName != "users" {
		t.Fatalf("expected table name %q, got %q", "users", ins.TableName)
	}
	if len(ins.Columns) != 0 {
		t.Fatalf("expected no column list, got %v", ins.Columns)
	}
	if len(ins.Values) != 3 {
		t.Fatalf("expected 3 values, got %d", len(ins.Values))
	}
	if ins.Values[0] != IntValue(1) {
		t.Fatalf("unexpected first value: %+v", ins.Values[0])
	}
	if ins.Values[1] != TextValue("Alice") {
		t.Fatalf("unexpected second value: %+v", ins.Values[1])
	}
	if ins.Values[2] != BoolValue(true) {
		t.Fatalf("unexpected third value: %+v", ins.Values[2])
	}
}

func TestParseInsert_ColumnList(t *testing.T) {
	query := "INSERT INTO users (id, email) VALUES (7, 'a@b.com');"

	stmt, err := Parse(query)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	ins := stmt.(*InsertStmt)
	if len(ins.Columns) != 2 || ins.Columns[0] != "id" || ins.Columns[1] != "email" {
		t.Fatalf("unexpected column list: %v", ins.Columns)
	}
	if ins.Values[0] != IntValue(7) || ins.Values[1] != TextValue("a@b.com") {
		t.Fatalf("unexpected values: %v", ins.Values)
	}
}

func TestParseInsert_CountMismatch(t *testing.T) {
	_, err := Parse("INSERT INTO users (id, email) VALUES (7);")
	if !errors.Is(err, ErrMalformedStatement) {
		t.Fatalf("expected ErrMalformedStatement, got %v", err)
	}
}

func TestParseSelect_Star(t *testing.T) {
	stmt, err := Parse("SELECT * FROM users;")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	sel := stmt.(*SelectStmt)
	if sel.TableName != "users" {
		t.Fatalf("expected table %q, got %q", "users", sel.TableName)
	}
	if sel.Columns != nil {
		t.Fatalf("expected nil column list for *, got %v", sel.Columns)
	}
	if sel.Where != nil {
		t.Fatalf("expected no WHERE, got %v", sel.Where)
	}
}

func TestParseSelect_ProjectionAndWhere(t *testing.T) {
	stmt, err := Parse("SELECT id, name FROM users WHERE id = 1 AND active = true;")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	sel := stmt.(*SelectStmt)
	if len(sel.Columns) != 2 || sel.Columns[0] != "id" || sel.Columns[1] != "name" {
		t.Fatalf("unexpected projection: %v", sel.Columns)
	}
	if len(sel.Where) != 2 {
		t.Fatalf("expected 2 conditions, got %d", len(sel.Where))
	}
	if sel.Where[0] != (Condition{Column: "id", Op: "=", Value: IntValue(1)}) {
		t.Fatalf("unexpected first condition: %+v", sel.Where[0])
	}
	if sel.Where[1] != (Condition{Column: "active", Op: "=", Value: BoolValue(true)}) {
		t.Fatalf("unexpected second condition: %+v", sel.Where[1])
	}
}

func TestParseUpdate_Basic(t *testing.T) {
	stmt, err := Parse("UPDATE users SET name = 'Bob', active = false WHERE id = 1;")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	up := stmt.(*UpdateStmt)
	if up.TableName != "users" {
		t.Fatalf("expected table %q, got %q", "users", up.TableName)
	}
	if len(up.Assignments) != 2 {
		t.Fatalf("expected 2 assignments, got %d", len(up.Assignments))
	}
	if up.Assignments[0] != (Assignment{Column: "name", Value: TextValue("Bob")}) {
		t.Fatalf("unexpected first assignment: %+v", up.Assignments[0])
	}
	if len(up.Where) != 1 || up.Where[0].Value != IntValue(1) {
		t.Fatalf("unexpected WHERE: %+v", up.Where)
	}
}

func TestParseUpdate_NoWhere(t *testing.T) {
	stmt, err := Parse("UPDATE users SET active = false;")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	up := stmt.(*UpdateStmt)
	if up.Where != nil {
		t.Fatalf("expected nil WHERE, got %+v", up.Where)
	}
}

func TestParseUpdate_TabSeparated(t *testing.T) {
	stmt, err := Parse("UPDATE\tusers\tSET name = 'Bob' WHERE id = 1;")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	up := stmt.(*UpdateStmt)
	if up.TableName != "users" {
		t.Fatalf("expected table %q, got %q", "users", up.TableName)
	}
	if len(up.Assignments) != 1 || up.Assignments[0].Value != TextValue("Bob") {
		t.Fatalf("unexpected assignments: %+v", up.Assignments)
	}
}

func TestParseDelete_TabSeparated(t *testing.T) {
	stmt, err := Parse("DELETE\tFROM\tusers WHERE id = 3;")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	del := stmt.(*DeleteStmt)
	if del.TableName != "users" {
		t.Fatalf("expected table %q, got %q", "users", del.TableName)
	}
}

func TestParseDelete_Basic(t *testing.T) {
	stmt, err := Parse("DELETE FROM users WHERE id = 3;")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	del := stmt.(*DeleteStmt)
	if del.TableName != "users" {
		t.Fatalf("expected table %q, got %q", "users", del.TableName)
	}
	if len(del.Where) != 1 || del.Where[0].Value != IntValue(3) {
		t.Fatalf("unexpected WHERE: %+v", del.Where)
	}
}

func TestParseDelete_NoWhere(t *testing.T) {
	stmt, err := Parse("DELETE FROM users;")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	del := stmt.(*DeleteStmt)
	if del.Where != nil {
		t.Fatalf("expected nil WHERE, got %+v", del.Where)
	}
}

func TestParse_NullLiteral(t *testing.T) {
	stmt, err := Parse("INSERT INTO users (id, email) VALUES (1, NULL);")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	ins := stmt.(*InsertStmt)
	if !ins.Values[1].IsNull() {
		t.Fatalf("expected NULL value, got %+v", ins.Values[1])
	}
}

func TestParse_Unrecognized(t *testing.T) {
	_, err := Parse("DROP TABLE users;")
	if !errors.Is(err, ErrMalformedStatement) {
		t.Fatalf("expected ErrMalformedStatement, got %v", err)
	}
}

func TestSplitScript(t *testing.T) {
	script := `CREATE TABLE t (id INT); INSERT INTO t VALUES ('a;b'); SELECT * FROM t`

	parts := SplitScript(script)
	if len(parts) != 3 {
		t.Fatalf("expected 3 statements, got %d: %v", len(parts), parts)
	}
	if parts[1] != "INSERT INTO t VALUES ('a;b')" {
		t.Fatalf("quoted semicolon was split: %q", parts[1])
	}
}
