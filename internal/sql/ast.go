package sql

// Statement is the common interface for all SQL statements.
type Statement interface {
	stmtNode()
}

// ColumnDef is one column in a CREATE TABLE statement.
type ColumnDef struct {
	Name       string
	Type       DataType
	PrimaryKey bool
	Unique     bool
	NotNull    bool
}

// Condition is a single "column = literal" test. Conditions in a WHERE
// clause combine with AND.
type Condition struct {
	Column string
	Op     string
	Value  Value
}

// Assignment is a single "column = literal" in an UPDATE SET list.
type Assignment struct {
	Column string
	Value  Value
}

// CreateTableStmt represents a parsed CREATE TABLE statement.
type CreateTableStmt struct {
	TableName string
	Columns   []ColumnDef
}

// InsertStmt represents a parsed INSERT statement. Columns[i] pairs with
// Values[i]; an empty Columns list means values follow schema order.
type InsertStmt struct {
	TableName string
	Columns   []string
	Values    []Value
}

// SelectStmt represents a parsed SELECT statement. A nil Columns list
// means all columns ("*"). A nil Where means no filter.
type SelectStmt struct {
	TableName string
	Columns   []string
	Where     []Condition
}

// UpdateStmt represents a parsed UPDATE statement. A nil Where updates
// every row.
type UpdateStmt struct {
	TableName   string
	Assignments []Assignment
	Where       []Condition
}

// DeleteStmt represents a parsed DELETE statement. A nil Where deletes
// every row.
type DeleteStmt struct {
	TableName string
	Where     []Condition
}

func (*CreateTableStmt) stmtNode() {}
func (*InsertStmt) stmtNode()      {}
func (*SelectStmt) stmtNode()      {}
func (*UpdateStmt) stmtNode()      {}
func (*DeleteStmt) stmtNode()      {}
