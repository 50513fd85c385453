package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"minidb/internal/catalog"
	"minidb/internal/engine"
	"minidb/internal/sql"
	"minidb/internal/storage"
)

const tasksTable = "tasks"

// TaskApp is a small REST CRUD demo over the engine: a tasks table with
// an INT primary key, a NOT NULL title and a NOT NULL done flag.
type TaskApp struct {
	eng *engine.Engine
}

func New(eng *engine.Engine) *TaskApp {
	return &TaskApp{eng: eng}
}

// Initialize creates the tasks table unless it already exists.
func (app *TaskApp) Initialize() error {
	if _, err := app.eng.Schema(tasksTable); err == nil {
		return nil
	} else if !errors.Is(err, catalog.ErrUnknownTable) {
		return err
	}

	return app.eng.CreateTable(&catalog.TableSchema{
		Name: tasksTable,
		Columns: []catalog.Column{
			{Name: "id", Type: sql.TypeInt, PrimaryKey: true},
			{Name: "title", Type: sql.TypeText, NotNull: true},
			{Name: "done", Type: sql.TypeBool, NotNull: true},
		},
	})
}

// Handler returns the route table for the app.
func (app *TaskApp) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/tasks", app.handleTasks)
	return mux
}

func (app *TaskApp) handleTasks(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		app.handleList(w, r)
	case http.MethodPost:
		app.handleCreate(w, r)
	case http.MethodPut:
		app.handleUpdate(w, r)
	case http.MethodDelete:
		app.handleDelete(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (app *TaskApp) handleList(w http.ResponseWriter, _ *http.Request) {
	rows, err := app.eng.Select(tasksTable, nil, nil)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if rows == nil {
		rows = []storage.Row{}
	}

	writeJSON(w, http.StatusOK, rows)
}

func (app *TaskApp) handleCreate(w http.ResponseWriter, r *http.Request) {
	var task storage.Row
	// A body of `null` decodes without error but leaves the map nil.
	if err := json.NewDecoder(r.Body).Decode(&task); err != nil || task == nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if _, ok := task["done"]; !ok {
		task["done"] = sql.BoolValue(false)
	}

	rid, err := app.eng.Insert(tasksTable, task)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "Task created",
		"row_id":  rid,
	})
}

func (app *TaskApp) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var task storage.Row
	if err := json.NewDecoder(r.Body).Decode(&task); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	id, ok := task["id"]
	if !ok {
		http.Error(w, "Missing task id", http.StatusBadRequest)
		return
	}

	var assignments []sql.Assignment
	for col, v := range task {
		if col == "id" {
			continue
		}
		assignments = append(assignments, sql.Assignment{Column: col, Value: v})
	}
	if len(assignments) == 0 {
		http.Error(w, "Nothing to update", http.StatusBadRequest)
		return
	}

	count, err := app.eng.Update(tasksTable, assignments, []sql.Condition{
		{Column: "id", Op: "=", Value: id},
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"updated": count})
}

func (app *TaskApp) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)
	if err != nil {
		http.Error(w, "Missing or invalid task id", http.StatusBadRequest)
		return
	}

	count, err := app.eng.Delete(tasksTable, []sql.Condition{
		{Column: "id", Op: "=", Value: sql.IntValue(id)},
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"deleted": count})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
