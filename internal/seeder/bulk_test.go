package seeder

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/edelooff/smallville/internal/model"
)

type recordedQuery struct {
	query string
	args  []interface{}
}

// fakeExecer records executed statements instead of hitting a database.
type fakeExecer struct {
	queries []recordedQuery
}

func (f *fakeExecer) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	f.queries = append(f.queries, recordedQuery{query: query, args: args})
	return nil, nil
}

func testCity(id int) *model.City {
	return &model.City{ID: id, Name: fmt.Sprintf("City %d", id), SizeCode: model.SizeSmall}
}

func testPerson(id, cityID int) *model.Person {
	return &model.Person{
		ID:        id,
		FirstName: "Anna",
		LastName:  "Bakker",
		Birthday:  time.Date(1990, time.June, 15, 0, 0, 0, 0, time.UTC),
		Gender:    model.GenderFeminine,
		CityID:    cityID,
	}
}

func TestBulkSaverHoldsBelowThreshold(t *testing.T) {
	exec := &fakeExecer{}
	saver := NewBulkSaver(exec, "postgresql", 10)

	ctx := context.Background()
	for i := 1; i <= 9; i++ {
		if err := saver.Add(ctx, testCity(i)); err != nil {
			t.Fatalf("Failed to add row: %v", err)
		}
	}
	if len(exec.queries) != 0 {
		t.Errorf("Expected no statements below threshold, got %d", len(exec.queries))
	}

	if err := saver.Flush(ctx); err != nil {
		t.Fatalf("Failed to flush: %v", err)
	}
	if len(exec.queries) != 1 {
		t.Fatalf("Expected one statement after flush, got %d", len(exec.queries))
	}
	if args := exec.queries[0].args; len(args) != 9*3 {
		t.Errorf("Expected 27 bind parameters, got %d", len(args))
	}
}

func TestBulkSaverFlushesAtThreshold(t *testing.T) {
	exec := &fakeExecer{}
	saver := NewBulkSaver(exec, "postgresql", 5)

	ctx := context.Background()
	for i := 1; i <= 5; i++ {
		if err := saver.Add(ctx, testCity(i)); err != nil {
			t.Fatalf("Failed to add row: %v", err)
		}
	}
	if len(exec.queries) != 1 {
		t.Errorf("Expected automatic flush at threshold, got %d statements", len(exec.queries))
	}
}

func TestBulkSaverFlushOrder(t *testing.T) {
	exec := &fakeExecer{}
	saver := NewBulkSaver(exec, "postgresql", 100)

	// Added out of order: the flush must still write cities before people.
	ctx := context.Background()
	if err := saver.Add(ctx, testPerson(1, 1)); err != nil {
		t.Fatalf("Failed to add person: %v", err)
	}
	if err := saver.Add(ctx, testCity(1)); err != nil {
		t.Fatalf("Failed to add city: %v", err)
	}
	if err := saver.Flush(ctx); err != nil {
		t.Fatalf("Failed to flush: %v", err)
	}

	if len(exec.queries) != 2 {
		t.Fatalf("Expected two statements, got %d", len(exec.queries))
	}
	if !strings.HasPrefix(exec.queries[0].query, "INSERT INTO city ") {
		t.Errorf("Expected city insert first, got: %s", exec.queries[0].query)
	}
	if !strings.HasPrefix(exec.queries[1].query, "INSERT INTO person ") {
		t.Errorf("Expected person insert second, got: %s", exec.queries[1].query)
	}
}

func TestBulkSaverPlaceholderFormat(t *testing.T) {
	exec := &fakeExecer{}
	saver := NewBulkSaver(exec, "postgresql", 100)

	ctx := context.Background()
	if err := saver.Add(ctx, testCity(1)); err != nil {
		t.Fatalf("Failed to add row: %v", err)
	}
	if err := saver.Flush(ctx); err != nil {
		t.Fatalf("Failed to flush: %v", err)
	}
	if query := exec.queries[0].query; !strings.Contains(query, "$1") {
		t.Errorf("Expected dollar placeholders for postgresql, got: %s", query)
	}

	exec = &fakeExecer{}
	saver = NewBulkSaver(exec, "sqlite", 100)
	if err := saver.Add(ctx, testCity(1)); err != nil {
		t.Fatalf("Failed to add row: %v", err)
	}
	if err := saver.Flush(ctx); err != nil {
		t.Fatalf("Failed to flush: %v", err)
	}
	if query := exec.queries[0].query; !strings.Contains(query, "?") {
		t.Errorf("Expected question mark placeholders for sqlite, got: %s", query)
	}
}

func TestBulkSaverChunksToParameterBudget(t *testing.T) {
	exec := &fakeExecer{}
	// SQLite's budget is 900 parameters; people carry 7 columns, so at most
	// 128 rows fit in one statement and 500 people need 4 statements.
	saver := NewBulkSaver(exec, "sqlite", 1000)

	ctx := context.Background()
	for i := 1; i <= 500; i++ {
		if err := saver.Add(ctx, testPerson(i, 1)); err != nil {
			t.Fatalf("Failed to add row: %v", err)
		}
	}
	if err := saver.Flush(ctx); err != nil {
		t.Fatalf("Failed to flush: %v", err)
	}

	if len(exec.queries) != 4 {
		t.Fatalf("Expected 4 chunked statements, got %d", len(exec.queries))
	}
	for _, recorded := range exec.queries {
		if len(recorded.args) > 900 {
			t.Errorf("Statement exceeds parameter budget: %d args", len(recorded.args))
		}
	}
}
