package menu

import (
	"context"
	"fmt"
	"sync"
	"time"

	"menuhub/internal/db"
)

// fakeStore emulates the menus table for the statements the repository
// issues. Column values are kept as JSON text, like the real TEXT columns.
type fakeStore struct {
	mu   sync.Mutex
	rows map[int64]db.Row

	readDelay time.Duration

	// failQuery fails only that statement; failAll fails everything.
	failQuery string
	failErr   error
	failAll   error

	writes int
}

func newFakeStore() *fakeStore {
	return &fakeStore{rows: make(map[int64]db.Row)}
}

func (f *fakeStore) Execute(ctx context.Context, query string, args ...any) ([]db.Row, error) {
	if err := ctx.Err(); err != nil {
		return nil, &db.StoreError{Query: query, Err: err}
	}
	if f.failAll != nil {
		return nil, &db.StoreError{Query: query, Err: f.failAll}
	}
	if f.failQuery == query && f.failErr != nil {
		return nil, &db.StoreError{Query: query, Err: f.failErr}
	}

	switch query {
	case queryMenuByID:
		id := args[0].(int64)
		f.mu.Lock()
		row, ok := f.rows[id]
		var cp db.Row
		if ok {
			cp = make(db.Row, len(row))
			for k, v := range row {
				cp[k] = v
			}
		}
		f.mu.Unlock()

		// widens the window between read and write for race tests
		if f.readDelay > 0 {
			time.Sleep(f.readDelay)
		}
		if !ok {
			return nil, nil
		}
		return []db.Row{cp}, nil

	case queryInsertMenu:
		id := args[0].(int64)
		f.mu.Lock()
		defer f.mu.Unlock()
		if _, exists := f.rows[id]; exists {
			return nil, nil
		}
		f.rows[id] = db.Row{
			"id":         id,
			"menus_info": args[1].(string),
			"categories": args[2].(string),
			"dishes":     args[3].(string),
		}
		f.writes++
		return []db.Row{{"id": id}}, nil

	case queryUpdateCategories:
		return f.update("categories", args[1].(int64), args[0].(string)), nil

	case queryUpdateDishes:
		return f.update("dishes", args[1].(int64), args[0].(string)), nil
	}

	return nil, fmt.Errorf("fakeStore: unexpected query %q", query)
}

func (f *fakeStore) update(col string, id int64, value string) []db.Row {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[id]
	if !ok {
		return nil
	}
	row[col] = value
	f.writes++
	return []db.Row{{"id": id}}
}

// column returns the raw stored text of col for id.
func (f *fakeStore) column(id int64, col string) any {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.rows[id][col]
}

func (f *fakeStore) set(id int64, col string, value any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows[id][col] = value
}

func (f *fakeStore) writeCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.writes
}
