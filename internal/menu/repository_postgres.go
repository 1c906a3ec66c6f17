package menu

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"

	"menuhub/internal/db"

	"github.com/pkg/errors"
)

// RowStore executes one parameterized statement and returns its rows.
type RowStore interface {
	Execute(ctx context.Context, query string, args ...any) ([]db.Row, error)
}

const (
	queryMenuByID = `
		SELECT id, menus_info, categories, dishes
		FROM menus
		WHERE id = $1
	`

	queryInsertMenu = `
		INSERT INTO menus (id, menus_info, categories, dishes)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO NOTHING
		RETURNING id
	`

	queryUpdateCategories = `
		UPDATE menus
		SET categories = $1
		WHERE id = $2
		RETURNING id
	`

	queryUpdateDishes = `
		UPDATE menus
		SET dishes = $1
		WHERE id = $2
		RETURNING id
	`
)

type PostgresRepository struct {
	store            RowStore
	locks            *keyedLocker
	strictCategories bool
}

type Option func(*PostgresRepository)

// WithStrictCategories makes AddOrUpdateDish reject a dish whose
// categoryName is not one of the menu's categories.
func WithStrictCategories(strict bool) Option {
	return func(r *PostgresRepository) { r.strictCategories = strict }
}

func NewPostgresRepository(store RowStore, opts ...Option) *PostgresRepository {
	r := &PostgresRepository{
		store: store,
		locks: newKeyedLocker(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// --------------------------------------------------
// READ
// --------------------------------------------------

func (r *PostgresRepository) GetMenu(ctx context.Context, id int64) (*Menu, error) {
	rows, err := r.store.Execute(ctx, queryMenuByID, id)
	if err != nil {
		return nil, errors.Wrapf(err, "get menu %d", id)
	}
	if len(rows) == 0 {
		return nil, errors.Wrapf(ErrNotFound, "menu %d", id)
	}

	row := rows[0]
	m := &Menu{ID: id}
	if err := decodeColumn(row, "menus_info", &m.MenusInfo); err != nil {
		return nil, err
	}
	if err := decodeColumn(row, "categories", &m.Categories); err != nil {
		return nil, err
	}
	if err := decodeColumn(row, "dishes", &m.Dishes); err != nil {
		return nil, err
	}
	return m, nil
}

// --------------------------------------------------
// CREATE
// --------------------------------------------------

func (r *PostgresRepository) CreateMenu(ctx context.Context, id int64, info MenusInfo) error {
	if id <= 0 {
		return invalid("id", "id must be a positive integer")
	}
	var missingFields []string
	if strings.TrimSpace(info.Name) == "" {
		missingFields = append(missingFields, "name")
	}
	if info.Image == "" {
		missingFields = append(missingFields, "image")
	}
	if len(missingFields) > 0 {
		return missing(missingFields...)
	}

	infoJSON, err := encode(info)
	if err != nil {
		return err
	}
	catsJSON, err := encode([]Category{{Name: SentinelCategory}})
	if err != nil {
		return err
	}
	dishesJSON, err := encode([]Dish{})
	if err != nil {
		return err
	}

	rows, err := r.store.Execute(ctx, queryInsertMenu, id, infoJSON, catsJSON, dishesJSON)
	if err != nil {
		return errors.Wrapf(err, "create menu %d", id)
	}
	if len(rows) == 0 {
		return errors.Wrapf(ErrConflict, "menu %d", id)
	}
	return nil
}

// --------------------------------------------------
// CATEGORIES
// --------------------------------------------------

func (r *PostgresRepository) SetCategories(ctx context.Context, id int64, names []string) ([]Category, error) {
	cats, err := normalizeCategories(names)
	if err != nil {
		return nil, err
	}

	unlock, err := r.locks.Lock(ctx, id)
	if err != nil {
		return nil, err
	}
	defer unlock()

	catsJSON, err := encode(cats)
	if err != nil {
		return nil, err
	}

	rows, err := r.store.Execute(ctx, queryUpdateCategories, catsJSON, id)
	if err != nil {
		return nil, errors.Wrapf(err, "save categories for menu %d", id)
	}
	if len(rows) == 0 {
		return nil, errors.Wrapf(ErrNotFound, "menu %d", id)
	}
	return cats, nil
}

// normalizeCategories trims names, rejects blanks and duplicates, and
// appends the sentinel when the caller left it out.
func normalizeCategories(names []string) ([]Category, error) {
	seen := make(map[string]bool, len(names)+1)
	cats := make([]Category, 0, len(names)+1)
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			return nil, invalid("categories", "category names must not be empty")
		}
		if seen[n] {
			return nil, invalid("categories", "duplicate category "+n)
		}
		seen[n] = true
		cats = append(cats, Category{Name: n})
	}
	if !seen[SentinelCategory] {
		cats = append(cats, Category{Name: SentinelCategory})
	}
	return cats, nil
}

// --------------------------------------------------
// DISHES (read-modify-write under the per-menu lock)
// --------------------------------------------------

func (r *PostgresRepository) AddOrUpdateDish(ctx context.Context, id int64, dish Dish) (string, error) {
	if err := validateDish(dish); err != nil {
		return "", err
	}

	unlock, err := r.locks.Lock(ctx, id)
	if err != nil {
		return "", err
	}
	defer unlock()

	m, err := r.GetMenu(ctx, id)
	if err != nil {
		return "", err
	}

	if r.strictCategories && !hasCategory(m.Categories, dish.CategoryName) {
		return "", errors.Wrapf(ErrUnknownCategory, "%q", dish.CategoryName)
	}

	dishes, replaced := upsertDish(m.Dishes, dish)
	if err := r.writeDishes(ctx, id, dishes); err != nil {
		return "", err
	}
	return replaced, nil
}

func (r *PostgresRepository) RemoveDish(ctx context.Context, id int64, name string) (string, error) {
	if name == "" {
		return "", missing("name")
	}

	unlock, err := r.locks.Lock(ctx, id)
	if err != nil {
		return "", err
	}
	defer unlock()

	m, err := r.GetMenu(ctx, id)
	if err != nil {
		return "", err
	}

	idx := indexOfDish(m.Dishes, name)
	if idx < 0 {
		return "", errors.Wrapf(ErrDishNotFound, "%q in menu %d", name, id)
	}
	image := m.Dishes[idx].Image

	dishes := make([]Dish, 0, len(m.Dishes)-1)
	dishes = append(dishes, m.Dishes[:idx]...)
	dishes = append(dishes, m.Dishes[idx+1:]...)

	if err := r.writeDishes(ctx, id, dishes); err != nil {
		return "", err
	}
	return image, nil
}

func (r *PostgresRepository) writeDishes(ctx context.Context, id int64, dishes []Dish) error {
	dishesJSON, err := encode(dishes)
	if err != nil {
		return err
	}
	rows, err := r.store.Execute(ctx, queryUpdateDishes, dishesJSON, id)
	if err != nil {
		return errors.Wrapf(err, "save dishes for menu %d", id)
	}
	if len(rows) == 0 {
		return errors.Wrapf(ErrNotFound, "menu %d", id)
	}
	return nil
}

func validateDish(d Dish) error {
	var fields []string
	if strings.TrimSpace(d.Name) == "" {
		fields = append(fields, "name")
	}
	if d.Image == "" {
		fields = append(fields, "image")
	}
	if strings.TrimSpace(d.CategoryName) == "" {
		fields = append(fields, "categoryName")
	}
	if len(fields) > 0 {
		return missing(fields...)
	}
	return nil
}

// upsertDish returns a new slice with d replacing the same-named dish at its
// index, or appended. The second value is the replaced dish's image key.
func upsertDish(dishes []Dish, d Dish) ([]Dish, string) {
	out := make([]Dish, len(dishes), len(dishes)+1)
	copy(out, dishes)
	if i := indexOfDish(out, d.Name); i >= 0 {
		old := out[i].Image
		out[i] = d
		return out, old
	}
	return append(out, d), ""
}

func indexOfDish(dishes []Dish, name string) int {
	for i, d := range dishes {
		if d.Name == name {
			return i
		}
	}
	return -1
}

func hasCategory(cats []Category, name string) bool {
	for _, c := range cats {
		if c.Name == name {
			return true
		}
	}
	return false
}

// --------------------------------------------------
// JSON COLUMNS
// --------------------------------------------------

func encode(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", errors.Wrap(err, "encode column")
	}
	return string(b), nil
}

// decodeColumn fails with ErrCorruptData on a missing, null or malformed
// column instead of returning an empty value.
func decodeColumn(row db.Row, col string, dst any) error {
	var raw []byte
	switch v := row[col].(type) {
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		return errors.Wrapf(ErrCorruptData, "column %s has type %T", col, v)
	}

	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return errors.Wrapf(ErrCorruptData, "column %s is empty", col)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return errors.Wrapf(ErrCorruptData, "column %s: %v", col, err)
	}
	return nil
}
