package menu

import "context"

// Repository is the only writer of the menus table's JSON columns.
type Repository interface {
	GetMenu(ctx context.Context, id int64) (*Menu, error)

	// CreateMenu inserts a menu with the default categories and no dishes.
	CreateMenu(ctx context.Context, id int64, info MenusInfo) error

	// SetCategories replaces the category list, appending the sentinel
	// category when absent, and returns what was persisted.
	SetCategories(ctx context.Context, id int64, names []string) ([]Category, error)

	// AddOrUpdateDish replaces the dish with the same name in place or
	// appends it. It returns the image key of the replaced dish, or "".
	AddOrUpdateDish(ctx context.Context, id int64, dish Dish) (string, error)

	// RemoveDish deletes the named dish and returns its image key.
	RemoveDish(ctx context.Context, id int64, name string) (string, error)
}
