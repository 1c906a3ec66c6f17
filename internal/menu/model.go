package menu

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// SentinelCategory ("Other") is present in every saved category list.
const SentinelCategory = "其他"

// MenusInfo is the menu's own display info. Image is a storage key,
// never a resolved URL.
type MenusInfo struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}

type Category struct {
	Name string `json:"name"`
}

// UnmarshalJSON accepts both {"name": "..."} and a bare string; older rows
// stored categories as a plain string array.
func (c *Category) UnmarshalJSON(b []byte) error {
	var name string
	if err := json.Unmarshal(b, &name); err == nil {
		c.Name = name
		return nil
	}
	var obj struct {
		Name *string `json:"name"`
	}
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}
	if obj.Name == nil {
		return errors.New("category without name")
	}
	c.Name = *obj.Name
	return nil
}

// Dish is keyed by Name within a menu.
type Dish struct {
	Name         string `json:"name"`
	Image        string `json:"image"`
	CategoryName string `json:"categoryName"`
}

type Menu struct {
	ID         int64      `json:"id"`
	MenusInfo  MenusInfo  `json:"menusInfo"`
	Categories []Category `json:"categories"`
	Dishes     []Dish     `json:"dishes"`
}

// CombineInfo is the read model served to clients: image keys resolved to
// presigned URLs.
type CombineInfo struct {
	Menu       CombineMenu `json:"menu"`
	Categories []Category  `json:"categories"`
	Dishes     []Dish      `json:"dishes"`
}

type CombineMenu struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}
