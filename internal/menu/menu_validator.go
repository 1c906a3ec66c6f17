package menu

import "strconv"

type createMenuRequest struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

type saveCategoriesRequest struct {
	ID         int64    `json:"id"`
	Categories []string `json:"categories"`
}

type addDishRequest struct {
	MenusID      int64  `json:"menusId"`
	Name         string `json:"name"`
	Image        string `json:"image"`
	CategoryName string `json:"categoryName"`
}

type deleteDishRequest struct {
	MenusID int64  `json:"menusId"`
	Name    string `json:"name"`
}

// Each validate reports every missing field at once, before any
// downstream call is made.

func (r createMenuRequest) validate() error {
	var fields []string
	if r.ID == 0 {
		fields = append(fields, "id")
	}
	if r.Name == "" {
		fields = append(fields, "name")
	}
	if r.Image == "" {
		fields = append(fields, "image")
	}
	if len(fields) > 0 {
		return missing(fields...)
	}
	if r.ID < 0 {
		return invalid("id", "id must be a positive integer")
	}
	return nil
}

func (r saveCategoriesRequest) validate() error {
	var fields []string
	if r.ID == 0 {
		fields = append(fields, "id")
	}
	if r.Categories == nil {
		fields = append(fields, "categories")
	}
	if len(fields) > 0 {
		return missing(fields...)
	}
	if r.ID < 0 {
		return invalid("id", "id must be a positive integer")
	}
	return nil
}

func (r addDishRequest) validate() error {
	var fields []string
	if r.MenusID == 0 {
		fields = append(fields, "menusId")
	}
	if r.Name == "" {
		fields = append(fields, "name")
	}
	if r.Image == "" {
		fields = append(fields, "image")
	}
	if r.CategoryName == "" {
		fields = append(fields, "categoryName")
	}
	if len(fields) > 0 {
		return missing(fields...)
	}
	if r.MenusID < 0 {
		return invalid("menusId", "menusId must be a positive integer")
	}
	return nil
}

func (r deleteDishRequest) validate() error {
	var fields []string
	if r.MenusID == 0 {
		fields = append(fields, "menusId")
	}
	if r.Name == "" {
		fields = append(fields, "name")
	}
	if len(fields) > 0 {
		return missing(fields...)
	}
	if r.MenusID < 0 {
		return invalid("menusId", "menusId must be a positive integer")
	}
	return nil
}

func parseMenuID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, invalid("id", "id must be a positive integer")
	}
	return id, nil
}
