package menu

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Handler struct {
	service *Service
	log     *zap.Logger
}

func NewHandler(service *Service, log *zap.Logger) *Handler {
	return &Handler{service: service, log: log}
}

// Register mounts the menu routes on rg.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/combine-info/:id", h.GetCombineInfo)
	rg.POST("/create", h.Create)
	rg.POST("/save-categories", h.SaveCategories)
	rg.POST("/add-dish", h.AddDish)
	rg.POST("/delete-dish", h.DeleteDish)
}

// --------------------------------------------------
// GET /menus/combine-info/:id
// --------------------------------------------------
func (h *Handler) GetCombineInfo(c *gin.Context) {
	id, err := parseMenuID(c.Param("id"))
	if err != nil {
		h.fail(c, err, "failed to load menu")
		return
	}

	info, err := h.service.GetCombineInfo(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "failed to load menu")
		return
	}

	c.JSON(http.StatusOK, info)
}

// --------------------------------------------------
// POST /menus/create
// --------------------------------------------------
func (h *Handler) Create(c *gin.Context) {
	var req createMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}
	if err := req.validate(); err != nil {
		h.fail(c, err, "failed to create menu")
		return
	}

	info, err := h.service.CreateMenu(c.Request.Context(), req.ID, req.Name, req.Image)
	if err != nil {
		h.fail(c, err, "failed to create menu")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "menu created",
		"data": gin.H{
			"id":        req.ID,
			"menusInfo": info,
		},
	})
}

// --------------------------------------------------
// POST /menus/save-categories
// --------------------------------------------------
func (h *Handler) SaveCategories(c *gin.Context) {
	var req saveCategoriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}
	if err := req.validate(); err != nil {
		h.fail(c, err, "failed to save categories")
		return
	}

	cats, err := h.service.SaveCategories(c.Request.Context(), req.ID, req.Categories)
	if err != nil {
		h.fail(c, err, "failed to save categories")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "categories saved",
		"data": gin.H{
			"id":         req.ID,
			"categories": cats,
		},
	})
}

// --------------------------------------------------
// POST /menus/add-dish
// --------------------------------------------------
func (h *Handler) AddDish(c *gin.Context) {
	var req addDishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}
	if err := req.validate(); err != nil {
		h.fail(c, err, "failed to add dish")
		return
	}

	dish, err := h.service.AddDish(
		c.Request.Context(),
		req.MenusID,
		req.Name,
		req.Image,
		req.CategoryName,
	)
	if err != nil {
		h.fail(c, err, "failed to add dish")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "dish saved",
		"data": gin.H{
			"menusId":      req.MenusID,
			"name":         dish.Name,
			"categoryName": dish.CategoryName,
		},
	})
}

// --------------------------------------------------
// POST /menus/delete-dish
// --------------------------------------------------
func (h *Handler) DeleteDish(c *gin.Context) {
	var req deleteDishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}
	if err := req.validate(); err != nil {
		h.fail(c, err, "failed to delete dish")
		return
	}

	if err := h.service.DeleteDish(c.Request.Context(), req.MenusID, req.Name); err != nil {
		h.fail(c, err, "failed to delete dish")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "dish deleted",
		"data": gin.H{
			"menusId": req.MenusID,
			"name":    req.Name,
		},
	})
}

func badRequest(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"message": "invalid request body",
	})
}

// fail maps err onto a status. Client errors carry their own message;
// anything else is logged in full and answered with generic.
func (h *Handler) fail(c *gin.Context, err error, generic string) {
	status, msg := http.StatusInternalServerError, generic

	switch {
	case errors.Is(err, ErrInvalidInput):
		status, msg = http.StatusBadRequest, err.Error()
	case errors.Is(err, ErrUnknownCategory):
		status, msg = http.StatusBadRequest, "unknown category"
	case errors.Is(err, ErrDishNotFound):
		status, msg = http.StatusNotFound, "dish not found"
	case errors.Is(err, ErrNotFound):
		status, msg = http.StatusNotFound, "menu not found"
	case errors.Is(err, ErrConflict):
		status, msg = http.StatusConflict, "menu already exists"
	default:
		h.log.Error(generic,
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
	}

	c.JSON(status, gin.H{
		"success": false,
		"message": msg,
	})
}
