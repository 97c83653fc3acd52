package controllers

import (
	"errors"
	"strconv"

	"github.com/CrisantoUpiicsa/ReservaBarSystemv01/entity"
	"github.com/CrisantoUpiicsa/ReservaBarSystemv01/pkg/resp"
	"github.com/CrisantoUpiicsa/ReservaBarSystemv01/services"
	"github.com/gin-gonic/gin"
)

type CreateCategoryRequest struct {
	Name         string `json:"name" binding:"required"`
	Description  string `json:"description"`
	DisplayOrder int    `json:"displayOrder" binding:"omitempty,min=0"`
	Type         string `json:"type"`
}

type CreateMenuItemRequest struct {
	Name            string `json:"name" binding:"required"`
	Description     string `json:"description"`
	Price           string `json:"price" binding:"required"`
	CategoryID      *uint  `json:"categoryId"`
	Available       *bool  `json:"available"`
	ImageURL        string `json:"imageUrl"`
	AlcoholContent  string `json:"alcoholContent"`
	Ingredients     string `json:"ingredients"`
	PreparationTime int    `json:"preparationTime"`
}

// UpdateMenuItemRequest carries only the fields the client wants changed;
// nil pointers are left untouched on the record.
type UpdateMenuItemRequest struct {
	Name            *string `json:"name"`
	Description     *string `json:"description"`
	Price           *string `json:"price"`
	CategoryID      *uint   `json:"categoryId"`
	Available       *bool   `json:"available"`
	ImageURL        *string `json:"imageUrl"`
	AlcoholContent  *string `json:"alcoholContent"`
	Ingredients     *string `json:"ingredients"`
	PreparationTime *int    `json:"preparationTime"`
	Popularity      *int    `json:"popularity"`
}

func (r *UpdateMenuItemRequest) updates() map[string]any {
	updates := map[string]any{}
	if r.Name != nil {
		updates["name"] = *r.Name
	}
	if r.Description != nil {
		updates["description"] = *r.Description
	}
	if r.Price != nil {
		updates["price"] = *r.Price
	}
	if r.CategoryID != nil {
		updates["category_id"] = *r.CategoryID
	}
	if r.Available != nil {
		updates["available"] = *r.Available
	}
	if r.ImageURL != nil {
		updates["image_url"] = *r.ImageURL
	}
	if r.AlcoholContent != nil {
		updates["alcohol_content"] = *r.AlcoholContent
	}
	if r.Ingredients != nil {
		updates["ingredients"] = *r.Ingredients
	}
	if r.PreparationTime != nil {
		updates["preparation_time"] = *r.PreparationTime
	}
	if r.Popularity != nil {
		updates["popularity"] = *r.Popularity
	}
	return updates
}

type CategoryWithItems struct {
	entity.MenuCategory
	Items []entity.MenuItem `json:"items"`
}

type MenuController struct {
	Service *services.MenuService
}

func NewMenuController(s *services.MenuService) *MenuController {
	return &MenuController{Service: s}
}

// GET /api/menu/categories
func (ctl *MenuController) Categories(c *gin.Context) {
	categories, err := ctl.Service.Categories()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, categories)
}

// POST /api/menu/categories
func (ctl *MenuController) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid category data")
		return
	}

	category := entity.MenuCategory{
		Name:         req.Name,
		Description:  req.Description,
		DisplayOrder: req.DisplayOrder,
		Type:         req.Type,
	}
	if err := ctl.Service.CreateCategory(&category); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, category)
}

// GET /api/menu/items?categoryId=
func (ctl *MenuController) Items(c *gin.Context) {
	var categoryID *uint
	if raw := c.Query("categoryId"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			resp.BadRequest(c, "invalid categoryId")
			return
		}
		v := uint(id)
		categoryID = &v
	}

	items, err := ctl.Service.Items(categoryID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}

// POST /api/menu/items
func (ctl *MenuController) CreateItem(c *gin.Context) {
	var req CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid menu item data")
		return
	}

	item := entity.MenuItem{
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		CategoryID:      req.CategoryID,
		Available:       req.Available,
		ImageURL:        req.ImageURL,
		AlcoholContent:  req.AlcoholContent,
		Ingredients:     req.Ingredients,
		PreparationTime: req.PreparationTime,
	}
	if item.Available == nil {
		available := true
		item.Available = &available
	}

	if err := ctl.Service.CreateItem(&item); err != nil {
		if errors.Is(err, services.ErrCategoryMissing) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, item)
}

// PATCH /api/menu/items/:id
func (ctl *MenuController) UpdateItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid menu item id")
		return
	}

	var req UpdateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid menu item data")
		return
	}

	item, err := ctl.Service.UpdateItem(uint(id), req.updates())
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			resp.NotFound(c, "menu item not found")
		case errors.Is(err, services.ErrCategoryMissing):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, item)
}

// DELETE /api/menu/items/:id
func (ctl *MenuController) DeleteItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid menu item id")
		return
	}

	if err := ctl.Service.DeleteItem(uint(id)); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "menu item not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.NoContent(c)
}

// GET /api/customer/menu
func (ctl *MenuController) FullMenu(c *gin.Context) {
	categories, err := ctl.Service.FullMenu()
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	out := make([]CategoryWithItems, 0, len(categories))
	for _, cat := range categories {
		out = append(out, CategoryWithItems{MenuCategory: cat, Items: cat.Items})
	}
	resp.OK(c, out)
}
