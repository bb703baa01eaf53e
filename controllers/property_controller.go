package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"stayhub-backend/middleware"
	"stayhub-backend/services"
	"stayhub-backend/utils"
)

type PropertyController struct {
	Svc *services.PropertyService
}

func NewPropertyController(svc *services.PropertyService) *PropertyController {
	return &PropertyController{Svc: svc}
}

type createPropertyPayload struct {
	Name        string          `json:"name" binding:"required,min=2,max=120"`
	Description string          `json:"description" binding:"required,min=10,max=2000"`
	Image       string          `json:"image" binding:"required,url,max=500"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Rooms       int             `json:"rooms" binding:"required,gt=0,lte=100"`
	Address     string          `json:"address" binding:"required,min=3,max=200"`
	City        string          `json:"city" binding:"required,min=2,max=80"`
	CategoryID  uint            `json:"categoryId" binding:"required"`
	Amenities   []string        `json:"amenities"`
}

type updatePropertyPayload struct {
	Name        *string          `json:"name" binding:"omitempty,min=2,max=120"`
	Description *string          `json:"description" binding:"omitempty,min=10,max=2000"`
	Image       *string          `json:"image" binding:"omitempty,url,max=500"`
	Price       *decimal.Decimal `json:"price"`
	Rooms       *int             `json:"rooms" binding:"omitempty,gt=0,lte=100"`
	Address     *string          `json:"address" binding:"omitempty,min=3,max=200"`
	City        *string          `json:"city" binding:"omitempty,min=2,max=80"`
	CategoryID  *uint            `json:"categoryId" binding:"omitempty,gt=0"`
	Amenities   *[]string        `json:"amenities"`
}

func (p updatePropertyPayload) empty() bool {
	return p.Name == nil && p.Description == nil && p.Image == nil && p.Price == nil &&
		p.Rooms == nil && p.Address == nil && p.City == nil && p.CategoryID == nil && p.Amenities == nil
}

// List is the public catalog browse: filter, sort, paginate.
func (pc *PropertyController) List(c *gin.Context) {
	q := services.PropertyListQuery{
		Name:   c.Query("name"),
		City:   c.Query("city"),
		SortBy: c.Query("sortBy"),
		Order:  c.Query("order"),
	}

	if v, err := strconv.ParseUint(c.Query("categoryId"), 10, 32); err == nil {
		q.CategoryID = uint(v)
	}
	if v, err := strconv.ParseUint(c.Query("sellerId"), 10, 32); err == nil {
		q.SellerID = uint(v)
	}
	if v, err := strconv.Atoi(c.Query("minRooms")); err == nil {
		q.MinRooms = v
	}
	if v, err := strconv.Atoi(c.Query("maxRooms")); err == nil {
		q.MaxRooms = v
	}
	if v, err := decimal.NewFromString(c.Query("minPrice")); err == nil {
		q.MinPrice = &v
	}
	if v, err := decimal.NewFromString(c.Query("maxPrice")); err == nil {
		q.MaxPrice = &v
	}
	if v, err := strconv.Atoi(c.Query("page")); err == nil {
		q.Page = v
	}
	if v, err := strconv.Atoi(c.Query("pageSize")); err == nil {
		q.PageSize = v
	}

	page, err := pc.Svc.List(q)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, page)
}

func (pc *PropertyController) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid id")
		return
	}

	property, err := pc.Svc.GetByID(id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, property)
}

func (pc *PropertyController) Create(c *gin.Context) {
	var payload createPropertyPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	if !payload.Price.IsPositive() {
		utils.JSONError(c, http.StatusBadRequest, "price must be positive")
		return
	}

	property, err := pc.Svc.Create(middleware.CurrentUserID(c), services.CreatePropertyInput{
		Name:        payload.Name,
		Description: payload.Description,
		Image:       payload.Image,
		Price:       payload.Price,
		Rooms:       payload.Rooms,
		Address:     payload.Address,
		City:        payload.City,
		CategoryID:  payload.CategoryID,
		Amenities:   payload.Amenities,
	})
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, property)
}

func (pc *PropertyController) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid id")
		return
	}

	var payload updatePropertyPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	if payload.empty() {
		utils.JSONError(c, http.StatusBadRequest, "at least one field must be provided")
		return
	}
	if payload.Price != nil && !payload.Price.IsPositive() {
		utils.JSONError(c, http.StatusBadRequest, "price must be positive")
		return
	}

	property, err := pc.Svc.Update(middleware.CurrentUserID(c), id, services.UpdatePropertyInput{
		Name:        payload.Name,
		Description: payload.Description,
		Image:       payload.Image,
		Price:       payload.Price,
		Rooms:       payload.Rooms,
		Address:     payload.Address,
		City:        payload.City,
		CategoryID:  payload.CategoryID,
		Amenities:   payload.Amenities,
	})
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, property)
}

func (pc *PropertyController) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid id")
		return
	}

	if err := pc.Svc.Delete(middleware.CurrentUserID(c), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"ok": true})
}
