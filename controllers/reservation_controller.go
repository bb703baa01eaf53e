package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stayhub-backend/middleware"
	"stayhub-backend/models"
	"stayhub-backend/services"
	"stayhub-backend/utils"
)

type ReservationController struct {
	Svc *services.ReservationService
}

func NewReservationController(svc *services.ReservationService) *ReservationController {
	return &ReservationController{Svc: svc}
}

type createReservationPayload struct {
	PropertyID uint   `json:"propertyId" binding:"required"`
	StartDate  string `json:"startDate" binding:"required"`
	EndDate    string `json:"endDate" binding:"required"`
}

type updateStatusPayload struct {
	Status string `json:"status" binding:"required,oneof=PENDING CONFIRMED CANCELLED"`
}

// Create books a property for the signed-in buyer.
func (rc *ReservationController) Create(c *gin.Context) {
	var payload createReservationPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	start, err := parseDate(payload.StartDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid start date")
		return
	}
	end, err := parseDate(payload.EndDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid end date")
		return
	}

	reservation, err := rc.Svc.Create(middleware.CurrentUserID(c), payload.PropertyID, start, end)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, reservation)
}

func (rc *ReservationController) ListMine(c *gin.Context) {
	reservations, err := rc.Svc.ListMine(middleware.CurrentUserID(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, reservations)
}

func (rc *ReservationController) Cancel(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid id")
		return
	}

	reservation, err := rc.Svc.Cancel(middleware.CurrentUserID(c), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, reservation)
}

func (rc *ReservationController) ListForSeller(c *gin.Context) {
	reservations, err := rc.Svc.ListForSeller(middleware.CurrentUserID(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, reservations)
}

func (rc *ReservationController) UpdateStatus(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid id")
		return
	}

	var payload updateStatusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid status")
		return
	}
	status, _ := models.ParseReservationStatus(payload.Status)

	reservation, err := rc.Svc.UpdateStatusAsSeller(middleware.CurrentUserID(c), id, status)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, reservation)
}

func (rc *ReservationController) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "invalid id")
		return
	}

	if err := rc.Svc.DeleteAsSeller(middleware.CurrentUserID(c), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"ok": true})
}
