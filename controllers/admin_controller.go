package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stayhub-backend/services"
	"stayhub-backend/utils"
)

type AdminController struct {
	Svc *services.AdminService
}

func NewAdminController(svc *services.AdminService) *AdminController {
	return &AdminController{Svc: svc}
}

func (ac *AdminController) Metrics(c *gin.Context) {
	metrics, err := ac.Svc.Metrics()
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, metrics)
}

// ReservationsReport expects from/to query params, each an ISO datetime or a
// plain date.
func (ac *AdminController) ReservationsReport(c *gin.Context) {
	from, err := parseDate(c.Query("from"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid from date")
		return
	}
	to, err := parseDate(c.Query("to"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid to date")
		return
	}

	report, err := ac.Svc.ReservationsReport(from, to)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, report)
}

func (ac *AdminController) Sellers(c *gin.Context) {
	sellers, err := ac.Svc.ListSellers()
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, sellers)
}
