package rental

import (
	"net/http"

	"carrental/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	service *Service
	log     *logrus.Entry
}

func NewHandler(service *Service, log *logrus.Entry) *Handler {
	return &Handler{service: service, log: log}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/cars/available", h.GetAvailableCars)
	rg.GET("/cars/:vin", h.GetCarDetails)
	rg.POST("/bookings", h.BookCar)
}

func (h *Handler) GetAvailableCars(c *gin.Context) {
	cars, err := h.service.FindAvailableCars(c.Request.Context())
	if err != nil {
		h.log.WithError(err).Error("failed to list available cars")
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list available cars")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"cars": cars})
}

func (h *Handler) GetCarDetails(c *gin.Context) {
	vin := c.Param("vin")

	car, err := h.service.GetCarDetails(c.Request.Context(), vin)
	if err != nil {
		h.log.WithError(err).WithField("vin", vin).Error("failed to load car details")
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load car details")
		return
	}
	if car == nil {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "No car was found for VIN="+vin)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"car": car})
}

func (h *Handler) BookCar(c *gin.Context) {
	var req BookCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body")
		return
	}

	b, err := h.service.BookCar(c.Request.Context(), req)
	if err != nil {
		if rej, ok := AsRejection(err); ok {
			response.Error(c, statusForRejection(rej.Code), rej.Code, rej.Message)
			return
		}

		h.log.WithError(err).WithField("vin", req.VIN).Error("booking failed")
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create booking")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"booking": b})
}

func statusForRejection(code string) int {
	switch code {
	case CodeUnknownVehicle:
		return http.StatusNotFound
	case CodeAlreadyBooked:
		return http.StatusConflict
	case CodeForeignUseForbidden:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadRequest
	}
}
