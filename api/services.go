package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/mzhdanova/autoservice/internal/domain"
	"github.com/mzhdanova/autoservice/internal/service/catalog"
)

type ServicesHandler struct {
	service catalog.CatalogUseCase
	log     zerolog.Logger
}

func NewServicesHandler(service catalog.CatalogUseCase, log zerolog.Logger) *ServicesHandler {
	return &ServicesHandler{service: service, log: log}
}

func (h *ServicesHandler) Register(router *gin.RouterGroup) {
	router.GET("", h.list)
	router.POST("", h.create)
}

func (h *ServicesHandler) list(c *gin.Context) {
	filter := domain.ServiceFilter{
		Location:     c.Query("location"),
		AvailableDay: c.Query("availableDay"),
	}
	if raw := c.Query("maxRate"); raw != "" {
		rate, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "maxRate must be a number"})
			return
		}
		filter.MaxRate = &rate
	}

	services, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, services)
}

func (h *ServicesHandler) create(c *gin.Context) {
	var req catalog.CreateServiceInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	service, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, service)
}
