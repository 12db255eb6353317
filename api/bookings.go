package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/mzhdanova/autoservice/internal/service/booking"
)

type BookingHandler struct {
	service booking.BookingUseCase
	log     zerolog.Logger
}

type bookRequest struct {
	ClientName  string `json:"client_name"`
	ClientEmail string `json:"client_email"`
	Date        string `json:"date"`
	Time        string `json:"time"`
}

func NewBookingHandler(service booking.BookingUseCase, log zerolog.Logger) *BookingHandler {
	return &BookingHandler{service: service, log: log}
}

func (h *BookingHandler) Register(router *gin.RouterGroup, authRequired gin.HandlerFunc) {
	router.POST("/:id/book", authRequired, h.book)
}

func (h *BookingHandler) book(c *gin.Context) {
	serviceID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid service id"})
		return
	}

	var req bookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.service.Book(c.Request.Context(), booking.BookInput{
		ServiceID:   serviceID,
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
		Date:        req.Date,
		Time:        req.Time,
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	message := "booking confirmed and notification sent"
	if !result.Notified {
		message = "booking confirmed, notification failed"
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": message,
		"booking": result.Booking,
	})
}
