package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/Nyagwenchar/bmsafaris/models"
	"github.com/Nyagwenchar/bmsafaris/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type BookingHandler struct {
	DB       *gorm.DB
	Notifier *services.NotificationService
}

func (h *BookingHandler) lookupTour(c *gin.Context) (*models.Tour, bool) {
	var tour models.Tour
	err := h.DB.First(&tour, "slug = ?", c.Param("slug")).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.HTML(http.StatusNotFound, "404.html", gin.H{"pageTitle": "Not Found"})
			return nil, false
		}
		c.String(http.StatusInternalServerError, "failed to load tour")
		return nil, false
	}
	return &tour, true
}

func (h *BookingHandler) Form(c *gin.Context) {
	tour, ok := h.lookupTour(c)
	if !ok {
		return
	}
	c.HTML(http.StatusOK, "book.html", gin.H{
		"pageTitle": "Book " + tour.Name,
		"tour":      tour,
		"form":      EmptyBookingForm(),
	})
}

// Submit accepts a booking. The booking outcome is decoupled from email
// deliverability: a failed confirmation send only adds a warning.
func (h *BookingHandler) Submit(c *gin.Context) {
	tour, ok := h.lookupTour(c)
	if !ok {
		return
	}

	form := NewBookingForm(c)
	if !form.Valid() {
		c.HTML(http.StatusOK, "book.html", gin.H{
			"pageTitle": "Book " + tour.Name,
			"tour":      tour,
			"form":      form,
		})
		return
	}

	warning := ""
	if err := h.Notifier.SendBookingConfirmation(form.Email, form.FullName, tour.Name, form.Attendees); err != nil {
		log.Printf("booking confirmation email failed: %v", err)
		warning = "We could not send your confirmation email, but your booking has been received."
	}

	c.HTML(http.StatusOK, "book_confirm.html", gin.H{
		"pageTitle": "Booking Confirmed",
		"tour":      tour,
		"fullName":  form.FullName,
		"attendees": form.Attendees,
		"warning":   warning,
	})
}
