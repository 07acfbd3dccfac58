package handlers

import (
	"net/http"
	"strings"

	"github.com/Nyagwenchar/bmsafaris/services"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	Notifier *services.NotificationService
}

// Form renders the contact page; ?tour= prefills the message context. The
// tour name is free-text context only, never resolved against the store.
func (h *ContactHandler) Form(c *gin.Context) {
	session := sessions.Default(c)
	flashes := session.Flashes()
	_ = session.Save()

	c.HTML(http.StatusOK, "contact.html", gin.H{
		"pageTitle": "Contact",
		"tourName":  strings.TrimSpace(c.Query("tour")),
		"flashes":   flashes,
	})
}

// Submit sends the inquiry to the admin inbox and, when the submitter left
// an address, a styled confirmation. Unlike the review notification path,
// transport failures here surface as server errors.
func (h *ContactHandler) Submit(c *gin.Context) {
	tourName := strings.TrimSpace(c.Query("tour"))
	name := strings.TrimSpace(c.PostForm("name"))
	email := strings.TrimSpace(c.PostForm("email"))
	message := strings.TrimSpace(c.PostForm("message"))

	if err := h.Notifier.SendInquiry(name, email, tourName, message); err != nil {
		c.HTML(http.StatusInternalServerError, "contact.html", gin.H{
			"pageTitle": "Contact",
			"tourName":  tourName,
			"error":     "We could not send your inquiry. Please try again later.",
		})
		return
	}

	if email != "" {
		if err := h.Notifier.SendInquiryConfirmation(name, email, tourName, message); err != nil {
			c.HTML(http.StatusInternalServerError, "contact.html", gin.H{
				"pageTitle": "Contact",
				"tourName":  tourName,
				"error":     "We could not send your confirmation email. Please try again later.",
			})
			return
		}
	}

	session := sessions.Default(c)
	session.AddFlash("Thanks for reaching out! We've sent you a confirmation email.")
	_ = session.Save()

	c.Redirect(http.StatusFound, "/contact/")
}
