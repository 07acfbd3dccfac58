package handlers

import (
	"errors"
	"net/http"

	"github.com/Nyagwenchar/bmsafaris/config"
	"github.com/Nyagwenchar/bmsafaris/models"
	"github.com/Nyagwenchar/bmsafaris/services"
	"github.com/Nyagwenchar/bmsafaris/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// homeReviewCount is how many reviews the home page embeds inline; the
// load-more endpoint serves everything after them.
const homeReviewCount = 3

const reviewDateFormat = "Jan 02, 2006"

type ReviewHandler struct {
	DB       *gorm.DB
	Notifier *services.NotificationService
	Config   *config.Config
}

// wantsJSON decides the request flavor once at the transport boundary; the
// submission logic below only sees the resulting bool.
func wantsJSON(c *gin.Context) bool {
	return c.GetHeader("X-Requested-With") == "XMLHttpRequest"
}

func reviewJSON(r *models.Review) gin.H {
	return gin.H{
		"id":         r.ID,
		"name":       r.DisplayName(),
		"content":    r.Content,
		"created_at": r.CreatedAt.Format(reviewDateFormat),
	}
}

// Home serves the landing page and accepts non-async review submissions.
func (h *ReviewHandler) Home(c *gin.Context) {
	if c.Request.Method == http.MethodPost {
		h.submitReview(c, wantsJSON(c))
		return
	}
	h.renderHome(c, http.StatusOK, EmptyReviewForm())
}

// SubmitReview is the async-only submission endpoint.
func (h *ReviewHandler) SubmitReview(c *gin.Context) {
	if !wantsJSON(c) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false})
		return
	}
	h.submitReview(c, true)
}

func (h *ReviewHandler) submitReview(c *gin.Context, async bool) {
	form := NewReviewForm(c)
	if !form.Valid() {
		if async {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": form.Errors})
			return
		}
		h.renderHome(c, http.StatusOK, form)
		return
	}

	review := models.Review{Name: form.Name, Content: form.Content}
	if review.Name == "" {
		review.Name = "Anonymous"
	}

	if err := h.DB.Create(&review).Error; err != nil {
		if async {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to save review"})
		} else {
			c.String(http.StatusInternalServerError, "failed to save review")
		}
		return
	}

	// best-effort admin notification
	h.Notifier.NotifyNewReview(&review)

	if async {
		c.JSON(http.StatusOK, gin.H{
			"success":  true,
			"review":   reviewJSON(&review),
			"is_admin": utils.IsStaff(c, h.Config.SecretKey),
		})
		return
	}
	c.Redirect(http.StatusFound, "/")
}

func (h *ReviewHandler) renderHome(c *gin.Context, status int, form *ReviewForm) {
	var reviews []models.Review
	if err := h.DB.Order("created_at DESC").Limit(homeReviewCount).Find(&reviews).Error; err != nil {
		c.String(http.StatusInternalServerError, "failed to load reviews")
		return
	}
	var total int64
	if err := h.DB.Model(&models.Review{}).Count(&total).Error; err != nil {
		c.String(http.StatusInternalServerError, "failed to load reviews")
		return
	}

	c.HTML(status, "home.html", gin.H{
		"pageTitle":    "Home",
		"reviews":      reviews,
		"form":         form,
		"totalReviews": total,
	})
}

// LoadMore returns every review beyond the ones embedded in the home page.
func (h *ReviewHandler) LoadMore(c *gin.Context) {
	if !wantsJSON(c) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false})
		return
	}

	var reviews []models.Review
	if err := h.DB.Order("created_at DESC").Find(&reviews).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to fetch reviews"})
		return
	}
	if len(reviews) > homeReviewCount {
		reviews = reviews[homeReviewCount:]
	} else {
		reviews = nil
	}

	data := make([]gin.H, 0, len(reviews))
	for i := range reviews {
		data = append(data, reviewJSON(&reviews[i]))
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"reviews":  data,
		"is_admin": utils.IsStaff(c, h.Config.SecretKey),
	})
}

// Delete removes a review. The staff check runs before any lookup.
func (h *ReviewHandler) Delete(c *gin.Context) {
	if !utils.IsStaff(c, h.Config.SecretKey) {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "error": "staff privileges required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Review not found"})
		return
	}

	var review models.Review
	if err := h.DB.First(&review, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Review not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to fetch review"})
		return
	}

	if err := h.DB.Delete(&review).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "failed to delete review"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
