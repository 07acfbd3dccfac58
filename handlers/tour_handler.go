package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Nyagwenchar/bmsafaris/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// featuredTourCount caps the promotional strip on the listing page.
const featuredTourCount = 3

type TourHandler struct {
	DB *gorm.DB
}

// searchTours returns every tour when query is empty, otherwise the tours
// whose name or location contains the query, case-insensitively.
func (h *TourHandler) searchTours(query string) ([]models.Tour, error) {
	var tours []models.Tour
	q := h.DB
	if query != "" {
		pattern := "%" + strings.ToLower(query) + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(location) LIKE ?", pattern, pattern)
	}
	if err := q.Find(&tours).Error; err != nil {
		return nil, err
	}
	return tours, nil
}

func (h *TourHandler) featuredTours() ([]models.Tour, error) {
	var tours []models.Tour
	if err := h.DB.Where("is_featured = ?", true).Limit(featuredTourCount).Find(&tours).Error; err != nil {
		return nil, err
	}
	return tours, nil
}

func (h *TourHandler) List(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))

	tours, err := h.searchTours(query)
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to load tours")
		return
	}
	featured, err := h.featuredTours()
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to load tours")
		return
	}

	c.HTML(http.StatusOK, "tours.html", gin.H{
		"pageTitle":     "Tours",
		"tours":         tours,
		"featuredTours": featured,
		"query":         query,
	})
}

func (h *TourHandler) Detail(c *gin.Context) {
	var tour models.Tour
	err := h.DB.Preload("Gallery").First(&tour, "slug = ?", c.Param("slug")).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.HTML(http.StatusNotFound, "404.html", gin.H{"pageTitle": "Not Found"})
			return
		}
		c.String(http.StatusInternalServerError, "failed to load tour")
		return
	}

	c.HTML(http.StatusOK, "tour_detail.html", gin.H{
		"pageTitle": tour.Name,
		"tour":      tour,
	})
}
