package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mmpl/league-api/models"
	"github.com/mmpl/league-api/store"
	"github.com/mmpl/league-api/utils"
)

type PageController struct {
	DB    *gorm.DB
	Store *store.ContentStore
}

func NewPageController(contentStore *store.ContentStore) *PageController {
	return &PageController{DB: contentStore.DB(), Store: contentStore}
}

type VenuePageInput struct {
	Title string `json:"title" binding:"required"`
	Slug  string `json:"slug"`
	Intro string `json:"intro"`
	Body  string `json:"body"`
}

// ListVenuePages returns live pages; editors pass ?all=true to include drafts.
func (pc *PageController) ListVenuePages(c *gin.Context) {
	db := pc.DB.Model(&models.VenuePage{})
	if c.Query("all") != "true" {
		db = db.Where("live = ?", true)
	}

	var pages []models.VenuePage
	if err := db.Order("title").Find(&pages).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching venue pages"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: pages})
}

// GetVenuePage returns one page by slug together with its enriched details,
// open hours and photos.
func (pc *PageController) GetVenuePage(c *gin.Context) {
	var page models.VenuePage
	if err := pc.DB.
		Preload("VenueDetails").
		Preload("VenueDetails.OpenHours").
		Preload("VenueDetails.Photos").
		Where("slug = ?", c.Param("slug")).
		First(&page).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Venue page not found"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: page})
}

func (pc *PageController) CreateVenuePage(c *gin.Context) {
	var input VenuePageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	slug := input.Slug
	if slug == "" {
		slug = utils.Slugify(input.Title)
	}

	page := models.VenuePage{
		Title: input.Title,
		Slug:  slug,
		Intro: input.Intro,
		Body:  input.Body,
	}
	if err := pc.DB.Create(&page).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating venue page"})
		return
	}

	c.JSON(http.StatusCreated, StandardResponse{Success: true, Data: page, Message: "Venue page created!"})
}

func (pc *PageController) UpdateVenuePage(c *gin.Context) {
	var page models.VenuePage
	if err := pc.DB.First(&page, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Venue page not found"})
		return
	}

	var input VenuePageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	page.Title = input.Title
	if input.Slug != "" {
		page.Slug = input.Slug
	}
	page.Intro = input.Intro
	page.Body = input.Body

	if err := pc.DB.Save(&page).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating venue page"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: page, Message: "Venue page updated!"})
}

// PublishVenuePage takes the page live and kicks off enrichment. For an
// existing page the publish always succeeds; enrichment trouble is the
// listeners' problem, not the publisher's.
func (pc *PageController) PublishVenuePage(c *gin.Context) {
	id, ok := utils.ParseID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page id"})
		return
	}

	page, err := pc.Store.PublishVenuePage(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Venue page not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error publishing venue page"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: page, Message: "Venue page published!"})
}

func (pc *PageController) UnpublishVenuePage(c *gin.Context) {
	id, ok := utils.ParseID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page id"})
		return
	}

	page, err := pc.Store.UnpublishVenuePage(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Venue page not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error unpublishing venue page"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: page, Message: "Venue page unpublished"})
}

// DeleteVenuePage removes the page and its enrichment rows. Photo files are
// cleaned up through the image pre-delete hooks; a hook failure aborts the
// delete so nothing is orphaned.
func (pc *PageController) DeleteVenuePage(c *gin.Context) {
	id, ok := utils.ParseID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page id"})
		return
	}

	if err := pc.Store.DeleteVenuePage(c.Request.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Venue page not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting venue page"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Message: "Venue page deleted"})
}
