package controllers

import (
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/mmpl/league-api/models"
)

type VenueController struct {
	DB *gorm.DB
}

func NewVenueController(db *gorm.DB) *VenueController {
	return &VenueController{DB: db}
}

type VenueInput struct {
	Name        string   `json:"name" binding:"required"`
	Address     string   `json:"address"`
	Tables      int      `json:"tables" binding:"omitempty,min=0"`
	Phone       string   `json:"phone"`
	Email       string   `json:"email" binding:"omitempty,email"`
	ContactName string   `json:"contact_name"`
	Facilities  []string `json:"facilities"`
}

type VenueListQuery struct {
	Page      int `form:"page,default=1" binding:"min=1"`
	PageSize  int `form:"pageSize,default=25" binding:"min=1,max=100"`
	MinTables int `form:"minTables"`
}

// ListVenues returns the club's venue register. minTables narrows it to
// venues with enough tables for fixture generation.
func (vc *VenueController) ListVenues(c *gin.Context) {
	var query VenueListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	db := vc.DB.Model(&models.Venue{})
	if query.MinTables > 0 {
		db = db.Where("tables >= ?", query.MinTables)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error counting venues"})
		return
	}

	var venues []models.Venue
	if err := db.Order("name").
		Offset((query.Page - 1) * query.PageSize).
		Limit(query.PageSize).
		Find(&venues).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching venues"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data:    venues,
		Pagination: &PaginationMeta{
			CurrentPage: query.Page,
			PageSize:    query.PageSize,
			TotalItems:  total,
			TotalPages:  int(math.Ceil(float64(total) / float64(query.PageSize))),
		},
	})
}

func (vc *VenueController) GetVenue(c *gin.Context) {
	var venue models.Venue
	if err := vc.DB.First(&venue, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Venue not found"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: venue})
}

func (vc *VenueController) CreateVenue(c *gin.Context) {
	var input VenueInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	venue := models.Venue{
		Name:        input.Name,
		Address:     input.Address,
		Tables:      input.Tables,
		Phone:       input.Phone,
		Email:       input.Email,
		ContactName: input.ContactName,
		Facilities:  pq.StringArray(input.Facilities),
	}

	if err := vc.DB.Create(&venue).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating venue"})
		return
	}

	c.JSON(http.StatusCreated, StandardResponse{Success: true, Data: venue, Message: "Venue created!"})
}

func (vc *VenueController) UpdateVenue(c *gin.Context) {
	var venue models.Venue
	if err := vc.DB.First(&venue, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Venue not found"})
		return
	}

	var input VenueInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	venue.Name = input.Name
	venue.Address = input.Address
	venue.Tables = input.Tables
	venue.Phone = input.Phone
	venue.Email = input.Email
	venue.ContactName = input.ContactName
	venue.Facilities = pq.StringArray(input.Facilities)

	if err := vc.DB.Save(&venue).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating venue"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: venue, Message: "Venue updated!"})
}

func (vc *VenueController) DeleteVenue(c *gin.Context) {
	var venue models.Venue
	if err := vc.DB.First(&venue, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Venue not found"})
		return
	}

	if err := vc.DB.Delete(&venue).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting venue"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Message: "Venue deleted"})
}
