package controllers

import (
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mmpl/league-api/models"
)

type PlayerController struct {
	DB *gorm.DB
}

func NewPlayerController(db *gorm.DB) *PlayerController {
	return &PlayerController{DB: db}
}

type PlayerInput struct {
	FirstName           string `json:"first_name" binding:"required"`
	LastName            string `json:"last_name" binding:"required"`
	DOB                 string `json:"dob" binding:"required"`
	Email               string `json:"email" binding:"required,email"`
	Phone               string `json:"phone"`
	Address             string `json:"address"`
	Joined              string `json:"joined"`
	MediaRelease        bool   `json:"media_release"`
	VandaPolicy         bool   `json:"vanda_policy"`
	UmpireAccreditation string `json:"umpire_accreditation" binding:"omitempty,oneof=A B C D N"`
}

type PlayerListQuery struct {
	Page     int    `form:"page,default=1" binding:"min=1"`
	PageSize int    `form:"pageSize,default=25" binding:"min=1,max=100"`
	Search   string `form:"search"`
}

// ListPlayers returns the player register, newest surname first, with
// optional name search.
func (pc *PlayerController) ListPlayers(c *gin.Context) {
	var query PlayerListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	db := pc.DB.Model(&models.Player{})
	if query.Search != "" {
		like := "%" + query.Search + "%"
		db = db.Where("first_name ILIKE ? OR last_name ILIKE ?", like, like)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error counting players"})
		return
	}

	var players []models.Player
	if err := db.Order("last_name, first_name").
		Offset((query.Page - 1) * query.PageSize).
		Limit(query.PageSize).
		Find(&players).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching players"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{
		Success: true,
		Data:    players,
		Pagination: &PaginationMeta{
			CurrentPage: query.Page,
			PageSize:    query.PageSize,
			TotalItems:  total,
			TotalPages:  int(math.Ceil(float64(total) / float64(query.PageSize))),
		},
	})
}

func (pc *PlayerController) GetPlayer(c *gin.Context) {
	var player models.Player
	if err := pc.DB.Preload("Notification").First(&player, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Player not found"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: player})
}

func (pc *PlayerController) CreatePlayer(c *gin.Context) {
	var input PlayerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dob, err := time.Parse("2006-01-02", input.DOB)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "dob must be YYYY-MM-DD"})
		return
	}

	joined := time.Now()
	if input.Joined != "" {
		if parsed, err := time.Parse("2006-01-02", input.Joined); err == nil {
			joined = parsed
		}
	}

	player := models.Player{
		FirstName:           input.FirstName,
		LastName:            input.LastName,
		DOB:                 dob,
		Email:               input.Email,
		Phone:               input.Phone,
		Address:             input.Address,
		Joined:              joined,
		MediaRelease:        input.MediaRelease,
		VandaPolicy:         input.VandaPolicy,
		UmpireAccreditation: input.UmpireAccreditation,
	}
	if player.UmpireAccreditation == "" {
		player.UmpireAccreditation = models.AccreditationNone
	}

	// Consent flags carry the date they were given.
	now := time.Now()
	if player.MediaRelease {
		player.MediaReleaseDate = &now
	}
	if player.VandaPolicy {
		player.VandaPolicyDate = &now
	}

	if err := pc.DB.Create(&player).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating player"})
		return
	}

	c.JSON(http.StatusCreated, StandardResponse{Success: true, Data: player, Message: "Player created!"})
}

func (pc *PlayerController) UpdatePlayer(c *gin.Context) {
	var player models.Player
	if err := pc.DB.First(&player, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Player not found"})
		return
	}

	var input PlayerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.DOB != "" {
		dob, err := time.Parse("2006-01-02", input.DOB)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "dob must be YYYY-MM-DD"})
			return
		}
		player.DOB = dob
	}

	now := time.Now()
	if input.MediaRelease && !player.MediaRelease {
		player.MediaReleaseDate = &now
	}
	if input.VandaPolicy && !player.VandaPolicy {
		player.VandaPolicyDate = &now
	}

	player.FirstName = input.FirstName
	player.LastName = input.LastName
	player.Email = input.Email
	player.Phone = input.Phone
	player.Address = input.Address
	player.MediaRelease = input.MediaRelease
	player.VandaPolicy = input.VandaPolicy
	if input.UmpireAccreditation != "" {
		player.UmpireAccreditation = input.UmpireAccreditation
	}

	if err := pc.DB.Save(&player).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating player"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: player, Message: "Player updated!"})
}

func (pc *PlayerController) DeletePlayer(c *gin.Context) {
	var player models.Player
	if err := pc.DB.First(&player, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Player not found"})
		return
	}

	if err := pc.DB.Delete(&player).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting player"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Message: "Player deleted"})
}

type NotificationInput struct {
	Events    bool `json:"events"`
	Results   bool `json:"results"`
	Resources bool `json:"resources"`
	News      bool `json:"news"`
}

// UpdateNotifications upserts a player's mailing list preferences.
func (pc *PlayerController) UpdateNotifications(c *gin.Context) {
	var player models.Player
	if err := pc.DB.First(&player, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Player not found"})
		return
	}

	var input NotificationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	notification := models.Notification{
		PlayerID:  player.ID,
		Events:    input.Events,
		Results:   input.Results,
		Resources: input.Resources,
		News:      input.News,
	}
	if err := pc.DB.Save(&notification).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error saving notification preferences"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: notification})
}
