package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mmpl/league-api/models"
)

type CommitteeController struct {
	DB *gorm.DB
}

func NewCommitteeController(db *gorm.DB) *CommitteeController {
	return &CommitteeController{DB: db}
}

type CommitteeInput struct {
	PresidentID          uint   `json:"president_id" binding:"required"`
	VicePresidentID      uint   `json:"vice_president_id" binding:"required"`
	TreasurerID          uint   `json:"treasurer_id" binding:"required"`
	StatisticianID       uint   `json:"statistician_id" binding:"required"`
	SecretaryID          uint   `json:"secretary_id" binding:"required"`
	AssistantSecretaryID uint   `json:"assistant_secretary_id" binding:"required"`
	StartDate            string `json:"start_date" binding:"required"`
	EndDate              string `json:"end_date"`
}

var committeePreloads = []string{
	"President", "VicePresident", "Treasurer",
	"Statistician", "Secretary", "AssistantSecretary",
}

func (cc *CommitteeController) withOfficers() *gorm.DB {
	db := cc.DB
	for _, preload := range committeePreloads {
		db = db.Preload(preload)
	}
	return db
}

// ListCommittees returns every committee term, newest first, so the history
// of members' service is browsable.
func (cc *CommitteeController) ListCommittees(c *gin.Context) {
	var committees []models.Committee
	if err := cc.withOfficers().Order("start_date DESC").Find(&committees).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching committees"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: committees})
}

// GetCurrentCommittee returns the sitting committee: the latest term without
// an end date.
func (cc *CommitteeController) GetCurrentCommittee(c *gin.Context) {
	var committee models.Committee
	if err := cc.withOfficers().
		Where("end_date IS NULL").
		Order("start_date DESC").
		First(&committee).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No sitting committee"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: committee})
}

func (cc *CommitteeController) GetCommittee(c *gin.Context) {
	var committee models.Committee
	if err := cc.withOfficers().First(&committee, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Committee not found"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: committee})
}

func (cc *CommitteeController) CreateCommittee(c *gin.Context) {
	var input CommitteeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	startDate, err := time.Parse("2006-01-02", input.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start_date must be YYYY-MM-DD"})
		return
	}

	committee := models.Committee{
		PresidentID:          input.PresidentID,
		VicePresidentID:      input.VicePresidentID,
		TreasurerID:          input.TreasurerID,
		StatisticianID:       input.StatisticianID,
		SecretaryID:          input.SecretaryID,
		AssistantSecretaryID: input.AssistantSecretaryID,
		StartDate:            startDate,
	}
	if input.EndDate != "" {
		if endDate, err := time.Parse("2006-01-02", input.EndDate); err == nil {
			committee.EndDate = &endDate
		}
	}

	// A new term ends the previous one at its AGM date.
	if committee.EndDate == nil {
		if err := cc.DB.Model(&models.Committee{}).
			Where("end_date IS NULL").
			Update("end_date", startDate).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error closing previous committee"})
			return
		}
	}

	if err := cc.DB.Create(&committee).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating committee"})
		return
	}

	c.JSON(http.StatusCreated, StandardResponse{Success: true, Data: committee, Message: "Committee created!"})
}

func (cc *CommitteeController) UpdateCommittee(c *gin.Context) {
	var committee models.Committee
	if err := cc.DB.First(&committee, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Committee not found"})
		return
	}

	var input CommitteeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	committee.PresidentID = input.PresidentID
	committee.VicePresidentID = input.VicePresidentID
	committee.TreasurerID = input.TreasurerID
	committee.StatisticianID = input.StatisticianID
	committee.SecretaryID = input.SecretaryID
	committee.AssistantSecretaryID = input.AssistantSecretaryID

	if input.StartDate != "" {
		if startDate, err := time.Parse("2006-01-02", input.StartDate); err == nil {
			committee.StartDate = startDate
		}
	}
	if input.EndDate != "" {
		if endDate, err := time.Parse("2006-01-02", input.EndDate); err == nil {
			committee.EndDate = &endDate
		}
	}

	if err := cc.DB.Save(&committee).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating committee"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: committee, Message: "Committee updated!"})
}

func (cc *CommitteeController) DeleteCommittee(c *gin.Context) {
	var committee models.Committee
	if err := cc.DB.First(&committee, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Committee not found"})
		return
	}

	if err := cc.DB.Delete(&committee).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting committee"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Message: "Committee deleted"})
}
