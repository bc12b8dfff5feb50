package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/mmpl/league-api/config"
	"github.com/mmpl/league-api/models"
	"github.com/mmpl/league-api/utils"
)

const refreshTokenLifetime = 30 * 24 * time.Hour

type AuthController struct {
	DB           *gorm.DB
	GoogleConfig *config.GoogleConfig
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{
		DB:           db,
		GoogleConfig: config.NewGoogleConfig(),
	}
}

type tokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

func (ac *AuthController) issueTokens(user *models.User) (*tokenPair, error) {
	accessToken, err := utils.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		return nil, err
	}

	refresh := models.RefreshToken{
		UserID:         user.ID,
		Token:          utils.GenerateRefreshToken(),
		ExpirationDate: time.Now().Add(refreshTokenLifetime),
	}
	if err := ac.DB.Create(&refresh).Error; err != nil {
		return nil, err
	}

	return &tokenPair{AccessToken: accessToken, RefreshToken: refresh.Token}, nil
}

func (ac *AuthController) Register(c *gin.Context) {
	var input struct {
		Username  string `json:"username" binding:"required,min=3,max=30"`
		Email     string `json:"email" binding:"required,email"`
		Password  string `json:"password" binding:"required,min=6"`
		FirstName string `json:"first_name" binding:"required"`
		LastName  string `json:"last_name" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not hash password", "success": false})
		return
	}

	user := models.User{
		Username:  strings.TrimSpace(input.Username),
		Email:     strings.ToLower(input.Email),
		Password:  string(hashedPassword),
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Role:      models.RoleMember,
	}
	if err := ac.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Username or email already in use", "success": false})
		return
	}

	tokens, err := ac.issueTokens(&user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not issue tokens", "success": false})
		return
	}

	c.JSON(http.StatusCreated, StandardResponse{Success: true, Data: gin.H{"user": user, "tokens": tokens}})
}

func (ac *AuthController) Login(c *gin.Context) {
	var input struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	var user models.User
	if err := ac.DB.Where("username = ? OR email = ?", input.Username, strings.ToLower(input.Username)).
		First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials", "success": false})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials", "success": false})
		return
	}

	tokens, err := ac.issueTokens(&user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not issue tokens", "success": false})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: gin.H{"user": user, "tokens": tokens}})
}

// GoogleLogin signs a member in with a Google ID token, creating the account
// on first sight of the email address.
func (ac *AuthController) GoogleLogin(c *gin.Context) {
	if !ac.GoogleConfig.Enabled() {
		c.JSON(http.StatusNotImplemented, gin.H{"error": "Google sign-in is not configured", "success": false})
		return
	}

	var input struct {
		IDToken string `json:"id_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	info, err := ac.GoogleConfig.VerifyIDToken(input.IDToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid Google token", "success": false})
		return
	}

	var user models.User
	err = ac.DB.Where("google_id = ? OR email = ?", info.ID, strings.ToLower(info.Email)).First(&user).Error
	if err == gorm.ErrRecordNotFound {
		user = models.User{
			Username:  strings.ToLower(info.Email),
			Email:     strings.ToLower(info.Email),
			Password:  "-", // no password login for Google-only accounts
			FirstName: info.GivenName,
			LastName:  info.FamilyName,
			Role:      models.RoleMember,
			GoogleID:  info.ID,
		}
		if err := ac.DB.Create(&user).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create account", "success": false})
			return
		}
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error looking up account", "success": false})
		return
	}

	tokens, err := ac.issueTokens(&user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not issue tokens", "success": false})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: gin.H{"user": user, "tokens": tokens}})
}

// RefreshToken swaps a valid refresh token for a fresh pair. Tokens rotate:
// the presented one is spent either way.
func (ac *AuthController) RefreshToken(c *gin.Context) {
	var input struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	var stored models.RefreshToken
	if err := ac.DB.Preload("User").Where("token = ?", input.RefreshToken).First(&stored).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid refresh token", "success": false})
		return
	}

	ac.DB.Delete(&stored)

	if time.Now().After(stored.ExpirationDate) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Refresh token expired", "success": false})
		return
	}

	tokens, err := ac.issueTokens(&stored.User)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not issue tokens", "success": false})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: tokens})
}

func (ac *AuthController) Logout(c *gin.Context) {
	var input struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "success": false})
		return
	}

	ac.DB.Where("token = ?", input.RefreshToken).Delete(&models.RefreshToken{})

	c.JSON(http.StatusOK, StandardResponse{Success: true, Message: "Logged out"})
}

func (ac *AuthController) GetProfile(c *gin.Context) {
	claims := utils.GetUser(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	var user models.User
	if err := ac.DB.Preload("Player").First(&user, claims.UserID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, StandardResponse{Success: true, Data: user})
}
