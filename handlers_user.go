package main

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"fintrack/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

func registerHandler(c *gin.Context) {
	var req struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := RegisterUser(req.Name, req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	token, err := issueToken(user.ID, time.Now())
	if err != nil {
		respondError(c, err)
		return
	}
	setSessionCookie(c, token)
	c.JSON(http.StatusCreated, userResponse{ID: user.ID, Name: user.Name, Email: user.Email, Token: token})
}

func loginHandler(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := Authenticate(req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	token, err := issueToken(user.ID, time.Now())
	if err != nil {
		respondError(c, err)
		return
	}
	setSessionCookie(c, token)
	c.JSON(http.StatusOK, userResponse{ID: user.ID, Name: user.Name, Email: user.Email, Token: token})
}

func logoutHandler(c *gin.Context) {
	clearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

func getProfileHandler(c *gin.Context) {
	var user models.User
	if err := db.First(&user, currentUserID(c)).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, userResponse{ID: user.ID, Name: user.Name, Email: user.Email})
}

// updateProfileHandler applies a partial profile update. All fields are
// optional; email keeps the lowercase-unique invariant and a new password
// is re-hashed.
func updateProfileHandler(c *gin.Context) {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var user models.User
	if err := db.First(&user, currentUserID(c)).Error; err != nil {
		respondError(c, err)
		return
	}
	if name := strings.TrimSpace(req.Name); name != "" {
		user.Name = name
	}
	if req.Email != "" {
		email := strings.ToLower(strings.TrimSpace(req.Email))
		if !emailRE.MatchString(email) {
			respondError(c, fmt.Errorf("%w: invalid email format", errValidation))
			return
		}
		var other models.User
		if err := db.Where("email = ? AND id <> ?", email, user.ID).First(&other).Error; err == nil {
			respondError(c, fmt.Errorf("%w: email already registered", errDuplicate))
			return
		}
		user.Email = email
	}
	if req.Password != "" {
		if len(req.Password) < 6 {
			respondError(c, fmt.Errorf("%w: password too short (min 6)", errValidation))
			return
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			respondError(c, err)
			return
		}
		user.PasswordHash = hash
	}
	if err := db.Save(&user).Error; err != nil {
		if isUniqueConstraintError(err) {
			respondError(c, fmt.Errorf("%w: email already registered", errDuplicate))
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, userResponse{ID: user.ID, Name: user.Name, Email: user.Email})
}
