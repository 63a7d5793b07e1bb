package main

import (
	"errors"
	"net/http"

	"fintrack/logging"
	"fintrack/pkg/budgetcalc"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Sentinel error kinds. Handlers and helpers wrap these with context; the
// translation point below maps them onto HTTP responses.
var (
	errValidation   = errors.New("validation failed")
	errDuplicate    = errors.New("duplicate resource")
	errInvalidToken = errors.New("invalid token")
	errTokenExpired = errors.New("token expired")
	errNotFound     = errors.New("not found")
	errBadLogin     = errors.New("invalid credentials")
)

// respondError translates an error kind into the matching HTTP response.
// Anything unrecognized is treated as a store or internal fault: logged in
// full, surfaced as a generic 500.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errValidation), errors.Is(err, budgetcalc.ErrInvalidPeriod):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, errDuplicate):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, errBadLogin):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
	case errors.Is(err, errTokenExpired):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "token expired, please log in again"})
	case errors.Is(err, errInvalidToken):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
	case errors.Is(err, errNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})
	default:
		logging.Logger.WithField("path", c.FullPath()).Errorf("internal error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
