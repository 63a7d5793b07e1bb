package main

import (
	"fmt"
	"regexp"
	"strings"

	"fintrack/models"

	"golang.org/x/crypto/bcrypt"
)

var emailRE = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// RegisterUser creates a local-password account. Email is normalized to
// lowercase and must be globally unique.
func RegisterUser(name, email, password string) (models.User, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" {
		return models.User{}, fmt.Errorf("%w: name is required", errValidation)
	}
	if !emailRE.MatchString(email) {
		return models.User{}, fmt.Errorf("%w: invalid email format", errValidation)
	}
	if len(password) < 6 { // basic password policy
		return models.User{}, fmt.Errorf("%w: password too short (min 6)", errValidation)
	}
	// pre-check existing (optimistic)
	var existing models.User
	if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
		return models.User{}, fmt.Errorf("%w: email already registered", errDuplicate)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}
	user := models.User{Name: name, Email: email, PasswordHash: hash}
	if err := db.Create(&user).Error; err != nil {
		if isUniqueConstraintError(err) { // race condition after initial check
			return models.User{}, fmt.Errorf("%w: email already registered", errDuplicate)
		}
		return models.User{}, err
	}
	return user, nil
}

// Authenticate verifies a password login. Accounts created through Google
// sign-in carry no password hash and always fail here.
func Authenticate(email, password string) (models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		return models.User{}, errBadLogin
	}
	if len(user.PasswordHash) == 0 {
		return models.User{}, errBadLogin
	}
	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		return models.User{}, errBadLogin
	}
	return user, nil
}

// resolveGoogleUser finds or creates the account for a Google login: first
// by provider id, then by email (linking the provider id to the existing
// account), finally by creating a fresh account with no password hash.
func resolveGoogleUser(googleID, email, name string) (models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var user models.User
	if err := db.Where("google_id = ?", googleID).First(&user).Error; err == nil {
		return user, nil
	}
	if err := db.Where("email = ?", email).First(&user).Error; err == nil {
		user.GoogleID = googleID
		user.IsVerified = true
		if err := db.Save(&user).Error; err != nil {
			return models.User{}, err
		}
		return user, nil
	}
	user = models.User{Name: name, Email: email, GoogleID: googleID, IsVerified: true}
	if err := db.Create(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "duplicate key") || strings.Contains(s, "unique constraint") || strings.Contains(s, "already exists")
}
