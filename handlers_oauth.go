package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"fintrack/logging"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const (
	oauthStateCookie  = "oauth_state"
	googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"
)

func googleOAuthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     cfg.GoogleClientID,
		ClientSecret: cfg.GoogleClientSecret,
		RedirectURL:  cfg.GoogleRedirectURL,
		Scopes:       []string{"openid", "email", "profile"},
		Endpoint:     google.Endpoint,
	}
}

// googleLoginHandler starts the OAuth redirect flow. The state nonce is
// pinned in a short-lived cookie and checked on the way back.
func googleLoginHandler(c *gin.Context) {
	if cfg.GoogleClientID == "" || cfg.GoogleClientSecret == "" {
		c.JSON(http.StatusNotImplemented, gin.H{"error": "google sign-in is not configured"})
		return
	}
	state := uuid.NewString()
	// Lax, not Strict: the cookie must survive the cross-site redirect back
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(oauthStateCookie, state, 600, "/", "", cfg.AppEnv == "production", true)
	c.Redirect(http.StatusTemporaryRedirect, googleOAuthConfig().AuthCodeURL(state))
}

type googleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
}

func googleCallbackHandler(c *gin.Context) {
	wantState, err := c.Cookie(oauthStateCookie)
	if err != nil || wantState == "" || c.Query("state") != wantState {
		c.JSON(http.StatusBadRequest, gin.H{"error": "oauth state mismatch"})
		return
	}
	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing authorization code"})
		return
	}

	conf := googleOAuthConfig()
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()
	tok, err := conf.Exchange(ctx, code)
	if err != nil {
		logging.Logger.Errorf("google code exchange failed: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "google sign-in failed"})
		return
	}
	info, err := fetchGoogleUserInfo(ctx, conf, tok)
	if err != nil {
		logging.Logger.Errorf("google userinfo fetch failed: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "google sign-in failed"})
		return
	}
	if info.Email == "" || !info.VerifiedEmail {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "google account has no verified email"})
		return
	}

	user, err := resolveGoogleUser(info.ID, info.Email, info.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	session, err := issueToken(user.ID, time.Now())
	if err != nil {
		respondError(c, err)
		return
	}
	setSessionCookie(c, session)
	c.Redirect(http.StatusFound, cfg.FrontendOrigin+"/dashboard")
}

func fetchGoogleUserInfo(ctx context.Context, conf *oauth2.Config, tok *oauth2.Token) (googleUserInfo, error) {
	resp, err := conf.Client(ctx, tok).Get(googleUserInfoURL)
	if err != nil {
		return googleUserInfo{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return googleUserInfo{}, fmt.Errorf("userinfo returned status %d", resp.StatusCode)
	}
	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return googleUserInfo{}, err
	}
	return info, nil
}
