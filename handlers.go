package main

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

func setupRoutes(r *gin.Engine) {
	r.GET("/healthz", healthzHandler)

	r.POST("/api/User/register", registerHandler)
	r.POST("/api/User/login", loginHandler)
	r.GET("/api/User/logout", logoutHandler)
	r.GET("/api/auth/google", googleLoginHandler)
	r.GET("/api/auth/google/callback", googleCallbackHandler)

	authGroup := r.Group("/api")
	authGroup.Use(authMiddleware())

	authGroup.GET("/User/profile", getProfileHandler)
	authGroup.PUT("/User/profile", updateProfileHandler)

	authGroup.GET("/expenses", listExpensesHandler)
	authGroup.POST("/expenses", createExpenseHandler)
	authGroup.GET("/expenses/summary/categories", expenseCategorySummaryHandler)
	authGroup.GET("/expenses/summary/monthly", expenseMonthlySummaryHandler)
	authGroup.GET("/expenses/summary/yearly", expenseYearlySummaryHandler)
	authGroup.GET("/expenses/summary/by-month/:year/:month", expenseByMonthHandler)
	authGroup.GET("/expenses/summary/date-range", expenseDateRangeHandler)
	authGroup.GET("/expenses/:id", getExpenseHandler)
	authGroup.PUT("/expenses/:id", updateExpenseHandler)
	authGroup.DELETE("/expenses/:id", deleteExpenseHandler)

	authGroup.GET("/incomes", listIncomesHandler)
	authGroup.POST("/incomes", createIncomeHandler)
	authGroup.GET("/incomes/summary/categories", incomeCategorySummaryHandler)
	authGroup.GET("/incomes/summary/monthly", incomeMonthlySummaryHandler)
	authGroup.GET("/incomes/summary/yearly", incomeYearlySummaryHandler)
	authGroup.GET("/incomes/summary/by-month/:year/:month", incomeByMonthHandler)
	authGroup.GET("/incomes/summary/date-range", incomeDateRangeHandler)
	authGroup.GET("/incomes/:id", getIncomeHandler)
	authGroup.PUT("/incomes/:id", updateIncomeHandler)
	authGroup.DELETE("/incomes/:id", deleteIncomeHandler)

	authGroup.GET("/budgets", listBudgetsHandler)
	authGroup.POST("/budgets", createBudgetHandler)
	authGroup.GET("/budgets/status/all", budgetStatusAllHandler)
	authGroup.GET("/budgets/:id", getBudgetHandler)
	authGroup.PUT("/budgets/:id", updateBudgetHandler)
	authGroup.DELETE("/budgets/:id", deleteBudgetHandler)
}

func healthzHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// authMiddleware resolves the caller's user id from the session cookie or
// a bearer token and stores it on the context for downstream handlers.
func authMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := tokenFromRequest(c)
		if raw == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
			c.Abort()
			return
		}
		userID, err := parseToken(raw)
		if err != nil {
			respondError(c, err)
			c.Abort()
			return
		}
		c.Set("userID", userID)
		c.Next()
	}
}

func tokenFromRequest(c *gin.Context) string {
	if cookie, err := c.Cookie(sessionCookieName); err == nil && cookie != "" {
		return cookie
	}
	h := c.GetHeader("Authorization")
	if strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	return ""
}

// currentUserID returns the user id set by authMiddleware.
func currentUserID(c *gin.Context) uint {
	v, _ := c.Get("userID")
	id, _ := v.(uint)
	return id
}

const sessionCookieName = "token"

// setSessionCookie installs the HTTP-only session cookie. Secure only in
// production so plain-HTTP local development keeps working.
func setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(sessionCookieName, token, int(tokenTTL.Seconds()), "/", "", cfg.AppEnv == "production", true)
}

func clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(sessionCookieName, "", -1, "/", "", cfg.AppEnv == "production", true)
}
