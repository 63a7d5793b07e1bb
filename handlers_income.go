package main

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"fintrack/models"
	"fintrack/pkg/budgetcalc"

	"github.com/gin-gonic/gin"
)

var recurringFrequencies = map[string]bool{
	"none":    true,
	"daily":   true,
	"weekly":  true,
	"monthly": true,
	"yearly":  true,
}

func createIncomeHandler(c *gin.Context) {
	var req incomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	freq := req.RecurringFrequency
	if freq == "" {
		freq = "none"
	}
	if !recurringFrequencies[freq] {
		respondError(c, fmt.Errorf("%w: unknown recurring frequency %q", errValidation, freq))
		return
	}
	date := time.Now()
	if req.Date != "" {
		var err error
		if date, err = parseDate(req.Date); err != nil {
			respondError(c, err)
			return
		}
	}
	inc := models.Income{
		UserID:             currentUserID(c),
		Title:              req.Title,
		AmountCents:        centsFromAmount(req.Amount),
		Category:           req.Category,
		Description:        req.Description,
		Date:               date,
		Source:             req.Source,
		IsRecurring:        req.IsRecurring,
		RecurringFrequency: freq,
	}
	if err := db.Create(&inc).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toIncomeResponse(inc))
}

func listIncomesHandler(c *gin.Context) {
	q := db.Where("user_id = ?", currentUserID(c))
	if category := c.Query("category"); category != "" {
		q = q.Where("category = ?", category)
	}
	if s := c.Query("startDate"); s != "" {
		start, err := parseDate(s)
		if err != nil {
			respondError(c, err)
			return
		}
		q = q.Where("date >= ?", start)
	}
	if s := c.Query("endDate"); s != "" {
		end, err := parseDate(s)
		if err != nil {
			respondError(c, err)
			return
		}
		q = q.Where("date < ?", end)
	}
	var incomes []models.Income
	if err := q.Order("date DESC").Find(&incomes).Error; err != nil {
		respondError(c, err)
		return
	}
	out := make([]incomeResponse, 0, len(incomes))
	for _, i := range incomes {
		out = append(out, toIncomeResponse(i))
	}
	c.JSON(http.StatusOK, out)
}

func getIncomeHandler(c *gin.Context) {
	var inc models.Income
	if err := db.Where("id = ? AND user_id = ?", c.Param("id"), currentUserID(c)).First(&inc).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toIncomeResponse(inc))
}

func updateIncomeHandler(c *gin.Context) {
	var req incomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	freq := req.RecurringFrequency
	if freq == "" {
		freq = "none"
	}
	if !recurringFrequencies[freq] {
		respondError(c, fmt.Errorf("%w: unknown recurring frequency %q", errValidation, freq))
		return
	}
	var inc models.Income
	if err := db.Where("id = ? AND user_id = ?", c.Param("id"), currentUserID(c)).First(&inc).Error; err != nil {
		respondError(c, err)
		return
	}
	if req.Date != "" {
		date, err := parseDate(req.Date)
		if err != nil {
			respondError(c, err)
			return
		}
		inc.Date = date
	}
	inc.Title = req.Title
	inc.AmountCents = centsFromAmount(req.Amount)
	inc.Category = req.Category
	inc.Description = req.Description
	inc.Source = req.Source
	inc.IsRecurring = req.IsRecurring
	inc.RecurringFrequency = freq
	if err := db.Save(&inc).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toIncomeResponse(inc))
}

func deleteIncomeHandler(c *gin.Context) {
	res := db.Where("id = ? AND user_id = ?", c.Param("id"), currentUserID(c)).Delete(&models.Income{})
	if res.Error != nil {
		respondError(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		respondError(c, errNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "income deleted"})
}

func incomeCategorySummaryHandler(c *gin.Context) {
	out, err := categorySummary("incomes", currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func incomeMonthlySummaryHandler(c *gin.Context) {
	out, err := bucketSummary("incomes", "YYYY-MM", currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func incomeYearlySummaryHandler(c *gin.Context) {
	out, err := bucketSummary("incomes", "YYYY", currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func incomeByMonthHandler(c *gin.Context) {
	year, err1 := strconv.Atoi(c.Param("year"))
	month, err2 := strconv.Atoi(c.Param("month"))
	if err1 != nil || err2 != nil || month < 1 || month > 12 || year < 1970 || year > 9999 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year or month"})
		return
	}
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	win := budgetcalc.Window{Start: start, End: start.AddDate(0, 1, 0)}
	total, byCategory, err := windowSummary("incomes", currentUserID(c), win)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"year": year, "month": month, "total": total, "categories": byCategory})
}

func incomeDateRangeHandler(c *gin.Context) {
	win, err := windowFromQuery(c)
	if err != nil {
		respondError(c, err)
		return
	}
	total, byCategory, err := windowSummary("incomes", currentUserID(c), win)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"start": win.Start, "end": win.End, "total": total, "categories": byCategory})
}
