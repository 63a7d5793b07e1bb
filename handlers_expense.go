package main

import (
	"net/http"
	"strconv"
	"time"

	"fintrack/models"
	"fintrack/pkg/budgetcalc"

	"github.com/gin-gonic/gin"
)

func createExpenseHandler(c *gin.Context) {
	var req expenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
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
	exp := models.Expense{
		UserID:        currentUserID(c),
		Title:         req.Title,
		AmountCents:   centsFromAmount(req.Amount),
		Category:      req.Category,
		Description:   req.Description,
		Date:          date,
		PaymentMethod: req.PaymentMethod,
		IsRecurring:   req.IsRecurring,
	}
	if err := db.Create(&exp).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toExpenseResponse(exp))
}

// listExpensesHandler lists the caller's expenses, newest first. Optional
// category/startDate/endDate query params narrow the result.
func listExpensesHandler(c *gin.Context) {
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
	var expenses []models.Expense
	if err := q.Order("date DESC").Find(&expenses).Error; err != nil {
		respondError(c, err)
		return
	}
	out := make([]expenseResponse, 0, len(expenses))
	for _, e := range expenses {
		out = append(out, toExpenseResponse(e))
	}
	c.JSON(http.StatusOK, out)
}

func getExpenseHandler(c *gin.Context) {
	var exp models.Expense
	if err := db.Where("id = ? AND user_id = ?", c.Param("id"), currentUserID(c)).First(&exp).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toExpenseResponse(exp))
}

// updateExpenseHandler replaces an owned expense with the request body.
func updateExpenseHandler(c *gin.Context) {
	var req expenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var exp models.Expense
	if err := db.Where("id = ? AND user_id = ?", c.Param("id"), currentUserID(c)).First(&exp).Error; err != nil {
		respondError(c, err)
		return
	}
	if req.Date != "" {
		date, err := parseDate(req.Date)
		if err != nil {
			respondError(c, err)
			return
		}
		exp.Date = date
	}
	exp.Title = req.Title
	exp.AmountCents = centsFromAmount(req.Amount)
	exp.Category = req.Category
	exp.Description = req.Description
	exp.PaymentMethod = req.PaymentMethod
	exp.IsRecurring = req.IsRecurring
	if err := db.Save(&exp).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toExpenseResponse(exp))
}

func deleteExpenseHandler(c *gin.Context) {
	res := db.Where("id = ? AND user_id = ?", c.Param("id"), currentUserID(c)).Delete(&models.Expense{})
	if res.Error != nil {
		respondError(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		respondError(c, errNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "expense deleted"})
}

func expenseCategorySummaryHandler(c *gin.Context) {
	out, err := categorySummary("expenses", currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func expenseMonthlySummaryHandler(c *gin.Context) {
	out, err := bucketSummary("expenses", "YYYY-MM", currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func expenseYearlySummaryHandler(c *gin.Context) {
	out, err := bucketSummary("expenses", "YYYY", currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func expenseByMonthHandler(c *gin.Context) {
	year, err1 := strconv.Atoi(c.Param("year"))
	month, err2 := strconv.Atoi(c.Param("month"))
	if err1 != nil || err2 != nil || month < 1 || month > 12 || year < 1970 || year > 9999 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year or month"})
		return
	}
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	win := budgetcalc.Window{Start: start, End: start.AddDate(0, 1, 0)}
	total, byCategory, err := windowSummary("expenses", currentUserID(c), win)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"year": year, "month": month, "total": total, "categories": byCategory})
}

func expenseDateRangeHandler(c *gin.Context) {
	win, err := windowFromQuery(c)
	if err != nil {
		respondError(c, err)
		return
	}
	total, byCategory, err := windowSummary("expenses", currentUserID(c), win)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"start": win.Start, "end": win.End, "total": total, "categories": byCategory})
}

// windowFromQuery builds a half-open window from required start/end query
// params.
func windowFromQuery(c *gin.Context) (budgetcalc.Window, error) {
	start, err := parseDate(c.Query("start"))
	if err != nil {
		return budgetcalc.Window{}, err
	}
	end, err := parseDate(c.Query("end"))
	if err != nil {
		return budgetcalc.Window{}, err
	}
	return budgetcalc.Window{Start: start, End: end}, nil
}
