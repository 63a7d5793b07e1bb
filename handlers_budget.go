package main

import (
	"fmt"
	"net/http"
	"time"

	"fintrack/models"
	"fintrack/pkg/budgetcalc"

	"github.com/gin-gonic/gin"
)

// budgetFromRequest validates a budget payload and builds the model.
func budgetFromRequest(userID uint, req budgetRequest) (models.Budget, error) {
	if !budgetcalc.ValidPeriod(budgetcalc.Period(req.Period)) {
		return models.Budget{}, fmt.Errorf("%w: %q", budgetcalc.ErrInvalidPeriod, req.Period)
	}
	start, err := parseDate(req.StartDate)
	if err != nil {
		return models.Budget{}, err
	}
	var end *time.Time
	if req.EndDate != "" {
		e, err := parseDate(req.EndDate)
		if err != nil {
			return models.Budget{}, err
		}
		if e.Before(start) {
			return models.Budget{}, fmt.Errorf("%w: endDate precedes startDate", errValidation)
		}
		end = &e
	}
	return models.Budget{
		UserID:      userID,
		Category:    req.Category,
		Period:      req.Period,
		LimitCents:  centsFromAmount(req.Limit),
		StartDate:   start,
		EndDate:     end,
		Rollover:    req.Rollover,
		Description: req.Description,
	}, nil
}

func createBudgetHandler(c *gin.Context) {
	var req budgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	budget, err := budgetFromRequest(currentUserID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	// one budget per (category, period); the unique index backs this
	// pre-check against races
	var existing models.Budget
	if err := db.Where("user_id = ? AND category = ? AND period = ?",
		budget.UserID, budget.Category, budget.Period).First(&existing).Error; err == nil {
		respondError(c, fmt.Errorf("%w: budget for %s/%s already exists", errDuplicate, budget.Category, budget.Period))
		return
	}
	if err := db.Create(&budget).Error; err != nil {
		if isUniqueConstraintError(err) {
			respondError(c, fmt.Errorf("%w: budget for %s/%s already exists", errDuplicate, budget.Category, budget.Period))
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toBudgetResponse(budget))
}

func listBudgetsHandler(c *gin.Context) {
	var budgets []models.Budget
	if err := db.Where("user_id = ?", currentUserID(c)).Order("category").Find(&budgets).Error; err != nil {
		respondError(c, err)
		return
	}
	out := make([]budgetResponse, 0, len(budgets))
	for _, b := range budgets {
		out = append(out, toBudgetResponse(b))
	}
	c.JSON(http.StatusOK, out)
}

func getBudgetHandler(c *gin.Context) {
	var budget models.Budget
	if err := db.Where("id = ? AND user_id = ?", c.Param("id"), currentUserID(c)).First(&budget).Error; err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toBudgetResponse(budget))
}

func updateBudgetHandler(c *gin.Context) {
	var req budgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var budget models.Budget
	if err := db.Where("id = ? AND user_id = ?", c.Param("id"), currentUserID(c)).First(&budget).Error; err != nil {
		respondError(c, err)
		return
	}
	updated, err := budgetFromRequest(budget.UserID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	var other models.Budget
	if err := db.Where("user_id = ? AND category = ? AND period = ? AND id <> ?",
		budget.UserID, updated.Category, updated.Period, budget.ID).First(&other).Error; err == nil {
		respondError(c, fmt.Errorf("%w: budget for %s/%s already exists", errDuplicate, updated.Category, updated.Period))
		return
	}
	budget.Category = updated.Category
	budget.Period = updated.Period
	budget.LimitCents = updated.LimitCents
	budget.StartDate = updated.StartDate
	budget.EndDate = updated.EndDate
	budget.Rollover = updated.Rollover
	budget.Description = updated.Description
	if err := db.Save(&budget).Error; err != nil {
		if isUniqueConstraintError(err) {
			respondError(c, fmt.Errorf("%w: budget for %s/%s already exists", errDuplicate, budget.Category, budget.Period))
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toBudgetResponse(budget))
}

func deleteBudgetHandler(c *gin.Context) {
	res := db.Where("id = ? AND user_id = ?", c.Param("id"), currentUserID(c)).Delete(&models.Budget{})
	if res.Error != nil {
		respondError(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		respondError(c, errNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "budget deleted"})
}

// budgetStatusAllHandler recomputes the spend-vs-limit status of every
// budget the caller owns, as of now. Nothing is cached; a store failure
// fails the whole request rather than returning a partial list.
func budgetStatusAllHandler(c *gin.Context) {
	var budgets []models.Budget
	if err := db.Where("user_id = ?", currentUserID(c)).Order("category").Find(&budgets).Error; err != nil {
		respondError(c, err)
		return
	}
	now := time.Now()
	out := make([]budgetStatusResponse, 0, len(budgets))
	for _, b := range budgets {
		status, err := budgetStatus(b, now)
		if err != nil {
			respondError(c, err)
			return
		}
		out = append(out, status)
	}
	c.JSON(http.StatusOK, out)
}

// budgetStatus derives the status for one budget as of the given instant:
// resolve the period window, clip it to the budget's own date bounds, sum
// the matching expenses, then classify.
func budgetStatus(b models.Budget, asOf time.Time) (budgetStatusResponse, error) {
	win, err := budgetcalc.ResolvePeriodWindow(budgetcalc.Period(b.Period), asOf)
	if err != nil {
		return budgetStatusResponse{}, err
	}
	win = win.Clip(b.StartDate, b.EndDate)
	spent, err := sumExpenseCents(b.UserID, b.Category, win)
	if err != nil {
		return budgetStatusResponse{}, err
	}
	status := budgetcalc.ComputeStatus(b.Category, budgetcalc.Period(b.Period), b.LimitCents, spent)
	return budgetStatusResponse{
		BudgetID:              b.ID,
		Category:              status.Category,
		Period:                string(status.Period),
		TotalSpent:            amountFromCents(status.TotalSpentCents),
		Limit:                 amountFromCents(status.LimitCents),
		Remaining:             amountFromCents(status.RemainingCents),
		UtilizationPercentage: status.Utilization,
		StatusLabel:           status.Label,
	}, nil
}
