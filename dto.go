package main

import (
	"fmt"
	"math"
	"time"

	"fintrack/models"
)

// Amounts cross the JSON boundary as decimal currency values and are held
// internally in minor units, so summation never accumulates float drift.

// centsFromAmount converts a decimal currency amount to minor units,
// rounding half away from zero.
func centsFromAmount(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func amountFromCents(cents int64) float64 {
	return float64(cents) / 100
}

// parseDate accepts RFC3339 timestamps or bare YYYY-MM-DD dates.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%w: invalid date %q, want RFC3339 or YYYY-MM-DD", errValidation, s)
}

type userResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token,omitempty"`
}

type expenseRequest struct {
	Title         string  `json:"title" binding:"required"`
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	Category      string  `json:"category" binding:"required"`
	Description   string  `json:"description"`
	Date          string  `json:"date"`
	PaymentMethod string  `json:"paymentMethod"`
	IsRecurring   bool    `json:"isRecurring"`
}

type expenseResponse struct {
	ID            uint      `json:"id"`
	Title         string    `json:"title"`
	Amount        float64   `json:"amount"`
	Category      string    `json:"category"`
	Description   string    `json:"description,omitempty"`
	Date          time.Time `json:"date"`
	PaymentMethod string    `json:"paymentMethod,omitempty"`
	IsRecurring   bool      `json:"isRecurring"`
	CreatedAt     time.Time `json:"createdAt"`
}

func toExpenseResponse(e models.Expense) expenseResponse {
	return expenseResponse{
		ID:            e.ID,
		Title:         e.Title,
		Amount:        amountFromCents(e.AmountCents),
		Category:      e.Category,
		Description:   e.Description,
		Date:          e.Date,
		PaymentMethod: e.PaymentMethod,
		IsRecurring:   e.IsRecurring,
		CreatedAt:     e.CreatedAt,
	}
}

type incomeRequest struct {
	Title              string  `json:"title" binding:"required"`
	Amount             float64 `json:"amount" binding:"required,gt=0"`
	Category           string  `json:"category" binding:"required"`
	Description        string  `json:"description"`
	Date               string  `json:"date"`
	Source             string  `json:"source"`
	IsRecurring        bool    `json:"isRecurring"`
	RecurringFrequency string  `json:"recurringFrequency"`
}

type incomeResponse struct {
	ID                 uint      `json:"id"`
	Title              string    `json:"title"`
	Amount             float64   `json:"amount"`
	Category           string    `json:"category"`
	Description        string    `json:"description,omitempty"`
	Date               time.Time `json:"date"`
	Source             string    `json:"source,omitempty"`
	IsRecurring        bool      `json:"isRecurring"`
	RecurringFrequency string    `json:"recurringFrequency"`
	CreatedAt          time.Time `json:"createdAt"`
}

func toIncomeResponse(i models.Income) incomeResponse {
	return incomeResponse{
		ID:                 i.ID,
		Title:              i.Title,
		Amount:             amountFromCents(i.AmountCents),
		Category:           i.Category,
		Description:        i.Description,
		Date:               i.Date,
		Source:             i.Source,
		IsRecurring:        i.IsRecurring,
		RecurringFrequency: i.RecurringFrequency,
		CreatedAt:          i.CreatedAt,
	}
}

type budgetRequest struct {
	Category    string  `json:"category" binding:"required"`
	Limit       float64 `json:"limit" binding:"required,gt=0"`
	Period      string  `json:"period" binding:"required"`
	StartDate   string  `json:"startDate" binding:"required"`
	EndDate     string  `json:"endDate"`
	Rollover    bool    `json:"rollover"`
	Description string  `json:"description"`
}

type budgetResponse struct {
	ID          uint       `json:"id"`
	Category    string     `json:"category"`
	Limit       float64    `json:"limit"`
	Period      string     `json:"period"`
	StartDate   time.Time  `json:"startDate"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	Rollover    bool       `json:"rollover"`
	Description string     `json:"description,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

func toBudgetResponse(b models.Budget) budgetResponse {
	return budgetResponse{
		ID:          b.ID,
		Category:    b.Category,
		Limit:       amountFromCents(b.LimitCents),
		Period:      b.Period,
		StartDate:   b.StartDate,
		EndDate:     b.EndDate,
		Rollover:    b.Rollover,
		Description: b.Description,
		CreatedAt:   b.CreatedAt,
	}
}

type budgetStatusResponse struct {
	BudgetID              uint    `json:"budgetId"`
	Category              string  `json:"category"`
	Period                string  `json:"period"`
	TotalSpent            float64 `json:"totalSpent"`
	Limit                 float64 `json:"limit"`
	Remaining             float64 `json:"remaining"`
	UtilizationPercentage float64 `json:"utilizationPercentage"`
	StatusLabel           string  `json:"statusLabel"`
}
