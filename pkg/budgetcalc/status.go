package budgetcalc

// Status labels, ordered by severity.
const (
	LabelUnder = "Under Budget"
	LabelNear  = "Near Budget"
	LabelAt    = "At Budget"
	LabelOver  = "Over Budget"
)

// Status is the derived spend-vs-limit picture for one budget. Monetary
// fields are in minor currency units.
type Status struct {
	Category        string
	Period          Period
	TotalSpentCents int64
	LimitCents      int64
	RemainingCents  int64
	Utilization     float64
	Label           string
}

// ComputeStatus combines a budget limit with the summed spend for its
// active window. Remaining may go negative. Utilization is defined as 0
// when the limit is 0 so a zero-limit budget never divides by zero.
func ComputeStatus(category string, period Period, limitCents, spentCents int64) Status {
	s := Status{
		Category:        category,
		Period:          period,
		TotalSpentCents: spentCents,
		LimitCents:      limitCents,
		RemainingCents:  limitCents - spentCents,
		Label:           classify(spentCents, limitCents),
	}
	if limitCents > 0 {
		s.Utilization = float64(spentCents) / float64(limitCents) * 100
	}
	return s
}

// classify applies the label thresholds with exact integer comparisons:
// spent above the limit is over, exactly the limit is at, 80% of the limit
// or more is near, anything below that is under. A zero limit is over as
// soon as anything is spent.
func classify(spentCents, limitCents int64) string {
	if limitCents == 0 {
		if spentCents > 0 {
			return LabelOver
		}
		return LabelUnder
	}
	switch {
	case spentCents > limitCents:
		return LabelOver
	case spentCents == limitCents:
		return LabelAt
	case spentCents*5 >= limitCents*4:
		return LabelNear
	default:
		return LabelUnder
	}
}
