package passbook

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mychits/customer-core/pkg/mychits"
)

// Totals are the reduced figures across every group+ticket report. All three
// are plain sums; a missing or null field contributes zero.
type Totals struct {
	TotalToBePaid decimal.Decimal `json:"total_to_be_paid"`
	TotalPaid     decimal.Decimal `json:"total_paid"`
	TotalProfit   decimal.Decimal `json:"total_profit"`
}

// CardStat holds the per-card figures for one group+ticket pair.
type CardStat struct {
	TotalPaid   decimal.Decimal `json:"total_paid"`
	TotalProfit decimal.Decimal `json:"total_profit"`
}

// Reduce sums the per-group reports into scalar totals. The per-entity
// to-be-paid figure is the payable total plus the group installment truncated
// to a whole amount, each term independently coalesced to zero when missing.
// Reduce is a pure function: the same input always yields the same output.
func Reduce(reports []mychits.TicketReport) Totals {
	totals := Totals{
		TotalToBePaid: decimal.Zero,
		TotalPaid:     decimal.Zero,
		TotalProfit:   decimal.Zero,
	}
	for _, r := range reports {
		var payable, install, paid, profit decimal.Decimal
		if r.Payable != nil {
			payable = orZero(r.Payable.TotalPayable)
		}
		if r.Enrollment != nil && r.Enrollment.Group != nil {
			install = orZero(r.Enrollment.Group.Install).Truncate(0)
		}
		if r.Payments != nil {
			paid = orZero(r.Payments.TotalPaidAmount)
		}
		if r.Profit != nil {
			profit = orZero(r.Profit.TotalProfit)
		}
		totals.TotalToBePaid = totals.TotalToBePaid.Add(payable).Add(install)
		totals.TotalPaid = totals.TotalPaid.Add(paid)
		totals.TotalProfit = totals.TotalProfit.Add(profit)
	}
	return totals
}

// CardStats builds the per-card lookup in a single pass, keyed
// "<groupID>-<ticketNumber>". Reports without a group reference produce no
// entry.
func CardStats(reports []mychits.TicketReport) map[string]CardStat {
	stats := make(map[string]CardStat, len(reports))
	for _, r := range reports {
		if r.Enrollment == nil || r.Enrollment.Group == nil {
			continue
		}
		key := CardKey(r.Enrollment.Group.ID, r.Enrollment.Ticket)
		stat := CardStat{TotalPaid: decimal.Zero, TotalProfit: decimal.Zero}
		if r.Payments != nil {
			stat.TotalPaid = orZero(r.Payments.TotalPaidAmount)
		}
		if r.Profit != nil {
			stat.TotalProfit = orZero(r.Profit.TotalProfit)
		}
		stats[key] = stat
	}
	return stats
}

// CardKey is the per-card map key for one group+ticket pair.
func CardKey(groupID string, ticket int) string {
	return fmt.Sprintf("%s-%d", groupID, ticket)
}

func orZero(n decimal.NullDecimal) decimal.Decimal {
	if !n.Valid {
		return decimal.Zero
	}
	return n.Decimal
}
