package models

import (
	"github.com/mychits/customer-core/internal/format"
	"github.com/mychits/customer-core/internal/pagination"
	"github.com/mychits/customer-core/internal/passbook"
	"github.com/mychits/customer-core/pkg/mychits"
)

// View models returned by the local REST surface. Amounts are pre-formatted
// with Indian digit grouping and dates are rendered for display, so the UI
// shell never touches raw wire values.

// SessionView describes the current app session.
type SessionView struct {
	UserID string `json:"user_id,omitempty"`
	Active bool   `json:"active"`
}

// TotalsView is the display form of the reduced passbook totals.
type TotalsView struct {
	TotalToBePaid string `json:"total_to_be_paid"`
	TotalPaid     string `json:"total_paid"`
	TotalProfit   string `json:"total_profit"`
}

// NewTotalsView formats reduced totals for display.
func NewTotalsView(t passbook.Totals) TotalsView {
	return TotalsView{
		TotalToBePaid: format.Amount(t.TotalToBePaid),
		TotalPaid:     format.Amount(t.TotalPaid),
		TotalProfit:   format.Amount(t.TotalProfit),
	}
}

// ChitCardView is one enrolled-group card on the passbook screen.
type ChitCardView struct {
	GroupID        string `json:"group_id"`
	GroupName      string `json:"group_name"`
	TicketNumber   int    `json:"ticket_number"`
	GroupValue     string `json:"group_value"`
	Installment    string `json:"installment"`
	DurationMonths int    `json:"duration_months"`
	StartDate      string `json:"start_date"`
	EndDate        string `json:"end_date"`
	TotalPaid      string `json:"total_paid"`
	TotalProfit    string `json:"total_profit"`
}

// NewChitCardView builds a card for one valid ticket, pulling the paid/profit
// figures from the per-card stats map when present.
func NewChitCardView(t mychits.EnrollmentTicket, stats map[string]passbook.CardStat) ChitCardView {
	card := ChitCardView{
		GroupID:        t.Group.ID,
		GroupName:      t.Group.Name,
		TicketNumber:   t.Ticket,
		GroupValue:     format.NullAmount(t.Group.Value),
		Installment:    format.NullAmount(t.Group.Install),
		DurationMonths: t.Group.DurationMonth,
		StartDate:      format.DisplayDate(t.Group.StartDate, format.KindDMY),
		EndDate:        format.DisplayDate(t.Group.EndDate, format.KindDMY),
		TotalPaid:      "0",
		TotalProfit:    "0",
	}
	if stat, ok := stats[passbook.CardKey(t.Group.ID, t.Ticket)]; ok {
		card.TotalPaid = format.Amount(stat.TotalPaid)
		card.TotalProfit = format.Amount(stat.TotalProfit)
	}
	return card
}

// LoanView is one loan account row.
type LoanView struct {
	ID         string `json:"id"`
	Amount     string `json:"amount"`
	TenureDays int    `json:"tenure_days"`
	StartDate  string `json:"start_date"`
	Status     string `json:"status"`
}

// NewLoanView formats a loan account for display.
func NewLoanView(l mychits.LoanAccount) LoanView {
	return LoanView{
		ID:         l.ID,
		Amount:     format.NullAmount(l.Amount),
		TenureDays: l.TenureDays,
		StartDate:  format.DisplayDate(l.StartDate, format.KindISO),
		Status:     l.Status,
	}
}

// PigmyView is one pigmy account row.
type PigmyView struct {
	ID          string `json:"id"`
	AccountCode string `json:"account_code"`
}

// PaymentView is one payment log row.
type PaymentView struct {
	ID            string `json:"id"`
	ReceiptNumber string `json:"receipt_number"`
	Amount        string `json:"amount"`
	PayDate       string `json:"pay_date"`
}

// NewPaymentView formats a payment record for display.
func NewPaymentView(p mychits.PaymentRecord) PaymentView {
	return PaymentView{
		ID:            p.ID,
		ReceiptNumber: p.ReceiptNumber,
		Amount:        format.NullAmount(p.Amount),
		PayDate:       format.DisplayDate(p.PayDate, format.KindISO),
	}
}

// PassbookView is the full passbook screen payload.
type PassbookView struct {
	Totals  TotalsView                       `json:"totals"`
	Cards   []ChitCardView                   `json:"cards"`
	Loans   []LoanView                       `json:"loans"`
	Pigmy   []PigmyView                      `json:"pigmy"`
	Sources map[string]passbook.SourceStatus `json:"sources"`
}

// LoanPaymentsView is one page of a loan's payment log plus pager state.
type LoanPaymentsView struct {
	Records []PaymentView     `json:"records"`
	State   pagination.State  `json:"pagination"`
	Window  []pagination.Item `json:"window"`
}
