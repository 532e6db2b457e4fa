package mychits

import (
	"github.com/shopspring/decimal"
)

// The upstream API transmits amounts as JSON numbers or numeric strings
// interchangeably; decimal.NullDecimal accepts both and records nulls.

// GroupSummary is the read-only projection of a chit group embedded in
// enrollment responses. StartDate and EndDate are dash-delimited DD-MM-YYYY
// strings; see format.KindDMY.
type GroupSummary struct {
	ID            string              `json:"_id"`
	Name          string              `json:"group_name"`
	Value         decimal.NullDecimal `json:"group_value"`
	Install       decimal.NullDecimal `json:"group_install"`
	DurationMonth int                 `json:"group_duration"`
	StartDate     string              `json:"start_date"`
	EndDate       string              `json:"end_date"`
}

// EnrollmentTicket represents one ticket a user holds in a chit group.
// Group is null for enrollments whose group link was removed upstream; such
// entries are filtered out before display.
type EnrollmentTicket struct {
	ID     string        `json:"_id"`
	Ticket int           `json:"tickets"`
	Group  *GroupSummary `json:"group_id"`
}

// ReportEnrollment is the enrollment portion of a ticket report.
type ReportEnrollment struct {
	Ticket int           `json:"tickets"`
	Group  *GroupSummary `json:"group_id"`
}

// ReportPayable carries the server-computed outstanding figures for one
// group+ticket pair.
type ReportPayable struct {
	TotalPayable  decimal.NullDecimal `json:"totalPayable"`
	PenaltyAmount decimal.NullDecimal `json:"penaltyAmount"`
}

// ReportPayments carries the server-computed paid total.
type ReportPayments struct {
	TotalPaidAmount decimal.NullDecimal `json:"totalPaidAmount"`
}

// ReportProfit carries the server-computed dividend/profit total.
type ReportProfit struct {
	TotalProfit decimal.NullDecimal `json:"totalProfit"`
}

// TicketReport is one entry of the per-group aggregate report. Any of the
// nested sections may be missing; the client never recomputes these from raw
// transactions, only sums them across groups.
type TicketReport struct {
	Enrollment *ReportEnrollment `json:"enrollment"`
	Payable    *ReportPayable    `json:"payable"`
	Payments   *ReportPayments   `json:"payments"`
	Profit     *ReportProfit     `json:"profit"`
}

// LoanAccount represents a borrower's loan. StartDate is an ISO date string.
type LoanAccount struct {
	ID         string              `json:"_id"`
	Amount     decimal.NullDecimal `json:"loan_amount"`
	TenureDays int                 `json:"tenure"`
	StartDate  string              `json:"start_date"`
	Status     string              `json:"status"`
}

// LoanSummary is the payment summary for one loan.
type LoanSummary struct {
	TotalPaidAmount decimal.NullDecimal `json:"totalPaidAmount"`
}

// PigmyAccount represents a pigmy (daily deposit) account.
type PigmyAccount struct {
	ID          string `json:"_id"`
	AccountCode string `json:"pigme_acc_number"`
}

// PaymentRecord is one row of a paginated payment log. PayDate is an ISO
// date string.
type PaymentRecord struct {
	ID            string              `json:"_id"`
	ReceiptNumber string              `json:"receipt_no"`
	Amount        decimal.NullDecimal `json:"amount"`
	PayDate       string              `json:"pay_date"`
}
