package mychits

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
)

// GetBorrowerLoans fetches every loan account held by the user.
func (c *Client) GetBorrowerLoans(userID string) ([]LoanAccount, error) {
	var loans []LoanAccount
	path := fmt.Sprintf("/loans/get-borrower-by-user-id/%s", url.PathEscape(userID))
	if err := c.getJSON(path, &loans); err != nil {
		return nil, fmt.Errorf("GetBorrowerLoans: %w", err)
	}
	return loans, nil
}

// GetLoanPaymentSummary fetches the paid-so-far summary for one loan. The
// endpoint returns either a bare object or a single-element array depending on
// the upstream version; both shapes are accepted. An empty array yields a
// zero summary.
func (c *Client) GetLoanPaymentSummary(userID, loanID string) (LoanSummary, error) {
	var raw json.RawMessage
	path := fmt.Sprintf("/payment/user/%s/loan/%s/summary",
		url.PathEscape(userID), url.PathEscape(loanID))
	if err := c.getJSON(path, &raw); err != nil {
		return LoanSummary{}, fmt.Errorf("GetLoanPaymentSummary: %w", err)
	}

	trimmed := strings.TrimSpace(string(raw))
	if strings.HasPrefix(trimmed, "[") {
		var summaries []LoanSummary
		if err := json.Unmarshal(raw, &summaries); err != nil {
			return LoanSummary{}, fmt.Errorf("GetLoanPaymentSummary: failed to unmarshal array response: %w", err)
		}
		if len(summaries) == 0 {
			return LoanSummary{}, nil
		}
		return summaries[0], nil
	}

	var summary LoanSummary
	if err := json.Unmarshal(raw, &summary); err != nil {
		return LoanSummary{}, fmt.Errorf("GetLoanPaymentSummary: failed to unmarshal response: %w", err)
	}
	return summary, nil
}

// GetLoanPayments fetches one page of the loan's payment log. Pages are
// 1-indexed and hold perPage records.
func (c *Client) GetLoanPayments(userID, loanID string, perPage, page int) ([]PaymentRecord, error) {
	var records []PaymentRecord
	path := fmt.Sprintf("/payment/loan/%s/user/%s/total-docs/%d/page/%d",
		url.PathEscape(loanID), url.PathEscape(userID), perPage, page)
	if err := c.getJSON(path, &records); err != nil {
		return nil, fmt.Errorf("GetLoanPayments: %w", err)
	}
	return records, nil
}

// GetLoanTotalPages fetches the page count of the loan's payment log for the
// given page size.
func (c *Client) GetLoanTotalPages(userID, loanID string, perPage int) (int, error) {
	var result struct {
		TotalPages int `json:"totalPages"`
	}
	path := fmt.Sprintf("/payment/loan/totalPages/user/%s/loan/%s/total-docs/%d",
		url.PathEscape(userID), url.PathEscape(loanID), perPage)
	if err := c.getJSON(path, &result); err != nil {
		return 0, fmt.Errorf("GetLoanTotalPages: %w", err)
	}
	return result.TotalPages, nil
}
