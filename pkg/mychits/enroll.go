package mychits

import (
	"fmt"
	"net/url"
)

// GetUserTickets fetches every enrollment ticket the user holds across chit
// groups. Entries whose group link was removed upstream come back with a null
// group reference and must be filtered by the caller.
func (c *Client) GetUserTickets(userID string) ([]EnrollmentTicket, error) {
	var tickets []EnrollmentTicket
	path := fmt.Sprintf("/enroll/get-user-tickets/%s", url.PathEscape(userID))
	if err := c.postJSON(path, nil, &tickets); err != nil {
		return nil, fmt.Errorf("GetUserTickets: %w", err)
	}
	return tickets, nil
}

// GetUserTicketsReport fetches the server-computed aggregate report, one entry
// per group+ticket pair the user is enrolled in.
func (c *Client) GetUserTicketsReport(userID string) ([]TicketReport, error) {
	var reports []TicketReport
	path := fmt.Sprintf("/enroll/get-user-tickets-report/%s", url.PathEscape(userID))
	if err := c.postJSON(path, nil, &reports); err != nil {
		return nil, fmt.Errorf("GetUserTicketsReport: %w", err)
	}
	return reports, nil
}
