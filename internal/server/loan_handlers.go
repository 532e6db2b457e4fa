package server

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mychits/customer-core/internal/format"
	"github.com/mychits/customer-core/internal/models"
	"github.com/mychits/customer-core/internal/pagination"
)

func (s *Server) getLoans(c *gin.Context) {
	userID, ok := s.currentUser(c)
	if !ok {
		return
	}

	loans, err := s.client.GetBorrowerLoans(userID)
	if err != nil {
		log.Printf("Error fetching loans for user %s: %v", userID, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Error fetching loans"})
		return
	}

	views := make([]models.LoanView, 0, len(loans))
	for _, l := range loans {
		views = append(views, models.NewLoanView(l))
	}
	c.JSON(http.StatusOK, views)
}

// getLoanSummary serves the paid-so-far figure for one loan.
func (s *Server) getLoanSummary(c *gin.Context) {
	userID, ok := s.currentUser(c)
	if !ok {
		return
	}

	loanID := c.Param("loanID")
	summary, err := s.client.GetLoanPaymentSummary(userID, loanID)
	if err != nil {
		log.Printf("Error fetching payment summary for loan %s: %v", loanID, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Error fetching loan summary"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total_paid": format.NullAmount(summary.TotalPaidAmount),
	})
}

// getLoanPayments serves one page of a loan's payment log. The total page
// count is refetched only when the selected loan changes; turning pages on
// the same loan reuses the remembered count and only refetches page content.
func (s *Server) getLoanPayments(c *gin.Context) {
	userID, ok := s.currentUser(c)
	if !ok {
		return
	}

	loanID := c.Param("loanID")
	page := 1
	if raw := c.Query("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "page must be a number"})
			return
		}
		page = parsed
	}

	totalPages, err := s.totalPagesFor(userID, loanID)
	if err != nil {
		log.Printf("Error fetching total pages for loan %s: %v", loanID, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Error fetching payment pages"})
		return
	}

	state := pagination.State{CurrentPage: page, TotalPages: totalPages}
	state.Clamp()

	records, err := s.client.GetLoanPayments(userID, loanID, DocsPerPage, state.CurrentPage)
	if err != nil {
		log.Printf("Error fetching payments page %d for loan %s: %v", state.CurrentPage, loanID, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Error fetching payments"})
		return
	}

	view := models.LoanPaymentsView{
		Records: make([]models.PaymentView, 0, len(records)),
		State:   state,
		Window:  pagination.Window(state.CurrentPage, state.TotalPages, pagerWindow),
	}
	for _, r := range records {
		view.Records = append(view.Records, models.NewPaymentView(r))
	}
	c.JSON(http.StatusOK, view)
}

// resetPager forgets the remembered loan selection. Called on login and
// logout so one session's page count never leaks into the next.
func (s *Server) resetPager() {
	s.mu.Lock()
	s.selectedLoanID = ""
	s.loanTotalPages = 0
	s.mu.Unlock()
}

// totalPagesFor returns the remembered page count for the loan, fetching it
// from upstream when the selection changed.
func (s *Server) totalPagesFor(userID, loanID string) (int, error) {
	s.mu.Lock()
	if s.selectedLoanID == loanID {
		total := s.loanTotalPages
		s.mu.Unlock()
		return total, nil
	}
	s.mu.Unlock()

	total, err := s.client.GetLoanTotalPages(userID, loanID, DocsPerPage)
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	s.selectedLoanID = loanID
	s.loanTotalPages = total
	s.mu.Unlock()
	return total, nil
}
