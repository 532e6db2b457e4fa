package server

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mychits/customer-core/internal/models"
	"github.com/mychits/customer-core/internal/passbook"
)

// getPassbook serves the unified passbook view: chit cards, loans and pigmy
// accounts fetched in isolation, plus the reduced totals. A failed entity
// kind shows up in sources as failed with an empty list; the totals cover
// whatever data did arrive.
func (s *Server) getPassbook(c *gin.Context) {
	userID, ok := s.currentUser(c)
	if !ok {
		return
	}

	overview, err := s.fetcher.FetchOverview(userID)
	if err != nil {
		log.Printf("Error fetching passbook overview for user %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching passbook"})
		return
	}

	totals := passbook.Reduce(overview.Reports)
	stats := passbook.CardStats(overview.Reports)

	view := models.PassbookView{
		Totals:  models.NewTotalsView(totals),
		Cards:   make([]models.ChitCardView, 0, len(overview.Tickets)),
		Loans:   make([]models.LoanView, 0, len(overview.Loans)),
		Pigmy:   make([]models.PigmyView, 0, len(overview.Pigmy)),
		Sources: overview.Sources,
	}
	for _, t := range overview.Tickets {
		view.Cards = append(view.Cards, models.NewChitCardView(t, stats))
	}
	for _, l := range overview.Loans {
		view.Loans = append(view.Loans, models.NewLoanView(l))
	}
	for _, p := range overview.Pigmy {
		view.Pigmy = append(view.Pigmy, models.PigmyView{ID: p.ID, AccountCode: p.AccountCode})
	}

	c.JSON(http.StatusOK, view)
}

func (s *Server) getPigmy(c *gin.Context) {
	userID, ok := s.currentUser(c)
	if !ok {
		return
	}

	accounts, err := s.client.GetPigmyAccounts(userID)
	if err != nil {
		log.Printf("Error fetching pigmy accounts for user %s: %v", userID, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Error fetching pigmy accounts"})
		return
	}

	views := make([]models.PigmyView, 0, len(accounts))
	for _, a := range accounts {
		views = append(views, models.PigmyView{ID: a.ID, AccountCode: a.AccountCode})
	}
	c.JSON(http.StatusOK, views)
}
