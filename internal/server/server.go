package server

import (
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/mychits/customer-core/internal/config"
	"github.com/mychits/customer-core/internal/passbook"
	"github.com/mychits/customer-core/internal/session"
	"github.com/mychits/customer-core/pkg/mychits"
)

// DocsPerPage is the fixed page size of the loan/pigmy payment logs.
const DocsPerPage = 7

// pagerWindow is how many page numbers to show on each side of the current
// page in the pager display sequence.
const pagerWindow = 1

// Server exposes the local REST API consumed by the UI shell.
type Server struct {
	cfg      *config.Config
	sessions *session.Store
	client   *mychits.Client
	fetcher  *passbook.Fetcher

	// Pager selection state. The total page count is refetched only when the
	// selected loan changes, not on every page turn.
	mu             sync.Mutex
	selectedLoanID string
	loanTotalPages int
}

// New creates a Server backed by the given upstream client.
func New(cfg *config.Config, client *mychits.Client) *Server {
	return &Server{
		cfg:      cfg,
		sessions: session.NewStore(),
		client:   client,
		fetcher:  passbook.NewFetcher(client),
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.Default()

	r.GET("/healthz", s.health)

	api := r.Group("/api")
	{
		api.POST("/session", s.login)
		api.GET("/session", s.getSession)
		api.DELETE("/session", s.logout)

		api.GET("/passbook", s.getPassbook)

		api.GET("/loans", s.getLoans)
		api.GET("/loans/:loanID/summary", s.getLoanSummary)
		api.GET("/loans/:loanID/payments", s.getLoanPayments)

		api.GET("/pigmy", s.getPigmy)

		api.GET("/rewards", s.getRewards)
		api.POST("/rewards/redeem", s.redeemRewards)

		api.POST("/payments/initiate", s.initiatePayment)
	}

	return r
}
