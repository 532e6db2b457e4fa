package passbook

import (
	"log"
	"sync"

	"github.com/mychits/customer-core/internal/session"
	"github.com/mychits/customer-core/pkg/mychits"
)

// SourceState classifies the outcome of one entity kind's fetch, so a
// confirmed-empty result stays distinguishable from one that is unknown
// because the fetch failed.
type SourceState string

const (
	SourceOK     SourceState = "ok"
	SourceEmpty  SourceState = "empty"
	SourceFailed SourceState = "failed"
)

// SourceStatus carries the outcome of one entity kind's fetch.
type SourceStatus struct {
	State SourceState `json:"state"`
	Error string      `json:"error,omitempty"`
}

// Overview is the combined snapshot of the user's financial entities. Each
// kind is fetched in isolation: a failed kind contributes an empty list and a
// failed status without aborting its siblings.
type Overview struct {
	Tickets []mychits.EnrollmentTicket `json:"tickets"`
	Reports []mychits.TicketReport     `json:"reports"`
	Loans   []mychits.LoanAccount      `json:"loans"`
	Pigmy   []mychits.PigmyAccount     `json:"pigmy"`
	Sources map[string]SourceStatus    `json:"sources"`
}

// Fetcher retrieves financial entity summaries from the upstream API.
type Fetcher struct {
	client *mychits.Client
}

// NewFetcher creates a Fetcher backed by the given upstream client.
func NewFetcher(client *mychits.Client) *Fetcher {
	return &Fetcher{client: client}
}

// FetchOverview fetches the user's chit enrollments, loans and pigmy accounts
// concurrently. An empty userID short-circuits with session.ErrNoSession
// before any network call is made.
func (f *Fetcher) FetchOverview(userID string) (*Overview, error) {
	if userID == "" {
		return nil, session.ErrNoSession
	}

	overview := &Overview{
		Tickets: []mychits.EnrollmentTicket{},
		Reports: []mychits.TicketReport{},
		Loans:   []mychits.LoanAccount{},
		Pigmy:   []mychits.PigmyAccount{},
		Sources: make(map[string]SourceStatus, 3),
	}

	var mu sync.Mutex
	var wg sync.WaitGroup
	record := func(kind string, status SourceStatus) {
		mu.Lock()
		overview.Sources[kind] = status
		mu.Unlock()
	}

	wg.Add(3)

	go func() {
		defer wg.Done()
		tickets, err := f.client.GetUserTickets(userID)
		if err != nil {
			log.Printf("FetchOverview: chit fetch failed for user %s: %v", userID, err)
			record("chits", SourceStatus{State: SourceFailed, Error: err.Error()})
			return
		}
		reports, err := f.client.GetUserTicketsReport(userID)
		if err != nil {
			log.Printf("FetchOverview: chit report fetch failed for user %s: %v", userID, err)
			record("chits", SourceStatus{State: SourceFailed, Error: err.Error()})
			return
		}
		valid := FilterValidTickets(tickets)
		if reports == nil {
			reports = []mychits.TicketReport{}
		}
		mu.Lock()
		overview.Tickets = valid
		overview.Reports = reports
		mu.Unlock()
		record("chits", statusFor(len(valid)))
	}()

	go func() {
		defer wg.Done()
		loans, err := f.client.GetBorrowerLoans(userID)
		if err != nil {
			log.Printf("FetchOverview: loan fetch failed for user %s: %v", userID, err)
			record("loans", SourceStatus{State: SourceFailed, Error: err.Error()})
			return
		}
		if loans == nil {
			loans = []mychits.LoanAccount{}
		}
		mu.Lock()
		overview.Loans = loans
		mu.Unlock()
		record("loans", statusFor(len(loans)))
	}()

	go func() {
		defer wg.Done()
		accounts, err := f.client.GetPigmyAccounts(userID)
		if err != nil {
			log.Printf("FetchOverview: pigmy fetch failed for user %s: %v", userID, err)
			record("pigmy", SourceStatus{State: SourceFailed, Error: err.Error()})
			return
		}
		if accounts == nil {
			accounts = []mychits.PigmyAccount{}
		}
		mu.Lock()
		overview.Pigmy = accounts
		mu.Unlock()
		record("pigmy", statusFor(len(accounts)))
	}()

	wg.Wait()
	return overview, nil
}

func statusFor(count int) SourceStatus {
	if count == 0 {
		return SourceStatus{State: SourceEmpty}
	}
	return SourceStatus{State: SourceOK}
}

// FilterValidTickets returns the tickets that still reference a chit group,
// preserving the original order. Enrollments whose group link was removed
// upstream carry a null group and are not shown.
func FilterValidTickets(tickets []mychits.EnrollmentTicket) []mychits.EnrollmentTicket {
	valid := make([]mychits.EnrollmentTicket, 0, len(tickets))
	for _, t := range tickets {
		if t.Group != nil {
			valid = append(valid, t)
		}
	}
	return valid
}
