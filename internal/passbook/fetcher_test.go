package passbook

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mychits/customer-core/internal/session"
	"github.com/mychits/customer-core/pkg/mychits"
)

func TestFilterValidTickets(t *testing.T) {
	t.Run("keeps only tickets with a group, preserving order", func(t *testing.T) {
		tickets := []mychits.EnrollmentTicket{
			{ID: "a", Group: &mychits.GroupSummary{ID: "g1"}},
			{ID: "b", Group: nil},
			{ID: "c", Group: &mychits.GroupSummary{ID: "g2"}},
			{ID: "d", Group: nil},
		}

		valid := FilterValidTickets(tickets)
		require.Len(t, valid, 2)
		assert.Equal(t, "a", valid[0].ID)
		assert.Equal(t, "c", valid[1].ID)
	})

	t.Run("empty input yields empty output", func(t *testing.T) {
		assert.Empty(t, FilterValidTickets(nil))
	})
}

func TestFetchOverview(t *testing.T) {
	t.Run("empty user id short-circuits without a network call", func(t *testing.T) {
		called := false
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}))
		defer ts.Close()

		fetcher := NewFetcher(mychits.NewClient(ts.URL))
		overview, err := fetcher.FetchOverview("")

		assert.ErrorIs(t, err, session.ErrNoSession)
		assert.Nil(t, overview)
		assert.False(t, called)
	})

	t.Run("fetches all entity kinds", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/enroll/get-user-tickets/u1", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[
				{"_id": "t1", "tickets": 3, "group_id": {"_id": "g1", "group_name": "Silver", "group_install": "2500"}},
				{"_id": "t2", "tickets": 1, "group_id": null}
			]`))
		})
		mux.HandleFunc("/enroll/get-user-tickets-report/u1", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[
				{"enrollment": {"tickets": 3, "group_id": {"_id": "g1"}},
				 "payable": {"totalPayable": 10000},
				 "payments": {"totalPaidAmount": "5000"},
				 "profit": {"totalProfit": 200}}
			]`))
		})
		mux.HandleFunc("/loans/get-borrower-by-user-id/u1", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[{"_id": "l1", "loan_amount": 50000, "tenure": 365, "start_date": "2025-01-01", "status": "active"}]`))
		})
		mux.HandleFunc("/pigme/get-pigme-customer-by-user-id/u1", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[{"_id": "p1", "pigme_acc_number": "PG-001"}]`))
		})
		ts := httptest.NewServer(mux)
		defer ts.Close()

		fetcher := NewFetcher(mychits.NewClient(ts.URL))
		overview, err := fetcher.FetchOverview("u1")
		require.NoError(t, err)

		require.Len(t, overview.Tickets, 1) // null-group ticket filtered out
		assert.Equal(t, "t1", overview.Tickets[0].ID)
		require.Len(t, overview.Reports, 1)
		require.Len(t, overview.Loans, 1)
		assert.Equal(t, "l1", overview.Loans[0].ID)
		require.Len(t, overview.Pigmy, 1)
		assert.Equal(t, "PG-001", overview.Pigmy[0].AccountCode)

		assert.Equal(t, SourceOK, overview.Sources["chits"].State)
		assert.Equal(t, SourceOK, overview.Sources["loans"].State)
		assert.Equal(t, SourceOK, overview.Sources["pigmy"].State)
	})

	t.Run("one failed kind does not abort the others", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/enroll/get-user-tickets/u1", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[{"_id": "t1", "tickets": 3, "group_id": {"_id": "g1"}}]`))
		})
		mux.HandleFunc("/enroll/get-user-tickets-report/u1", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[{"payments": {"totalPaidAmount": 5000}}]`))
		})
		mux.HandleFunc("/loans/get-borrower-by-user-id/u1", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"message": "loans service down"}`, http.StatusInternalServerError)
		})
		mux.HandleFunc("/pigme/get-pigme-customer-by-user-id/u1", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[{"_id": "p1", "pigme_acc_number": "PG-001"}]`))
		})
		ts := httptest.NewServer(mux)
		defer ts.Close()

		fetcher := NewFetcher(mychits.NewClient(ts.URL))
		overview, err := fetcher.FetchOverview("u1")
		require.NoError(t, err)

		assert.Equal(t, SourceFailed, overview.Sources["loans"].State)
		assert.Contains(t, overview.Sources["loans"].Error, "loans service down")
		assert.Empty(t, overview.Loans)

		assert.Equal(t, SourceOK, overview.Sources["chits"].State)
		assert.Equal(t, SourceOK, overview.Sources["pigmy"].State)
		require.Len(t, overview.Reports, 1)

		totals := Reduce(overview.Reports)
		assert.Equal(t, "5000", totals.TotalPaid.String())
	})

	t.Run("no data at all reports empty, not failed", func(t *testing.T) {
		mux := http.NewServeMux()
		empty := func(w http.ResponseWriter, r *http.Request) { w.Write([]byte(`[]`)) }
		mux.HandleFunc("/enroll/get-user-tickets/u1", empty)
		mux.HandleFunc("/enroll/get-user-tickets-report/u1", empty)
		mux.HandleFunc("/loans/get-borrower-by-user-id/u1", empty)
		mux.HandleFunc("/pigme/get-pigme-customer-by-user-id/u1", empty)
		ts := httptest.NewServer(mux)
		defer ts.Close()

		fetcher := NewFetcher(mychits.NewClient(ts.URL))
		overview, err := fetcher.FetchOverview("u1")
		require.NoError(t, err)

		assert.Equal(t, SourceEmpty, overview.Sources["chits"].State)
		assert.Equal(t, SourceEmpty, overview.Sources["loans"].State)
		assert.Equal(t, SourceEmpty, overview.Sources["pigmy"].State)
	})
}
