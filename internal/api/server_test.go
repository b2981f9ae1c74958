package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/baxromumarov/payplan/internal/payplan"
)

func testRecords() []payplan.NamedRecord {
	return []payplan.NamedRecord{
		{
			JobTitle:      "<a href='/jobs/a100'>Accountant I</a>",
			JobID:         "A100",
			JobCategory:   "Finance",
			EffectiveDate: "09/01/2025",
			AnnualRange:   "$40,000.00 - $50,000.00",
			MonthlyRange:  "$3,333.33 - $4,166.67",
		},
		{
			JobTitle:      "<a href='/jobs/a101'>Accountant II</a>",
			JobID:         "A101",
			JobCategory:   "Finance",
			EffectiveDate: "09/01/2025",
			AnnualRange:   "$50,000.00 - $60,000.00",
			MonthlyRange:  "$4,166.67 - $5,000.00",
		},
		{
			JobTitle:      "<a href='/jobs/b200'>Registrar</a>",
			JobID:         "B200",
			JobCategory:   "Administration",
			EffectiveDate: "09/01/2025",
			AnnualRange:   "N/A",
			MonthlyRange:  "N/A",
		},
	}
}

type listResponse struct {
	Items  []Listing `json:"items"`
	Limit  int       `json:"limit"`
	Offset int       `json:"offset"`
	Total  int       `json:"total"`
}

func getListings(t *testing.T, srv *Server, target string) listResponse {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp listResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestHealth(t *testing.T) {
	srv := NewServer(nil)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "OK", rec.Body.String())
}

func TestListListings(t *testing.T) {
	srv := NewServer(testRecords())

	resp := getListings(t, srv, "/listings")
	require.Equal(t, 3, resp.Total)
	require.Len(t, resp.Items, 3)
	require.NotNil(t, resp.Items[0].Title)
	require.Equal(t, "Accountant I", *resp.Items[0].Title)
	require.Equal(t, 40000.0, *resp.Items[0].AnnualMin)

	// Unparseable salaries serialize as nulls, not zeros.
	require.Nil(t, resp.Items[2].AnnualMin)
}

func TestListListingsFilters(t *testing.T) {
	srv := NewServer(testRecords())

	byCategory := getListings(t, srv, "/listings?category=Administration")
	require.Equal(t, 1, byCategory.Total)
	require.Equal(t, "B200", byCategory.Items[0].JobID)

	bySearch := getListings(t, srv, "/listings?q=accountant")
	require.Equal(t, 2, bySearch.Total)
}

func TestListListingsPagination(t *testing.T) {
	srv := NewServer(testRecords())

	page := getListings(t, srv, "/listings?limit=2&offset=2")
	require.Equal(t, 3, page.Total)
	require.Len(t, page.Items, 1)
	require.Equal(t, "B200", page.Items[0].JobID)

	past := getListings(t, srv, "/listings?offset=10")
	require.Equal(t, 3, past.Total)
	require.Empty(t, past.Items)
}
