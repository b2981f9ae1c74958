package fetch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func payPlanHandler(total int, starts, draws *[]string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		length, _ := strconv.Atoi(q.Get("length"))
		start, _ := strconv.Atoi(q.Get("start"))

		if length != 1 {
			*starts = append(*starts, q.Get("start"))
			*draws = append(*draws, q.Get("draw"))
		}

		count := length
		if start+count > total {
			count = total - start
		}
		rows := make([][]string, 0, count)
		for i := 0; i < count; i++ {
			n := start + i
			rows = append(rows, []string{
				fmt.Sprintf("<a href='/jobs/%d'>Job %d</a>", n, n),
				fmt.Sprintf("J%04d", n),
				"General",
				"09/01/2025",
				"$40,000.00 - $50,000.00",
				"$3,333.33 - $4,166.67",
			})
		}
		json.NewEncoder(w).Encode(map[string]any{
			"recordsTotal": total,
			"data":         rows,
		})
	}
}

func TestFetchAllPaginatesInOrder(t *testing.T) {
	var starts, draws []string
	srv := httptest.NewServer(payPlanHandler(250, &starts, &draws))
	defer srv.Close()

	c := NewClient(srv.URL, 100, time.Second)
	records, err := c.FetchAll(context.Background())
	require.NoError(t, err)

	require.Len(t, records, 250)
	require.Equal(t, []string{"0", "100", "200"}, starts)
	require.Equal(t, []string{"0", "1", "2"}, draws)

	// Concatenation preserves request order.
	require.Equal(t, "J0000", records[0][1])
	require.Equal(t, "J0100", records[100][1])
	require.Equal(t, "J0249", records[249][1])
}

func TestRequestCarriesDataTablesParams(t *testing.T) {
	var seen map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.URL.Query()
		json.NewEncoder(w).Encode(map[string]any{"recordsTotal": 0, "data": [][]string{}})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 100, time.Second)
	_, err := c.Probe(context.Background())
	require.NoError(t, err)

	require.Equal(t, "1", seen["length"][0])
	require.Equal(t, "0", seen["order[0][column]"][0])
	require.Equal(t, "asc", seen["order[0][dir]"][0])
	require.Equal(t, "true", seen["columns[0][orderable]"][0])
	require.Equal(t, "false", seen["columns[4][orderable]"][0])
	require.Equal(t, "false", seen["columns[5][orderable]"][0])
	require.Equal(t, "false", seen["search[regex]"][0])
}

func TestProbeMissingRecordsTotal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"data": [][]string{}})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 100, time.Second)
	_, err := c.FetchAll(context.Background())

	var pe *ProtocolError
	require.ErrorAs(t, err, &pe)
	require.Equal(t, "recordsTotal", pe.Missing)
	require.Contains(t, pe.Body, "data")
}

func TestFetchAllRejectsShortResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Advertise 5 records but never return any.
		json.NewEncoder(w).Encode(map[string]any{"recordsTotal": 5, "data": [][]string{}})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 100, time.Second)
	_, err := c.FetchAll(context.Background())

	var fe *FetchError
	require.ErrorAs(t, err, &fe)
	require.Contains(t, fe.Error(), "advertised 5")
}

func TestFetchAllSurfacesStatusErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 100, time.Second)
	_, err := c.FetchAll(context.Background())

	var fe *FetchError
	require.ErrorAs(t, err, &fe)
	require.Equal(t, http.StatusBadGateway, fe.Status)
}

func TestFetchAllHonorsCancellation(t *testing.T) {
	var starts, draws []string
	srv := httptest.NewServer(payPlanHandler(250, &starts, &draws))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewClient(srv.URL, 100, time.Second)
	_, err := c.FetchAll(ctx)
	require.Error(t, err)
	require.True(t, errors.Is(err, context.Canceled))
}
