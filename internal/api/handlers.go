package api

import (
	"net/http"
	"strconv"
	"strings"
)

func (s *Server) handleListListings(w http.ResponseWriter, r *http.Request) {
	limit, offset := parsePagination(r, 50)

	q := r.URL.Query()
	category := q.Get("category")
	search := strings.ToLower(q.Get("q"))

	matched := make([]Listing, 0, len(s.listings))
	for _, l := range s.listings {
		if category != "" && l.Category != category {
			continue
		}
		if search != "" {
			if l.Title == nil || !strings.Contains(strings.ToLower(*l.Title), search) {
				continue
			}
		}
		matched = append(matched, l)
	}

	total := len(matched)
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"items":  matched[offset:end],
		"limit":  limit,
		"offset": offset,
		"total":  total,
	})
}

func parsePagination(r *http.Request, defaultLimit int) (int, int) {
	q := r.URL.Query()
	limit := defaultLimit
	offset := 0

	if v := q.Get("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}

	if v := q.Get("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}

	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > 500 {
		limit = 500
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
