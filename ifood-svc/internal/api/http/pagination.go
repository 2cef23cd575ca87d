package httpapi

import (
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"ifood/ifood-svc/internal/domain"
)

// parsePageRequest reads page, size and sort. Bad or missing numbers fall
// back to the defaults, size is capped at domain.MaxPageSize and page at the
// last index whose offset still fits in an int.
func parsePageRequest(q url.Values) domain.PageRequest {
	page := domain.PageRequest{Page: 0, Size: domain.DefaultPageSize}
	if v, err := strconv.Atoi(q.Get("size")); err == nil && v > 0 {
		page.Size = min(v, domain.MaxPageSize)
	}
	if v, err := strconv.Atoi(q.Get("page")); err == nil && v >= 0 {
		page.Page = min(v, math.MaxInt/page.Size)
	}
	page.Sort = parseSort(q["sort"])
	return page
}

// parseSort accepts "prop", "prop,desc" and "a,b,asc" forms.
func parseSort(values []string) []domain.SortOrder {
	var orders []domain.SortOrder
	for _, value := range values {
		parts := strings.Split(value, ",")
		descending := false
		switch strings.ToLower(strings.TrimSpace(parts[len(parts)-1])) {
		case "desc":
			descending = true
			parts = parts[:len(parts)-1]
		case "asc":
			parts = parts[:len(parts)-1]
		}
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				orders = append(orders, domain.SortOrder{Property: p, Descending: descending})
			}
		}
	}
	return orders
}

func writePaginationHeaders(w http.ResponseWriter, r *http.Request, page domain.PageRequest, total int64) {
	w.Header().Set("X-Total-Count", strconv.FormatInt(total, 10))

	totalPages := page.TotalPages(total)
	lastPage := 0
	if totalPages > 0 {
		lastPage = totalPages - 1
	}

	links := make([]string, 0, 4)
	if page.Page < totalPages-1 {
		links = append(links, pageLink(r, page.Page+1, page.Size, "next"))
	}
	if page.Page > 0 {
		links = append(links, pageLink(r, page.Page-1, page.Size, "prev"))
	}
	links = append(links,
		pageLink(r, lastPage, page.Size, "last"),
		pageLink(r, 0, page.Size, "first"),
	)
	w.Header().Set("Link", strings.Join(links, ","))
}

func pageLink(r *http.Request, page, size int, rel string) string {
	u := *r.URL
	u.Scheme = "http"
	if r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https") {
		u.Scheme = "https"
	}
	u.Host = r.Host

	q := u.Query()
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))
	u.RawQuery = q.Encode()

	return fmt.Sprintf("<%s>; rel=\"%s\"", u.String(), rel)
}
