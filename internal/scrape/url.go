package scrape

import (
	"net/url"
	"strconv"
)

// BuildPageURL returns the URL for one page of a category listing. Page 1 is
// the base URL untouched, even if it already carries a page parameter; later
// pages set or overwrite the page query key and keep every other query
// parameter intact.
func BuildPageURL(base string, page int) string {
	if page <= 1 {
		return base
	}
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	q := u.Query()
	q.Set("page", strconv.Itoa(page))
	u.RawQuery = q.Encode()
	return u.String()
}
