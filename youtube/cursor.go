package youtube

// PageCursor tracks the state of a paginated playlist listing and
// decides, in one place, when pagination is finished. The three stop
// conditions are independent because the API is not always consistent
// about them; any one firing is a normal stop, never an error.
type PageCursor struct {
	// Token is the continuation token for the next request. Empty on
	// the first page.
	Token string

	// Processed counts every item the listing has seen, including
	// items a local date filter later discarded. The API's
	// totalResults field knows nothing about local filtering, so the
	// two are compared on equal terms.
	Processed int64

	// Total is the API-reported total result count, refreshed on
	// every page.
	Total int64

	observed  bool
	lastEmpty bool
}

// Observe records one fetched page: how many items it carried, the
// continuation token for the next page, and the reported total.
func (c *PageCursor) Observe(itemCount int, nextToken string, total int64) {
	c.Processed += int64(itemCount)
	c.Token = nextToken
	c.Total = total
	c.lastEmpty = itemCount == 0
	c.observed = true
}

// Done reports whether pagination should stop. Before any page has
// been observed it always reports false.
//
// Because Processed includes date-filtered items, a narrow date window
// near the end of a large playlist can hit the totalResults stop
// before every matching item has been seen.
func (c *PageCursor) Done() bool {
	if !c.observed {
		return false
	}
	if c.lastEmpty {
		return true
	}
	if c.Token == "" {
		return true
	}
	return c.Processed >= c.Total
}
