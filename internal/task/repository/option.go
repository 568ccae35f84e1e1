package repository

// ListOptions filters a remote listing.
type ListOptions struct {
	Date   string // only tasks scheduled on this date (optional)
	Limit  int    // max number of results (default 200)
	Offset int
}
