package schema

// CaseRecord is one row of the county case feed: cumulative counts for a
// county on a reporting date. The feed is chronological, so the last row
// seen for a county during a scan is the latest one.
type CaseRecord struct {
	Date   string
	County string
	State  string
	Cases  int
	Deaths int
}
