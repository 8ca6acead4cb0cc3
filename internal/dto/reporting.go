package dto

import "time"

// ReportRangeParams bounds a report to a date range. Zero values mean "all time";
// handlers default From/To when absent.
type ReportRangeParams struct {
	From time.Time `form:"from" time_format:"2006-01-02"`
	To   time.Time `form:"to" time_format:"2006-01-02"`
}
