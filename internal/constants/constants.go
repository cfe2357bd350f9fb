package constants

// SessionCookieName is the browser cookie carrying the signed session token.
const SessionCookieName = "session_id"

// InstructorCodePrefix is prepended to the random digits of every minted
// instructor code.
const InstructorCodePrefix = "H4P"

// LoginCodeLength is the number of random digits in player and instructor codes.
const LoginCodeLength = 6

// MetricChartLimit caps how many samples are surfaced to the charts.
const MetricChartLimit = 20

// MetricDateLayout is the only date literal accepted on metric submission.
const MetricDateLayout = "2006-01-02"

// AgeGroups lists the dashboard buckets in display order.
var AgeGroups = []string{"7-9", "10-12", "13-15", "16-18", "18+"}
