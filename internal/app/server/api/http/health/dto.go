package health

// StatusOK is the only status the liveness probe reports.
const StatusOK = "ok"

// TimestampFormat is ISO 8601 in UTC with millisecond precision,
// e.g. 2026-02-19T10:15:30.000Z.
const TimestampFormat = "2006-01-02T15:04:05.000Z"

// Input represents the input for health check endpoint
type Input struct{}

// Output represents the output for health check endpoint
type Output struct {
	Body Response
}

// Response represents the health check response
type Response struct {
	Status    string `json:"status" example:"ok" doc:"Health status of the service"`
	Timestamp string `json:"timestamp" example:"2026-02-19T12:00:00.000Z" doc:"Time the check was served, ISO 8601 UTC"`
}
