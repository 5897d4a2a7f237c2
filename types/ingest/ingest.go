package ingest

// Result aggregates one bulk upload. Every data line lands in exactly one of
// the two counters; the batch never reports a partial or ambiguous outcome.
type Result struct {
	SuccessCount int    `json:"success_count"`
	ErrorCount   int    `json:"error_count"`
	Message      string `json:"message"`
}
