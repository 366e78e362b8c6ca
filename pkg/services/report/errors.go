package report

import "errors"

var (
	// ErrServerRejected means the service answered with a non-2xx status.
	ErrServerRejected = errors.New("report service rejected the request")
	// ErrUnreachable means no response was received at all.
	ErrUnreachable = errors.New("report service unreachable")
	ErrUnexpected  = errors.New("unexpected report client failure")

	ErrBackendDown      = errors.New("backend server is not responding")
	ErrTemplates        = errors.New("failed to fetch templates")
	ErrExtractionFailed = errors.New("pdf data extraction failed")
	ErrConversionFailed = errors.New("pdf conversion failed")
)

// UserMessage turns a client error into the single sentence shown to the
// practitioner. Operation-specific errors win over transport ones.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrBackendDown):
		return "Backend server is not responding"
	case errors.Is(err, ErrTemplates):
		return "Failed to fetch templates"
	case errors.Is(err, ErrExtractionFailed):
		return "Failed to extract data from PDF"
	case errors.Is(err, ErrConversionFailed):
		return "Failed to convert PDF to images"
	case errors.Is(err, ErrServerRejected):
		return "Failed to generate report. Please try again."
	case errors.Is(err, ErrUnreachable):
		return "Cannot connect to server. Please check if the backend is running."
	default:
		return "An unexpected error occurred."
	}
}
