package constant

const (
	ContextKeyRequestID = "requestid"

	RequestIDHeader = "X-Snippets-Request-ID"
)
