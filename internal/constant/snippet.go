package constant

const (
	// DefaultOwner is used whenever a request does not name the owner of a snippet.
	DefaultOwner = "snippets"

	// DefaultResource is the resource kind snippets are stored under in the resource store.
	DefaultResource = "s"

	// WriteAcknowledgement is the response body of a successful write.
	WriteAcknowledgement = "OK"
)
