package specs

// NATS subjects shared by the API and its clients.
const (
	// SubjectSearchCompleted carries a SearchEvent after every search.
	SubjectSearchCompleted = "autospecs.search.completed"
	// SubjectLookup answers a LookupRequest with a domain.SearchResult.
	SubjectLookup = "autospecs.specs.lookup"
)

// LookupRequest is the request body on SubjectLookup.
type LookupRequest struct {
	Model string `json:"model"`
}
