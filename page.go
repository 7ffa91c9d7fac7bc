package docgrab

// Page is an extracted documentation page: the cleaned main content of one
// fetched URL. Pages are immutable after extraction and are assembled into
// the output document in extraction order.
type Page struct {
	URL   string
	Title string
	Body  string

	// ContentHash is a hash of Body, used to suppress alias URLs that
	// yield identical content.
	ContentHash string
}
