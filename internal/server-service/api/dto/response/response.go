package response

type Response struct {
	Message string `json:"message"`
}

// ErrorResponse keeps the request path so clients can tell which operation failed.
type ErrorResponse struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Path    string `json:"path"`
}

type SaveServersResponse struct {
	SavedCount int `json:"saved_count"`
}

type DeleteServerResponse struct {
	Deleted bool `json:"deleted"`
}
