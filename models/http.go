package models

// Credentials is the request body shared by the signup and login endpoints.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AddBookmarkRequest is the request body of POST /api/bookmarks.
type AddBookmarkRequest struct {
	URL string `json:"url"`
}

// MessageResponse is the generic `{"message": ...}` response body used by
// every endpoint that has nothing else to return.
type MessageResponse struct {
	Message string `json:"message"`
}

// LoginResponse is the success body of POST /api/login. Token carries the
// compact JWS string the client presents as a bearer token.
type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// BookmarkSavedResponse is the success body of POST /api/bookmarks. It echoes
// the persisted record so the caller can render the new entry without a
// separate round trip.
type BookmarkSavedResponse struct {
	ID      int64  `json:"id"`
	URL     string `json:"url"`
	Title   string `json:"title"`
	Favicon string `json:"favicon"`
	Summary string `json:"summary"`
	Message string `json:"message"`
}
