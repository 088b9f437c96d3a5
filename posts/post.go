package posts

// Post is one post record as exposed by the upstream API. Field values are
// taken verbatim from the response body; the client neither validates nor
// mutates them.
type Post struct {
	// UserID identifies the owning user.
	UserID int `json:"userId"`
	// ID is the unique identifier assigned by the upstream source.
	ID int `json:"id"`
	// Title is the post title.
	Title string `json:"title"`
	// Body is the post body text.
	Body string `json:"body"`
}
