package animedex

// Pagination describes a listing page's position within its page set,
// derived from the pagination widget's anchors. A page without a widget
// is a singleton: current 1, last 1, no neighbors.
type Pagination struct {
	Current int  `json:"current_page"`
	Last    int  `json:"last_visible_page"`
	HasNext bool `json:"has_next_page"`
	HasPrev bool `json:"has_previous_page"`
}

// ListingItem is one entry on an ongoing, complete, or genre-filtered
// listing page. The badge fields are best-effort: a template that omits
// one leaves it empty.
type ListingItem struct {
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Poster      string `json:"poster"`
	Episode     string `json:"episode"`
	ReleaseDay  string `json:"release_day,omitempty"`
	ReleaseDate string `json:"newest_release_date,omitempty"`
	Rating      string `json:"rating,omitempty"`
	URL         string `json:"url"`
}

// ListingPage couples a page of listing items with its pagination info.
type ListingPage struct {
	Pagination Pagination    `json:"pagination"`
	Items      []ListingItem `json:"items"`
}

// SearchItem is one entry on a free-text search result page.
type SearchItem struct {
	Title  string  `json:"title"`
	Slug   string  `json:"slug"`
	Poster string  `json:"poster"`
	Status string  `json:"status"`
	Rating string  `json:"rating"`
	Genres []Genre `json:"genres"`
	URL    string  `json:"url"`
}

// Home holds the two listing sections of the catalog's front page.
type Home struct {
	Ongoing  []ListingItem `json:"ongoing_anime"`
	Complete []ListingItem `json:"complete_anime"`
}
