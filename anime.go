package animedex

// Anime is a full anime profile assembled from a detail page. Every
// scalar field is best-effort: a missing source label leaves the field
// empty rather than failing the extraction. Episodes are the exception —
// a profile without an episode list is not produced at all.
type Anime struct {
	Title         string `json:"title"`
	JapaneseTitle string `json:"japanese_title"`
	Poster        string `json:"poster"`
	Rating        string `json:"rating"`
	Producer      string `json:"produser"`
	Type          string `json:"type"`
	Status        string `json:"status"`
	EpisodeCount  string `json:"episode_count"`
	Duration      string `json:"duration"`
	ReleaseDate   string `json:"release_date"`
	Studio        string `json:"studio"`

	Genres          []Genre          `json:"genres"`
	Synopsis        string           `json:"synopsis"`
	Batch           *Batch           `json:"batch,omitempty"`
	Episodes        []Episode        `json:"episode_lists"`
	Recommendations []Recommendation `json:"recommendations"`
}

// Episode references a single watchable episode. The source markup lists
// episodes newest-first; assembled slices are always oldest-first.
type Episode struct {
	Episode string `json:"episode"`
	Slug    string `json:"slug"`
	URL     string `json:"url"`
}

// Genre is a taxonomy entry. An anchor with an href that doesn't match
// the known URL shape still yields Title and URL but no Slug.
type Genre struct {
	Title string `json:"title"`
	Slug  string `json:"slug"`
	URL   string `json:"url"`
}

// Batch points at a combined-download page. It may be embedded in an
// Anime or resolved independently from a batch page.
type Batch struct {
	Slug string `json:"slug"`
	URL  string `json:"url"`
}

// Recommendation is a lightweight reference to a related anime, attached
// to a profile.
type Recommendation struct {
	Title  string `json:"title"`
	Slug   string `json:"slug"`
	Poster string `json:"poster"`
	URL    string `json:"url"`
}
