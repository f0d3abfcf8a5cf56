package catalog

// Category groups mangas at the top level (shonen, seinen, ...).
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Genre is a finer-grained label; a manga can carry several.
type Genre struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
