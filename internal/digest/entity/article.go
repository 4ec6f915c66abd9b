package entity

// Article is a single link harvested from the external digest source.
type Article struct {
	Title string
	URL   string
}
