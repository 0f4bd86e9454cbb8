package model

// Resource is a curated external learning link.
type Resource struct {
	ID    int    `json:"id" mapstructure:"id"`
	Title string `json:"title" mapstructure:"title"`
	Desc  string `json:"desc" mapstructure:"desc"`
	URL   string `json:"url" mapstructure:"url"`
}
