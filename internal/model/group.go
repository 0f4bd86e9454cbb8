package model

// Group is a community study group.
type Group struct {
	ID      int    `json:"id" mapstructure:"id"`
	Name    string `json:"name" mapstructure:"name"`
	Members int    `json:"members" mapstructure:"members"`
}
