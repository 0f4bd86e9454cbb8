package model

// Stat is a dashboard stat card. Value is either a number or a display
// string (e.g. "15 days") and is encoded as-is.
type Stat struct {
	Title  string      `json:"title" mapstructure:"title"`
	Value  interface{} `json:"value" mapstructure:"value"`
	Change string      `json:"change" mapstructure:"change"`
}
