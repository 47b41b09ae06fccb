package models

// Review is a user review attached to a card. DateLabel is a display string
// such as "2 weeks ago", not a timestamp.
type Review struct {
	ID        string  `json:"id" yaml:"id"`
	Author    string  `json:"user" yaml:"user"`
	Rating    float64 `json:"rating" yaml:"rating"`
	DateLabel string  `json:"date" yaml:"date"`
	Comment   string  `json:"comment" yaml:"comment"`
}
