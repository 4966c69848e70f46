package models

// Revenue is one month of the revenue summary table, served as stored.
type Revenue struct {
	Month   string `json:"month"`
	Revenue int    `json:"revenue"`
}
