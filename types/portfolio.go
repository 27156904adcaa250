package types

// Holding is a portfolio entry. Shares is always positive.
type Holding struct {
	Symbol string `json:"symbol"`
	Shares int64  `json:"shares"`
}
