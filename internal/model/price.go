package model

// DateLayout is the civil date layout used in the history file.
const DateLayout = "2006-01-02"

// GoldPrice describes one persisted daily price observation.
// The pair (Date, GoldType) is unique across the whole history.
type GoldPrice struct {
	Date      string // ex: 2025-08-24, local day in the configured zone
	GoldType  string // ex: Nhẫn 999.9
	BuyPrice  int64  // VND, no separators
	SellPrice int64  // VND, no separators
}

// Key identifies a persisted observation for deduplication.
type Key struct {
	Date     string
	GoldType string
}

func (p *GoldPrice) Key() Key {
	return Key{Date: p.Date, GoldType: p.GoldType}
}
