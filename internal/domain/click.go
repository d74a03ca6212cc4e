package domain

import (
	"time"
)

// LinkClick is one row of the append-only click ledger. Rows are inserted
// once per public click-through and never updated or deleted by the
// application; deleting a link removes its ledger rows.
type LinkClick struct {
	ID        string    `gorm:"primaryKey;type:uuid" json:"id"`
	LinkID    string    `gorm:"type:uuid;not null;index" json:"link_id"`
	Referrer  string    `gorm:"size:500" json:"referrer,omitempty"`
	UserAgent string    `gorm:"size:500" json:"user_agent,omitempty"`
	IPAddress string    `gorm:"size:45" json:"-"` // IPv6 max length, not exposed in JSON
	Country   string    `gorm:"size:100" json:"country,omitempty"`
	City      string    `gorm:"size:100" json:"city,omitempty"`
	ClickedAt time.Time `gorm:"autoCreateTime;index" json:"clicked_at"`
}

// TableName specifies the table name for GORM
func (LinkClick) TableName() string {
	return "link_clicks"
}

// DailyClicks is one bar of the trailing-30-day histogram. The histogram is
// sparse: dates with zero clicks are omitted.
type DailyClicks struct {
	Date  string `json:"date"` // UTC calendar date, YYYY-MM-DD
	Count int64  `json:"count"`
}

// ReferrerCount is one entry of the top-referrers ranking
type ReferrerCount struct {
	Referrer string `json:"referrer"`
	Count    int64  `json:"count"`
}

// CountryCount is one entry of the top-countries ranking
type CountryCount struct {
	Country string `json:"country"`
	Count   int64  `json:"count"`
}

// LinkAnalytics is the derived, never-persisted analytics view of one link.
// TotalClicks reads the link's denormalized counter; the breakdowns read the
// raw ledger. RecordClick writes both in one transaction so they agree.
type LinkAnalytics struct {
	TotalClicks  int64           `json:"total_clicks"`
	ClicksByDay  []DailyClicks   `json:"clicks_by_day"`
	TopReferrers []ReferrerCount `json:"top_referrers"`
	TopCountries []CountryCount  `json:"top_countries"`
}

// ClickEvent carries the request metadata captured at click time
type ClickEvent struct {
	LinkID    string `json:"link_id"`
	Referrer  string `json:"referrer,omitempty"`
	UserAgent string `json:"-"`
	IPAddress string `json:"-"`
	Country   string `json:"-"`
	City      string `json:"-"`
}
