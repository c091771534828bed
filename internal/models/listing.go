package models

import "time"

// Listing is a single real-estate advertisement. Image fields hold either a
// path under the managed upload directory, a pre-seeded static path, or "".
type Listing struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Type          string    `json:"advertisement_type"`
	Address       string    `json:"adres"`
	ViewCount     int       `json:"view"`
	IsGold        bool      `json:"is_gold"`
	Image1        string    `json:"img_1"`
	Image2        string    `json:"img_2"`
	Image3        string    `json:"img_3"`
	SalePrice     *float64  `json:"sale_price"`
	RentPrice     *float64  `json:"rent_price"`
	ContractID    string    `json:"contract_id"`
	Description   string    `json:"description"`
	DescriptionEN string    `json:"description_en"`
	DescriptionAR string    `json:"description_ar"`
	Deed          string    `json:"deed"`
	BedType       string    `json:"bed_type"`
	Active        bool      `json:"status"`
	CreatedAt     time.Time `json:"creation_date"`
	UpdatedAt     time.Time `json:"update_date"`
}

// Images returns the three image slots in order.
func (l *Listing) Images() []string {
	return []string{l.Image1, l.Image2, l.Image3}
}

// Page is one page of browse results plus the pagination state the
// templates need.
type Page struct {
	Listings   []Listing `json:"listings"`
	Number     int       `json:"page"`
	TotalPages int       `json:"total_pages"`
	TotalCount int       `json:"total_count"`
	HasPrev    bool      `json:"has_prev"`
	HasNext    bool      `json:"has_next"`
}
