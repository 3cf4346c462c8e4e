package entities

// SelectedLine is a priced line of an in-progress offer.
//
// A line is created once per catalog key and then edited in place; quantity and
// unit price are the only mutable fields.
type SelectedLine struct {
	ID         string  `json:"id"`
	Area       Area    `json:"area"`
	SubArea    SubArea `json:"sub_area"`
	CatalogKey string  `json:"catalog_key"`
	Label      string  `json:"label"`
	Sentence   string  `json:"sentence"`
	Quantity   float64 `json:"quantity"`
	Unit       string  `json:"unit"`
	UnitPrice  float64 `json:"unit_price"`
}

// Amount is quantity times unit price.
func (l SelectedLine) Amount() float64 {
	return l.Quantity * l.UnitPrice
}

// PendingCoatChoice is an open "how many coats" prompt raised by a paint keyword.
type PendingCoatChoice struct {
	ID      string  `json:"id"`
	Area    Area    `json:"area"`
	SubArea SubArea `json:"sub_area"`
}
