package request

// HeaderRequest replaces the customer-facing header of a builder session.
type HeaderRequest struct {
	Customer string `json:"customer" example:"Νίκος Παπαδόπουλος"`
	Project  string `json:"project" example:"Μονοκατοικία Κηφισιά"`
	Note     string `json:"note"`
}

// VATRequest changes VAT settings. Omitted fields keep their current value.
type VATRequest struct {
	Enabled *bool    `json:"enabled"`
	Rate    *float64 `json:"rate" example:"24"`
}

// ParseRequest is a keyword blob for one area and sub-area.
type ParseRequest struct {
	Area     string `json:"area" example:"exterior"`
	SubArea  string `json:"sub_area" example:"walls"`
	Keywords string `json:"keywords" example:"τρίψιμο, αστάρι, χρώμα"`
}

// ChoiceRequest resolves a pending coat choice.
type ChoiceRequest struct {
	Coats int `json:"coats" example:"3"`
}

// LineUpdateRequest edits a selected line. At least one field is required.
type LineUpdateRequest struct {
	Quantity  *float64 `json:"quantity" example:"42.5"`
	UnitPrice *float64 `json:"unit_price" example:"11"`
}

func (r LineUpdateRequest) Empty() bool {
	return r.Quantity == nil && r.UnitPrice == nil
}
