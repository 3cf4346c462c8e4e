package request

// EntryCreateRequest adds a color log entry. `when` is optional and defaults
// to the current time.
type EntryCreateRequest struct {
	When    string `json:"when" example:"2024-01-01T00:00:00Z"`
	Name    string `json:"name" example:"Ochre"`
	Palette string `json:"palette" example:"Earth"`
	Code    string `json:"code" example:"#CC7722"`
}
