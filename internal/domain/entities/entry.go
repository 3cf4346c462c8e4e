package entities

// Entry is a PalettePad color log record.
type Entry struct {
	ID      string `json:"id"`
	When    string `json:"when"`
	Name    string `json:"name"`
	Palette string `json:"palette"`
	Code    string `json:"code"`
}
