package response

import "palettepad/internal/domain/entities"

type EntryResponse struct {
	ID      string `json:"id"`
	When    string `json:"when"`
	Name    string `json:"name"`
	Palette string `json:"palette"`
	Code    string `json:"code"`
}

func FromEntry(e entities.Entry) EntryResponse {
	return EntryResponse(e)
}

func FromEntries(in []entities.Entry) []EntryResponse {
	out := make([]EntryResponse, 0, len(in))
	for _, e := range in {
		out = append(out, FromEntry(e))
	}
	return out
}
