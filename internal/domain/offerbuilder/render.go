package offerbuilder

import (
	"strings"

	"palettepad/internal/domain/entities"
)

const labelSeparator = "— "

var areaIntro = map[entities.Area]string{
	entities.AreaExterior: "Οι εργασίες που θα πραγματοποιηθούν στον εξωτερικό χώρο περιλαμβάνουν:",
	entities.AreaInterior: "Στο εσωτερικό τμήμα θα γίνουν οι εξής εργασίες:",
}

// PriceRow is one row of the price table.
type PriceRow struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

// SubAreaSection groups the lines of one sub-area.
type SubAreaSection struct {
	SubArea   entities.SubArea `json:"sub_area"`
	Title     string           `json:"title"`
	Intro     string           `json:"intro,omitempty"`
	Sentences []string         `json:"sentences"`
	Prices    []PriceRow       `json:"prices"`
}

// AreaSection groups the non-empty sub-areas of one area.
type AreaSection struct {
	Area     entities.Area    `json:"area"`
	Title    string           `json:"title"`
	SubAreas []SubAreaSection `json:"sub_areas"`
}

// Render groups lines by area then sub-area in presentation order. Empty
// groups are left out; line order inside a group is preserved.
func Render(lines []entities.SelectedLine) []AreaSection {
	out := make([]AreaSection, 0, len(entities.Areas))
	for _, area := range entities.Areas {
		sec := AreaSection{Area: area, Title: area.Title()}
		for _, sub := range entities.SubAreas {
			group := SubAreaSection{SubArea: sub, Title: sub.Title()}
			for _, l := range lines {
				if l.Area != area || l.SubArea != sub {
					continue
				}
				group.Sentences = append(group.Sentences, l.Sentence)
				group.Prices = append(group.Prices, PriceRow{Label: ShortLabel(l.Label), Amount: l.Amount()})
			}
			if len(group.Sentences) == 0 {
				continue
			}
			if sub == entities.SubAreaWalls {
				group.Intro = areaIntro[area]
			}
			sec.SubAreas = append(sec.SubAreas, group)
		}
		if len(sec.SubAreas) > 0 {
			out = append(out, sec)
		}
	}
	return out
}

// ShortLabel drops the sub-area prefix of a catalog label.
func ShortLabel(label string) string {
	if _, after, ok := strings.Cut(label, labelSeparator); ok {
		return after
	}
	return label
}
