package response

import (
	"time"

	"palettepad/internal/domain/entities"
	"palettepad/internal/domain/offerbuilder"
	"palettepad/internal/usecase"
)

type CatalogItemResponse struct {
	Key              string  `json:"key"`
	Area             string  `json:"area"`
	SubArea          string  `json:"sub_area"`
	Job              string  `json:"job"`
	Unit             string  `json:"unit"`
	DefaultUnitPrice float64 `json:"default_unit_price"`
	Label            string  `json:"label"`
	Sentence         string  `json:"sentence"`
}

type LineResponse struct {
	ID         string  `json:"id"`
	Area       string  `json:"area"`
	SubArea    string  `json:"sub_area"`
	CatalogKey string  `json:"catalog_key"`
	Label      string  `json:"label"`
	Sentence   string  `json:"sentence"`
	Quantity   float64 `json:"quantity"`
	Unit       string  `json:"unit"`
	UnitPrice  float64 `json:"unit_price"`
	Amount     float64 `json:"amount"`
}

type ChoiceResponse struct {
	ID      string `json:"id"`
	Area    string `json:"area"`
	SubArea string `json:"sub_area"`
}

type BuilderTotalsResponse struct {
	Subtotal float64 `json:"subtotal"`
	VAT      float64 `json:"vat"`
	Total    float64 `json:"total"`
}

type PriceRowResponse struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

type SubAreaPreviewResponse struct {
	SubArea   string             `json:"sub_area"`
	Title     string             `json:"title"`
	Intro     string             `json:"intro,omitempty"`
	Sentences []string           `json:"sentences"`
	Prices    []PriceRowResponse `json:"prices"`
}

type AreaPreviewResponse struct {
	Area     string                   `json:"area"`
	Title    string                   `json:"title"`
	SubAreas []SubAreaPreviewResponse `json:"sub_areas"`
}

type SessionResponse struct {
	ID         string                `json:"id"`
	CreatedAt  time.Time             `json:"created_at"`
	Customer   string                `json:"customer"`
	Project    string                `json:"project"`
	Note       string                `json:"note"`
	VATEnabled bool                  `json:"vat_enabled"`
	VATRate    float64               `json:"vat_rate"`
	Lines      []LineResponse        `json:"lines"`
	Pending    []ChoiceResponse      `json:"pending"`
	Totals     BuilderTotalsResponse `json:"totals"`
	Preview    []AreaPreviewResponse `json:"preview"`
}

type ParseResponse struct {
	Added   []LineResponse   `json:"added"`
	Pending []ChoiceResponse `json:"pending"`
	Ignored []string         `json:"ignored"`
}

type SavedOfferResponse struct {
	ID        string         `json:"id"`
	Customer  string         `json:"customer"`
	Project   string         `json:"project"`
	Note      string         `json:"note,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	Status    string         `json:"status"`
	Total     float64        `json:"total"`
	Lines     []LineResponse `json:"lines"`
}

func FromCatalog(items []offerbuilder.CatalogItem) []CatalogItemResponse {
	out := make([]CatalogItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, CatalogItemResponse{
			Key:              it.Key().String(),
			Area:             string(it.Area),
			SubArea:          string(it.SubArea),
			Job:              string(it.Job),
			Unit:             it.Unit,
			DefaultUnitPrice: it.DefaultUnitPrice,
			Label:            it.Label,
			Sentence:         it.Sentence,
		})
	}
	return out
}

func FromLine(l entities.SelectedLine) LineResponse {
	return LineResponse{
		ID:         l.ID,
		Area:       string(l.Area),
		SubArea:    string(l.SubArea),
		CatalogKey: l.CatalogKey,
		Label:      l.Label,
		Sentence:   l.Sentence,
		Quantity:   l.Quantity,
		Unit:       l.Unit,
		UnitPrice:  l.UnitPrice,
		Amount:     l.Amount(),
	}
}

func FromLines(in []entities.SelectedLine) []LineResponse {
	out := make([]LineResponse, 0, len(in))
	for _, l := range in {
		out = append(out, FromLine(l))
	}
	return out
}

func fromChoices(in []entities.PendingCoatChoice) []ChoiceResponse {
	out := make([]ChoiceResponse, 0, len(in))
	for _, c := range in {
		out = append(out, ChoiceResponse{ID: c.ID, Area: string(c.Area), SubArea: string(c.SubArea)})
	}
	return out
}

func fromPreview(in []offerbuilder.AreaSection) []AreaPreviewResponse {
	out := make([]AreaPreviewResponse, 0, len(in))
	for _, a := range in {
		area := AreaPreviewResponse{Area: string(a.Area), Title: a.Title}
		for _, s := range a.SubAreas {
			sub := SubAreaPreviewResponse{
				SubArea:   string(s.SubArea),
				Title:     s.Title,
				Intro:     s.Intro,
				Sentences: s.Sentences,
				Prices:    make([]PriceRowResponse, 0, len(s.Prices)),
			}
			for _, p := range s.Prices {
				sub.Prices = append(sub.Prices, PriceRowResponse(p))
			}
			area.SubAreas = append(area.SubAreas, sub)
		}
		out = append(out, area)
	}
	return out
}

func FromSession(v usecase.SessionView) SessionResponse {
	return SessionResponse{
		ID:         v.ID,
		CreatedAt:  v.CreatedAt,
		Customer:   v.Header.Customer,
		Project:    v.Header.Project,
		Note:       v.Header.Note,
		VATEnabled: v.VAT.Enabled,
		VATRate:    v.VAT.Rate,
		Lines:      FromLines(v.Lines),
		Pending:    fromChoices(v.Pending),
		Totals:     BuilderTotalsResponse(v.Totals),
		Preview:    fromPreview(v.Preview),
	}
}

func FromParseResult(r offerbuilder.ParseResult) ParseResponse {
	ignored := r.Ignored
	if ignored == nil {
		ignored = []string{}
	}
	return ParseResponse{
		Added:   FromLines(r.Added),
		Pending: fromChoices(r.Pending),
		Ignored: ignored,
	}
}

func FromSavedOffer(o entities.SavedOffer) SavedOfferResponse {
	return SavedOfferResponse{
		ID:        o.ID,
		Customer:  o.CustomerName,
		Project:   o.ProjectName,
		Note:      o.Note,
		CreatedAt: o.CreatedAt,
		Status:    string(o.Status),
		Total:     o.Total,
		Lines:     FromLines(o.Lines),
	}
}

func FromSavedOffers(in []entities.SavedOffer) []SavedOfferResponse {
	out := make([]SavedOfferResponse, 0, len(in))
	for _, o := range in {
		out = append(out, FromSavedOffer(o))
	}
	return out
}
