package offerbuilder

import (
	"errors"
	"strings"
	"time"

	"palettepad/internal/domain/entities"

	"github.com/google/uuid"
)

var (
	ErrCustomerRequired = errors.New("customer name is required")
	ErrChoiceNotFound   = errors.New("coat choice not found")
	ErrInvalidCoats     = errors.New("coats must be 2 or 3")
	ErrInvalidArea      = errors.New("invalid area")
	ErrInvalidSubArea   = errors.New("invalid sub-area")
	ErrInvalidVATRate   = errors.New("invalid vat rate")
)

const DefaultVATRate = 24

// Header is the customer-facing information of an offer.
type Header struct {
	Customer string `json:"customer"`
	Project  string `json:"project"`
	Note     string `json:"note"`
}

// Session is one in-progress offer: header, VAT settings, selected lines and
// open coat prompts. It is not safe for concurrent use.
type Session struct {
	ID        string
	CreatedAt time.Time
	Header    Header
	VAT       VATConfig

	resolver *Resolver
	acc      *Accumulator
	pending  []entities.PendingCoatChoice
	newID    func() string
}

func NewSession(catalog *Catalog, now time.Time, vatRate float64) *Session {
	return &Session{
		ID:        uuid.NewString(),
		CreatedAt: now,
		VAT:       VATConfig{Enabled: true, Rate: vatRate},
		resolver:  NewResolver(catalog),
		acc:       NewAccumulator(),
		newID:     uuid.NewString,
	}
}

// Parse resolves a keyword blob for one (area, sub-area).
func (s *Session) Parse(area entities.Area, sub entities.SubArea, blob string) (ParseResult, error) {
	if !area.Valid() {
		return ParseResult{}, ErrInvalidArea
	}
	if !sub.Valid() {
		return ParseResult{}, ErrInvalidSubArea
	}
	return s.resolver.Resolve(area, sub, blob, s.acc, s.openChoice), nil
}

// openChoice raises a coat prompt. Prompts for the same (area, sub-area)
// stack up; each is resolved on its own.
func (s *Session) openChoice(area entities.Area, sub entities.SubArea) entities.PendingCoatChoice {
	p := entities.PendingCoatChoice{ID: s.newID(), Area: area, SubArea: sub}
	s.pending = append(s.pending, p)
	return p
}

// ResolveChoice consumes a coat prompt. The paint line is added when the
// catalog has it; the prompt is dropped either way.
func (s *Session) ResolveChoice(choiceID string, coats int) (entities.SelectedLine, bool, error) {
	idx := -1
	for i, p := range s.pending {
		if p.ID == choiceID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return entities.SelectedLine{}, false, ErrChoiceNotFound
	}
	if _, ok := CoatJob(coats); !ok {
		return entities.SelectedLine{}, false, ErrInvalidCoats
	}

	choice := s.pending[idx]
	s.pending = append(s.pending[:idx], s.pending[idx+1:]...)

	it, ok := s.resolver.ResolveCoats(choice, coats)
	if !ok {
		return entities.SelectedLine{}, false, nil
	}
	line, added := s.acc.AddLine(it)
	return line, added, nil
}

func (s *Session) PendingChoices() []entities.PendingCoatChoice {
	return append([]entities.PendingCoatChoice(nil), s.pending...)
}

func (s *Session) UpdateLine(id string, cmds ...LineCommand) (entities.SelectedLine, error) {
	return s.acc.Apply(id, cmds...)
}

func (s *Session) RemoveLine(id string) error {
	return s.acc.Remove(id)
}

func (s *Session) SetVAT(cfg VATConfig) error {
	if !isFinite(cfg.Rate) || cfg.Rate < 0 || cfg.Rate > 100 {
		return ErrInvalidVATRate
	}
	s.VAT = cfg
	return nil
}

func (s *Session) Lines() []entities.SelectedLine {
	return s.acc.Lines()
}

func (s *Session) Totals() Totals {
	return ComputeTotals(s.acc.lines, s.VAT)
}

// Snapshot captures the session as a pending SavedOffer. Lines are deep
// copied and the total is frozen.
func (s *Session) Snapshot(now time.Time) (entities.SavedOffer, error) {
	customer := strings.TrimSpace(s.Header.Customer)
	if customer == "" {
		return entities.SavedOffer{}, ErrCustomerRequired
	}
	return entities.SavedOffer{
		ID:           s.newID(),
		CustomerName: customer,
		ProjectName:  strings.TrimSpace(s.Header.Project),
		Note:         strings.TrimSpace(s.Header.Note),
		CreatedAt:    now,
		Status:       entities.SavedOfferStatusPending,
		Total:        s.Totals().Total,
		Lines:        s.acc.Lines(),
	}, nil
}
