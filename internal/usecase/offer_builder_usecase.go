package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"palettepad/internal/domain/entities"
	"palettepad/internal/domain/offerbuilder"
	"palettepad/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrSessionNotFound       = errors.New("builder session not found")
	ErrInvalidSessionID      = errors.New("invalid builder session id")
	ErrSavedOfferNotFound    = errors.New("saved offer not found")
	ErrSavedOfferNotPending  = errors.New("saved offer is not pending")
	ErrInvalidSavedOfferID   = errors.New("invalid saved offer id")
	ErrEmptyLineUpdate       = errors.New("line update needs quantity or unit_price")
	ErrExporterNotConfigured = errors.New("document exporter not configured")
)

// SessionView is the read model of a builder session: its state, totals and
// the narrative preview built from its lines.
type SessionView struct {
	ID        string                       `json:"id"`
	CreatedAt time.Time                    `json:"created_at"`
	Header    offerbuilder.Header          `json:"header"`
	VAT       offerbuilder.VATConfig       `json:"vat"`
	Lines     []entities.SelectedLine      `json:"lines"`
	Pending   []entities.PendingCoatChoice `json:"pending"`
	Totals    offerbuilder.Totals          `json:"totals"`
	Preview   []offerbuilder.AreaSection   `json:"preview"`
}

// LineUpdate carries the optional edits of one line.
type LineUpdate struct {
	Quantity  *float64
	UnitPrice *float64
}

// ExportedDocument is a rendered offer ready for download.
type ExportedDocument struct {
	Filename    string
	ContentType string
	Data        []byte
}

// IOfferBuilderUseCase drives in-progress offers and the saved-offers list.
type IOfferBuilderUseCase interface {
	Catalog() []offerbuilder.CatalogItem
	CreateSession(ctx context.Context) (SessionView, error)
	GetSession(ctx context.Context, id string) (SessionView, error)
	DiscardSession(ctx context.Context, id string) error
	SetHeader(ctx context.Context, id string, h offerbuilder.Header) (SessionView, error)
	SetVAT(ctx context.Context, id string, enabled *bool, rate *float64) (SessionView, error)
	Parse(ctx context.Context, id, area, subArea, blob string) (offerbuilder.ParseResult, error)
	ResolveChoice(ctx context.Context, id, choiceID string, coats int) (SessionView, error)
	UpdateLine(ctx context.Context, id, lineID string, upd LineUpdate) (entities.SelectedLine, error)
	RemoveLine(ctx context.Context, id, lineID string) error
	Save(ctx context.Context, id string) (entities.SavedOffer, error)
	ListSavedOffers(ctx context.Context) ([]entities.SavedOffer, error)
	AcceptSavedOffer(ctx context.Context, offerID string) (entities.SavedOffer, error)
	DeleteSavedOffer(ctx context.Context, offerID string) error
	Export(ctx context.Context, id string) (ExportedDocument, error)
}

// OfferBuilderUseCase owns every builder session and the saved-offers list.
// One mutex serializes all of them, so each action runs to completion before
// the next one starts.
type OfferBuilderUseCase struct {
	mu       sync.Mutex
	catalog  *offerbuilder.Catalog
	store    interfaces.ISavedOfferStore
	exporter interfaces.IDocumentExporter
	vatRate  float64
	now      func() time.Time

	sessions map[string]*offerbuilder.Session
	saved    []entities.SavedOffer
	loaded   bool
}

var _ IOfferBuilderUseCase = (*OfferBuilderUseCase)(nil)

func NewOfferBuilderUseCase(catalog *offerbuilder.Catalog, store interfaces.ISavedOfferStore, exporter interfaces.IDocumentExporter, vatRate float64) *OfferBuilderUseCase {
	return &OfferBuilderUseCase{
		catalog:  catalog,
		store:    store,
		exporter: exporter,
		vatRate:  vatRate,
		now:      time.Now,
		sessions: make(map[string]*offerbuilder.Session),
	}
}

func (u *OfferBuilderUseCase) Catalog() []offerbuilder.CatalogItem {
	return u.catalog.Items()
}

func (u *OfferBuilderUseCase) CreateSession(ctx context.Context) (SessionView, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	s := offerbuilder.NewSession(u.catalog, u.now().UTC(), u.vatRate)
	u.sessions[s.ID] = s
	zap.S().Infof("[builder][usecase] session created id=%s vat_rate=%.2f", s.ID, u.vatRate)
	return viewOf(s), nil
}

func (u *OfferBuilderUseCase) GetSession(ctx context.Context, id string) (SessionView, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	s, err := u.session(id)
	if err != nil {
		return SessionView{}, err
	}
	return viewOf(s), nil
}

func (u *OfferBuilderUseCase) DiscardSession(ctx context.Context, id string) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	s, err := u.session(id)
	if err != nil {
		return err
	}
	delete(u.sessions, s.ID)
	zap.S().Infof("[builder][usecase] session discarded id=%s", s.ID)
	return nil
}

func (u *OfferBuilderUseCase) SetHeader(ctx context.Context, id string, h offerbuilder.Header) (SessionView, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	s, err := u.session(id)
	if err != nil {
		return SessionView{}, err
	}
	s.Header = h
	return viewOf(s), nil
}

// SetVAT merges the given fields into the session's VAT settings; nil fields
// keep their current value.
func (u *OfferBuilderUseCase) SetVAT(ctx context.Context, id string, enabled *bool, rate *float64) (SessionView, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	s, err := u.session(id)
	if err != nil {
		return SessionView{}, err
	}
	vat := s.VAT
	if enabled != nil {
		vat.Enabled = *enabled
	}
	if rate != nil {
		vat.Rate = *rate
	}
	if err := s.SetVAT(vat); err != nil {
		return SessionView{}, err
	}
	return viewOf(s), nil
}

func (u *OfferBuilderUseCase) Parse(ctx context.Context, id, area, subArea, blob string) (offerbuilder.ParseResult, error) {
	a, ok := entities.ParseArea(area)
	if !ok {
		return offerbuilder.ParseResult{}, offerbuilder.ErrInvalidArea
	}
	sa, ok := entities.ParseSubArea(subArea)
	if !ok {
		return offerbuilder.ParseResult{}, offerbuilder.ErrInvalidSubArea
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	s, err := u.session(id)
	if err != nil {
		return offerbuilder.ParseResult{}, err
	}
	res, err := s.Parse(a, sa, blob)
	if err != nil {
		return offerbuilder.ParseResult{}, err
	}
	zap.S().Infof("[builder][usecase] parsed session=%s area=%s sub_area=%s added=%d pending=%d ignored=%d",
		s.ID, a, sa, len(res.Added), len(res.Pending), len(res.Ignored))
	return res, nil
}

func (u *OfferBuilderUseCase) ResolveChoice(ctx context.Context, id, choiceID string, coats int) (SessionView, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	s, err := u.session(id)
	if err != nil {
		return SessionView{}, err
	}
	line, added, err := s.ResolveChoice(strings.TrimSpace(choiceID), coats)
	if err != nil {
		return SessionView{}, err
	}
	if added {
		zap.S().Infof("[builder][usecase] coat choice resolved session=%s coats=%d line=%s", s.ID, coats, line.CatalogKey)
	}
	return viewOf(s), nil
}

func (u *OfferBuilderUseCase) UpdateLine(ctx context.Context, id, lineID string, upd LineUpdate) (entities.SelectedLine, error) {
	var cmds []offerbuilder.LineCommand
	if upd.Quantity != nil {
		cmds = append(cmds, offerbuilder.SetQuantity{Quantity: *upd.Quantity})
	}
	if upd.UnitPrice != nil {
		cmds = append(cmds, offerbuilder.SetUnitPrice{UnitPrice: *upd.UnitPrice})
	}
	if len(cmds) == 0 {
		return entities.SelectedLine{}, ErrEmptyLineUpdate
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	s, err := u.session(id)
	if err != nil {
		return entities.SelectedLine{}, err
	}
	return s.UpdateLine(strings.TrimSpace(lineID), cmds...)
}

func (u *OfferBuilderUseCase) RemoveLine(ctx context.Context, id, lineID string) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	s, err := u.session(id)
	if err != nil {
		return err
	}
	return s.RemoveLine(strings.TrimSpace(lineID))
}

// Save snapshots the session and prepends it to the saved-offers list. The
// list is only changed once the store accepted the new version.
func (u *OfferBuilderUseCase) Save(ctx context.Context, id string) (entities.SavedOffer, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	s, err := u.session(id)
	if err != nil {
		return entities.SavedOffer{}, err
	}
	offer, err := s.Snapshot(u.now().UTC())
	if err != nil {
		return entities.SavedOffer{}, err
	}
	if err := u.loadSaved(ctx); err != nil {
		return entities.SavedOffer{}, err
	}

	next := make([]entities.SavedOffer, 0, len(u.saved)+1)
	next = append(next, offer)
	next = append(next, u.saved...)
	if err := u.persist(ctx, next); err != nil {
		return entities.SavedOffer{}, err
	}
	zap.S().Infof("[builder][usecase] offer saved id=%s session=%s total=%.2f lines=%d", offer.ID, s.ID, offer.Total, len(offer.Lines))
	return offer.Clone(), nil
}

func (u *OfferBuilderUseCase) ListSavedOffers(ctx context.Context) ([]entities.SavedOffer, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if err := u.loadSaved(ctx); err != nil {
		return nil, err
	}
	out := make([]entities.SavedOffer, 0, len(u.saved))
	for _, o := range u.saved {
		out = append(out, o.Clone())
	}
	return out, nil
}

func (u *OfferBuilderUseCase) AcceptSavedOffer(ctx context.Context, offerID string) (entities.SavedOffer, error) {
	offerID = strings.TrimSpace(offerID)
	if offerID == "" {
		return entities.SavedOffer{}, ErrInvalidSavedOfferID
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	if err := u.loadSaved(ctx); err != nil {
		return entities.SavedOffer{}, err
	}
	idx := u.indexOfSaved(offerID)
	if idx < 0 {
		return entities.SavedOffer{}, ErrSavedOfferNotFound
	}
	if u.saved[idx].Status != entities.SavedOfferStatusPending {
		return entities.SavedOffer{}, ErrSavedOfferNotPending
	}

	next := cloneSaved(u.saved)
	next[idx].Status = entities.SavedOfferStatusAccepted
	if err := u.persist(ctx, next); err != nil {
		return entities.SavedOffer{}, err
	}
	zap.S().Infof("[builder][usecase] offer accepted id=%s", offerID)
	return next[idx].Clone(), nil
}

func (u *OfferBuilderUseCase) DeleteSavedOffer(ctx context.Context, offerID string) error {
	offerID = strings.TrimSpace(offerID)
	if offerID == "" {
		return ErrInvalidSavedOfferID
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	if err := u.loadSaved(ctx); err != nil {
		return err
	}
	idx := u.indexOfSaved(offerID)
	if idx < 0 {
		return ErrSavedOfferNotFound
	}

	next := make([]entities.SavedOffer, 0, len(u.saved)-1)
	next = append(next, u.saved[:idx]...)
	next = append(next, u.saved[idx+1:]...)
	if err := u.persist(ctx, next); err != nil {
		return err
	}
	zap.S().Infof("[builder][usecase] offer deleted id=%s", offerID)
	return nil
}

func (u *OfferBuilderUseCase) Export(ctx context.Context, id string) (ExportedDocument, error) {
	if u.exporter == nil {
		return ExportedDocument{}, ErrExporterNotConfigured
	}

	u.mu.Lock()
	s, err := u.session(id)
	if err != nil {
		u.mu.Unlock()
		return ExportedDocument{}, err
	}
	lines := s.Lines()
	doc := offerbuilder.BuildDocument(offerbuilder.DocumentInput{
		Header:   s.Header,
		Sections: offerbuilder.Render(lines),
		Totals:   offerbuilder.ComputeTotals(lines, s.VAT),
		VAT:      s.VAT,
		Date:     u.now(),
	})
	name := offerbuilder.ExportFilename(s.Header.Customer, s.Header.Project)
	u.mu.Unlock()

	data, err := u.exporter.Export(doc)
	if err != nil {
		zap.S().Errorf("[builder][usecase] export failed session=%s err=%v", id, err)
		return ExportedDocument{}, err
	}
	zap.S().Infof("[builder][usecase] exported session=%s file=%q bytes=%d", id, name, len(data))
	return ExportedDocument{Filename: name, ContentType: u.exporter.ContentType(), Data: data}, nil
}

func (u *OfferBuilderUseCase) session(id string) (*offerbuilder.Session, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrInvalidSessionID
	}
	s, ok := u.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

func (u *OfferBuilderUseCase) loadSaved(ctx context.Context) error {
	if u.loaded {
		return nil
	}
	offers, err := u.store.Load(ctx)
	if err != nil {
		zap.S().Errorf("[builder][usecase] saved offers load failed err=%v", err)
		return err
	}
	u.saved = offers
	u.loaded = true
	zap.S().Infof("[builder][usecase] saved offers loaded count=%d", len(offers))
	return nil
}

// persist writes next and adopts it only when the write succeeded.
func (u *OfferBuilderUseCase) persist(ctx context.Context, next []entities.SavedOffer) error {
	if err := u.store.Save(ctx, next); err != nil {
		zap.S().Errorf("[builder][usecase] saved offers write failed count=%d err=%v", len(next), err)
		return err
	}
	u.saved = next
	return nil
}

func (u *OfferBuilderUseCase) indexOfSaved(id string) int {
	for i, o := range u.saved {
		if o.ID == id {
			return i
		}
	}
	return -1
}

func cloneSaved(in []entities.SavedOffer) []entities.SavedOffer {
	out := make([]entities.SavedOffer, len(in))
	for i, o := range in {
		out[i] = o.Clone()
	}
	return out
}

func viewOf(s *offerbuilder.Session) SessionView {
	lines := s.Lines()
	return SessionView{
		ID:        s.ID,
		CreatedAt: s.CreatedAt,
		Header:    s.Header,
		VAT:       s.VAT,
		Lines:     lines,
		Pending:   s.PendingChoices(),
		Totals:    offerbuilder.ComputeTotals(lines, s.VAT),
		Preview:   offerbuilder.Render(lines),
	}
}
