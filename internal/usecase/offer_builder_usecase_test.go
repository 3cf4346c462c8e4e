package usecase

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"
	"time"

	"palettepad/internal/adapter/persistence/localstore"
	"palettepad/internal/domain/entities"
	"palettepad/internal/domain/offerbuilder"
	mock_interfaces "palettepad/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newBuilder(t *testing.T) *OfferBuilderUseCase {
	t.Helper()
	uc := NewOfferBuilderUseCase(offerbuilder.DefaultCatalog(), localstore.NewMemoryStore(), nil, offerbuilder.DefaultVATRate)
	uc.now = func() time.Time { return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC) }
	return uc
}

func TestOfferBuilderUseCase_ParseAndResolve(t *testing.T) {
	ctx := context.Background()
	uc := newBuilder(t)

	s, err := uc.CreateSession(ctx)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	res, err := uc.Parse(ctx, s.ID, "exterior", "walls", "τρίψιμο αστάρι χρώμα")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(res.Added) != 2 || len(res.Pending) != 1 {
		t.Fatalf("expected 2 lines and 1 pending, got %d/%d", len(res.Added), len(res.Pending))
	}

	view, err := uc.ResolveChoice(ctx, s.ID, res.Pending[0].ID, 3)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(view.Lines) != 3 || len(view.Pending) != 0 {
		t.Fatalf("expected 3 lines and no pending, got %d/%d", len(view.Lines), len(view.Pending))
	}
	last := view.Lines[2]
	if last.UnitPrice != 12 || last.Unit != "m²" {
		t.Fatalf("unexpected paint line: %+v", last)
	}
	if len(view.Preview) != 1 || view.Preview[0].Area != entities.AreaExterior {
		t.Fatalf("unexpected preview: %+v", view.Preview)
	}
	if view.Totals.Total != view.Totals.Subtotal+view.Totals.VAT {
		t.Fatalf("totals inconsistent: %+v", view.Totals)
	}
}

func TestOfferBuilderUseCase_ParseInvalidContext(t *testing.T) {
	ctx := context.Background()
	uc := newBuilder(t)
	s, _ := uc.CreateSession(ctx)

	if _, err := uc.Parse(ctx, s.ID, "roof", "walls", "χρώμα"); !errors.Is(err, offerbuilder.ErrInvalidArea) {
		t.Fatalf("expected ErrInvalidArea, got %v", err)
	}
	if _, err := uc.Parse(ctx, s.ID, "interior", "floor", "χρώμα"); !errors.Is(err, offerbuilder.ErrInvalidSubArea) {
		t.Fatalf("expected ErrInvalidSubArea, got %v", err)
	}
	if _, err := uc.Parse(ctx, "missing", "interior", "walls", "χρώμα"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestOfferBuilderUseCase_UpdateLine(t *testing.T) {
	ctx := context.Background()
	uc := newBuilder(t)
	s, _ := uc.CreateSession(ctx)
	res, _ := uc.Parse(ctx, s.ID, "interior", "walls", "αστάρι")
	lineID := res.Added[0].ID

	if _, err := uc.UpdateLine(ctx, s.ID, lineID, LineUpdate{}); !errors.Is(err, ErrEmptyLineUpdate) {
		t.Fatalf("expected ErrEmptyLineUpdate, got %v", err)
	}

	qty, price := 40.0, -2.5
	line, err := uc.UpdateLine(ctx, s.ID, lineID, LineUpdate{Quantity: &qty, UnitPrice: &price})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if line.Quantity != 40 || line.UnitPrice != -2.5 {
		t.Fatalf("unexpected line: %+v", line)
	}

	nan := math.NaN()
	if _, err := uc.UpdateLine(ctx, s.ID, lineID, LineUpdate{Quantity: &nan}); !errors.Is(err, offerbuilder.ErrInvalidNumber) {
		t.Fatalf("expected ErrInvalidNumber, got %v", err)
	}

	if err := uc.RemoveLine(ctx, s.ID, lineID); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := uc.RemoveLine(ctx, s.ID, lineID); !errors.Is(err, offerbuilder.ErrLineNotFound) {
		t.Fatalf("expected ErrLineNotFound, got %v", err)
	}
}

func TestOfferBuilderUseCase_SetVATMergesPartialUpdates(t *testing.T) {
	ctx := context.Background()
	uc := newBuilder(t)
	s, _ := uc.CreateSession(ctx)

	rate := 13.0
	view, err := uc.SetVAT(ctx, s.ID, nil, &rate)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if view.VAT != (offerbuilder.VATConfig{Enabled: true, Rate: 13}) {
		t.Fatalf("rate-only update changed enabled: %+v", view.VAT)
	}

	off := false
	view, err = uc.SetVAT(ctx, s.ID, &off, nil)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if view.VAT != (offerbuilder.VATConfig{Enabled: false, Rate: 13}) {
		t.Fatalf("enabled-only update changed rate: %+v", view.VAT)
	}

	on, bad := true, 120.0
	if _, err := uc.SetVAT(ctx, s.ID, &on, &bad); !errors.Is(err, offerbuilder.ErrInvalidVATRate) {
		t.Fatalf("expected ErrInvalidVATRate, got %v", err)
	}
	got, _ := uc.GetSession(ctx, s.ID)
	if got.VAT != (offerbuilder.VATConfig{Enabled: false, Rate: 13}) {
		t.Fatalf("rejected update leaked: %+v", got.VAT)
	}

	if _, err := uc.SetVAT(ctx, "missing", &on, nil); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestOfferBuilderUseCase_SetVATConcurrentFieldsBothLand(t *testing.T) {
	ctx := context.Background()
	uc := newBuilder(t)
	s, _ := uc.CreateSession(ctx)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		off, rate := false, 13.0
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = uc.SetVAT(ctx, s.ID, &off, nil)
		}()
		go func() {
			defer wg.Done()
			_, _ = uc.SetVAT(ctx, s.ID, nil, &rate)
		}()
	}
	wg.Wait()

	got, _ := uc.GetSession(ctx, s.ID)
	if got.VAT != (offerbuilder.VATConfig{Enabled: false, Rate: 13}) {
		t.Fatalf("lost update: %+v", got.VAT)
	}
}

func TestOfferBuilderUseCase_SaveRequiresCustomer(t *testing.T) {
	ctx := context.Background()
	uc := newBuilder(t)
	s, _ := uc.CreateSession(ctx)
	_, _ = uc.Parse(ctx, s.ID, "exterior", "walls", "τρίψιμο")

	before, err := uc.ListSavedOffers(ctx)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := uc.Save(ctx, s.ID); !errors.Is(err, offerbuilder.ErrCustomerRequired) {
		t.Fatalf("expected ErrCustomerRequired, got %v", err)
	}
	after, _ := uc.ListSavedOffers(ctx)
	if len(after) != len(before) {
		t.Fatalf("saved list changed: %d -> %d", len(before), len(after))
	}
}

func TestOfferBuilderUseCase_SaveSnapshotIsFrozen(t *testing.T) {
	ctx := context.Background()
	uc := newBuilder(t)
	s, _ := uc.CreateSession(ctx)
	res, _ := uc.Parse(ctx, s.ID, "exterior", "walls", "τρίψιμο")
	if _, err := uc.SetHeader(ctx, s.ID, offerbuilder.Header{Customer: "Νίκος", Project: "Σπίτι"}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	first, err := uc.Save(ctx, s.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	qty := 100.0
	if _, err := uc.UpdateLine(ctx, s.ID, res.Added[0].ID, LineUpdate{Quantity: &qty}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	second, err := uc.Save(ctx, s.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	list, _ := uc.ListSavedOffers(ctx)
	if len(list) != 2 || list[0].ID != second.ID || list[1].ID != first.ID {
		t.Fatalf("expected newest first, got %+v", list)
	}
	if list[1].Total != first.Total || list[1].Lines[0].Quantity != 1 {
		t.Fatalf("first saved offer changed: %+v", list[1])
	}
	if list[0].Status != entities.SavedOfferStatusPending {
		t.Fatalf("expected pending, got %s", list[0].Status)
	}
}

func TestOfferBuilderUseCase_AcceptAndDelete(t *testing.T) {
	ctx := context.Background()
	uc := newBuilder(t)
	s, _ := uc.CreateSession(ctx)
	_, _ = uc.SetHeader(ctx, s.ID, offerbuilder.Header{Customer: "Ελένη"})
	saved, _ := uc.Save(ctx, s.ID)

	got, err := uc.AcceptSavedOffer(ctx, saved.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Status != entities.SavedOfferStatusAccepted {
		t.Fatalf("expected accepted, got %s", got.Status)
	}
	if _, err := uc.AcceptSavedOffer(ctx, saved.ID); !errors.Is(err, ErrSavedOfferNotPending) {
		t.Fatalf("expected ErrSavedOfferNotPending, got %v", err)
	}
	if err := uc.DeleteSavedOffer(ctx, saved.ID); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := uc.DeleteSavedOffer(ctx, saved.ID); !errors.Is(err, ErrSavedOfferNotFound) {
		t.Fatalf("expected ErrSavedOfferNotFound, got %v", err)
	}
}

func TestOfferBuilderUseCase_StoreFailureKeepsList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mock_interfaces.NewMockISavedOfferStore(ctrl)
	uc := NewOfferBuilderUseCase(offerbuilder.DefaultCatalog(), store, nil, 24)
	ctx := context.Background()

	existing := []entities.SavedOffer{{ID: "o1", CustomerName: "A", Status: entities.SavedOfferStatusPending}}
	store.EXPECT().Load(gomock.Any()).Return(existing, nil)
	store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("disk full")).Times(2)

	s, _ := uc.CreateSession(ctx)
	_, _ = uc.SetHeader(ctx, s.ID, offerbuilder.Header{Customer: "B"})
	if _, err := uc.Save(ctx, s.ID); err == nil {
		t.Fatalf("expected store error")
	}
	if _, err := uc.AcceptSavedOffer(ctx, "o1"); err == nil {
		t.Fatalf("expected store error")
	}

	list, err := uc.ListSavedOffers(ctx)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(list) != 1 || list[0].Status != entities.SavedOfferStatusPending {
		t.Fatalf("list changed after failed writes: %+v", list)
	}
}

func TestOfferBuilderUseCase_Export(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	exporter := mock_interfaces.NewMockIDocumentExporter(ctrl)
	uc := NewOfferBuilderUseCase(offerbuilder.DefaultCatalog(), localstore.NewMemoryStore(), exporter, 24)
	ctx := context.Background()

	s, _ := uc.CreateSession(ctx)
	_, _ = uc.SetHeader(ctx, s.ID, offerbuilder.Header{Customer: "Γιάννης Π.", Project: "Βίλα/2"})
	_, _ = uc.Parse(ctx, s.ID, "interior", "walls", "σπατουλάρισμα")

	exporter.EXPECT().Export(gomock.Any()).DoAndReturn(func(doc offerbuilder.Document) ([]byte, error) {
		if len(doc.Blocks) == 0 || doc.Blocks[0].Kind != offerbuilder.BlockTitle {
			t.Fatalf("unexpected document: %+v", doc.Blocks)
		}
		return []byte("docx"), nil
	})
	exporter.EXPECT().ContentType().Return("application/octet-stream")

	out, err := uc.Export(ctx, s.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if out.Filename != "Γιάννης Π.docx" {
		t.Fatalf("unexpected filename %q", out.Filename)
	}
	if string(out.Data) != "docx" {
		t.Fatalf("unexpected data %q", out.Data)
	}
}

func TestOfferBuilderUseCase_DiscardSession(t *testing.T) {
	ctx := context.Background()
	uc := newBuilder(t)
	s, _ := uc.CreateSession(ctx)

	if err := uc.DiscardSession(ctx, s.ID); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := uc.GetSession(ctx, s.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}
