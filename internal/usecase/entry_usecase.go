package usecase

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"time"

	"palettepad/internal/domain/entities"
	"palettepad/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrInvalidEntryID      = errors.New("invalid entry id")
	ErrInvalidEntryName    = errors.New("entry name is required")
	ErrInvalidEntryPalette = errors.New("entry palette is required")
	ErrInvalidEntryCode    = errors.New("entry color code is required")
	ErrNothingToExport     = errors.New("nothing to export")
)

// EntriesCSVFilename is the download name of the color log export.
const EntriesCSVFilename = "palettepad-color-log.csv"

// NewEntry is the input of IEntryUseCase.Add. When is optional.
type NewEntry struct {
	When    string
	Name    string
	Palette string
	Code    string
}

// IEntryUseCase exposes the PalettePad color log.
type IEntryUseCase interface {
	List(ctx context.Context) ([]entities.Entry, error)
	Add(ctx context.Context, in NewEntry) (entities.Entry, error)
	Delete(ctx context.Context, id string) error
	Clear(ctx context.Context) error
	ExportCSV(ctx context.Context) ([]byte, error)
}

type EntryUseCase struct {
	repo interfaces.IEntryRepository
	now  func() time.Time
}

var _ IEntryUseCase = (*EntryUseCase)(nil)

func NewEntryUseCase(repo interfaces.IEntryRepository) *EntryUseCase {
	return &EntryUseCase{repo: repo, now: time.Now}
}

func (u *EntryUseCase) List(ctx context.Context) ([]entities.Entry, error) {
	return u.repo.List(ctx)
}

func (u *EntryUseCase) Add(ctx context.Context, in NewEntry) (entities.Entry, error) {
	e := entities.Entry{
		ID:      newID(idPrefixEntry),
		When:    strings.TrimSpace(in.When),
		Name:    strings.TrimSpace(in.Name),
		Palette: strings.TrimSpace(in.Palette),
		Code:    strings.TrimSpace(in.Code),
	}
	switch {
	case e.Name == "":
		return entities.Entry{}, ErrInvalidEntryName
	case e.Palette == "":
		return entities.Entry{}, ErrInvalidEntryPalette
	case e.Code == "":
		return entities.Entry{}, ErrInvalidEntryCode
	}
	if e.When == "" {
		e.When = u.now().UTC().Format(time.RFC3339)
	}

	created, err := u.repo.Create(ctx, e)
	if err != nil {
		zap.S().Errorf("[entry][usecase] create failed name=%q err=%v", e.Name, err)
		return entities.Entry{}, err
	}
	zap.S().Infof("[entry][usecase] created id=%s palette=%s code=%s", created.ID, created.Palette, created.Code)
	return created, nil
}

func (u *EntryUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidEntryID
	}
	return u.repo.Delete(ctx, id)
}

func (u *EntryUseCase) Clear(ctx context.Context) error {
	if err := u.repo.DeleteAll(ctx); err != nil {
		zap.S().Errorf("[entry][usecase] clear failed err=%v", err)
		return err
	}
	zap.S().Infof("[entry][usecase] cleared all entries")
	return nil
}

func (u *EntryUseCase) ExportCSV(ctx context.Context) ([]byte, error) {
	rows, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNothingToExport
	}
	return EntriesCSV(rows), nil
}

// EntriesCSV writes a header row followed by one row per entry. Every data
// field is quoted and inner quotes are doubled.
func EntriesCSV(rows []entities.Entry) []byte {
	var b bytes.Buffer
	b.WriteString("when,name,palette,code")
	for _, r := range rows {
		b.WriteByte('\n')
		for i, v := range []string{r.When, r.Name, r.Palette, r.Code} {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteByte('"')
			b.WriteString(strings.ReplaceAll(v, `"`, `""`))
			b.WriteByte('"')
		}
	}
	return b.Bytes()
}
