package offerbuilder

import (
	"palettepad/internal/domain/entities"
)

// tokenKind tells the resolver what a normalized keyword stands for.
type tokenKind int

const (
	tokenUnknown tokenKind = iota
	tokenJob
	tokenPaint
)

var keywordJobs = map[string]entities.Job{
	"τριψιμο":       entities.JobSanding,
	"sanding":       entities.JobSanding,
	"καθαρισμα":     entities.JobCleaning,
	"cleaning":      entities.JobCleaning,
	"clean":         entities.JobCleaning,
	"ασταρι":        entities.JobPriming,
	"ασταρωμα":      entities.JobPriming,
	"primer":        entities.JobPriming,
	"priming":       entities.JobPriming,
	"βερνικι":       entities.JobVarnishing,
	"varnish":       entities.JobVarnishing,
	"μερεμετια":     entities.JobRepairs,
	"μερεμετι":      entities.JobRepairs,
	"repairs":       entities.JobRepairs,
	"σπατουλαρισμα": entities.JobSpackle,
	"σπατουλαριστα": entities.JobSpackle,
	"σπατουλα":      entities.JobSpackle,
	"spackle":       entities.JobSpackle,
}

var paintKeywords = map[string]struct{}{
	"χρωμα": {},
	"paint": {},
}

func classify(token string) (tokenKind, entities.Job) {
	if job, ok := keywordJobs[token]; ok {
		return tokenJob, job
	}
	if _, ok := paintKeywords[token]; ok {
		return tokenPaint, ""
	}
	return tokenUnknown, ""
}

// CoatJob maps a coat count to its paint job.
func CoatJob(coats int) (entities.Job, bool) {
	switch coats {
	case 2:
		return entities.JobPaint2, true
	case 3:
		return entities.JobPaint3, true
	}
	return "", false
}

// ParseResult reports what a keyword blob did to the session.
type ParseResult struct {
	Added   []entities.SelectedLine      `json:"added"`
	Pending []entities.PendingCoatChoice `json:"pending"`
	Ignored []string                     `json:"ignored"`
}

// Resolver maps tokens to catalog items within an (area, sub-area) context.
type Resolver struct {
	catalog *Catalog
}

func NewResolver(catalog *Catalog) *Resolver {
	return &Resolver{catalog: catalog}
}

// Resolve walks blob's tokens in order. Job tokens add catalog lines to acc,
// every paint token asks onPaint for a new coat choice, anything else is
// ignored.
// Catalog misses are skipped silently.
func (r *Resolver) Resolve(
	area entities.Area,
	sub entities.SubArea,
	blob string,
	acc *Accumulator,
	onPaint func(area entities.Area, sub entities.SubArea) entities.PendingCoatChoice,
) ParseResult {
	res := ParseResult{}
	for tok := range Tokens(blob) {
		kind, job := classify(tok)
		switch kind {
		case tokenJob:
			it, ok := r.catalog.Lookup(area, sub, job)
			if !ok {
				continue
			}
			if line, added := acc.AddLine(it); added {
				res.Added = append(res.Added, line)
			}
		case tokenPaint:
			res.Pending = append(res.Pending, onPaint(area, sub))
		default:
			res.Ignored = append(res.Ignored, tok)
		}
	}
	return res
}

// ResolveCoats looks up the paint job for a resolved coat choice.
func (r *Resolver) ResolveCoats(choice entities.PendingCoatChoice, coats int) (CatalogItem, bool) {
	job, ok := CoatJob(coats)
	if !ok {
		return CatalogItem{}, false
	}
	return r.catalog.Lookup(choice.Area, choice.SubArea, job)
}
