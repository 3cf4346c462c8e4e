package offerbuilder

import (
	"errors"
	"fmt"

	"palettepad/internal/domain/entities"
)

var ErrDuplicateCatalogKey = errors.New("duplicate catalog key")

// CatalogItem is an immutable priced work item.
type CatalogItem struct {
	Area             entities.Area    `json:"area"`
	SubArea          entities.SubArea `json:"sub_area"`
	Job              entities.Job     `json:"job"`
	Unit             string           `json:"unit"`
	DefaultUnitPrice float64          `json:"default_unit_price"`
	Label            string           `json:"label"`
	Sentence         string           `json:"sentence"`
}

func (i CatalogItem) Key() entities.CatalogKey {
	return entities.CatalogKey{Area: i.Area, SubArea: i.SubArea, Job: i.Job}
}

// Catalog is a read-only lookup table keyed by (area, sub-area, job).
type Catalog struct {
	items []CatalogItem
	index map[entities.CatalogKey]CatalogItem
}

func NewCatalog(items []CatalogItem) (*Catalog, error) {
	c := &Catalog{
		items: make([]CatalogItem, 0, len(items)),
		index: make(map[entities.CatalogKey]CatalogItem, len(items)),
	}
	for _, it := range items {
		k := it.Key()
		if _, ok := c.index[k]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCatalogKey, k)
		}
		c.index[k] = it
		c.items = append(c.items, it)
	}
	return c, nil
}

func (c *Catalog) Lookup(area entities.Area, sub entities.SubArea, job entities.Job) (CatalogItem, bool) {
	it, ok := c.index[entities.CatalogKey{Area: area, SubArea: sub, Job: job}]
	return it, ok
}

// Items returns the catalog in declaration order.
func (c *Catalog) Items() []CatalogItem {
	return append([]CatalogItem(nil), c.items...)
}

func (c *Catalog) Len() int { return len(c.items) }

// DefaultCatalog returns the built-in painting catalog.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(defaultItems)
	if err != nil {
		panic(err)
	}
	return c
}

const (
	unitSquareMeter = "m²"
	unitPiece       = "τεμ."
)

func item(a entities.Area, s entities.SubArea, j entities.Job, unit string, price float64, label, sentence string) CatalogItem {
	return CatalogItem{Area: a, SubArea: s, Job: j, Unit: unit, DefaultUnitPrice: price, Label: label, Sentence: sentence}
}

const (
	ext   = entities.AreaExterior
	inter = entities.AreaInterior
)

var defaultItems = []CatalogItem{
	// exterior walls
	item(ext, entities.SubAreaWalls, entities.JobSanding, unitSquareMeter, 5,
		"Τοίχοι — Τρίψιμο (εξωτερικά)",
		"Τρίψιμο για προετοιμασία των επιφανειών."),
	item(ext, entities.SubAreaWalls, entities.JobPriming, unitSquareMeter, 3,
		"Τοίχοι — Αστάρι (1 χέρι)",
		"Ένα χέρι αστάρι, για την καλύτερη πρόσφυση και αντοχή του χρώματος."),
	item(ext, entities.SubAreaWalls, entities.JobPaint2, unitSquareMeter, 9,
		"Τοίχοι — Βάψιμο (2 χέρια)",
		"Βάψιμο τοίχου με 2 χέρια ακρυλικά χρώματα, ειδικά για εξωτερικούς χώρους."),
	item(ext, entities.SubAreaWalls, entities.JobSpackle, unitSquareMeter, 6.5,
		"Τοίχοι — Σπατουλάρισμα (εξωτερικά)",
		"Σπατουλάρισμα για επιπεδοποίηση και διόρθωση ατελειών."),
	item(ext, entities.SubAreaWalls, entities.JobPaint3, unitSquareMeter, 12,
		"Τοίχοι — Βάψιμο (3 χέρια)",
		"Βάψιμο τοίχου με 3 χέρια ακρυλικά χρώματα, ειδικά για εξωτερικούς χώρους, ανθεκτικά στον ήλιο, την υγρασία και τις καιρικές συνθήκες."),

	// exterior wood
	item(ext, entities.SubAreaWood, entities.JobSanding, unitSquareMeter, 6,
		"Ξύλα — Τρίψιμο (εξωτερικά)",
		"Τρίψιμο για απομάκρυνση παλαιών στρώσεων και ατελειών."),
	item(ext, entities.SubAreaWood, entities.JobCleaning, unitSquareMeter, 2.5,
		"Ξύλα — Καθάρισμα (εξωτερικά)",
		"Καθάρισμα επιφανειών για απομάκρυνση σκόνης και ρύπων πριν την εφαρμογή."),
	item(ext, entities.SubAreaWood, entities.JobPriming, unitSquareMeter, 3,
		"Ξύλα — Αστάρι",
		"Εφαρμογή ασταριού για καλύτερη πρόσφυση και προστασία του υποστρώματος."),
	item(ext, entities.SubAreaWood, entities.JobPaint2, unitSquareMeter, 8.5,
		"Ξύλα — Βάψιμο (2 χέρια)",
		"Βάψιμο με 2 χέρια χρώμα, για προστασία και αισθητικό αποτέλεσμα."),
	item(ext, entities.SubAreaWood, entities.JobPaint3, unitSquareMeter, 10.5,
		"Ξύλα — Βάψιμο (3 χέρια)",
		"Βάψιμο με 3 χέρια χρώμα, για ενισχυμένη προστασία και ομοιόμορφο φινίρισμα."),
	item(ext, entities.SubAreaWood, entities.JobVarnishing, unitSquareMeter, 9,
		"Ξύλα — Βερνίκι",
		"Εφαρμογή βερνικιού για μακροχρόνια προστασία και ανάδειξη της υφής."),

	// exterior rails
	item(ext, entities.SubAreaRails, entities.JobSanding, unitSquareMeter, 6.5,
		"Κάγκελα — Τρίψιμο",
		"Τρίψιμο για αφαίρεση παλαιών στρώσεων και οξείδωσης."),
	item(ext, entities.SubAreaRails, entities.JobVarnishing, unitSquareMeter, 9.5,
		"Κάγκελα — Βερνίκι",
		"Εφαρμογή βερνικιού για προστασία από οξείδωση και ομοιόμορφο φινίρισμα."),
	item(ext, entities.SubAreaRails, entities.JobCleaning, unitSquareMeter, 2.5,
		"Κάγκελα — Καθάρισμα",
		"Καθάρισμα μεταλλικών επιφανειών για σωστή πρόσφυση."),
	item(ext, entities.SubAreaRails, entities.JobPriming, unitSquareMeter, 3,
		"Κάγκελα — Αστάρι",
		"Αστάρι αντισκωριακό για προστασία και καλύτερη πρόσφυση."),
	item(ext, entities.SubAreaRails, entities.JobPaint2, unitSquareMeter, 9,
		"Κάγκελα — Βάψιμο (2 χέρια)",
		"Βάψιμο με 2 χέρια κατάλληλα μεταλλικά χρώματα για αντοχή στις καιρικές συνθήκες."),
	item(ext, entities.SubAreaRails, entities.JobPaint3, unitSquareMeter, 11,
		"Κάγκελα — Βάψιμο (3 χέρια)",
		"Βάψιμο με 3 χέρια για μέγιστη προστασία και ομοιόμορφο αποτέλεσμα."),

	// exterior tiles
	item(ext, entities.SubAreaTiles, entities.JobCleaning, unitSquareMeter, 3,
		"Κεραμίδια — Καθάρισμα",
		"Καθάρισμα κεραμιδιών για απομάκρυνση ρύπων και βιοfilm."),
	item(ext, entities.SubAreaTiles, entities.JobPaint2, unitSquareMeter, 10,
		"Κεραμίδια — Βάψιμο (2 χέρια)",
		"Βάψιμο με 2 χέρια χρώμα, για προστασία της επιφάνειας και ομοιόμορφο αισθητικό αποτέλεσμα."),
	item(ext, entities.SubAreaTiles, entities.JobPaint3, unitSquareMeter, 12,
		"Κεραμίδια — Βάψιμο (3 χέρια)",
		"Βάψιμο με 3 χέρια για ενισχυμένη προστασία και αντοχή."),

	// exterior repairs
	item(ext, entities.SubAreaRepairs, entities.JobRepairs, unitPiece, 30,
		"Μερεμέτια (εξωτερικά)",
		"Εργασίες μερεμετιών για την αποκατάσταση και επισκευή φθορών."),

	// interior walls
	item(inter, entities.SubAreaWalls, entities.JobSanding, unitSquareMeter, 5,
		"Τοίχοι — Τρίψιμο (εσωτερικά)",
		"Τρίψιμο ώστε να δημιουργηθεί λεία επιφάνεια."),
	item(inter, entities.SubAreaWalls, entities.JobPriming, unitSquareMeter, 3,
		"Τοίχοι — Αστάρωμα",
		"Αστάρωμα, για την καλύτερη πρόσφυση του χρώματος."),
	item(inter, entities.SubAreaWalls, entities.JobSpackle, unitSquareMeter, 6,
		"Τοίχοι — Σπατουλαριστά",
		"Σπατουλαριστά για επιπεδοποίηση των τοίχων."),
	item(inter, entities.SubAreaWalls, entities.JobPaint2, unitSquareMeter, 8,
		"Τοίχοι — Βάψιμο (2 χέρια)",
		"Βάψιμο με 2 χέρια πλαστικά χρώματα, κατάλληλα για εσωτερικούς χώρους."),
	item(inter, entities.SubAreaWalls, entities.JobPaint3, unitSquareMeter, 11,
		"Τοίχοι — Βάψιμο (3 χέρια)",
		"Βάψιμο με 3 χέρια πλαστικά χρώματα, κατάλληλα για εσωτερικούς χώρους, με αντοχή στο πλύσιμο και ομοιόμορφο φινίρισμα."),
	item(inter, entities.SubAreaWalls, entities.JobCleaning, unitSquareMeter, 2.5,
		"Τοίχοι — Καθάρισμα (εσωτερικά)",
		"Καθάρισμα επιφανειών πριν από τις εργασίες για σωστή πρόσφυση."),

	// interior wood
	item(inter, entities.SubAreaWood, entities.JobSanding, unitSquareMeter, 5.5,
		"Ξύλα — Τρίψιμο (εσωτερικά)",
		"Τρίψιμο για απομάκρυνση ατελειών και παλαιών στρώσεων."),
	item(inter, entities.SubAreaWood, entities.JobCleaning, unitSquareMeter, 2.5,
		"Ξύλα — Καθάρισμα (εσωτερικά)",
		"Καθάρισμα ξύλινων επιφανειών πριν την εφαρμογή υλικών."),
	item(inter, entities.SubAreaWood, entities.JobPriming, unitSquareMeter, 3,
		"Ξύλα — Αστάρι",
		"Αστάρι για σταθεροποίηση και πρόσφυση."),
	item(inter, entities.SubAreaWood, entities.JobPaint2, unitSquareMeter, 8,
		"Ξύλα — Βάψιμο (2 χέρια)",
		"Βάψιμο με 2 χέρια χρώμα, για προστασία και αισθητικό αποτέλεσμα."),
	item(inter, entities.SubAreaWood, entities.JobPaint3, unitSquareMeter, 10,
		"Ξύλα — Βάψιμο (3 χέρια)",
		"Βάψιμο με 3 χέρια για ενισχυμένη κάλυψη και φινίρισμα."),
	item(inter, entities.SubAreaWood, entities.JobVarnishing, unitSquareMeter, 8.5,
		"Ξύλα — Βερνίκι",
		"Εφαρμογή βερνικιού για ανθεκτικότητα και ανάδειξη της υφής."),

	// interior rails
	item(inter, entities.SubAreaRails, entities.JobSanding, unitSquareMeter, 6,
		"Κάγκελα — Τρίψιμο (εσωτερικά)",
		"Τρίψιμο μεταλλικών επιφανειών για αφαίρεση φθορών."),
	item(inter, entities.SubAreaRails, entities.JobCleaning, unitSquareMeter, 2.5,
		"Κάγκελα — Καθάρισμα (εσωτερικά)",
		"Καθάρισμα για απομάκρυνση ρύπων και σωστή πρόσφυση."),
	item(inter, entities.SubAreaRails, entities.JobPriming, unitSquareMeter, 3,
		"Κάγκελα — Αστάρι",
		"Αντισκωριακό αστάρι για προστασία και πρόσφυση."),
	item(inter, entities.SubAreaRails, entities.JobPaint2, unitSquareMeter, 8.5,
		"Κάγκελα — Βάψιμο (2 χέρια)",
		"Βάψιμο με 2 χέρια μεταλλικά χρώματα."),
	item(inter, entities.SubAreaRails, entities.JobVarnishing, unitSquareMeter, 9,
		"Κάγκελα — Βερνίκι (εσωτερικά)",
		"Εφαρμογή βερνικιού για προστασία και αισθητικό αποτέλεσμα."),
	item(inter, entities.SubAreaRails, entities.JobPaint3, unitSquareMeter, 10.5,
		"Κάγκελα — Βάψιμο (3 χέρια)",
		"Βάψιμο με 3 χέρια για υψηλή αντοχή."),

	// interior tiles
	item(inter, entities.SubAreaTiles, entities.JobCleaning, unitSquareMeter, 3,
		"Κεραμίδια — Καθάρισμα (εσωτερικά)",
		"Καθάρισμα επιφανειών κεραμιδιών."),
	item(inter, entities.SubAreaTiles, entities.JobPaint2, unitSquareMeter, 9.5,
		"Κεραμίδια — Βάψιμο (2 χέρια, εσωτερικά)",
		"Βάψιμο με 2 χέρια για ομοιόμορφο αποτέλεσμα."),
	item(inter, entities.SubAreaTiles, entities.JobPaint3, unitSquareMeter, 11.5,
		"Κεραμίδια — Βάψιμο (3 χέρια, εσωτερικά)",
		"Βάψιμο με 3 χέρια για ενισχυμένη αντοχή."),

	// interior repairs
	item(inter, entities.SubAreaRepairs, entities.JobRepairs, unitPiece, 25,
		"Μερεμέτια (εσωτερικά)",
		"Εργασίες μερεμετιών για την αποκατάσταση και επισκευή φθορών."),
}
