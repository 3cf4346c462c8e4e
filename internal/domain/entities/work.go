package entities

import "strings"

// Area is the top-level work location of an offer line.
type Area string

const (
	AreaExterior Area = "exterior"
	AreaInterior Area = "interior"
)

// SubArea is the work surface category inside an area.
type SubArea string

const (
	SubAreaWalls   SubArea = "walls"
	SubAreaWood    SubArea = "wood"
	SubAreaRails   SubArea = "rails"
	SubAreaTiles   SubArea = "tiles"
	SubAreaRepairs SubArea = "repairs"
)

// Job is a specific priced task.
type Job string

const (
	JobSanding    Job = "sanding"
	JobCleaning   Job = "cleaning"
	JobPriming    Job = "priming"
	JobPaint2     Job = "paint2"
	JobPaint3     Job = "paint3"
	JobVarnishing Job = "varnishing"
	JobRepairs    Job = "repairs"
	JobSpackle    Job = "spackle"
)

// Areas and SubAreas list the values in presentation order.
var (
	Areas    = []Area{AreaExterior, AreaInterior}
	SubAreas = []SubArea{SubAreaWalls, SubAreaWood, SubAreaRails, SubAreaTiles, SubAreaRepairs}
)

var areaTitles = map[Area]string{
	AreaExterior: "Εξωτερικά",
	AreaInterior: "Εσωτερικά",
}

var subAreaTitles = map[SubArea]string{
	SubAreaWalls:   "Τοίχοι",
	SubAreaWood:    "Ξύλα",
	SubAreaRails:   "Κάγκελα",
	SubAreaTiles:   "Κεραμίδια",
	SubAreaRepairs: "Μερεμέτια",
}

func (a Area) Valid() bool {
	_, ok := areaTitles[a]
	return ok
}

func (a Area) Title() string { return areaTitles[a] }

func (s SubArea) Valid() bool {
	_, ok := subAreaTitles[s]
	return ok
}

func (s SubArea) Title() string { return subAreaTitles[s] }

// ParseArea accepts the lowercase identifier with surrounding spaces.
func ParseArea(v string) (Area, bool) {
	a := Area(strings.ToLower(strings.TrimSpace(v)))
	return a, a.Valid()
}

func ParseSubArea(v string) (SubArea, bool) {
	s := SubArea(strings.ToLower(strings.TrimSpace(v)))
	return s, s.Valid()
}

// CatalogKey uniquely identifies a priced catalog item.
type CatalogKey struct {
	Area    Area
	SubArea SubArea
	Job     Job
}

func (k CatalogKey) String() string {
	return string(k.Area) + ":" + string(k.SubArea) + ":" + string(k.Job)
}
