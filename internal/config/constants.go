package config

// GeometryFileExt is the canonical geometry file extension.
const GeometryFileExt = ".off"

// GeometryFileExtensions are all recognized geometry file extensions
var GeometryFileExtensions = []string{".off", ".OFF"}

// HeaderMarker starts the annotated comment line that stores a serialized
// name at the top of a geometry file. Lines that don't begin with it are
// ordinary file content.
const HeaderMarker = "#/polyname"

// Floating point tolerances used when comparing dualizing centers.
// One per concrete precision regime; abstract names never compare numbers.
const (
	EpsSingle = 1e-5
	EpsDouble = 1e-9
)

// Rank bounds for generic names. Ranks below MinGenericRank always have a
// hardcoded name; ranks above MaxGenericRank are not supported.
const (
	MinGenericRank = 3
	MaxGenericRank = 20
)

// MinGenericFacets is the smallest facet count a generic name may carry.
const MinGenericFacets = 2

// Regime tags used in serialized name headers.
const (
	RegimeTagAbstract = "abs"
	RegimeTagSingle   = "con32"
	RegimeTagDouble   = "con64"
)

// DefaultLibraryFile is the sqlite database used by the library index when
// no explicit path is configured.
const DefaultLibraryFile = "polyname.db"
