package domain

// Coordinates is a WGS84 lat/lng pair.
type Coordinates struct {
	Lat float64
	Lng float64
}

// Valid reports whether the pair is within WGS84 bounds.
// A zero value (0,0) is treated as unresolved, not as a point in the
// Gulf of Guinea; places in this system never legitimately sit there.
func (c Coordinates) Valid() bool {
	if c.Lat == 0 && c.Lng == 0 {
		return false
	}
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}

// Location is a named place. Coordinates may be unresolved for
// search-result candidates; routing requires them to be valid.
type Location struct {
	Address     string
	Coordinates Coordinates
	City        string
	Region      string
	Country     string
	PlaceTags   []string
}

// HasTag reports whether the location carries the given place tag.
func (l Location) HasTag(tag string) bool {
	for _, t := range l.PlaceTags {
		if t == tag {
			return true
		}
	}
	return false
}
