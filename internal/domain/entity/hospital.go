package entity

// HospitalRecord is one entry from the hospital directory. Phone is optional;
// the empty string is preserved here and any display default belongs to the
// presentation layer, not this structure.
type HospitalRecord struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Phone   string `json:"phone,omitempty"`
}

// Coordinate is a geocoded map position.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// SearchResult is the merged outcome of a postal-code search. MapCenter is
// nil when geocoding returned no match, in which case the previous map center
// is left untouched by consumers.
type SearchResult struct {
	Hospitals []HospitalRecord
	MapCenter *Coordinate
}
