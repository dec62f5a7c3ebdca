package dto

type HospitalResponse struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Phone   string `json:"phone"`
}

type CoordinateResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type SearchResponse struct {
	Hospitals []HospitalResponse  `json:"hospitals"`
	MapCenter *CoordinateResponse `json:"map_center,omitempty"`
	Total     int                 `json:"total"`
}
