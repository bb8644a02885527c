package geoip

type Location struct {
	City    string
	Region  string
	Country string
	Lat     float64
	Lon     float64
}

type lookupResponse struct {
	Status     string  `json:"status"`
	City       string  `json:"city"`
	RegionName string  `json:"regionName"`
	Country    string  `json:"country"`
	Lat        float64 `json:"lat"`
	Lon        float64 `json:"lon"`
}
