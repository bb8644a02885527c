package places

// Place is the slice of a listing the estimate endpoints care about.
type Place struct {
	Name           string
	Address        string
	Rating         float64
	ReviewCount    int
	PlaceID        string
	BusinessStatus string
}

type findPlaceResponse struct {
	Status       string      `json:"status"`
	ErrorMessage string      `json:"error_message"`
	Candidates   []candidate `json:"candidates"`
}

type candidate struct {
	Name             string  `json:"name"`
	FormattedAddress string  `json:"formatted_address"`
	Rating           float64 `json:"rating"`
	UserRatingsTotal int     `json:"user_ratings_total"`
	PlaceID          string  `json:"place_id"`
	BusinessStatus   string  `json:"business_status"`
}
