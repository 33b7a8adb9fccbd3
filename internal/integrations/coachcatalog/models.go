package coachcatalog

// Coach модель коуча из каталога
type Coach struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	PricePerSession float64 `json:"price_per_session"`
}
