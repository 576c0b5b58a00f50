package dto

type MediaRequest struct {
	Type     string   `json:"type"`
	Title    string   `json:"title" validate:"required,max=1000"`
	Year     string   `json:"year" validate:"max=9"`
	Runtime  string   `json:"runtime" validate:"max=30"`
	Director string   `json:"director"`
	Writer   string   `json:"writer"`
	Actors   string   `json:"actors"`
	Plot     string   `json:"plot" validate:"max=2000"`
	Language string   `json:"language"`
	Country  string   `json:"country"`
	Poster   string   `json:"poster"`
	ImdbID   string   `json:"imdbId"`
	Genres   []string `json:"genres"`
}

type ImportMediaRequest struct {
	ImdbID string `json:"imdbId" validate:"required"`
}
