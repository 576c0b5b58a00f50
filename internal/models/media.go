package models

// Media is shared catalog reference data, independent of any user.
type Media struct {
	MediaID    int      `gorm:"primaryKey;autoIncrement" json:"mediaId"`
	Type       string   `json:"type"`
	Title      string   `gorm:"size:1000;not null" json:"title"`
	Year       string   `gorm:"size:9" json:"year"`
	Runtime    string   `gorm:"size:30" json:"runtime"`
	Director   string   `json:"director"`
	Writer     string   `json:"writer"`
	Actors     string   `json:"actors"`
	Plot       string   `gorm:"size:2000" json:"plot"`
	Language   string   `json:"language"`
	Country    string   `json:"country"`
	Poster     string   `json:"poster"`
	ImdbID     string   `gorm:"column:imdb_id;index" json:"imdbId"`
	ImdbRating *float64 `gorm:"column:imdb_rating" json:"imdbRating,omitempty"`
	ImdbVotes  string   `gorm:"column:imdb_votes" json:"imdbVotes"`

	Genres []Genre `gorm:"many2many:media_genres" json:"genres,omitempty"`

	// Dependent rows removed when the media row is deleted.
	UserMedias []UserMedia `gorm:"foreignKey:MediaID;constraint:OnDelete:CASCADE" json:"-"`
	Reviews    []Review    `gorm:"foreignKey:MediaID;constraint:OnDelete:CASCADE" json:"-"`
}

type Genre struct {
	GenreID int    `gorm:"primaryKey;autoIncrement" json:"genreId"`
	Name    string `gorm:"uniqueIndex;not null" json:"name"`

	Medias []Media `gorm:"many2many:media_genres" json:"-"`
}
