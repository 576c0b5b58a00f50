package models

import "fmt"

// UserRating is the enumerated review scale, stored as text.
type UserRating string

const (
	UserRatingTerrible  UserRating = "Terrible"
	UserRatingBad       UserRating = "Bad"
	UserRatingAverage   UserRating = "Average"
	UserRatingGood      UserRating = "Good"
	UserRatingExcellent UserRating = "Excellent"
)

var userRatings = map[UserRating]struct{}{
	UserRatingTerrible:  {},
	UserRatingBad:       {},
	UserRatingAverage:   {},
	UserRatingGood:      {},
	UserRatingExcellent: {},
}

// ParseUserRating converts a rating string to its enum value. Parsing is
// strict: the empty string and unknown values are errors.
func ParseUserRating(value string) (UserRating, error) {
	rating := UserRating(value)
	if _, ok := userRatings[rating]; !ok {
		return "", fmt.Errorf("unknown user rating %q", value)
	}
	return rating, nil
}

// Review exists iff its UserMedia has ever received a non-empty rating or
// text submission; never created eagerly, never deleted on its own.
type Review struct {
	ReviewID    int        `gorm:"primaryKey;autoIncrement" json:"reviewId"`
	UserID      int        `gorm:"not null;index" json:"userId"`
	MediaID     int        `gorm:"not null;index" json:"mediaId"`
	UserMediaID int        `gorm:"not null;uniqueIndex" json:"userMediaId"`
	UserRating  UserRating `gorm:"size:50;not null" json:"userRating"`
	ReviewText  string     `gorm:"size:1000" json:"reviewText"`

	User  *User  `gorm:"foreignKey:UserID" json:"-"`
	Media *Media `gorm:"foreignKey:MediaID" json:"-"`
}
