package dto

type AddUserMediaRequest struct {
	UserID      int    `json:"userId" validate:"required,gt=0"`
	MediaID     int    `json:"mediaId" validate:"required,gt=0"`
	MediaStatus string `json:"mediaStatus" validate:"required,oneof=Wishlist Watching Finished"`
	Note        string `json:"note" validate:"max=1000"`
}

// UpdateUserMediaRequest carries the watch-status fields and the review
// payload. A non-empty userRating or reviewText triggers the lazy review
// lifecycle.
type UpdateUserMediaRequest struct {
	UserMediaID int     `json:"userMediaId" validate:"required,gt=0"`
	UserID      int     `json:"userId" validate:"required,gt=0"`
	MediaStatus *string `json:"mediaStatus,omitempty" validate:"omitempty,oneof=Wishlist Watching Finished"`
	Note        *string `json:"note,omitempty" validate:"omitempty,max=1000"`
	UserRating  string  `json:"userRating"`
	ReviewText  string  `json:"reviewText" validate:"max=1000"`
}
