package models

import "fmt"

// MediaStatus is the watch status of a tracked media item, stored as an
// integer.
type MediaStatus int

const (
	MediaStatusWishlist MediaStatus = iota
	MediaStatusWatching
	MediaStatusFinished
)

var mediaStatusNames = map[MediaStatus]string{
	MediaStatusWishlist: "Wishlist",
	MediaStatusWatching: "Watching",
	MediaStatusFinished: "Finished",
}

func (s MediaStatus) String() string {
	if name, ok := mediaStatusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("MediaStatus(%d)", int(s))
}

// Valid reports enum membership; the status is caller-settable and is not
// validated beyond this.
func (s MediaStatus) Valid() bool {
	_, ok := mediaStatusNames[s]
	return ok
}

// ParseMediaStatus converts a status name ("Wishlist", "Watching",
// "Finished") to its enum value.
func ParseMediaStatus(name string) (MediaStatus, error) {
	for status, statusName := range mediaStatusNames {
		if statusName == name {
			return status, nil
		}
	}
	return 0, fmt.Errorf("unknown media status %q", name)
}

// UserMedia pairs a user with a catalog media item. At most one Review may
// ever be linked; the link is set lazily by the review lifecycle.
type UserMedia struct {
	UserMediaID int         `gorm:"primaryKey;autoIncrement" json:"userMediaId"`
	UserID      int         `gorm:"not null;index" json:"userId"`
	MediaID     int         `gorm:"not null;index" json:"mediaId"`
	MediaStatus MediaStatus `gorm:"not null" json:"mediaStatus"`
	Note        string      `gorm:"size:1000" json:"note"`
	ReviewID    *int        `json:"reviewId,omitempty"`

	User   *User   `gorm:"foreignKey:UserID" json:"-"`
	Media  *Media  `gorm:"foreignKey:MediaID" json:"media,omitempty"`
	Review *Review `gorm:"foreignKey:ReviewID" json:"review,omitempty"`
}
