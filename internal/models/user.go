package models

import "time"

type UserRole string

const (
	UserRoleAdmin UserRole = "admin"
	UserRoleUser  UserRole = "user"
)

// ValidRole reports whether the role belongs to the fixed set.
func ValidRole(role UserRole) bool {
	return role == UserRoleAdmin || role == UserRoleUser
}

type User struct {
	UserID       int       `gorm:"primaryKey;autoIncrement" json:"userId"`
	Username     string    `gorm:"size:100;uniqueIndex;not null" json:"username"`
	FirstName    string    `gorm:"size:200;not null" json:"firstName"`
	LastName     string    `gorm:"size:200;not null" json:"lastName"`
	Role         UserRole  `gorm:"size:50;not null" json:"role"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Created      time.Time `gorm:"autoCreateTime" json:"created"`
	Updated      time.Time `gorm:"autoUpdateTime" json:"updated"`
	LastLogin    time.Time `json:"lastLogin"`
	IsDeleted    bool      `gorm:"default:false" json:"isDeleted"`

	// Owned rows; lifetime-bound to the user and removed with it.
	Address       *Address       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"address,omitempty"`
	UserMedias    []UserMedia    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Reviews       []Review       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Notifications []Notification `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
