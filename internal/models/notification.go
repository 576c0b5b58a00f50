package models

type Notification struct {
	NotificationID int    `gorm:"primaryKey;autoIncrement" json:"notificationId"`
	UserID         int    `gorm:"not null;index" json:"userId"`
	Title          string `gorm:"size:100;not null" json:"title"`
	Text           string `gorm:"size:1000;not null" json:"text"`
	Shown          bool   `gorm:"default:false" json:"shown"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
}
