package models

// Address is a 1:1 row sharing its primary key with the owning user.
type Address struct {
	AddressID   int    `gorm:"primaryKey" json:"addressId"`
	UserID      int    `gorm:"uniqueIndex;not null" json:"userId"`
	Country     string `gorm:"size:100;not null" json:"country"`
	City        string `gorm:"size:100;not null" json:"city"`
	AddressText string `gorm:"size:500;not null" json:"addressText"`
	PostCode    string `gorm:"size:20;not null" json:"postCode"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
