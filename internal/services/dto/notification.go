package dto

type CreateNotificationRequest struct {
	UserID int    `json:"userId" validate:"required,gt=0"`
	Title  string `json:"title" validate:"required,max=100"`
	Text   string `json:"text" validate:"required,max=1000"`
}
