package dto

import "time"

type RegisterRequest struct {
	Username  string `json:"username" validate:"required,min=3,max=100"`
	FirstName string `json:"firstName" validate:"required,max=200"`
	LastName  string `json:"lastName" validate:"required,max=200"`
	Password  string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken string        `json:"access_token"`
	User        *UserResponse `json:"user"`
}

type UserResponse struct {
	UserID    int       `json:"userId"`
	Username  string    `json:"username"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Role      string    `json:"role"`
	Created   time.Time `json:"created"`
	LastLogin time.Time `json:"lastLogin"`
}
