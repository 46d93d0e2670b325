package user

import "smart-todo-backend/internal/model"

// --- UseCase Inputs ---

type RegisterInput struct {
	Email    string
	Password string
	FullName string
}

type LoginInput struct {
	Email    string
	Password string
}

// --- UseCase Outputs ---

type AuthOutput struct {
	User  model.User
	Token string
}

type DetailOutput struct {
	User model.User
}
