package http

import (
	"time"

	"smart-todo-backend/internal/model"
	"smart-todo-backend/internal/user"
)

// --- Request DTOs ---

type registerReq struct {
	Email    string `json:"email"     binding:"required,email"`
	Password string `json:"password"  binding:"required,min=8,max=128"`
	FullName string `json:"full_name" binding:"max=255"`
}

func (r registerReq) validate() error { return nil }

func (r registerReq) toInput() user.RegisterInput {
	return user.RegisterInput{
		Email:    r.Email,
		Password: r.Password,
		FullName: r.FullName,
	}
}

type loginReq struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (r loginReq) validate() error { return nil }

func (r loginReq) toInput() user.LoginInput {
	return user.LoginInput{
		Email:    r.Email,
		Password: r.Password,
	}
}

// --- Response DTOs ---

type userResp struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	CreatedAt time.Time `json:"created_at"`
}

func newUserResp(u model.User) userResp {
	return userResp{
		ID:        u.ID,
		Email:     u.Email,
		FullName:  u.FullName,
		CreatedAt: u.CreatedAt,
	}
}

type authResp struct {
	User  userResp `json:"user"`
	Token string   `json:"token"`
}

func (h *handler) newAuthResp(out user.AuthOutput) authResp {
	return authResp{
		User:  newUserResp(out.User),
		Token: out.Token,
	}
}
