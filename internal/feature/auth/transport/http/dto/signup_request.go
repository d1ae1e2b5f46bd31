// Package dto defines data transfer objects for the auth feature's HTTP transport layer.
package dto

import "wtwr_backend/internal/feature/auth/domain/entity"

// SignupReq represents the request body for the /signup endpoint.
type SignupReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name" binding:"required,min=2,max=30"`
	Avatar   string `json:"avatar" binding:"required,url"`
}

// UserRes is the public view of an account. It never carries the password hash.
type UserRes struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// UserEnvelope wraps a single account as {"user": {...}}.
type UserEnvelope struct {
	User UserRes `json:"user"`
}

// NewUserRes converts an account entity to its public view.
func NewUserRes(u *entity.User) UserRes {
	return UserRes{ID: u.ID, Email: u.Email, Name: u.Name, Avatar: u.Avatar}
}
