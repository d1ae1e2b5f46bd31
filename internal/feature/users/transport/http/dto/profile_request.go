// Package dto defines request bodies for the users feature.
package dto

// UpdateProfileReq is the body of PATCH /users/me.
type UpdateProfileReq struct {
	Name   string `json:"name" binding:"required,min=2,max=30"`
	Avatar string `json:"avatar" binding:"required,url"`
}
