package entity

import (
	"TrioChat/internal/lib/validate"
	"net/http"
)

// UserAuth is the identity the auth collaborator resolves a bearer token to.
type UserAuth struct {
	ID   string `json:"id" validate:"required"`
	Name string `json:"name" validate:"omitempty"`
	Role Role   `json:"role" validate:"required"`
}

func (u *UserAuth) Bind(_ *http.Request) error {
	if err := validate.Struct(u); err != nil {
		return err
	}
	if !u.Role.Valid() {
		return ErrBadRole
	}
	return nil
}
