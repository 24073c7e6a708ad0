package handler

import (
	"github.com/userdesk/user-api/internal/core/domain"
	"github.com/userdesk/user-api/internal/core/ports"
)

// --- Request / Response types ---

type roleRequest struct {
	ID   int64  `json:"id" validate:"required"`
	Name string `json:"name" validate:"required"`
}

type userRequest struct {
	Name     string        `json:"name" validate:"required"`
	Surname  string        `json:"surname" validate:"required"`
	Age      int           `json:"age" validate:"gte=0,lte=130"`
	Email    string        `json:"email" validate:"required,email"`
	Username string        `json:"username" validate:"required,min=3,max=64"`
	Password string        `json:"password" validate:"required"`
	Roles    []roleRequest `json:"roles" validate:"dive"`
}

type userResponse struct {
	ID       int64         `json:"id"`
	Name     string        `json:"name"`
	Surname  string        `json:"surname"`
	Age      int           `json:"age"`
	Email    string        `json:"email"`
	Username string        `json:"username"`
	Password string        `json:"password"`
	Roles    []roleRequest `json:"roles"`
}

func (r userRequest) toInput(id int64) ports.UserInput {
	roles := make([]domain.Role, 0, len(r.Roles))
	for _, role := range r.Roles {
		roles = append(roles, domain.Role{ID: role.ID, Name: role.Name})
	}
	return ports.UserInput{
		ID:       id,
		Name:     r.Name,
		Surname:  r.Surname,
		Age:      r.Age,
		Email:    r.Email,
		Username: r.Username,
		Password: r.Password,
		Roles:    roles,
	}
}

// toUserResponse renders a user for read endpoints. The password field
// carries the stored hash, never plaintext; the original form client relies
// on it to round-trip an unchanged credential through PUT.
func toUserResponse(u *domain.User) userResponse {
	roles := make([]roleRequest, 0, len(u.Roles))
	for _, role := range u.Roles {
		roles = append(roles, roleRequest{ID: role.ID, Name: role.Name})
	}
	return userResponse{
		ID:       u.ID,
		Name:     u.Name,
		Surname:  u.Surname,
		Age:      u.Age,
		Email:    u.Email,
		Username: u.Username,
		Password: u.PasswordHash,
		Roles:    roles,
	}
}

func toUserResponses(users []domain.User) []userResponse {
	out := make([]userResponse, 0, len(users))
	for i := range users {
		out = append(out, toUserResponse(&users[i]))
	}
	return out
}
