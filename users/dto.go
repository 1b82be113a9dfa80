package users

// CreateUserRequest is the registration payload.
type CreateUserRequest struct {
	Name     string `json:"name" example:"C. Auguste Dupin"`
	Address  string `json:"address" example:"Somewhere in Paris, France"`
	Email    string `json:"email" validate:"required,email" example:"augustedupin@email.com"`
	Password string `json:"password" validate:"required" example:"FirstDetective!_SorrySherlock"`
}

// UpdateUserRequest is a partial update. Nil or empty fields are left
// untouched; Email is accepted for compatibility but always ignored.
type UpdateUserRequest struct {
	Name     *string `json:"name,omitempty" example:"Auguste Dupin"`
	Address  *string `json:"address,omitempty" example:"Rue Morgue, Paris"`
	Email    *string `json:"email,omitempty" swaggerignore:"true"`
	Password *string `json:"password,omitempty" example:"SecondDetective!"`
}

// LoginRequest carries the credentials checked by the login flow.
type LoginRequest struct {
	Email    string `json:"email" example:"augustedupin@email.com"`
	Password string `json:"password" example:"FirstDetective!_SorrySherlock"`
}
