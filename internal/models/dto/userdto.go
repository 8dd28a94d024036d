package dto

// CreateUserRequestDTO carries the username/password pair supplied as
// query or form parameters on POST /users.
type CreateUserRequestDTO struct {
	Username string `validate:"required,max=64"`
	Password string `validate:"required,max=64"`
}
