package dto

// UpdateTodoRequestDTO carries the optional fields of PUT /todos/{id}.
// A nil pointer means the field was not supplied and the stored value is
// left unchanged; a non-nil pointer overwrites, including with the zero
// value ("" or false).
type UpdateTodoRequestDTO struct {
	Title     *string
	Completed *bool
}

// DeleteTodoResponseDTO is the body of a successful DELETE /todos/{id}.
type DeleteTodoResponseDTO struct {
	Detail string `json:"detail"`
}
