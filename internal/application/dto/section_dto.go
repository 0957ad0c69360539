package dto

// CreateSectionRequest entrada para crear una sección.
type CreateSectionRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"max=500"`
}

// UpdateSectionRequest campos opcionales.
type UpdateSectionRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
}
