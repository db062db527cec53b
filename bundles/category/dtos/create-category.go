package category

type CreateCategory struct {
	Name string  `json:"name" validate:"required,min=2,alphanumspace"`
	Slug *string `json:"slug,omitempty"`
}
