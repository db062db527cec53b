package category

type UpdateCategory struct {
	Name *string `json:"name,omitempty" validate:"omitempty,min=2,alphanumspace"`
	Slug *string `json:"slug,omitempty"`
}
