package dtos

// CreatePlaylist encapsulates data required to create a playlist
type CreatePlaylist struct {
	// The name of the playlist
	Name string `json:"name" validate:"required,min=1,noforwardslash,nopercent" form:"name"`
	// Optional category the playlist belongs to
	CategoryID *uint `json:"category_id" form:"category_id"`
}
