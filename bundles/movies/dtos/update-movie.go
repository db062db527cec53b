package dtos

// UpdateMovie encapsulates data that can be updated on a movie
type UpdateMovie struct {
	// New title, if present
	Title *string `json:"title" validate:"omitempty,min=1" form:"title"`
	// New download link, if present
	DownloadLink *string `json:"download_link" validate:"omitempty,url" form:"download_link"`
	// New playlist assignment, if present
	PlaylistID *uint `json:"playlist_id" form:"playlist_id"`
	// New category assignment, if present
	CategoryID *uint `json:"category_id" form:"category_id"`
}
