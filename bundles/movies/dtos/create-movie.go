package dtos

// CreateMovie encapsulates data required to create a movie
type CreateMovie struct {
	// The title of the movie
	Title string `json:"title" validate:"required,min=1" form:"title"`
	// External URL the download endpoint will redirect to
	DownloadLink string `json:"download_link" validate:"required,url" form:"download_link"`
	// Optional playlist the movie belongs to
	PlaylistID *uint `json:"playlist_id" form:"playlist_id"`
	// Optional category the movie belongs to
	CategoryID *uint `json:"category_id" form:"category_id"`
}
