package catalog

import (
	"strings"
	"time"

	"github.com/movielane/catalog-server/bundles/movies"
	"github.com/movielane/catalog-server/bundles/playlists"
)

// Item types present in catalog listings.
const (
	TypeMovie    = "movie"
	TypePlaylist = "playlist"
)

// Item is a single entry of a catalog listing. Exactly one of Movie or
// Playlist is set, matching Type.
type Item struct {
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`

	Movie    *movies.Movie       `json:"movie,omitempty"`
	Playlist *playlists.Playlist `json:"playlist,omitempty"`
}

// Items is a slice of Item
type Items []Item

// NewMovieItem wraps a movie as a catalog item.
func NewMovieItem(m movies.Movie) Item {
	movie := m
	return Item{Type: TypeMovie, CreatedAt: m.CreatedAt, Movie: &movie}
}

// NewPlaylistItem wraps a playlist as a catalog item.
func NewPlaylistItem(p playlists.Playlist) Item {
	playlist := p
	return Item{Type: TypePlaylist, CreatedAt: p.CreatedAt, Playlist: &playlist}
}

// Title returns the display title of the item.
func (it Item) Title() string {
	switch {
	case it.Movie != nil && it.Movie.Title != nil:
		return *it.Movie.Title
	case it.Playlist != nil && it.Playlist.Name != nil:
		return *it.Playlist.Name
	}
	return ""
}

// Filter returns the items whose title contains the search string,
// case-insensitive. An empty search keeps everything.
func (items Items) Filter(search string) Items {
	if len(search) == 0 {
		return items
	}
	needle := strings.ToLower(search)
	var filtered Items
	for _, it := range items {
		if strings.Contains(strings.ToLower(it.Title()), needle) {
			filtered = append(filtered, it)
		}
	}
	return filtered
}
