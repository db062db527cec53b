package playlists

import (
	"context"
	"fmt"
	"sort"

	"github.com/gazebo-web/gz-go/v7"
	"github.com/jinzhu/gorm"
	"github.com/movielane/catalog-server/bundles/movies"
	"github.com/movielane/catalog-server/bundles/playlists/dtos"
	"github.com/movielane/catalog-server/bundles/users"
	"github.com/movielane/catalog-server/globals"
)

// Service is the main struct exported by this playlists Service.
type Service struct{}

// orderProbe is the number of leading movies inspected when deciding
// whether a playlist uses explicit "N." title ordering.
const orderProbe = 5

// Detail holds a playlist together with its movies in watch order.
type Detail struct {
	Playlist *Playlist     `json:"playlist"`
	Movies   movies.Movies `json:"movies"`
}

// GetPlaylist returns a playlist by its ID.
func (ps *Service) GetPlaylist(tx *gorm.DB, id uint) (*Playlist, *gz.ErrMsg) {
	return ByID(tx, id)
}

// GetDetail returns a playlist and its movies sorted for watching.
//
// If any of the first few movies carries an explicit "N." order prefix the
// whole list is sorted by that prefix. Otherwise the movies are sorted by
// (season, episode) keys derived from their titles.
func (ps *Service) GetDetail(tx *gorm.DB, id uint) (*Detail, *gz.ErrMsg) {
	playlist, em := ByID(tx, id)
	if em != nil {
		return nil, em
	}

	list, em := movies.ByPlaylist(tx, playlist.ID)
	if em != nil {
		return nil, em
	}

	return &Detail{Playlist: playlist, Movies: SortMovies(list)}, nil
}

// SortMovies orders a playlist's movies by explicit order prefix when one is
// present among the first few titles, and by (season, episode) otherwise.
func SortMovies(list movies.Movies) movies.Movies {
	useOrder := false
	for i, movie := range list {
		if i >= orderProbe {
			break
		}
		if movie.Title != nil && movies.HasExplicitOrder(*movie.Title) {
			useOrder = true
			break
		}
	}

	if useOrder {
		sort.SliceStable(list, func(i, j int) bool {
			return orderKey(list[i]) < orderKey(list[j])
		})
		return list
	}

	sort.SliceStable(list, func(i, j int) bool {
		si, ei := episodeKey(list[i])
		sj, ej := episodeKey(list[j])
		if si != sj {
			return si < sj
		}
		return ei < ej
	})
	return list
}

func orderKey(m movies.Movie) int {
	if m.Title == nil {
		return movies.OrderLast
	}
	return movies.ExtractOrderNumber(*m.Title)
}

func episodeKey(m movies.Movie) (int, int) {
	if m.Title == nil {
		return movies.DefaultSeason, movies.OrderLast
	}
	return movies.ExtractEpisodeNumber(*m.Title)
}

// CreatePlaylist creates a new playlist. Only staff users can create
// playlists.
func (ps *Service) CreatePlaylist(ctx context.Context, tx *gorm.DB,
	newPlaylist dtos.CreatePlaylist, user *users.User) (*Playlist, *gz.ErrMsg) {

	if em := staffOnly(user); em != nil {
		return nil, em
	}

	playlist := Playlist{
		Name:       &newPlaylist.Name,
		CategoryID: newPlaylist.CategoryID,
	}
	if err := tx.Create(&playlist).Error; err != nil {
		return nil, gz.NewErrorMessageWithBase(gz.ErrorDbSave, err)
	}

	gz.LoggerFromContext(ctx).Info(fmt.Sprintf("Playlist [%d] %s has been created.", playlist.ID, *playlist.Name))

	return &playlist, nil
}

// RemovePlaylist soft-deletes a playlist. Its movies become standalone
// catalog entries. Only staff users can remove playlists.
func (ps *Service) RemovePlaylist(ctx context.Context, tx *gorm.DB, id uint,
	user *users.User) (*Playlist, *gz.ErrMsg) {

	if em := staffOnly(user); em != nil {
		return nil, em
	}

	playlist, em := ByID(tx, id)
	if em != nil {
		return nil, em
	}

	if err := tx.Model(&movies.Movie{}).Where("playlist_id = ?", playlist.ID).
		Update("playlist_id", nil).Error; err != nil {
		return nil, gz.NewErrorMessageWithBase(gz.ErrorDbSave, err)
	}
	if err := tx.Delete(playlist).Error; err != nil {
		return nil, gz.NewErrorMessageWithBase(gz.ErrorDbDelete, err)
	}

	return playlist, nil
}

func staffOnly(user *users.User) *gz.ErrMsg {
	if user == nil || user.Username == nil {
		return gz.NewErrorMessage(gz.ErrorAuthNoUser)
	}
	if !globals.Permissions.IsStaff(*user.Username) {
		return gz.NewErrorMessage(gz.ErrorUnauthorized)
	}
	return nil
}
