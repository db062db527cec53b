package movies

import (
	"context"
	"fmt"

	"github.com/gazebo-web/gz-go/v7"
	"github.com/jinzhu/gorm"
	"github.com/movielane/catalog-server/bundles/movies/dtos"
	"github.com/movielane/catalog-server/bundles/users"
	"github.com/movielane/catalog-server/globals"
	uuid "github.com/satori/go.uuid"
)

// Service is the main struct exported by this movies Service.
type Service struct{}

// GetMovie returns a movie by its ID.
func (ms *Service) GetMovie(tx *gorm.DB, id uint) (*Movie, *gz.ErrMsg) {
	return ByID(tx, id)
}

// MovieList returns a paginated list of movies. The optional search argument
// filters by title, using ElasticSearch when available and falling back to a
// plain SQL substring match otherwise.
func (ms *Service) MovieList(ctx context.Context, p *gz.PaginationRequest, tx *gorm.DB,
	search string) (*Movies, *gz.PaginationResult, *gz.ErrMsg) {

	var list Movies
	q := tx.Model(&Movie{}).Order("created_at desc, id desc")

	if len(search) > 0 {
		if globals.ElasticSearch != nil {
			ids, err := ElasticSearchMovieIDs(ctx, search)
			if err == nil {
				q = q.Where("id IN (?)", ids)
			} else {
				// Backup search. ElasticSearch failed, so fall back to SQL.
				gz.LoggerFromContext(ctx).Error("ElasticSearch query failed. Using SQL search.", err)
				q = q.Where("title LIKE ?", "%"+search+"%")
			}
		} else {
			q = q.Where("title LIKE ?", "%"+search+"%")
		}
	}

	pagination, err := gz.PaginateQuery(q, &list, *p)
	if err != nil {
		return nil, nil, gz.NewErrorMessageWithBase(gz.ErrorInvalidPaginationRequest, err)
	}
	if !pagination.PageFound {
		return nil, nil, gz.NewErrorMessage(gz.ErrorPaginationPageNotFound)
	}

	return &list, pagination, nil
}

// CreateMovie creates a new movie from the given dto. Only staff users can
// create movies.
func (ms *Service) CreateMovie(ctx context.Context, tx *gorm.DB, newMovie dtos.CreateMovie,
	user *users.User) (*Movie, *gz.ErrMsg) {

	if ok, em := staffOnly(user); !ok {
		return nil, em
	}

	uuidStr := uuid.NewV4().String()
	movie := Movie{
		UUID:         &uuidStr,
		Title:        &newMovie.Title,
		DownloadLink: &newMovie.DownloadLink,
		PlaylistID:   newMovie.PlaylistID,
		CategoryID:   newMovie.CategoryID,
	}

	if err := tx.Create(&movie).Error; err != nil {
		return nil, gz.NewErrorMessageWithBase(gz.ErrorDbSave, err)
	}

	ElasticSearchUpdateMovie(ctx, movie)
	gz.LoggerFromContext(ctx).Info(fmt.Sprintf("Movie [%d] %s has been created.", movie.ID, *movie.Title))

	return &movie, nil
}

// UpdateMovie updates the fields present in the given dto. Only staff users
// can update movies.
func (ms *Service) UpdateMovie(ctx context.Context, tx *gorm.DB, id uint,
	upd dtos.UpdateMovie, user *users.User) (*Movie, *gz.ErrMsg) {

	if ok, em := staffOnly(user); !ok {
		return nil, em
	}

	movie, em := ByID(tx, id)
	if em != nil {
		return nil, em
	}

	if upd.Title != nil {
		tx.Model(movie).Update("Title", *upd.Title)
	}
	if upd.DownloadLink != nil {
		tx.Model(movie).Update("DownloadLink", *upd.DownloadLink)
	}
	if upd.PlaylistID != nil {
		tx.Model(movie).Update("PlaylistID", *upd.PlaylistID)
	}
	if upd.CategoryID != nil {
		tx.Model(movie).Update("CategoryID", *upd.CategoryID)
	}

	ElasticSearchUpdateMovie(ctx, *movie)

	return movie, nil
}

// RemoveMovie soft-deletes a movie. Only staff users can remove movies.
// Download logs referring to the movie are kept.
func (ms *Service) RemoveMovie(ctx context.Context, tx *gorm.DB, id uint,
	user *users.User) (*Movie, *gz.ErrMsg) {

	if ok, em := staffOnly(user); !ok {
		return nil, em
	}

	movie, em := ByID(tx, id)
	if em != nil {
		return nil, em
	}

	if err := tx.Delete(movie).Error; err != nil {
		return nil, gz.NewErrorMessageWithBase(gz.ErrorDbDelete, err)
	}

	ElasticSearchRemoveMovie(ctx, movie)

	return movie, nil
}

// Download records a download of a movie and returns the link to redirect
// the client to. One DownloadLog row is created and the movie's download
// counter is incremented within the request transaction.
// Optional argument "user" represents the user (if any) making the download.
func (ms *Service) Download(ctx context.Context, tx *gorm.DB, id uint, ipAddress,
	agent string, user *users.User) (*Movie, *gz.ErrMsg) {

	movie, em := ByID(tx, id)
	if em != nil {
		return nil, em
	}

	dl := DownloadLog{
		MovieID:    &movie.ID,
		MovieTitle: *movie.Title,
		IPAddress:  ipAddress,
		UserAgent:  agent,
	}
	if user != nil {
		dl.UserEmail = user.Email
		dl.Username = user.Username
	}
	if err := tx.Create(&dl).Error; err != nil {
		return nil, gz.NewErrorMessageWithBase(gz.ErrorDbSave, err)
	}

	if em := ms.increaseDownloadCounter(tx, movie, 1); em != nil {
		return nil, em
	}

	gz.LoggerFromContext(ctx).Info(fmt.Sprintf("Download of movie [%d] %s from %s", movie.ID, dl.MovieTitle, ipAddress))

	return movie, nil
}

// applyExpression updates a movie using a SQL expression that can perform
// operations on referred values.
func (ms *Service) applyExpression(tx *gorm.DB, movie *Movie, field string, expr *gorm.SqlExpr) *gz.ErrMsg {
	if err := tx.Model(movie).Update(field, expr).Error; err != nil {
		return gz.NewErrorMessageWithBase(gz.ErrorDbSave, err)
	}
	return nil
}

// increaseDownloadCounter increases the current download count of a movie.
func (ms *Service) increaseDownloadCounter(tx *gorm.DB, movie *Movie, delta uint) *gz.ErrMsg {
	return ms.applyExpression(tx, movie, "downloads", gorm.Expr("downloads + ?", delta))
}

// computeDownloadCounter counts the download logs of a movie and updates the
// movie accordingly.
// This query is expensive. Only use it to set the state if it doesn't exist.
// For all other purposes, the use of increaseDownloadCounter is recommended.
func (ms *Service) computeDownloadCounter(tx *gorm.DB, movie *Movie) (int, *gz.ErrMsg) {
	var count int
	if err := tx.Model(&DownloadLog{}).Where("movie_id = ?", movie.ID).Count(&count).Error; err != nil {
		return 0, gz.NewErrorMessageWithBase(gz.ErrorDbSave, err)
	}
	if err := tx.Model(movie).Update("Downloads", count).Error; err != nil {
		return 0, gz.NewErrorMessageWithBase(gz.ErrorDbSave, err)
	}
	return count, nil
}

// ComputeAllCounters is an initialization function that iterates all movies
// and recomputes their download counters from the download_logs table.
func (ms *Service) ComputeAllCounters(tx *gorm.DB) *gz.ErrMsg {
	var list Movies
	if err := tx.Model(&Movie{}).Unscoped().Find(&list).Error; err != nil {
		return gz.NewErrorMessageWithBase(gz.ErrorNoDatabase, err)
	}
	for _, movie := range list {
		if _, em := ms.computeDownloadCounter(tx, &movie); em != nil {
			return em
		}
	}
	return nil
}

// staffOnly resolves the common write-permission check.
func staffOnly(user *users.User) (bool, *gz.ErrMsg) {
	if user == nil || user.Username == nil {
		return false, gz.NewErrorMessage(gz.ErrorAuthNoUser)
	}
	if !globals.Permissions.IsStaff(*user.Username) {
		return false, gz.NewErrorMessage(gz.ErrorUnauthorized)
	}
	return true, nil
}
