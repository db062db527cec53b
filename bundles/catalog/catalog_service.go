package catalog

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/gazebo-web/gz-go/v7"
	"github.com/jinzhu/gorm"
	"github.com/movielane/catalog-server/bundles/movies"
	"github.com/movielane/catalog-server/bundles/playlists"
	"github.com/movielane/catalog-server/globals"
)

// Service is the main struct exported by this catalog Service.
type Service struct{}

// homeCacheKey holds the unfiltered home listing in memcache.
const homeCacheKey = "catalog:home:items"

// homeCacheExpiration is the cache TTL in seconds. The home listing is the
// hottest query of the server and tolerates slightly stale results.
const homeCacheExpiration = 60

// Home returns one page of the home listing: every playlist plus the movies
// that do not belong to any playlist, newest first.
func (cs *Service) Home(ctx context.Context, tx *gorm.DB, search,
	pageArg string) (*Page, *gz.ErrMsg) {

	items, em := cs.homeItems(ctx, tx)
	if em != nil {
		return nil, em
	}

	return Paginate(SortByNewest(items.Filter(search)), pageArg), nil
}

// homeItems builds the unfiltered home listing, serving it from memcache
// when possible.
func (cs *Service) homeItems(ctx context.Context, tx *gorm.DB) (Items, *gz.ErrMsg) {
	if globals.QueryCache != nil {
		if cached, err := globals.QueryCache.Get(homeCacheKey); err == nil {
			var items Items
			if err := json.Unmarshal(cached.Value, &items); err == nil {
				return items, nil
			}
		}
	}

	playlistList, em := playlists.All(tx)
	if em != nil {
		return nil, em
	}
	movieList, em := movies.Standalone(tx)
	if em != nil {
		return nil, em
	}

	items := make(Items, 0, len(playlistList)+len(movieList))
	for _, p := range playlistList {
		items = append(items, NewPlaylistItem(p))
	}
	for _, m := range movieList {
		items = append(items, NewMovieItem(m))
	}

	if globals.QueryCache != nil {
		if encoded, err := json.Marshal(items); err == nil {
			err := globals.QueryCache.Set(&memcache.Item{
				Key:        homeCacheKey,
				Value:      encoded,
				Expiration: homeCacheExpiration,
			})
			if err != nil {
				gz.LoggerFromContext(ctx).Error("Could not cache home listing", err)
			}
		}
	}

	return items, nil
}

// CategoryDetail returns one page of a category's movies and playlists.
//
// When any of the first few movies carries an explicit "N." order prefix the
// movies are sorted by that prefix and listed before the playlists,
// replacing the newest-first sort. That keeps hand-numbered collections in
// their intended order.
func (cs *Service) CategoryDetail(ctx context.Context, tx *gorm.DB, categoryID uint,
	search, pageArg string) (*Page, *gz.ErrMsg) {

	movieList, em := movies.ByCategory(tx, categoryID)
	if em != nil {
		return nil, em
	}
	playlistList, em := playlists.ByCategory(tx, categoryID)
	if em != nil {
		return nil, em
	}

	// The search filter runs before the ordering probe, so a query whose
	// matches are hand-numbered keeps their explicit order even when
	// unnumbered movies precede them in the category.
	movieList = filterMoviesByTitle(movieList, search)
	playlistItems := make(Items, 0, len(playlistList))
	for _, p := range playlistList {
		playlistItems = append(playlistItems, NewPlaylistItem(p))
	}
	playlistItems = playlistItems.Filter(search)

	if hasExplicitOrdering(movieList) {
		ordered := playlists.SortMovies(movieList)
		items := make(Items, 0, len(ordered)+len(playlistItems))
		for _, m := range ordered {
			items = append(items, NewMovieItem(m))
		}
		items = append(items, playlistItems...)
		return Paginate(items, pageArg), nil
	}

	items := make(Items, 0, len(movieList)+len(playlistItems))
	for _, m := range movieList {
		items = append(items, NewMovieItem(m))
	}
	items = append(items, playlistItems...)
	return Paginate(SortByNewest(items), pageArg), nil
}

// hasExplicitOrdering probes the first few movies for "N." order prefixes.
func hasExplicitOrdering(list movies.Movies) bool {
	for i, m := range list {
		if i >= 5 {
			break
		}
		if m.Title != nil && movies.HasExplicitOrder(*m.Title) {
			return true
		}
	}
	return false
}

// filterMoviesByTitle keeps the movies whose title contains the search
// string, case-insensitive. An empty search keeps everything.
func filterMoviesByTitle(list movies.Movies, search string) movies.Movies {
	if len(search) == 0 {
		return list
	}
	needle := strings.ToLower(search)
	var filtered movies.Movies
	for _, m := range list {
		if m.Title != nil && strings.Contains(strings.ToLower(*m.Title), needle) {
			filtered = append(filtered, m)
		}
	}
	return filtered
}
