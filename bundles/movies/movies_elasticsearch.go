package movies

// Import this file's dependencies
import (
	"bytes"
	"context"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/gazebo-web/gz-go/v7"
	"github.com/jinzhu/gorm"
	"github.com/movielane/catalog-server/globals"
	"github.com/pkg/errors"
)

// movieIndex is the ElasticSearch index holding movie documents.
const movieIndex = "catalog_movies"

// This is the structure of the data stored in the catalog index.
type movieElastic struct {
	Title string `json:"title"`
}

// ElasticSearchRemoveMovie removes a movie from elastic search
func ElasticSearchRemoveMovie(ctx context.Context, movie *Movie) {
	if globals.ElasticSearch == nil {
		return
	}

	// Set up the request object.
	req := esapi.DeleteRequest{
		Index:      movieIndex,
		DocumentID: strconv.FormatUint(uint64(movie.ID), 10),
		Refresh:    "true",
	}

	// Perform the request with the client.
	_, err := req.Do(context.Background(), globals.ElasticSearch)
	if err != nil {
		gz.LoggerFromContext(ctx).Critical("Error getting response:", err)
	}
}

// ElasticSearchUpdateMovie will update ElasticSearch with a single movie.
func ElasticSearchUpdateMovie(ctx context.Context, movie Movie) {
	if globals.ElasticSearch == nil {
		return
	}

	m := movieElastic{
		Title: *movie.Title,
	}

	// Create the json representation
	jsonMovie, _ := json.Marshal(&m)

	// Set up the request object.
	req := esapi.IndexRequest{
		Index:      movieIndex,
		DocumentID: strconv.FormatUint(uint64(movie.ID), 10),
		Body:       strings.NewReader(string(jsonMovie)),
		Refresh:    "true",
	}

	// Perform the request with the client.
	add, err := req.Do(context.Background(), globals.ElasticSearch)
	if err != nil {
		gz.LoggerFromContext(ctx).Critical("Error getting response:", err)
		return
	}
	defer add.Body.Close()

	if add.IsError() {
		gz.LoggerFromContext(ctx).Error("[", add.Status(), "] Error indexing document ID:", movie.ID)
	} else {
		// Deserialize the response into a map.
		var r map[string]interface{}
		if err := json.NewDecoder(add.Body).Decode(&r); err != nil {
			gz.LoggerFromContext(ctx).Error("Error parsing the response body:", err)
		} else {
			gz.LoggerFromContext(ctx).Debug("[", add.Status(), "] ", r["result"])
		}
	}
}

// ElasticSearchUpdateAll will update ElasticSearch with all the movies in the
// SQL database.
func ElasticSearchUpdateAll(ctx context.Context, tx *gorm.DB) {
	if globals.ElasticSearch == nil {
		return
	}

	// Make sure that we have a Movie table.
	if hasTable := tx.HasTable(&Movie{}); hasTable {
		var list Movies

		tx.Find(&list)

		// Add each movie to ElasticSearch.
		for _, movie := range list {
			ElasticSearchUpdateMovie(ctx, movie)
		}
	}
}

// ElasticSearchMovieIDs resolves a free-text title search into movie IDs.
// The caller is expected to fall back to a SQL search on error.
func ElasticSearchMovieIDs(ctx context.Context, search string) ([]uint, error) {
	// Build the search request body. Use "query_string" because the "query"
	// parameter supports regular expressions.
	query := map[string]interface{}{
		"query": map[string]interface{}{
			"query_string": map[string]interface{}{
				"query":  search,
				"fields": []string{"title"},
			},
		},
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(query); err != nil {
		return nil, err
	}

	// Send the search request to ElasticSearch, and get a response.
	res, err := globals.ElasticSearch.Search(
		globals.ElasticSearch.Search.WithContext(ctx),
		globals.ElasticSearch.Search.WithIndex(movieIndex),
		globals.ElasticSearch.Search.WithBody(&buf),
		globals.ElasticSearch.Search.WithTrackTotalHits(true),
	)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, errors.Errorf("search request failed with status %s", res.Status())
	}

	var elasticResult map[string]interface{}
	if err := json.NewDecoder(res.Body).Decode(&elasticResult); err != nil {
		return nil, err
	}

	var ids []uint
	hits := elasticResult["hits"].(map[string]interface{})["hits"].([]interface{})
	for _, hit := range hits {
		idStr := hit.(map[string]interface{})["_id"].(string)
		id, err := strconv.ParseUint(idStr, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, uint(id))
	}

	return ids, nil
}
