package main

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/gazebo-web/gz-go/v7"
	"github.com/gorilla/mux"
	"github.com/jinzhu/gorm"
	"github.com/movielane/catalog-server/bundles/movies"
	"github.com/movielane/catalog-server/globals"
)

// ElasticSearch indices
var catalogIndices = []string{"catalog_movies"}

// ElasticSearchConfig is a configuration for an ElasticSearch server.
// swagger:model
type ElasticSearchConfig struct {
	// ID is the primary key
	ID uint `gorm:"primary_key" json:"id"`
	// CreatedAt is the time the entry was created.
	CreatedAt time.Time `gorm:"type:timestamp(3) NULL"`
	// UpdatedAt is the time the entry was updated.
	UpdatedAt time.Time
	DeletedAt *time.Time `gorm:"type:timestamp(2) NULL" sql:"index"`

	// Address of the server. This must contain either "http" or "https".
	Address string `json:"address"`

	// Username for basic authentication. Optional.
	Username string `json:"username"`

	// Password for basic authentication. Optional.
	Password string `json:"password"`

	// True if this is the server to use by default.
	IsPrimary bool `json:"primary"`
}

// ElasticSearchConfigs is a list of ElasticSearchConfig
// swagger:model
type ElasticSearchConfigs []ElasticSearchConfig

// AdminSearchRequest is a request to alter the ElasticSearchConfig
// swagger:model
type AdminSearchRequest struct {
	// Address of the server. This must contain either "http" or "https".
	Address string `json:"address"`

	// Username for basic authentication. Optional.
	Username string `json:"username"`

	// Password for basic authentication. Optional.
	Password string `json:"password"`

	// True if this is the server to use by default.
	Primary bool `json:"primary"`
}

// AdminSearchResponse contains a response to an AdminSearchRequest.
// swagger:model
type AdminSearchResponse struct {
	Message string `json:"status"`
}

// requireSysAdmin resolves the JWT user and fails unless it is a system
// admin. Search configs carry credentials, so staff is not enough.
func requireSysAdmin(tx *gorm.DB, r *http.Request) *gz.ErrMsg {
	user, ok, errMsg := getUserFromJWT(tx, r)
	if !ok {
		return &errMsg
	}
	if !globals.Permissions.IsSystemAdmin(*user.Username) {
		return gz.NewErrorMessage(gz.ErrorUnauthorized)
	}
	return nil
}

// ListElasticSearchHandler returns a list of the elastic search configs
//
// curl -k -X GET http://localhost:8000/1.0/admin/search --header "Private-token: YOUR_TOKEN"
func ListElasticSearchHandler(tx *gorm.DB, w http.ResponseWriter, r *http.Request) (interface{}, *gz.ErrMsg) {

	if em := requireSysAdmin(tx, r); em != nil {
		return nil, em
	}

	var dbConfigs ElasticSearchConfigs
	tx.Find(&dbConfigs)

	return dbConfigs, nil
}

// CreateElasticSearchHandler creates a new elastic search config
//
// curl -k -H "Content-Type: application/json" -X POST http://localhost:8000/1.0/admin/search -d '{"address":"http://localhost:9200", "primary":true}' --header "Private-token: YOUR_TOKEN"
func CreateElasticSearchHandler(tx *gorm.DB, w http.ResponseWriter, r *http.Request) (interface{}, *gz.ErrMsg) {

	if em := requireSysAdmin(tx, r); em != nil {
		return nil, em
	}

	// Parse the request
	var request AdminSearchRequest
	if em := ParseStruct(&request, r, false); em != nil {
		return nil, em
	}

	dbConfig := ElasticSearchConfig{
		Address:   request.Address,
		Username:  request.Username,
		Password:  request.Password,
		IsPrimary: request.Primary,
	}

	if err := tx.Create(&dbConfig).Error; err != nil {
		return nil, gz.NewErrorMessageWithBase(gz.ErrorDbSave, err)
	}

	// If new primary, then make other entries not be primary.
	if request.Primary {
		tx.Model(ElasticSearchConfig{}).Where("is_primary = 1 and address != ?", request.Address).Select("is_primary").Updates(map[string]interface{}{"is_primary": "0"})
	}

	return dbConfig, nil
}

// ModifyElasticSearchHandler modifies an existing config
//
// curl -k -H "Content-Type: application/json" -X PATCH http://localhost:8000/1.0/admin/search/{config_id} -d '{"address":"http://localhost:9200", "primary":true}' --header "Private-token: YOUR_TOKEN"
func ModifyElasticSearchHandler(tx *gorm.DB, w http.ResponseWriter, r *http.Request) (interface{}, *gz.ErrMsg) {

	if em := requireSysAdmin(tx, r); em != nil {
		return nil, em
	}

	// Get the config id
	configID, valid := mux.Vars(r)["config_id"]
	if !valid {
		return nil, gz.NewErrorMessage(gz.ErrorIDNotInRequest)
	}

	// Parse the request
	var request AdminSearchRequest
	if em := ParseStruct(&request, r, false); em != nil {
		return nil, em
	}

	var dbConfig ElasticSearchConfig

	// Find the config
	if err := tx.First(&dbConfig, configID).Error; err != nil {
		return nil, gz.NewErrorMessageWithBase(gz.ErrorIDNotFound, err)
	}

	dbConfig.Address = request.Address
	dbConfig.Username = request.Username
	dbConfig.Password = request.Password
	dbConfig.IsPrimary = request.Primary

	if err := tx.Save(&dbConfig).Error; err != nil {
		return nil, gz.NewErrorMessageWithBase(gz.ErrorDbSave, err)
	}

	// If new primary, then make other entries not be primary.
	if request.Primary {
		tx.Model(ElasticSearchConfig{}).Where("is_primary = 1 and address != ?", request.Address).Select("is_primary").Updates(map[string]interface{}{"is_primary": "0"})
	}

	return dbConfig, nil
}

// DeleteElasticSearchHandler deletes an elasticsearch config
//
// curl -k -X DELETE http://localhost:8000/1.0/admin/search/{config_id} --header "Private-token: YOUR_TOKEN"
func DeleteElasticSearchHandler(tx *gorm.DB, w http.ResponseWriter, r *http.Request) (interface{}, *gz.ErrMsg) {

	if em := requireSysAdmin(tx, r); em != nil {
		return nil, em
	}

	// Get the config id
	configID, valid := mux.Vars(r)["config_id"]
	if !valid {
		return nil, gz.NewErrorMessage(gz.ErrorIDNotInRequest)
	}

	var config ElasticSearchConfig

	// Find the config
	if err := tx.First(&config, configID).Error; err != nil {
		return nil, gz.NewErrorMessageWithBase(gz.ErrorIDNotFound, err)
	}

	// Try to delete the config.
	if err := tx.Delete(&config).Error; err != nil {
		return nil, gz.NewErrorMessageWithBase(gz.ErrorDbDelete, err)
	}

	// Return the config that was deleted.
	return config, nil
}

// ReconnectElasticSearchHandler reconnects to the primary ElasticSearch config
//
// curl -k -X GET http://localhost:8000/1.0/admin/search/reconnect --header "Private-token: YOUR_TOKEN"
func ReconnectElasticSearchHandler(tx *gorm.DB, w http.ResponseWriter, r *http.Request) (interface{}, *gz.ErrMsg) {

	if em := requireSysAdmin(tx, r); em != nil {
		return nil, em
	}

	if err := connectToElasticSearch(r.Context()); err != nil {
		return nil, gz.NewErrorMessageWithBase(gz.ErrorUnexpected, err)
	}

	response := AdminSearchResponse{Message: "Reconnected"}
	return response, nil
}

// RebuildElasticSearchHandler rebuilds the indices for the primary config
//
// curl -k -X GET http://localhost:8000/1.0/admin/search/rebuild --header "Private-token: YOUR_TOKEN"
func RebuildElasticSearchHandler(tx *gorm.DB, w http.ResponseWriter, r *http.Request) (interface{}, *gz.ErrMsg) {

	if em := requireSysAdmin(tx, r); em != nil {
		return nil, em
	}

	deleteIndices(r.Context())
	createIndices(r.Context())
	movies.ElasticSearchUpdateAll(r.Context(), tx)

	response := AdminSearchResponse{Message: "Rebuilt indices"}

	return response, nil
}

// UpdateElasticSearchHandler updates the primary ElasticSearch.
//
// curl -k -X GET http://localhost:8000/1.0/admin/search/update --header "Private-token: YOUR_TOKEN"
func UpdateElasticSearchHandler(tx *gorm.DB, w http.ResponseWriter, r *http.Request) (interface{}, *gz.ErrMsg) {

	if em := requireSysAdmin(tx, r); em != nil {
		return nil, em
	}

	movies.ElasticSearchUpdateAll(r.Context(), tx)

	response := AdminSearchResponse{Message: "Updated indices"}

	return response, nil
}

// connectToElasticSearch establishes a connection to elastic search
func connectToElasticSearch(ctx context.Context) error {
	var err error
	var response map[string]interface{}

	var dbConfig ElasticSearchConfig

	// Get the first primary configuration
	if err = globals.Server.Db.Where("is_primary = 1").First(&dbConfig).Error; err != nil {
		gz.LoggerFromContext(ctx).Debug("No ElasticSearch configuration, skipping")
		return err
	}

	cfg := elasticsearch.Config{
		Addresses: []string{dbConfig.Address},
		Username:  dbConfig.Username,
		Password:  dbConfig.Password,
	}

	// Create a new elastic search client.
	globals.ElasticSearch, err = elasticsearch.NewClient(cfg)
	if err != nil {
		gz.LoggerFromContext(ctx).Error("Elastic search error creating new elasticsearch client:", err)
		return err
	}

	// Get cluster info
	res, err := globals.ElasticSearch.Info()
	if err != nil {
		gz.LoggerFromContext(ctx).Error("Elastic search error getting response:", err)
		return err
	}
	defer res.Body.Close()

	// Check response status
	if res.IsError() {
		gz.LoggerFromContext(ctx).Error("Elastic search error:", res.String())
	}

	// Deserialize the response into a map.
	if err := json.NewDecoder(res.Body).Decode(&response); err != nil {
		gz.LoggerFromContext(ctx).Error("Error parsing the response body:", err)
	}

	// Print client and server version numbers.
	gz.LoggerFromContext(ctx).Info("Elastic Search Client:", elasticsearch.Version)
	gz.LoggerFromContext(ctx).Info("Elastic Search Server:",
		response["version"].(map[string]interface{})["number"])

	return nil
}

// deleteIndices deletes the elasticsearch indices.
func deleteIndices(ctx context.Context) {
	// Set up the request object.
	deleteReq := esapi.IndicesDeleteRequest{
		Index: catalogIndices,
	}

	// Perform the request with the client.
	_, err := deleteReq.Do(context.Background(), globals.ElasticSearch)
	if err != nil {
		gz.LoggerFromContext(ctx).Error("Error delete indices with response:", err)
	}
}

// createIndex creates an index with the appropriate mappings.
func createIndex(ctx context.Context, indexName string) {

	if globals.ElasticSearch == nil {
		return
	}

	// The set of mappings for the catalog index
	var mappings = `{
    "mappings": {
      "properties": {
        "title": {
          "type": "text",
          "fields": {
            "keyword": {
              "type": "keyword",
              "ignore_above": 256
            }
          }
        }
      }
    }
  }`

	createReq := esapi.IndicesCreateRequest{
		Index: indexName,
		Body:  strings.NewReader(mappings),
	}

	res, err := createReq.Do(context.Background(), globals.ElasticSearch)
	if err != nil {
		gz.LoggerFromContext(ctx).Error("Error creating index:", err)
		return
	}
	defer res.Body.Close()

	if res.IsError() {
		gz.LoggerFromContext(ctx).Error("Error response creating index:", res.String())
	}
}

// createIndices creates every catalog index.
func createIndices(ctx context.Context) {
	for _, index := range catalogIndices {
		createIndex(ctx, index)
	}
}
