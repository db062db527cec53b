package main

// Import this file's dependencies
import (
	"context"
	"log"

	"github.com/gazebo-web/gz-go/v7"
	_ "github.com/go-sql-driver/mysql"
	"github.com/gosimple/slug"
	"github.com/jinzhu/gorm"
	"github.com/movielane/catalog-server/bundles/category"
	"github.com/movielane/catalog-server/bundles/installs"
	"github.com/movielane/catalog-server/bundles/movies"
	"github.com/movielane/catalog-server/bundles/playlists"
	"github.com/movielane/catalog-server/bundles/users"
	"github.com/movielane/catalog-server/globals"
)

// DBMigrate auto migrates database tables
func DBMigrate(ctx context.Context, db *gorm.DB) {
	// Note about Migration from GORM doc: http://jinzhu.me/gorm/database.html#migration
	//
	// WARNING: AutoMigrate will ONLY create tables, missing columns and missing indexes,
	// and WON'T change existing column's type or delete unused columns to protect your data.
	//

	if db != nil {
		db.AutoMigrate(
			&gz.AccessToken{},
			&users.User{},
			&category.Category{},
			&playlists.Playlist{},
			&movies.Movie{},
			&movies.DownloadLog{},
			&installs.InstallTracker{},
			&ElasticSearchConfig{},
			globals.Permissions.DBTable(),
		)
	}
}

// DBDropTables drops all tables from DB. Used by tests.
func DBDropTables(ctx context.Context, db *gorm.DB) {
	if db != nil {
		// IMPORTANT NOTE: DROP TABLE order is important, due to FKs
		db.DropTableIfExists(
			&movies.DownloadLog{},
			&movies.Movie{},
			&playlists.Playlist{},
			&category.Category{},
			&installs.InstallTracker{},
			&ElasticSearchConfig{},
			&users.User{},
			globals.Permissions.DBTable(),
		)
	}
}

// CategoryDesc is used by DBAddDefaultData.
type CategoryDesc struct {
	name string
}

// DBAddDefaultData adds default data. Eg. the genre categories.
func DBAddDefaultData(ctx context.Context, db *gorm.DB) {

	if db != nil {
		defaultCategories := []CategoryDesc{
			{"Action"},
			{"Animation"},
			{"Comedy"},
			{"Documentary"},
			{"Drama"},
			{"Horror"},
			{"Romance"},
			{"Science Fiction"},
			{"Thriller"},
			{"TV Series"},
		}
		createCategories(db, defaultCategories)
	}
}

func createCategories(db *gorm.DB, categories []CategoryDesc) {
	for _, c := range categories {
		newSlug := slug.Make(c.name)
		cat := category.Category{Name: &c.name, Slug: &newSlug}
		// This Create will return error if the value already exists.
		db.Create(&cat)
	}
}

// DBAddCustomIndexes allows application to add custom indexes that cannot be
// added automatically by GORM.
func DBAddCustomIndexes(ctx context.Context, db *gorm.DB) {
	db.Model(&movies.Movie{}).AddForeignKey("playlist_id", "playlists(id)", "SET NULL", "RESTRICT")
	db.Model(&movies.Movie{}).AddForeignKey("category_id", "categories(id)", "SET NULL", "RESTRICT")
	db.Model(&playlists.Playlist{}).AddForeignKey("category_id", "categories(id)", "SET NULL", "RESTRICT")

	// Add a fulltext index for the SQL title search fallback
	found, err := indexIsPresent(db, "movies", "movies_fulltext")
	if err != nil {
		gz.LoggerFromContext(ctx).Critical("Error with DB while checking index", err)
		log.Fatal("Error with DB while checking index", err)
		return
	}
	if !found {
		db.Exec("ALTER TABLE movies ADD FULLTEXT movies_fulltext (title);")
	}
	// TIP: You can check created indexes by executing in mysql: `show index from movies;`

	found, err = indexIsPresent(db, "playlists", "playlists_fulltext")
	if err != nil {
		gz.LoggerFromContext(ctx).Critical("Error with DB while checking index", err)
		log.Fatal("Error with DB while checking index", err)
		return
	}
	if !found {
		db.Exec("ALTER TABLE playlists ADD FULLTEXT playlists_fulltext (name);")
	}
}

// indexIsPresent returns true if the index with name idxName already exists in the given table
func indexIsPresent(db *gorm.DB, table string, idxName string) (bool, error) {
	// Raw SQL
	rows, err := db.Raw("select * from information_schema.statistics where table_schema=database() and table_name=? and index_name=?;",
		table, idxName).Rows() //(*sql.Rows, error)
	if err != nil {
		return false, err
	}
	defer rows.Close()
	return rows.Next(), nil
}
