package main

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/gazebo-web/gz-go/v7"
	"github.com/movielane/catalog-server/globals"
)

// This function applies to ALL tests in the application.
// It will run the test and then clean the database.
func TestMain(m *testing.M) {
	code := m.Run()
	packageTearDown(nil)
	log.Println("Cleaned database tables after all tests")
	os.Exit(code)
}

// Clean up our mess
func packageTearDown(ctx context.Context) {
	if ctx == nil {
		ctx = gz.NewContextWithLogger(context.Background(), gz.NewLoggerNoRollbar("test", gz.VerbosityDebug))
	}
	cleanDBTables(ctx)
}

func cleanDBTables(ctx context.Context) {
	if globals.Server.Db == nil {
		return
	}
	DBDropTables(ctx, globals.Server.Db)
	DBMigrate(ctx, globals.Server.Db)
	// After removing tables we can ask casbin to re initialize
	if err := globals.Permissions.Reload(sysAdminForTest); err != nil {
		log.Fatal("Error reloading casbin policies", err)
	}
	// Apply custom indexes. Eg: fulltext indexes
	DBAddCustomIndexes(ctx, globals.Server.Db)
}
