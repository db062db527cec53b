package main

import (
	"context"
	"log"
	"os"

	"github.com/gazebo-web/gz-go/v7"
	gztest "github.com/gazebo-web/gz-go/v7/testhelpers"
	"github.com/movielane/catalog-server/globals"
)

// Test utilities and some mocks

const (
	apiVersion  string = "1.0"
	ctTextPlain string = "text/plain; charset=utf-8"
	ctJSON      string = "application/json"
)

// sptr returns a pointer to a given string.
// This function is specially useful when using string literals as argument.
func sptr(s string) *string {
	return &s
}

// errMsgAndContentType is a helper that given an optional errMsg and a content type to use
// when OK (ie. http status code 200), it returns a tuple with the ErrMsg and contentType to use
// in a subsequent call to 'gztest.AssertRouteMultipleArgs'.
// It was created to reduce LOC.
func errMsgAndContentType(em *gz.ErrMsg, successCT string) (gz.ErrMsg, string) {
	if em != nil {
		return *em, ctTextPlain
	}
	return gz.ErrorMessageOK(), successCT
}

// uriTest defines a test case for a route.
type uriTest struct {
	// description of the test
	testDesc string
	// a url (eg. /1.0/movies?q=pilot)
	URL string
	// an optional jwt token to send with the request
	jwt *string
	// optional expected gz.ErrMsg response. If the test case represents an error case
	// in such case, content type text/plain will be used
	expErrMsg *gz.ErrMsg
	// in case of error response, whether to parse the response body to get an gz.ErrMsg struct
	ignoreErrorBody bool
}

// setup helper function
func setup() {
	setupWithCustomInitalizer(nil)
}

type customInitializer func(ctx context.Context)

// setup helper function
func setupWithCustomInitalizer(customFn customInitializer) {
	logger := gz.NewLoggerNoRollbar("test", gz.VerbosityDebug)
	logCtx := gz.NewContextWithLogger(context.Background(), logger)

	// Tests run against a DB mock unless a real test database was configured.
	if globals.Server.Db == nil {
		SetGlobalDB(SetupDbMockCatcher())
	} else {
		// Make sure we don't have data from other tests.
		// For this we drop db tables and recreate them.
		packageTearDown(logCtx)
		DBAddDefaultData(logCtx, globals.Server.Db)
	}

	if customFn != nil {
		customFn(logCtx)
	}

	// Check for auth0 environment variables.
	if os.Getenv("CATALOG_TEST_JWT") == "" {
		log.Printf("Missing CATALOG_TEST_JWT env variable." +
			"Tests of authenticated routes will not work.")
	}

	// Create the router, and indicate that we are testing
	gztest.SetupTest(globals.Server.Router)
}
