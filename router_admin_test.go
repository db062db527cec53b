package main

import (
	"testing"

	"github.com/gazebo-web/gz-go/v7"
	"github.com/movielane/catalog-server/globals"

	gztest "github.com/gazebo-web/gz-go/v7/testhelpers"
)

// Tests for the staff dashboard and search admin routes

// The whole admin surface requires a JWT.
func TestAdminRoutesNeedAuth(t *testing.T) {
	setup()
	origDb := globals.Server.Db
	defer SetGlobalDB(origDb)
	SetGlobalDB(SetupDbMockCatcher())
	SetupCommonMockResponses("test-user")

	unauth := gz.NewErrorMessage(gz.ErrorUnauthorized)
	tests := []struct {
		uriTest
		method string
	}{
		{uriTest{"dashboard no jwt", "/1.0/admin/dashboard", nil, unauth, true}, "GET"},
		{uriTest{"dashboard invalid jwt", "/1.0/admin/dashboard", sptr("invalid"), unauth, true}, "GET"},
		{uriTest{"installs reset no jwt", "/1.0/admin/installs", nil, unauth, true}, "DELETE"},
		{uriTest{"search configs no jwt", "/1.0/admin/search", nil, unauth, true}, "GET"},
		{uriTest{"search create no jwt", "/1.0/admin/search", nil, unauth, true}, "POST"},
		{uriTest{"search reconnect no jwt", "/1.0/admin/search/reconnect", nil, unauth, true}, "GET"},
		{uriTest{"search rebuild no jwt", "/1.0/admin/search/rebuild", nil, unauth, true}, "GET"},
		{uriTest{"search modify no jwt", "/1.0/admin/search/1", nil, unauth, true}, "PATCH"},
	}

	for _, test := range tests {
		t.Run(test.testDesc, func(t *testing.T) {
			expEm, expCt := errMsgAndContentType(test.expErrMsg, ctJSON)
			gztest.AssertRouteMultipleArgs(test.method, test.URL, nil, expEm.StatusCode, test.jwt, expCt, t)
		})
	}
}
