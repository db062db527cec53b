package main

import (
	"database/sql"
	"database/sql/driver"

	mocket "github.com/Selvatico/go-mocket"
	"github.com/jinzhu/gorm"
	"github.com/movielane/catalog-server/globals"
)

const (
	DriverFailAtBegin = "FAIL_AT_BEGIN_FAKE_DRIVER"
)

// SetGlobalDB is a helper function to change the global DB used
// by the server.
func SetGlobalDB(db *gorm.DB) {
	globals.Server.Db = db
}

// SetupDbMockCatcher registers custom DB drivers that support mocks
func SetupDbMockCatcher() *gorm.DB {
	// Register fake driver
	mocket.Catcher.Register()
	// Also register our custom fail at begin driver
	RegisterFailAtBeginDriver()

	mocket.Catcher.Logging = false
	mockDb, _ := gorm.Open(mocket.DRIVER_NAME, "any_string")

	return mockDb
}

// SetupCommonMockResponses initializes some mock responses to common queries.
func SetupCommonMockResponses(testUser string) {
	// Set up some common DB responses
	commonUserReply := []map[string]interface{}{{"id": "101", "username": testUser, "identity": "test-user-identity"}}
	commonMovieReply := []map[string]interface{}{{"id": "100", "uuid": "uuid-string", "title": "1. Pilot", "download_link": "https://cdn.example.org/pilot.mp4"}}

	mocket.Catcher.Reset()
	mocket.Catcher.Attach([]*mocket.FakeResponse{
		{
			Pattern:  "SELECT * FROM \"users\"  WHERE",
			Response: commonUserReply,
			Once:     false,
		},
		{
			Pattern:  "SELECT * FROM \"movies\"  WHERE",
			Response: commonMovieReply,
			Once:     false,
		},
	})
}

// SetupMockMovieCount adds a new mock query that returns the given number
// when counting movies.
func SetupMockMovieCount(count string) {
	mocket.Catcher.NewMock().WithQuery("SELECT count(*) FROM \"movies\"").WithRowsNum(1).WithReply([]map[string]interface{}{{"count": count}})
}

// SetupMockActiveInstalls adds a new mock query that returns the given number
// when counting active install trackers.
func SetupMockActiveInstalls(count string) {
	mocket.Catcher.NewMock().WithQuery("SELECT count(*) FROM \"install_trackers\"").WithRowsNum(1).WithReply([]map[string]interface{}{{"count": count}})
}

// SetupMockBadCommit configures the DB mock fail on transaction Commit().
func SetupMockBadCommit() {
	mocket.HookBadCommit = func() bool { return true }
}

// ClearMockBadCommit removes the bad commit hook
func ClearMockBadCommit() {
	mocket.HookBadCommit = nil
}

// --------------------------------------------
// --------------------------------------------
// --------------------------------------------

// NewFailAtBeginConn opens and returns a FailAtBegin fake database to be
// used with GORM.
func NewFailAtBeginConn() *gorm.DB {
	c, _ := gorm.Open(DriverFailAtBegin, "any_string")
	return c
}

// FailAtBeginFakeDriver is a fake driver to create DB connections
// that will fail when Begin() is called on them
type FailAtBeginFakeDriver struct {
}

// RegisterFailAtBeginDriver registers a custom driver to be used by sql package.
func RegisterFailAtBeginDriver() {
	driversList := sql.Drivers()
	for _, name := range driversList {
		if name == DriverFailAtBegin {
			return
		}
	}
	sql.Register(DriverFailAtBegin, FailAtBeginFakeDriver{})
}

// FailAtBeginFakeConn is a fake connection that fails on each call to Begin().
type FailAtBeginFakeConn struct {
	*mocket.FakeConn
}

// Open returns a new (fake) connection to the database.
func (d FailAtBeginFakeDriver) Open(database string) (driver.Conn, error) {
	return &FailAtBeginFakeConn{}, nil
}

// Begin func just returns an driver.ErrBadConn error.
func (c *FailAtBeginFakeConn) Begin() (driver.Tx, error) {
	return nil, driver.ErrBadConn
}

// Close func just returns success.
func (c *FailAtBeginFakeConn) Close() (err error) {
	return nil
}
