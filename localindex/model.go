package localindex

import (
	"database/sql"

	"github.com/google/uuid"
)

// Context is the context for a local index operation
type Context struct {
	DB        *sql.DB
	sessionID string
}

// AppName returns the name of the application
func (c *Context) AppName() string {
	return "granule-broker"
}

// SessionID returns a session ID, creating one if needed
func (c *Context) SessionID() string {
	if c.sessionID == "" {
		c.sessionID = uuid.NewString()
	}
	return c.sessionID
}
