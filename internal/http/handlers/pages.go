package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"javaterra/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// Pages serves the static HTML frontend from Dir.
type Pages struct {
	Dir   string
	Admin middleware.TokenVerifier
}

// Page returns a handler for one HTML file under Dir.
func (p Pages) Page(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := filepath.Join(p.Dir, name)
		if _, err := os.Stat(path); err != nil {
			RespondError(c, http.StatusNotFound, "Page not found", nil)
			return
		}
		c.File(path)
	}
}

// Dashboard serves admin.html to a logged-in admin, otherwise redirects to login.
func (p Pages) Dashboard(c *gin.Context) {
	if p.Admin == nil || !middleware.IsAdmin(c, p.Admin) {
		c.Redirect(http.StatusFound, "/admin/login")
		return
	}
	p.Page("admin.html")(c)
}
