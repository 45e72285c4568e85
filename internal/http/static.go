package http

import (
	nethttp "net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"

	"feedrelay/backend/internal/logger"
)

// reservedPrefixes never fall back to the dashboard's index page.
var reservedPrefixes = []string{"/api", "/swagger", "/metrics", "/healthz"}

// registerStatic serves the built dashboard from dir. Unknown paths get
// index.html so client-side routes survive a reload.
func registerStatic(e *echo.Echo, dir string) {
	if dir == "" {
		return
	}
	indexPath := filepath.Join(dir, "index.html")
	info, err := os.Stat(indexPath)
	if err != nil || info.IsDir() {
		logger.Warn("dashboard index missing", "module", "http", "action", "serve", "resource", "static", "result", "failed", "path", indexPath)
		return
	}
	logger.Info("dashboard assets enabled", "module", "http", "action", "serve", "resource", "static", "result", "ok", "dir", dir)

	fileServer := nethttp.FileServer(nethttp.Dir(dir))

	e.GET("/*", func(c echo.Context) error {
		requestPath := c.Request().URL.Path
		if isReserved(requestPath) {
			return echo.ErrNotFound
		}

		cleanPath := strings.TrimPrefix(path.Clean(requestPath), "/")
		if cleanPath == "." || cleanPath == "" {
			return c.File(indexPath)
		}

		candidate := filepath.Join(dir, cleanPath)
		if fileInfo, err := os.Stat(candidate); err == nil && !fileInfo.IsDir() {
			fileServer.ServeHTTP(c.Response(), c.Request())
			return nil
		}

		logger.Debug("dashboard route fallback", "module", "http", "action", "serve", "resource", "static", "result", "ok", "path", requestPath)
		return c.File(indexPath)
	})
}

func isReserved(requestPath string) bool {
	for _, prefix := range reservedPrefixes {
		if requestPath == prefix || strings.HasPrefix(requestPath, prefix+"/") {
			return true
		}
	}
	return false
}
