package handler

import (
	"errors"
	"io"
	"net/http"
	"path"
	"strconv"
	"strings"

	"github.com/dtroode/chirpy-server/internal/logger"
	"github.com/dtroode/chirpy-server/internal/model"
)

const indexFile = "index.html"

// Assets serves static application files from object storage.
type Assets struct {
	storage model.AssetStorage
	prefix  string
	logger  *logger.Logger
}

// NewAssets creates a handler that serves paths under prefix.
func NewAssets(storage model.AssetStorage, prefix string, logger *logger.Logger) *Assets {
	return &Assets{storage: storage, prefix: prefix, logger: logger}
}

// ServeHTTP serves GET /app/{path}; directories resolve to index.html.
func (h *Assets) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	key := objectKey(strings.TrimPrefix(r.URL.Path, h.prefix))

	asset, err := h.storage.Open(r.Context(), key)
	if errors.Is(err, model.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		handleError(w, err, h.logger)
		return
	}
	defer asset.Body.Close()

	if asset.ContentType != "" {
		w.Header().Set("Content-Type", asset.ContentType)
	}
	if asset.Size > 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(asset.Size, 10))
	}
	if !asset.LastModified.IsZero() {
		w.Header().Set("Last-Modified", asset.LastModified.UTC().Format(http.TimeFormat))
	}
	w.WriteHeader(http.StatusOK)

	if r.Method == http.MethodHead {
		return
	}
	if _, err := io.Copy(w, asset.Body); err != nil {
		h.logger.Debug("Assets handler: client went away", "key", key, "error", err.Error())
	}
}

// objectKey maps a request path to a bucket key, never escaping the root.
func objectKey(p string) string {
	clean := path.Clean("/" + p)
	if strings.HasSuffix(p, "/") || clean == "/" {
		clean = path.Join(clean, indexFile)
	}
	return strings.TrimPrefix(clean, "/")
}
