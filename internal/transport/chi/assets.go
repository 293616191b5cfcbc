package chi

import (
	"errors"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"go.uber.org/zap"

	logpkg "github.com/kailas-cloud/cookbook/internal/logger"
)

const imageCacheControl = "public, max-age=3600"

// GetImage handles GET /images/{id}.
// Serves {id}.jpg from the asset directory, or the placeholder when it is missing.
func (s *Server) GetImage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	candidates := []string{strconv.Itoa(id) + ".jpg", s.assets.Placeholder}
	for _, name := range candidates {
		if name == "" {
			continue
		}
		f, info, err := openAsset(s.assets.Dir, name)
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				logpkg.FromContext(r.Context()).Warn("Failed to open image asset",
					zap.String("name", name), zap.Error(err))
			}
			continue
		}
		w.Header().Set("Cache-Control", imageCacheControl)
		http.ServeContent(w, r, name, info.ModTime(), f)
		_ = f.Close()
		return
	}

	writeError(w, http.StatusNotFound, codeImageNotFound, "image not found")
}

func openAsset(dir, name string) (*os.File, fs.FileInfo, error) {
	f, err := os.Open(filepath.Join(dir, filepath.Base(name)))
	if err != nil {
		return nil, nil, err //nolint:wrapcheck // inspected by caller only
	}
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, nil, err //nolint:wrapcheck // inspected by caller only
	}
	if info.IsDir() {
		_ = f.Close()
		return nil, nil, fs.ErrNotExist
	}
	return f, info, nil
}
