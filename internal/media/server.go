package media

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"trailhead/internal/dbmongo"
	"trailhead/internal/dbmysql"
	"trailhead/internal/hashid"
)

// HTTPServer streams media blobs addressed by their public file token.
// Internal file IDs never appear in URLs.
type HTTPServer struct {
	db      *gorm.DB
	storage *dbmongo.MediaStorage
	codec   *hashid.Codec
	log     *zap.Logger
}

func NewHTTPServer(db *gorm.DB, mongoClient *dbmongo.MongoClient, codec *hashid.Codec, log *zap.Logger) *HTTPServer {
	return &HTTPServer{
		db:      db,
		storage: dbmongo.NewMediaStorage(mongoClient),
		codec:   codec,
		log:     log,
	}
}

func (s *HTTPServer) Router() *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/media/{token}", s.serveFile).Methods("GET")
	router.HandleFunc("/health", s.health).Methods("GET")
	return router
}

func (s *HTTPServer) serveFile(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]

	// Any token that does not resolve to a stored blob is a plain 404;
	// the response never distinguishes bad tokens from missing files.
	fileID, ok := s.codec.DecodeFile(token)
	if !ok {
		http.Error(w, "file not found", http.StatusNotFound)
		return
	}

	var file dbmysql.File
	if err := s.db.WithContext(r.Context()).First(&file, "file_id = ?", fileID).Error; err != nil {
		http.Error(w, "file not found", http.StatusNotFound)
		return
	}

	blob, size, err := s.storage.DownloadBlob(r.Context(), file.StorageKey)
	if err != nil {
		http.Error(w, "file not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", file.MimeType)
	w.Header().Set("Content-Length", fmt.Sprintf("%d", size))

	if _, err := io.Copy(w, blob); err != nil {
		s.log.Warn("error streaming file", zap.String("token", token), zap.Error(err))
	}
}

func (s *HTTPServer) health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy","service":"trailhead-media"}`))
}
