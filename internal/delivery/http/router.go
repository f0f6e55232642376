package http

import (
	"net/http"
	"os"
	"path/filepath"

	httpSwagger "github.com/swaggo/http-swagger"

	"mergingtonactivities/internal/delivery/http/controllers"
)

// NewRouter initializes the HTTP router with all application routes.
// staticDir is served under /static/; the root path redirects into it.
func NewRouter(activityController *controllers.ActivityController, staticDir string) *http.ServeMux {
	mux := http.NewServeMux()

	// API Routes. Wildcards require a non-empty segment, so an empty activity name
	// falls through to 404; PathValue returns segments already URL-decoded.
	mux.HandleFunc("GET /activities", activityController.ListActivities)
	mux.HandleFunc("POST /activities/{name}/signup", activityController.SignupForActivity)
	mux.HandleFunc("DELETE /activities/{name}/participants/{email}", activityController.RemoveParticipant)

	// Front end
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/static/index.html", http.StatusTemporaryRedirect)
	})
	mux.HandleFunc("GET /static/{file...}", serveStatic(staticDir))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}

// serveStatic serves files from staticDir. http.FileServer and http.ServeFile both
// 301-redirect paths ending in /index.html, which would bounce the root redirect's
// target, so files go out through ServeContent instead. /static/ itself serves
// index.html.
func serveStatic(staticDir string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := r.PathValue("file")
		if name == "" {
			name = "index.html"
		}
		// Rooting the path before Clean strips any ".." segments.
		f, err := os.Open(filepath.Join(staticDir, filepath.Clean("/"+name)))
		if err != nil {
			http.NotFound(w, r)
			return
		}
		defer f.Close()
		fi, err := f.Stat()
		if err != nil || fi.IsDir() {
			http.NotFound(w, r)
			return
		}
		http.ServeContent(w, r, fi.Name(), fi.ModTime(), f)
	}
}
