// Package web serves the normalized works dataset to a localhost-only
// visualization; it intentionally has no auth/CSRF protection in this mode.
package web

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"

	"worksvis/loader"
	"worksvis/work"
)

type Options struct {
	// ResourcePath is where the raw asset is served, e.g. /works_with_authors.csv.
	ResourcePath string
	// AssetFile is the local file behind ResourcePath. Empty disables the route.
	AssetFile string
}

type Server struct {
	loader       *loader.Loader
	resourcePath string
	assetFile    string
	mux          *http.ServeMux
}

type worksResponse struct {
	Count int        `json:"count"`
	Rows  []work.Row `json:"rows"`
}

type yearsResponse struct {
	Years []int `json:"years"`
}

type countsResponse struct {
	Items []Count `json:"items"`
}

type reloadResponse struct {
	Cleared bool `json:"cleared"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func NewServer(works *loader.Loader, options Options) http.Handler {
	server := &Server{
		loader:       works,
		resourcePath: strings.TrimSpace(options.ResourcePath),
		assetFile:    strings.TrimSpace(options.AssetFile),
	}
	if server.resourcePath == "" {
		server.resourcePath = loader.DefaultResourcePath
	}
	if !strings.HasPrefix(server.resourcePath, "/") {
		server.resourcePath = "/" + server.resourcePath
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/works", server.handleAPIWorks)
	mux.HandleFunc("GET /api/years", server.handleAPIYears)
	mux.HandleFunc("GET /api/fields", server.handleAPIFields)
	mux.HandleFunc("GET /api/countries", server.handleAPICountries)
	mux.HandleFunc("GET /api/authors/{id...}", server.handleAPIAuthor)
	mux.HandleFunc("POST /api/reload", server.handleAPIReload)
	if server.assetFile != "" {
		mux.HandleFunc("GET "+server.resourcePath, server.handleAsset)
	}
	server.mux = mux

	return server
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) handleAPIWorks(w http.ResponseWriter, r *http.Request) {
	filter, err := parseRowFilter(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	rows, ok := s.loadRows(w, r)
	if !ok {
		return
	}

	filtered := FilterRows(rows, filter)
	writeJSON(w, http.StatusOK, worksResponse{Count: len(filtered), Rows: filtered})
}

func (s *Server) handleAPIYears(w http.ResponseWriter, r *http.Request) {
	rows, ok := s.loadRows(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, yearsResponse{Years: loader.YearsFrom(rows)})
}

func (s *Server) handleAPIFields(w http.ResponseWriter, r *http.Request) {
	rows, ok := s.loadRows(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, countsResponse{Items: FieldCounts(rows)})
}

func (s *Server) handleAPICountries(w http.ResponseWriter, r *http.Request) {
	rows, ok := s.loadRows(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, countsResponse{Items: CountryCounts(rows)})
}

func (s *Server) handleAPIAuthor(w http.ResponseWriter, r *http.Request) {
	authorID := strings.TrimSpace(r.PathValue("id"))
	if authorID == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "author id is required"})
		return
	}

	rows, ok := s.loadRows(w, r)
	if !ok {
		return
	}

	matched := RowsForAuthor(rows, authorID)
	if len(matched) == 0 {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: fmt.Sprintf("author %s not found", authorID)})
		return
	}
	writeJSON(w, http.StatusOK, worksResponse{Count: len(matched), Rows: matched})
}

func (s *Server) handleAPIReload(w http.ResponseWriter, r *http.Request) {
	s.loader.Cache().Clear()
	writeJSON(w, http.StatusOK, reloadResponse{Cleared: true})
}

func (s *Server) handleAsset(w http.ResponseWriter, r *http.Request) {
	if _, err := os.Stat(s.assetFile); err != nil {
		http.Error(w, "asset not available", http.StatusNotFound)
		return
	}
	if strings.HasSuffix(strings.ToLower(s.assetFile), ".csv") {
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	}
	http.ServeFile(w, r, s.assetFile)
}

func (s *Server) loadRows(w http.ResponseWriter, r *http.Request) ([]work.Row, bool) {
	rows, err := s.loader.LoadWorks(r.Context())
	if err != nil {
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: err.Error()})
		return nil, false
	}
	return rows, true
}

func parseRowFilter(r *http.Request) (RowFilter, error) {
	query := r.URL.Query()
	filter := RowFilter{
		Country: strings.TrimSpace(query.Get("country")),
		Field:   strings.TrimSpace(query.Get("field")),
	}
	if raw := strings.TrimSpace(query.Get("year")); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			return RowFilter{}, fmt.Errorf("invalid year %q", raw)
		}
		filter.Year = &year
	}
	return filter, nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
