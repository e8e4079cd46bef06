package web

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"worksvis/loader"
)

const serverCSV = "work_id,author_id,countries,topic_field_display_name,pub_year\n" +
	"https://openalex.org/W1,https://openalex.org/A1,\"['FR', 'DE']\",Medicine,2020\n" +
	"https://openalex.org/W2,https://openalex.org/A2,['GB'],Physics|Chemistry,2019\n" +
	"https://openalex.org/W3,https://openalex.org/A1,['FR'],physics,2021\n" +
	"https://openalex.org/W4,,['US'],Physics,2021\n"

func newTestServer(t *testing.T) (*httptest.Server, string, *loader.Loader) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "works_with_authors.csv")
	if err := os.WriteFile(path, []byte(serverCSV), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	source, err := loader.NewFileSource(path, "")
	if err != nil {
		t.Fatalf("new file source: %v", err)
	}
	works, err := loader.New(source, loader.Options{})
	if err != nil {
		t.Fatalf("new loader: %v", err)
	}

	ts := httptest.NewServer(NewServer(works, Options{AssetFile: path}))
	t.Cleanup(ts.Close)
	return ts, path, works
}

func getJSON(t *testing.T, url string, wantStatus int, out any) {
	t.Helper()

	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("request %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("expected %d for %s, got %d: %s", wantStatus, url, resp.StatusCode, body)
	}
	if out == nil {
		return
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("decode %s: %v", url, err)
	}
}

func TestServer_WorksEndpointFilters(t *testing.T) {
	t.Parallel()

	ts, _, _ := newTestServer(t)

	var all worksResponse
	getJSON(t, ts.URL+"/api/works", http.StatusOK, &all)
	if all.Count != 3 {
		t.Fatalf("expected 3 valid rows, got %d", all.Count)
	}

	var byYear worksResponse
	getJSON(t, ts.URL+"/api/works?year=2021", http.StatusOK, &byYear)
	if byYear.Count != 1 || byYear.Rows[0].WorkID != "https://openalex.org/W3" {
		t.Fatalf("unexpected year filter result: %+v", byYear)
	}

	var byField worksResponse
	getJSON(t, ts.URL+"/api/works?field=Physics", http.StatusOK, &byField)
	if byField.Count != 2 {
		t.Fatalf("expected 2 physics rows, got %d", byField.Count)
	}

	var byCountry worksResponse
	getJSON(t, ts.URL+"/api/works?country=france", http.StatusOK, &byCountry)
	if byCountry.Count != 2 {
		t.Fatalf("expected 2 french rows, got %d", byCountry.Count)
	}

	getJSON(t, ts.URL+"/api/works?year=abc", http.StatusBadRequest, nil)
}

func TestServer_YearsFieldsCountries(t *testing.T) {
	t.Parallel()

	ts, _, _ := newTestServer(t)

	var years yearsResponse
	getJSON(t, ts.URL+"/api/years", http.StatusOK, &years)
	if len(years.Years) != 3 || years.Years[0] != 2019 || years.Years[2] != 2021 {
		t.Fatalf("unexpected years: %v", years.Years)
	}

	var fields countsResponse
	getJSON(t, ts.URL+"/api/fields", http.StatusOK, &fields)
	if len(fields.Items) != 3 || fields.Items[0].Name != "Physics" || fields.Items[0].Rows != 2 {
		t.Fatalf("unexpected fields: %+v", fields.Items)
	}

	var countries countsResponse
	getJSON(t, ts.URL+"/api/countries", http.StatusOK, &countries)
	if len(countries.Items) != 2 || countries.Items[0].Name != "France" || countries.Items[0].Rows != 2 {
		t.Fatalf("unexpected countries: %+v", countries.Items)
	}
}

func TestServer_AuthorEndpointMatchesShortAndFullIDs(t *testing.T) {
	t.Parallel()

	ts, _, _ := newTestServer(t)

	var author worksResponse
	getJSON(t, ts.URL+"/api/authors/A1", http.StatusOK, &author)
	if author.Count != 2 {
		t.Fatalf("expected 2 rows for A1, got %d", author.Count)
	}

	var full worksResponse
	getJSON(t, ts.URL+"/api/authors/https://openalex.org/A1", http.StatusOK, &full)
	if full.Count != 2 {
		t.Fatalf("expected 2 rows for unescaped full id, got %d", full.Count)
	}

	var escaped worksResponse
	getJSON(t, ts.URL+"/api/authors/https:%2F%2Fopenalex.org%2FA1", http.StatusOK, &escaped)
	if escaped.Count != 2 {
		t.Fatalf("expected 2 rows for escaped full id, got %d", escaped.Count)
	}

	getJSON(t, ts.URL+"/api/authors/A404", http.StatusNotFound, nil)
}

func TestServer_RelativeResourcePathGetsLeadingSlash(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "data.csv")
	if err := os.WriteFile(path, []byte(serverCSV), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	source, err := loader.NewFileSource(path, "")
	if err != nil {
		t.Fatalf("new file source: %v", err)
	}
	works, err := loader.New(source, loader.Options{})
	if err != nil {
		t.Fatalf("new loader: %v", err)
	}

	ts := httptest.NewServer(NewServer(works, Options{ResourcePath: "data.csv", AssetFile: path}))
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/data.csv")
	if err != nil {
		t.Fatalf("request asset: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for relative resource path, got %d", resp.StatusCode)
	}
}

func TestServer_ServesAssetAtResourcePath(t *testing.T) {
	t.Parallel()

	ts, _, _ := newTestServer(t)

	resp, err := http.Get(ts.URL + loader.DefaultResourcePath)
	if err != nil {
		t.Fatalf("request asset: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if got := resp.Header.Get("Content-Type"); !strings.HasPrefix(got, "text/csv") {
		t.Fatalf("unexpected content type: %q", got)
	}
	body, _ := io.ReadAll(resp.Body)
	if string(body) != serverCSV {
		t.Fatalf("unexpected asset body: %s", body)
	}
}

func TestServer_ReloadPicksUpChangedAsset(t *testing.T) {
	t.Parallel()

	ts, path, works := newTestServer(t)

	var before worksResponse
	getJSON(t, ts.URL+"/api/works", http.StatusOK, &before)

	appended := serverCSV + "https://openalex.org/W5,https://openalex.org/A5,['JP'],Biology,2022\n"
	if err := os.WriteFile(path, []byte(appended), 0o644); err != nil {
		t.Fatalf("rewrite csv: %v", err)
	}

	var cached worksResponse
	getJSON(t, ts.URL+"/api/works", http.StatusOK, &cached)
	if cached.Count != before.Count {
		t.Fatalf("expected cached rows before reload, got %d", cached.Count)
	}

	resp, err := http.Post(ts.URL+"/api/reload", "application/json", nil)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	resp.Body.Close()
	if _, ok := works.Cache().Get(); ok {
		t.Fatalf("expected reload to clear the cache")
	}

	var after worksResponse
	getJSON(t, ts.URL+"/api/works", http.StatusOK, &after)
	if after.Count != before.Count+1 {
		t.Fatalf("expected one more row after reload, got %d", after.Count)
	}
}

func TestServer_LoadFailureReturnsBadGateway(t *testing.T) {
	t.Parallel()

	source, err := loader.NewFileSource(filepath.Join(t.TempDir(), "missing.csv"), "")
	if err != nil {
		t.Fatalf("new file source: %v", err)
	}
	works, err := loader.New(source, loader.Options{})
	if err != nil {
		t.Fatalf("new loader: %v", err)
	}
	ts := httptest.NewServer(NewServer(works, Options{}))
	defer ts.Close()

	var failure errorResponse
	getJSON(t, ts.URL+"/api/years", http.StatusBadGateway, &failure)
	if !strings.Contains(failure.Error, "failed to load") {
		t.Fatalf("unexpected error payload: %+v", failure)
	}

	resp, err := http.Get(ts.URL + loader.DefaultResourcePath)
	if err != nil {
		t.Fatalf("request asset: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected asset route to be disabled, got %d", resp.StatusCode)
	}
}
