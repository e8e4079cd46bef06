package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"strings"
	"syscall"
	"time"

	"worksvis/config"
	"worksvis/loader"
	"worksvis/web"

	"github.com/spf13/cobra"
)

var (
	servePort    int
	serveAsset   string
	serveNoOpen  bool
	servePreload bool
	serveSource  sourceFlags
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start local read-only JSON API for the works visualization",
	Long: `Start a local HTTP server exposing the normalized works.

Routes:
- GET  /api/works?year=&country=&field=
- GET  /api/years, /api/fields, /api/countries
- GET  /api/authors/{id}   (full or short author id)
- POST /api/reload         (drops the cached rows)
- GET  <source.path>       (raw asset, when --asset or a file source is set)

The dataset is loaded lazily on the first request and cached until reload.`,
	Example: `
  # Serve a local file on the configured port
  worksvis serve --file ./static/works_with_authors.csv

  # Proxy the dev server dataset on port 9090 without opening a browser
  worksvis serve --url http://localhost:5173 --port 9090 --no-open
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			return err
		}

		works, source, err := newWorksLoader(*cfg, serveSource)
		if err != nil {
			return err
		}
		if servePreload {
			if _, err := works.LoadWorks(cmd.Context()); err != nil {
				return err
			}
		}

		port := resolveServePort(servePort, cfg.Serve.Port)
		resourcePath := resolveResourcePath(serveSource.path, cfg.Source.Path)
		asset := resolveServeAsset(serveAsset, cfg.Serve.AssetFile, source)

		handler := web.NewServer(works, web.Options{
			ResourcePath: resourcePath,
			AssetFile:    asset,
		})

		addr := fmt.Sprintf(":%d", port)
		server := &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			errCh <- server.ListenAndServe()
		}()

		listenURL := fmt.Sprintf("http://localhost:%d", port)
		fmt.Printf("Listening on %s (source: %s)\n", listenURL, source.Location())
		if !serveNoOpen {
			if openErr := openURLInBrowser(listenURL + "/api/years"); openErr != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to open browser: %v\n", openErr)
			}
		}

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
		defer signal.Stop(sigCh)

		select {
		case err := <-errCh:
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		case <-sigCh:
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := server.Shutdown(ctx); err != nil {
				return fmt.Errorf("shutdown server: %w", err)
			}
			err := <-errCh
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().IntVar(&servePort, "port", 0, "HTTP port for the local web server (default: serve.port)")
	serveCmd.Flags().StringVar(&serveAsset, "asset", "", "Local file served at the resource path (default: serve.asset_file, then the file source)")
	serveCmd.Flags().BoolVar(&serveNoOpen, "no-open", false, "Do not open browser automatically")
	serveCmd.Flags().BoolVar(&servePreload, "preload", false, "Load the dataset before listening and fail fast on errors")
	serveSource.register(serveCmd)
}

func resolveServePort(flagPort, configPort int) int {
	if flagPort > 0 {
		return flagPort
	}
	if configPort > 0 {
		return configPort
	}
	return 8080
}

func resolveResourcePath(flagPath, configPath string) string {
	if path := strings.TrimSpace(flagPath); path != "" {
		return path
	}
	if path := strings.TrimSpace(configPath); path != "" {
		return path
	}
	return loader.DefaultResourcePath
}

// resolveServeAsset returns the file behind the resource route. A file source
// serves itself when nothing else is configured.
func resolveServeAsset(flagAsset, configAsset string, source loader.Source) string {
	if asset := strings.TrimSpace(flagAsset); asset != "" {
		return asset
	}
	if asset := strings.TrimSpace(configAsset); asset != "" {
		return asset
	}
	if fileSource, ok := source.(*loader.FileSource); ok {
		return fileSource.Location()
	}
	return ""
}

func openURLInBrowser(rawURL string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", rawURL)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", rawURL)
	default:
		cmd = exec.Command("xdg-open", rawURL)
	}
	return cmd.Start()
}
