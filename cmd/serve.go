package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/folio/internal/config"
	"github.com/ziadkadry99/folio/internal/db"
	"github.com/ziadkadry99/folio/internal/prefs"
	"github.com/ziadkadry99/folio/internal/server"
	"github.com/ziadkadry99/folio/internal/site"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Build the site, serve it and rebuild on change",
	Long: `Performs an initial build, then serves the output directory together with
the gallery JSON API and the visitor preference store. The project file and
the static directory are watched; on change the site is rebuilt and open
pages are told to reload.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "port to listen on (defaults to server.port)")
	serveCmd.Flags().Bool("no-reload", false, "disable live reload")
	serveCmd.Flags().Bool("no-prefs", false, "do not open the preference database")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Server.Port = servePort
	}
	if noReload, _ := cmd.Flags().GetBool("no-reload"); noReload {
		cfg.Server.Reload = false
	}

	if _, err := buildSite(cfg, cfg.Server.Reload); err != nil {
		return fmt.Errorf("initial build failed: %w\nFix the project file and try again", err)
	}

	var database *db.DB
	if noPrefs, _ := cmd.Flags().GetBool("no-prefs"); !noPrefs {
		database, err = db.Open(cfg.Server.Database)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		if n, err := prefs.NewStore(database).PruneExpired(context.Background(), time.Now()); err != nil {
			log.Printf("serve: pruning preferences: %v", err)
		} else if n > 0 {
			log.Printf("serve: pruned %d expired preference(s)", n)
		}
	}

	catalog, err := server.LoadCatalog(cfg.DataFile)
	if err != nil {
		return err
	}

	srv := server.New(server.Config{
		Port:      cfg.Server.Port,
		OutputDir: cfg.OutputDir,
		AllowAll:  cfg.Server.AllowAll,
		Theme:     cfg.Theme.Default,
	}, database, catalog)

	// Graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Server.Reload {
		go func() {
			err := server.Watch(ctx, []string{cfg.DataFile, cfg.StaticDir}, 300*time.Millisecond, func() {
				rebuild(cfg, catalog, srv.Hub())
			})
			if err != nil {
				log.Printf("serve: watcher stopped: %v", err)
			}
		}()
	}

	go func() {
		<-ctx.Done()
		fmt.Fprintln(os.Stderr, "\nShutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	fmt.Fprintf(os.Stderr, "folio %s serving %s at http://localhost:%d\n", Version, cfg.OutputDir, cfg.Server.Port)
	if database != nil {
		fmt.Fprintf(os.Stderr, "  Preferences: %s\n", database.Path())
	}
	fmt.Fprintf(os.Stderr, "  Live reload: %t\n", cfg.Server.Reload)
	fmt.Fprintln(os.Stderr, "Press Ctrl+C to stop the server.")

	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// rebuild regenerates the site after a change. A failed build leaves the
// previous output and catalog in place and does not notify pages.
func rebuild(cfg *config.Config, catalog *server.Catalog, hub *server.Hub) {
	log.Println("serve: change detected, rebuilding site")
	gen := site.NewGenerator(cfg)
	gen.Reload = true
	if _, err := gen.Generate(); err != nil {
		log.Printf("serve: rebuild failed: %v", err)
		return
	}
	if err := catalog.Reload(); err != nil {
		log.Printf("serve: reloading projects: %v", err)
	}
	hub.Broadcast()
	log.Printf("serve: site rebuilt, notified %d page(s)", hub.Clients())
}
