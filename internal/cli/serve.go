package cli

import (
	"net/http"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"
	"pkt.systems/pslog"

	"github.com/example/swagdoc/internal/generator"
	"github.com/example/swagdoc/pkg/docs"
)

func newServeCommand() *cobra.Command {
	var (
		configPath string
		addr       string
		route      string
		title      string
		watch      bool
		debug      bool
	)

	cmd := &cobra.Command{
		Use:   "serve [patterns...]",
		Short: "Serve the generated document with a browsable UI",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			logger := newLogger(debug)

			opts, err := loadOptions(configPath)
			if err != nil {
				return err
			}

			build := func() (*generator.Document, error) {
				g := generator.New(opts)
				g.SetDebug(debug)
				g.SetLogger(logger)
				if err := g.ParseGlobs(args); err != nil {
					return nil, err
				}
				return g.Generate()
			}

			doc, err := build()
			if err != nil {
				return err
			}
			handler, err := docs.NewHandler(doc, docs.Config{Title: title})
			if err != nil {
				return err
			}

			if watch {
				watcher, err := newSourceWatcher(args, handler, build, logger)
				if err != nil {
					return err
				}
				defer watcher.Close()
			}

			r := chi.NewRouter()
			r.Mount(route, handler)

			logger.Info("docs.serving", "addr", addr, "route", route)
			srv := &http.Server{
				Addr:              addr,
				Handler:           r,
				ReadHeaderTimeout: 5 * time.Second,
			}
			return srv.ListenAndServe()
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML file with document metadata (info, host, basePath, schemes, tags)")
	cmd.Flags().StringVar(&addr, "addr", ":8080", "Listen address")
	cmd.Flags().StringVar(&route, "route", "/docs", "Route prefix the documentation is mounted under")
	cmd.Flags().StringVar(&title, "title", "API Documentation", "Title shown by the documentation UI")
	cmd.Flags().BoolVar(&watch, "watch", false, "Rebuild the document when a source file changes")
	cmd.Flags().BoolVar(&debug, "debug", false, "Log skipped and undecodable documentation blocks")

	return cmd
}

// newSourceWatcher watches the directories of all matched source files and
// rebuilds the served document on changes. Directories rather than files
// are watched so that editors that replace files on save, and new files
// matching a pattern, are both picked up.
func newSourceWatcher(patterns []string, handler *docs.Handler, build func() (*generator.Document, error), logger pslog.Logger) (*fsnotify.Watcher, error) {
	files, err := generator.ExpandGlobs(patterns)
	if err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	dirs := map[string]bool{}
	for _, file := range files {
		dirs[filepath.Dir(file)] = true
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			watcher.Close()
			return nil, err
		}
	}

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
					continue
				}
				doc, err := build()
				if err != nil {
					logger.Warn("docs.rebuild.failed", "error", err)
					continue
				}
				if err := handler.Update(doc); err != nil {
					logger.Warn("docs.update.failed", "error", err)
					continue
				}
				logger.Info("docs.rebuilt", "trigger", event.Name)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("docs.watch.error", "error", err)
			}
		}
	}()
	return watcher, nil
}
