package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"path/filepath"

	"github.com/phyten/todolint/internal/engine"
	engineopts "github.com/phyten/todolint/internal/engine/opts"
)

// serveCmd exposes the scan as a JSON API. Query parameters mirror the CLI
// flags; the scan root is fixed at startup and cannot be overridden per
// request.
func serveCmd(args []string) {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	var (
		port = fs.Int("p", 8080, "port")
		dir  = fs.String("dir", ".", "directory to scan")
	)
	_ = fs.Parse(args)

	def := engineopts.Defaults(*dir)

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{
			"scan": "/api/scan?terms=todo,fixme&location=start&url=https://...",
		})
	})
	mux.HandleFunc("/api/scan", func(w http.ResponseWriter, r *http.Request) {
		opts, err := engineopts.ApplyQueryToOptions(def, r.URL.Query())
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := engineopts.NormalizeAndValidate(&opts); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		res, err := engine.Run(r.Context(), opts)
		if err != nil {
			if r.Context().Err() != nil {
				return
			}
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(res)
	})

	addr := fmt.Sprintf(":%d", *port)
	abs, _ := filepath.Abs(*dir)
	log.Printf("todolint serve listening on %s (dir=%s)", addr, abs)
	log.Fatal(http.ListenAndServe(addr, mux))
}
