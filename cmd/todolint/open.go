package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/pkg/browser"

	"github.com/phyten/todolint/internal/gitremote"
	"github.com/phyten/todolint/internal/manifest"
)

// openCmd opens the project's issue tracker in a browser. Source priority
// follows the exemption check — explicit URL, then the package manifest —
// with the git remote as a last resort.
func openCmd(args []string) {
	fs := flag.NewFlagSet("open", flag.ExitOnError)
	var (
		url = fs.String("url", "", "tracker URL (default: from package.json or the git remote)")
		dir = fs.String("dir", ".", "project directory")
	)
	_ = fs.Parse(args)

	target := strings.TrimSpace(*url)
	if target == "" {
		if found, ok := manifest.Lookup(*dir); ok {
			target = found
		}
	}
	if target == "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if info, err := gitremote.Detect(ctx, nil, *dir); err == nil {
			target = info.IssuesURL()
		}
	}
	if target == "" {
		die(fmt.Errorf("no tracker URL configured and none found in a package manifest or git remote"))
	}
	// manifests often carry go-get/npm style prefixes
	target = strings.TrimPrefix(target, "git+")
	if err := browser.OpenURL(target); err != nil {
		die(err)
	}
	log.Printf("opened %s", target)
}
