// Command todolint flags warning comments (TODO, FIXME, ...) that carry no
// reference to the project's issue tracker.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"

	"github.com/phyten/todolint/internal/config"
	"github.com/phyten/todolint/internal/engine"
	engineopts "github.com/phyten/todolint/internal/engine/opts"
	"github.com/phyten/todolint/internal/output"
	"github.com/phyten/todolint/internal/termcolor"
)

func main() {
	log.SetFlags(0)
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "serve":
			serveCmd(os.Args[2:])
			return
		case "open":
			openCmd(os.Args[2:])
			return
		}
	}
	scanCmd(os.Args[1:])
}

// die reports a configuration or runtime error. Findings use exit code 1,
// so errors get 2 to keep the two distinguishable in CI.
func die(err error) {
	log.Print(err)
	os.Exit(2)
}

type listFlag []string

func (l *listFlag) String() string { return strings.Join(*l, ",") }

func (l *listFlag) Set(v string) error {
	*l = append(*l, engineopts.SplitMulti([]string{v})...)
	return nil
}

func scanCmd(args []string) {
	fs := flag.NewFlagSet("todolint", flag.ExitOnError)

	var terms, paths, excludes, langs listFlag
	fs.Var(&terms, "term", "warning term to search for (repeatable, comma-separated ok; default: todo,fixme,xxx)")
	fs.Var(&paths, "path", "limit the scan to these path prefixes (repeatable)")
	fs.Var(&excludes, "exclude", "glob of paths to skip (repeatable)")
	fs.Var(&langs, "lang", "only scan these languages (repeatable)")
	var (
		location   = fs.String("location", "", "where the term must appear: start|anywhere (default start)")
		url        = fs.String("url", "", "issue tracker URL that documents a warning comment (default: from package.json)")
		dir        = fs.String("dir", ".", "directory to scan")
		outputFmt  = fs.String("output", "", "table|tsv|json|ndjson|csv|markdown (default table)")
		color      = fs.String("color", "", "auto|always|never (default auto)")
		trunc      = fs.Int("truncate", 0, "truncate the COMMENT column to N characters (0=unlimited)")
		jobs       = fs.Int("jobs", 0, "max parallel workers (0=auto)")
		maxBytes   = fs.Int("max-file-bytes", 0, "skip files larger than N bytes (0=unlimited)")
		configPath = fs.String("config", "", "config file (default: search .todolint.* upward, then XDG, then home)")
		noConfig   = fs.Bool("no-config", false, "ignore config files")
		keepAll    = fs.Bool("no-exclude-typical", false, "also scan vendor, node_modules and friends")
		exitZero   = fs.Bool("exit-zero", false, "exit 0 even when findings exist")
	)
	_ = fs.Parse(args)

	layer := flagLayer(fs, terms, paths, excludes, langs, location, url, dir, outputFmt, color, trunc, jobs, maxBytes, keepAll)
	if fs.NArg() > 0 {
		// allow "todolint ./some/dir" without the flag
		*dir = fs.Arg(0)
		layer.Dir = dir
	}

	settings, err := resolveSettings(*dir, *configPath, *noConfig, layer)
	if err != nil {
		die(err)
	}

	mode, err := termcolor.ParseMode(settings.Color)
	if err != nil {
		die(err)
	}

	o := engineopts.Defaults(settings.Dir)
	settings.ApplyToOptions(&o)
	if err := engineopts.NormalizeAndValidate(&o); err != nil {
		die(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	res, err := engine.Run(ctx, o)
	if err != nil {
		die(err)
	}

	switch settings.Output {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(res); err != nil {
			die(err)
		}
	case "ndjson":
		if err := output.WriteNDJSON(os.Stdout, res.Items); err != nil {
			die(err)
		}
	case "csv":
		if err := output.WriteCSV(os.Stdout, res.Items); err != nil {
			die(err)
		}
	case "markdown":
		if err := output.WriteMarkdownTable(os.Stdout, res.Items); err != nil {
			die(err)
		}
	case "tsv":
		printTSV(os.Stdout, res)
	default:
		printTable(os.Stdout, res, termcolor.Enabled(mode, os.Stdout, os.Getenv))
	}

	for _, ie := range res.Errors {
		fmt.Fprintf(os.Stderr, "todolint: %s: %s: %s\n", ie.File, ie.Stage, ie.Message)
	}
	if res.Total > 0 && !*exitZero {
		os.Exit(1)
	}
}

// resolveSettings merges defaults < config file < env < flags.
func resolveSettings(dir, configPath string, noConfig bool, flags config.LintConfig) (config.Settings, error) {
	settings := config.SettingsFromOptions(engineopts.Defaults(dir))

	var layers []config.LintConfig
	if !noConfig {
		explicit := configPath
		if explicit == "" {
			explicit = os.Getenv("TODOLINT_CONFIG")
		}
		path, _, err := config.Find(dir, explicit, os.Getenv("XDG_CONFIG_HOME"), "")
		if err != nil {
			return settings, err
		}
		if path != "" {
			fileCfg, err := config.Load(path)
			if err != nil {
				return settings, err
			}
			layers = append(layers, fileCfg.Lint)
		}
	}

	envCfg, err := config.FromEnv(os.Getenv)
	if err != nil {
		return settings, err
	}
	layers = append(layers, envCfg, flags)

	settings = config.Merge(settings, layers...)
	return config.Normalize(settings)
}

// flagLayer captures only the flags the user actually set, so they override
// file and env values without clobbering them with defaults.
func flagLayer(fs *flag.FlagSet, terms, paths, excludes, langs listFlag, location, url, dir, outputFmt, color *string, trunc, jobs, maxBytes *int, keepAll *bool) config.LintConfig {
	var layer config.LintConfig
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "term":
			list := []string(terms)
			layer.Terms = &list
		case "path":
			list := []string(paths)
			layer.Paths = &list
		case "exclude":
			list := []string(excludes)
			layer.Excludes = &list
		case "lang":
			list := []string(langs)
			layer.DetectLangs = &list
		case "location":
			layer.Location = location
		case "url":
			layer.URL = url
		case "dir":
			layer.Dir = dir
		case "output":
			layer.Output = outputFmt
		case "color":
			layer.Color = color
		case "truncate":
			layer.Truncate = trunc
		case "jobs":
			layer.Jobs = jobs
		case "max-file-bytes":
			layer.MaxFileBytes = maxBytes
		case "no-exclude-typical":
			v := !*keepAll
			layer.ExcludeTypical = &v
		}
	})
	return layer
}
