package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/pulsescore/seogen/internal/generate"
	"github.com/pulsescore/seogen/internal/inspect"
	"github.com/pulsescore/seogen/internal/serve"
	"github.com/pulsescore/seogen/internal/validate"
)

func main() {
	app := &cli.App{
		Name:  "seogen",
		Usage: "programmatic SEO generator for the PulseScore marketing site",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Value: "seogen.yaml", Usage: "site config file"},
			&cli.StringFlag{Name: "catalog", Usage: "catalog seed file (overrides config)"},
			&cli.StringFlag{Name: "families", Usage: "family config file (overrides config)"},
			&cli.StringFlag{Name: "out", Usage: "output directory (overrides config)"},
			&cli.StringFlag{Name: "base-url", Usage: "canonical site origin (overrides config)"},
			&cli.BoolFlag{Name: "quiet", Usage: "only log errors"},
		},
		Commands: []*cli.Command{
			{
				Name:   "validate",
				Usage:  "check catalog invariants and print per-family counts",
				Action: validate.ValidateAction,
			},
			{
				Name:   "sitemap",
				Usage:  "emit per-family sitemaps and the sitemap index",
				Action: generate.SitemapAction,
			},
			{
				Name:   "prerender",
				Usage:  "emit static HTML for every route plus the render manifest",
				Action: generate.PrerenderAction,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "assets", Usage: "asset manifest JSON (overrides config)"},
					&cli.StringFlag{Name: "spa-index", Usage: "built SPA index.html to extract asset tags from"},
				},
			},
			{
				Name:   "build",
				Usage:  "validate, emit sitemaps and HTML, record the build",
				Action: generate.BuildAction,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "assets", Usage: "asset manifest JSON (overrides config)"},
					&cli.StringFlag{Name: "spa-index", Usage: "built SPA index.html to extract asset tags from"},
					&cli.StringFlag{Name: "db", Usage: "build history database path"},
				},
			},
			{
				Name:   "serve",
				Usage:  "serve catalog routes over HTTP with the same derivation",
				Action: serve.ServeAction,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "addr", Value: ":8080", Usage: "listen address"},
					&cli.StringFlag{Name: "cache-ttl", Value: "5m", Usage: "render cache TTL"},
				},
			},
			{
				Name:   "verify",
				Usage:  "cross-check emitted artifacts against a fresh derivation",
				Action: inspect.VerifyAction,
			},
			{
				Name:   "audit",
				Usage:  "check content quality of emitted pages",
				Action: inspect.AuditAction,
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "full", Usage: "include passing pages in the report"},
				},
			},
			{
				Name:  "catalog",
				Usage: "catalog inspection",
				Subcommands: []*cli.Command{
					{
						Name:   "stats",
						Usage:  "per-family counts and intent distribution",
						Action: inspect.StatsAction,
					},
				},
			},
			{
				Name:   "history",
				Usage:  "list recorded builds",
				Action: inspect.HistoryAction,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "db", Usage: "build history database path"},
					&cli.IntFlag{Name: "limit", Value: 10, Usage: "max builds to list"},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
