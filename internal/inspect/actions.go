package inspect

import (
	"fmt"
	"time"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/pulsescore/seogen/internal/common"
	"github.com/pulsescore/seogen/models"
	"github.com/pulsescore/seogen/pkg/audit"
	"github.com/pulsescore/seogen/pkg/db"
	"github.com/pulsescore/seogen/pkg/storage"
	"github.com/pulsescore/seogen/pkg/verify"
)

// VerifyAction cross-checks a finished build: sitemap completeness,
// manifest coverage, and emitted HTML against a fresh derivation.
func VerifyAction(c *cli.Context) error {
	logger := common.NewLogger(c)

	pipeline, err := common.LoadPipeline(c)
	if err != nil {
		logger.Error("failed to load catalog", "error", err)
		return cli.Exit(err.Error(), 2)
	}

	verifier := &verify.Verifier{
		Deriver: pipeline.Deriver,
		Store:   &storage.Storage{},
		BaseURL: pipeline.Cfg.BaseURL,
		OutDir:  pipeline.Cfg.OutputDir,
	}

	report, err := verifier.Run()
	if err != nil {
		logger.Error("verification could not complete", "error", err)
		return cli.Exit(err.Error(), 1)
	}

	fmt.Printf("Checked %d routes and %d sitemaps\n", report.RoutesChecked, report.SitemapsChecked)
	if !report.OK() {
		for _, p := range report.Problems {
			fmt.Println("  FAIL " + p)
		}
		return cli.Exit(fmt.Sprintf("%d problems found", len(report.Problems)), 1)
	}
	fmt.Println("Build verified")
	return nil
}

// AuditAction checks the content quality of emitted pages and prints the
// report as YAML.
func AuditAction(c *cli.Context) error {
	logger := common.NewLogger(c)

	pipeline, err := common.LoadPipeline(c)
	if err != nil {
		logger.Error("failed to load catalog", "error", err)
		return cli.Exit(err.Error(), 2)
	}

	auditor := audit.New(pipeline.Deriver, &storage.Storage{}, pipeline.Cfg.BaseURL, pipeline.Cfg.OutputDir)
	report, err := auditor.Run()
	if err != nil {
		logger.Error("audit could not complete", "error", err)
		return cli.Exit(err.Error(), 1)
	}

	if !c.Bool("full") {
		// Trim passing pages from the output; the summary counts remain.
		var failing []audit.PageResult
		for _, page := range report.Pages {
			if len(page.Problems) > 0 {
				failing = append(failing, page)
			}
		}
		report.Pages = failing
	}

	yamlBytes, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	fmt.Print(string(yamlBytes))

	if report.PagesFailed > 0 {
		return cli.Exit(fmt.Sprintf("%d pages failed the audit", report.PagesFailed), 1)
	}
	return nil
}

// StatsAction prints per-family catalog statistics as YAML.
func StatsAction(c *cli.Context) error {
	logger := common.NewLogger(c)

	pipeline, err := common.LoadPipeline(c)
	if err != nil {
		logger.Error("failed to load catalog", "error", err)
		return cli.Exit(err.Error(), 2)
	}

	type familyStats struct {
		Family  string         `yaml:"family"`
		Path    string         `yaml:"path"`
		Pages   int            `yaml:"pages"`
		Minimum int            `yaml:"minimum"`
		Intents map[string]int `yaml:"intents"`
	}

	counts := pipeline.Catalog.FamilyCounts()
	var stats []familyStats
	for _, family := range models.AllFamilies {
		intents := make(map[string]int)
		for _, seed := range pipeline.Catalog.FamilySeeds(family) {
			intents[seed.Intent]++
		}
		stats = append(stats, familyStats{
			Family:  string(family),
			Path:    pipeline.Catalog.Families[family].Path,
			Pages:   counts[family],
			Minimum: family.MinEntries(),
			Intents: intents,
		})
	}

	out := struct {
		TotalPages int           `yaml:"total_pages"`
		Families   []familyStats `yaml:"families"`
	}{len(pipeline.Catalog.Seeds), stats}

	yamlBytes, err := yaml.Marshal(out)
	if err != nil {
		return fmt.Errorf("failed to marshal stats: %w", err)
	}
	fmt.Print(string(yamlBytes))
	return nil
}

// HistoryAction lists recorded builds, newest first.
func HistoryAction(c *cli.Context) error {
	logger := common.NewLogger(c)

	database, err := db.Open(c.String("db"))
	if err != nil {
		logger.Error("failed to open build history database", "error", err)
		return cli.Exit(err.Error(), 2)
	}
	defer database.Close()

	builds, err := database.ListBuilds(c.Int("limit"))
	if err != nil {
		logger.Error("failed to list builds", "error", err)
		return cli.Exit(err.Error(), 1)
	}

	if len(builds) == 0 {
		fmt.Println("No builds recorded. Run 'seogen build' first.")
		return nil
	}

	for _, build := range builds {
		fmt.Printf("build %d  %s  %d routes  %d sitemap entries  %d catalog pages  %s\n",
			build.BuildID,
			build.GeneratedAt.Format("2006-01-02 15:04:05"),
			build.RouteCount,
			build.SitemapCount,
			build.CatalogSize,
			build.Duration.Round(time.Millisecond),
		)
	}
	return nil
}
