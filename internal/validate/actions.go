package validate

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/pulsescore/seogen/internal/common"
)

// ValidateAction runs the catalog invariant checks. Any violation aborts
// with a non-zero exit before anything is generated; success prints the
// per-family count summary.
func ValidateAction(c *cli.Context) error {
	logger := common.NewLogger(c)

	pipeline, err := common.LoadPipeline(c)
	if err != nil {
		logger.Error("failed to load catalog", "error", err)
		return cli.Exit(err.Error(), 2)
	}

	if err := pipeline.Catalog.Validate(); err != nil {
		logger.Error("catalog validation failed", "error", err)
		return cli.Exit(fmt.Sprintf("catalog validation failed: %s", err), 1)
	}

	fmt.Println("Catalog OK")
	for _, line := range pipeline.Catalog.Summary() {
		fmt.Println("  " + line)
	}
	return nil
}
