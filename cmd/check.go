package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/ricelabs/rice-cli/internal/configs"
	ricerrors "github.com/ricelabs/rice-cli/internal/errors"
	"github.com/ricelabs/rice-cli/internal/health"
	"github.com/ricelabs/rice-cli/internal/ui"

	"github.com/spf13/cobra"
)

var (
	checkStrict  bool
	checkTimeout int
)

func init() {
	CheckCmd.Flags().BoolVar(&checkStrict, "strict", true, "exit non-zero when an enabled service is not reachable")
	CheckCmd.Flags().IntVar(&checkTimeout, "timeout", 5, "probe timeout in seconds")
	registerCommonFlags(CheckCmd)
}

// resetCheckState resets the check command's global state for testing.
func resetCheckState() {
	checkStrict = true
	checkTimeout = 5
}

// CheckCmd probes the configured Rice services.
var CheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Check connection to the configured Rice services",
	Long: `Probes the health endpoint of each enabled service once and reports
the outcome: reachable, rejected (a response indicating an authorization
or server error), unreachable (network failure), or skipped (disabled).

By default the command exits non-zero when any enabled service is not
reachable; pass --strict=false to report outcomes without failing.

Examples:
  # Check all enabled services
  rice-cli check

  # Report only, always exit zero
  rice-cli check --strict=false`,
	RunE: func(cmd *cobra.Command, args []string) error {
		wd, err := os.Getwd()
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to get working directory: %v", err)
		}

		state, err := configs.LoadState(wd)
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to read existing configuration: %v", err)
		}

		if !state.Config.AnyEnabled() {
			fmt.Println(ui.Warning.Sprint("⚠") + " No services are configured. Run " + ui.Code.Sprint("rice-cli setup") + " first.")
			return nil
		}

		return runHealthChecks(&state.Config, checkStrict)
	},
}

// runHealthChecks probes both services sequentially and prints one outcome
// line per service. With strict set, any enabled service that is not
// Reachable makes the whole check fail.
func runHealthChecks(cfg *configs.Config, strict bool) error {
	client := health.NewClient(time.Duration(checkTimeout) * time.Second)
	ctx := context.Background()

	results := []health.Result{
		probeService(ctx, client, "storage", storageTarget(cfg)),
		probeService(ctx, client, "state", stateTarget(cfg)),
	}

	failed := 0
	for _, r := range results {
		if r.Outcome != health.Skipped && r.Outcome != health.Reachable {
			failed++
		}
	}

	if failed > 0 {
		if strict {
			return Logger.ErrorfAndReturn("%v", ricerrors.ErrServiceUnhealthy)
		}
		Logger.Warnf("%v", ricerrors.ErrServiceUnhealthy)
	}
	return nil
}

// target carries the connection fields one probe needs.
type target struct {
	url   string
	token string
}

func storageTarget(cfg *configs.Config) target {
	if !cfg.Storage.Enabled {
		return target{}
	}
	return target{url: cfg.Storage.URL, token: cfg.Storage.Token}
}

func stateTarget(cfg *configs.Config) target {
	if !cfg.State.Enabled {
		return target{}
	}
	return target{url: cfg.State.URL, token: cfg.State.Token}
}

func probeService(ctx context.Context, client *health.Client, service string, t target) health.Result {
	if t.url == "" {
		result := health.Result{Service: service, Outcome: health.Skipped}
		fmt.Println(formatOutcome(result))
		return result
	}

	s, cleanup := startSpinner(fmt.Sprintf("Probing %s at %s...", service, health.HealthURL(t.url)))
	result := client.Check(ctx, service, t.url, t.token)
	s.FinalMSG = formatOutcome(result)
	cleanup()
	return result
}

// formatOutcome renders one service's probe result. Network errors are
// printed as-is: they carry the URL, never the token.
func formatOutcome(r health.Result) string {
	switch r.Outcome {
	case health.Skipped:
		return ui.Muted.Sprint("-") + " " + r.Service + " skipped " + ui.Muted.Sprint("disabled")
	case health.Reachable:
		return ui.Success.Sprint("✓") + " " + r.Service + " is reachable " + ui.Muted.Sprintf("status %d", r.StatusCode) + " at " + ui.Highlight.Sprint(r.URL)
	case health.Rejected:
		return ui.Error.Sprint("✗") + " " + r.Service + " rejected the probe " + ui.Muted.Sprintf("status %d", r.StatusCode) + " at " + ui.Highlight.Sprint(r.URL)
	default:
		return ui.Error.Sprint("✗") + " " + r.Service + " is unreachable: " + fmt.Sprint(r.Err)
	}
}
