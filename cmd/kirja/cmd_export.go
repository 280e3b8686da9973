package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"

	"github.com/mmikkola/kirja/collector"
	"github.com/mmikkola/kirja/config"
	"github.com/mmikkola/kirja/export"
	"github.com/mmikkola/kirja/history"
	"github.com/mmikkola/kirja/providers/gcp"
	"github.com/mmikkola/kirja/telemetry"
	"github.com/mmikkola/kirja/types"
	"github.com/mmikkola/kirja/upload"
)

const cloudPlatformScope = "https://www.googleapis.com/auth/cloud-platform"

var (
	exportProject     string
	exportBucket      string
	exportOutput      string
	exportConfigPath  string
	exportCredentials string
	exportHistoryPath string
	exportUseAsset    bool
	exportDebug       bool
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Collect project resources and write the inventory workbook",
	Long: `Collect the resources of one or more projects and write them into a
multi-sheet Excel workbook, one sheet per resource kind.

By default each kind is listed with its own API call; a kind whose API
is not enabled, or whose listing fails, yields an empty sheet without
aborting the run. With --use-asset a single Cloud Asset inventory
search replaces the per-kind calls; in that mode a search failure is
fatal because there is no other data source.

When --bucket is set the finished workbook is uploaded to that Cloud
Storage bucket. Upload failures are reported but do not fail the run;
the local file remains available either way.`,
	Example: `  kirja export --project my-project
  kirja export --project proj-a,proj-b --bucket inventory-drops
  kirja export --project my-project --use-asset -o inventory.xlsx`,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportProject, "project", "p", "", "project ID (comma-separated for several)")
	exportCmd.Flags().StringVarP(&exportBucket, "bucket", "b", "", "Cloud Storage bucket to upload the workbook to")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default kirja-inventory-<project>-<timestamp>.xlsx)")
	exportCmd.Flags().StringVarP(&exportConfigPath, "config", "c", "", "config file")
	exportCmd.Flags().StringVar(&exportCredentials, "credentials", "", "service account key file (default: application default credentials)")
	exportCmd.Flags().StringVar(&exportHistoryPath, "history", "", "run history database (empty disables history)")
	exportCmd.Flags().BoolVar(&exportUseAsset, "use-asset", false, "use the Cloud Asset inventory instead of per-kind listing")
	exportCmd.Flags().BoolVar(&exportDebug, "debug", false, "enable debug logging")
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	logger := telemetry.NewLogger("kirja", exportDebug)

	cfg, err := loadExportConfig(ctx)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		// Configuration errors abort before any work, with a distinct exit
		// status so wrappers can tell them from collection failures.
		logger.Error().Err(err).Msg("set --project, projects in the config file, or GOOGLE_CLOUD_PROJECT")
		os.Exit(2)
	}

	var opts []option.ClientOption
	if cfg.Credentials != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Credentials))
	}

	provider, err := gcp.New(ctx, opts...)
	if err != nil {
		return fmt.Errorf("failed to create GCP clients: %w", err)
	}
	coll := collector.New(provider, provider, gcp.Kinds(provider), logger)

	start := time.Now()
	mode := "per-kind"
	if cfg.UseAsset {
		mode = "asset"
	}

	combined := make(types.ResourceSet)
	for _, project := range cfg.Projects {
		logger.Info().Str("project", project).Str("mode", mode).Msg("gathering resources")
		if cfg.UseAsset {
			set, err := coll.CollectAssets(ctx, project)
			if err != nil {
				return err
			}
			combined.Merge(set)
		} else {
			combined.Merge(coll.Collect(ctx, project))
		}
	}

	output := cfg.Output
	if output == "" {
		output = config.DefaultOutput(cfg.Projects[0], start)
	}

	logger.Info().
		Str("output", output).
		Int("categories", len(combined)).
		Int("records", combined.RecordCount()).
		Msg("writing inventory workbook")

	sheets, err := export.WriteWorkbook(output, combined, logger)
	if err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}

	run := history.RunRecord{
		ID:          uuid.NewString(),
		StartedAt:   start,
		Projects:    cfg.Projects,
		Mode:        mode,
		Output:      output,
		SheetCount:  sheets,
		RecordCount: combined.RecordCount(),
	}

	uploadWorkbook(ctx, logger, cfg, output, &run, opts)
	recordRun(logger, cfg.History, run)

	fmt.Println(output)
	return nil
}

// loadExportConfig merges the config file (if any) with command-line flags;
// flags win. The project list falls back to the ambient credentials.
func loadExportConfig(ctx context.Context) (*config.Config, error) {
	cfg := &config.Config{}
	if exportConfigPath != "" {
		loaded, err := config.Load(exportConfigPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if exportProject != "" {
		cfg.Projects = config.SplitProjects(exportProject)
	}
	if exportBucket != "" {
		cfg.Bucket = exportBucket
	}
	if exportOutput != "" {
		cfg.Output = exportOutput
	}
	if exportCredentials != "" {
		cfg.Credentials = exportCredentials
	}
	if exportHistoryPath != "" {
		cfg.History = exportHistoryPath
	}
	if exportUseAsset {
		cfg.UseAsset = true
	}

	if len(cfg.Projects) == 0 {
		if p := defaultProject(ctx); p != "" {
			cfg.Projects = []string{p}
		}
	}
	return cfg, nil
}

// defaultProject resolves a project ID from the environment when none was
// given explicitly: GOOGLE_CLOUD_PROJECT first, then the project bound to
// the application default credentials.
func defaultProject(ctx context.Context) string {
	if p := os.Getenv("GOOGLE_CLOUD_PROJECT"); p != "" {
		return p
	}
	creds, err := google.FindDefaultCredentials(ctx, cloudPlatformScope)
	if err != nil {
		return ""
	}
	return creds.ProjectID
}

// uploadWorkbook hands the workbook to Cloud Storage. Nothing here is fatal:
// skipped and failed uploads are logged and recorded on the run.
func uploadWorkbook(ctx context.Context, logger zerolog.Logger, cfg *config.Config, output string, run *history.RunRecord, opts []option.ClientOption) {
	uploader, err := upload.NewGCSUploader(ctx, opts...)
	if err != nil {
		logger.Error().Err(err).Msg("upload unavailable")
		run.UploadError = err.Error()
		return
	}

	result, err := uploader.Upload(ctx, output, cfg.Bucket, "")
	switch {
	case err != nil:
		logger.Error().Err(err).Str("bucket", cfg.Bucket).Msg("upload failed, local file kept")
		run.UploadError = err.Error()
	case result.Skipped:
		logger.Info().Msg("no bucket configured, skipping upload")
	default:
		logger.Info().
			Str("bucket", result.Bucket).
			Str("object", result.Object).
			Msg("upload successful")
		run.Uploaded = true
	}
}

// recordRun appends the run to the history store when one is configured.
// History failures never fail the run.
func recordRun(logger zerolog.Logger, path string, run history.RunRecord) {
	if path == "" {
		return
	}
	store, err := history.Open(path)
	if err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("history unavailable")
		return
	}
	defer func() { _ = store.Close() }()

	if err := store.Append(run); err != nil {
		logger.Warn().Err(err).Msg("failed to record run history")
	}
}
