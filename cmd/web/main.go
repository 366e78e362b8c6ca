package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"strconv"

	"github.com/de-tools/destiny-report/pkg/server"
	"github.com/de-tools/destiny-report/pkg/server/middleware"
	"github.com/de-tools/destiny-report/pkg/services/config"
	"github.com/de-tools/destiny-report/pkg/services/derive"
	"github.com/de-tools/destiny-report/pkg/services/preview"
	"github.com/de-tools/destiny-report/pkg/services/report"
	"github.com/de-tools/destiny-report/pkg/services/session"
	"github.com/de-tools/destiny-report/pkg/store/archive"
	"github.com/de-tools/destiny-report/pkg/store/sqlite"
	"github.com/de-tools/destiny-report/pkg/store/sqlite/drafts"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	cfgPath      string
	profile      string
	profilesPath string
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for Destiny Report",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to destiny.yaml (default is ./destiny.yaml when present)")
	rootCmd.Flags().StringVar(&profile, "profile", "", "Report service profile to use")
	rootCmd.Flags().StringVar(&profilesPath, "profiles", config.DefaultProfilePath(), "Path to the profile file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if profile != "" {
		registry, err := config.NewRegistry(profilesPath)
		if err != nil {
			return fmt.Errorf("failed to create profile registry: %w", err)
		}
		p, err := registry.GetProfile(ctx, profile)
		if err != nil {
			return err
		}
		cfg.ApplyProfile(p)
	}
	reportTypes, err := cfg.ReportTypes()
	if err != nil {
		return err
	}

	fs := afero.NewOsFs()
	reports, err := report.NewClient(report.Config{
		BaseURL:   cfg.API.BaseURL,
		Timeout:   cfg.API.Timeout,
		OutputDir: cfg.Report.OutputDir,
		Fs:        fs,
	})
	if err != nil {
		return fmt.Errorf("failed to create report client: %w", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := middleware.NewMetrics(reg)

	deps := session.Dependencies{
		Engine:      derive.NewDefaultEngine(),
		Exporter:    preview.NewExporter(fs),
		Reports:     reports,
		ReportTypes: reportTypes,
		Observer:    metrics,
	}

	if cfg.Drafts.Path != "" {
		db, err := sqlite.NewDB(sqlite.Settings{DbPath: cfg.Drafts.Path})
		if err != nil {
			return fmt.Errorf("failed to open drafts database: %w", err)
		}
		defer db.Close()

		store, err := drafts.NewStore(db)
		if err != nil {
			return fmt.Errorf("failed to create drafts store: %w", err)
		}
		deps.Drafts = store
		logger.Info().Str("path", cfg.Drafts.Path).Msg("drafts enabled")
	}

	if cfg.Archive.Bucket != "" {
		a, err := newArchive(ctx, cfg.Archive)
		if err != nil {
			return err
		}
		deps.Archive = a
		logger.Info().Str("bucket", cfg.Archive.Bucket).Msg("report archive enabled")
	}

	logger.Info().Msgf("Report service: `%s`", cfg.API.BaseURL)

	addr := net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port))
	api := server.NewWebAPI(logger, server.Config{
		Addr:        addr,
		CorsOrigins: cfg.Server.CorsOrigins,
		Dependencies: server.Dependencies{
			Sessions: session.NewRegistry(deps),
			Reports:  reports,
			Drafts:   deps.Drafts,
			Metrics:  metrics,
			Gatherer: reg,
		},
	})

	return api.Start()
}

func newArchive(ctx context.Context, cfg config.ArchiveConfig) (archive.Archive, error) {
	a, err := archive.New(ctx, archive.Settings{
		Bucket:   cfg.Bucket,
		Region:   cfg.Region,
		Prefix:   cfg.Prefix,
		Endpoint: cfg.Endpoint,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create report archive: %w", err)
	}
	return a, nil
}
