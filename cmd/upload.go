package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/creasty/defaults"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/picup-app/picup/global"
	internalApp "github.com/picup-app/picup/internal/app"
	"github.com/picup-app/picup/pkg/fileurl"
	"github.com/picup-app/picup/pkg/logger"
)

// newOneShotApp builds an app container for the one-shot commands. The
// config file is optional; without one the built-in defaults apply and
// the settings document still comes from the user config dir.
func newOneShotApp(configPath string) (*internalApp.App, error) {
	var cfg *internalApp.AppConfig

	if configPath == "" {
		for _, candidate := range []string{"config.yaml", "config/config.yaml"} {
			if fileurl.IsExist(candidate) {
				configPath = candidate
				break
			}
		}
	}

	if configPath != "" {
		loaded, _, err := internalApp.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else {
		cfg = new(internalApp.AppConfig)
		if err := defaults.Set(cfg); err != nil {
			return nil, err
		}
	}

	lg, err := logger.NewLogger(logger.Config{
		Level:      "warn",
		Production: cfg.Log.Production,
	})
	if err != nil {
		return nil, err
	}
	global.Logger = lg

	return internalApp.NewApp(cfg, lg)
}

func init() {
	var configFlag string

	var uploadCommand = &cobra.Command{
		Use:   "upload <file> [file...]",
		Short: "Upload local image files and print their URLs",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			a, err := newOneShotApp(configFlag)
			if err != nil {
				bootstrapLogger.Error("startup failed", zap.Error(err))
				os.Exit(1)
			}

			ctx, cancel := context.WithTimeout(context.Background(), a.Config().GetContextTimeout())
			defer cancel()

			records, failures, err := a.Service.UploadFromPaths(ctx, args)
			for _, rec := range records {
				fmt.Println(rec.URL)
			}
			for _, f := range failures {
				fmt.Fprintf(os.Stderr, "%s: %s\n", f.Path, f.Reason)
			}
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), DefaultShutdownTimeout)
			defer shutdownCancel()
			_ = a.Shutdown(shutdownCtx)

			if err != nil {
				bootstrapLogger.Error("upload failed", zap.Error(err))
				os.Exit(1)
			}
		},
	}

	rootCmd.AddCommand(uploadCommand)
	uploadCommand.Flags().StringVarP(&configFlag, "config", "c", "", "config file")
}
