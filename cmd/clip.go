package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func init() {
	var configFlag string

	var clipCommand = &cobra.Command{
		Use:   "clip",
		Short: "Upload the clipboard image and print its URL",
		Run: func(cmd *cobra.Command, args []string) {
			a, err := newOneShotApp(configFlag)
			if err != nil {
				bootstrapLogger.Error("startup failed", zap.Error(err))
				os.Exit(1)
			}

			ctx, cancel := context.WithTimeout(context.Background(), a.Config().GetContextTimeout())
			defer cancel()

			rec, err := a.Service.UploadFromClipboard(ctx)

			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), DefaultShutdownTimeout)
			defer shutdownCancel()
			_ = a.Shutdown(shutdownCtx)

			if err != nil {
				bootstrapLogger.Error("clipboard upload failed", zap.Error(err))
				os.Exit(1)
			}
			fmt.Println(rec.URL)
		},
	}

	rootCmd.AddCommand(clipCommand)
	clipCommand.Flags().StringVarP(&configFlag, "config", "c", "", "config file")
}
