package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mathgeniusvn/mathgenius/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "mathgenius",
	Short: "Luyện toán THCS cùng AI",
	Long:  "MathGenius — ứng dụng luyện toán THCS (lớp 6-9) với câu hỏi, lời giải và gia sư AI.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config file (overrides MATHGENIUS_CONFIG env var)")

	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(chaptersCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig resolves configuration using the --config flag when set.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.Load(path)
}

// newLogger builds the diagnostic logger. Logs go to a file, never the
// terminal: stdout belongs to the TUI.
func newLogger(path string) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	return cfg.Build()
}

// warnMissingKey prints the degraded-mode notice once at startup.
func warnMissingKey(err error) {
	fmt.Fprintln(os.Stderr, "Cảnh báo:", err)
}
