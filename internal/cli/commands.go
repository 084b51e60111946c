package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/TeriyakiSecky/android-sdk/internal/engine"
	"github.com/TeriyakiSecky/android-sdk/internal/logger"
	"github.com/TeriyakiSecky/android-sdk/internal/model"
	"github.com/TeriyakiSecky/android-sdk/internal/plugins"
	"github.com/TeriyakiSecky/android-sdk/internal/report"
	"github.com/TeriyakiSecky/android-sdk/internal/tui"
)

func AddCommands(root *cobra.Command) {
	root.AddCommand(newScanCmd())
	root.AddCommand(newInitCmd())
	root.AddCommand(newIssuesCmd())
}

func newScanCmd() *cobra.Command {
	var (
		format     string
		outputFile string
		sarifOut   string
		failOn     string
		useTUI     bool
		logLevel   string
	)
	cmd := &cobra.Command{
		Use:   "scan [paths...]",
		Short: "Analyze projects, directories or individual files",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths := args
			if len(paths) == 0 {
				paths = []string{"."}
			}

			if err := logger.Initialize(logLevel); err != nil {
				return err
			}

			registry := plugins.NewRegistry()
			registry.RegisterBuiltin()

			client := NewClient()
			driver := engine.New(registry, client)
			driver.AddListener(progressListener{})

			// Ctrl-C and friends turn into a cooperative cancel.
			stop := make(chan struct{})
			defer close(stop)
			go func() {
				select {
				case <-cmd.Context().Done():
					driver.Cancel()
				case <-stop:
				}
			}()

			driver.Analyze(paths, 0)
			findings := client.Findings()

			if useTUI {
				return tui.Run(findings)
			}
			switch format {
			case "json":
				data, _ := json.MarshalIndent(findings, "", "  ")
				if outputFile != "" {
					return os.WriteFile(outputFile, data, 0o644)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
			case "sarif":
				data, err := report.ToSARIF(findings)
				if err != nil {
					return err
				}
				if sarifOut != "" {
					return os.WriteFile(sarifOut, data, 0o644)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
			default:
				report.WriteTable(cmd.OutOrStdout(), findings)
			}

			if failOn != "" {
				threshold := model.ParseSeverity(failOn)
				for _, f := range findings {
					if model.SeverityGTE(f.Severity, threshold) {
						return fmt.Errorf("fail-on threshold met: %s", f.Severity)
					}
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format: table|json|sarif")
	cmd.Flags().StringVarP(&outputFile, "out", "o", "", "Write report to file (with --format json)")
	cmd.Flags().StringVar(&sarifOut, "sarif-out", "", "Write SARIF report to file (with --format sarif)")
	cmd.Flags().StringVar(&failOn, "fail-on", "", "Fail if a finding of this severity or higher is found")
	cmd.Flags().BoolVar(&useTUI, "tui", false, "Render interactive TUI output")
	cmd.Flags().StringVar(&logLevel, "log-level", "warn", "Log level: debug|info|warn|error")
	return cmd
}

func newIssuesCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "issues", Short: "List registered issues"}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List built-in issues",
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := plugins.NewRegistry()
			registry.RegisterBuiltin()
			for _, issue := range registry.Issues() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\n",
					issue.ID, issue.Severity, issue.Category, issue.Description)
			}
			return nil
		},
	})
	return cmd
}
