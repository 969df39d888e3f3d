package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/zhubert/launchpad/internal/demo"
	"github.com/zhubert/launchpad/internal/demo/scenarios"
)

var (
	demoOutput     string
	demoWidth      int
	demoHeight     int
	demoCaptureAll bool
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Generate demo recordings of launchpad",
	Long: `Generate demo recordings of launchpad for documentation and presentations.
Scenarios run against a built-in catalog and nothing is actually launched.

Available subcommands:
  list      - List available demo scenarios
  run       - Run a scenario and output to stdout (for testing)
  cast      - Generate an asciinema cast file`,
}

var demoListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available demo scenarios",
	Run: func(cmd *cobra.Command, args []string) {
		writeScenarioList(cmd.OutOrStdout())
	},
}

var demoRunCmd = &cobra.Command{
	Use:   "run <scenario>",
	Short: "Run a scenario and output to stdout (for testing)",
	Args:  cobra.ExactArgs(1),
	RunE:  runDemoRun,
}

var demoCastCmd = &cobra.Command{
	Use:   "cast <scenario>",
	Short: "Generate an asciinema cast file",
	Args:  cobra.ExactArgs(1),
	RunE:  runDemoCast,
}

func init() {
	for _, cmd := range []*cobra.Command{demoRunCmd, demoCastCmd} {
		cmd.Flags().StringVarP(&demoOutput, "output", "o", "", "Output file")
		cmd.Flags().IntVarP(&demoWidth, "width", "w", 0, "Terminal width (default from the scenario)")
		cmd.Flags().IntVarP(&demoHeight, "height", "H", 0, "Terminal height (default from the scenario)")
		cmd.Flags().BoolVar(&demoCaptureAll, "capture-all", false, "Capture frame after every step (for debugging)")
	}

	demoCmd.AddCommand(demoListCmd)
	demoCmd.AddCommand(demoRunCmd)
	demoCmd.AddCommand(demoCastCmd)
	rootCmd.AddCommand(demoCmd)
}

func writeScenarioList(w io.Writer) {
	fmt.Fprintln(w, "Available demo scenarios:")
	fmt.Fprintln(w)
	for _, s := range scenarios.All() {
		fmt.Fprintf(w, "  %-15s %s\n", s.Name, s.Description)
	}
}

func getScenario(name string) (*demo.Scenario, error) {
	scenario := scenarios.Get(name)
	if scenario == nil {
		return nil, fmt.Errorf("unknown scenario %q\nRun 'launchpad demo list' to see available scenarios", name)
	}

	// Override dimensions if specified
	if demoWidth > 0 {
		scenario.Width = demoWidth
	}
	if demoHeight > 0 {
		scenario.Height = demoHeight
	}

	return scenario, nil
}

func executeScenario(scenario *demo.Scenario) ([]demo.Frame, error) {
	execCfg := demo.DefaultExecutorConfig()
	execCfg.CaptureEveryStep = demoCaptureAll

	executor := demo.NewExecutor(execCfg)
	return executor.Run(scenario)
}

func runDemoRun(cmd *cobra.Command, args []string) error {
	scenario, err := getScenario(args[0])
	if err != nil {
		return err
	}

	frames, err := executeScenario(scenario)
	if err != nil {
		return fmt.Errorf("error running scenario: %w", err)
	}

	w := cmd.OutOrStdout()
	if demoOutput != "" {
		f, err := os.Create(demoOutput)
		if err != nil {
			return fmt.Errorf("error creating output file: %w", err)
		}
		defer f.Close()
		w = f
	}
	return writeFrames(w, frames)
}

// writeFrames prints frames one after another with their timing.
func writeFrames(w io.Writer, frames []demo.Frame) error {
	if _, err := fmt.Fprintf(w, "Captured %d frames\n", len(frames)); err != nil {
		return err
	}
	for i, f := range frames {
		fmt.Fprintf(w, "\n=== Frame %d (delay: %v) ===\n", i, f.Delay)
		if f.Annotation != "" {
			fmt.Fprintf(w, "Annotation: %s\n", f.Annotation)
		}
		if _, err := fmt.Fprintln(w, f.Content); err != nil {
			return err
		}
	}
	return nil
}

func runDemoCast(cmd *cobra.Command, args []string) error {
	scenarioName := args[0]
	scenario, err := getScenario(scenarioName)
	if err != nil {
		return err
	}

	frames, err := executeScenario(scenario)
	if err != nil {
		return fmt.Errorf("error running scenario: %w", err)
	}

	// Determine output file
	outputFile := demoOutput
	if outputFile == "" {
		outputFile = scenarioName + ".cast"
	}

	f, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("error creating output file: %w", err)
	}
	defer f.Close()

	if err := demo.GenerateASCIICast(f, frames, scenario.Width, scenario.Height); err != nil {
		return fmt.Errorf("error generating cast file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Generated %s (%d frames)\n", outputFile, len(frames))
	fmt.Fprintf(cmd.OutOrStdout(), "Play with: asciinema play %s\n", outputFile)

	return nil
}
