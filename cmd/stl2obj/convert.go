package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ashdale/stl2obj/internal/convert"
	"github.com/ashdale/stl2obj/internal/history"
)

var convertCmd = &cobra.Command{
	Use:   "convert <file.stl|directory>...",
	Short: "Convert STL files to OBJ",
	Long: `Convert STL files to OBJ.

Arguments are STL files or directories; a directory expands to the .stl
files directly inside it. Files are processed strictly in argument order,
one at a time. A failing file is logged and skipped, the batch goes on.
Ctrl-C stops the run after the file currently being converted.

Examples:
  stl2obj convert part.stl
  stl2obj convert scans/ --out converted/ --weld --scale-preset mm-to-m
  stl2obj convert a.stl b.stl c.stl --naming custom --name motor_export`,
	Args: cobra.MinimumNArgs(1),
	RunE: runConvertCmd,
}

// scalePresets are shortcuts for common unit conversions.
var scalePresets = map[string]float64{
	"none":     1.0,
	"mm-to-m":  0.001,
	"cm-to-m":  0.01,
	"in-to-mm": 25.4,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	f := convertCmd.Flags()
	f.Bool("weld", true, "Merge geometrically identical vertices")
	f.Bool("cleanup", true, "Best-effort mesh cleanup before welding")
	f.Bool("center", false, "Center the mesh on the origin (applied last)")
	f.Bool("swap-yz", false, "Exchange Y and Z axes")
	f.Bool("flip-x", false, "Negate X (after any axis swap)")
	f.Bool("flip-y", false, "Negate Y (after any axis swap)")
	f.Bool("flip-z", false, "Negate Z (after any axis swap)")
	f.Float64("scale", 1.0, "Uniform scale factor (> 0)")
	f.String("scale-preset", "", "Scale shortcut: none, mm-to-m, cm-to-m, in-to-mm")
	f.String("out", "", "Output directory (default: next to each input)")
	f.String("naming", "", "Output naming: same, suffix, custom")
	f.String("suffix", "", "Suffix appended to the source name (naming=suffix)")
	f.String("name", "", "Custom base name, auto-numbered for batches (naming=custom)")
	f.IntSlice("select", nil, "1-based input positions to convert (default: all)")
}

func runConvertCmd(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	runCfg := cfg.ConversionConfig()
	if err := applyConvertFlags(cmd, &runCfg); err != nil {
		return err
	}

	paths, err := expandInputs(args)
	if err != nil {
		return err
	}

	selected, _ := cmd.Flags().GetIntSlice("select")
	zeroBased := make([]int, 0, len(selected))
	for _, s := range selected {
		zeroBased = append(zeroBased, s-1)
	}

	items := convert.BuildWorkList(paths, zeroBased)

	// Ctrl-C cancels between items; the in-flight file always finishes.
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := convert.NewRunner(convert.MeshAdapter{}, logger.With("component", "runner"))

	startedAt := time.Now()
	run, notes, err := runner.Start(ctx, items, runCfg)
	if err != nil {
		return err
	}

	for n := range notes {
		if n.Final {
			continue
		}
		if !jsonOutput {
			printItem(n)
		}
	}
	finishedAt := time.Now()

	succeeded, failed, cancelled := run.Counts()
	if jsonOutput {
		printJSON(run.Results)
	} else {
		fmt.Printf("\nDone (%s): %d converted, %d failed, %d cancelled\n",
			run.State, succeeded, failed, cancelled)
	}

	if cfg.History.Path != "" {
		if err := recordRun(cfg.History.Path, run, startedAt, finishedAt); err != nil {
			logger.Warn("journal write failed", "error", err)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d file(s) failed", failed, len(items))
	}
	return nil
}

// applyConvertFlags overlays flags the user actually set onto the config
// file defaults, so a flag only wins when given.
func applyConvertFlags(cmd *cobra.Command, cfg *convert.Config) error {
	f := cmd.Flags()

	if f.Changed("weld") {
		cfg.WeldVertices, _ = f.GetBool("weld")
	}
	if f.Changed("cleanup") {
		cfg.CleanupMesh, _ = f.GetBool("cleanup")
	}
	if f.Changed("center") {
		cfg.CenterToOrigin, _ = f.GetBool("center")
	}
	if f.Changed("swap-yz") {
		cfg.SwapYZ, _ = f.GetBool("swap-yz")
	}
	if f.Changed("flip-x") {
		cfg.FlipX, _ = f.GetBool("flip-x")
	}
	if f.Changed("flip-y") {
		cfg.FlipY, _ = f.GetBool("flip-y")
	}
	if f.Changed("flip-z") {
		cfg.FlipZ, _ = f.GetBool("flip-z")
	}
	if f.Changed("scale") {
		cfg.ScaleFactor, _ = f.GetFloat64("scale")
	}
	if f.Changed("scale-preset") {
		name, _ := f.GetString("scale-preset")
		factor, ok := scalePresets[name]
		if !ok {
			return fmt.Errorf("unknown scale preset %q (try: none, mm-to-m, cm-to-m, in-to-mm)", name)
		}
		cfg.ScaleFactor = factor
	}
	if f.Changed("out") {
		cfg.OutputDir, _ = f.GetString("out")
	}
	if f.Changed("naming") {
		mode, _ := f.GetString("naming")
		cfg.NamingMode = convert.NamingMode(mode)
	}
	if f.Changed("suffix") {
		cfg.Suffix, _ = f.GetString("suffix")
	}
	if f.Changed("name") {
		cfg.CustomBase, _ = f.GetString("name")
		if !f.Changed("naming") {
			cfg.NamingMode = convert.NameCustom
		}
	}
	return nil
}

func printItem(n convert.Notification) {
	r := n.Result
	switch r.Status {
	case convert.StatusSuccess:
		fmt.Printf("[%d/%d] %s -> %s (%d verts, %d faces)\n",
			n.Completed, n.Total, r.SourcePath, r.OutputPath, r.VertexCount, r.FaceCount)
	case convert.StatusFailed:
		fmt.Printf("[%d/%d] %s FAILED: %s\n", n.Completed, n.Total, r.SourcePath, r.Message)
	case convert.StatusCancelled:
		fmt.Printf("[%d/%d] %s cancelled\n", n.Completed, n.Total, r.SourcePath)
	}
}

func recordRun(dbPath string, run *convert.BatchRun, startedAt, finishedAt time.Time) error {
	db, err := history.Open(dbPath)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	_, err = history.NewStore(db).RecordRun(run, startedAt, finishedAt)
	return err
}
