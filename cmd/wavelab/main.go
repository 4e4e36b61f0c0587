package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/wavelab/internal/analysis"
	"github.com/san-kum/wavelab/internal/config"
	"github.com/san-kum/wavelab/internal/metrics"
	"github.com/san-kum/wavelab/internal/render"
	"github.com/san-kum/wavelab/internal/storage"
	"github.com/san-kum/wavelab/internal/viz"
	"github.com/san-kum/wavelab/internal/wave"
)

var (
	dataDir    string
	gridN      int
	steps      int
	cfl        float64
	waveSpeed  float64
	modeX      int
	modeY      int
	storeEvery int
	configFile string
	preset     string
	// movie flags
	movieOut   string
	movieFPS   int
	pixelScale int
	// playback
	playFPS int
	// convergence study
	levels int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "wavelab",
		Short: "2D Neumann wave equation lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".wavelab", "data directory")

	solveCmd := &cobra.Command{
		Use:   "solve",
		Short: "run the wave solver and store the snapshots",
		RunE:  runSolve,
	}
	solveCmd.Flags().IntVar(&gridN, "n", config.DefaultN, "grid intervals per axis")
	solveCmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "number of time steps")
	solveCmd.Flags().Float64Var(&cfl, "cfl", config.DefaultCFL, "courant number")
	solveCmd.Flags().Float64Var(&waveSpeed, "speed", config.DefaultWaveSpeed, "wave speed")
	solveCmd.Flags().IntVar(&modeX, "mx", config.DefaultModeX, "standing wave mode in x")
	solveCmd.Flags().IntVar(&modeY, "my", config.DefaultModeY, "standing wave mode in y")
	solveCmd.Flags().IntVar(&storeEvery, "store-every", config.DefaultStoreEvery, "snapshot recording interval")
	solveCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	solveCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot run diagnostics",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	playCmd := &cobra.Command{
		Use:   "play [run_id]",
		Short: "play a run back in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  playRun,
	}
	playCmd.Flags().IntVar(&playFPS, "fps", config.DefaultFPS, "playback frame rate")

	movieCmd := &cobra.Command{
		Use:   "movie [run_id]",
		Short: "render a run as an animated GIF",
		Args:  cobra.ExactArgs(1),
		RunE:  renderMovie,
	}
	movieCmd.Flags().StringVar(&movieOut, "out", "neumann.gif", "output file")
	movieCmd.Flags().IntVar(&movieFPS, "fps", config.DefaultFPS, "playback frame rate")
	movieCmd.Flags().IntVar(&pixelScale, "scale", config.DefaultPixelScale, "pixels per grid cell")

	convergenceCmd := &cobra.Command{
		Use:   "convergence",
		Short: "estimate the scheme's observed order of accuracy",
		RunE:  runConvergence,
	}
	convergenceCmd.Flags().IntVar(&levels, "levels", 4, "number of dyadic refinements")
	convergenceCmd.Flags().Float64Var(&cfl, "cfl", 0.1, "courant number")
	convergenceCmd.Flags().IntVar(&steps, "steps", 10, "time steps at the coarsest level")
	convergenceCmd.Flags().IntVar(&modeX, "mx", config.DefaultModeX, "standing wave mode in x")
	convergenceCmd.Flags().IntVar(&modeY, "my", config.DefaultModeY, "standing wave mode in y")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export per-step diagnostics to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset configurations",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tN\tSTEPS\tCFL\tMODE\tSTORE")
			for _, name := range config.ListPresets() {
				c := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%d\t%d\t%.2f\t(%d,%d)\t%d\n",
					name, c.N, c.Steps, c.CFL, c.ModeX, c.ModeY, c.StoreEvery)
			}
			return w.Flush()
		},
	}

	rootCmd.AddCommand(solveCmd, listCmd, plotCmd, playCmd, movieCmd,
		convergenceCmd, exportJSONCmd, exportCSVCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// solveParams resolves the solver parameters from preset, config file
// and flags, in that order of increasing precedence.
func solveParams(cmd *cobra.Command) (wave.Params, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return wave.Params{}, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return wave.Params{}, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("n") {
		cfg.N = gridN
	}
	if cmd.Flags().Changed("steps") {
		cfg.Steps = steps
	}
	if cmd.Flags().Changed("cfl") {
		cfg.CFL = cfl
	}
	if cmd.Flags().Changed("speed") {
		cfg.WaveSpeed = waveSpeed
	}
	if cmd.Flags().Changed("mx") {
		cfg.ModeX = modeX
	}
	if cmd.Flags().Changed("my") {
		cfg.ModeY = modeY
	}
	if cmd.Flags().Changed("store-every") {
		cfg.StoreEvery = storeEvery
	}

	return cfg.Params(), nil
}

func runSolve(cmd *cobra.Command, args []string) error {
	p, err := solveParams(cmd)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	fmt.Printf("solving (%d,%d) mode on %dx%d grid, %d steps...\n",
		p.Mode.X, p.Mode.Y, p.N, p.N, p.Steps)
	start := time.Now()

	coll, err := wave.Solve(context.Background(), p)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	vals := metrics.Collect(coll, metrics.Default(p))

	runID, err := st.Save(p, coll, vals)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("snapshots: %d (dt=%.6f)\n", coll.Len(), p.TimeStep())
	fmt.Println("\nmetrics:")
	for name, val := range vals {
		fmt.Printf("  %s: %.6f\n", name, val)
	}

	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tN\tSTEPS\tCFL\tMODE\tSNAPSHOTS")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%.2f\t(%d,%d)\t%d\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.N,
			run.Steps,
			run.CFL,
			run.ModeX,
			run.ModeY,
			run.Snapshots,
		)
	}
	return w.Flush()
}

// runSeries extracts per-snapshot diagnostics: center displacement and
// peak amplitude per recorded step.
func runSeries(coll *wave.Collection) (centers, peaks []float64) {
	for _, step := range coll.Steps() {
		f, _ := coll.At(step)
		mid := f.Intervals() / 2
		centers = append(centers, f.At(mid, mid))
		peaks = append(peaks, f.MaxAbs())
	}
	return centers, peaks
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	coll, err := st.LoadSnapshots(args[0])
	if err != nil {
		return err
	}
	if coll.Len() == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("mode: (%d,%d)  grid: %dx%d  cfl: %.2f\n\n",
		meta.ModeX, meta.ModeY, meta.N, meta.N, meta.CFL)

	centers, peaks := runSeries(coll)

	fmt.Println(asciigraph.Plot(centers,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("center displacement"),
	))
	fmt.Println()
	fmt.Println(asciigraph.Plot(peaks,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("peak amplitude"),
	))
	fmt.Println()

	sc := render.SharedScale(coll)
	fmt.Println("final frame:")
	fmt.Print(render.Heatmap(coll.Last(), sc, 100))

	return nil
}

func playRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	coll, err := st.LoadSnapshots(args[0])
	if err != nil {
		return err
	}
	return viz.Play(coll, meta.Dt, playFPS)
}

func renderMovie(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	coll, err := st.LoadSnapshots(args[0])
	if err != nil {
		return err
	}

	file, err := os.Create(movieOut)
	if err != nil {
		return err
	}
	defer file.Close()

	opts := render.MovieOptions{FPS: movieFPS, PixelScale: pixelScale}
	if err := render.EncodeGIF(file, coll, opts); err != nil {
		return err
	}

	fmt.Printf("saved %s (%d frames)\n", movieOut, coll.Len())
	return nil
}

func runConvergence(cmd *cobra.Command, args []string) error {
	mode := wave.Mode{X: modeX, Y: modeY}
	fmt.Printf("convergence study: mode (%d,%d), cfl %.2f, %d levels\n\n",
		mode.X, mode.Y, cfl, levels)

	study, err := analysis.ConvergenceRates(context.Background(), levels, cfl, config.DefaultWaveSpeed, steps, mode)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "N\tH\tL2_ERROR\tRATE")
	for k, ref := range study.Refinements {
		rate := "-"
		if k > 0 {
			rate = fmt.Sprintf("%.4f", study.Rates[k-1])
		}
		fmt.Fprintf(w, "%d\t%.6f\t%.3e\t%s\n", ref.N, ref.H, ref.Err, rate)
	}
	return w.Flush()
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	coll, err := st.LoadSnapshots(args[0])
	if err != nil {
		return err
	}
	return storage.ExportJSON(os.Stdout, meta, coll)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	coll, err := st.LoadSnapshots(args[0])
	if err != nil {
		return err
	}
	if coll.Len() == 0 {
		return fmt.Errorf("no data to export")
	}

	centers, peaks := runSeries(coll)

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"step", "time", "center", "peak"}); err != nil {
		return err
	}
	for k, step := range coll.Steps() {
		row := []string{
			strconv.Itoa(step),
			strconv.FormatFloat(float64(step)*meta.Dt, 'f', 6, 64),
			strconv.FormatFloat(centers[k], 'f', 6, 64),
			strconv.FormatFloat(peaks[k], 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
