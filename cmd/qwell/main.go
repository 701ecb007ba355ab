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

	"github.com/avirni/qwell/internal/analysis"
	"github.com/avirni/qwell/internal/config"
	"github.com/avirni/qwell/internal/potential"
	"github.com/avirni/qwell/internal/solver"
	"github.com/avirni/qwell/internal/storage"
	"github.com/avirni/qwell/internal/viz"
)

var (
	dataDir    string
	xMin       float64
	xMax       float64
	steps      int
	amplitude  float64
	states     int
	method     string
	configFile string
	preset     string
	// sweep range
	ampMin    float64
	ampMax    float64
	ampCount  int
	plotLevel int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "qwell",
		Short: "1-D quantum potential well solver",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".qwell", "data directory")

	solveCmd := &cobra.Command{
		Use:   "solve [shape]",
		Short: "solve the eigenproblem for a well shape",
		Args:  cobra.ExactArgs(1),
		RunE:  runSolve,
	}
	addSolveFlags(solveCmd)
	solveCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	solveCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	shapesCmd := &cobra.Command{
		Use:   "shapes",
		Short: "list well shapes",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "SLUG\tNAME")
			for _, s := range potential.Shapes() {
				fmt.Fprintf(w, "%s\t%s\n", s.Slug(), s.Name())
			}
			return w.Flush()
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [shape]",
		Short: "list available presets for a shape",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for shape: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved potential and eigenfunction",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().IntVar(&plotLevel, "level", 0, "eigenstate to plot")

	spectrumCmd := &cobra.Command{
		Use:   "spectrum [run_id]",
		Short: "print the energy spectrum of a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  spectrumRun,
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep [shape]",
		Short: "solve across an amplitude range",
		Args:  cobra.ExactArgs(1),
		RunE:  runSweep,
	}
	addSolveFlags(sweepCmd)
	sweepCmd.Flags().Float64Var(&ampMin, "amp-min", 0, "sweep start amplitude")
	sweepCmd.Flags().Float64Var(&ampMax, "amp-max", 10, "sweep end amplitude")
	sweepCmd.Flags().IntVar(&ampCount, "samples", 20, "number of sweep samples")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export a saved run to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a saved run to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	liveCmd := &cobra.Command{
		Use:   "live [shape]",
		Short: "interactive explorer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := buildRequest(cmd, args[0])
			if err != nil {
				return err
			}
			return viz.Run(req)
		},
	}
	addSolveFlags(liveCmd)

	rootCmd.AddCommand(solveCmd, shapesCmd, presetsCmd, listCmd, plotCmd,
		spectrumCmd, sweepCmd, exportCSVCmd, exportJSONCmd, liveCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addSolveFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&xMin, "xmin", config.DefaultXMin, "domain lower bound")
	cmd.Flags().Float64Var(&xMax, "xmax", config.DefaultXMax, "domain upper bound")
	cmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "interior grid steps")
	cmd.Flags().Float64Var(&amplitude, "amplitude", config.DefaultAmplitude, "shape amplitude")
	cmd.Flags().IntVar(&states, "states", config.DefaultStates, "number of eigenstates")
	cmd.Flags().StringVar(&method, "method", config.DefaultMethod, "hamiltonian method (fd|coupling)")
}

func buildRequest(cmd *cobra.Command, slug string) (solver.Request, error) {
	if preset != "" {
		cfg := config.GetPreset(slug, preset)
		if cfg == nil {
			return solver.Request{}, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(slug))
		}
		xMin = cfg.XMin
		xMax = cfg.XMax
		steps = cfg.Steps
		amplitude = cfg.Amplitude
		states = cfg.States
		method = cfg.Method
	}

	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return solver.Request{}, fmt.Errorf("failed to load config: %w", err)
		}
		// CLI flags override the config file.
		if !cmd.Flags().Changed("xmin") {
			xMin = cfg.XMin
		}
		if !cmd.Flags().Changed("xmax") {
			xMax = cfg.XMax
		}
		if !cmd.Flags().Changed("steps") {
			steps = cfg.Steps
		}
		if !cmd.Flags().Changed("amplitude") {
			amplitude = cfg.Amplitude
		}
		if !cmd.Flags().Changed("states") {
			states = cfg.States
		}
		if !cmd.Flags().Changed("method") {
			method = cfg.Method
		}
	}

	shape, err := potential.Parse(slug)
	if err != nil {
		return solver.Request{}, err
	}
	m, err := solver.ParseMethod(method)
	if err != nil {
		return solver.Request{}, err
	}

	return solver.Request{
		Shape:     shape,
		XMin:      xMin,
		XMax:      xMax,
		Steps:     steps,
		Amplitude: amplitude,
		States:    states,
		Method:    m,
	}, nil
}

func runSolve(cmd *cobra.Command, args []string) error {
	req, err := buildRequest(cmd, args[0])
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	fmt.Printf("solving %s...\n", req.Shape.Name())
	start := time.Now()

	result, err := solver.Solve(context.Background(), req)
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	runID, err := st.Save(req, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("grid points: %d\n\n", result.Profile.Len())

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "LEVEL\tENERGY\tNODES")
	for n, e := range result.Spectrum.Values {
		fmt.Fprintf(w, "%d\t%.6f\t%d\n", n, e, analysis.NodeCount(result.Spectrum.Vectors[n]))
	}
	return w.Flush()
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
	fmt.Fprintln(w, "ID\tSHAPE\tTIME\tMETHOD\tSTEPS\tAMP\tSTATES\tE0")

	for _, run := range runs {
		e0 := 0.0
		if len(run.Energies) > 0 {
			e0 = run.Energies[0]
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%.3f\t%d\t%.6f\n",
			run.ID,
			run.Shape,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Method,
			run.Steps,
			run.Amplitude,
			run.States,
			e0,
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	x, v, err := st.LoadProfile(runID)
	if err != nil {
		return err
	}
	spec, err := st.LoadSpectrum(runID)
	if err != nil {
		return err
	}

	if len(x) < 3 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("shape: %s\n\n", meta.ShapeName)

	// Plot interior only; the wall sentinels flatten everything else.
	interior := v[1 : len(v)-1]
	fmt.Println(asciigraph.Plot(interior,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("potential V(x)"),
	))
	fmt.Println()

	if plotLevel < 0 || plotLevel >= spec.States() {
		return fmt.Errorf("level %d outside saved spectrum [0, %d)", plotLevel, spec.States())
	}

	dx := x[1] - x[0]
	density := analysis.Density(analysis.Normalize(spec.Vectors[plotLevel], dx))
	fmt.Println(asciigraph.Plot(density,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("|psi_%d(x)|^2   E=%.6f", plotLevel, spec.Values[plotLevel])),
	))
	return nil
}

func spectrumRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	spec, err := st.LoadSpectrum(runID)
	if err != nil {
		return err
	}
	x, _, err := st.LoadProfile(runID)
	if err != nil {
		return err
	}
	if len(x) < 3 || spec.States() == 0 {
		return fmt.Errorf("no data in run %s", runID)
	}

	fmt.Printf("spectrum: %s (%s)\n\n", meta.ID, meta.ShapeName)

	dx := x[1] - x[0]

	gaps := analysis.Spacings(spec.Values)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "LEVEL\tENERGY\tGAP\tNODES\t<x>")
	for n, e := range spec.Values {
		gap := "-"
		if n > 0 {
			gap = strconv.FormatFloat(gaps[n-1], 'f', 6, 64)
		}
		nodes := analysis.NodeCount(spec.Vectors[n])
		mean := analysis.ExpectationX(x[1:len(x)-1], spec.Vectors[n], dx)
		fmt.Fprintf(w, "%d\t%.6f\t%s\t%d\t%.4f\n", n, e, gap, nodes, mean)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if len(spec.Values) > 1 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(spec.Values,
			asciigraph.Height(10),
			asciigraph.Width(60),
			asciigraph.Caption("energy levels"),
		))
	}
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	req, err := buildRequest(cmd, args[0])
	if err != nil {
		return err
	}

	fmt.Printf("sweeping %s amplitude %.3f..%.3f over %d samples\n\n",
		req.Shape.Name(), ampMin, ampMax, ampCount)

	start := time.Now()
	points, err := solver.Sweep(context.Background(), req, ampMin, ampMax, ampCount)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "AMPLITUDE\tE0\tE1")
	ground := make([]float64, len(points))
	for i, p := range points {
		ground[i] = p.GroundEnergy()
		e1 := "-"
		if len(p.Energies) > 1 {
			e1 = strconv.FormatFloat(p.Energies[1], 'f', 6, 64)
		}
		fmt.Fprintf(w, "%.4f\t%.6f\t%s\n", p.Amplitude, p.GroundEnergy(), e1)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(asciigraph.Plot(ground,
		asciigraph.Height(10),
		asciigraph.Width(70),
		asciigraph.Caption("ground-state energy vs amplitude"),
	))
	fmt.Printf("\ncompleted in %v\n", elapsed)
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	x, v, err := st.LoadProfile(runID)
	if err != nil {
		return err
	}
	spec, err := st.LoadSpectrum(runID)
	if err != nil {
		return err
	}

	if len(x) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	// Eigenvector columns only line up with the grid when they span the
	// interior points (finite-difference runs); walls are padded with zero.
	interior := len(x) - 2
	withVectors := spec.States() > 0 && len(spec.Vectors[0]) == interior

	header := []string{"x", "V"}
	if withVectors {
		for n := range spec.Vectors {
			header = append(header, fmt.Sprintf("psi%d", n))
		}
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for i := range x {
		row := []string{
			strconv.FormatFloat(x[i], 'f', 6, 64),
			strconv.FormatFloat(v[i], 'f', 6, 64),
		}
		if withVectors {
			for n := range spec.Vectors {
				c := 0.0
				if i > 0 && i <= interior {
					c = spec.Vectors[n][i-1]
				}
				row = append(row, strconv.FormatFloat(c, 'f', 6, 64))
			}
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	x, v, err := st.LoadProfile(runID)
	if err != nil {
		return err
	}
	spec, err := st.LoadSpectrum(runID)
	if err != nil {
		return err
	}

	return storage.ExportJSONStdout(storage.BuildExport(meta, x, v, spec))
}
