package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/Islam-Aldaraghmeh/Matrix-Path/internal/analysis"
	"github.com/Islam-Aldaraghmeh/Matrix-Path/internal/config"
	"github.com/Islam-Aldaraghmeh/Matrix-Path/internal/contact"
	"github.com/Islam-Aldaraghmeh/Matrix-Path/internal/export"
	"github.com/Islam-Aldaraghmeh/Matrix-Path/internal/scene"
	"github.com/Islam-Aldaraghmeh/Matrix-Path/internal/viz"
)

var (
	configFile string
	preset     string
	mode       string
	act        string
	start      float64
	end        float64
	precision  float64
	multiplier float64
	exponent   int
	normalize  bool
	// Snapshot instant for eigen/matrix
	atTime float64
	// Plot selection
	vectorIdx int
	axisName  string
	planeName string
	svgPlane  string
	// Live view pacing
	speed float64
	fps   int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "matrixpath",
		Short: "continuous matrix power visualizer",
		Run: func(cmd *cobra.Command, args []string) {
			// Default to the live dashboard when no command is given.
			if s, err := scene.New(config.DefaultConfig()); err == nil {
				_ = viz.Run(s, nil, 1, 0)
			}
		},
	}

	traceCmd := &cobra.Command{
		Use:   "trace",
		Short: "trace the configured vectors across the window",
		RunE:  runTrace,
	}
	addSessionFlags(traceCmd)

	eigenCmd := &cobra.Command{
		Use:   "eigen",
		Short: "show the eigenvalues, raw and time adjusted",
		RunE:  runEigen,
	}
	addSessionFlags(eigenCmd)
	eigenCmd.Flags().Float64Var(&atTime, "t", 1.0, "animation time for the adjusted spectrum")

	matrixCmd := &cobra.Command{
		Use:   "matrix",
		Short: "show the prepared matrix and its interpolated power",
		RunE:  runMatrix,
	}
	addSessionFlags(matrixCmd)
	matrixCmd.Flags().Float64Var(&atTime, "t", 1.0, "animation time for the snapshot")

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "plot one coordinate of a traced vector",
		RunE:  runPlot,
	}
	addSessionFlags(plotCmd)
	plotCmd.Flags().IntVar(&vectorIdx, "vector", 0, "index of the traced vector")
	plotCmd.Flags().StringVar(&axisName, "axis", "x", "coordinate to plot (x|y|z)")
	plotCmd.Flags().StringVar(&planeName, "plane", "", "project the path onto a plane instead (xy|xz|yz)")

	contactsCmd := &cobra.Command{
		Use:   "contacts",
		Short: "sweep the window and list wall contacts",
		RunE:  runContacts,
	}
	addSessionFlags(contactsCmd)

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "animate the session in a terminal dashboard",
		RunE:  runLive,
	}
	addSessionFlags(liveCmd)
	liveCmd.Flags().Float64Var(&speed, "speed", 1.0, "sweep speed multiplier")
	liveCmd.Flags().IntVar(&fps, "fps", 60, "frame rate")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv",
		Short: "write the traced paths to stdout as CSV",
		RunE:  runExportCSV,
	}
	addSessionFlags(exportCSVCmd)

	exportJSONCmd := &cobra.Command{
		Use:   "export-json",
		Short: "write the assembled scene to stdout as JSON",
		RunE:  runExportJSON,
	}
	addSessionFlags(exportJSONCmd)

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg",
		Short: "write the projected paths to stdout as SVG",
		RunE:  runExportSVG,
	}
	addSessionFlags(exportSVGCmd)
	exportSVGCmd.Flags().StringVar(&svgPlane, "plane", "xy", "projection plane (xy|xz|yz)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list the built-in configurations",
		RunE:  runPresets,
	}

	saveCmd := &cobra.Command{
		Use:   "save-config [path]",
		Short: "write the merged configuration to a yaml file",
		Args:  cobra.ExactArgs(1),
		RunE:  runSaveConfig,
	}
	addSessionFlags(saveCmd)

	rootCmd.AddCommand(traceCmd, eigenCmd, matrixCmd, plotCmd, contactsCmd, liveCmd, exportCSVCmd, exportJSONCmd, exportSVGCmd, presetsCmd, saveCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addSessionFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().StringVar(&mode, "mode", "power", "interpolation mode (power|linear)")
	cmd.Flags().StringVar(&act, "activation", "identity", "activation applied to path points")
	cmd.Flags().Float64Var(&start, "start", 0.0, "window start time")
	cmd.Flags().Float64Var(&end, "end", 1.0, "window end time")
	cmd.Flags().Float64Var(&precision, "precision", 0.01, "sampling step, capped at 0.01")
	cmd.Flags().Float64Var(&multiplier, "multiplier", 1.0, "scalar applied after the integer power")
	cmd.Flags().IntVar(&exponent, "exponent", 1, "integer power applied to the matrix")
	cmd.Flags().BoolVar(&normalize, "normalize", false, "scale the matrix to unit determinant")
}

// loadConfig resolves the session configuration: preset first, then a
// config file, then any flag the user set on the command line.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("mode") {
		cfg.Mode = mode
	}
	if cmd.Flags().Changed("activation") {
		cfg.Activation = act
	}
	if cmd.Flags().Changed("start") {
		cfg.Start = start
	}
	if cmd.Flags().Changed("end") {
		cfg.End = end
	}
	if cmd.Flags().Changed("precision") {
		cfg.Precision = precision
	}
	if cmd.Flags().Changed("multiplier") {
		cfg.Multiplier = multiplier
	}
	if cmd.Flags().Changed("exponent") {
		cfg.Exponent = exponent
	}
	if cmd.Flags().Changed("normalize") {
		cfg.Normalize = normalize
	}
	return cfg, nil
}

func newSession(cmd *cobra.Command) (*scene.Session, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	return scene.New(cfg)
}

func runTrace(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	fmt.Println("tracing paths...")
	started := time.Now()

	scn, err := s.Build(context.Background())
	if err != nil {
		return err
	}
	elapsed := time.Since(started)

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("session id: %s\n", scn.ID)
	fmt.Printf("mode: %s\n", scn.Mode)
	fmt.Printf("samples: %d\n", len(scn.Times))
	fmt.Printf("objects: %d\n", len(scn.Objects))
	fmt.Printf("contacts: %d\n", len(scn.Contacts))
	fmt.Println("\nmetrics:")
	for name, val := range scn.Metrics {
		fmt.Printf("  %s: %.6f\n", name, val)
	}
	for _, w := range scn.Warnings {
		fmt.Printf("warning: %s\n", w)
	}
	return nil
}

func runEigen(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	raw, err := s.Values()
	if err != nil {
		return err
	}
	adjusted, err := s.ValuesAt(atTime)
	if err != nil {
		return err
	}

	fmt.Printf("mode: %s\n\n", s.Mode())
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "NAME\tRAW\tABS\tAT t=%.2f\tABS\n", atTime)
	for i := range raw {
		fmt.Fprintf(w, "λ%d\t%s\t%.6f\t%s\t%.6f\n",
			i+1, raw[i], raw[i].Abs(), adjusted[i], adjusted[i].Abs())
	}
	if err := w.Flush(); err != nil {
		return err
	}

	spectrum := analysis.Classify(raw)
	fmt.Printf("\nregime: %s\n", spectrum.Regime)
	fmt.Printf("spectral radius: %.6f (λ%d)\n", spectrum.Radius, spectrum.Dominant+1)
	fmt.Printf("growth rate: %.6f\n", spectrum.GrowthRate())
	if spectrum.Rotational {
		fmt.Printf("rotation: %.6f rad per unit time\n", spectrum.Angle())
	}
	return nil
}

func runMatrix(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	base := s.Matrix()
	fmt.Println("prepared matrix:")
	for i := 0; i < 3; i++ {
		fmt.Printf("  %10.6f %10.6f %10.6f\n", base[i][0], base[i][1], base[i][2])
	}
	fmt.Printf("det: %.6f\n", base.Det())

	at, err := s.MatrixAt(atTime)
	if err != nil {
		return err
	}
	fmt.Printf("\nA^t at t=%.2f:\n", atTime)
	for i := 0; i < 3; i++ {
		fmt.Printf("  %10.6f %10.6f %10.6f\n", at[i][0], at[i][1], at[i][2])
	}
	for _, warn := range s.Warnings() {
		fmt.Printf("warning: %s\n", warn)
	}
	return nil
}

func runPlot(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	scn, err := s.Build(context.Background())
	if err != nil {
		return err
	}
	if vectorIdx < 0 || vectorIdx >= len(scn.Objects) {
		return fmt.Errorf("vector index %d out of range (have %d)", vectorIdx, len(scn.Objects))
	}
	obj := scn.Objects[vectorIdx]

	fmt.Printf("session: %s\n", scn.ID)
	fmt.Printf("samples: %d\n\n", len(obj.Points))

	if planeName != "" {
		xAxis, yAxis, ok := analysis.ParsePlane(planeName)
		if !ok {
			return fmt.Errorf("unknown plane: %s (want xy, xz or yz)", planeName)
		}
		proj := analysis.Project(obj.Points, xAxis, yAxis)
		fmt.Print(proj.ASCII(64, 22))
		fmt.Printf("%s in the %s plane\n", obj.Label, planeName)
		return nil
	}

	axis, ok := contact.ParseAxis(axisName)
	if !ok {
		return fmt.Errorf("unknown axis: %s", axisName)
	}
	data := make([]float64, len(obj.Points))
	for i, p := range obj.Points {
		data[i] = p.Axis(int(axis))
	}
	graph := asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("%s.%s vs time", obj.Label, axis)),
	)
	fmt.Println(graph)
	return nil
}

func runContacts(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	scn, err := s.Build(context.Background())
	if err != nil {
		return err
	}
	if len(scn.Contacts) == 0 {
		fmt.Println("no contacts in this window")
		return nil
	}

	const maxRows = 24
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "WALL\tAXIS\tWALL POS\tCONTACT POINT\tDIR")
	for i, ev := range scn.Contacts {
		if i == maxRows {
			fmt.Fprintf(w, "...\t\t\t%d more\t\n", len(scn.Contacts)-maxRows)
			break
		}
		fmt.Fprintf(w, "%s\t%s\t%.3f\t(%.3f, %.3f, %.3f)\t%+d\n",
			ev.WallID, ev.Axis, ev.Position,
			ev.Point.X, ev.Point.Y, ev.Point.Z, ev.Direction)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	counts := make(map[string]int)
	for _, ev := range scn.Contacts {
		counts[ev.WallID]++
	}
	ids := make([]string, 0, len(counts))
	for id := range counts {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Println("\ntotals:")
	for _, id := range ids {
		fmt.Printf("  %s: %d\n", id, counts[id])
	}
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	return viz.Run(s, nil, speed, fps)
}

func runExportCSV(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	scn, err := s.Build(context.Background())
	if err != nil {
		return err
	}
	return export.CSV(os.Stdout, scn)
}

func runExportJSON(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	scn, err := s.Build(context.Background())
	if err != nil {
		return err
	}
	return export.JSON(os.Stdout, scn)
}

func runExportSVG(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	xAxis, yAxis, ok := analysis.ParsePlane(svgPlane)
	if !ok {
		return fmt.Errorf("unknown plane: %s (want xy, xz or yz)", svgPlane)
	}
	scn, err := s.Build(context.Background())
	if err != nil {
		return err
	}
	return export.SVG(os.Stdout, scn, xAxis, yAxis)
}

func runPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tMODE\tWINDOW\tVECTORS\tWALLS")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%s\t[%.1f, %.1f]\t%d\t%d\n",
			name, p.Mode, p.Start, p.End, len(p.Vectors), len(p.Walls))
	}
	return w.Flush()
}

func runSaveConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := config.Save(args[0], cfg); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", args[0])
	return nil
}
