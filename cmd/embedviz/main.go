package main

import (
	"fmt"
	"image/color"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/image/colornames"

	"github.com/san-kum/embedviz/internal/config"
	"github.com/san-kum/embedviz/internal/dataset"
	"github.com/san-kum/embedviz/internal/figure"
	"github.com/san-kum/embedviz/internal/plotting"
	"github.com/san-kum/embedviz/internal/store"
	"github.com/san-kum/embedviz/internal/tui"
)

var (
	outDir     string
	configFile string
	preset     string

	basis     string
	colorBy   string
	groups    []string
	title     string
	colorMap  string
	colorbar  bool
	radius    float64
	edgeWidth float64
	edgeColor string
	figWidth  float64
	figHeight float64
	savePath  string

	markers    []string
	bins       int
	smoothing  float64
	minDelta   float64
	variance   bool
	keepTables bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "embedviz",
		Short: "embedding scatter visualization",
	}

	rootCmd.PersistentFlags().StringVar(&outDir, "out", ".embedviz", "output directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "styling preset")

	renderCmd := &cobra.Command{
		Use:   "render [dataset]",
		Short: "render an embedding scatter",
		Args:  cobra.ExactArgs(1),
		RunE:  runRender,
	}
	renderCmd.Flags().StringVar(&basis, "basis", config.DefaultBasis, "embedding key")
	renderCmd.Flags().StringVar(&colorBy, "color", "", "obs column or literal color")
	renderCmd.Flags().StringSliceVar(&groups, "groups", nil, "restrict to these categories")
	renderCmd.Flags().StringVar(&title, "title", "", "panel title")
	addStyleFlags(renderCmd)

	panelsCmd := &cobra.Command{
		Use:   "panels [dataset]",
		Short: "render one panel per time point",
		Args:  cobra.ExactArgs(1),
		RunE:  runPanels,
	}
	panelsCmd.Flags().StringVar(&basis, "basis", "harmony", "embedding key")
	addStyleFlags(panelsCmd)

	trajectoryCmd := &cobra.Command{
		Use:   "trajectory [dataset]",
		Short: "plot marker trends along the trajectory",
		Args:  cobra.ExactArgs(1),
		RunE:  runTrajectory,
	}
	trajectoryCmd.Flags().StringSliceVar(&markers, "markers", nil, "markers to plot")
	trajectoryCmd.Flags().IntVar(&bins, "bins", 150, "pseudotime bins")
	trajectoryCmd.Flags().Float64Var(&smoothing, "smoothing", 1.0, "smoothing factor")
	trajectoryCmd.Flags().Float64Var(&minDelta, "min-delta", 0.1, "minimum branch divergence")
	trajectoryCmd.Flags().BoolVar(&variance, "variance", false, "show variance bands")
	trajectoryCmd.Flags().BoolVar(&keepTables, "keep-tables", true, "persist trend tables to the run store")
	addStyleFlags(trajectoryCmd)

	viewCmd := &cobra.Command{
		Use:   "view [dataset]",
		Short: "browse embeddings interactively",
		Args:  cobra.ExactArgs(1),
		RunE:  runView,
	}

	keysCmd := &cobra.Command{
		Use:   "keys [dataset]",
		Short: "list dataset keys",
		Args:  cobra.ExactArgs(1),
		RunE:  runKeys,
	}

	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "list saved render runs",
		RunE:  runRuns,
	}

	colormapsCmd := &cobra.Command{
		Use:   "colormaps",
		Short: "list available colormaps",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range figure.ColorMapNames() {
				fmt.Println(name)
			}
		},
	}

	rootCmd.AddCommand(renderCmd, panelsCmd, trajectoryCmd, viewCmd, keysCmd, runsCmd, colormapsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func addStyleFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&colorMap, "cmap", config.DefaultColorMap, "colormap name")
	cmd.Flags().BoolVar(&colorbar, "colorbar", true, "draw a colorbar")
	cmd.Flags().Float64Var(&radius, "radius", config.DefaultPointRadius, "point radius (pt)")
	cmd.Flags().Float64Var(&edgeWidth, "edge-width", 0, "marker edge width (pt)")
	cmd.Flags().StringVar(&edgeColor, "edge-color", "black", "marker edge color")
	cmd.Flags().Float64Var(&figWidth, "width", config.DefaultFigWidth, "figure width (in)")
	cmd.Flags().Float64Var(&figHeight, "height", config.DefaultFigHeight, "figure height (in)")
	cmd.Flags().StringVar(&savePath, "save", "", "save figure to this path instead of previewing")
}

// loadConfig resolves preset, then config file, then explicit flags,
// in increasing precedence.
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

	if cmd.Flags().Changed("cmap") || cfg.ColorMap == "" {
		cfg.ColorMap = colorMap
	}
	if cmd.Flags().Changed("colorbar") {
		cfg.Colorbar = colorbar
	}
	if cmd.Flags().Changed("radius") || cfg.Style.PointRadius == 0 {
		cfg.Style.PointRadius = radius
	}
	if cmd.Flags().Changed("edge-width") {
		cfg.Style.EdgeWidth = edgeWidth
	}
	if cmd.Flags().Changed("edge-color") {
		cfg.Style.EdgeColor = edgeColor
	}
	if cmd.Flags().Changed("width") || cfg.Figure.Width == 0 {
		cfg.Figure.Width = figWidth
	}
	if cmd.Flags().Changed("height") || cfg.Figure.Height == 0 {
		cfg.Figure.Height = figHeight
	}
	if cmd.Flags().Changed("out") || cfg.OutDir == "" {
		cfg.OutDir = outDir
	}
	return cfg, nil
}

func scatterOpts(cfg *config.Config) plotting.ScatterOpts {
	return plotting.ScatterOpts{
		Radius:    cfg.Style.PointRadius,
		EdgeWidth: cfg.Style.EdgeWidth,
		EdgeColor: namedColor(cfg.Style.EdgeColor),
		ColorMap:  cfg.ColorMap,
		Colorbar:  cfg.Colorbar,
	}
}

func namedColor(name string) color.Color {
	if c, ok := colornames.Map[strings.ToLower(name)]; ok {
		return c
	}
	return color.Black
}

func display(cfg *config.Config) plotting.DisplayOpts {
	return plotting.DisplayOpts{
		Mode:          plotting.ResolveMode(false, savePath == ""),
		Save:          savePath,
		PreviewWidth:  cfg.Preview.Width,
		PreviewHeight: cfg.Preview.Height,
	}
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	ds, err := dataset.LoadDir(args[0])
	if err != nil {
		return err
	}

	sopt := scatterOpts(cfg)
	sopt.Ax = figure.NewSized(figure.Size{Width: cfg.Figure.Width, Height: cfg.Figure.Height}).AddAxes()

	_, err = plotting.Embedding(ds, basis, plotting.EmbeddingOpts{
		Color:   colorBy,
		Groups:  groups,
		Title:   title,
		Legend:  !cfg.Colorbar,
		Scatter: sopt,
		Display: display(cfg),
	})
	if err != nil {
		return err
	}
	if savePath != "" {
		fmt.Println("saved", savePath)
	}
	return nil
}

func runPanels(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	ds, err := dataset.LoadDir(args[0])
	if err != nil {
		return err
	}

	_, err = plotting.TimeSeriesPanels(ds, basis, plotting.EmbeddingOpts{
		Scatter: scatterOpts(cfg),
		Display: display(cfg),
	})
	if err != nil {
		return err
	}
	if savePath != "" {
		fmt.Println("saved", savePath)
	}
	return nil
}

func runTrajectory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if len(markers) == 0 {
		return fmt.Errorf("at least one --markers value is required")
	}
	ds, err := dataset.LoadDir(args[0])
	if err != nil {
		return err
	}

	if !cmd.Flags().Changed("bins") && cfg.Trajectory.Bins > 0 {
		bins = cfg.Trajectory.Bins
	}
	if !cmd.Flags().Changed("smoothing") && cfg.Trajectory.SmoothingFactor > 0 {
		smoothing = cfg.Trajectory.SmoothingFactor
	}
	if !cmd.Flags().Changed("min-delta") && cfg.Trajectory.MinDelta > 0 {
		minDelta = cfg.Trajectory.MinDelta
	}
	if !cmd.Flags().Changed("variance") {
		variance = variance || cfg.Trajectory.ShowVariance
	}

	topt := plotting.TrajectoryOpts{
		Bins:            bins,
		SmoothingFactor: smoothing,
		MinDelta:        minDelta,
		ShowVariance:    variance,
		ColorMap:        cfg.ColorMap,
		Display:         display(cfg),
	}
	if cmd.Flags().Changed("width") || cmd.Flags().Changed("height") {
		topt.Size = &figure.Size{Width: cfg.Figure.Width, Height: cfg.Figure.Height}
	}
	_, err = plotting.MarkerTrajectory(ds, markers, topt)
	if err != nil {
		return err
	}

	if keepTables {
		s := store.New(cfg.OutDir)
		if err := s.Init(); err != nil {
			return err
		}
		tables := make(map[string]*dataset.Table)
		for _, key := range []string{plotting.UnsTrunkTrend, plotting.UnsBranch1Trend, plotting.UnsBranch2Trend} {
			if tb, ok := ds.Uns[key].(*dataset.Table); ok {
				tables[key] = tb
			}
		}
		id, err := s.Save(store.RunMetadata{
			Op:      "trajectory",
			Dataset: args[0],
			Markers: markers,
		}, tables)
		if err != nil {
			return err
		}
		fmt.Println("stored run", id)
	}
	return nil
}

func runView(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	ds, err := dataset.LoadDir(args[0])
	if err != nil {
		return err
	}
	return tui.Run(ds, cfg)
}

func runKeys(cmd *cobra.Command, args []string) error {
	ds, err := dataset.LoadDir(args[0])
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 2, 2, ' ', 0)
	defer w.Flush()
	for _, key := range ds.EmbeddingKeys() {
		coords, _ := ds.Embedding(key)
		fmt.Fprintf(w, "embedding\t%s\t%d rows\n", key, len(coords))
	}
	for _, key := range ds.ObsKeys() {
		col, _ := ds.Obs(key)
		kind := "numeric"
		if col.IsString() {
			kind = fmt.Sprintf("categorical (%d)", len(col.Unique()))
		}
		fmt.Fprintf(w, "obs\t%s\t%s\n", key, kind)
	}
	for key := range ds.Uns {
		fmt.Fprintf(w, "uns\t%s\t%T\n", key, ds.Uns[key])
	}
	return nil
}

func runRuns(cmd *cobra.Command, args []string) error {
	runs, err := store.New(outDir).List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 2, 2, ' ', 0)
	defer w.Flush()
	fmt.Fprintln(w, "ID\tOP\tDATASET\tTIME")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.ID, r.Op, r.Dataset, r.Timestamp.Format("2006-01-02 15:04:05"))
	}
	return nil
}
