package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/floq/internal/config"
	"github.com/san-kum/floq/internal/floquet"
	"github.com/san-kum/floq/internal/linalg"
	"github.com/san-kum/floq/internal/storage"
	"github.com/san-kum/floq/internal/viz"
)

var (
	dataDir  string
	logLevel string
	log      = logrus.New()

	// Problem parameters
	dim      int
	nz       int
	nc       int
	np       int
	omega    float64
	duration float64
	decimals int
	// Config file
	configFile string
	presetName string

	tolerance float64
	outDir    string
	workers   int
	save      bool
	maxN      int
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "floq",
		Short:        "Floquet problem parameters and matrix checks",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogger(logLevel)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".floq", "data directory")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	paramsCmd := &cobra.Command{
		Use:   "params [preset]",
		Short: "derive extended-space parameters",
		Args:  cobra.MaximumNArgs(1),
		RunE:  showParams,
	}
	addProblemFlags(paramsCmd)

	exploreCmd := &cobra.Command{
		Use:   "explore [preset]",
		Short: "interactively resize a problem",
		Args:  cobra.MaximumNArgs(1),
		RunE:  explore,
	}
	addProblemFlags(exploreCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("presets:")
			for _, p := range config.ListPresets() {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	unitaryCmd := &cobra.Command{
		Use:   "unitary [matrix.csv]",
		Short: "check that a matrix is unitary",
		Args:  cobra.ExactArgs(1),
		RunE:  checkUnitary,
	}
	addToleranceFlags(unitaryCmd)
	unitaryCmd.Flags().BoolVar(&save, "save", false, "store a report in the data directory")

	orthoCmd := &cobra.Command{
		Use:   "orthonormalize [vectors.csv]...",
		Short: "orthonormalize row vector sets with modified Gram-Schmidt",
		Args:  cobra.MinimumNArgs(1),
		RunE:  orthonormalize,
	}
	orthoCmd.Flags().StringVar(&outDir, "out", "", "directory for orthonormalized sets (default: print)")
	orthoCmd.Flags().IntVar(&workers, "workers", 4, "sets processed in parallel")
	addToleranceFlags(orthoCmd)
	orthoCmd.Flags().BoolVar(&save, "save", false, "store reports in the data directory")

	stabilityCmd := &cobra.Command{
		Use:   "stability",
		Short: "chart Gram-Schmidt orthonormality loss on ill-conditioned sets",
		RunE:  stability,
	}
	stabilityCmd.Flags().IntVar(&maxN, "max-n", 24, "largest set size")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored reports",
		RunE:  listReports,
	}

	rootCmd.AddCommand(paramsCmd, exploreCmd, presetsCmd, unitaryCmd, orthoCmd, stabilityCmd, listCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setupLogger(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	log.SetLevel(lvl)
	return nil
}

func addProblemFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&dim, "dim", 2, "Hilbert space dimension")
	cmd.Flags().IntVar(&nz, "nz", config.DefaultNz, "number of Fourier components (odd)")
	cmd.Flags().IntVar(&nc, "nc", 3, "number of Hamiltonian components")
	cmd.Flags().IntVar(&np, "np", 1, "number of control parameters")
	cmd.Flags().Float64Var(&omega, "omega", config.DefaultOmega, "drive angular frequency")
	cmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "control duration")
	cmd.Flags().IntVar(&decimals, "decimals", config.DefaultDecimals, "rounding decimals")
	cmd.Flags().StringVar(&configFile, "config", "", "problem file path (yaml)")
}

func addToleranceFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&tolerance, "tol", linalg.DefaultTolerance, "tolerance (overrides the problem's)")
	cmd.Flags().StringVar(&presetName, "preset", "", "take the tolerance from a preset")
	cmd.Flags().StringVar(&configFile, "config", "", "take the tolerance from a problem file (yaml)")
}

// checkTolerance returns --tol when set explicitly, otherwise the tolerance of
// the preset or problem file, otherwise the --tol default.
func checkTolerance(cmd *cobra.Command) (float64, error) {
	if cmd.Flags().Changed("tol") {
		return tolerance, nil
	}
	switch {
	case presetName != "":
		cfg := config.GetPreset(presetName)
		if cfg == nil {
			return 0, fmt.Errorf("unknown preset: %s (available: %v)", presetName, config.ListPresets())
		}
		return cfg.CheckTolerance(), nil
	case configFile != "":
		cfg, err := config.Load(configFile)
		if err != nil {
			return 0, fmt.Errorf("failed to load config: %w", err)
		}
		return cfg.CheckTolerance(), nil
	}
	return tolerance, nil
}

// resolveParams builds parameters from a preset, a config file or the flags,
// in that order. Flags that were set explicitly override nz, omega, t and
// decimals of a preset or config file.
func resolveParams(cmd *cobra.Command, args []string) (string, *floquet.Params, error) {
	var cfg *config.Config
	switch {
	case len(args) == 1:
		cfg = config.GetPreset(args[0])
		if cfg == nil {
			return "", nil, fmt.Errorf("unknown preset: %s (available: %v)", args[0], config.ListPresets())
		}
	case configFile != "":
		loaded, err := config.Load(configFile)
		if err != nil {
			return "", nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cfg == nil {
		p, err := floquet.New(dim, nz, nc, np, omega, duration, decimals)
		return "custom", p, err
	}

	if cmd.Flags().Changed("nz") {
		cfg.Nz = nz
	}
	if cmd.Flags().Changed("omega") {
		cfg.Omega = omega
	}
	if cmd.Flags().Changed("time") {
		cfg.Duration = duration
	}
	if cmd.Flags().Changed("decimals") {
		cfg.Decimals = decimals
	}

	sys, err := cfg.System()
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", cfg.Name, err)
	}
	return cfg.Name, sys.Params, nil
}

func showParams(cmd *cobra.Command, args []string) error {
	name, p, err := resolveParams(cmd, args)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"problem": name,
		"dim":     p.Dim(),
		"nz":      p.Nz(),
		"k_dim":   p.KDim(),
	}).Debug("parameters derived")

	fmt.Println(viz.RenderParams(name, p))
	return nil
}

func explore(cmd *cobra.Command, args []string) error {
	name, p, err := resolveParams(cmd, args)
	if err != nil {
		return err
	}
	if err := viz.RunExplorer(name, p); err != nil {
		return err
	}
	log.WithField("params", p.String()).Info("explorer closed")
	return nil
}

func openStore() (*storage.Store, error) {
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return nil, err
	}
	return st, nil
}

func checkUnitary(cmd *cobra.Command, args []string) error {
	tol, err := checkTolerance(cmd)
	if err != nil {
		return err
	}
	path := args[0]
	u, err := storage.ReadMatrix(path)
	if err != nil {
		return err
	}
	r, c := u.Dims()
	logger := log.WithFields(logrus.Fields{"file": path, "rows": r, "cols": c, "tolerance": tol})
	if r != c {
		return fmt.Errorf("%s: matrix is %dx%d, want square", path, r, c)
	}

	start := time.Now()
	ok := linalg.IsUnitary(u, tol)
	loss := linalg.OrthonormalityLoss(linalg.Adjoint(u))
	logger.WithField("elapsed", time.Since(start)).Debug("unitarity checked")

	fmt.Println(viz.RenderCheck("unitary "+filepath.Base(path), ok, fmt.Sprintf("max|U†U-I|=%.3g tol=%g", loss, tol)))

	if save {
		st, err := openStore()
		if err != nil {
			return err
		}
		id, err := st.SaveReport(storage.Report{
			Kind:      storage.KindUnitary,
			Source:    path,
			Tolerance: tol,
			Passed:    ok,
			Loss:      loss,
		}, u)
		if err != nil {
			return err
		}
		logger.WithField("report", id).Info("report saved")
	}
	return nil
}

func orthonormalize(cmd *cobra.Command, args []string) error {
	tol, err := checkTolerance(cmd)
	if err != nil {
		return err
	}
	sets := make([]mat.CMatrix, len(args))
	for i, path := range args {
		m, err := storage.ReadMatrix(path)
		if err != nil {
			return err
		}
		sets[i] = m
	}

	log.WithFields(logrus.Fields{"sets": len(sets), "workers": workers}).Debug("orthonormalizing")
	results, err := linalg.OrthonormalizeBatch(context.Background(), sets, workers)
	if err != nil {
		return err
	}

	var st *storage.Store
	if save {
		if st, err = openStore(); err != nil {
			return err
		}
	}
	if outDir != "" {
		if err := os.MkdirAll(outDir, 0755); err != nil {
			return err
		}
	}

	for i, q := range results {
		path := args[i]
		loss := linalg.OrthonormalityLoss(q)
		ok := linalg.IsOrthonormal(q, tol)
		fmt.Println(viz.RenderCheck("orthonormal "+filepath.Base(path), ok, fmt.Sprintf("loss=%.3g", loss)))

		if outDir != "" {
			base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
			out := filepath.Join(outDir, base+".orth.csv")
			if err := storage.WriteMatrix(out, q); err != nil {
				return err
			}
			log.WithFields(logrus.Fields{"file": path, "out": out}).Info("orthonormal set written")
		} else {
			printMatrix(q)
		}

		if st != nil {
			id, err := st.SaveReport(storage.Report{
				Kind:      storage.KindOrthonormalize,
				Source:    path,
				Tolerance: tol,
				Passed:    ok,
				Loss:      loss,
			}, q)
			if err != nil {
				return err
			}
			log.WithField("report", id).Info("report saved")
		}
	}
	return nil
}

func printMatrix(m mat.CMatrix) {
	r, c := m.Dims()
	for i := 0; i < r; i++ {
		cells := make([]string, c)
		for j := range cells {
			v := m.At(i, j)
			cells[j] = fmt.Sprintf("%+.6f%+.6fi", real(v), imag(v))
		}
		fmt.Println("  " + strings.Join(cells, "  "))
	}
}

// hilbertSet returns n rows with entry (r, c) = 1/(r+c+1) + 1/(r+c+2) i, a
// nearly dependent set that stresses orthogonalization.
func hilbertSet(n int) *mat.CDense {
	m := mat.NewCDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			m.Set(i, j, complex(1/float64(i+j+1), 1/float64(i+j+2)))
		}
	}
	return m
}

func stability(cmd *cobra.Command, args []string) error {
	if maxN < 2 {
		return fmt.Errorf("max-n must be at least 2, got %d", maxN)
	}

	losses := make([]float64, 0, maxN-1)
	for n := 2; n <= maxN; n++ {
		q, err := linalg.GramSchmidt(hilbertSet(n))
		if err != nil {
			log.WithField("n", n).WithError(err).Warn("set became dependent, stopping")
			break
		}
		loss := linalg.OrthonormalityLoss(q)
		log.WithFields(logrus.Fields{"n": n, "loss": loss}).Debug("orthonormalized")
		losses = append(losses, loss)
	}

	fmt.Println(viz.LossChart(losses, fmt.Sprintf("log10 orthonormality loss, n = 2..%d", len(losses)+1)))
	return nil
}

func listReports(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	reports, err := st.List()
	if err != nil {
		return err
	}

	if len(reports) == 0 {
		fmt.Println("no reports found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tKIND\tSOURCE\tSIZE\tPASSED\tLOSS\tTIMESTAMP")
	for _, r := range reports {
		fmt.Fprintf(w, "%s\t%s\t%s\t%dx%d\t%v\t%.3g\t%s\n",
			r.ID, r.Kind, r.Source, r.Rows, r.Cols, r.Passed, r.Loss,
			r.Timestamp.Format("2006-01-02 15:04:05"))
	}
	return w.Flush()
}
