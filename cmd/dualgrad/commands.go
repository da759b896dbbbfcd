package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/born-ml/dualgrad/internal/ad"
	"github.com/born-ml/dualgrad/internal/optim"
	"github.com/born-ml/dualgrad/internal/parallel"
	"github.com/born-ml/dualgrad/internal/testfunc"
)

func (a *app) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			_, err := fmt.Fprintf(a.out, "dualgrad %s\n", version)
			return err
		},
	}
}

func (a *app) functionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "functions",
		Short: "List the built-in objective functions",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			var infos []functionInfo
			for _, name := range testfunc.Names() {
				p, _ := testfunc.Lookup(name)
				infos = append(infos, functionInfo{
					Name:    p.Name,
					Dim:     p.Dim,
					Minimum: p.Minimum(max(p.Dim, 1)),
				})
			}
			return a.render(infos)
		},
	}
}

func (a *app) gradCmd() *cobra.Command {
	var (
		at  []float64
		dim int
	)
	cmd := &cobra.Command{
		Use:   "grad FUNCTION",
		Short: "Evaluate a function and its exact gradient",
		Example: `  dualgrad grad rosenbrock --at -1.2,1
  dualgrad grad sphere --dim 3 -o yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			p, x, err := problemAt(args[0], at, dim)
			if err != nil {
				return err
			}
			f := a.function(p)

			v, err := f.Func(x)
			if err != nil {
				return err
			}
			g, err := f.Grad(x)
			if err != nil {
				return err
			}
			return a.render(gradReport{Function: p.Name, X: x, Value: v, Grad: g})
		},
	}
	cmd.Flags().Float64SliceVar(&at, "at", nil, "Evaluation point (default: the function's conventional start)")
	cmd.Flags().IntVar(&dim, "dim", 2, "Dimension for functions that accept any dimension")
	return cmd
}

func (a *app) minimizeCmd() *cobra.Command {
	var (
		start []float64
		dim   int
	)
	cmd := &cobra.Command{
		Use:   "minimize FUNCTION",
		Short: "Minimize a function with gradient descent or Adam",
		Example: `  dualgrad minimize rosenbrock --optimizer adam
  dualgrad minimize sphere --dim 4 --optimizer gd --lr 0.05 --momentum 0.9
  DUALGRAD_MINIMIZE_MAX_ITER=500 dualgrad minimize beale -o yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			p, x0, err := problemAt(args[0], start, dim)
			if err != nil {
				return err
			}
			opt, err := a.optimizer()
			if err != nil {
				return err
			}

			mc := a.cfg.Minimize
			res, err := optim.Minimize(a.function(p), x0, opt, optim.Settings{
				MaxIter:  mc.MaxIter,
				Tol:      mc.Tol,
				Patience: mc.Patience,
				Logger:   a.logger.WithField("function", p.Name),
			})
			if err != nil {
				return err
			}

			return a.render(minimizeReport{
				Function:   p.Name,
				Optimizer:  opt.Name(),
				Start:      x0,
				X:          res.X,
				F:          res.F,
				GradNorm:   res.GradNorm,
				Iterations: res.Iterations,
				Status:     res.Status.String(),
			})
		},
	}

	flags := cmd.Flags()
	flags.Float64SliceVar(&start, "start", nil, "Starting point (default: the function's conventional start)")
	flags.IntVar(&dim, "dim", 2, "Dimension for functions that accept any dimension")
	flags.String("optimizer", "adam", "Optimizer: gd, adam")
	flags.Float64("lr", 0, "Learning rate (0: optimizer default)")
	flags.Float64("momentum", 0, "GD momentum")
	flags.Float64("beta1", 0, "Adam first moment decay (0: 0.9)")
	flags.Float64("beta2", 0, "Adam second moment decay (0: 0.999)")
	flags.Float64("eps", 0, "Adam epsilon (0: 1e-8)")
	flags.Int("max-iter", 0, "Maximum number of updates (0: 10000)")
	flags.Float64("tol", 0, "Gradient norm tolerance (0: 1e-6)")
	flags.Int("patience", 0, "Identical gradients tolerated before giving up (0: 5)")
	a.bind(flags, map[string]string{
		"minimize.optimizer": "optimizer",
		"minimize.lr":        "lr",
		"minimize.momentum":  "momentum",
		"minimize.beta1":     "beta1",
		"minimize.beta2":     "beta2",
		"minimize.eps":       "eps",
		"minimize.max_iter":  "max-iter",
		"minimize.tol":       "tol",
		"minimize.patience":  "patience",
	})
	return cmd
}

func (a *app) optimizer() (optim.Optimizer, error) {
	mc := a.cfg.Minimize
	switch strings.ToLower(mc.Optimizer) {
	case "gd":
		return optim.NewGD(optim.GDConfig{LR: mc.LR, Momentum: mc.Momentum}), nil
	case "adam":
		return optim.NewAdam(optim.AdamConfig{
			LR:    mc.LR,
			Betas: [2]float64{mc.Beta1, mc.Beta2},
			Eps:   mc.Eps,
		}), nil
	default:
		return nil, fmt.Errorf("unknown optimizer %q (want gd or adam)", mc.Optimizer)
	}
}

func (a *app) function(p testfunc.Problem) *ad.Function {
	opts := []ad.Option{ad.WithLogger(a.logger)}
	if a.cfg.Parallel {
		opts = append(opts, ad.WithParallel(parallel.DefaultConfig()))
	}
	return p.Function(opts...)
}

// problemAt resolves name and the point to use, falling back to the
// problem's conventional start.
func problemAt(name string, x []float64, dim int) (testfunc.Problem, []float64, error) {
	p, err := testfunc.Lookup(name)
	if err != nil {
		return testfunc.Problem{}, nil, err
	}
	if len(x) == 0 {
		if dim < 1 {
			return testfunc.Problem{}, nil, fmt.Errorf("--dim must be positive, got %d", dim)
		}
		return p, p.StartPoint(dim), nil
	}
	if p.Dim != 0 && len(x) != p.Dim {
		return testfunc.Problem{}, nil, fmt.Errorf("%s takes %d coordinates, got %d", p.Name, p.Dim, len(x))
	}
	return p, x, nil
}
