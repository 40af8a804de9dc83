// Command lpirl runs LP-IRL over the built-in example MDPs and prints the
// recovered reward function.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/binderwang/rl-experiments/lpirl"
	"github.com/binderwang/rl-experiments/mdp"
)

type CLI struct {
	Example string  `default:"two-state" enum:"two-state,three-state" help:"Built-in example MDP (two-state or three-state)"`
	Gamma   float64 `default:"0.9" help:"Discount factor in (0,1)"`
	L1      float64 `default:"10" help:"L1 regularisation weight"`
	Rmax    float64 `default:"2" help:"Reward upper bound"`
	Verbose bool    `short:"v" help:"Verbose logging"`
}

// example bundles one demo MDP with its observed policy.
type example struct {
	model  *mdp.TransitionModel
	policy mdp.Policy
}

// twoState is the 2-state, 2-action reference MDP. Rows follow the i·k+j
// layout: both actions of s0, then both actions of s1.
func twoState() (example, error) {
	space, err := mdp.NewSpace([]string{"s0", "s1"}, []string{"b", "o"})
	if err != nil {
		return example{}, err
	}
	model, err := mdp.NewTransitionModel(space, [][]float64{
		{0.4, 0.6}, // s0, b
		{0.9, 0.1}, // s0, o
		{1, 0},     // s1, b
		{1, 0},     // s1, o
	})
	if err != nil {
		return example{}, err
	}

	return example{model: model, policy: mdp.Policy{"s0": "b", "s1": "o"}}, nil
}

// threeState is the 3-state, 2-action reference MDP, same i·k+j row layout.
func threeState() (example, error) {
	space, err := mdp.NewSpace([]string{"s0", "s1", "s2"}, []string{"b", "o"})
	if err != nil {
		return example{}, err
	}
	model, err := mdp.NewTransitionModel(space, [][]float64{
		{0, 0.4, 0.6}, // s0, b
		{0, 0, 1},     // s0, o
		{0, 0, 1},     // s1, b
		{0, 0, 1},     // s1, o
		{1, 0, 0},     // s2, b
		{1, 0, 0},     // s2, o
	})
	if err != nil {
		return example{}, err
	}

	return example{model: model, policy: mdp.Policy{"s0": "b", "s1": "o", "s2": "o"}}, nil
}

func main() {
	var cli CLI
	kong.Parse(&cli,
		kong.Name("lpirl"),
		kong.Description("Recover a reward function for which an observed policy is optimal (LP-IRL, Ng & Abbeel)"),
		kong.UsageOnError(),
	)

	logger := log.NewWithOptions(os.Stderr, log.Options{Level: log.InfoLevel})
	if cli.Verbose {
		logger.SetLevel(log.DebugLevel)
	}

	if err := run(cli, logger); err != nil {
		logger.Fatal("solve failed", "err", err)
	}
}

func run(cli CLI, logger *log.Logger) error {
	var (
		ex  example
		err error
	)
	switch cli.Example {
	case "three-state":
		ex, err = threeState()
	default:
		ex, err = twoState()
	}
	if err != nil {
		return err
	}

	space := ex.model.Space()
	logger.Debug("assembled example",
		"states", space.NumStates(),
		"actions", space.NumActions(),
		"gamma", cli.Gamma,
		"l1", cli.L1,
		"rmax", cli.Rmax,
	)

	opts := lpirl.Options{Gamma: cli.Gamma, L1: cli.L1, Rmax: cli.Rmax, SolverTol: lpirl.DefaultSolverTol}
	res, err := lpirl.Solve(ex.model, ex.policy, opts)
	if errors.Is(err, lpirl.ErrDegenerateSolution) {
		logger.Warn("constant reward solution; normalization skipped", "raw", res.Raw)
		return nil
	}
	if err != nil {
		return err
	}

	logger.Info("LP solved", "objective", res.Objective, "status", res.Status)
	for i, s := range space.States() {
		fmt.Printf("R(%s) = %.6f\n", s, res.Reward[i])
	}

	return nil
}
