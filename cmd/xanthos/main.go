// main.go: command-line runner for the xanthos benchmark harness
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/agilira/xanthos"
	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"
)

var (
	flagTrials     int
	flagIterations int
	flagLine       string
	flagJSON       bool
	flagQuiet      bool
	flagLogFile    string
)

var rootCmd = &cobra.Command{
	Use:   "xanthos",
	Short: "Micro-benchmark harness for request-line parsing strategies",
	Long: `xanthos runs three equivalent request-line parsing strategies
(tokenize-and-copy, index-and-copy, index-and-slice) for a fixed iteration
count, measuring elapsed time and collector pressure for each, and reports
per-trial collection deltas plus the mean elapsed time per strategy.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, sync := newLogger(flagQuiet, flagLogFile)
		defer sync()

		report, err := runCampaign(benchConfig(logger))
		if err != nil {
			return err
		}
		return writeReport(report)
	},
}

var watchCmd = &cobra.Command{
	Use:   "watch <params-file>",
	Short: "Re-run the benchmark whenever a parameters file changes",
	Long: `watch runs one campaign immediately, then watches the given parameters
file (YAML, JSON, TOML, ...) and re-runs the campaign every time it changes.
Recognized keys: bench.trials, bench.iterations, bench.line.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, sync := newLogger(flagQuiet, flagLogFile)
		defer sync()
		return watchLoop(args[0], benchConfig(logger), logger)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the xanthos version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("xanthos", xanthos.Version)
	},
}

func init() {
	rootCmd.PersistentFlags().IntVarP(&flagTrials, "trials", "t", 0, "number of trials (default 10)")
	rootCmd.PersistentFlags().IntVarP(&flagIterations, "iterations", "n", 0, "inner iterations per run (default 20000001)")
	rootCmd.PersistentFlags().StringVarP(&flagLine, "line", "l", "", "request line to parse (default the reference line)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "emit the report as JSON")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "suppress per-run progress logging")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "also log progress to this file (rotated)")

	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(versionCmd)
}

// benchConfig assembles the campaign config from flags.
func benchConfig(logger xanthos.Logger) xanthos.Config {
	return xanthos.Config{
		Line:       flagLine,
		Trials:     flagTrials,
		Iterations: flagIterations,
		Logger:     logger,
	}
}

// runCampaign validates cfg, runs one full campaign and returns the report.
func runCampaign(cfg xanthos.Config) (*xanthos.Report, error) {
	bench, err := xanthos.New(cfg)
	if err != nil {
		return nil, err
	}
	return bench.Run(), nil
}

// writeReport prints the report to stdout, as text or JSON.
func writeReport(report *xanthos.Report) error {
	if flagJSON {
		out, err := sonic.MarshalIndent(report, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}
	return report.WriteText(os.Stdout)
}

// watchLoop runs campaigns until interrupted: once at startup, then once per
// parameters-file change. Campaigns never overlap; a change arriving while a
// campaign runs is picked up by the next one.
func watchLoop(paramsPath string, base xanthos.Config, logger xanthos.Logger) error {
	reloads := make(chan xanthos.Config, 1)
	hp, err := xanthos.NewHotParams(base, xanthos.HotParamsOptions{
		ParamsPath:   paramsPath,
		PollInterval: time.Second,
		OnReload: func(oldConfig, newConfig xanthos.Config) {
			select {
			case reloads <- newConfig:
			default:
			}
		},
	})
	if err != nil {
		return err
	}
	if err := hp.Start(); err != nil {
		return err
	}
	defer func() { _ = hp.Stop() }()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	cfg := hp.Current()
	for {
		report, err := runCampaign(cfg)
		if err != nil {
			return err
		}
		if err := writeReport(report); err != nil {
			return err
		}

		logger.Info("waiting for params change", "path", paramsPath)
		select {
		case cfg = <-reloads:
			logger.Info("params reloaded",
				"trials", cfg.Trials, "iterations", cfg.Iterations, "line", cfg.Line)
		case sig := <-sigs:
			logger.Info("shutting down", "signal", sig.String())
			return nil
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
