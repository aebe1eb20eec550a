package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"gobayes/adapters/excel"
	"gobayes/app"
	"gobayes/domain/bayes"
	"gobayes/internal/analysis"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gobayes",
		Short: "Bayes factor calculator for normal sampling distributions (Dienes 2014)",
	}

	rootCmd.AddCommand(
		newComputeCmd(),
		newSweepCmd(),
		newSummarizeCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newComputeCmd() *cobra.Command {
	var dataMean, dataSE, h0Value float64
	var h1Value, uniformMin, uniformMax, mode, sd float64
	var distribution, half string
	var asJSON, plotData bool

	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Compute a Bayes factor for one dataset",
		Long: `Compute a Bayes factor from the data mean and standard error.

The alternative hypothesis is either derived from a single --h1-value
estimate, or given explicitly with the distribution's own parameters.

Examples:
  gobayes compute --mean 0.5 --se 0.2 --distribution uniform --h1-value 2
  gobayes compute --mean 0.5 --se 0.2 --distribution half-normal --mode 0 --sd 2 --half upper`,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := bayes.Request{
				DataMean:     dataMean,
				DataSE:       dataSE,
				H0Value:      h0Value,
				Distribution: bayes.PriorKind(strings.ToLower(distribution)),
				PlotData:     plotData,
			}
			setIfChanged := func(name string, v float64) *float64 {
				if cmd.Flags().Changed(name) {
					return &v
				}
				return nil
			}
			req.H1Value = setIfChanged("h1-value", h1Value)
			req.UniformMin = setIfChanged("uniform-min", uniformMin)
			req.UniformMax = setIfChanged("uniform-max", uniformMax)
			req.Mode = setIfChanged("mode", mode)
			req.SD = setIfChanged("sd", sd)
			if cmd.Flags().Changed("half") {
				h := bayes.Half(strings.ToLower(half))
				req.Half = &h
			}

			res, err := bayes.Compute(req)
			if err != nil {
				return err
			}

			if asJSON {
				return json.NewEncoder(os.Stdout).Encode(res)
			}
			fmt.Println(bayes.Summary(res.BF))
			return nil
		},
	}

	cmd.Flags().Float64Var(&dataMean, "mean", 0, "mean of the observed data")
	cmd.Flags().Float64Var(&dataSE, "se", 0, "standard error of the data mean")
	cmd.Flags().Float64Var(&h0Value, "h0-value", 0, "value of the mean under the null hypothesis")
	cmd.Flags().StringVar(&distribution, "distribution", "", "H1 distribution: uniform, normal or half-normal")
	cmd.Flags().Float64Var(&h1Value, "h1-value", 0, "estimate of the data mean under H1")
	cmd.Flags().Float64Var(&uniformMin, "uniform-min", 0, "minimum of a uniform H1 distribution")
	cmd.Flags().Float64Var(&uniformMax, "uniform-max", 0, "maximum of a uniform H1 distribution")
	cmd.Flags().Float64Var(&mode, "mode", 0, "mode of a normal or half-normal H1 distribution")
	cmd.Flags().Float64Var(&sd, "sd", 0, "standard deviation of a normal or half-normal H1 distribution")
	cmd.Flags().StringVar(&half, "half", "", "side of a half-normal distribution: upper or lower")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the full result as JSON")
	cmd.Flags().BoolVar(&plotData, "plot-data", false, "include likelihood and prior curves in JSON output")
	_ = cmd.MarkFlagRequired("mean")
	_ = cmd.MarkFlagRequired("se")
	_ = cmd.MarkFlagRequired("distribution")

	return cmd
}

func newSweepCmd() *cobra.Command {
	var concurrency int64
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "sweep [scenario-file]",
		Short: "Compute Bayes factors for every scenario in an Excel or CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reader := excel.NewScenarioReader(args[0])
			service := app.NewAnalysisService(nil, concurrency)

			items, err := service.ComputeFromDataset(context.Background(), reader)
			if err != nil {
				return err
			}

			if asJSON {
				return json.NewEncoder(os.Stdout).Encode(items)
			}
			for _, item := range items {
				label := item.Label
				if label == "" {
					label = "(unlabeled)"
				}
				if item.Err != nil {
					fmt.Printf("%s: error: %v\n", label, item.Err)
					continue
				}
				fmt.Printf("%s: %s\n", label, item.Analysis.Summary())
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&concurrency, "concurrency", 8, "maximum concurrent computations")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print results as JSON")
	return cmd
}

func newSummarizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summarize [values...]",
		Short: "Compute the mean and standard error of raw observations",
		Long: `Summarize raw observations into the mean and standard error the
compute command consumes.

Example: gobayes summarize 0.3 0.7 0.4 0.6 0.5`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			samples := make([]float64, len(args))
			for i, arg := range args {
				v, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return fmt.Errorf("invalid value %q", arg)
				}
				samples[i] = v
			}

			summary, err := analysis.Summarize(samples)
			if err != nil {
				return err
			}
			fmt.Printf("n=%d mean=%g sd=%g se=%g\n", summary.N, summary.Mean, summary.StdDev, summary.SE)
			return nil
		},
	}
	return cmd
}
