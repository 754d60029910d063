package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Tsukikage7/unionfind-kit/internal/scenario"
	"github.com/Tsukikage7/unionfind-kit/logger"
)

type runOptions struct {
	file      string
	logLevel  string
	logFormat string
	logFile   string
	metrics   bool
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "dsctl",
		Short:         "并查集场景回放工具",
		SilenceUsage:  true,
	}
	root.AddCommand(newRunCmd())
	return root
}

func newRunCmd() *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "回放场景文件中的 union 操作并输出 connectedness",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.file, "file", "f", "", "场景文件路径 (yaml/json/toml)")
	flags.StringVar(&opts.logLevel, "log-level", logger.LevelInfo, "日志级别: debug, info, warn, error")
	flags.StringVar(&opts.logFormat, "log-format", logger.FormatConsole, "日志格式: console, json")
	flags.StringVar(&opts.logFile, "log-file", "", "日志文件路径，为空时输出到控制台")
	flags.BoolVar(&opts.metrics, "metrics", false, "回放结束后输出 Prometheus 指标")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func run(cmd *cobra.Command, opts *runOptions) error {
	logCfg := &logger.Config{
		Level:  opts.logLevel,
		Format: opts.logFormat,
	}
	if opts.logFile != "" {
		logCfg.Output = logger.OutputFile
		logCfg.LogFile = opts.logFile
	}

	log, err := logger.NewLogger(logCfg)
	if err != nil {
		return err
	}
	defer log.Close()

	sc, err := scenario.Load(opts.file)
	if err != nil {
		log.With(logger.String("file", opts.file), logger.Err(err)).Error("加载场景失败")
		return err
	}

	runner := scenario.NewRunner(log, scenario.NewMetrics(""))
	report, err := runner.Run(cmd.Context(), sc)
	if err != nil {
		log.With(logger.Err(err)).Error("回放失败")
		return err
	}

	out := cmd.OutOrStdout()
	printReport(out, report)

	if opts.metrics {
		return runner.Metrics().WriteText(out)
	}
	return nil
}

func printReport(w io.Writer, report *scenario.Report) {
	for _, r := range report.Results {
		fmt.Fprintf(w, "%d\t%d\n", r.Index, r.Connectedness)
	}
	fmt.Fprintf(w, "size=%d merges=%d groups=%d\n", report.Size, report.Merges, report.Groups)
}
