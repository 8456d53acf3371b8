package main

import (
	"fmt"
	"io"
	"regexp"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/LuckyTurtleDev/my-env-logger-style/cmd/logdemo/internal/foo"
	"github.com/LuckyTurtleDev/my-env-logger-style/config"
	"github.com/LuckyTurtleDev/my-env-logger-style/core"
	"github.com/LuckyTurtleDev/my-env-logger-style/env"
	"github.com/LuckyTurtleDev/my-env-logger-style/formatter"
	"github.com/LuckyTurtleDev/my-env-logger-style/handler/consolehandler"
	"github.com/LuckyTurtleDev/my-env-logger-style/logger"
	"github.com/LuckyTurtleDev/my-env-logger-style/style"
)

type options struct {
	noModule    bool
	noEmoji     bool
	timestamp   string
	level       string
	style       string
	configPath  string
	noConfig    bool
	moduleWidth int
	redact      bool
	stats       bool
}

func newRootCmd(out io.Writer, base env.Reader) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "logdemo",
		Short: "Print sample log lines with the styled formatter",
		Long: `logdemo logs a few records at every level from two packages.

Filter directives are read from GO_LOG (for example "info,main=trace"),
the color mode from GO_LOG_STYLE and the timestamp precision from
GO_LOG_TIMESTAMP. Flags override the environment.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, out, base, opts)
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&opts.noModule, "no-module", false, "hide the module column")
	flags.BoolVar(&opts.noEmoji, "no-emoji", false, "hide the level emoji")
	flags.StringVar(&opts.timestamp, "timestamp", "", "timestamp precision: off, seconds, millis, micros or nanos")
	flags.StringVar(&opts.level, "level", "trace", "default level filter, applied after GO_LOG")
	flags.StringVar(&opts.style, "style", "", "color mode: auto, always or never")
	flags.StringVar(&opts.configPath, "config", "", "YAML config file (default: searched in the XDG config dirs)")
	flags.BoolVar(&opts.noConfig, "no-config", false, "ignore config files")
	flags.IntVar(&opts.moduleWidth, "module-width", 0, "minimum module column width")
	flags.BoolVar(&opts.redact, "redact", false, "replace IPv4 addresses in messages")
	flags.BoolVar(&opts.stats, "stats", false, "print handler counters after the demo")
	return cmd
}

// overrides turns flags into environment values layered over base
func (o *options) overrides(base env.Reader) env.Reader {
	over := env.MapReader{}
	if o.level != "" {
		spec := o.level
		if prev, ok := base.LookupEnv(config.FilterEnv); ok && prev != "" {
			spec = prev + "," + o.level
		}
		over[config.FilterEnv] = spec
	}
	if o.style != "" {
		over[config.StyleEnv] = o.style
	}
	if o.timestamp != "" {
		over[config.TimestampEnv] = o.timestamp
	}
	return env.Layered{over, base}
}

func run(cmd *cobra.Command, out io.Writer, base env.Reader, opts *options) error {
	f := formatter.New(formatter.Options{})
	if opts.redact {
		if err := f.InstallArgFormatter(ipv4Redactor("RESTRAINED")); err != nil {
			return err
		}
	}

	setup := logger.Setup{
		Env:            opts.overrides(base),
		ConfigFile:     opts.configPath,
		SkipConfigFile: opts.noConfig,
		Writer:         out,
		Formatter:      f,
	}
	b, err := setup.Builder()
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
	}

	if opts.noModule {
		f.SetShowModule(false)
	}
	if opts.noEmoji {
		f.SetShowEmoji(false)
	}
	if opts.moduleWidth > 0 {
		f.PeekAndGrowModuleWidth(opts.moduleWidth)
	}

	l := b.Build()
	prev := logger.Default()
	logger.SetDefault(l)
	defer logger.SetDefault(prev)

	printLogs()
	foo.PrintLogs()
	printLogs()

	if opts.stats {
		if err := printStats(cmd.OutOrStdout(), l); err != nil {
			return err
		}
	}
	return l.Close()
}

func printLogs() {
	logger.Info("Hello, world!")
	logger.Trace("traceeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeee")
	logger.Debug("bugs everywhere")
	logger.Warn("This looks strange")
	logger.Error("Something went wrong")
}

// ipv4Pattern matches dotted-quad IPv4 addresses
var ipv4Pattern = regexp.MustCompile(`(\b25[0-5]|\b2[0-4][0-9]|\b[01]?[0-9][0-9]?)(\.(25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)){3}`)

// ipv4Redactor renders the message with every IPv4 address replaced by
// repl, followed by the record's fields.
func ipv4Redactor(repl string) formatter.ArgFormatter {
	return formatter.ArgFormatterFunc(func(buf *style.Buffer, rec *core.Record) error {
		msg := ipv4Pattern.ReplaceAllString(rec.Text(), repl)
		line := core.AppendFields([]byte(msg), rec.Fields)
		line = append(line, '\n')
		_, err := buf.Write(line)
		return err
	})
}

// printStats gathers the handler counters through a Prometheus registry
// and prints every non-zero sample.
func printStats(w io.Writer, l *logger.Logger) error {
	ch, ok := l.Handler().(*consolehandler.ConsoleHandler)
	if !ok {
		return nil
	}
	reg := prometheus.NewRegistry()
	if err := reg.Register(ch.Collector("console")); err != nil {
		return err
	}
	families, err := reg.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			v := m.GetCounter().GetValue()
			if v == 0 {
				continue
			}
			labels := ""
			for _, lp := range m.GetLabel() {
				if lp.GetName() == "level" {
					labels = " " + lp.GetValue()
				}
			}
			fmt.Fprintf(w, "%s%s %g\n", mf.GetName(), labels, v)
		}
	}
	return nil
}
