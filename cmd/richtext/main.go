package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/richtext"
	"pkt.systems/version"
)

const (
	defaultThemeName = "default"
	defaultWidth     = 80
	defaultChunkSize = 3
	defaultDelay     = 20 * time.Millisecond
)

func init() {
	version.SetDefaultModule("pkt.systems/richtext")
}

type cliOptions struct {
	themeName   string
	widthFlag   int
	osc8Flag    string
	colorFlag   string
	listThemes  bool
	listPresets bool
	outPath     string
	boring      bool
	htmlMode    bool
	presetName  string
	configPath  string
	tags        bool
	softWrap    bool
	watch       bool
	stream      bool
	simulate    bool
	simChunk    int
	simDelay    time.Duration
	logLevel    string
}

func main() {
	var o cliOptions
	flags := pflag.NewFlagSet("richtext", pflag.ExitOnError)
	flags.StringVarP(&o.themeName, "theme", "t", defaultThemeName, "Theme name")
	flags.IntVarP(&o.widthFlag, "width", "w", 0, "Output width override (0 uses terminal width if available)")
	flags.StringVarP(&o.osc8Flag, "osc8", "8", "auto", "OSC8 hyperlinks: auto|on|off")
	flags.StringVar(&o.colorFlag, "color", "auto", "Color output: auto|always|never")
	flags.BoolVar(&o.listThemes, "list-themes", false, "List available themes")
	flags.BoolVar(&o.listPresets, "list-presets", false, "List available presets")
	flags.StringVarP(&o.outPath, "output", "o", "", "Output file instead of stdout")
	flags.BoolVarP(&o.boring, "boring", "b", false, "Generate non-ANSI output")
	flags.BoolVar(&o.htmlMode, "html", false, "Generate an HTML fragment instead of ANSI output")
	flags.StringVarP(&o.presetName, "preset", "p", "", "Formatting preset (default|markdown|documentation)")
	flags.StringVarP(&o.configPath, "config", "c", "", "YAML, JSON or TOML formatter config")
	flags.BoolVar(&o.tags, "tags", false, "Enable [[highlight]] and {{badge}} tags")
	flags.BoolVar(&o.softWrap, "soft-wrap", false, "Break words longer than the output width")
	flags.BoolVar(&o.watch, "watch", false, "Re-render a single input file whenever it changes")
	flags.BoolVar(&o.stream, "stream", false, "Render each line as soon as it arrives")
	flags.BoolVar(&o.simulate, "simulate", false, "Stream simulator (use default delay and chunk size)")
	flags.IntVar(&o.simChunk, "simulate-chunk", defaultChunkSize, "Max bytes per stream chunk")
	flags.DurationVar(&o.simDelay, "simulate-delay", defaultDelay, "Delay per stream chunk")
	flags.StringVar(&o.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, version.Module(), version.Current())
		fmt.Fprintf(os.Stderr, "Usage: richtext [flags] [inputs...]\n")
		fmt.Fprintln(os.Stderr, "\nIf no input is provided, text is read from stdin.")
		fmt.Fprintln(os.Stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	logger, err := newLogger(o.logLevel, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid --log-level %q: %v\n", o.logLevel, err)
		os.Exit(2)
	}

	if o.listThemes {
		printThemes()
		return
	}
	if o.listPresets {
		printPresets()
		return
	}

	job, err := newRenderJob(o, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	args := flags.Args()
	if o.watch {
		if len(args) != 1 || o.outPath != "" {
			fmt.Fprintln(os.Stderr, "--watch needs exactly one input file and writes to stdout")
			os.Exit(2)
		}
		path, err := localPath(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "watch: %v\n", err)
			os.Exit(2)
		}
		if err := watchFile(ctx, path, logger, func() error {
			return job.renderFile(path, os.Stdout)
		}); err != nil {
			fmt.Fprintf(os.Stderr, "watch: %v\n", err)
			os.Exit(1)
		}
		return
	}

	in, err := openInputs(ctx, args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open input: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = in.Close() }()

	out, err := createOutput(o.outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open output: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = out.Close() }()

	if err := job.render(in, out); err != nil {
		fmt.Fprintf(os.Stderr, "render: %v\n", err)
		os.Exit(1)
	}
}

// renderJob holds everything resolved from flags that a render needs.
type renderJob struct {
	logger  zerolog.Logger
	partial richtext.Partial
	theme   richtext.Theme
	width   int
	output  richtext.Output
	options []richtext.RenderOption

	stream   bool
	simulate bool
	simChunk int
	simDelay time.Duration
}

func newRenderJob(o cliOptions, logger zerolog.Logger) (*renderJob, error) {
	partial, err := resolvePartial(o.presetName, o.configPath)
	if err != nil {
		return nil, err
	}
	profile, err := resolveProfile(o.colorFlag)
	if err != nil {
		return nil, fmt.Errorf("invalid --color %q: %w", o.colorFlag, err)
	}
	theme, ok := richtext.ThemeForProfile(o.themeName, profile)
	if !ok {
		printThemes()
		return nil, fmt.Errorf("unknown theme %q", o.themeName)
	}
	if o.boring {
		theme = richtext.BoringTheme()
	}
	osc8, err := resolveOSC8(o.osc8Flag)
	if err != nil {
		return nil, fmt.Errorf("invalid --osc8 %q: %w", o.osc8Flag, err)
	}
	output := richtext.OutputANSI
	if o.htmlMode || strings.HasSuffix(strings.ToLower(o.outPath), ".html") {
		output = richtext.OutputHTML
	}
	job := &renderJob{
		logger:  logger,
		partial: partial,
		theme:   theme,
		width:   resolveWidth(o.widthFlag),
		output:  output,
		options: []richtext.RenderOption{
			richtext.WithOSC8(osc8),
			richtext.WithSoftWrap(o.softWrap),
			richtext.WithTags(o.tags),
		},
		stream:   o.stream,
		simulate: o.simulate,
		simChunk: o.simChunk,
		simDelay: o.simDelay,
	}
	if output == richtext.OutputHTML && (o.stream || o.simulate) {
		logger.Warn().Msg("--stream and --simulate apply to ANSI output only")
		job.stream, job.simulate = false, false
	}
	logger.Debug().
		Str("theme", theme.Name()).
		Str("preset", o.presetName).
		Str("config", o.configPath).
		Int("width", job.width).
		Bool("osc8", osc8).
		Bool("html", output == richtext.OutputHTML).
		Bool("stream", job.stream || job.simulate).
		Msg("render job ready")
	return job, nil
}

func (j *renderJob) render(r io.Reader, w io.Writer) error {
	switch {
	case j.simulate:
		return richtext.StreamSimulate(richtext.StreamSimulateRequest{
			Reader:    r,
			Writer:    w,
			Width:     j.width,
			Theme:     j.theme,
			Partial:   j.partial,
			ChunkSize: j.simChunk,
			Delay:     j.simDelay,
			Options:   j.options,
		})
	case j.stream:
		return richtext.Parse(richtext.ParseRequest{
			Reader:  r,
			Stream:  richtext.NewStreamRenderer(w, j.width, j.theme, j.options...),
			Partial: j.partial,
			Options: j.options,
		})
	}
	return richtext.Render(richtext.RenderRequest{
		Reader:  r,
		Writer:  w,
		Width:   j.width,
		Theme:   j.theme,
		Partial: j.partial,
		Output:  j.output,
		Options: j.options,
	})
}

func (j *renderJob) renderFile(path string, w io.Writer) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return j.render(f, w)
}

func resolvePartial(presetName, configPath string) (richtext.Partial, error) {
	partial, ok := richtext.PresetByName(presetName)
	if !ok {
		return richtext.Partial{}, fmt.Errorf("%w %q (available: %s)", richtext.ErrUnknownPreset, presetName, strings.Join(richtext.AvailablePresets(), ", "))
	}
	if configPath == "" {
		return partial, nil
	}
	path, err := localPath(configPath)
	if err != nil {
		return richtext.Partial{}, fmt.Errorf("load config: %w", err)
	}
	cfg, err := richtext.LoadConfig(path)
	if err != nil {
		return richtext.Partial{}, fmt.Errorf("load config: %w", err)
	}
	fromFile, err := cfg.Partial()
	if err != nil {
		return richtext.Partial{}, fmt.Errorf("load config: %w", err)
	}
	return partial.Merge(fromFile), nil
}

func resolveProfile(mode string) (termenv.Profile, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", "auto":
		return termenv.EnvColorProfile(), nil
	case "always", "on", "true":
		return termenv.TrueColor, nil
	case "never", "off", "false":
		return termenv.Ascii, nil
	default:
		return termenv.Ascii, fmt.Errorf("expected auto|always|never")
	}
}

func newLogger(level string, w io.Writer) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Logger{}, err
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w}).
		With().
		Timestamp().
		Logger().
		Level(lvl), nil
}

func printThemes() {
	names := richtext.AvailableThemes()
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintln(os.Stdout, name)
	}
}

func printPresets() {
	for _, name := range richtext.AvailablePresets() {
		fmt.Fprintln(os.Stdout, name)
	}
}

func resolveWidth(width int) int {
	if width > 0 {
		return width
	}
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	if w, err := strconv.Atoi(os.Getenv("COLUMNS")); err == nil && w > 0 {
		return w
	}
	return defaultWidth
}

func resolveOSC8(mode string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", "auto":
		return richtext.DetectOSC8Support(), nil
	case "on", "true", "1", "yes":
		return true, nil
	case "off", "false", "0", "no":
		return false, nil
	default:
		return false, fmt.Errorf("expected auto|on|off")
	}
}
