package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/quantmind-br/siteview/internal/config"
	"github.com/quantmind-br/siteview/internal/domain"
	"github.com/quantmind-br/siteview/internal/fetcher"
	"github.com/quantmind-br/siteview/internal/manifest"
	"github.com/quantmind-br/siteview/internal/output"
	"github.com/quantmind-br/siteview/internal/render"
	"github.com/quantmind-br/siteview/internal/tui"
	"github.com/quantmind-br/siteview/internal/utils"
	"github.com/quantmind-br/siteview/pkg/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

const maxCardWidth = 100

var (
	cfgFile string
	verbose bool
	log     *utils.Logger

	// Dependencies for testing
	newFetcher   = defaultFetcher
	promptSite   = tui.PromptSite
	promptBrowse = tui.PromptBrowse
	isTerminal   = term.IsTerminal
	getTermSize  = term.GetSize
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, tui.ErrorStyle.Render(err.Error()))
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "siteview [url]",
	Short: "Browse the items a site publishes in its site.json",
	Long: `SiteView fetches the site.json manifest published by a site and shows
its title, theme and items as cards, with tag filtering and title search.

The URL may be a bare host such as "example.org"; it is expanded to
"https://example.org/site.json".`,
	Version:       version.Short(),
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

var tagsCmd = &cobra.Command{
	Use:   "tags [url]",
	Short: "List the tags used by a site's items",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return execute(cmd, args, true)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.Full())
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", fmt.Sprintf("config file (default is %s)", config.ConfigFilePath()))
	flags.BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	flags.StringP("format", "f", config.DefaultDisplayFormat, "Output format: card, json or yaml")
	flags.Duration("timeout", config.DefaultFetchTimeout, "Request timeout (0 keeps the client default)")
	flags.String("proxy", "", "Proxy URL for the manifest request")
	flags.Bool("insecure", false, "Skip TLS certificate verification")
	flags.BoolP("interactive", "i", false, "Pick the site, tag and search interactively")
	flags.Bool("accessible", false, "Use screen-reader friendly prompts")
	flags.StringP("output", "o", "", "Write the result to a file or directory instead of stdout")
	flags.Bool("force", false, "Overwrite an existing output file")

	rootCmd.Flags().StringP("tag", "t", "", "Only show items carrying this tag")
	rootCmd.Flags().StringP("search", "s", "", "Fuzzy search item titles")

	_ = viper.BindPFlag("display.format", flags.Lookup("format"))
	_ = viper.BindPFlag("fetch.timeout", flags.Lookup("timeout"))
	_ = viper.BindPFlag("fetch.proxy_url", flags.Lookup("proxy"))
	_ = viper.BindPFlag("fetch.insecure_skip_verify", flags.Lookup("insecure"))

	rootCmd.AddCommand(tagsCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
}

func run(cmd *cobra.Command, args []string) error {
	return execute(cmd, args, false)
}

// execute wires config, logger, fetcher and prompts around browse
func execute(cmd *cobra.Command, args []string, tagsOnly bool) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log = utils.NewLogger(utils.LoggerOptions{
		Level:   cfg.Logging.Level,
		Format:  cfg.Logging.Format,
		Output:  cmd.ErrOrStderr(),
		Verbose: verbose,
	})

	interactive, _ := cmd.Flags().GetBool("interactive")
	accessible, _ := cmd.Flags().GetBool("accessible")
	formOpts := tui.FormOptions{Accessible: accessible}

	if len(args) == 0 && !interactive {
		return cmd.Help()
	}
	site, err := resolveSite(args, interactive, formOpts)
	if err != nil {
		return err
	}

	opts := browseOptions{
		Site:        site,
		TagsOnly:    tagsOnly,
		Interactive: interactive && !tagsOnly,
		FormOptions: formOpts,
		Render: render.Options{
			Format:     cfg.Display.Format,
			DateLayout: cfg.Display.DateLayout,
			Width:      cardWidth(cmd.OutOrStdout()),
		},
	}
	if f := cmd.Flags().Lookup("tag"); f != nil {
		opts.Tag = f.Value.String()
	}
	if f := cmd.Flags().Lookup("search"); f != nil {
		opts.Search = f.Value.String()
	}
	opts.OutputPath, _ = cmd.Flags().GetString("output")
	opts.Force, _ = cmd.Flags().GetBool("force")
	if cfg.Display.Format == config.FormatCard && writerIsTerminal(cmd.ErrOrStderr()) {
		opts.Progress = cmd.ErrOrStderr()
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	f, err := newFetcher(cfg)
	if err != nil {
		return err
	}
	defer f.Close()

	err = browse(ctx, f, opts, cmd.OutOrStdout())
	if domain.IsManifestError(err) {
		log.Debug().Err(err).Int("status", domain.StatusCode(err)).Msg("Manifest unavailable")
	}
	return err
}

func defaultFetcher(cfg *config.Config) (domain.Fetcher, error) {
	return fetcher.NewClient(fetcher.ClientOptions{
		Timeout:            cfg.Fetch.Timeout,
		ProxyURL:           cfg.Fetch.ProxyURL,
		InsecureSkipVerify: cfg.Fetch.InsecureSkipVerify,
		MaxBodyBytes:       cfg.Fetch.MaxBodyBytes(),
	})
}

// resolveSite returns the site argument, prompting for it in interactive
// mode. An empty result means nothing was asked for.
func resolveSite(args []string, interactive bool, opts tui.FormOptions) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if !interactive {
		return "", nil
	}
	site, err := promptSite(opts)
	if err != nil {
		return "", promptError(err)
	}
	return site, nil
}

type browseOptions struct {
	Site        string
	Tag         string
	Search      string
	TagsOnly    bool
	Interactive bool
	FormOptions tui.FormOptions
	Render      render.Options
	// OutputPath sends the result to a file instead of out
	OutputPath string
	Force      bool
	// Progress receives the spinner while the manifest loads. Nil disables it.
	Progress io.Writer
}

// browse loads the manifest, applies the tag and search selection and
// renders the result to out.
func browse(ctx context.Context, f domain.Fetcher, opts browseOptions, out io.Writer) error {
	renderer, err := render.New(opts.Render)
	if err != nil {
		return err
	}

	logger := log
	if logger == nil {
		logger = utils.NewNopLogger()
	}
	store := manifest.NewStore(f, manifest.WithLogger(logger))

	start := time.Now()
	stopSpinner := func() {}
	if opts.Progress != nil {
		stopSpinner = utils.StartSpinner(opts.Progress, utils.DescFetching)
	}
	_, err = store.FetchManifest(ctx, opts.Site)
	stopSpinner()
	if err != nil {
		return err
	}
	logger.Debug().
		Str("url", store.URL()).
		Dur("elapsed", time.Since(start)).
		Msg("Manifest ready")

	search := opts.Search
	store.SelectTag(opts.Tag)

	if opts.Interactive {
		values, err := promptBrowse(tagChoices(store), len(store.Document().Items), opts.FormOptions)
		if err != nil {
			return promptError(err)
		}
		store.SelectTag(values.Tag)
		search = values.Search
	}

	view, err := render.NewView(store, render.ViewOptions{Search: search})
	if err != nil {
		return err
	}

	write := func(w io.Writer) error {
		if opts.TagsOnly {
			return renderer.RenderTags(w, view)
		}
		return renderer.Render(w, view)
	}

	if opts.OutputPath == "" {
		return write(out)
	}

	writer := output.NewWriter(output.WriterOptions{Path: opts.OutputPath, Force: opts.Force})
	path, err := writer.Write(view.URL, output.Extension(opts.Render.Format), write)
	if err != nil {
		return err
	}
	logger.Info().Str("path", path).Msg("Output saved")
	fmt.Fprintln(out, tui.SuccessStyle.Render("Saved "+path))
	return nil
}

func tagChoices(store *manifest.Store) []tui.TagChoice {
	counts := store.TagCounts()
	tags := store.UniqueTags()
	choices := make([]tui.TagChoice, 0, len(tags))
	for _, tag := range tags {
		choices = append(choices, tui.TagChoice{Tag: tag, Count: counts[tag]})
	}
	return choices
}

func promptError(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return errors.New("aborted")
	}
	return fmt.Errorf("prompt failed: %w", err)
}

// cardWidth fits cards to the terminal, or leaves them unconstrained when
// out is not a terminal.
func cardWidth(out io.Writer) int {
	file, ok := out.(*os.File)
	if !ok || !isTerminal(int(file.Fd())) {
		return 0
	}
	width, _, err := getTermSize(int(file.Fd()))
	if err != nil || width <= 4 {
		return 0
	}
	return min(width-4, maxCardWidth)
}

func writerIsTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	return ok && isTerminal(int(file.Fd()))
}
