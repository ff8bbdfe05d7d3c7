package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/textkit/foundation/core/error"
	mdwerrors "github.com/msto63/textkit/foundation/core/errors"
	"github.com/msto63/textkit/pkg/core/config"
	"github.com/msto63/textkit/pkg/core/logging"
)

// app carries the state shared by all subcommands of one invocation
type app struct {
	cfgFile   string
	verbose   bool
	logFormat string
	inputFile string

	cfg    *config.Config
	logger zerolog.Logger
	runID  string
}

// NewRootCommand builds the textkit command tree
func NewRootCommand() *cobra.Command {
	root, _ := newRoot()
	return root
}

func newRoot() (*cobra.Command, *app) {
	a := &app{cfg: config.Default(), logger: logging.Nop()}

	root := &cobra.Command{
		Use:   "textkit",
		Short: "textkit - Text cleaning toolkit for crawled content",
		Long: `textkit cleans and inspects text scraped from web pages.

Commands:
  classify   - Rune classes and text profile
  strip      - Drop runes outside the retained set
  trim       - Trim runes outside the retained set from both ends
  printable  - Remove non-printable runes and collapse whitespace
  extract    - Pull numbers and prices out of noisy text
  match      - Substring checks
  lcs        - Longest common substring length
  lines      - Merge backslash-continued lines
  hex        - Hex dump of the input bytes
  size       - Human readable byte counts
  anchors    - Collect anchor texts from an HTML page
  status     - Parse status codes

Input is taken from the arguments, from --file or from stdin.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: $TEXTKIT_CONFIG or ./configs/textkit.toml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging and full error traces")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "log format: json or text (overrides config)")
	root.PersistentFlags().StringVarP(&a.inputFile, "file", "f", "", "read input from file")

	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return mdwerror.Wrap(err, "invalid flags").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation(cmd.Name())
	})

	root.AddCommand(
		newClassifyCmd(a),
		newStripCmd(a),
		newTrimCmd(a),
		newPrintableCmd(a),
		newExtractCmd(a),
		newMatchCmd(a),
		newLCSCmd(a),
		newLinesCmd(a),
		newHexCmd(a),
		newSizeCmd(a),
		newAnchorsCmd(a),
		newStatusCmd(a),
		newVersionCmd(),
	)
	return root, a
}

// Execute runs the CLI against the process arguments
func Execute() error {
	root, a := newRoot()
	err := root.Execute()
	if err != nil {
		var e *mdwerror.Error
		if errors.As(err, &e) && a.runID != "" {
			e.WithRunID(a.runID)
		}
		logging.LogError(a.logger, err, "command failed")
		printError(root.ErrOrStderr(), err, a.verbose)
	}
	return err
}

// setup loads configuration and builds the logger for this run
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.LoadOrDefault(a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	logCfg := logging.DefaultLoggerConfig("textkit")
	logCfg.Level = cfg.General.LogLevel
	logCfg.Format = cfg.General.LogFormat
	logCfg.Output = cmd.ErrOrStderr()
	if a.logFormat != "" {
		logCfg.Format = a.logFormat
	}
	if a.verbose {
		logCfg.Level = "debug"
	}

	a.runID = uuid.NewString()
	a.logger = logging.NewLogger(logCfg).With().
		Str("run_id", a.runID).
		Str("command", cmd.Name()).
		Logger()
	a.logger.Debug().Str("config", a.cfgFile).Msg("configuration loaded")
	return nil
}

// readInput returns the text to work on: the --file contents, the joined
// arguments, or stdin when neither is given. One final line break is
// removed.
func (a *app) readInput(cmd *cobra.Command, args []string) (string, error) {
	data, err := a.readInputBytes(cmd, args)
	if err != nil {
		return "", err
	}
	text := strings.TrimSuffix(string(data), "\n")
	return strings.TrimSuffix(text, "\r"), nil
}

func (a *app) readInputBytes(cmd *cobra.Command, args []string) ([]byte, error) {
	switch {
	case a.inputFile != "":
		data, err := os.ReadFile(a.inputFile)
		if err != nil {
			return nil, mdwerrors.IOFailed(mdwerrors.ModuleCLI, "read_file", err).
				WithDetail("path", a.inputFile)
		}
		return data, nil
	case len(args) > 0:
		return []byte(strings.Join(args, " ")), nil
	default:
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, mdwerrors.IOFailed(mdwerrors.ModuleCLI, "read_stdin", err)
		}
		return data, nil
	}
}

// printError writes the one-line digest of err, or the full trace when
// verbose
func printError(w io.Writer, err error, verbose bool) {
	if verbose {
		fmt.Fprint(w, mdwerrors.FullTrace(err))
		return
	}
	fmt.Fprintf(w, "Error: %s\n", mdwerrors.ShortSummary(err))
}
