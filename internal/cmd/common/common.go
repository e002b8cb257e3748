// Package common provides the logging and startup plumbing shared by all ifacescan commands.
package common

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/CompassSecurity/ifacescan/pkg/format"
	"github.com/CompassSecurity/ifacescan/pkg/logging"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
	"golang.org/x/term"
)

// Version information - set via ldflags during build
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Logging flags, bound by AddCommonFlags.
var (
	JsonLogoutput bool
	LogFile       string
	LogColor      bool
	LogDebug      bool
	LogLevel      string
)

// savedTerminal is the stdin state captured before the command runs, nil when stdin is no terminal.
var savedTerminal *term.State

// NewlineWriter ends every log entry with the platform line terminator.
type NewlineWriter struct {
	Out *os.File
}

func (w *NewlineWriter) Write(p []byte) (int, error) {
	line := make([]byte, 0, len(p)+1)
	line = append(line, bytes.TrimSuffix(p, []byte("\n"))...)
	line = append(line, lineEnding...)

	written, err := w.Out.Write(line)
	if err != nil {
		return 0, err
	}
	if written != len(line) {
		return 0, io.ErrShortWrite
	}
	return len(p), nil
}

var lineEnding = func() []byte {
	if runtime.GOOS == "windows" {
		return []byte("\r\n")
	}
	return []byte("\n")
}()

// TerminalRestoringWriter passes JSON log lines through and resets the terminal after a fatal one.
type TerminalRestoringWriter struct {
	underlying io.Writer
}

func NewTerminalRestoringWriter(w io.Writer) *TerminalRestoringWriter {
	return &TerminalRestoringWriter{underlying: w}
}

func (w *TerminalRestoringWriter) Write(p []byte) (int, error) {
	n, err := w.underlying.Write(p)
	if gjson.GetBytes(p, "level").String() == zerolog.LevelFatalValue {
		RestoreTerminalState()
	}
	return n, err
}

// restoreOnFatal resets the terminal before log.Fatal exits the process.
var restoreOnFatal = zerolog.HookFunc(func(_ *zerolog.Event, level zerolog.Level, _ string) {
	if level == zerolog.FatalLevel {
		RestoreTerminalState()
	}
})

func SaveTerminalState() {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return
	}
	if state, err := term.GetState(fd); err == nil {
		savedTerminal = state
	}
}

func RestoreTerminalState() {
	if savedTerminal != nil {
		_ = term.Restore(int(os.Stdin.Fd()), savedTerminal)
	}
}

// openLogOutput returns stdout, or the --logfile opened for appending.
func openLogOutput() (*os.File, error) {
	if LogFile == "" {
		return os.Stdout, nil
	}
	// #nosec G304 - log file path comes from the --logfile flag
	f, err := os.OpenFile(LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, format.FileUserReadWrite)
	if err != nil {
		return nil, fmt.Errorf("open log file %q: %w", LogFile, err)
	}
	return f, nil
}

// InitLogger points the global logger at the configured output. Hit events
// keep their own level in both the console and the JSON format.
func InitLogger(cmd *cobra.Command) error {
	f, err := openLogOutput()
	if err != nil {
		return err
	}
	out := &NewlineWriter{Out: f}

	// log files get no escape codes unless --color was given explicitly
	colored := LogColor
	if LogFile != "" && !cmd.Root().PersistentFlags().Changed("color") {
		colored = false
	}

	hitWriter := &logging.HitLevelWriter{}
	if JsonLogoutput {
		hitWriter.SetOutput(NewTerminalRestoringWriter(out))
	} else {
		hitWriter.SetOutput(&zerolog.ConsoleWriter{
			Out:         out,
			TimeFormat:  time.RFC3339,
			NoColor:     !colored,
			FormatLevel: levelFormatter(colored),
		})
	}

	logging.SetGlobalHitWriter(hitWriter)
	log.Logger = zerolog.New(hitWriter).With().Timestamp().Logger().Hook(restoreOnFatal)
	return nil
}

// levelColors covers the levels ifacescan logs at; anything else is printed plain.
var levelColors = map[string]string{
	"hit":   "\x1b[35m",
	"info":  "\x1b[32m",
	"warn":  "\x1b[33m",
	"error": "\x1b[31m",
}

func levelFormatter(colored bool) zerolog.Formatter {
	return func(i interface{}) string {
		level, _ := i.(string)
		if code, ok := levelColors[level]; ok && colored {
			return code + level + "\x1b[0m"
		}
		return level
	}
}

// SetGlobalLogLevel applies --log-level, then -v, then the info default.
func SetGlobalLogLevel(cmd *cobra.Command) {
	switch {
	case LogLevel != "":
		level, err := logging.ParseLevel(LogLevel)
		if err != nil || level < zerolog.TraceLevel || level > zerolog.ErrorLevel {
			zerolog.SetGlobalLevel(zerolog.InfoLevel)
			log.Warn().Str("logLevelSpecified", LogLevel).Msg("Invalid log level, defaulting to info")
			return
		}
		zerolog.SetGlobalLevel(level)
		log.Debug().Str("level", LogLevel).Msg("Log level set (explicit)")
	case LogDebug:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Debug().Msg("Log level set to debug (-v)")
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// AddCommonFlags adds the common logging and output flags to a cobra command
func AddCommonFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVarP(&JsonLogoutput, "json", "", false, "Use JSON as log output format")
	cmd.PersistentFlags().StringVarP(&LogFile, "logfile", "l", "", "Append log output to a file")
	cmd.PersistentFlags().BoolVarP(&LogDebug, "verbose", "v", false, "Enable debug logging (shortcut for --log-level=debug)")
	cmd.PersistentFlags().StringVar(&LogLevel, "log-level", "", "Set log level globally (trace, debug, info, warn, error, hit). Example: --log-level=hit")
	cmd.PersistentFlags().BoolVar(&LogColor, "color", true, "Enable colored log output (off by default with --logfile)")
}

// SetupPersistentPreRun configures logging before any command runs.
func SetupPersistentPreRun(cmd *cobra.Command) {
	cmd.PersistentPreRunE = func(c *cobra.Command, _ []string) error {
		if err := InitLogger(c); err != nil {
			_, _ = fmt.Fprintln(c.ErrOrStderr(), err)
			return err
		}
		SetGlobalLogLevel(c)
		return nil
	}
}

func Run(rootCmd *cobra.Command) {
	os.Exit(Execute(rootCmd))
}

// Execute runs rootCmd and returns the process exit code. The terminal is
// restored on return and before a fatal log exits.
func Execute(rootCmd *cobra.Command) int {
	SaveTerminalState()
	defer RestoreTerminalState()

	if err := rootCmd.Execute(); err != nil {
		return 1
	}
	return 0
}
