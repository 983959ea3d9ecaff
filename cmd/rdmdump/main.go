// Package main implements rdmdump, a command-line tool that decodes a
// stream of RDM frames from a file or stdin and logs each one.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lumenctl/rdmctl/internal/config"
	"github.com/lumenctl/rdmctl/internal/logging"
	"github.com/lumenctl/rdmctl/internal/rdm"
)

var (
	appName    = "rdmdump"
	appVersion = "dev" // injected at build time via -ldflags
)

func main() {
	args, action := parseFlags()
	if action != "" {
		return
	}
	if err := run(args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// parsedArgs holds the parsed command line arguments.
type parsedArgs struct {
	source   string
	logLevel string
}

// parseFlags parses os.Args[1:].
func parseFlags() (parsedArgs, string) {
	return parseFlagsWithArgs(os.Args[1:])
}

// parseFlagsWithArgs parses the given arguments and returns the parsed args.
// Returns a non-empty action string if help/version was shown (caller
// should return early).
func parseFlagsWithArgs(args []string) (parsedArgs, string) {
	fs := flag.NewFlagSet("rdmdump", flag.ContinueOnError)
	sourceFlag := fs.String("source", "", "path to a file of raw RDM frame bytes, or - for stdin")
	logLevelFlag := fs.String("log-level", "", "log level (debug, info, warn, error)")
	helpFlag := fs.Bool("help", false, "show help")
	versionFlag := fs.Bool("version", false, "show version")

	_ = fs.Parse(args)

	if *helpFlag {
		showHelp()
		return parsedArgs{}, "help"
	}
	if *versionFlag {
		showVersion()
		return parsedArgs{}, "version"
	}

	return parsedArgs{
		source:   strings.TrimSpace(*sourceFlag),
		logLevel: strings.TrimSpace(*logLevelFlag),
	}, ""
}

// run loads configuration, reads the source to completion, and decodes and
// logs every frame found in it.
func run(args parsedArgs) error {
	opts := config.LoadOptions{
		SourcePath: args.source,
		LogLevel:   args.logLevel,
	}

	cfg, err := config.LoadWithOverrides(opts)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logging.SetLevelFromString(cfg.Logging.Level)
	logging.SetFormatFromString(cfg.Logging.Format)
	if cfg.Logging.File != "" {
		logFile, err := os.OpenFile(cfg.Logging.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer logFile.Close()
		logging.SetOutput(logFile)
	}

	r, closeFn, err := openSource(cfg.Source.Path)
	if err != nil {
		return fmt.Errorf("failed to open source: %w", err)
	}
	defer closeFn()

	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("failed to read source: %w", err)
	}

	logging.Info("read %d bytes from %s", len(data), cfg.Source.Path)
	decodeAll(data)
	return nil
}

// openSource opens path for reading, treating "-" as stdin.
func openSource(path string) (io.Reader, func(), error) {
	if path == "-" || path == "" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}

// decodeAll repeatedly calls rdm.Parse over buf, logging each decoded frame
// and advancing past each decode error, until no further progress can be
// made.
func decodeAll(buf []byte) {
	frames := 0
	errs := 0
	for len(buf) > 0 {
		before := len(buf)
		frame, err := rdm.Parse(&buf)
		if err != nil {
			errs++
			logging.Warn("decode error: %v", err)
			continue
		}
		if frame == nil {
			if len(buf) < before {
				continue
			}
			logging.Debug("%d trailing bytes insufficient for a complete frame", len(buf))
			break
		}
		frames++
		logFrame(frame)
		if len(buf) == before {
			// Parse is contractually guaranteed to advance buf on every
			// call that doesn't return (nil, nil); this guards against a
			// decoder bug turning into an infinite loop.
			break
		}
	}
	logging.Info("decoded %d frame(s), %d error(s)", frames, errs)
}

func logFrame(frame *rdm.Frame) {
	switch frame.Kind {
	case rdm.FrameKindDiscoveryUniqueBranch:
		logging.Info("DUB response: uid=%s", frame.DiscoveryUID)
	case rdm.FrameKindResponse:
		resp := frame.Response
		logging.Info("%v %s->%s txn=%d pid=%v data=%+v",
			resp.CommandClass, resp.Source, resp.Destination, resp.TransactionNumber, resp.ParameterId, resp.ParameterData)
	}
}

func showHelp() {
	fmt.Println(appName)
	fmt.Println("USAGE: rdmdump [options]")
	fmt.Println("OPTIONS:")
	fmt.Println("  -source     Path to a file of raw RDM frame bytes, or - for stdin (default -)")
	fmt.Println("  -log-level  Set log level (debug, info, warn, error)")
	fmt.Println("  -version    Show version information")
	fmt.Println("  -help       Show this help message")
	fmt.Println("ENVIRONMENT VARIABLES: RDMCTL_SOURCE_PATH, RDMCTL_LOG_LEVEL")
	fmt.Println("EXAMPLES: rdmdump -source capture.bin")
}

func showVersion() {
	fmt.Printf("%s %s\n", appName, appVersion)
}
