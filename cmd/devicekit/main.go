// Command devicekit prints the environment facts of a device, read from an
// embedded profile, a YAML snapshot, DEVICEKIT_* variables or the running
// host.
//
// Usage:
//
//	devicekit --profile iphone-6-plus
//	devicekit --file device.yaml --output json
//	DEVICEKIT_OS_VERSION=8.1 devicekit --env
//	devicekit --host --profile iphone-6   # host OS and model, profile screen and app
//	devicekit --list-profiles
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/dmitrymomot/devicekit"
	"github.com/dmitrymomot/devicekit/pkg/logger"
	"github.com/dmitrymomot/devicekit/pkg/platform"
)

var (
	errNoSource      = errors.New("no device source: use --profile, --file, --env or --host")
	errUnknownOutput = errors.New("unknown output format")
)

const (
	outputTable = "table"
	outputJSON  = "json"
)

type flags struct {
	profile      string
	file         string
	env          bool
	host         bool
	output       string
	listProfiles bool
	verbose      bool
}

func parseFlags(args []string, stderr io.Writer) (flags, error) {
	var f flags
	fs := pflag.NewFlagSet("devicekit", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVarP(&f.profile, "profile", "p", "", "Embedded device profile to load")
	fs.StringVarP(&f.file, "file", "f", "", "YAML device snapshot to load")
	fs.BoolVar(&f.env, "env", false, "Read facts from DEVICEKIT_* variables and .env")
	fs.BoolVar(&f.host, "host", false, "Read OS version and hardware identifier from the running host")
	fs.StringVarP(&f.output, "output", "o", outputTable, "Output format (table or json)")
	fs.BoolVar(&f.listProfiles, "list-profiles", false, "List embedded device profiles and exit")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "Log how facts are resolved")

	if err := fs.Parse(args); err != nil {
		return flags{}, err
	}
	if f.output != outputTable && f.output != outputJSON {
		return flags{}, fmt.Errorf("%w: %q", errUnknownOutput, f.output)
	}
	return f, nil
}

func newLogger(verbose bool, stderr io.Writer) *slog.Logger {
	opts := []logger.Option{
		logger.WithOutput(stderr),
		logger.WithLevel(slog.LevelWarn),
		logger.WithFormat(logger.FormatText),
		logger.WithContextExtractors(devicekit.LoggerExtractor()),
	}
	if verbose {
		opts = append(opts, logger.WithDevelopment(""))
	}
	return logger.New(opts...)
}

// snapshot merges the requested sources; later sources override earlier
// ones in the order profile, file, env.
func snapshot(f flags, log *slog.Logger) (platform.Snapshot, error) {
	var s platform.Snapshot
	if f.profile != "" {
		p, err := platform.Profile(f.profile)
		if err != nil {
			return s, err
		}
		log.Debug("snapshot loaded", logger.Source("profile"), slog.String("name", f.profile))
		s = s.Merge(p)
	}
	if f.file != "" {
		p, err := platform.LoadFile(f.file)
		if err != nil {
			return s, err
		}
		log.Debug("snapshot loaded", logger.Source("file"), slog.String("path", f.file))
		s = s.Merge(p)
	}
	if f.env {
		p, err := platform.SnapshotFromEnv()
		if err != nil {
			return s, err
		}
		log.Debug("snapshot loaded", logger.Source("env"))
		s = s.Merge(p)
	}
	return s, nil
}

func provider(f flags, log *slog.Logger) (platform.Provider, error) {
	if f.profile == "" && f.file == "" && !f.env && !f.host {
		return nil, errNoSource
	}
	s, err := snapshot(f, log)
	if err != nil {
		return nil, err
	}
	if f.host {
		log.Debug("reading host facts", logger.Source("host"))
		return platform.Host(s)
	}
	return platform.NewStatic(s), nil
}

func run(args []string, stdout, stderr io.Writer) error {
	f, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	if f.listProfiles {
		names, err := platform.Profiles()
		if err != nil {
			return err
		}
		return renderProfiles(stdout, names)
	}

	log := newLogger(f.verbose, stderr)
	p, err := provider(f, log)
	if err != nil {
		return err
	}

	kit := devicekit.New(p, devicekit.WithLogger(log))
	ctx := devicekit.WithContext(context.Background(), kit)

	report, err := kit.Report()
	if err != nil {
		log.WarnContext(ctx, "some facts could not be resolved", logger.Error(err))
	}

	switch f.output {
	case outputJSON:
		return renderJSON(stdout, kit, report)
	default:
		return renderTable(stdout, kit, report)
	}
}

func main() {
	err := run(os.Args[1:], os.Stdout, os.Stderr)
	switch {
	case err == nil:
	case errors.Is(err, pflag.ErrHelp):
	default:
		fmt.Fprintln(os.Stderr, "devicekit:", err)
		os.Exit(1)
	}
}
