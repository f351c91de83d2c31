// seedtocss converts a SEED volume into CSS 3.0 flat-file tables, response
// files and waveforms.
//
// Usage:
//
//	seedtocss <seedfile> [dir=<out>] [prefix=<name>] [respdir=<dir>]
//	                     [update=(0|1|t|f)] [getdata=(0|1|t|f)]
//
// The geo-table base directory may be supplied through the GEOTABLEDIR
// environment variable; tables then go to <base>/static and responses to
// <base>/response.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/decred/slog"

	"github.com/projectida/seedcss/codec"
	"github.com/projectida/seedcss/convert"
	"github.com/projectida/seedcss/resp"
	"github.com/projectida/seedcss/seed"
)

const usage = `usage: seedtocss <seedfile> [dir=<out>] [prefix=<name>] [respdir=<dir>]
                 [update=(0|1|t|f)] [getdata=(0|1|t|f)]`

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	for _, arg := range args {
		if arg == "-version" || arg == "--version" {
			fmt.Println(version())
			return 0
		}
	}

	if len(args) < 1 || strings.Contains(args[0], "=") {
		fmt.Fprintln(os.Stderr, usage)
		return 1
	}
	seedFile := args[0]

	opts := []convert.Option{}
	if dir := os.Getenv("GEOTABLEDIR"); dir != "" {
		opts = append(opts, convert.WithGeoTableDir(dir))
	}

	for _, arg := range args[1:] {
		key, value, found := strings.Cut(arg, "=")
		if !found {
			fmt.Fprintf(os.Stderr, "bad argument: %s\n%s\n", arg, usage)
			return 1
		}
		switch key {
		case "dir":
			opts = append(opts, convert.WithDir(value))
		case "prefix":
			opts = append(opts, convert.WithPrefix(value))
		case "respdir":
			opts = append(opts, convert.WithRespDir(value))
		case "update":
			b, ok := parseBool(value)
			if !ok {
				fmt.Fprintf(os.Stderr, "bad argument: %s\n%s\n", arg, usage)
				return 1
			}
			opts = append(opts, convert.WithUpdate(b))
		case "getdata":
			b, ok := parseBool(value)
			if !ok {
				fmt.Fprintf(os.Stderr, "bad argument: %s\n%s\n", arg, usage)
				return 1
			}
			opts = append(opts, convert.WithGetData(b))
		default:
			fmt.Fprintf(os.Stderr, "bad argument: %s\n%s\n", arg, usage)
			return 1
		}
	}

	setupLogging()

	c, err := convert.New(seedFile, opts...)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if err := c.Convert(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	return 0
}

func parseBool(s string) (bool, bool) {
	switch s {
	case "1", "t", "true":
		return true, true
	case "0", "f", "false":
		return false, true
	}

	return false, false
}

// setupLogging routes the library's warnings to standard error.
func setupLogging() {
	backend := slog.NewBackend(os.Stderr)

	seedLog := backend.Logger("SEED")
	seedLog.SetLevel(slog.LevelWarn)
	seed.UseLogger(seedLog)

	codecLog := backend.Logger("CODC")
	codecLog.SetLevel(slog.LevelWarn)
	codec.UseLogger(codecLog)

	respLog := backend.Logger("RESP")
	respLog.SetLevel(slog.LevelWarn)
	resp.UseLogger(respLog)

	convLog := backend.Logger("CONV")
	convLog.SetLevel(slog.LevelWarn)
	convert.UseLogger(convLog)
}
