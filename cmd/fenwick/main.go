package main

import (
	"flag"
	"io"
	"os"

	"github.com/phuslu/log"

	"github.com/caio/go-fenwick/internal/query"
)

var (
	debug   = flag.Bool("debug", false, "Enable debug logging")
	mode    = flag.String("mode", string(query.ModeQueries), "One of queries, inversions, jumps")
	modulus = flag.Int64("mod", 0, "Reduce sums modulo this value (0 disables; jumps defaults to 1000000007)")
	inPath  = flag.String("in", "", "Read input from this file instead of stdin")
)

func main() {
	flag.Parse()

	log.DefaultLogger = log.Logger{
		Level:      log.InfoLevel,
		Caller:     1,
		TimeFormat: "2006-01-02 15:04:05",
		Writer:     &log.IOWriter{Writer: os.Stderr},
	}

	if *debug {
		log.DefaultLogger.Level = log.DebugLevel
		log.Debug().Msg("Debug logging enabled")
	}

	cfg := query.Config{
		Mode:    query.Mode(*mode),
		Modulus: *modulus,
	}
	if err := run(cfg, *inPath); err != nil {
		log.Error().Err(err).Str("mode", *mode).Msg("run failed")
		os.Exit(1)
	}
}

func run(cfg query.Config, path string) error {
	var in io.Reader = os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	return query.Run(cfg, in, os.Stdout)
}
