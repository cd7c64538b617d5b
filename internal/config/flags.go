package config

import (
	"time"

	"github.com/dmitrijs2005/studyhub/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
//	-driver string   store backend (sqlite|postgres)
//	-d string        store DSN
//	-a string        API listen address
//	-t int           request timeout in seconds
//
// Only the flags above are considered (flagx.FilterArgs), so unrelated
// arguments such as -c do not interfere. A malformed value panics.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-driver", "-d", "-a", "-t"})

	fs := flagx.NewFlagSet("main")

	fs.StringVar(&cfg.StoreDriver, "driver", cfg.StoreDriver, "store backend: sqlite or postgres")
	fs.StringVar(&cfg.StoreDSN, "d", cfg.StoreDSN, "store DSN")
	fs.StringVar(&cfg.HTTPAddr, "a", cfg.HTTPAddr, "address and port of the JSON API")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}
