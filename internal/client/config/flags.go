package config

import (
	"flag"
	"time"

	"github.com/dmitrijs2005/inkwell/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
//	-a string   server address (e.g. "127.0.0.1:50051")
//	-t int      request timeout, seconds
func parseFlags(config *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-a", "-t"})

	fs := flag.NewFlagSet("client", flag.ContinueOnError)

	fs.StringVar(&config.ServerEndpointAddr, "a", config.ServerEndpointAddr, "server address and port")
	timeout := fs.Int("t", int(config.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			config.RequestTimeout = time.Duration(*timeout) * time.Second
		}
	})
}
