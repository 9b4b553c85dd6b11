package config

import (
	"flag"
	"time"

	"github.com/dmitrijs2005/inkwell/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   gRPC bind address (e.g. ":50051")
//	-s string   token signing secret
//	-t int      token validity, minutes
//	-b int      bcrypt cost
//	-l string   log level
//	-seed bool  load sample data
//
// Arguments not listed above are filtered out first, so the -c config flag
// and anything meant for other components do not break parsing.
func parseFlags(config *Config, args []string) {
	args = flagx.FilterArgsBool(args, []string{"-a", "-s", "-t", "-b", "-l", "-seed"}, []string{"-seed"})

	fs := flag.NewFlagSet("server", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "token signing secret")
	tokenValidity := fs.Int("t", int(config.TokenValidityDuration.Minutes()), "token validity (in minutes)")
	fs.IntVar(&config.BcryptCost, "b", config.BcryptCost, "bcrypt cost")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	fs.BoolVar(&config.SeedSampleData, "seed", config.SeedSampleData, "load sample data")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// -t only overrides when given, so a finer JSON duration survives.
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			config.TokenValidityDuration = time.Duration(*tokenValidity) * time.Minute
		}
	})
}
