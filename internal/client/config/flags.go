package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/mantis/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
//	-a string   backend API base URL
//	-h string   backend gRPC health address ("" disables it)
//	-n string   session storage namespace for preferences
//	-d string   path of the local storage database
//	-i int      online check interval in seconds
//	-t int      login timeout in seconds
//
// os.Args is filtered with flagx.FilterArgs first so flags owned by other
// components do not trip the parser. Parse errors panic. Durations are only
// replaced when their flag is given, so finer values from JSON or env survive.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-h", "-n", "-d", "-i", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIURL, "a", cfg.APIURL, "backend API base URL")
	fs.StringVar(&cfg.HealthAddr, "h", cfg.HealthAddr, "backend health service address")
	fs.StringVar(&cfg.StorageNamespace, "n", cfg.StorageNamespace, "preferences storage namespace")
	fs.StringVar(&cfg.DBPath, "d", cfg.DBPath, "local storage database path")
	onlineCheckInterval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")
	loginTimeout := fs.Int("t", int(cfg.LoginTimeout.Seconds()), "login timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "i":
			cfg.OnlineCheckInterval = time.Duration(*onlineCheckInterval) * time.Second
		case "t":
			cfg.LoginTimeout = time.Duration(*loginTimeout) * time.Second
		}
	})
}
