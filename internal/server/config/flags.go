package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/safewalk/internal/flagx"
)

// parseFlags populates server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   gRPC bind address (e.g., ":50051")
//	-d string   PostgreSQL DSN, empty for in-memory storage
//	-s string   token secret
//	-t int      session token validity, minutes
//	-w int      per-contact alert timeout, seconds
//	-n int      alert delivery attempts per contact
//	-k string   notifier webhook URL
//	-seed       seed new sessions with demo data
//	-u string   S3 root user
//	-p string   S3 root password
//	-b string   S3 bucket name
//	-g string   S3 region
//	-e string   S3 base endpoint (e.g., "http://127.0.0.1:9000/")
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-s", "-t", "-w", "-n", "-k", "-u", "-p", "-b", "-g", "-e"})
	args = append(args, flagx.FilterSwitches(os.Args[1:], []string{"-seed"})...)

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	accessTokenValidity := fs.Int("t", int(config.AccessTokenValidityDuration.Minutes()), "access token validity (in minutes)")
	alertContactTimeout := fs.Int("w", int(config.AlertContactTimeout.Seconds()), "per-contact alert timeout (in seconds)")

	fs.IntVar(&config.AlertMaxAttempts, "n", config.AlertMaxAttempts, "alert delivery attempts per contact")
	fs.StringVar(&config.NotifierWebhookURL, "k", config.NotifierWebhookURL, "notifier webhook URL")
	fs.BoolVar(&config.SeedDemoData, "seed", config.SeedDemoData, "seed new sessions with demo data")

	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.AccessTokenValidityDuration = time.Duration(*accessTokenValidity) * time.Minute
	config.AlertContactTimeout = time.Duration(*alertContactTimeout) * time.Second
}
