// Command postctl fetches posts from the configured upstream API and prints
// them as indented JSON. With no flags it fetches the whole collection;
// -id fetches a single post.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/kbukum/postclient/config"
	"github.com/kbukum/postclient/logger"
	"github.com/kbukum/postclient/posts"
	"github.com/kbukum/postclient/version"
)

func main() {
	var (
		configFile  = flag.String("config", "", "path to config.yml")
		envFile     = flag.String("env-file", "", "path to .env file")
		id          = flag.Int("id", 0, "fetch a single post by id instead of the collection")
		showVersion = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Println(version.Get().String())
		return
	}

	if flag.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "postctl: unexpected arguments: %v\n", flag.Args())
		os.Exit(2)
	}

	if err := run(*configFile, *envFile, *id); err != nil {
		fmt.Fprintf(os.Stderr, "postctl: %v\n", err)
		os.Exit(1)
	}
}

func run(configFile, envFile string, id int) error {
	var opts []config.LoaderOption
	if configFile != "" {
		opts = append(opts, config.WithConfigFile(configFile))
	}
	if envFile != "" {
		opts = append(opts, config.WithEnvFile(envFile))
	}

	var cfg config.AppConfig
	if err := config.Load(&cfg, opts...); err != nil {
		return err
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := logger.New(&cfg.Logging, cfg.Name)
	log.Debug("configured", logger.Fields(
		"base_url", cfg.Posts.BaseURL,
		"environment", cfg.Environment,
	))

	client, err := posts.New(cfg.Posts)
	if err != nil {
		return err
	}

	ctx := context.Background()
	var result any
	if id != 0 {
		post, err := client.Fetch(ctx, id)
		if err != nil {
			log.WithError(err).Error("fetch post failed", logger.Fields("id", id))
			return err
		}
		result = post
	} else {
		all, err := client.FetchAll(ctx)
		if err != nil {
			log.WithError(err).Error("fetch posts failed")
			return err
		}
		log.Info("fetched posts", logger.Fields("count", len(all)))
		result = all
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
