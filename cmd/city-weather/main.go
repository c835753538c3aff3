// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

// Package main implements the city-weather command line tool.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/wneessen/city-weather/internal/config"
	"github.com/wneessen/city-weather/internal/logger"
	"github.com/wneessen/city-weather/internal/service"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, os.Interrupt)
	defer cancel()

	// Initialize Logger
	log := logger.New(slog.LevelError)

	confPath := flag.String("config", "", "path to the config file")
	flag.Usage = func() {
		_, _ = fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [-config path] <city name>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	city := strings.TrimSpace(strings.Join(flag.Args(), " "))
	if city == "" {
		flag.Usage()
		return service.ExitFailure
	}

	conf, err := loadConfig(*confPath)
	if err != nil {
		log.Error("failed to load config", logger.Err(err))
		return service.ExitConfiguration
	}
	log = logger.New(conf.LogLevel)

	serv, err := service.New(conf, log)
	if err != nil {
		log.Error("failed to initialize city-weather service", logger.Err(err))
		return service.ExitFailure
	}

	log.Debug("starting city-weather", slog.String("version", version),
		slog.String("commit", commit), slog.String("date", date))
	err = serv.Run(ctx, city)
	if err != nil {
		// Fetch failures were already reported to the user by the service
		log.Debug("city-weather finished with error", logger.Err(err))
		if code := service.ExitCode(err); code != service.ExitFailure {
			return code
		}
		log.Error("failed to run city-weather", logger.Err(err))
		return service.ExitFailure
	}
	return service.ExitOK
}

// loadConfig reads the config file given on the command line, else the one in the user's
// config directory, else defaults and environment only.
func loadConfig(confPath string) (*config.Config, error) {
	if confPath != "" {
		return config.NewFromFile(filepath.Dir(confPath), filepath.Base(confPath))
	}
	if path, file := config.Find(); path != "" && file != "" {
		return config.NewFromFile(path, file)
	}
	return config.New()
}
