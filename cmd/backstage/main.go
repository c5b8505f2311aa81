package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fancyactive/backstage/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override backstage config path (optional)")
	dataPath := flag.String("data", "", "override sales CSV path (optional)")
	theme := flag.String("theme", "", "override UI theme for this session (optional)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{ConfigPath: *configPath, DataPath: *dataPath, Theme: *theme}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "backstage: %v\n", err)
		return 1
	}
	return 0
}
