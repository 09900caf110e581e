package main

import (
	"fmt"
	"os"

	"github.com/manjulsinghal1410/use-case-maps/internal/cli"
	"github.com/manjulsinghal1410/use-case-maps/internal/config"
	"github.com/manjulsinghal1410/use-case-maps/internal/remote"
	"github.com/manjulsinghal1410/use-case-maps/internal/service"
	"github.com/manjulsinghal1410/use-case-maps/internal/store"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	dataDir, err := config.DataDir()
	if err != nil {
		return err
	}

	local, err := store.Open(dataDir)
	if err != nil {
		return fmt.Errorf("opening local store: %w", err)
	}

	remoteClient := remote.NewClient(config.LoadRemote())
	ids := service.NewIdentifierGenerator(remoteClient)

	app := &cli.App{
		Users:  service.NewUserService(local),
		Plans:  service.NewPlanService(local, remoteClient, ids),
		Remote: remoteClient,
		Interactive: isatty.IsTerminal(os.Stdin.Fd()) ||
			isatty.IsCygwinTerminal(os.Stdin.Fd()),
	}

	return cli.NewRootCmd(app).Execute()
}
