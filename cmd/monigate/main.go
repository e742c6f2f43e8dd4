// Package main boots the monigate gateway.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/monigate/monigate/version"
)

var configPath string

func main() {
	root := &cobra.Command{
		Use:   "monigate",
		Short: "Query gateway for upstream monitoring APIs",
		Long: "monigate fronts an alerts source and a metrics source and adds\n" +
			"ad-hoc filtering, sorting, projection and pagination over their\n" +
			"result sets.",
	}
	root.PersistentFlags().StringVarP(&configPath, "conf", "c", "", "path to config file, e.g. ./config.yaml")

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP gateway",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, cleanup, err := NewApp(configPath)
			if err != nil {
				return err
			}
			defer cleanup()
			return app.Run()
		},
	}

	ver := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version.GetVersionInfo().String())
		},
	}

	root.AddCommand(serve, ver)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "monigate: %v\n", err)
		os.Exit(1)
	}
}
