package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridsnake/server"
)

var listenAddr string

func serveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "serve the solver over HTTP",
		Run:   runServe,
	}
	cmd.Flags().StringVarP(&listenAddr, "listen", "l", ":8080", "listen address")

	return cmd
}

func runServe(cmd *cobra.Command, args []string) {
	addr := listenAddr
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}
	logrus.Info("listening on ", addr)
	if err := server.NewRouter().Run(addr); err != nil {
		logrus.Fatal(err)
	}
}
