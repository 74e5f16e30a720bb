package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/tarancss/adptools/lib/config"
	"github.com/tarancss/adptools/server"
)

// serveCmd runs the configured transport until it is stopped.
var serveCmd = &cobra.Command{ //nolint:gochecknoglobals // cobra command
	Use:   "serve",
	Short: "Serve the tools over the configured transport (stdio or http)",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := newService()
		if err != nil {
			return err
		}
		defer svc.close()

		if monitor {
			serveMetrics()
		}

		switch svc.conf.Transport {
		case config.TransportHTTP:
			return serveHTTP(svc)
		case config.TransportStdio:
			log.Println("Serving MCP over stdio")

			return server.ServeStdio(svc.d, version)
		}

		return fmt.Errorf("%w: %s", config.ErrTransport, svc.conf.Transport)
	},
}

func serveHTTP(svc *service) error {
	s := server.New(svc.d, svc.db, svc.conf.AuthToken)

	// capture CTRL+C or docker's SIGTERM for gracious exit
	go func() {
		sigchan := make(chan os.Signal, 1)
		signal.Notify(sigchan, os.Interrupt, syscall.SIGTERM)
		<-sigchan
		log.Println("Program killed !")
		s.Stop()
	}()

	// init RESTful API, wait for its return and log response
	err := s.Init(svc.conf.RestfulEndpoint, svc.conf.Port, svc.conf.SSLPort, svc.conf.SSLCert, svc.conf.SSLKey)
	log.Printf("Tool server stopped, err:%v\n", err)

	return err
}
