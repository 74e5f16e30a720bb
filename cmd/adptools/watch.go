package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tarancss/adptools/lib/config"
)

// errNoBroker is returned by watch when no message broker is configured.
var errNoBroker = errors.New("no message broker configured, set mbconn or " + config.EnvMbConn)

// watchCmd follows the tool call events published by running servers.
var watchCmd = &cobra.Command{ //nolint:gochecknoglobals // cobra command
	Use:   "watch [pattern]",
	Short: "Follow tool call events from the message broker (pattern: <chain>.<tool>, default #)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pattern := "#"
		if len(args) == 1 {
			pattern = args[0]
		}

		svc, err := newService()
		if err != nil {
			return err
		}
		defer svc.close()

		if svc.mb == nil {
			return errNoBroker
		}

		calls, errs, err := svc.mb.GetCalls(pattern)
		if err != nil {
			return err
		}

		sigchan := make(chan os.Signal, 1)
		signal.Notify(sigchan, os.Interrupt, syscall.SIGTERM)

		for {
			select {
			case c, ok := <-calls:
				if !ok {
					return nil
				}

				outcome := color.GreenString("ok")
				if c.IsError {
					outcome = color.RedString("error: %s", c.Error)
				}

				fmt.Printf("%s %-7s %-20s upstream:%d skipped:%d %dms %s %s\n", c.TS.Format("15:04:05.000"), c.Chain,
					c.Tool, c.Upstream, c.Skipped, c.Millis, c.Args, outcome)
			case err := <-errs:
				log.Printf("Error reading tool call event:%v", err)
			case <-sigchan:
				return nil
			}
		}
	},
}
