package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tarancss/adptools/tool"
)

// errToolFailed reports an error response already printed to the user.
var errToolFailed = errors.New("tool call failed")

var rawOutput bool //nolint:gochecknoglobals // cobra flag

// callCmd invokes a single tool and prints its text.
var callCmd = &cobra.Command{ //nolint:gochecknoglobals // cobra command
	Use:   "call <tool> [key=value ...]",
	Short: "Invoke a tool once and print its response",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		targs, err := parseArgs(args[1:])
		if err != nil {
			return err
		}

		svc, err := newService()
		if err != nil {
			return err
		}
		defer svc.close()

		res := svc.d.Dispatch(context.Background(), tool.Request{Name: args[0], Args: targs})

		if rawOutput {
			b, _ := json.MarshalIndent(res, "", "  ")
			fmt.Println(string(b))
		} else if !res.IsError {
			fmt.Println(res.Text())
		}

		if res.IsError {
			fmt.Fprintln(os.Stderr, color.RedString("%s", res.Text()))

			return errToolFailed
		}

		return nil
	},
}

func init() { //nolint:gochecknoinits // cobra wiring
	callCmd.Flags().BoolVarP(&rawOutput, "json", "j", false, "print the whole tool response as JSON")
}

// parseArgs turns key=value pairs into tool arguments. Values are passed as strings.
func parseArgs(kv []string) (map[string]interface{}, error) {
	args := make(map[string]interface{}, len(kv))

	for _, p := range kv {
		k, v, ok := strings.Cut(p, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("argument %q is not in key=value form", p)
		}

		args[k] = v
	}

	return args, nil
}
