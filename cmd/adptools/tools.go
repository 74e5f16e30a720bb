package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tarancss/adptools/tool"
)

// toolsCmd lists the tools and their arguments.
var toolsCmd = &cobra.Command{ //nolint:gochecknoglobals // cobra command
	Use:   "tools",
	Short: "List the available tools",
	Run: func(cmd *cobra.Command, args []string) {
		for _, t := range tool.Tools() {
			fmt.Printf("%s  %s\n", color.CyanString("%-20s", t.Name), t.Description)

			required := map[string]bool{}
			for _, r := range t.InputSchema.Required {
				required[r] = true
			}

			var params []string

			for name := range t.InputSchema.Properties {
				if required[name] {
					params = append(params, color.YellowString(name+"!"))
				} else {
					params = append(params, name)
				}
			}

			if len(params) > 0 {
				sort.Strings(params)
				fmt.Printf("%22s%s\n", "", strings.Join(params, " "))
			}
		}
	},
}
