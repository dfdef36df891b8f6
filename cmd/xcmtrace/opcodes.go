package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	v2 "github.com/danmuck/xcmtrace/internal/xcm/v2"
	v3 "github.com/danmuck/xcmtrace/internal/xcm/v3"
	"github.com/spf13/cobra"
)

func newOpcodesCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "opcodes [v2|v3]",
		Short:     "List instruction discriminants and tags",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"v2", "v3"},
		RunE: func(cmd *cobra.Command, args []string) error {
			versions := []string{"v2", "v3"}
			if len(args) == 1 {
				versions = []string{strings.ToLower(args[0])}
			}
			return writeOpcodes(cmd.OutOrStdout(), versions)
		},
	}
}

func writeOpcodes(w io.Writer, versions []string) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, version := range versions {
		switch version {
		case "v2":
			for i := 0; i < v2.OpcodeCount; i++ {
				fmt.Fprintf(tw, "v2\t%d\t%s\n", i, v2.Opcode(i))
			}
		case "v3":
			for i := 0; i < v3.OpcodeCount; i++ {
				fmt.Fprintf(tw, "v3\t%d\t%s\n", i, v3.Opcode(i))
			}
		default:
			return fmt.Errorf("unknown version %q (supported: v2, v3)", version)
		}
	}
	return tw.Flush()
}
