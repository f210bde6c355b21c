package main

import (
	"fmt"
	"text/tabwriter"
	"unsafe"

	"github.com/pavanmanishd/rawmem"
	"github.com/spf13/cobra"
)

type factsRow struct {
	name  string
	facts rawmem.Facts
}

func factsTable() []factsRow {
	return []factsRow{
		{"int", rawmem.FactsOf[int]()},
		{"int64", rawmem.FactsOf[int64]()},
		{"float64", rawmem.FactsOf[float64]()},
		{"byte", rawmem.FactsOf[byte]()},
		{"rune", rawmem.FactsOf[rune]()},
		{"bool", rawmem.FactsOf[bool]()},
		{"*int", rawmem.FactsOf[*int]()},
		{"unsafe.Pointer", rawmem.FactsOf[unsafe.Pointer]()},
		{"string", rawmem.FactsOf[string]()},
		{"[]byte", rawmem.FactsOf[[]byte]()},
		{"sample", rawmem.FactsOf[sample]()},
		{"vec3", rawmem.FactsOf[vec3]()},
	}
}

func newFactsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "facts",
		Short: "Print the capability facts of common element types",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "TYPE\tDEFAULT\tCOPY\tASSIGN\tDESTROY\tPOD")
			for _, r := range factsTable() {
				f := r.facts
				fmt.Fprintf(w, "%s\t%t\t%t\t%t\t%t\t%t\n",
					r.name, f.TrivialDefault, f.TrivialCopy, f.TrivialAssign, f.TrivialDestroy, f.POD)
			}
			return w.Flush()
		},
	}
}
