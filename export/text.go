package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/katalvlaran/pkgorder/resolver"
)

// RankingTable renders rankings as a rounded table with a total footer.
func RankingTable(w io.Writer, rankings []resolver.Ranking) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"#", "PACKAGE", "DEPENDENCIES"})
	for i, r := range rankings {
		t.AppendRow(table.Row{i + 1, r.Package, r.Dependencies})
	}
	t.AppendFooter(table.Row{"", "TOTAL", len(rankings)})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight, AlignFooter: text.AlignRight},
	})
	t.Render()
}

// WriteOrder writes one package per line, numbered from 1.
func WriteOrder(w io.Writer, order []string) error {
	for i, p := range order {
		if _, err := fmt.Fprintf(w, "%d. %s\n", i+1, p); err != nil {
			return err
		}
	}

	return nil
}

// WriteList writes one package per line.
func WriteList(w io.Writer, pkgs []string) error {
	for _, p := range pkgs {
		if _, err := fmt.Fprintln(w, p); err != nil {
			return err
		}
	}

	return nil
}

// WriteChain writes a dependency chain on one line as "A -> B -> D".
func WriteChain(w io.Writer, chain []string) error {
	_, err := fmt.Fprintln(w, strings.Join(chain, " -> "))

	return err
}

// WriteCycles writes each cycle on its own line as "A -> B -> A".
func WriteCycles(w io.Writer, cycles [][]string) error {
	for _, c := range cycles {
		if err := WriteChain(w, c); err != nil {
			return err
		}
	}

	return nil
}
