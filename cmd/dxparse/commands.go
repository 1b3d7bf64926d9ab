/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package main

import (
	"fmt"
	"io"
	"strings"

	"dirpx.dev/dxparse/dxcore/errors"
	"dirpx.dev/dxparse/dxcore/grid"
	"dirpx.dev/dxparse/dxcore/model"
	"dirpx.dev/dxparse/dxcore/parse"
	"dirpx.dev/dxparse/dxcore/template"
	"dirpx.dev/dxparse/internal/suite"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func (a *app) cmdDemo() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "print a few example parses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return demo(a.out)
		},
	}
}

func demo(w io.Writer) error {
	var lines []string
	show := func(ok bool, values ...any) {
		if !ok {
			lines = append(lines, "no match")
			return
		}
		lines = append(lines, strings.TrimSuffix(fmt.Sprintln(values...), "\n"))
	}

	n, words, ok := parse.Parse2("testing 12 and, all, the rest", "testing ",
		parse.Until(parse.U32, " "),
		parse.Until(parse.CSV(parse.PassStr), " rest"))
	show(ok, n, words)

	list, ok := parse.Parse1("test 12,11, 10", "test ",
		parse.Rest(parse.CSV(parse.U32)))
	show(ok, list)

	list, ok = parse.Parse1("test 12,11, 10;", "test ",
		parse.Until(parse.CSV(parse.U32), ";"))
	show(ok, list)

	list, n, ok = parse.Parse2("test 12, 11,10; 12 ", "test ",
		parse.Until(parse.CSV(parse.U32), "; "),
		parse.Until(parse.U32, " "))
	show(ok, list, n)

	_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")
	return err
}

func (a *app) cmdParse() *cobra.Command {
	var src string
	var table bool
	addFlags := func(cmd *cobra.Command) {
		cmd.Flags().StringVarP(&src, "template", "t", src, "template to run")
		cmd.Flags().BoolVar(&table, "table", table, "print results as a table")
		_ = cmd.MarkFlagRequired("template")
	}
	var cmd = &cobra.Command{
		Use:   "parse --template <template> <input>...",
		Short: "run a template against each input",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tmpl, err := template.Spec(src).Compile()
			if err != nil {
				return err
			}
			a.logger.Debug("compiled template", "template", tmpl.String(), "values", tmpl.Len())

			rows := make([][]string, 0, len(args))
			failed := 0
			for _, input := range args {
				values, err := suite.Run(tmpl, input)
				if err != nil {
					a.logger.Warn("no match", "input", input, "error", err)
					failed++
					cells := make([]string, tmpl.Len())
					cells[0] = "<no match>"
					rows = append(rows, append([]string{input}, cells...))
					continue
				}
				rows = append(rows, append([]string{input}, template.FormatAll(values)...))
			}

			if table {
				err = a.writeTable(tmpl.Len(), rows)
			} else {
				err = a.writeLines(rows)
			}
			if err != nil {
				return err
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d inputs did not match", failed, len(args))
			}
			return nil
		},
	}
	addFlags(cmd)
	return cmd
}

func (a *app) writeLines(rows [][]string) error {
	for _, row := range rows {
		if _, err := fmt.Fprintln(a.out, strings.Join(row[1:], "\t")); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) writeTable(n int, rows [][]string) error {
	table := tablewriter.NewTable(a.out,
		tablewriter.WithRenderer(
			renderer.NewBlueprint(tw.Rendition{Symbols: tw.NewSymbols(tw.StyleASCII)})),
		tablewriter.WithHeaderAlignment(tw.AlignLeft),
		tablewriter.WithHeaderAutoFormat(tw.Off),
	)
	table.Header(append([]string{"input"}, lo.Times(n, func(i int) string { return fmt.Sprintf("$%d", i+1) })...))
	for _, row := range rows {
		if err := table.Append(row); err != nil {
			return err
		}
	}
	return table.Render()
}

func (a *app) cmdCheck() *cobra.Command {
	var cmd = &cobra.Command{
		Use:   "check <suite.yaml>",
		Short: "run a suite of template cases",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := suite.Load(a.fs, args[0])
			if err != nil {
				return err
			}

			results := s.Run()
			for _, r := range results {
				status := "PASS"
				if !r.Passed {
					status = "FAIL"
					a.logger.Warn("case failed", "case", r.Case.Redacted(), "got", r.Got, "want", r.Case.Want, "error", r.Err)
				}
				if _, err := fmt.Fprintf(a.out, "%s %s\n", status, r.Case.Name); err != nil {
					return err
				}
			}

			failed := suite.Failed(results)
			a.logger.Info("suite finished", "suite", s.Name, "cases", len(results), "failed", len(failed))
			if len(failed) > 0 {
				return fmt.Errorf("%d of %d cases failed", len(failed), len(results))
			}
			return nil
		},
	}
	return cmd
}

func (a *app) cmdGrid() *cobra.Command {
	var n grid.Neighbourhood
	var at string
	output := "text"
	addFlags := func(cmd *cobra.Command) {
		cmd.Flags().Var(&n, "neighbourhood", "neighbourhood for --at (von-neumann, moore)")
		cmd.Flags().StringVar(&at, "at", at, "list the neighbours of the cell at x,y")
		cmd.Flags().StringVarP(&output, "output", "o", output, "output format (text, json, yaml)")
	}
	var cmd = &cobra.Command{
		Use:   "grid <file>",
		Short: "load a character grid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGrid(args[0])
			if err != nil {
				return err
			}
			a.logger.Debug("loaded grid", "path", args[0], "grid", g.Redacted())

			if at != "" {
				x, y, ok := parse.Parse2(at, "",
					parse.Until(parse.Trim(parse.Int), ","),
					parse.Rest(parse.Trim(parse.Int)))
				if !ok {
					return &errors.ParseError{Type: "Pos", Value: at}
				}
				p := grid.Pos{X: x, Y: y}
				if !g.Contains(p) {
					return fmt.Errorf("grid: %v is outside %s", p, g.Redacted())
				}
				for _, q := range g.Adjacent(p, n) {
					v, _ := g.Get(q)
					if _, err := fmt.Fprintf(a.out, "%v %c\n", q, v); err != nil {
						return err
					}
				}
				return nil
			}

			var data []byte
			switch output {
			case "json":
				data, err = model.ToJSON(g)
				data = append(data, '\n')
			case "yaml":
				data, err = model.ToYAML(g)
			case "text":
				data = []byte(g.String())
			default:
				return &errors.ValidationError{Type: "Output", Reason: "unknown format", Value: output}
			}
			if err != nil {
				return err
			}
			_, err = a.out.Write(data)
			return err
		},
	}
	addFlags(cmd)
	return cmd
}

// loadGrid reads a grid of characters and reports ragged lines as an error.
func (a *app) loadGrid(path string) (g *grid.Grid[rune], err error) {
	defer func() {
		if v := recover(); v != nil {
			verr, ok := v.(*errors.ValidationError)
			if !ok {
				panic(v)
			}
			g, err = nil, fmt.Errorf("%s: %w", path, verr)
		}
	}()
	return grid.LoadFile(a.fs, path, func(r rune) rune { return r })
}
