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

// Command dxparse runs parse templates against text from the command line.
//
//	dxparse demo
//	dxparse parse --template '"move ", u8, " to ", u8, ""' "move 1 to 2"
//	dxparse check testdata/suite.yaml
//	dxparse grid --neighbourhood moore --at 1,1 map.txt
//	dxparse version
package main

import (
	"io"
	"log/slog"
	"os"

	"dirpx.dev/dxparse/dxcore/model/semver"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var version = semver.MustParseVersion("v0.3.0")

// app carries what every command needs. Commands read files through fs and
// write results to out; logs go to the command's stderr.
type app struct {
	fs     afero.Fs
	out    io.Writer
	logger *slog.Logger
}

func main() {
	if err := newRootCmd(afero.NewOsFs(), os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(fs afero.Fs, out io.Writer) *cobra.Command {
	a := &app{fs: fs, out: out, logger: slog.New(slog.DiscardHandler)}

	logLevel, logFormat := "info", "text"
	addFlags := func(cmd *cobra.Command) {
		cmd.PersistentFlags().StringVar(&logLevel, "log-level", logLevel, "log level (debug, info, warn, error)")
		cmd.PersistentFlags().StringVar(&logFormat, "log-format", logFormat, "log format (text, json)")
	}
	var cmdRoot = &cobra.Command{
		Use:          "dxparse",
		Short:        "type-directed string parsing",
		Long:         `Compile parse templates and run them against text, suites and grids.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.logger = newLogger(logLevel, logFormat, cmd.ErrOrStderr())
			return nil
		},
	}
	addFlags(cmdRoot)

	cmdRoot.AddCommand(a.cmdDemo())
	cmdRoot.AddCommand(a.cmdParse())
	cmdRoot.AddCommand(a.cmdCheck())
	cmdRoot.AddCommand(a.cmdGrid())
	cmdRoot.AddCommand(a.cmdVersion())
	return cmdRoot
}

func (a *app) cmdVersion() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "display the application version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := io.WriteString(a.out, "dxparse "+version.String()+"\n")
			return err
		},
	}
}

// newLogger builds the slog logger selected by the --log-level and
// --log-format flags. Unknown levels fall back to info, unknown formats to
// text.
func newLogger(levelStr, formatStr string, outW io.Writer) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if formatStr == "json" {
		handler = slog.NewJSONHandler(outW, handlerOpts)
	} else {
		handler = slog.NewTextHandler(outW, handlerOpts)
	}
	return slog.New(handler)
}
