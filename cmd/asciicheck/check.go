package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/mhr3/asciitype/ascii"
	"github.com/mhr3/asciitype/utf8"
)

// fileReport is the outcome of checking one input.
type fileReport struct {
	Path  string `json:"path"`
	ASCII bool   `json:"ascii"`
	UTF8  bool   `json:"utf8"`
	Lines int    `json:"lines"`

	// set when ASCII is false
	Offset *int   `json:"offset,omitempty"`
	Byte   string `json:"byte,omitempty"`
	Char   string `json:"char,omitempty"`
}

func (r fileReport) String() string {
	if r.ASCII {
		return fmt.Sprintf("%s: ok, %d lines", r.Path, r.Lines)
	}
	if r.Char != "" {
		return fmt.Sprintf("%s:%d: non-ASCII character %q (%U)", r.Path, *r.Offset, r.Char, []rune(r.Char)[0])
	}
	kind := "not valid UTF-8"
	if r.UTF8 {
		kind = "part of a UTF-8 sequence"
	}
	return fmt.Sprintf("%s:%d: byte %s, %s", r.Path, *r.Offset, r.Byte, kind)
}

func checkData(path string, data []byte) fileReport {
	r := fileReport{Path: path, UTF8: utf8.Valid(data)}

	// decoded as text so that the error names the offending character
	v, err := ascii.FromString(string(data))
	var ve *ascii.ValidationError
	if !errors.As(err, &ve) {
		r.ASCII = true
		for range v.Lines().All() {
			r.Lines++
		}
		return r
	}

	off := ve.Offset
	r.Offset = &off
	r.Byte = fmt.Sprintf("0x%02x", ve.Byte)
	if c, ok := ve.Char(); ok {
		r.Char = string(c)
	}
	return r
}

func newCheckCmd(logger *slog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [files...]",
		Short: "Report the first non-ASCII byte of each input",
		Long: "Check reads each file (stdin when none is given) and reports whether it is pure ASCII.\n" +
			"The exit status is 1 if any input is not.",
		RunE: func(cmd *cobra.Command, args []string) error {
			asJSON, _ := cmd.Flags().GetBool("json")
			verbose, _ := cmd.Flags().GetBool("verbose")
			return runCheck(cmd, logger, args, asJSON, verbose)
		},
	}

	cmd.Flags().Bool("json", false, "print a JSON report")
	cmd.Flags().BoolP("verbose", "v", false, "also report inputs that pass")
	return cmd
}

func runCheck(cmd *cobra.Command, logger *slog.Logger, paths []string, asJSON, verbose bool) error {
	if len(paths) == 0 {
		paths = []string{"-"}
	}

	reports := make([]fileReport, 0, len(paths))
	failed := 0
	for _, p := range paths {
		data, err := readPath(cmd.InOrStdin(), p)
		if err != nil {
			return err
		}
		r := checkData(p, data)
		logger.Debug("checked input", "path", p, "bytes", len(data), "ascii", r.ASCII)
		if !r.ASCII {
			failed++
		}
		reports = append(reports, r)
	}

	out := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(reports); err != nil {
			return err
		}
	} else {
		for _, r := range reports {
			if r.ASCII && !verbose {
				continue
			}
			fmt.Fprintln(out, r)
		}
	}

	if failed > 0 {
		logger.Info("check failed", "inputs", len(paths), "failed", failed)
		return errCheckFailed
	}
	return nil
}

func readPath(stdin io.Reader, p string) ([]byte, error) {
	if p == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(p)
}
