package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mhr3/asciitype/ascii"
)

// readView reads the input named by args and validates it.
func readView(cmd *cobra.Command, args []string) (ascii.View, error) {
	data, err := readInput(cmd, args)
	if err != nil {
		return nil, err
	}
	return ascii.FromBytes(data)
}

func newCaretCmd(logger *slog.Logger) *cobra.Command {
	caretCmd := &cobra.Command{
		Use:   "caret",
		Short: "Convert between raw control characters and caret notation",
	}

	encodeCmd := &cobra.Command{
		Use:   "encode [file]",
		Short: "Write control characters as ^X and a literal caret as ^!",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := readView(cmd, args)
			if err != nil {
				return err
			}
			out := ascii.CaretEncodeView(v)
			logger.Debug("caret encoded", "in", v.Len(), "out", out.Len())
			_, err = cmd.OutOrStdout().Write(out.Bytes())
			return err
		},
	}

	decodeCmd := &cobra.Command{
		Use:   "decode [file]",
		Short: "Turn caret notation back into raw characters",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := readView(cmd, args)
			if err != nil {
				return err
			}
			out, err := ascii.CaretDecodeView(v)
			if err != nil {
				return err
			}
			logger.Debug("caret decoded", "in", v.Len(), "out", out.Len())
			_, err = cmd.OutOrStdout().Write(out.Bytes())
			return err
		},
	}

	caretCmd.AddCommand(encodeCmd, decodeCmd)
	return caretCmd
}

func newCaseCmd(logger *slog.Logger) *cobra.Command {
	caseCmd := &cobra.Command{
		Use:   "case",
		Short: "Change the case of ASCII letters",
	}

	conv := func(name string, f func(ascii.View)) *cobra.Command {
		return &cobra.Command{
			Use:   name + " [file]",
			Short: fmt.Sprintf("Convert letters to %scase", name),
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				data, err := readInput(cmd, args)
				if err != nil {
					return err
				}
				// the input buffer is ours, so it is converted in place
				buf, err := ascii.FromOwnedBytes(data)
				if err != nil {
					return err
				}
				f(buf.View())
				logger.Debug("case converted", "to", name, "len", buf.Len())
				_, err = cmd.OutOrStdout().Write(buf.Bytes())
				return err
			},
		}
	}

	caseCmd.AddCommand(
		conv("upper", ascii.View.MakeUpper),
		conv("lower", ascii.View.MakeLower),
	)
	return caseCmd
}

func newLinesCmd(logger *slog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lines [file]",
		Short: "Print the lines of an ASCII input",
		Long: "Lines splits the input on LF or CRLF and prints one line per row. Control characters\n" +
			"inside a line are shown in caret notation.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reverse, _ := cmd.Flags().GetBool("reverse")
			number, _ := cmd.Flags().GetBool("number")
			trim, _ := cmd.Flags().GetBool("trim")

			v, err := readView(cmd, args)
			if err != nil {
				return err
			}

			it := v.Lines()
			seq := it.All()
			if reverse {
				seq = it.Backward()
			}

			out := ascii.NewBuffer()
			n := 0
			for line := range seq {
				n++
				if trim {
					line = line.Trim()
				}
				if number {
					fmt.Fprintf(out, "%6d\t", n)
				}
				out.PushView(ascii.CaretEncodeView(line).View())
				out.Push(ascii.LineFeed)
			}
			logger.Debug("split lines", "lines", n, "reverse", reverse)

			_, err = cmd.OutOrStdout().Write(out.Bytes())
			return err
		},
	}

	cmd.Flags().BoolP("reverse", "r", false, "print the last line first")
	cmd.Flags().BoolP("number", "n", false, "prefix every line with its number")
	cmd.Flags().Bool("trim", false, "strip leading and trailing whitespace from every line")
	return cmd
}
