package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/namezis/cmsis-go/cmsis"
)

func newLookupCmd() *cobra.Command {
	var flags bool
	cmd := &cobra.Command{
		Use:   "lookup CODE...",
		Short: "Describe one or more status codes",
		Long: "Describe one or more status codes. CODE may be decimal, negative, " +
			"or 0x-prefixed hex. Use --flags for codes returned by the " +
			"osThreadFlags*/osEventFlags* calls. Put negative codes after --.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat := cmsis.OSCategory()
			if flags {
				cat = cmsis.FlagsCategory()
			}
			for _, arg := range args {
				code, err := parseCode(arg)
				if err != nil {
					return err
				}
				slog.Debug("lookup", "category", cat.Name(), "code", code)
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s %s: %s\n",
					cat.Name(), arg, codeName(cat, code), cat.Message(code))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&flags, "flags", false, "interpret codes as flags errors")
	return cmd
}

func newTableCmd() *cobra.Command {
	var category, output string
	cmd := &cobra.Command{
		Use:   "table",
		Short: "List every defined code",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var ds []cmsis.Descriptor
			switch category {
			case "os":
				ds = cmsis.Descriptors(cmsis.OSCategory())
			case "flags":
				ds = cmsis.Descriptors(cmsis.FlagsCategory())
			case "all":
				ds = append(cmsis.Descriptors(cmsis.OSCategory()), cmsis.Descriptors(cmsis.FlagsCategory())...)
			default:
				return errors.Errorf("unknown category %q (want os, flags or all)", category)
			}
			slog.Debug("table", "category", category, "entries", len(ds), "output", output)
			return writeDescriptors(cmd.OutOrStdout(), ds, output)
		},
	}
	cmd.Flags().StringVar(&category, "category", "all", "os, flags or all")
	cmd.Flags().StringVarP(&output, "output", "o", "text", "text, json or yaml")
	return cmd
}

func newDiagCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diag OP ID",
		Short: "Format the op(id) prefix used in RTOS error messages",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseUint(args[1], 0, 64)
			if err != nil {
				return errors.Wrapf(err, "invalid object id %q", args[1])
			}
			fmt.Fprintln(cmd.OutOrStdout(), cmsis.FormatDiagnostic(args[0], cmsis.Handle(id)))
			return nil
		},
	}
}

func parseCode(s string) (int, error) {
	v, err := strconv.ParseInt(s, 0, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid code %q", s)
	}
	return int(v), nil
}

func codeName(cat cmsis.Category, code int) string {
	if cat == cmsis.FlagsCategory() {
		// Same range the flags category accepts; wider values are unknown.
		if int64(code) < math.MinInt32 || int64(code) > math.MaxUint32 {
			return "-"
		}
		return cmsis.FlagsError(uint32(code)).String()
	}
	if int64(code) != int64(int32(code)) {
		return "-"
	}
	return cmsis.Status(code).String()
}

func writeDescriptors(w io.Writer, ds []cmsis.Descriptor, output string) error {
	switch output {
	case "text":
		for _, d := range ds {
			if d.Category == cmsis.FlagsCategory().Name() {
				fmt.Fprintf(w, "%-10s %#010x %-26s %s\n", d.Category, d.Code, d.Name, d.Message)
			} else {
				fmt.Fprintf(w, "%-10s %10d %-26s %s\n", d.Category, d.Code, d.Name, d.Message)
			}
		}
		return nil
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(ds), "encode json")
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(ds); err != nil {
			return errors.Wrap(err, "encode yaml")
		}
		return errors.Wrap(enc.Close(), "encode yaml")
	default:
		return errors.Errorf("unknown output format %q (want text, json or yaml)", output)
	}
}
