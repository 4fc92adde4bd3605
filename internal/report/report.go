package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/groob/plist"
	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"

	"github.com/tusharlock10/sipxnu/internal/sip"
	"github.com/tusharlock10/sipxnu/internal/xnu"
)

// Format selects how a Status is rendered.
type Format string

const (
	FormatText  Format = "text"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatPlist Format = "plist"
)

// Formats lists the accepted format names.
var Formats = []Format{FormatText, FormatJSON, FormatYAML, FormatPlist}

// ParseFormat maps a command-line value to a Format.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown output format %q (want one of text, json, yaml, plist)", s)
}

// Options carries extra context for the text format.
type Options struct {
	// Product is the OS product line, e.g. "darwin 14.4.1". Omitted when empty.
	Product string
}

// FlagInfo is one row of the static flag table.
type FlagInfo struct {
	Name string `json:"name" yaml:"name" plist:"name"`
	Mask uint32 `json:"mask" yaml:"mask" plist:"mask"`
}

// Write renders st to w.
func Write(w io.Writer, format Format, st sip.Status, opts Options) error {
	switch format {
	case FormatText:
		return writeText(w, st, opts)
	default:
		return encode(w, format, st)
	}
}

// WriteFlags renders the table of known SIP flags.
func WriteFlags(w io.Writer, format Format) error {
	infos := make([]FlagInfo, 0, len(sip.Flags))
	for _, f := range sip.Flags {
		infos = append(infos, FlagInfo{Name: f.String(), Mask: uint32(f)})
	}

	if format != FormatText {
		return encode(w, format, infos)
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Flag", "Mask"})
	table.SetAutoFormatHeaders(false)
	table.SetBorder(true)
	for _, info := range infos {
		table.Append([]string{info.Name, fmt.Sprintf("0x%03x", info.Mask)})
	}
	table.Render()
	return nil
}

func encode(w io.Writer, format Format, v any) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case FormatPlist:
		data, err := plist.MarshalIndent(v, "  ")
		if err != nil {
			return fmt.Errorf("encode plist: %w", err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return err
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func writeText(w io.Writer, st sip.Status, opts Options) error {
	kernel := st.Kernel.String()
	if name := xnu.ReleaseName(st.Kernel.Major); name != "" {
		kernel += " (" + name + ")"
	}

	fmt.Fprintf(w, "SIP value: %d (%#x)\n", st.Value, st.Value)
	fmt.Fprintf(w, "Kernel:    %s\n", kernel)
	if opts.Product != "" {
		fmt.Fprintf(w, "Product:   %s\n", opts.Product)
	}
	fmt.Fprintln(w)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Flag", "Mask", "Allowed"})
	table.SetAutoFormatHeaders(false)
	table.SetBorder(true)
	for _, f := range sip.Flags {
		table.Append([]string{f.String(), fmt.Sprintf("0x%03x", uint32(f)), yesNo(st.Breakdown[f.String()])})
	}
	table.Render()

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Can edit root:            %s\n", yesNo(st.CanEditRoot))
	fmt.Fprintf(w, "Can write NVRAM:          %s\n", yesNo(st.CanWriteNVRAM))
	_, err := fmt.Fprintf(w, "Can load arbitrary kexts: %s\n", yesNo(st.CanLoadArbitraryKexts))
	return err
}

func yesNo(b bool) string {
	if b {
		return color.GreenString("true")
	}
	return color.RedString("false")
}
