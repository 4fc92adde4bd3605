package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/tusharlock10/sipxnu/internal/config"
	"github.com/tusharlock10/sipxnu/internal/host"
	"github.com/tusharlock10/sipxnu/internal/report"
	"github.com/tusharlock10/sipxnu/internal/sip"
)

// version is set at build time via -ldflags "-X main.version=<version>"
var version string

// exitDenied is returned by "sipxnu check" when a requested capability is blocked.
const exitDenied = 3

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		var denied *deniedError
		if errors.As(err, &denied) {
			fmt.Fprintln(os.Stderr, denied)
			os.Exit(exitDenied)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "sipxnu",
		Short:         "Report the System Integrity Protection status of the running XNU kernel",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	rootCmd.PersistentFlags().Bool("debug", false, "Print every step of the query to stderr")
	rootCmd.PersistentFlags().StringP("format", "f", string(report.FormatText), "Output format: text, json, yaml or plist")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().String("libsystem", sip.LibSystemPath, "Path of the library exporting csr_get_active_config")

	rootCmd.AddCommand(newFlagsCmd(), newCheckCmd())
	return rootCmd
}

func newFlagsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "flags",
		Short: "List the known SIP flags and their masks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			format, _ := report.ParseFormat(cfg.Format)
			return report.WriteFlags(cmd.OutOrStdout(), format)
		},
	}
}

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Exit non-zero unless every requested capability is allowed",
		Long: "Queries SIP and exits 0 when every requested capability is allowed.\n" +
			"Denied capabilities are listed on stderr and the exit status is 3.",
		Args: cobra.NoArgs,
		RunE: runCheck,
	}
	cmd.Flags().Bool("edit-root", false, "Require a writable root volume")
	cmd.Flags().Bool("write-nvram", false, "Require unrestricted NVRAM writes")
	cmd.Flags().Bool("load-kexts", false, "Require loading of untrusted kexts")
	cmd.Flags().StringSlice("flag", nil, "Require a SIP flag by name, e.g. task_for_pid (repeatable)")
	return cmd
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	debug, _ := cmd.Flags().GetBool("debug")
	format, _ := cmd.Flags().GetString("format")
	noColor, _ := cmd.Flags().GetBool("no-color")
	libSystem, _ := cmd.Flags().GetString("libsystem")

	cfg := &config.Config{
		Debug:         debug,
		Format:        format,
		NoColor:       noColor,
		LibSystemPath: libSystem,
		Version:       version,
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if cfg.NoColor {
		color.NoColor = true
	}
	return cfg, nil
}

func query(cmd *cobra.Command, cfg *config.Config) (sip.Status, error) {
	reader := sip.NewReader(host.System{}, sip.NewLibSystemAccessor(cfg.LibSystemPath), sip.Options{
		Debug:     cfg.Debug,
		LogOutput: cmd.ErrOrStderr(),
	})
	st, err := reader.Query()
	if err != nil {
		return sip.Status{}, fmt.Errorf("could not determine SIP status: %w", err)
	}
	return st, nil
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	st, err := query(cmd, cfg)
	if err != nil {
		return err
	}

	format, _ := report.ParseFormat(cfg.Format)
	var opts report.Options
	if format == report.FormatText {
		if p, err := host.GetProduct(); err == nil {
			opts.Product = strings.TrimSpace(p.Platform + " " + p.Version)
		} else if cfg.Debug {
			fmt.Fprintf(cmd.ErrOrStderr(), "%sproduct version unavailable: %v\n", sip.LogTag, err)
		}
	}
	return report.Write(cmd.OutOrStdout(), format, st, opts)
}

// deniedError lists the capabilities a check found blocked.
type deniedError struct {
	denied []string
}

func (e *deniedError) Error() string {
	return "denied: " + strings.Join(e.denied, ", ")
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	var required []sip.Flag
	names, _ := cmd.Flags().GetStringSlice("flag")
	for _, name := range names {
		f, err := sip.ParseFlag(name)
		if err != nil {
			return err
		}
		required = append(required, f)
	}

	editRoot, _ := cmd.Flags().GetBool("edit-root")
	writeNVRAM, _ := cmd.Flags().GetBool("write-nvram")
	loadKexts, _ := cmd.Flags().GetBool("load-kexts")
	if len(required) == 0 && !editRoot && !writeNVRAM && !loadKexts {
		return errors.New("nothing to check: pass --edit-root, --write-nvram, --load-kexts or --flag")
	}

	st, err := query(cmd, cfg)
	if err != nil {
		return err
	}

	return evaluate(st, required, editRoot, writeNVRAM, loadKexts)
}

func evaluate(st sip.Status, required []sip.Flag, editRoot, writeNVRAM, loadKexts bool) error {
	var denied []string
	if editRoot && !st.CanEditRoot {
		denied = append(denied, "edit root")
	}
	if writeNVRAM && !st.CanWriteNVRAM {
		denied = append(denied, "write NVRAM")
	}
	if loadKexts && !st.CanLoadArbitraryKexts {
		denied = append(denied, "load arbitrary kexts")
	}
	for _, f := range required {
		if !st.Allows(f) {
			denied = append(denied, f.String())
		}
	}
	if len(denied) > 0 {
		return &deniedError{denied: denied}
	}
	return nil
}
