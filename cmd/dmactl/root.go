package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

type config struct {
	memBase  uint32
	memSize  uint32
	noDMA    bool
	maxTicks int
	verbose  bool
}

// Environment variables overriding flag defaults, can also be set in .env
var envFlags = map[string]string{
	"mem-base":  "DMACTL_MEM_BASE",
	"mem-size":  "DMACTL_MEM_SIZE",
	"max-ticks": "DMACTL_MAX_TICKS",
}

func newRootCmd() *cobra.Command {
	cfg := &config{}

	root := &cobra.Command{
		Use:   "dmactl",
		Short: "Run DMA controller scripts against a simulated NEORV32",
		Long: `dmactl runs scripts of DMA controller commands against a simulated NEORV32 SoC ` +
			`with a single RAM region. Run "dmactl exec help" for a list of script commands.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return applyEnv(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.Uint32Var(&cfg.memBase, "mem-base", 0x8000_0000, "base address of the simulated RAM")
	flags.Uint32Var(&cfg.memSize, "mem-size", 64*1024, "size of the simulated RAM in bytes")
	flags.BoolVar(&cfg.noDMA, "no-dma", false, "simulate a SoC synthesized without DMA controller")
	flags.IntVar(&cfg.maxTicks, "max-ticks", 1<<24, "maximum number of elements moved by a single run command")
	flags.BoolVarP(&cfg.verbose, "verbose", "v", false, "log each executed command")

	root.AddCommand(newRunCmd(cfg), newExecCmd(cfg), newInfoCmd(cfg))
	return root
}

func newRunCmd(cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:   "run [script...]",
		Short: "Run script files, or stdin if none are given",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := newSession(*cfg, cmd.OutOrStdout())
			if len(args) == 0 {
				return s.run("stdin", cmd.InOrStdin())
			}
			for _, name := range args {
				if err := runFile(s, name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func runFile(s *session, name string) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()
	return s.run(name, f)
}

func newExecCmd(cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:   "exec command...",
		Short: "Run each argument as a script line",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := newSession(*cfg, cmd.OutOrStdout())
			return s.run("args", strings.NewReader(strings.Join(args, "\n")))
		},
	}
}

func newInfoCmd(cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print the simulated system information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := newSession(*cfg, cmd.OutOrStdout())
			printInfo(cmd.OutOrStdout(), s)
			return nil
		},
	}
}

func printInfo(w io.Writer, s *session) {
	fmt.Fprintf(w, "clock    %d Hz\n", s.info.ClockHz())
	fmt.Fprintf(w, "features %v\n", s.info.Features())
	fmt.Fprintf(w, "dma      %v\n", s.dma.Available())
	fmt.Fprintf(w, "ram      %#08x-%#08x\n", s.cfg.memBase, uint64(s.cfg.memBase)+uint64(s.cfg.memSize)-1)
}

// applyEnv sets flags that weren't given on the command line from the
// environment.
func applyEnv(cmd *cobra.Command) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}
	for name, env := range envFlags {
		v, ok := os.LookupEnv(env)
		if !ok || cmd.Flags().Changed(name) {
			continue
		}
		if err := cmd.Flags().Set(name, v); err != nil {
			return fmt.Errorf("%s: %w", env, err)
		}
	}
	return nil
}
