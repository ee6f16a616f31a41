// This file is part of Chips.
//
// Chips is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Chips is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Chips.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/darmod23/chips/curated"
	"github.com/darmod23/chips/hardware/bus"
	"github.com/darmod23/chips/hardware/m6502"
	"github.com/darmod23/chips/hardware/z80"
	"github.com/darmod23/chips/logger"
	"github.com/darmod23/chips/monitor"
	"github.com/darmod23/chips/statsview"
	"github.com/darmod23/chips/version"
)

type options struct {
	cpu    string
	origin string
	cycles int
	stats  bool
	log    bool
}

func main() {
	if err := rootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "* %v\n", err)
		os.Exit(10)
	}
}

func rootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           version.ApplicationName,
		Short:         "Cycle accurate emulation of the 6502 and Z80 processors",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&opts.cpu, "cpu", "6502", "CPU to emulate (6502 or z80)")
	root.PersistentFlags().StringVar(&opts.origin, "origin", "0000", "load address of the binary image (hex)")
	root.PersistentFlags().BoolVar(&opts.log, "log", false, "echo log entries to stderr")

	run := &cobra.Command{
		Use:   "run [binary image]",
		Short: "Run a binary image",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runImage(opts, args[0])
		},
	}
	run.Flags().IntVar(&opts.cycles, "cycles", 1000000, "number of clock cycles to run for")
	run.Flags().BoolVar(&opts.stats, "stats", statsview.Available(), "run stats server")
	root.AddCommand(run)

	mon := &cobra.Command{
		Use:   "monitor [binary image]",
		Short: "Run the machine code monitor",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			image := ""
			if len(args) > 0 {
				image = args[0]
			}
			return runMonitor(opts, image)
		},
	}
	root.AddCommand(mon)

	ver := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(_ *cobra.Command, _ []string) {
			vers, rev, release := version.Version()
			fmt.Println(vers)
			if !release {
				fmt.Println(rev)
			}
		},
	}
	root.AddCommand(ver)

	return root
}

// prepare builds the memory and CPU described by the command line options.
// an empty image string skips the load.
func prepare(opts *options, image string) (monitor.CPU, *bus.Memory, error) {
	if opts.log {
		logger.SetEcho(os.Stderr)
	}

	origin64, err := strconv.ParseUint(opts.origin, 16, 16)
	if err != nil {
		return nil, nil, curated.Errorf("invalid origin: %v", err)
	}
	origin := uint16(origin64)

	mem := bus.NewMemory()
	if image != "" {
		if err := mem.LoadFile(image, origin); err != nil {
			return nil, nil, err
		}
	}

	switch opts.cpu {
	case "6502":
		// point the reset vector at the image
		mem.Poke(m6502.ResetVector, uint8(origin))
		mem.Poke(m6502.ResetVector+1, uint8(origin>>8))

		mc := m6502.NewM6502(mem.TickM6502)
		mc.Reset()
		return monitor.WrapM6502(mc), mem, nil

	case "z80":
		mc := z80.NewZ80(mem.TickZ80)
		mc.PC = origin
		return monitor.WrapZ80(mc), mem, nil
	}

	return nil, nil, curated.Errorf("unsupported cpu: %v", opts.cpu)
}

func runImage(opts *options, image string) error {
	cpu, _, err := prepare(opts, image)
	if err != nil {
		return err
	}

	if opts.stats {
		statsview.Launch(os.Stdout)
	}

	total := 0
	for total < opts.cycles {
		cycles, err := cpu.Step()
		if err != nil {
			return err
		}
		total += cycles
	}

	fmt.Printf("%s\n%d cycles\n", cpu.String(), total)
	return nil
}

func runMonitor(opts *options, image string) error {
	cpu, mem, err := prepare(opts, image)
	if err != nil {
		return err
	}

	return monitor.NewMonitor(cpu, mem, os.Stdin, os.Stdout).Loop()
}
