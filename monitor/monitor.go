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

// Package monitor is a line-driven machine code monitor for either CPU. It
// reads commands from an input stream and writes results to an output
// stream, which keeps it scriptable; when the input is an interactive
// terminal the walk command switches to single-keypress stepping.
package monitor

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"

	"github.com/darmod23/chips/curated"
	"github.com/darmod23/chips/hardware/bus"
	"github.com/darmod23/chips/logger"
)

// Monitor is the context for a monitor session.
type Monitor struct {
	cpu CPU
	mem *bus.Memory

	in  io.Reader
	out io.Writer

	// accumulated clock cycles over the session
	clock int
}

// NewMonitor is the preferred method of initialisation for the Monitor
// type.
func NewMonitor(cpu CPU, mem *bus.Memory, in io.Reader, out io.Writer) *Monitor {
	return &Monitor{
		cpu: cpu,
		mem: mem,
		in:  in,
		out: out,
	}
}

// Loop runs the monitor until the quit command or the end of the input
// stream. Command errors are reported to the output stream and do not end
// the session.
func (mon *Monitor) Loop() error {
	scanner := bufio.NewScanner(mon.in)

	for {
		fmt.Fprintf(mon.out, "(%d) > ", mon.clock)

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return curated.Errorf(curated.MonitorError, err)
			}
			return nil
		}

		quit, err := mon.parseCommand(scanner.Text())
		if err != nil {
			fmt.Fprintf(mon.out, "%v\n", err)
		}
		if quit {
			return nil
		}
	}
}

func (mon *Monitor) parseCommand(line string) (bool, error) {
	toks := strings.Fields(strings.ToLower(line))
	if len(toks) == 0 {
		return false, nil
	}

	switch toks[0] {
	case "q", "quit":
		return true, nil

	case "s", "step":
		n := 1
		if len(toks) > 1 {
			var err error
			n, err = strconv.Atoi(toks[1])
			if err != nil {
				return false, curated.Errorf(curated.MonitorError, err)
			}
		}
		for i := 0; i < n; i++ {
			if err := mon.step(); err != nil {
				return false, err
			}
		}

	case "r", "regs":
		fmt.Fprintf(mon.out, "%s\n", mon.cpu.String())

	case "m", "mem":
		if len(toks) < 2 {
			return false, curated.Errorf(curated.MonitorError, "mem requires an address")
		}
		addr, err := strconv.ParseUint(toks[1], 16, 16)
		if err != nil {
			return false, curated.Errorf(curated.MonitorError, err)
		}
		length := 16
		if len(toks) > 2 {
			length, err = strconv.Atoi(toks[2])
			if err != nil {
				return false, curated.Errorf(curated.MonitorError, err)
			}
		}
		mon.dump(uint16(addr), length)

	case "p", "poke":
		if len(toks) < 3 {
			return false, curated.Errorf(curated.MonitorError, "poke requires an address and a value")
		}
		addr, err := strconv.ParseUint(toks[1], 16, 16)
		if err != nil {
			return false, curated.Errorf(curated.MonitorError, err)
		}
		v, err := strconv.ParseUint(toks[2], 16, 8)
		if err != nil {
			return false, curated.Errorf(curated.MonitorError, err)
		}
		mon.mem.Poke(uint16(addr), uint8(v))

	case "reset":
		mon.cpu.Reset()
		fmt.Fprintf(mon.out, "%s\n", mon.cpu.String())

	case "log":
		logger.Tail(mon.out, 10)

	case "viz":
		if len(toks) < 2 {
			return false, curated.Errorf(curated.MonitorError, "viz requires a filename")
		}
		if err := mon.viz(toks[1]); err != nil {
			return false, err
		}

	case "walk":
		if err := mon.walk(); err != nil {
			return false, err
		}

	case "h", "help":
		fmt.Fprint(mon.out, helpText)

	default:
		return false, curated.Errorf(curated.MonitorError, fmt.Sprintf("unrecognised command: %s", toks[0]))
	}

	return false, nil
}

const helpText = `s[tep] [n]      execute n instructions (default 1)
r[egs]          register dump
m[em] addr [n]  dump n bytes of memory (default 16)
p[oke] addr v   write a byte to memory
reset           reset the CPU
log             recent log entries
viz file        write a graph of the CPU state in dot format
walk            single-keypress stepping (interactive terminals only)
q[uit]          end the session
`

func (mon *Monitor) step() error {
	cycles, err := mon.cpu.Step()
	if err != nil {
		return err
	}
	mon.clock += cycles
	fmt.Fprintf(mon.out, "%s [%d cycles]\n", mon.cpu.String(), cycles)
	return nil
}

// dump writes a hex dump of memory to the output stream, sixteen bytes per
// row.
func (mon *Monitor) dump(addr uint16, length int) {
	for length > 0 {
		fmt.Fprintf(mon.out, "%04x:", addr)
		for i := 0; i < 16 && length > 0; i++ {
			fmt.Fprintf(mon.out, " %02x", mon.mem.Peek(addr))
			addr++
			length--
		}
		fmt.Fprintln(mon.out)
	}
}

// viz writes a graph of the live CPU structure in graphviz dot format.
func (mon *Monitor) viz(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf(curated.MonitorError, err)
	}
	defer f.Close()

	memviz.Map(f, mon.cpu)
	return nil
}

// walk steps the CPU one instruction per keypress. any key steps, q returns
// to the command loop. requires the input stream to be an interactive
// terminal.
func (mon *Monitor) walk() error {
	f, ok := mon.in.(*os.File)
	if !ok {
		return curated.Errorf(curated.MonitorError, "walk requires an interactive terminal")
	}

	restore, err := cbreakMode(f)
	if err != nil {
		return curated.Errorf(curated.MonitorError, err)
	}
	defer restore()

	b := make([]byte, 1)
	for {
		if _, err := f.Read(b); err != nil {
			return curated.Errorf(curated.MonitorError, err)
		}
		if b[0] == 'q' {
			return nil
		}
		if err := mon.step(); err != nil {
			return err
		}
	}
}
