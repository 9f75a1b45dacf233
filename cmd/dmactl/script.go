package main

import (
	"bufio"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log"
	"slices"
	"strconv"
	"strings"

	"github.com/clktmr/neorv32/sim"
	"github.com/clktmr/neorv32/soc"
	"github.com/clktmr/neorv32/soc/dma"
	"github.com/clktmr/neorv32/soc/sysinfo"
	"github.com/kballard/go-shellquote"
)

var (
	errUnknownCommand = errors.New("unknown command")
	errUsage          = errors.New("usage")
	errStalled        = errors.New("transfer still busy")
	errExpect         = errors.New("expectation failed")
)

// session is a simulated machine and the drivers operating on it.
type session struct {
	cfg  config
	m    *sim.Machine
	ram  *sim.Region
	dma  *dma.Controller
	info *sysinfo.SysInfo
	out  io.Writer
}

func newSession(cfg config, out io.Writer) *session {
	m := sim.NewMachine()
	if cfg.noDMA {
		m.SysInfo.Features &^= sysinfo.IODMA
	}
	s := &session{
		cfg:  cfg,
		m:    m,
		ram:  m.Memory.Map(soc.Addr(cfg.memBase), int(cfg.memSize)),
		info: sysinfo.New(m.SysInfo),
		out:  out,
	}
	s.dma = dma.New(m.DMA, s.info)
	return s
}

// run executes a script line by line and stops at the first error.
func (s *session) run(name string, r io.Reader) error {
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		if err := s.exec(sc.Text()); err != nil {
			return fmt.Errorf("%s:%d: %w", name, line, err)
		}
	}
	return sc.Err()
}

func (s *session) exec(line string) error {
	args, err := shellquote.Split(line)
	if err != nil {
		return err
	}
	if i := slices.IndexFunc(args, func(arg string) bool { return strings.HasPrefix(arg, "#") }); i >= 0 {
		args = args[:i]
	}
	if len(args) == 0 {
		return nil
	}

	cmd, ok := commands[args[0]]
	if !ok {
		return fmt.Errorf("%w %q", errUnknownCommand, args[0])
	}
	if n := len(args) - 1; n < cmd.minArgs || (cmd.maxArgs >= 0 && n > cmd.maxArgs) {
		return fmt.Errorf("%w: %s %s", errUsage, args[0], cmd.usage)
	}
	if s.cfg.verbose {
		log.Println(shellquote.Join(args...))
	}
	if !s.dma.Available() && cmd.needsDMA {
		return fmt.Errorf("%s: %w", args[0], errNoDMA)
	}
	return cmd.fn(s, args[1:])
}

var errNoDMA = errors.New("dma controller not synthesized")

type command struct {
	usage            string
	minArgs, maxArgs int // maxArgs < 0 for unlimited
	needsDMA         bool
	fn               func(s *session, args []string) error
}

var commands = map[string]command{
	"enable": {"", 0, 0, true, func(s *session, args []string) error {
		s.dma.Enable()
		return nil
	}},
	"disable": {"", 0, 0, true, func(s *session, args []string) error {
		s.dma.Disable()
		return nil
	}},
	"fence": {"on|off", 1, 1, true, cmdFence},
	"fill":  {"addr len byte", 3, 3, false, cmdFill},
	"write": {"addr hexdata", 2, 2, false, cmdWrite},
	"copy":  {"src dst num [b2b|b2uw|b2sw|w2w|srcinc|dstinc|endian...]", 3, -1, true, cmdCopy},
	"auto":  {"src dst num firq [b2b|b2uw|b2sw|w2w|srcinc|dstinc|endian...]", 4, -1, true, cmdAuto},
	"firq":  {"irq", 1, 1, false, cmdFIRQ},
	"tick":  {"[n]", 0, 1, true, cmdTick},
	"run":   {"", 0, 0, true, cmdRun},
	"status": {"", 0, 0, true, func(s *session, args []string) error {
		fmt.Fprintln(s.out, s.dma.Status())
		return nil
	}},
	"done": {"", 0, 0, true, func(s *session, args []string) error {
		fmt.Fprintln(s.out, s.dma.Done())
		return nil
	}},
	"dump":   {"addr len", 2, 2, false, cmdDump},
	"crc":    {"addr len", 2, 2, false, cmdCRC},
	"expect": {"status idle|busy|error-read|error-write | done true|false | crc addr len value", 2, 4, false, cmdExpect},
	"info": {"", 0, 0, false, func(s *session, args []string) error {
		printInfo(s.out, s)
		return nil
	}},
}

func init() {
	commands["help"] = command{"", 0, 0, false, cmdHelp}
}

func cmdHelp(s *session, args []string) error {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		fmt.Fprintf(s.out, "%-8s %s\n", name, commands[name].usage)
	}
	return nil
}

func cmdFence(s *session, args []string) error {
	switch args[0] {
	case "on":
		s.dma.FenceEnable()
	case "off":
		s.dma.FenceDisable()
	default:
		return fmt.Errorf("%w: fence on|off", errUsage)
	}
	return nil
}

func cmdFill(s *session, args []string) error {
	addr, n, err := parseRange(args)
	if err != nil {
		return err
	}
	v, err := strconv.ParseUint(args[2], 0, 8)
	if err != nil {
		return err
	}
	return s.m.Memory.Fill(addr, n, byte(v))
}

func cmdWrite(s *session, args []string) error {
	addr, err := parseAddr(args[0])
	if err != nil {
		return err
	}
	data, err := hex.DecodeString(args[1])
	if err != nil {
		return err
	}
	return s.m.Memory.WriteAt(data, addr)
}

func cmdCopy(s *session, args []string) error {
	src, dst, num, err := parseTransfer(args)
	if err != nil {
		return err
	}
	config, err := parseConfig(args[3:])
	if err != nil {
		return err
	}
	s.dma.Transfer(src, dst, num, config)
	return nil
}

func cmdAuto(s *session, args []string) error {
	src, dst, num, err := parseTransfer(args)
	if err != nil {
		return err
	}
	irq, err := parseIRQ(args[3])
	if err != nil {
		return err
	}
	config, err := parseConfig(args[4:])
	if err != nil {
		return err
	}
	s.dma.TransferAuto(src, dst, num, config, irq)
	return nil
}

func cmdFIRQ(s *session, args []string) error {
	irq, err := parseIRQ(args[0])
	if err != nil {
		return err
	}
	s.m.Raise(irq)
	return nil
}

func cmdTick(s *session, args []string) error {
	n := uint64(1)
	if len(args) > 0 {
		var err error
		if n, err = strconv.ParseUint(args[0], 0, 32); err != nil {
			return err
		}
	}
	moved := 0
	for range n {
		if !s.m.DMA.Tick() {
			break
		}
		moved++
	}
	fmt.Fprintf(s.out, "%d elements\n", moved)
	return nil
}

func cmdRun(s *session, args []string) error {
	n := s.m.DMA.Run(s.cfg.maxTicks)
	fmt.Fprintf(s.out, "%d elements\n", n)
	if s.m.DMA.Busy() {
		return errStalled
	}
	return nil
}

func cmdDump(s *session, args []string) error {
	addr, n, err := parseRange(args)
	if err != nil {
		return err
	}
	if !s.m.Memory.Mapped(addr, n) {
		return sim.ErrBusFault
	}
	data := make([]byte, n)
	if err := s.m.Memory.ReadAt(data, addr); err != nil {
		return err
	}
	fmt.Fprint(s.out, hex.Dump(data))
	return nil
}

func cmdCRC(s *session, args []string) error {
	addr, n, err := parseRange(args)
	if err != nil {
		return err
	}
	sum, err := s.m.Memory.CRC8(addr, n)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "%#02x\n", sum)
	return nil
}

func cmdExpect(s *session, args []string) error {
	var got, want string
	switch args[0] {
	case "status":
		got, want = s.dma.Status().String(), args[1]
	case "done":
		got, want = strconv.FormatBool(s.dma.Done()), args[1]
	case "crc":
		if len(args) != 4 {
			return fmt.Errorf("%w: expect crc addr len value", errUsage)
		}
		addr, n, err := parseRange(args[1:])
		if err != nil {
			return err
		}
		sum, err := s.m.Memory.CRC8(addr, n)
		if err != nil {
			return err
		}
		v, err := strconv.ParseUint(args[3], 0, 8)
		if err != nil {
			return err
		}
		got, want = strconv.Itoa(int(sum)), strconv.Itoa(int(v))
	default:
		return fmt.Errorf("%w: cannot expect %q", errUsage, args[0])
	}
	if got != want {
		return fmt.Errorf("%w: %s is %s, want %s", errExpect, args[0], got, want)
	}
	return nil
}

func parseAddr(s string) (soc.Addr, error) {
	v, err := strconv.ParseUint(s, 0, 32)
	return soc.Addr(v), err
}

func parseRange(args []string) (soc.Addr, int, error) {
	addr, err := parseAddr(args[0])
	if err != nil {
		return 0, 0, err
	}
	n, err := strconv.ParseUint(args[1], 0, 32)
	return addr, int(n), err
}

func parseTransfer(args []string) (src, dst soc.Addr, num uint32, err error) {
	if src, err = parseAddr(args[0]); err != nil {
		return
	}
	if dst, err = parseAddr(args[1]); err != nil {
		return
	}
	n, err := strconv.ParseUint(args[2], 0, 32)
	return src, dst, uint32(n), err
}

// parseIRQ accepts fast interrupts by their line (0-15) or their number
// (16-31).
func parseIRQ(s string) (soc.FIRQ, error) {
	v, err := strconv.ParseUint(s, 0, 8)
	if err != nil {
		return 0, err
	}
	switch {
	case v <= 15:
		return soc.FIRQ0 + soc.FIRQ(v), nil
	case v <= 31:
		return soc.FIRQ(v), nil
	}
	return 0, fmt.Errorf("no such fast interrupt: %d", v)
}

var configOptions = map[string]dma.Config{
	"b2b":      dma.B2B,
	"b2uw":     dma.B2UW,
	"b2sw":     dma.B2SW,
	"w2w":      dma.W2W,
	"srcinc":   dma.SrcInc,
	"srcconst": dma.SrcConst,
	"dstinc":   dma.DstInc,
	"dstconst": dma.DstConst,
	"endian":   dma.Endian,
}

func parseConfig(opts []string) (config dma.Config, err error) {
	for _, opt := range opts {
		c, ok := configOptions[strings.ToLower(opt)]
		if !ok {
			return 0, fmt.Errorf("unknown transfer option %q", opt)
		}
		config |= c
	}
	return
}
