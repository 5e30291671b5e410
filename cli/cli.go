package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alexflint/go-arg"
	"github.com/pkg/errors"
	"lbprobe/lbtable"
	"lbprobe/lbtable/lbmainboard"
	"lbprobe/physmem"
)

const (
	ExitOK      = 0
	ExitNoTable = 1
	ExitFatal   = 2
)

type (
	Args struct {
		Mem    string `arg:"--mem,env:LBPROBE_MEM" default:"/dev/mem" help:"memory device to map" placeholder:"PATH"`
		Image  string `arg:"--image,env:LBPROBE_IMAGE" help:"read a raw dump of low memory instead of the device" placeholder:"FILE"`
		Vendor string `help:"override the mainboard vendor" placeholder:"VENDOR"`
		Part   string `help:"override the mainboard part number" placeholder:"PART"`
		Debug  bool   `arg:"--debug,env:LBPROBE_DEBUG" help:"print debug messages"`
		JSON   bool   `arg:"--json" help:"print the result as JSON"`
	}
)

func (Args) Description() string {
	des := strings.Join(
		[]string{
			"Find the LinuxBIOS table in the first megabyte of physical memory",
			"and print the mainboard vendor and part number it declares.",
		},
		"\n",
	)
	des += "\n"
	return des
}

func (a Args) Mapper() physmem.Mapper {
	if a.Image != "" {
		return physmem.Image{Path: a.Image}
	}
	return physmem.DevMem{Path: a.Mem}
}

func (a Args) Override() *lbmainboard.Identity {
	if a.Vendor == "" && a.Part == "" {
		return nil
	}
	return &lbmainboard.Identity{Vendor: a.Vendor, Part: a.Part}
}

func NewLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func printText(stdout io.Writer, result *lbtable.Result) {
	fmt.Fprintf(stdout, "Found LinuxBIOS table at: %08x\n", result.Table.Offset)
	if result.Found {
		fmt.Fprintf(stdout, "vendor id: %s part id: %s\n", result.Discovered.Vendor, result.Discovered.Part)
	}
	if result.Overridden {
		fmt.Fprintf(
			stdout, "overwritten by command line, vendor id: %s part id: %s\n",
			result.Identity.Vendor, result.Identity.Part,
		)
	}
}

func printJSON(stdout io.Writer, result *lbtable.Result) error {
	bs, err := json.MarshalIndent(Report(result), "", "  ")
	if err != nil {
		return errors.Wrap(err, "printJSON error")
	}
	_, err = fmt.Fprintln(stdout, string(bs))
	return err
}

// Run probes memory as configured by args and returns the process exit code.
func Run(args Args, stdout io.Writer, stderr io.Writer) int {
	logger := NewLogger(stderr, args.Debug)
	result, err := lbtable.Discover(
		args.Mapper(),
		lbtable.Options{
			Override: args.Override(),
			Logger:   logger,
		},
	)
	switch {
	case errors.Is(err, lbtable.ErrNoTable):
		if args.JSON {
			if err := printJSON(stdout, nil); err != nil {
				logger.Error("writing report failed", "error", err)
				return ExitFatal
			}
		} else {
			fmt.Fprintln(stdout, "No LinuxBIOS table found.")
		}
		return ExitNoTable
	case err != nil:
		logger.Error("discovery failed", "error", err)
		return ExitFatal
	}

	if args.JSON {
		if err := printJSON(stdout, result); err != nil {
			logger.Error("writing report failed", "error", err)
			return ExitFatal
		}
		return ExitOK
	}
	printText(stdout, result)
	return ExitOK
}

// Execute parses argv and runs the probe. Usage errors exit with ExitFatal
// rather than go-arg's own exit status.
func Execute(argv []string, stdout io.Writer, stderr io.Writer) int {
	args := Args{}
	parser, err := arg.NewParser(arg.Config{Program: "lbprobe"}, &args)
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return ExitFatal
	}
	err = parser.Parse(argv)
	if errors.Is(err, arg.ErrHelp) {
		parser.WriteHelp(stdout)
		return ExitOK
	}
	if err == nil && (args.Vendor == "") != (args.Part == "") {
		err = errors.New("--vendor and --part must be given together")
	}
	if err != nil {
		parser.WriteUsage(stderr)
		fmt.Fprintln(stderr, "error:", err)
		return ExitFatal
	}
	return Run(args, stdout, stderr)
}

func Start() int {
	return Execute(os.Args[1:], os.Stdout, os.Stderr)
}
