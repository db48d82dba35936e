package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/npillmayer/rbset"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

// main() starts an interactive CLI ("RB.REPL"), where users may enter
// commands to build and inspect ordered sets of integers. RB.REPL is
// intended as a sandbox to watch the red-black balancing at work.
//
func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	initf := flag.String("init", "", "Initial load")
	check := flag.Bool("check", false, "Verify red-black properties after every insertion")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelInfo) // will set the correct level later
	pterm.Info.Println("Welcome to RB.REPL")   // colored welcome message
	tracer().Infof("Trace level is %s", *tlevel)
	tracer().SetTraceLevel(traceLevel(*tlevel)) // now set the user supplied level
	//
	// set up environment and REPL
	repl, err := readline.New("rbset> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	defer repl.Close()
	intp := &Intp{
		repl: repl,
		env:  newEnvironment(rbset.CheckInvariants(*check)),
	}
	input := strings.TrimSpace(strings.Join(flag.Args(), " "))
	if input != "" {
		tracer().Infof("Input argument is \"%s\"", input)
		if _, err := intp.Execute(input); err != nil {
			tracer().Errorf("%v", err)
			os.Exit(2)
		}
	}
	//
	// load an init file and start receiving commands
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.loadInitFile(*initf)           // init file name provided by flag
	intp.REPL()                         // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	repl *readline.Instance
	env  *environment
}

func (intp *Intp) loadInitFile(filename string) {
	if filename == "" {
		return
	}
	f, err := os.Open(filename)
	if err != nil {
		tracer().Errorf("Unable to open init file: %s", filename)
		return
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineno := 1
	for scanner.Scan() {
		line := scanner.Text()
		if line = strings.TrimSpace(line); line == "" {
			lineno++
			continue
		}
		if _, err := intp.Execute(line); err != nil {
			tracer().Errorf("Error line %d: %v", lineno, err)
		}
		lineno++
	}
	if err := scanner.Err(); err != nil {
		tracer().Errorf("Error while reading init file: %v", err)
	}
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.Execute(line)
		if err != nil {
			continue
		}
		if quit {
			break
		}
	}
	println("Good bye!")
}

// Execute evaluates a command line and prints the result.
// It returns true if the user requested to quit.
func (intp *Intp) Execute(line string) (bool, error) {
	result, quit, err := intp.Eval(line)
	if err != nil {
		pterm.Error.Println(err.Error())
		return false, err
	}
	if result != "" {
		pterm.Info.Println(result)
	}
	return quit, nil
}

// Eval evaluates a command, given on a line by itself. It returns the
// command's output (possibly empty) and a flag which is true for 'quit'.
func (intp *Intp) Eval(line string) (string, bool, error) {
	toks, err := scan(line)
	if err != nil {
		return "", false, err
	}
	if len(toks) == 0 { // comment only
		return "", false, nil
	}
	if toks[0].kind != WORD {
		return "", false, fmt.Errorf("expected a command, found '%s'", toks[0].lexeme)
	}
	name := strings.ToLower(toks[0].lexeme)
	cmd, ok := commands[name]
	if !ok {
		return "", false, fmt.Errorf("unknown command '%s', try 'help'", toks[0].lexeme)
	}
	args := toks[1:]
	if len(args) < cmd.minArgs || (cmd.maxArgs >= 0 && len(args) > cmd.maxArgs) {
		return "", false, fmt.Errorf("usage: %s", cmd.usage)
	}
	if cmd.run == nil { // quit
		return "", true, nil
	}
	tracer().Debugf("executing %s %v", name, args)
	result, err := cmd.run(intp, args)
	return result, false, err
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}
