// This file is part of PCConsole.
//
// PCConsole is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// PCConsole is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with PCConsole.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/pcconsole/curated"
	"github.com/jetsetilly/pcconsole/frontend"
	"github.com/jetsetilly/pcconsole/frontend/plainterm"
	"github.com/jetsetilly/pcconsole/frontend/rawterm"
	"github.com/jetsetilly/pcconsole/frontend/tcellterm"
	"github.com/jetsetilly/pcconsole/hardware"
	"github.com/jetsetilly/pcconsole/hardware/pc"
	"github.com/jetsetilly/pcconsole/logger"
	"github.com/jetsetilly/pcconsole/modalflag"
	"github.com/jetsetilly/pcconsole/prefs"
	"github.com/jetsetilly/pcconsole/session"
	"github.com/jetsetilly/pcconsole/statsview"
	"github.com/jetsetilly/pcconsole/version"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// reset interrupt signal handling. the interactive front ends see ctrl-c
	// as a key press and handle it themselves.
	//
	// takes no arguments.
	reqNoIntSig stateReq = "NOINTSIG"
)

type stateRequest struct {
	req  stateReq
	args any
}

// communication between the main() function and the launch() function
type mainSync struct {
	state chan stateRequest
}

// exit values
const (
	exitFlags = 10
	exitMode  = 20
)

func main() {
	sync := &mainSync{
		state: make(chan stateRequest),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	// #ctrlc default handler. can be turned off with reqNoIntSig request
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	go launch(sync, os.Args[1:], os.Stdout)

	done := false
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					}
				}

			case reqNoIntSig:
				signal.Reset(os.Interrupt)
			}
		}
	}

	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate when to quit.
func launch(sync *mainSync, args []string, output io.Writer) {
	sync.state <- stateRequest{req: reqQuit, args: dispatch(sync, args, output)}
}

// dispatch parses the command line and runs the selected mode. returns the
// exit value.
func dispatch(sync *mainSync, args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "SCRIPT", "PREFS", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitFlags
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, sync)

	case "SCRIPT":
		err = script(md, os.Stdin, output)

	case "PREFS":
		err = preferences(md, output)

	case "VERSION":
		err = showVersion(md, output)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.Path(), err)
		return exitMode
	}

	return 0
}

// common flags for the modes that create a console
type consoleFlags struct {
	log      *bool
	prefs    *string
	override *string
}

func addConsoleFlags(md *modalflag.Modes) consoleFlags {
	return consoleFlags{
		log:      md.AddBool("log", false, "echo debugging log to stderr"),
		prefs:    md.AddString("prefs", "", "preferences file to use"),
		override: md.AddString("override", "", "override preferences: \"key::value; key::value\""),
	}
}

// apply the log flag and load the preferences named by the prefs flag. the
// override flag takes precedence over the file.
func (f consoleFlags) apply() (*session.Preferences, error) {
	if *f.log {
		logger.SetEcho(os.Stderr)
	} else {
		logger.SetEcho(nil)
	}

	if *f.override != "" {
		prefs.PushCommandLineStack(*f.override)
		defer func() {
			if unclaimed := prefs.PopCommandLineStack(); unclaimed != "" {
				logger.Logf(logger.Allow, "prefs", "unknown preferences on command line: %s", unclaimed)
			}
		}()
	}

	return session.NewPreferences(*f.prefs)
}

func run(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	flags := addConsoleFlags(md)
	termType := md.AddString("term", "TCELL", "terminal type to use: TCELL, RAW")
	watch := md.AddBool("watchprefs", false, "reload preferences when the file changes")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	viz := md.AddString("memviz", "", "write graphviz description of the session to file")

	if !statsview.Available() {
		md.AdditionalHelp("statsview is not available in this build")
	}

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md.Path())
	}

	prf, err := flags.apply()
	if err != nil {
		return err
	}

	if *watch {
		w, err := prf.Watch()
		if err != nil {
			return err
		}
		defer w.Close()
	}

	if *stats {
		stop := statsview.Launch(os.Stderr)
		defer stop()
	}

	var fe frontend.Frontend
	switch strings.ToUpper(*termType) {
	case "TCELL":
		fe = tcellterm.NewTerminal(nil)
	case "RAW":
		fe = rawterm.NewTerminal(os.Stdin, os.Stdout)
	default:
		return fmt.Errorf("unknown terminal type (%s)", *termType)
	}

	// the front end sees ctrl-c as a key press
	sync.state <- stateRequest{req: reqNoIntSig}

	_, err = console(fe, prf, *viz)
	return err
}

func script(md *modalflag.Modes, stdin io.Reader, output io.Writer) error {
	md.NewMode()

	flags := addConsoleFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	input := stdin
	switch len(md.RemainingArgs()) {
	case 0:
	case 1:
		f, err := os.Open(md.GetArg(0))
		if err != nil {
			return err
		}
		defer f.Close()
		input = f
	default:
		return fmt.Errorf("too many arguments for %s mode", md.Path())
	}

	prf, err := flags.apply()
	if err != nil {
		return err
	}

	_, err = console(plainterm.NewTerminal(input, output), prf, "")
	return err
}

func preferences(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	flags := addConsoleFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prf, err := flags.apply()
	if err != nil {
		return err
	}

	if err := prf.Save(); err != nil {
		return err
	}

	fmt.Fprintf(output, "%s\n%s", prf.Path(), prf)
	return nil
}

func showVersion(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display revision information from version control")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	v, r, _ := version.Version()
	fmt.Fprintf(output, "%s %s\n", version.ApplicationName, v)
	if *revision {
		fmt.Fprintln(output, r)
	}
	return nil
}

// console presents machines with the front end until one powers off or the
// user quits. a machine that resets is replaced with a new machine and a new
// session. the halt reason of the last machine is returned.
func console(fe frontend.Frontend, prf *session.Preferences, viz string) (pc.HaltReason, error) {
	if err := fe.Initialise(); err != nil {
		return pc.Running, err
	}
	defer fe.CleanUp()

	for {
		m := pc.NewMachine()
		m.Start(func(hw hardware.Access) {
			sess, err := session.NewSession(hw, prf)
			if err != nil {
				logger.Log(logger.Allow, "session", err)
				return
			}
			if viz != "" {
				if err := visualise(viz, sess); err != nil {
					logger.Log(logger.Allow, "memviz", err)
				}
			}
			sess.Run()
		})

		reason, err := fe.Run(m)
		if err != nil {
			m.Stop(pc.HaltStopped)
			if curated.Is(err, frontend.UserQuit) {
				return pc.HaltStopped, nil
			}
			return reason, err
		}

		switch reason {
		case pc.HaltReset:
			logger.Log(logger.Allow, "pc", "rebooting")
		case pc.Running:
			// the front end has no more input for the machine
			m.Stop(pc.HaltStopped)
			return pc.HaltStopped, nil
		default:
			return reason, nil
		}
	}
}

// visualise writes a graphviz description of the session to the named file
func visualise(filename string, sess *session.Session) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	memviz.Map(f, sess)
	return nil
}
