/*
Mcodeiro generates a syntax-highlighting grammar for HP-41 MCODE source files.

It builds the grammar from the compiled-in instruction catalog and writes it to
stdout. By default the grammar is written in the notation of the Iro highlighter
designer, which can in turn export highlighters for a number of editors.

Usage:

	mcodeiro [flags]

With no flags, the Iro grammar is written with the default header metadata.

The flags are:

	-v, --version
		Give the current version of mcodegen and then exit.

	-f, --format FORMAT
		Write the grammar in the given format. FORMAT must be one of iro or
		pygments. Defaults to iro.

	-c, --config FILE
		Read grammar header metadata from the given TOML file. If not given,
		will default to the value of environment variable MCODEGEN_CONFIG, and
		if that is not given, the built-in defaults are used.

	--dump
		Write a dump of the built grammar model to stderr before writing the
		grammar.

	--debug
		Log progress messages to stderr.

The exit code is 0 on success, 1 if the flags are not valid, 2 if the config
cannot be used or the grammar cannot be built, and 3 if the grammar could not be
written.
*/
package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/dekarrin/mcodegen"
	"github.com/dekarrin/mcodegen/internal/config"
	"github.com/dekarrin/mcodegen/internal/mcerrors"
	"github.com/dekarrin/mcodegen/internal/version"
	"github.com/spf13/pflag"
)

const (
	// ExitSuccess indicates a successful program execution.
	ExitSuccess = iota

	// ExitUsageError indicates that the program was invoked incorrectly.
	ExitUsageError

	// ExitGenerateError indicates that the grammar could not be built, either
	// due to bad configuration or a problem in the generator.
	ExitGenerateError

	// ExitOutputError indicates that the grammar could not be written.
	ExitOutputError
)

var returnCode = ExitSuccess

var (
	flagVersion = pflag.BoolP("version", "v", false, "Give the current version of mcodegen and then exit.")
	flagFormat  = pflag.StringP("format", "f", "iro", "Write the grammar in the given format (iro or pygments).")
	flagConfig  = pflag.StringP("config", "c", "", "Read grammar header metadata from the given TOML file.")
	flagDump    = pflag.Bool("dump", false, "Dump the built grammar model to stderr.")
	flagDebug   = pflag.Bool("debug", false, "Log progress messages to stderr.")
)

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			panic(panicErr)
		} else {
			os.Exit(returnCode)
		}
	}()

	pflag.Parse()

	if *flagVersion {
		fmt.Printf("%s\n", version.Current)
		return
	}

	if len(pflag.Args()) > 0 {
		fmt.Fprintf(os.Stderr, "Too many arguments\nDo -h for help.\n")
		returnCode = ExitUsageError
		return
	}

	if !*flagDebug {
		log.SetOutput(io.Discard)
	}

	format, err := mcodegen.ParseFormat(*flagFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\nDo -h for help.\n", mcerrors.Message(err))
		returnCode = ExitUsageError
		return
	}

	cfgPath := os.Getenv(config.EnvConfig)
	if pflag.Lookup("config").Changed {
		cfgPath = *flagConfig
	}
	if cfgPath != "" {
		log.Printf("DEBUG Reading config from %s", cfgPath)
	}

	hdr, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", mcerrors.Message(err))
		returnCode = ExitGenerateError
		return
	}

	g, err := mcodegen.BuildGrammar(hdr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", mcerrors.Message(err))
		returnCode = ExitGenerateError
		return
	}
	log.Printf("DEBUG Built grammar %q with %d contexts and %d styles", g.Header.Name, len(g.Contexts), len(g.Styles))

	if *flagDump {
		spew.Fdump(os.Stderr, g)
	}

	out := bufio.NewWriter(os.Stdout)
	err = mcodegen.WriteGrammar(out, g, format)
	if err == nil {
		err = out.Flush()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", mcerrors.Message(err))
		returnCode = ExitOutputError
		return
	}
	log.Printf("DEBUG Wrote %s grammar", format)
}
