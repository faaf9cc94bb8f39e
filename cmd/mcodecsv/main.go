/*
Mcodecsv writes a report of the HP-41 MCODE instruction set to stdout.

Each line of the report gives an opcode, the mnemonics that the HP, JDA and
ZENCODE dialects use for it with one operand type, and a description of that
operand. An opcode whose mnemonics take different operand types has one line
per type.

Usage:

	mcodecsv [flags]

With no flags, the report is written as semicolon-separated CSV with a header
line. Where a dialect has more than one mnemonic for an opcode, they are joined
with "|".

The flags are:

	-v, --version
		Give the current version of mcodegen and then exit.

	-t, --table
		Write the report as a bordered text table instead of CSV.

	--debug
		Log progress messages to stderr.

The exit code is 0 on success, 1 if the flags are not valid, and 3 if the report
could not be written.
*/
package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/dekarrin/mcodegen"
	"github.com/dekarrin/mcodegen/internal/mcerrors"
	"github.com/dekarrin/mcodegen/internal/version"
	"github.com/spf13/pflag"
)

const (
	// ExitSuccess indicates a successful program execution.
	ExitSuccess = iota

	// ExitUsageError indicates that the program was invoked incorrectly.
	ExitUsageError

	_ // 2 is a generation error in mcodeiro

	// ExitOutputError indicates that the report could not be written.
	ExitOutputError
)

var returnCode = ExitSuccess

var (
	flagVersion = pflag.BoolP("version", "v", false, "Give the current version of mcodegen and then exit.")
	flagTable   = pflag.BoolP("table", "t", false, "Write a bordered text table instead of CSV.")
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

	out := bufio.NewWriter(os.Stdout)
	err := mcodegen.WriteReport(out, *flagTable)
	if err == nil {
		err = out.Flush()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", mcerrors.Message(err))
		returnCode = ExitOutputError
		return
	}
	log.Printf("DEBUG Wrote report")
}
