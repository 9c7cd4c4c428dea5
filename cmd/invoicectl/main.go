package main

import (
	"os"

	"github.com/jessevdk/go-flags"
)

type Options struct {
	LogLevel string `short:"l" long:"loglevel" description:"set the logging level [debug, info, notice, warning, error, critical]"`
}

var opts Options

var parser = flags.NewParser(&opts, flags.Default)

func main() {
	parser.AddCommand("preview",
		"build an invoice order without sending it",
		"The preview command prints the FIRA order built from a registration file",
		&Preview{})
	parser.AddCommand("submit",
		"send an invoice order to FIRA",
		"The submit command builds the order from a registration file and sends it to FIRA. Without FIRA_API_KEY nothing is sent.",
		&Submit{})
	parser.AddCommand("status",
		"look up an order at FIRA",
		"The status command fetches the status of an order previously sent to FIRA",
		&Status{})

	if _, err := parser.Parse(); err != nil {
		os.Exit(1)
	}
}
