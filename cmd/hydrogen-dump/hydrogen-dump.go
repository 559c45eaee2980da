package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/lestrrat-go/hydrogen"
)

type cmdopts struct {
	Tree     bool   `long:"tree" description:"print the node tree instead of serialized HTML"`
	Encoding string `long:"encoding" description:"character encoding of the input"`
	Strict   bool   `long:"strict" description:"fail on malformed UTF-8 instead of substituting"`
	Version  bool   `long:"version"`
}

func main() {
	os.Exit(_main())
}

func showVersion() {
	fmt.Printf("hydrogen-dump: using hydrogen version %s\n", hydrogen.Version)
}

func showUsage() {
	fmt.Printf(`Usage : hydrogen-dump [options] HTMLfiles ...
	Parse the HTML files and dump the resulting document tree
	--version : display the version of the library used
`)
}

func _main() int {
	opts := cmdopts{}
	args, err := flags.ParseArgs(&opts, os.Args[1:])
	if err != nil {
		showUsage()
		return 1
	}

	if opts.Version {
		showVersion()
		return 0
	}

	var inputs []io.Reader
	if len(args) > 0 {
		for _, f := range args {
			fh, err := os.Open(f)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s\n", err)
				return 1
			}
			defer fh.Close()
			inputs = append(inputs, fh)
		}
	} else {
		inputs = append(inputs, os.Stdin)
	}

	var popts []hydrogen.ParseOption
	if opts.Encoding != "" {
		popts = append(popts, hydrogen.WithEncoding(opts.Encoding))
	}
	if opts.Strict {
		popts = append(popts, hydrogen.WithStrictText(true))
	}

	for _, in := range inputs {
		buf, err := io.ReadAll(in)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", err)
			return 1
		}
		doc, err := hydrogen.Parse(buf, popts...)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", err)
			return 1
		}

		d := hydrogen.Dumper{}
		if opts.Tree {
			d.DumpTree(os.Stdout, doc)
		} else {
			d.DumpDoc(os.Stdout, doc)
			fmt.Println()
		}
	}

	return 0
}
