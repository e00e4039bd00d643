package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/blueputty01/swiftnotes/pkg/client"
)

func main() {
	urlFlag := flag.String("url", "http://localhost:8080", "server url")
	tokenFlag := flag.String("token", "", "server token")
	outputFlag := flag.String("output", "notes.pdf", "output file")
	overlaysFlag := flag.Bool("overlays", false, "print recognized overlays instead of writing a pdf")

	flag.Parse()

	ctx := context.Background()

	options := []client.RequestOption{}

	if *tokenFlag != "" {
		options = append(options, client.WithToken(*tokenFlag))
	}

	c := client.New(*urlFlag, options...)

	doc, err := readDocument(flag.Arg(0))

	if err != nil {
		fatal(err)
	}

	if *overlaysFlag {
		result, err := c.Exports.Overlays(ctx, *doc)

		if err != nil {
			fatal(err)
		}

		for i, page := range result.Pages {
			for _, o := range page.Overlays {
				fmt.Printf("page %d: %s\n", i+1, o.Text)
			}
		}

		return
	}

	data, err := c.Exports.New(ctx, *doc)

	if err != nil {
		fatal(err)
	}

	if err := os.WriteFile(*outputFlag, data, 0644); err != nil {
		fatal(err)
	}

	fmt.Fprintf(os.Stderr, "wrote %s (%d bytes)\n", *outputFlag, len(data))
}

// readDocument reads a JSON notebook from path, or stdin when path is empty
// or "-".
func readDocument(path string) (*client.Document, error) {
	var r io.Reader = os.Stdin

	if path != "" && path != "-" {
		f, err := os.Open(path)

		if err != nil {
			return nil, err
		}

		defer f.Close()

		r = f
	}

	var doc client.Document

	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, err
	}

	return &doc, nil
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
