package main

import (
	"flag"
	"log"
	"os"

	"github.com/pyatavikram/ExamGenAi/internal/export"
	"github.com/pyatavikram/ExamGenAi/internal/svgio"
	"github.com/pyatavikram/ExamGenAi/internal/ui"
)

func main() {
	var (
		in      = flag.String("in", "", "SVG document to open; empty starts a blank canvas")
		out     = flag.String("out", "", "file to write the confirmed SVG to (defaults to -in)")
		pdfPath = flag.String("pdf", "", "also export the confirmed diagram as PDF")
		pngPath = flag.String("png", "", "also export the confirmed diagram as PNG")
	)
	flag.Parse()

	initial := ""
	if *in != "" {
		data, err := os.ReadFile(*in)
		if err != nil {
			log.Printf("could not read %s, opening a blank canvas: %v", *in, err)
		} else {
			initial = string(data)
		}
	}

	target := *out
	if target == "" {
		target = *in
	}

	ui.RunApp(initial, func(doc string) {
		if target != "" {
			if err := os.WriteFile(target, []byte(doc), 0o644); err != nil {
				log.Printf("failed to write %s: %v", target, err)
			} else {
				log.Printf("wrote diagram to %s", target)
			}
		} else {
			// Nowhere to save: hand the document to stdout so the
			// surrounding tooling can pick it up.
			os.Stdout.WriteString(doc)
		}

		if *pdfPath == "" && *pngPath == "" {
			return
		}
		els, ok := svgio.Decode(doc)
		if !ok {
			log.Printf("nothing to export")
			return
		}
		if *pdfPath != "" {
			if err := export.PDF(els, *pdfPath); err != nil {
				log.Printf("pdf export failed: %v", err)
			} else {
				log.Printf("exported %s", *pdfPath)
			}
		}
		if *pngPath != "" {
			if err := export.PNG(els, *pngPath); err != nil {
				log.Printf("png export failed: %v", err)
			} else {
				log.Printf("exported %s", *pngPath)
			}
		}
	})
}
