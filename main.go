package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/gradus/numline/numline"
	"github.com/gradus/numline/dsl"
	"github.com/gradus/numline/layout"
	"github.com/gradus/numline/renderer"
	canvasrenderer "github.com/gradus/numline/renderer/canvas"
)

func main() {
	input := flag.String("in", "examples/demo.numline", "scene file path")
	output := flag.String("out", "output/demo.svg", "output path (.svg or .pdf)")
	debug := flag.String("debug", "", "debug JSON output path")
	debugTickPoints := flag.Bool("debug-tick-points", false, "include mapped tick points in the debug JSON")
	dataJSON := flag.String("data", "", "JSON data bound to ${...} label placeholders")
	watch := flag.Bool("watch", false, "re-render whenever the scene file changes")
	flag.Parse()

	var inputData any
	if *dataJSON != "" {
		if err := json.Unmarshal([]byte(*dataJSON), &inputData); err != nil {
			log.Fatalf("parse data JSON: %v", err)
		}
	}

	format, err := formatFor(*output)
	if err != nil {
		log.Fatalf("%v", err)
	}
	var r renderer.Renderer = canvasrenderer.New(format)

	if err := run(*input, *output, *debug, *debugTickPoints, inputData, r); err != nil {
		if !*watch {
			log.Fatalf("render scene: %v", err)
		}
		log.Printf("render scene: %v", err)
	} else {
		fmt.Printf("rendered %s\n", *output)
	}

	if *watch {
		if err := watchLoop(*input, *output, *debug, *debugTickPoints, inputData, r); err != nil {
			log.Fatalf("watch %s: %v", *input, err)
		}
	}
}

func formatFor(path string) (canvasrenderer.Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".svg":
		return canvasrenderer.FormatSVG, nil
	case ".pdf":
		return canvasrenderer.FormatPDF, nil
	default:
		return 0, fmt.Errorf("output %s: want a .svg or .pdf path", path)
	}
}

// run chains parsing, scene assembly and rendering.
func run(inputPath, outputPath, debugPath string, debugTickPoints bool, data any, r renderer.Renderer) error {
	if r == nil {
		return fmt.Errorf("renderer must not be nil")
	}
	file, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("open scene file %s: %w", inputPath, err)
	}
	defer file.Close()

	doc, err := dsl.Parse(file)
	if err != nil {
		return fmt.Errorf("parse scene: %w", err)
	}

	ts, ok := r.(numline.Typesetter)
	if !ok {
		return fmt.Errorf("renderer does not provide a typesetter")
	}

	result, err := layout.Build(doc, data, layout.BuildOptions{
		Typesetter: ts,
		Debug:      layout.DebugOptions{TickPoints: debugTickPoints},
	})
	if err != nil {
		return fmt.Errorf("build scene: %w", err)
	}

	if debugPath != "" {
		if err := writeDebug(result, debugPath); err != nil {
			return err
		}
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	out, err := r.Render(result)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if err := os.WriteFile(outputPath, out, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// watchLoop re-runs the pipeline whenever the scene file is written.
// The parent directory is watched because editors commonly replace the
// file on save.
func watchLoop(inputPath, outputPath, debugPath string, debugTickPoints bool, data any, r renderer.Renderer) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(inputPath)); err != nil {
		return err
	}
	log.Printf("watching %s", inputPath)

	target := filepath.Clean(inputPath)
	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if err := run(inputPath, outputPath, debugPath, debugTickPoints, data, r); err != nil {
				log.Printf("render scene: %v", err)
				continue
			}
			log.Printf("rendered %s", outputPath)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("watch: %v", err)
		}
	}
}

func writeDebug(result *layout.Result, debugPath string) error {
	if err := os.MkdirAll(filepath.Dir(debugPath), 0o755); err != nil {
		return fmt.Errorf("create debug directory: %w", err)
	}
	if err := layout.WriteDebugJSON(result, debugPath); err != nil {
		return fmt.Errorf("write debug JSON: %w", err)
	}
	return nil
}
