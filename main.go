package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/OB11TO/Computer-Graphics/pkg/imageio"
	"github.com/OB11TO/Computer-Graphics/pkg/renderer"
	"github.com/OB11TO/Computer-Graphics/pkg/scene"
)

const defaultOutPath = "zout.bmp"

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

// parseArgs collects "-key value" pairs. A key given as the last argument
// gets an empty value; tokens that do not start with '-' are skipped.
func parseArgs(args []string) map[string]string {
	params := make(map[string]string)
	for i := 0; i < len(args); i++ {
		key := args[i]
		if len(key) == 0 || key[0] != '-' {
			continue
		}
		if i+1 < len(args) {
			params[key] = args[i+1]
			i++
		} else {
			params[key] = ""
		}
	}
	return params
}

// sceneID reads -scene with atoi semantics: a missing flag selects the
// reference scene, a non-numeric value selects scene 0
func sceneID(params map[string]string) int {
	value, ok := params["-scene"]
	if !ok {
		return scene.ReferenceSceneID
	}
	id, err := strconv.Atoi(leadingInteger(value))
	if err != nil {
		return 0
	}
	return id
}

// leadingInteger returns the optional sign and digits at the start of s,
// after skipping leading blanks
func leadingInteger(s string) string {
	s = strings.TrimLeft(s, " \t\n")
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	return s[:end]
}

func run(args []string) error {
	params := parseArgs(args)

	outPath := defaultOutPath
	if value, ok := params["-out"]; ok {
		outPath = value
	}

	selectedScene, err := scene.ByID(sceneID(params))
	if errors.Is(err, scene.ErrUnknownScene) {
		// Only the reference scene renders; other ids are a successful no-op
		return nil
	}
	if err != nil {
		return err
	}

	raytracer := renderer.NewRaytracer(selectedScene, renderer.DefaultRenderConfig())
	raytracer.SetLogger(renderer.NewDefaultLogger())

	fb, stats := raytracer.Render()
	fmt.Printf("Hits: %d (%d in shadow), rays per pixel: %.2f\n",
		stats.Hits, stats.ShadowedHits, stats.AverageRaysPerPixel())

	if err := imageio.SaveImage(outPath, fb.Pixels, fb.Height, fb.Width); err != nil {
		return fmt.Errorf("saving %s: %w", outPath, err)
	}

	fmt.Printf("Render saved as %s\n", outPath)
	fmt.Println("end.")
	return nil
}
