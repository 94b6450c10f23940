package main

import (
	"encoding/base64"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/clumzy/freqgen/analytics"
	"github.com/clumzy/freqgen/assets"
	"github.com/clumzy/freqgen/compositor"
	"github.com/clumzy/freqgen/dsl"
	"github.com/clumzy/freqgen/layout"
	canvasrenderer "github.com/clumzy/freqgen/renderer/canvas"
	"github.com/clumzy/freqgen/server"
	"github.com/clumzy/freqgen/theme"
)

func main() {
	assetsDir := flag.String("assets", envOr("FREQGEN_ASSETS", "assets"), "asset directory (backgrounds and fonts)")
	themesPath := flag.String("themes", "", "station definition file (default: embedded)")
	listen := flag.String("listen", "", "serve the HTTP API on this address instead of rendering once")
	dbPath := flag.String("db", envOr("FREQGEN_DB", "analytics/freqgen.sqlite"), "analytics database path (serve mode)")

	station := flag.String("station", "slow", "station value: slower, slow, fast or faster")
	name := flag.String("name", "House solaire et organique", "station display title")
	verbatims := flag.String("verbatims", "", "comma-separated verbatims")
	tags := flag.String("tags", "", "comma-separated tags")
	artists := flag.String("artists", "", "comma-separated artist names")
	out := flag.String("out", "output/station.png", "PNG output path")
	htmlOut := flag.String("html", "", "optional HTML preview output path")
	debug := flag.String("debug", "", "optional layout plan JSON output path")
	flag.Parse()

	registry, err := loadRegistry(*themesPath)
	if err != nil {
		log.Fatalf("load station definitions: %v", err)
	}
	bundle := assets.Open(*assetsDir)
	r := canvasrenderer.New(bundle)
	comp := compositor.New(registry, bundle, r, r)

	if *listen != "" {
		if err := serve(*listen, *dbPath, comp); err != nil {
			log.Fatalf("serve: %v", err)
		}
		return
	}

	req := compositor.Request{
		Station:   *station,
		Name:      *name,
		Verbatims: splitList(*verbatims),
		Tags:      splitList(*tags),
		Artists:   splitList(*artists),
	}
	if err := run(req, comp, *out, *htmlOut, *debug); err != nil {
		log.Fatalf("generate image: %v", err)
	}
	fmt.Printf("wrote %s\n", *out)
}

// run renders one visual and writes the requested outputs.
func run(req compositor.Request, comp *compositor.Compositor, out, htmlOut, debugPath string) error {
	if debugPath != "" {
		plan, err := comp.Plan(req)
		if err != nil {
			return err
		}
		if err := os.MkdirAll(filepath.Dir(debugPath), 0o755); err != nil {
			return fmt.Errorf("create debug directory: %w", err)
		}
		if err := layout.WriteDebugJSON(plan, debugPath); err != nil {
			return fmt.Errorf("write debug JSON: %w", err)
		}
	}

	encoded, err := comp.Generate(req)
	if err != nil {
		return err
	}
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return fmt.Errorf("decode image: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("write PNG: %w", err)
	}

	if htmlOut != "" {
		if err := os.WriteFile(htmlOut, []byte(previewHTML(req.Name, encoded)), 0o644); err != nil {
			return fmt.Errorf("write HTML preview: %w", err)
		}
	}
	return nil
}

func serve(addr, dbPath string, comp *compositor.Compositor) error {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return fmt.Errorf("create analytics directory: %w", err)
	}
	store, err := analytics.Open(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, server.New(comp, store).Handler())
}

func loadRegistry(path string) (*theme.Registry, error) {
	if path == "" {
		return theme.DefaultRegistry()
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()
	doc, err := dsl.Parse(file)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return theme.FromDocument(doc)
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func previewHTML(title, encoded string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><title>%s</title></head>
<body style="background:#f5f5f5;max-width:800px;margin:0 auto;padding:20px">
  <img style="max-width:100%%" src="data:image/png;base64,%s" alt="%s">
</body>
</html>
`, title, encoded, title)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
