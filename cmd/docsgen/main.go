package main

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/appengine-ltd/tickreplay/internal/codec"
	"github.com/appengine-ltd/tickreplay/internal/config"
	"github.com/appengine-ltd/tickreplay/internal/input"
	"github.com/appengine-ltd/tickreplay/internal/translate"
)

type docFile struct {
	Name    string
	Title   string
	Content string
}

func main() {
	root := filepath.Join("docs", "reference")
	if err := os.MkdirAll(root, 0o755); err != nil {
		fatal(err)
	}

	files := []docFile{
		generateEventsDoc(),
		generateKeysDoc(),
		generateConfigDoc(),
	}
	for _, f := range files {
		path := filepath.Join(root, f.Name)
		if err := os.WriteFile(path, []byte(f.Content), 0o644); err != nil {
			fatal(err)
		}
		fmt.Printf("wrote %s\n", path)
	}

	index := generateIndex(files)
	indexPath := filepath.Join(root, "README.md")
	if err := os.WriteFile(indexPath, []byte(index), 0o644); err != nil {
		fatal(err)
	}
	fmt.Printf("wrote %s\n", indexPath)
}

func generateIndex(files []docFile) string {
	var b strings.Builder
	b.WriteString("# Reference\n\n")
	b.WriteString("Generated from the current Go source using `go run ./cmd/docsgen`.\n\n")
	for _, f := range files {
		b.WriteString(fmt.Sprintf("- [%s](./%s)\n", f.Title, f.Name))
	}
	return b.String()
}

// sampleEvents holds one representative value per kind, in tag order.
func sampleEvents() []input.Event {
	return []input.Event{
		input.ButtonChange{Button: input.MouseButton{Code: input.ButtonOther, Other: 9}, State: input.Pressed},
		input.KeyChange{ScanCode: 30, Key: input.KeyPtr(input.KeyA), State: input.Released},
		input.WheelScroll{Unit: input.ScrollPixel, X: 0, Y: -2},
		input.PointerDelta{DX: -4, DY: 1},
		input.PointerMoved{Window: input.PrimaryWindow, X: 26, Y: 25},
		input.SurfaceResized{Window: input.PrimaryWindow, Width: 800, Height: 600},
		input.FrameBoundary{},
	}
}

func generateEventsDoc() docFile {
	events := sampleEvents()

	var b strings.Builder
	b.WriteString("# Event wire format\n\n")
	b.WriteString("Source: `internal/codec` (`Encode`, `Decode`).\n\n")
	b.WriteString("Each event is one frame: the payload is COBS stuffed and terminated by a single `0x00`. ")
	b.WriteString("The payload starts with the kind tag as an unsigned LEB128 varint. Integers and enums are varints, ")
	b.WriteString("`f32` values are 4 little-endian bytes, optional values are a `0`/`1` byte followed by the value, ")
	b.WriteString("and window ids are 16 raw bytes.\n\n")
	b.WriteString(fmt.Sprintf("Total kinds: **%d**.\n\n", len(events)))
	b.WriteString("| Tag | Kind | Example | Frame bytes |\n")
	b.WriteString("| --- | --- | --- | --- |\n")
	for _, ev := range events {
		b.WriteString("| ")
		b.WriteString(fmt.Sprintf("%d", uint32(ev.Kind())))
		b.WriteString(" | ")
		b.WriteString(escape(ev.Kind().String()))
		b.WriteString(" | ")
		b.WriteString(escape("`" + ev.String() + "`"))
		b.WriteString(" | ")
		b.WriteString("`" + formatBytes(codec.Encode(ev)) + "`")
		b.WriteString(" |\n")
	}

	return docFile{Name: "events.md", Title: "Event wire format", Content: b.String()}
}

func generateKeysDoc() docFile {
	keys := input.AllKeys()

	var b strings.Builder
	b.WriteString("# Key symbols\n\n")
	b.WriteString("Source: `internal/input/keys.go` (`AllKeys`) and `internal/translate/keys.go`.\n\n")
	b.WriteString(fmt.Sprintf("Total keys: **%d**.\n\n", len(keys)))
	b.WriteString("| Wire value | Symbol | Host key code | Translated |\n")
	b.WriteString("| --- | --- | --- | --- |\n")
	for _, k := range keys {
		code, ok := translate.HostKey(k)
		b.WriteString("| ")
		b.WriteString(fmt.Sprintf("%d", uint32(k)))
		b.WriteString(" | ")
		b.WriteString(escape(k.String()))
		b.WriteString(" | ")
		b.WriteString(fmt.Sprintf("%d", code))
		b.WriteString(" | ")
		b.WriteString(yesNo(ok))
		b.WriteString(" |\n")
	}

	return docFile{Name: "keys.md", Title: "Key symbols", Content: b.String()}
}

func generateConfigDoc() docFile {
	t := reflect.TypeFor[config.Config]()

	var b strings.Builder
	b.WriteString("# Configuration\n\n")
	b.WriteString("Source: `internal/config/config.go` (`Config`).\n\n")
	b.WriteString("| Variable | Field | Type | Default |\n")
	b.WriteString("| --- | --- | --- | --- |\n")
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name := f.Tag.Get("env")
		if name == "" {
			continue
		}
		b.WriteString("| ")
		b.WriteString("`" + name + "`")
		b.WriteString(" | ")
		b.WriteString(escape(f.Name))
		b.WriteString(" | ")
		b.WriteString(escape(f.Type.String()))
		b.WriteString(" | ")
		b.WriteString(escape(f.Tag.Get("envDefault")))
		b.WriteString(" |\n")
	}

	return docFile{Name: "config.md", Title: "Configuration", Content: b.String()}
}

func formatBytes(data []byte) string {
	parts := make([]string, len(data))
	for i, c := range data {
		parts[i] = fmt.Sprintf("%02x", c)
	}
	return strings.Join(parts, " ")
}

func escape(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	v = strings.ReplaceAll(v, "|", "\\|")
	v = strings.ReplaceAll(v, "\n", "<br>")
	return v
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
