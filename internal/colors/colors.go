// Package colors loads the CSS and Tailwind name→hex tables bundled with
// the binary and resolves hex strings to RGB triples. The tables are
// bundled with go:embed so they compile into the binary rather than being
// read from disk at startup.
package colors

import (
	_ "embed"
	"encoding/json"
	"strconv"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/rsmlang/rojo-rsml/internal/value"
)

//go:embed data/css_colors.json
var cssColorsJSON []byte

//go:embed data/tailwind_colors.json
var tailwindColorsJSON []byte

// Tables holds the resolved name→hex maps, plus any project-level
// overrides layered on top (cmd/rsmlc's config file).
type Tables struct {
	css      map[string]string
	tailwind map[string]string
	extra    map[string]string
}

// Load parses the embedded JSON tables. It panics on malformed embedded
// data, which would indicate a build-time packaging bug rather than a
// runtime condition callers can recover from.
func Load() *Tables {
	t := &Tables{extra: map[string]string{}}
	if err := json.Unmarshal(cssColorsJSON, &t.css); err != nil {
		panic("colors: malformed embedded css_colors.json: " + err.Error())
	}
	if err := json.Unmarshal(tailwindColorsJSON, &t.tailwind); err != nil {
		panic("colors: malformed embedded tailwind_colors.json: " + err.Error())
	}
	return t
}

// Dump returns the three resolved tables keyed by source, for cmd/rsmlc's
// fmt-colors inspection verb.
func (t *Tables) Dump() map[string]map[string]string {
	return map[string]map[string]string{
		"css":      t.css,
		"tailwind": t.tailwind,
		"config":   t.extra,
	}
}

// WithExtra returns a copy of t with additional css-table entries layered
// on top, used for cmd/rsmlc's user-config named colors. Config entries
// win over the bundled table on name collision.
func (t *Tables) WithExtra(names map[string]string) *Tables {
	merged := &Tables{css: t.css, tailwind: t.tailwind, extra: map[string]string{}}
	for k, v := range t.extra {
		merged.extra[k] = v
	}
	for k, v := range names {
		merged.extra[k] = v
	}
	return merged
}

// ResolveHex parses a bare hex run (no leading "#", length 3/4/6/8) into a
// Color3. Invalid input resolves to value.MagentaFallback.
func (t *Tables) ResolveHex(hex string) value.Color3 {
	c, err := parseHex(hex)
	if err != nil {
		return value.MagentaFallback
	}
	return c
}

// ResolveCss looks up a css: named color, falling back to the bundled
// table and then the magenta sentinel on a miss.
func (t *Tables) ResolveCss(name string) value.Color3 {
	if hex, ok := t.extra[name]; ok {
		if c, err := parseHex(stripHash(hex)); err == nil {
			return c
		}
	}
	if hex, ok := t.css[name]; ok {
		if c, err := parseHex(stripHash(hex)); err == nil {
			return c
		}
	}
	return value.MagentaFallback
}

// ResolveTailwind looks up a tw:<palette>[:<shade>] color. A missing shade
// defaults to "500", matching Tailwind's own default-weight convention.
func (t *Tables) ResolveTailwind(palette, shade string) value.Color3 {
	if shade == "" {
		shade = "500"
	}
	key := palette + ":" + shade
	if hex, ok := t.tailwind[key]; ok {
		if c, err := parseHex(stripHash(hex)); err == nil {
			return c
		}
	}
	return value.MagentaFallback
}

func stripHash(hex string) string {
	if len(hex) > 0 && hex[0] == '#' {
		return hex[1:]
	}
	return hex
}

func parseHex(hex string) (value.Color3, error) {
	switch len(hex) {
	case 3, 4:
		expanded := make([]byte, 0, 8)
		for i := 0; i < len(hex) && i < 3; i++ {
			expanded = append(expanded, hex[i], hex[i])
		}
		hex = string(expanded)
	case 6, 8:
		hex = hex[:6]
	default:
		return value.Color3{}, errInvalidHexLength
	}
	if _, err := strconv.ParseUint(hex, 16, 32); err != nil {
		return value.Color3{}, err
	}
	c, err := colorful.Hex("#" + hex)
	if err != nil {
		return value.Color3{}, err
	}
	r, g, b := c.RGB255()
	return value.Color3{R: float32(r) / 255, G: float32(g) / 255, B: float32(b) / 255}, nil
}

var errInvalidHexLength = errString("invalid hex color length")

type errString string

func (e errString) Error() string { return string(e) }
