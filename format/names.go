package format

import (
	"fmt"
	"sort"

	"github.com/gogpu/vgbuf/internal/errs"
	"github.com/gogpu/vgbuf/internal/logger"
)

var byName = func() map[string]PixelFormat {
	m := make(map[string]PixelFormat, formatCount)
	for f := PixelFormat(0); f < formatCount; f++ {
		m[table[f].name] = f
	}
	return m
}()

// Lookup resolves a canonical format name. The match is exact and case
// sensitive. Unknown names return an error wrapping
// errs.UnrecognizedIdentifier.
func Lookup(name string) (PixelFormat, error) {
	if f, ok := byName[name]; ok {
		return f, nil
	}
	return Default, fmt.Errorf("format: %w: %q", errs.UnrecognizedIdentifier, name)
}

// Parse resolves a canonical format name, falling back to Default when the
// name is unknown. The fallback is logged at warn level and is not an error:
// Parse sits at the configuration boundary where a typo should not abort a
// batch of runs.
func Parse(name string) PixelFormat {
	f, err := Lookup(name)
	if err != nil {
		logger.Get().Warn("unknown buffer format, using default",
			"name", name, "default", Default.String())
	}
	return f
}

// Names returns every canonical format name, sorted.
func Names() []string {
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
