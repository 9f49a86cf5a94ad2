// Package system probes the local ffmpeg installation.
package system

import (
	"bufio"
	"context"
	"fmt"
	"os/exec"
	"sort"
	"strings"

	"github.com/ivlev/transitions/internal/effects"
)

// FFmpeg is the engine binary to probe. It is resolved through PATH.
var FFmpeg = "ffmpeg"

// Filters is the set of filter names an engine build provides.
type Filters map[string]bool

// AvailableFilters asks the engine which filters it was built with.
func AvailableFilters(ctx context.Context) (Filters, error) {
	cmd := exec.CommandContext(ctx, FFmpeg, "-hide_banner", "-filters")
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("run %s -filters: %w", FFmpeg, err)
	}

	filters := ParseFilters(string(out))
	if len(filters) == 0 {
		return nil, fmt.Errorf("%s -filters listed no filters", FFmpeg)
	}
	return filters, nil
}

// ParseFilters reads the listing printed by "ffmpeg -filters". Filter rows
// look like " TSC overlay  VV->V  Overlay a video source on top of the input."
func ParseFilters(listing string) Filters {
	filters := Filters{}
	sc := bufio.NewScanner(strings.NewReader(listing))
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) < 3 || !strings.Contains(fields[2], "->") {
			continue
		}
		filters[fields[1]] = true
	}
	return filters
}

// MissingFilters lists, sorted, the filters e needs that available lacks.
func MissingFilters(e *effects.Effect, available Filters) []string {
	var missing []string
	for _, name := range e.Filters() {
		if !available[name] {
			missing = append(missing, name)
		}
	}
	sort.Strings(missing)
	return missing
}
