package main

import (
	"fmt"
	"strconv"
	"strings"
)

// zoomStep is one scroll-wheel event at a display pixel.
type zoomStep struct {
	x, y      int
	direction int
}

// zoomSteps collects repeated -zoom flags. It implements flag.Value.
type zoomSteps []zoomStep

func (z *zoomSteps) String() string {
	if z == nil {
		return ""
	}
	parts := make([]string, len(*z))
	for i, s := range *z {
		parts[i] = fmt.Sprintf("%d,%d,%d", s.x, s.y, s.direction)
	}
	return strings.Join(parts, " ")
}

func (z *zoomSteps) Set(value string) error {
	step, err := parseZoomStep(value)
	if err != nil {
		return err
	}
	*z = append(*z, step)
	return nil
}

// parseZoomStep parses "x,y,dir"; dir may be omitted and defaults to -1
// (zoom in).
func parseZoomStep(value string) (zoomStep, error) {
	fields := strings.Split(value, ",")
	if len(fields) != 2 && len(fields) != 3 {
		return zoomStep{}, fmt.Errorf("zoom %q: want x,y[,dir]", value)
	}

	nums := make([]int, 3)
	nums[2] = -1
	for i, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return zoomStep{}, fmt.Errorf("zoom %q: %w", value, err)
		}
		nums[i] = n
	}
	return zoomStep{x: nums[0], y: nums[1], direction: nums[2]}, nil
}
