// Package config turns textual options into the parameters of a buffer
// test run. The same option syntax is shared by command-line flags and
// batch files.
package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/vgbuf/format"
	"github.com/gogpu/vgbuf/internal/errs"
	"github.com/gogpu/vgbuf/render"
)

// ErrInvalidArgument is returned for malformed option values.
var ErrInvalidArgument = errs.InvalidArgument

// BufferSpec is the requested geometry of a buffer.
type BufferSpec struct {
	Width  int
	Height int
	Format format.PixelFormat
}

func (b BufferSpec) String() string {
	return fmt.Sprintf("%d,%d,%s", b.Width, b.Height, b.Format)
}

// Scissor is a clip rectangle given by its edges; right and bottom are
// exclusive.
type Scissor struct {
	X, Y, Right, Bottom int
}

func invalid(kind, s string, cause error) error {
	if cause != nil {
		return fmt.Errorf("config: invalid %s %q: %w: %v", kind, s, ErrInvalidArgument, cause)
	}
	return fmt.Errorf("config: invalid %s %q: %w", kind, s, ErrInvalidArgument)
}

func fields(kind, s string, n int) ([]string, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, invalid(kind, s, fmt.Errorf("want %d comma-separated values, got %d", n, len(parts)))
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts, nil
}

func ints(kind, s string, n int) ([]int, error) {
	parts, err := fields(kind, s, n)
	if err != nil {
		return nil, err
	}
	out := make([]int, n)
	for i, p := range parts {
		if out[i], err = strconv.Atoi(p); err != nil {
			return nil, invalid(kind, s, err)
		}
	}
	return out, nil
}

func floats(kind, s string, n int) ([]float32, error) {
	parts, err := fields(kind, s, n)
	if err != nil {
		return nil, err
	}
	out := make([]float32, n)
	for i, p := range parts {
		v, err := strconv.ParseFloat(p, 32)
		if err != nil {
			return nil, invalid(kind, s, err)
		}
		out[i] = float32(v)
	}
	return out, nil
}

// ParseBuffer parses "width,height,FORMAT". Unknown format names resolve
// to format.Default with a warning.
func ParseBuffer(s string) (BufferSpec, error) {
	parts, err := fields("buffer", s, 3)
	if err != nil {
		return BufferSpec{}, err
	}
	w, err := strconv.Atoi(parts[0])
	if err != nil {
		return BufferSpec{}, invalid("buffer", s, err)
	}
	h, err := strconv.Atoi(parts[1])
	if err != nil {
		return BufferSpec{}, invalid("buffer", s, err)
	}
	if w <= 0 || h <= 0 {
		return BufferSpec{}, invalid("buffer", s, fmt.Errorf("dimensions must be positive"))
	}
	return BufferSpec{Width: w, Height: h, Format: format.Parse(parts[2])}, nil
}

// ParseMatrix parses nine comma-separated floats in row-major order.
func ParseMatrix(s string) (render.Matrix, error) {
	v, err := floats("matrix", s, 9)
	if err != nil {
		return render.Matrix{}, err
	}
	var m render.Matrix
	for i := range v {
		m.M[i/3][i%3] = v[i]
	}
	return m, nil
}

// ParseRect parses "x,y,width,height".
func ParseRect(s string) (render.Rect, error) {
	v, err := ints("rectangle", s, 4)
	if err != nil {
		return render.Rect{}, err
	}
	return render.Rect{X: v[0], Y: v[1], Width: v[2], Height: v[3]}, nil
}

// ParseBoundingBox parses "left,top,right,bottom" as floats.
func ParseBoundingBox(s string) ([4]float32, error) {
	v, err := floats("bounding box", s, 4)
	if err != nil {
		return [4]float32{}, err
	}
	return [4]float32(v), nil
}

// ParseScissor parses "x,y,right,bottom".
func ParseScissor(s string) (Scissor, error) {
	v, err := ints("scissor", s, 4)
	if err != nil {
		return Scissor{}, err
	}
	if v[2] < v[0] || v[3] < v[1] {
		return Scissor{}, invalid("scissor", s, fmt.Errorf("right/bottom before x/y"))
	}
	return Scissor{X: v[0], Y: v[1], Right: v[2], Bottom: v[3]}, nil
}

// ParseColor parses a hexadecimal AABBGGRR color with an optional 0x
// prefix.
func ParseColor(s string) (render.Color, error) {
	t := strings.TrimSpace(s)
	t = strings.TrimPrefix(strings.TrimPrefix(t, "0x"), "0X")
	v, err := strconv.ParseUint(t, 16, 32)
	if err != nil {
		return 0, invalid("color", s, err)
	}
	return render.Color(v), nil
}
