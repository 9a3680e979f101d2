package khat

import (
	"fmt"
	"strings"
)

type Mode int

const (
	Plain Mode = iota
	FullReverse
	LineReverse
	CharsWithinLineReverse
)

var modeNames = map[Mode]string{
	Plain:                  "plain",
	FullReverse:            "full",
	LineReverse:            "lines",
	CharsWithinLineReverse: "chars",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

func ParseMode(name string) (Mode, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return Plain, nil
	}
	for m, n := range modeNames {
		if n == key {
			return m, nil
		}
	}
	return Plain, errInvalidConfig(fmt.Errorf("unknown mode %q", name))
}

// ResolveMode maps the three reversal flags to a Mode. At most one may be set.
func ResolveMode(full, lines, chars bool) (Mode, error) {
	switch {
	case !full && !lines && !chars:
		return Plain, nil
	case full && !lines && !chars:
		return FullReverse, nil
	case !full && lines && !chars:
		return LineReverse, nil
	case !full && !lines && chars:
		return CharsWithinLineReverse, nil
	default:
		return Plain, errMultipleFlags()
	}
}

// Apply transforms content according to mode. It never fails.
func Apply(content string, mode Mode) string {
	switch mode {
	case FullReverse:
		return reverseRunes(content)
	case LineReverse:
		return reverseLines(content)
	case CharsWithinLineReverse:
		return reverseWithinLines(content)
	default:
		return content
	}
}

func reverseRunes(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

func reverseLines(s string) string {
	lines := strings.Split(s, "\n")
	for i, j := 0, len(lines)-1; i < j; i, j = i+1, j-1 {
		lines[i], lines[j] = lines[j], lines[i]
	}
	return strings.Join(lines, "\n")
}

func reverseWithinLines(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = reverseRunes(line)
	}
	return strings.Join(lines, "\n")
}
