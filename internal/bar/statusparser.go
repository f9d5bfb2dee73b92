// gobar
//
// Copyright (C) 2014,2022 Karol 'Kenji Takahashi' Woźniak
//
// Permission is hereby granted, free of charge, to any person obtaining
// a copy of this software and associated documentation files (the "Software"),
// to deal in the Software without restriction, including without limitation
// the rights to use, copy, modify, merge, publish, distribute, sublicense,
// and/or sell copies of the Software, and to permit persons to whom the
// Software is furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included
// in all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
// EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES
// OF MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.
// IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM,
// DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT,
// TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE
// OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

package bar

import (
	"bufio"
	"io"
	"regexp"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/distatus/tilewm/internal/drw"
	"github.com/jezek/xgbutil/xgraphics"
)

// Align is a status2d text run's alignment within its module span
// (spec §4.9's status2d module).
type Align uint8

const (
	AlignLeft Align = iota
	AlignRight
)

// endScan stops bufio.Scanner at a newline, matching WM_NAME never
// containing one in practice but guarding against malformed input.
type endScan struct{}

func (endScan) Error() string { return "end of status scan" }

// StatusRun is one color/font/alignment-tagged run of text inside a
// status2d string, the unit status2d's draw-fn iterates over.
type StatusRun struct {
	Text       string
	FontIndex  uint
	Align      Align
	Foreground *xgraphics.BGRA
	Background *xgraphics.BGRA

	origin *StatusRun
}

// StatusParser tokenizes the status2d escape language: `{F<n>` selects
// a font index, `{CF<0xAARRGGBB>`/`{CB<...>` set foreground/background,
// `{AR` right-aligns subsequent text until the matching `}`, and a
// `{`/`}` pair that does not open with one of those escapes has its
// braces dropped and its contents kept as plain text.
type StatusParser struct {
	rgb *regexp.Regexp
}

// NewStatusParser builds a parser ready to Scan status strings.
func NewStatusParser() *StatusParser {
	return &StatusParser{rgb: regexp.MustCompile(`^0[xX][0-9a-fA-F]{8}$`)}
}

func (p *StatusParser) tokenize(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF {
		return 0, nil, nil
	}
	switch {
	case data[0] == '\n':
		return 0, nil, endScan{}
	case len(data) >= 2 && string(data[:2]) == "{F":
		return 2, data[:2], nil
	case len(data) >= 3 && string(data[:3]) == "{CF":
		return 3, data[:3], nil
	case len(data) >= 3 && string(data[:3]) == "{CB":
		return 3, data[:3], nil
	case len(data) >= 3 && string(data[:3]) == "{AR":
		return 3, data[:3], nil
	case len(data) >= 10 && p.rgb.Match(data[:10]):
		return 10, data[:10], nil
	case '0' <= data[0] && data[0] <= '9':
		i := 0
		for i < len(data) && '0' <= data[i] && data[i] <= '9' {
			i++
		}
		return i, data[:i], nil
	default:
		return 1, data[:1], nil
	}
}

// Scan tokenizes r into a sequence of StatusRuns, in left-to-right
// display order, with empty runs omitted.
func (p *StatusParser) Scan(r io.Reader) []*StatusRun {
	scanner := bufio.NewScanner(r)
	scanner.Split(p.tokenize)

	var runs []*StatusRun
	current := &StatusRun{}
	runs = append(runs, current)

	moveCurrent := func(closeEscape bool) *StatusRun {
		next := &StatusRun{}
		if closeEscape && current.origin != nil {
			*next = *current.origin
		} else {
			*next = *current
			next.origin = current
		}
		next.Text = ""
		runs = append(runs, next)
		current = next
		return next
	}

	logBad := func(err error, pieces ...string) {
		logrus.WithError(err).Warnf("status2d: could not parse %q", pieces)
		for _, piece := range pieces {
			current.Text += piece
		}
	}

	bracketing := 0
	for scanner.Scan() {
		tok := scanner.Text()
		switch {
		case tok == "{F":
			scanner.Scan()
			n := scanner.Text()
			v, err := strconv.Atoi(n)
			if err != nil {
				logBad(err, tok, n)
				continue
			}
			moveCurrent(false).FontIndex = uint(v)
		case tok == "{CF":
			scanner.Scan()
			n := scanner.Text()
			v, err := strconv.ParseUint(n, 0, 32)
			if err != nil {
				logBad(err, tok, n)
				continue
			}
			c := drw.NewBGRA(v)
			moveCurrent(false).Foreground = &c
		case tok == "{CB":
			scanner.Scan()
			n := scanner.Text()
			v, err := strconv.ParseUint(n, 0, 32)
			if err != nil {
				logBad(err, tok, n)
				continue
			}
			c := drw.NewBGRA(v)
			moveCurrent(false).Background = &c
		case tok == "{AR":
			moveCurrent(false).Align = AlignRight
		case tok == "{":
			bracketing++
		case tok == "}":
			if bracketing > 0 {
				bracketing--
				continue
			}
			if current.origin != nil {
				moveCurrent(true)
				continue
			}
			current.Text += tok
		default:
			current.Text += tok
		}
	}

	var out []*StatusRun
	for _, run := range runs {
		if run.Text != "" {
			out = append(out, run)
		}
	}
	return out
}
