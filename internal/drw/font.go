// gobar
//
// Copyright (C) 2022 Karol 'Kenji Takahashi' Woźniak
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

// Package drw is the Drawable surface (spec component 2): an offscreen
// xgraphics.Image plus a font and color-scheme table that the bar
// composer paints into before blitting to each bar's X window. Font
// resolution falls back from the exact family requested down through
// go-findfont and finally adrg/sysfont before giving up on a bundled
// bitmap font, mirroring the teacher's multi-stage font search.
package drw

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/adrg/sysfont"
	"github.com/flopp/go-findfont"
	"github.com/jezek/xgbutil/xgraphics"
	"golang.org/x/image/font"
	"golang.org/x/image/font/inconsolata"
	"golang.org/x/image/font/opentype"
)

// FindFont resolves a "name:size" spec (spec §6's compiled-in font
// list) to a usable font.Face, trying go-findfont first and falling
// back to sysfont's system-wide scan, and finally a bundled bitmap
// font if nothing else loads (spec §7: "missing fonts: none of the
// configured fonts load -> abort" is the caller's responsibility once
// every configured spec has been tried and failed).
func FindFont(spec string) font.Face {
	i := strings.LastIndexByte(spec, ':')
	name, size := parseFontSize(spec, i)

	fontPath, err := findfont.Find(name)
	if err != nil {
		logrus.WithError(err).Warnf("drw: could not find font %q, trying fallback method", spec)
		return findFontFallback(spec, size)
	}
	fontFile, err := os.Open(fontPath)
	if err != nil {
		logrus.WithError(err).Warnf("drw: could not open font %q, trying fallback", fontPath)
		return findFontFallback(spec, size)
	}
	face, err := parseFontFace(fontFile, size)
	if err != nil {
		logrus.WithError(err).Warnf("drw: could not parse font %q, trying fallback", fontPath)
		return findFontFallback(spec, size)
	}
	return face
}

var fallbackFinder *sysfont.Finder

func findFontFallback(spec string, size float64) font.Face {
	if fallbackFinder == nil {
		fallbackFinder = sysfont.NewFinder(nil)
	}

	match := fallbackFinder.Match(spec)
	if match == nil {
		logrus.Warnf("drw: could not find font %q, using bundled inconsolata 8x16", spec)
		return inconsolata.Regular8x16
	}
	fontFile, err := os.Open(match.Filename)
	if err != nil {
		logrus.WithError(err).Warnf("drw: could not open font %q, using bundled inconsolata 8x16", match.Filename)
		return inconsolata.Regular8x16
	}
	face, err := parseFontFace(fontFile, size)
	if err != nil {
		logrus.WithError(err).Warnf("drw: could not parse font %q, using bundled inconsolata 8x16", match.Filename)
		return inconsolata.Regular8x16
	}
	logrus.Infof("drw: using fallback font %q", match.Filename)
	return face
}

func parseFontFace(file io.Reader, size float64) (font.Face, error) {
	otf, err := xgraphics.ParseFont(file)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(otf, &opentype.FaceOptions{Size: size, DPI: 72})
}

func parseFontSize(spec string, i int) (string, float64) {
	if i == -1 {
		logrus.Warnf("drw: font size not specified for %q, using 12", spec)
		return spec, 12
	}
	name, sizeStr := spec[:i], spec[i+1:]
	size, err := strconv.ParseFloat(sizeStr, 32)
	if err != nil {
		logrus.WithError(err).Warnf("drw: invalid font size %q for %q, using 12", sizeStr, name)
		size = 12
	}
	return name, size
}
