package bar

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jezek/xgbutil/xgraphics"
)

func runTexts(runs []*StatusRun) []string {
	out := make([]string, len(runs))
	for i, r := range runs {
		out[i] = r.Text
	}
	return out
}

func TestScanPlainText(t *testing.T) {
	p := NewStatusParser()
	runs := p.Scan(strings.NewReader("hello"))
	assert.Equal(t, []string{"hello"}, runTexts(runs))
}

func TestScanFontEscape(t *testing.T) {
	p := NewStatusParser()
	runs := p.Scan(strings.NewReader("{F1test}"))
	if assert.Len(t, runs, 1) {
		assert.Equal(t, "test", runs[0].Text)
		assert.Equal(t, uint(1), runs[0].FontIndex)
	}
}

func TestScanColorEscapes(t *testing.T) {
	p := NewStatusParser()
	runs := p.Scan(strings.NewReader("{CF0xFF00AA33test}"))
	if assert.Len(t, runs, 1) {
		want := &xgraphics.BGRA{B: 0x33, G: 0xAA, R: 0x00, A: 0xFF}
		assert.Equal(t, *want, *runs[0].Foreground)
	}
}

func TestScanAlignRight(t *testing.T) {
	p := NewStatusParser()
	runs := p.Scan(strings.NewReader("{ARtest}"))
	if assert.Len(t, runs, 1) {
		assert.Equal(t, AlignRight, runs[0].Align)
	}
}

func TestScanNestedEscapeRestoresOuterOnClose(t *testing.T) {
	p := NewStatusParser()
	runs := p.Scan(strings.NewReader("{F1test1{F2test2}test3}"))
	if !assert.Len(t, runs, 3) {
		return
	}
	assert.Equal(t, "test1", runs[0].Text)
	assert.Equal(t, uint(1), runs[0].FontIndex)
	assert.Equal(t, "test2", runs[1].Text)
	assert.Equal(t, uint(2), runs[1].FontIndex)
	assert.Equal(t, "test3", runs[2].Text, "should restore outer font 1")
	assert.Equal(t, uint(1), runs[2].FontIndex)
}

func TestScanMultipleTopLevelRuns(t *testing.T) {
	p := NewStatusParser()
	runs := p.Scan(strings.NewReader("test1{F1test2}test3"))
	assert.Equal(t, []string{"test1", "test2", "test3"}, runTexts(runs))
	if assert.True(t, len(runs) > 1) {
		assert.Equal(t, uint(1), runs[1].FontIndex)
	}
}

func TestScanLiteralBraceWithoutEscape(t *testing.T) {
	p := NewStatusParser()
	runs := p.Scan(strings.NewReader("{test1}"))
	assert.Equal(t, []string{"test1"}, runTexts(runs), "unrecognized escape should drop its braces and keep its contents")
}
