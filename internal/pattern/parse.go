package pattern

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ParsePlaintext reads the LifeWiki plaintext format: '!' starts a comment
// line, 'O' or '*' is a live cell and any other character is dead.
// A "!Name:" comment sets the pattern name.
func ParsePlaintext(name string, r io.Reader) (Pattern, error) {
	var coords [][2]int
	descr := ""
	y := 0
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.HasPrefix(line, "!") {
			meta := strings.TrimSpace(strings.TrimPrefix(line, "!"))
			if v, ok := strings.CutPrefix(meta, "Name:"); ok && name == "" {
				name = strings.TrimSpace(v)
			} else if descr == "" && meta != "" {
				descr = meta
			}
			continue
		}
		x := 0
		for _, ch := range line {
			if ch == 'O' || ch == '*' {
				coords = append(coords, [2]int{x, y})
			}
			x++
		}
		y++
	}
	if err := sc.Err(); err != nil {
		return Pattern{}, fmt.Errorf("pattern %s: %w", name, err)
	}
	if len(coords) == 0 {
		return Pattern{}, fmt.Errorf("pattern %s: no live cells", name)
	}
	p := New(name, coords)
	p.Descr = descr
	return p, nil
}

// ReadPGM reads a binary (P5) greymap; any non-zero pixel is a live cell.
func ReadPGM(name string, r io.Reader) (Pattern, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Pattern{}, fmt.Errorf("pattern %s: %w", name, err)
	}

	var header [4]string
	pos := 0
	for i := range header {
		tok, next, err := pgmToken(data, pos)
		if err != nil {
			return Pattern{}, fmt.Errorf("pattern %s: %w", name, err)
		}
		header[i], pos = tok, next
	}
	if header[0] != "P5" {
		return Pattern{}, fmt.Errorf("pattern %s: not a binary pgm file", name)
	}
	width, errW := strconv.Atoi(header[1])
	height, errH := strconv.Atoi(header[2])
	maxval, errM := strconv.Atoi(header[3])
	if errW != nil || errH != nil || errM != nil || width <= 0 || height <= 0 || maxval <= 0 || maxval > 255 {
		return Pattern{}, fmt.Errorf("pattern %s: bad pgm header %v", name, header[1:])
	}
	// A single whitespace byte separates the header from the raster.
	pos++
	if pos > len(data) || width > (len(data)-pos)/height {
		return Pattern{}, fmt.Errorf("pattern %s: pgm raster truncated", name)
	}

	var coords [][2]int
	raster := data[pos : pos+width*height]
	for i, v := range raster {
		if v != 0 {
			coords = append(coords, [2]int{i % width, i / width})
		}
	}
	if len(coords) == 0 {
		return Pattern{}, fmt.Errorf("pattern %s: no live cells", name)
	}
	return New(name, coords), nil
}

// pgmToken returns the next whitespace-separated header token starting at
// pos, skipping '#' comments.
func pgmToken(data []byte, pos int) (string, int, error) {
	for pos < len(data) {
		switch c := data[pos]; {
		case c == '#':
			nl := bytes.IndexByte(data[pos:], '\n')
			if nl < 0 {
				return "", pos, io.ErrUnexpectedEOF
			}
			pos += nl + 1
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			pos++
		default:
			start := pos
			for pos < len(data) && !isSpace(data[pos]) {
				pos++
			}
			return string(data[start:pos]), pos, nil
		}
	}
	return "", pos, io.ErrUnexpectedEOF
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// Resolve interprets ref as a registered name, a pattern file (.pgm,
// .cells, .txt) or an inline coordinate list, in that order.
func Resolve(ref string) (Pattern, error) {
	if p, err := Lookup(ref); err == nil {
		return p, nil
	}
	switch ext := strings.ToLower(filepath.Ext(ref)); ext {
	case ".pgm", ".cells", ".txt":
		f, err := os.Open(ref)
		if err != nil {
			return Pattern{}, err
		}
		defer f.Close()
		name := strings.TrimSuffix(filepath.Base(ref), filepath.Ext(ref))
		if ext == ".pgm" {
			return ReadPGM(name, f)
		}
		return ParsePlaintext(name, f)
	}
	if strings.Contains(ref, ",") {
		return ParseCoords("custom", ref)
	}
	return Pattern{}, fmt.Errorf("%w: %q", ErrUnknown, ref)
}
