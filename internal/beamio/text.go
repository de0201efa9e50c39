package beamio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alexiusacademia/gosmd/internal/beam"
	"github.com/alexiusacademia/gosmd/internal/poly"
)

// Section headers of the text format
const (
	HeaderBeam        = "#B"
	HeaderPoint       = "#PF"
	HeaderDistributed = "#DF"
)

type block int

const (
	blockNone block = iota
	blockBeam
	blockPoint
	blockDistributed
)

// ParseError reports the first line of the text format that could not be
// read. Lines are numbered from 1.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

// Read parses the line oriented beam format:
//
//	#B
//	<length> [capacity]
//	#PF
//	<distance> <force>
//	#DF
//	<start> <end> [ c0 c1 ... ]
//
// #B comes first; #PF and #DF are optional and may come in either order.
// A line holding a single integer right after #PF or #DF is a load count
// and is skipped. A blank line or EOF ends the input. Without a capacity
// Input.Capacity stays 0 so the caller's default applies.
func Read(r io.Reader) (*Input, error) {
	in := &Input{}
	sc := bufio.NewScanner(r)

	state := blockNone
	seenBeam := false
	first := false // next line is the first of its block
	lineNo := 0

	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())

		if line == "" {
			if !seenBeam && state == blockNone {
				continue
			}
			break
		}

		if strings.HasPrefix(line, "#") {
			next, err := header(line, state, lineNo)
			if err != nil {
				return nil, err
			}
			state, first = next, true
			continue
		}

		var err error
		switch state {
		case blockNone:
			err = &ParseError{lineNo, fmt.Sprintf("expected %s, got %q", HeaderBeam, line)}
		case blockBeam:
			if seenBeam {
				err = &ParseError{lineNo, "beam block holds a single line"}
				break
			}
			err = parseBeamLine(line, in, lineNo)
			seenBeam = true
		case blockPoint:
			if first && isCount(line) {
				break
			}
			var p beam.PointLoad
			p, err = parsePointLine(line, lineNo)
			in.PointLoads = append(in.PointLoads, p)
		case blockDistributed:
			if first && isCount(line) {
				break
			}
			var d beam.DistributedLoad
			d, err = parseDistributedLine(line, lineNo)
			in.DistributedLoads = append(in.DistributedLoads, d)
		}
		if err != nil {
			return nil, err
		}
		first = false
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	if !seenBeam {
		return nil, &ParseError{lineNo + 1, "missing beam definition"}
	}
	return in, nil
}

func header(line string, state block, lineNo int) (block, error) {
	switch line {
	case HeaderBeam:
		if state != blockNone {
			return state, &ParseError{lineNo, "duplicate " + HeaderBeam}
		}
		return blockBeam, nil
	case HeaderPoint:
		if state == blockNone {
			return state, &ParseError{lineNo, HeaderBeam + " must come first"}
		}
		return blockPoint, nil
	case HeaderDistributed:
		if state == blockNone {
			return state, &ParseError{lineNo, HeaderBeam + " must come first"}
		}
		return blockDistributed, nil
	}
	return state, &ParseError{lineNo, fmt.Sprintf("unknown header %q", line)}
}

func parseBeamLine(line string, in *Input, lineNo int) error {
	fields := strings.Fields(line)
	if len(fields) < 1 || len(fields) > 2 {
		return &ParseError{lineNo, "expected <length> [capacity]"}
	}

	length, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return &ParseError{lineNo, fmt.Sprintf("bad beam length %q", fields[0])}
	}
	in.Length = length

	if len(fields) == 2 {
		capacity, err := strconv.Atoi(fields[1])
		if err != nil {
			return &ParseError{lineNo, fmt.Sprintf("bad section capacity %q", fields[1])}
		}
		in.Capacity = capacity
	}
	return nil
}

func parsePointLine(line string, lineNo int) (beam.PointLoad, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return beam.PointLoad{}, &ParseError{lineNo, "expected <distance> <force>"}
	}
	vals, err := parseFloats(fields, lineNo)
	if err != nil {
		return beam.PointLoad{}, err
	}
	return beam.PointLoad{Distance: vals[0], Force: vals[1]}, nil
}

func parseDistributedLine(line string, lineNo int) (beam.DistributedLoad, error) {
	open := strings.Index(line, "[")
	closing := strings.LastIndex(line, "]")
	if open < 0 || closing < open {
		return beam.DistributedLoad{}, &ParseError{lineNo, "expected <start> <end> [ coefficients ]"}
	}
	if strings.TrimSpace(line[closing+1:]) != "" {
		return beam.DistributedLoad{}, &ParseError{lineNo, "unexpected text after ]"}
	}

	props := strings.Fields(line[:open])
	if len(props) != 2 {
		return beam.DistributedLoad{}, &ParseError{lineNo, "expected <start> <end> before ["}
	}
	bounds, err := parseFloats(props, lineNo)
	if err != nil {
		return beam.DistributedLoad{}, err
	}

	coeffs, err := parseFloats(strings.Fields(line[open+1:closing]), lineNo)
	if err != nil {
		return beam.DistributedLoad{}, err
	}

	return beam.DistributedLoad{
		Start:      bounds[0],
		End:        bounds[1],
		Polynomial: poly.FromSlice(coeffs),
	}, nil
}

func parseFloats(fields []string, lineNo int) ([]float64, error) {
	vals := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, &ParseError{lineNo, fmt.Sprintf("bad number %q", f)}
		}
		vals[i] = v
	}
	return vals, nil
}

func isCount(line string) bool {
	_, err := strconv.Atoi(line)
	return err == nil
}

// Write emits the input in the format Read accepts
func Write(w io.Writer, in *Input) error {
	bw := bufio.NewWriter(w)

	// a zero capacity stays implicit so the reader's default applies
	fmt.Fprintln(bw, HeaderBeam)
	if in.Capacity == 0 {
		fmt.Fprintln(bw, formatFloat(in.Length))
	} else {
		fmt.Fprintf(bw, "%s %d\n", formatFloat(in.Length), in.Capacity)
	}

	fmt.Fprintln(bw, HeaderPoint)
	for _, p := range in.PointLoads {
		fmt.Fprintf(bw, "%s %s\n", formatFloat(p.Distance), formatFloat(p.Force))
	}

	fmt.Fprintln(bw, HeaderDistributed)
	for _, d := range in.DistributedLoads {
		n := d.Polynomial.Degree() + 1
		if n < 1 {
			n = 1
		}
		coeffs := make([]string, n)
		for i := range coeffs {
			coeffs[i] = formatFloat(d.Polynomial[i])
		}
		fmt.Fprintf(bw, "%s %s [%s]\n", formatFloat(d.Start), formatFloat(d.End), strings.Join(coeffs, " "))
	}

	return bw.Flush()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
