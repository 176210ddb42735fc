// internal/mapping/mapping.go
package mapping

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/tamzrod/modbus-sensorbridge/internal/encoding"
)

// Entry binds one register address to a sensor channel and its encoding.
// Depending on the encoding an entry spans one or two consecutive
// registers starting at Address.
type Entry struct {
	Address uint16
	Path    string // module serial + "." + channel, e.g. MOD-0001.temperature
	Enc     encoding.Encoding
}

// Load reads and validates a mapping file.
func Load(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mapping: %w", err)
	}
	defer f.Close()

	entries, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("mapping %s: %w", path, err)
	}
	return entries, nil
}

// Parse reads one entry per non-empty line:
//
//	address,sensorPath,encoding
//
// Addresses are decimal or 0x-prefixed hex. Blank lines and lines
// starting with '#' are skipped. The parsed table is validated before it
// is returned; any parse or validation failure is a configuration error.
func Parse(r io.Reader) ([]Entry, error) {
	var entries []Entry

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		e, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		entries = append(entries, e)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	if err := Validate(entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func parseLine(line string) (Entry, error) {
	fields := strings.Split(line, ",")
	if len(fields) != 3 {
		return Entry{}, fmt.Errorf("want address,sensorPath,encoding, got %d fields", len(fields))
	}

	addr, err := parseAddress(strings.TrimSpace(fields[0]))
	if err != nil {
		return Entry{}, fmt.Errorf("bad address %q", strings.TrimSpace(fields[0]))
	}

	path := strings.TrimSpace(fields[1])
	if path == "" {
		return Entry{}, errors.New("empty sensor path")
	}

	enc, err := encoding.Parse(strings.TrimSpace(fields[2]))
	if err != nil {
		return Entry{}, err
	}

	return Entry{Address: uint16(addr), Path: path, Enc: enc}, nil
}

// parseAddress accepts decimal or 0x-prefixed hex only. Plain base-0
// parsing would also accept octal, which turns a zero-padded decimal
// like 0100 into 64 in a hand-edited file.
func parseAddress(s string) (uint64, error) {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return strconv.ParseUint(s[2:], 16, 16)
	}
	return strconv.ParseUint(s, 10, 16)
}

// Validate rejects tables whose entry footprints overlap or run past the
// end of the register space.
func Validate(entries []Entry) error {
	type span struct {
		start, end uint16
		path       string
	}

	var spans []span
	for _, e := range entries {
		last := uint32(e.Address) + uint32(e.Enc.Words()) - 1
		if last > 0xFFFF {
			return fmt.Errorf(
				"entry %s: address %d (%s) extends past end of register space",
				e.Path, e.Address, e.Enc,
			)
		}

		start, end := e.Address, uint16(last)
		for _, s := range spans {
			// overlap check (inclusive)
			if !(end < s.start || start > s.end) {
				return fmt.Errorf(
					"address collision: %s range %d-%d overlaps %s range %d-%d",
					e.Path, start, end, s.path, s.start, s.end,
				)
			}
		}
		spans = append(spans, span{start: start, end: end, path: e.Path})
	}

	return nil
}

// FitsRegisterSpace reports whether the register range [start,
// start+words) stays within the 16-bit register space. Ranges that run
// past 0xFFFF would wrap around on write and must be rejected up front.
func FitsRegisterSpace(start, words uint16) bool {
	return uint32(start)+uint32(words)-1 <= 0xFFFF
}

// Overlaps reports whether the register range [start, start+words)
// touches any entry's footprint. Used to keep reserved blocks (such as
// the bridge status block) out of mapped territory. The range must
// already fit the register space, see FitsRegisterSpace.
func Overlaps(entries []Entry, start, words uint16) bool {
	end := uint32(start) + uint32(words) - 1
	for _, e := range entries {
		eEnd := uint32(e.Address) + uint32(e.Enc.Words()) - 1
		if !(end < uint32(e.Address) || uint32(start) > eEnd) {
			return true
		}
	}
	return false
}
