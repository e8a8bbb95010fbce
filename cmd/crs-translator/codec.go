package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"crs-translator/internal/booking"
	"crs-translator/internal/crsline"
)

// Booking formats.
const (
	formatYAML    = "yaml"
	formatDotted  = "dotted"
	formatLetters = "letters"
)

// decodeAdapter parses an adapter booking. JSON input is accepted as YAML.
func decodeAdapter(data []byte) (*booking.AdapterBooking, error) {
	var adapter booking.AdapterBooking
	if err := yaml.Unmarshal(data, &adapter); err != nil {
		return nil, fmt.Errorf("failed to parse adapter booking: %w", err)
	}

	return &adapter, nil
}

func loadCrs(path, format string) (*booking.CrsBooking, error) {
	if path == "" {
		return &booking.CrsBooking{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read CRS booking %s: %w", path, err)
	}

	return decodeCrs(data, format)
}

func decodeCrs(data []byte, format string) (*booking.CrsBooking, error) {
	switch format {
	case formatYAML:
		var crs booking.CrsBooking
		if err := yaml.Unmarshal(data, &crs); err != nil {
			return nil, fmt.Errorf("failed to parse CRS booking: %w", err)
		}

		return &crs, nil
	case formatDotted:
		fields, err := parseDotted(data)
		if err != nil {
			return nil, err
		}

		return crsline.DecodeDotted(fields), nil
	case formatLetters:
		var values map[string]string
		if err := yaml.Unmarshal(data, &values); err != nil {
			return nil, fmt.Errorf("failed to parse letters mask: %w", err)
		}

		return crsline.DecodeLetters(values), nil
	default:
		return nil, fmt.Errorf("unknown CRS format %q", format)
	}
}

func encodeCrs(w io.Writer, crs *booking.CrsBooking, format string) error {
	switch format {
	case formatYAML:
		return writeYAML(w, crs)
	case formatDotted:
		for _, f := range crsline.EncodeDotted(crs) {
			if _, err := fmt.Fprintf(w, "%s=%s\n", f.Key, f.Value); err != nil {
				return err
			}
		}

		return nil
	case formatLetters:
		values, err := crsline.EncodeLetters(crs)
		if err != nil {
			return err
		}

		return writeYAML(w, values)
	default:
		return fmt.Errorf("unknown CRS format %q", format)
	}
}

// parseDotted reads "Key=Value" lines; blank lines and lines without "=" are skipped.
// A single line may be as long as the whole input.
func parseDotted(data []byte) ([]crsline.Field, error) {
	var fields []crsline.Field

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), max(len(data)+1, bufio.MaxScanTokenSize))

	for scanner.Scan() {
		key, value, found := strings.Cut(scanner.Text(), "=")
		if !found {
			continue
		}

		fields = append(fields, crsline.Field{Key: strings.TrimSpace(key), Value: value})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read dotted booking: %w", err)
	}

	return fields, nil
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to write YAML: %w", err)
	}

	return enc.Close()
}
