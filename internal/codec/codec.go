// Package codec serializes lists to and from their on-disk interchange
// formats and handles archive compression for directory resources.
//
// The default interchange encoding is JSON; YAML and TOML are supported as
// well, selected by file extension. The record shape is identical across
// encodings: { name, resources: [{ path, kind, compress }] }.
package codec

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/nmiranda/backman/internal/list"
	"github.com/nmiranda/backman/pkg/fileutil"
)

// Format identifies an interchange encoding.
type Format string

// Supported interchange encodings.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Sentinel errors for encoding and decoding.
var (
	// ErrUnknownFormat indicates an unrecognized encoding name or extension.
	ErrUnknownFormat = errors.New("unknown format")

	// ErrDecode indicates a malformed serialized list.
	ErrDecode = errors.New("malformed list data")
)

// ParseFormat parses a format name (json, yaml, toml).
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	default:
		return "", errors.Wrapf(ErrUnknownFormat, "%q", s)
	}
}

// FormatFromPath derives the encoding from a file extension.
// The second return is false when the extension is not recognized, letting
// callers fall back to a configured default.
func FormatFromPath(path string) (Format, bool) {
	f, err := ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
	if err != nil {
		return "", false
	}
	return f, true
}

// Encode serializes a list in the given format.
func Encode(l *list.List, f Format) ([]byte, error) {
	rec := ToRecord(l)

	switch f {
	case FormatJSON:
		data, err := json.MarshalIndent(rec, "", "  ")
		if err != nil {
			return nil, errors.Wrap(err, "encoding JSON")
		}
		return append(data, '\n'), nil
	case FormatYAML:
		data, err := yaml.Marshal(rec)
		if err != nil {
			return nil, errors.Wrap(err, "encoding YAML")
		}
		return data, nil
	case FormatTOML:
		data, err := toml.Marshal(rec)
		if err != nil {
			return nil, errors.Wrap(err, "encoding TOML")
		}
		return data, nil
	default:
		return nil, errors.Wrapf(ErrUnknownFormat, "%q", f)
	}
}

// Decode deserializes a list from data in the given format.
// Malformed input surfaces as ErrDecode.
func Decode(data []byte, f Format) (*list.List, error) {
	var rec ListRecord

	switch f {
	case FormatJSON:
		if err := json.Unmarshal(data, &rec); err != nil {
			return nil, errors.Wrapf(ErrDecode, "decoding JSON: %v", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &rec); err != nil {
			return nil, errors.Wrapf(ErrDecode, "decoding YAML: %v", err)
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, &rec); err != nil {
			return nil, errors.Wrapf(ErrDecode, "decoding TOML: %v", err)
		}
	default:
		return nil, errors.Wrapf(ErrUnknownFormat, "%q", f)
	}

	return FromRecord(rec)
}

// EncodeFile serializes a list and writes it to path atomically.
// The caller is responsible for ensuring the parent directory exists.
func EncodeFile(path string, l *list.List, f Format) error {
	rec := ToRecord(l)

	switch f {
	case FormatJSON:
		return fileutil.AtomicWriteJSON(path, rec)
	case FormatYAML:
		return fileutil.AtomicWriteYAML(path, rec)
	case FormatTOML:
		return fileutil.AtomicWriteTOML(path, rec)
	default:
		return errors.Wrapf(ErrUnknownFormat, "%q", f)
	}
}

// DecodeFile reads and deserializes a list from path.
func DecodeFile(path string, f Format) (*list.List, error) {
	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		return nil, err
	}
	return Decode(data, f)
}
