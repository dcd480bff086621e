package gonml

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/reoring/gonml/codec"
	"github.com/reoring/gonml/i18n"
	"github.com/reoring/gonml/internal/scan"
)

// Converter turns the raw text fragments of one assignment into a typed
// value.
type Converter func(fragments []string) (any, error)

// ConverterTable maps block name → param name → Converter. Tables are
// usually derived from a Registry but can be assembled by hand for untyped
// sections.
type ConverterTable map[string]map[string]Converter

var logger = log.Default()

// SetLogger replaces the package logger used for reader and writer
// warnings.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// converterFor builds the Converter for a declared kind and list flag.
func converterFor(kind Kind, isList bool) Converter {
	if isList {
		switch kind {
		case KindInt:
			return func(f []string) (any, error) { return codec.DecodeList(f, codec.DecodeInt) }
		case KindFloat:
			return func(f []string) (any, error) { return codec.DecodeList(f, codec.DecodeFloat) }
		case KindBool:
			return func(f []string) (any, error) { return codec.DecodeList(f, codec.DecodeBool) }
		default:
			return func(f []string) (any, error) { return codec.DecodeList(f, codec.DecodeString) }
		}
	}
	switch kind {
	case KindInt:
		return func(f []string) (any, error) { return codec.DecodeInt(strings.Join(f, "")) }
	case KindFloat:
		return func(f []string) (any, error) { return codec.DecodeFloat(strings.Join(f, "")) }
	case KindBool:
		return func(f []string) (any, error) { return codec.DecodeBool(strings.Join(f, "")) }
	default:
		return func(f []string) (any, error) { return codec.DecodeString(strings.Join(f, "")) }
	}
}

// ConverterFor exposes the kind→Converter mapping for callers assembling
// tables by hand.
func ConverterFor(kind Kind, isList bool) Converter { return converterFor(kind, isList) }

// Read parses namelist text into an ordered nested mapping using the given
// converter table. Blocks and parameters absent from the table are dropped
// with a warning; any codec failure aborts the whole read.
func Read(text string, table ConverterTable) (*DocDict, error) {
	out := NewDocDict()
	for _, blk := range pipeline(text) {
		row, ok := table[blk.Name]
		if !ok {
			logger.Warn("unknown block, skipping", "block", blk.Name)
			continue
		}
		d := NewDict()
		for _, asn := range scan.ExtractParams(blk.Body) {
			conv, ok := row[asn.Name]
			if !ok {
				logger.Warn("unknown parameter, skipping", "block", blk.Name, "param", asn.Name)
				continue
			}
			v, err := conv(asn.Fragments)
			if err != nil {
				return nil, Issues{{
					Code:    CodeParse,
					Block:   blk.Name,
					Param:   asn.Name,
					Value:   strings.Join(asn.Fragments, ""),
					Message: fmt.Sprintf("cannot convert %s: %v", asn.Name, err),
					Hint:    i18n.T(CodeParse, nil),
					Cause:   err,
				}}
			}
			d.Set(asn.Name, v)
		}
		out.Set(blk.Name, d)
	}
	return out, nil
}

// ReadAs reads using the converter table registered for a document kind.
func ReadAs(text, kind string) (*DocDict, error) {
	table, err := DefaultRegistry.ConverterTable(kind)
	if err != nil {
		return nil, err
	}
	return Read(text, table)
}

// ReadRaw reads without a schema, inferring each value's type from its
// text: booleans, then ints, then floats, then strings. Comma-separated
// values become lists typed after their first element.
func ReadRaw(text string) (*DocDict, error) {
	out := NewDocDict()
	for _, blk := range pipeline(text) {
		d := NewDict()
		for _, asn := range scan.ExtractParams(blk.Body) {
			v, err := guessValue(asn.Fragments)
			if err != nil {
				return nil, Issues{{
					Code:    CodeParse,
					Block:   blk.Name,
					Param:   asn.Name,
					Value:   strings.Join(asn.Fragments, ""),
					Message: fmt.Sprintf("cannot convert %s: %v", asn.Name, err),
					Hint:    i18n.T(CodeParse, nil),
					Cause:   err,
				}}
			}
			d.Set(asn.Name, v)
		}
		out.Set(blk.Name, d)
	}
	return out, nil
}

// ReadFile reads a namelist file with the given table.
func ReadFile(path string, table ConverterTable) (*DocDict, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Read(string(data), table)
}

// pipeline applies the strip stages in order and splits the result into
// blocks.
func pipeline(text string) []scan.Block {
	text = scan.StripComments(text)
	text = scan.StripEmptyLines(text)
	text = scan.StripTrailingWhitespace(text)
	return scan.SplitBlocks(text)
}

// guessValue infers a typed value from raw fragments when no schema is
// available.
func guessValue(fragments []string) (any, error) {
	joined := strings.Join(fragments, "")
	isList := len(fragments) > 1 || strings.Contains(joined, ",")
	first := joined
	if isList {
		for _, tok := range strings.Split(joined, ",") {
			if strings.TrimSpace(tok) != "" {
				first = tok
				break
			}
		}
	}
	kind := guessKind(first)
	conv := converterFor(kind, isList)
	return conv(fragments)
}

func guessKind(token string) Kind {
	if _, err := codec.DecodeBool(token); err == nil {
		return KindBool
	}
	if _, err := codec.DecodeInt(token); err == nil {
		return KindInt
	}
	if _, err := codec.DecodeFloat(token); err == nil {
		return KindFloat
	}
	return KindString
}
