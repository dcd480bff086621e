package gonml

import (
	"fmt"
	"os"
	"strings"

	"github.com/reoring/gonml/codec"
	"github.com/reoring/gonml/i18n"
)

// Encoder renders a typed value as namelist text. Explicit tables use it;
// the default writer infers encoders from runtime types instead.
type Encoder func(v any) (string, error)

// EncoderTable maps block name → param name → Encoder for explicit-table
// writing.
type EncoderTable map[string]map[string]Encoder

// WriteOption configures Write.
type WriteOption func(*writeConfig)

type writeConfig struct {
	wrapWidth int
	table     EncoderTable
}

// WrapLists breaks encoded lists after every width items, aligning
// continuation lines under the first value.
func WrapLists(width int) WriteOption {
	return func(c *writeConfig) { c.wrapWidth = width }
}

// WithEncoders switches Write to explicit-table mode: parameters without an
// entry are skipped with a warning instead of auto-detected.
func WithEncoders(table EncoderTable) WriteOption {
	return func(c *writeConfig) { c.table = table }
}

// Write renders the nested mapping as namelist text. Blocks and parameters
// keep input order; unset (nil) parameters are omitted.
func Write(doc *DocDict, opts ...WriteOption) (string, error) {
	cfg := writeConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	b := &strings.Builder{}
	for _, blockName := range doc.Keys() {
		params, _ := doc.Get(blockName)
		b.WriteString("&" + blockName + "\n")
		for _, name := range params.Keys() {
			v, _ := params.Get(name)
			if v == nil {
				continue
			}
			var enc string
			var err error
			if cfg.table != nil {
				row := cfg.table[blockName]
				e, ok := row[name]
				if !ok {
					logger.Warn("no encoder registered, skipping", "block", blockName, "param", name)
					continue
				}
				enc, err = e(v)
			} else {
				enc, err = encodeAuto(name, v, cfg.wrapWidth)
			}
			if err != nil {
				iss, _ := AsIssues(err)
				for i := range iss {
					iss[i].Block = blockName
				}
				return "", iss
			}
			fmt.Fprintf(b, "   %s = %s\n", name, enc)
		}
		b.WriteString("/\n")
	}
	return b.String(), nil
}

// WriteDoc renders a typed document, omitting unset parameters and empty
// blocks.
func WriteDoc(d *Document, opts ...WriteOption) (string, error) {
	return Write(d.ToDict(false), opts...)
}

// WriteFile renders the mapping and writes it to path.
func WriteFile(path string, doc *DocDict, opts ...WriteOption) error {
	text, err := Write(doc, opts...)
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(text), 0o644)
}

// encodeAuto infers the encoder from the value's runtime type. Lists take
// their encoder from the first element and must be uniform.
func encodeAuto(name string, v any, wrapWidth int) (string, error) {
	indent := len("   " + name + " = ")
	switch x := v.(type) {
	case int:
		return codec.EncodeInt(x), nil
	case float64:
		return codec.EncodeFloat(x), nil
	case bool:
		return codec.EncodeBool(x), nil
	case string:
		return codec.EncodeString(x), nil
	case []int:
		return codec.EncodeList(x, codec.EncodeInt, wrapWidth, indent), nil
	case []float64:
		return codec.EncodeList(x, codec.EncodeFloat, wrapWidth, indent), nil
	case []bool:
		return codec.EncodeList(x, codec.EncodeBool, wrapWidth, indent), nil
	case []string:
		return codec.EncodeList(x, codec.EncodeString, wrapWidth, indent), nil
	case []any:
		xs, err := uniform(name, x)
		if err != nil {
			return "", err
		}
		return encodeAuto(name, xs, wrapWidth)
	}
	return "", Issues{{
		Code:    CodeInvalidType,
		Param:   name,
		Value:   v,
		Message: fmt.Sprintf("%s holds unsupported type %T", name, v),
		Hint:    i18n.T(CodeInvalidType, nil),
	}}
}

// uniform narrows a []any list to a typed slice, failing when elements mix
// types.
func uniform(name string, xs []any) (any, error) {
	if len(xs) == 0 {
		return []string{}, nil
	}
	mismatch := func(i int) error {
		return Issues{{
			Code:    CodeInvalidType,
			Param:   name,
			Value:   xs[i],
			Message: fmt.Sprintf("%s mixes element types: %T then %T", name, xs[0], xs[i]),
			Hint:    i18n.T(CodeInvalidType, nil),
		}}
	}
	switch xs[0].(type) {
	case int:
		out := make([]int, len(xs))
		for i, e := range xs {
			x, ok := e.(int)
			if !ok {
				return nil, mismatch(i)
			}
			out[i] = x
		}
		return out, nil
	case float64:
		out := make([]float64, len(xs))
		for i, e := range xs {
			x, ok := e.(float64)
			if !ok {
				return nil, mismatch(i)
			}
			out[i] = x
		}
		return out, nil
	case bool:
		out := make([]bool, len(xs))
		for i, e := range xs {
			x, ok := e.(bool)
			if !ok {
				return nil, mismatch(i)
			}
			out[i] = x
		}
		return out, nil
	case string:
		out := make([]string, len(xs))
		for i, e := range xs {
			x, ok := e.(string)
			if !ok {
				return nil, mismatch(i)
			}
			out[i] = x
		}
		return out, nil
	}
	return nil, Issues{{
		Code:    CodeInvalidType,
		Param:   name,
		Value:   xs[0],
		Message: fmt.Sprintf("%s holds unsupported element type %T", name, xs[0]),
		Hint:    i18n.T(CodeInvalidType, nil),
	}}
}
