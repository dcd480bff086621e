package gonml

import (
	"bytes"
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
)

// MarshalJSON renders the block mapping as a JSON object, keys in insertion
// order.
func (d *Dict) MarshalJSON() ([]byte, error) {
	b := &bytes.Buffer{}
	b.WriteByte('{')
	for i, k := range d.keys {
		if i > 0 {
			b.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		b.Write(key)
		b.WriteByte(':')
		val, err := json.Marshal(d.m[k])
		if err != nil {
			return nil, err
		}
		b.Write(val)
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}

// MarshalJSON renders the document mapping as a JSON object, blocks in
// insertion order.
func (d *DocDict) MarshalJSON() ([]byte, error) {
	b := &bytes.Buffer{}
	b.WriteByte('{')
	for i, k := range d.keys {
		if i > 0 {
			b.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		b.Write(key)
		b.WriteByte(':')
		val, err := d.m[k].MarshalJSON()
		if err != nil {
			return nil, err
		}
		b.Write(val)
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}

// EncodeJSON renders the document mapping as indented JSON.
func EncodeJSON(doc *DocDict) ([]byte, error) {
	return json.MarshalIndent(doc, "", "  ")
}

// DecodeJSON parses a two-level JSON object into the document mapping,
// preserving key order. Whole numbers decode as int, everything else
// numeric as float64.
func DecodeJSON(data []byte) (*DocDict, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}
	out := NewDocDict()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		blockName, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected block name, got %v", tok)
		}
		block, err := decodeJSONBlock(dec)
		if err != nil {
			return nil, fmt.Errorf("block %s: %w", blockName, err)
		}
		out.Set(blockName, block)
	}
	if err := expectDelim(dec, '}'); err != nil {
		return nil, err
	}
	return out, nil
}

func decodeJSONBlock(dec *json.Decoder) (*Dict, error) {
	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}
	d := NewDict()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		name, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected parameter name, got %v", tok)
		}
		v, err := decodeJSONValue(dec)
		if err != nil {
			return nil, fmt.Errorf("parameter %s: %w", name, err)
		}
		d.Set(name, v)
	}
	if err := expectDelim(dec, '}'); err != nil {
		return nil, err
	}
	return d, nil
}

func decodeJSONValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch t := tok.(type) {
	case json.Delim:
		if t != '[' {
			return nil, fmt.Errorf("unexpected %v", t)
		}
		var elems []any
		for dec.More() {
			e, err := decodeJSONValue(dec)
			if err != nil {
				return nil, err
			}
			elems = append(elems, e)
		}
		if err := expectDelim(dec, ']'); err != nil {
			return nil, err
		}
		return narrowSlice(elems), nil
	case json.Number:
		return numberValue(t)
	case string, bool, nil:
		return t, nil
	}
	return nil, fmt.Errorf("unexpected token %v", tok)
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	d, ok := tok.(json.Delim)
	if !ok || d != want {
		return fmt.Errorf("expected %q, got %v", want, tok)
	}
	return nil
}

func numberValue(n json.Number) (any, error) {
	if !strings.ContainsAny(n.String(), ".eE") {
		i, err := n.Int64()
		if err == nil {
			return int(i), nil
		}
	}
	return n.Float64()
}

// narrowSlice converts decoded []any into the tightest typed slice the
// value model allows. Int and float mixes widen to []float64.
func narrowSlice(elems []any) any {
	if len(elems) == 0 {
		return []any{}
	}
	allInt, allNum, allBool, allStr := true, true, true, true
	for _, e := range elems {
		switch e.(type) {
		case int:
			allBool, allStr = false, false
		case float64:
			allInt, allBool, allStr = false, false, false
		case bool:
			allInt, allNum, allStr = false, false, false
		case string:
			allInt, allNum, allBool = false, false, false
		default:
			return elems
		}
	}
	switch {
	case allInt:
		out := make([]int, len(elems))
		for i, e := range elems {
			out[i] = e.(int)
		}
		return out
	case allNum:
		out := make([]float64, len(elems))
		for i, e := range elems {
			f, _ := numericOf(e)
			out[i] = f
		}
		return out
	case allBool:
		out := make([]bool, len(elems))
		for i, e := range elems {
			out[i] = e.(bool)
		}
		return out
	case allStr:
		out := make([]string, len(elems))
		for i, e := range elems {
			out[i] = e.(string)
		}
		return out
	}
	return elems
}
