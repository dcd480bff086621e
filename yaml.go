package gonml

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// MarshalYAML renders the block mapping as a YAML mapping node, keys in
// insertion order.
func (d *Dict) MarshalYAML() (any, error) { return d.yamlNode() }

// MarshalYAML renders the document mapping as a YAML mapping node, blocks
// in insertion order.
func (d *DocDict) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, k := range d.keys {
		inner, err := d.m[k].yamlNode()
		if err != nil {
			return nil, err
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: k},
			inner,
		)
	}
	return node, nil
}

// EncodeYAML renders the document mapping as YAML text.
func EncodeYAML(doc *DocDict) ([]byte, error) {
	return yaml.Marshal(doc)
}

// DecodeYAML parses a two-level YAML mapping into the document mapping,
// preserving key order.
func DecodeYAML(data []byte) (*DocDict, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	if len(root.Content) == 0 {
		return NewDocDict(), nil
	}
	top := root.Content[0]
	if top.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("expected a mapping at the top level, got %v", top.Kind)
	}
	out := NewDocDict()
	for i := 0; i+1 < len(top.Content); i += 2 {
		blockName := top.Content[i].Value
		blockNode := top.Content[i+1]
		if blockNode.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("block %s: expected a mapping", blockName)
		}
		d := NewDict()
		for j := 0; j+1 < len(blockNode.Content); j += 2 {
			name := blockNode.Content[j].Value
			v, err := yamlValue(blockNode.Content[j+1])
			if err != nil {
				return nil, fmt.Errorf("block %s, parameter %s: %w", blockName, name, err)
			}
			d.Set(name, v)
		}
		out.Set(blockName, d)
	}
	return out, nil
}

func (d *Dict) yamlNode() (*yaml.Node, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, k := range d.keys {
		val := &yaml.Node{}
		if err := val.Encode(d.m[k]); err != nil {
			return nil, err
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: k},
			val,
		)
	}
	return node, nil
}

func yamlValue(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		return yamlScalar(n)
	case yaml.SequenceNode:
		elems := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := yamlScalar(c)
			if err != nil {
				return nil, err
			}
			elems = append(elems, v)
		}
		return narrowSlice(elems), nil
	}
	return nil, fmt.Errorf("unsupported node kind %v", n.Kind)
}

func yamlScalar(n *yaml.Node) (any, error) {
	switch n.Tag {
	case "!!int":
		return strconv.Atoi(n.Value)
	case "!!float":
		return strconv.ParseFloat(n.Value, 64)
	case "!!bool":
		return strconv.ParseBool(n.Value)
	case "!!str":
		return n.Value, nil
	case "!!null":
		return nil, nil
	}
	return n.Value, nil
}
