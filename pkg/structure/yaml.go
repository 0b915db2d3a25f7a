package structure

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// MarshalYAML emits the object as an ordered YAML mapping.
func (o *Object) MarshalYAML() (any, error) {
	return toYAMLNode(o)
}

// UnmarshalYAML reads a YAML mapping, keeping document key order.
func (o *Object) UnmarshalYAML(node *yaml.Node) error {
	value, err := fromYAMLNode(node)
	if err != nil {
		return err
	}
	if value == nil {
		return nil
	}
	obj, ok := value.(*Object)
	if !ok {
		return fmt.Errorf("structure: yaml line %d: %w", node.Line, ErrNotObject)
	}
	o.keys = obj.keys
	o.values = obj.values
	return nil
}

func toYAMLNode(value any) (*yaml.Node, error) {
	switch typed := value.(type) {
	case *Object:
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		if typed == nil {
			return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
		}
		for _, key := range typed.keys {
			child, err := toYAMLNode(typed.values[key])
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
				child,
			)
		}
		return node, nil
	case []any:
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range typed {
			child, err := toYAMLNode(item)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, child)
		}
		return node, nil
	case nil:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
	case string:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: typed}, nil
	case bool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(typed)}, nil
	case json.Number:
		tag := "!!int"
		if strings.ContainsAny(string(typed), ".eE") {
			tag = "!!float"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: string(typed)}, nil
	default:
		node := &yaml.Node{}
		if err := node.Encode(typed); err != nil {
			return nil, fmt.Errorf("structure: encode yaml value: %w", err)
		}
		return node, nil
	}
}

func fromYAMLNode(node *yaml.Node) (any, error) {
	if node == nil {
		return nil, nil
	}
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return nil, nil
		}
		return fromYAMLNode(node.Content[0])
	case yaml.AliasNode:
		return fromYAMLNode(node.Alias)
	case yaml.MappingNode:
		obj := New()
		for i := 0; i+1 < len(node.Content); i += 2 {
			keyNode, valueNode := node.Content[i], node.Content[i+1]
			value, err := fromYAMLNode(valueNode)
			if err != nil {
				return nil, err
			}
			obj.Set(keyNode.Value, value)
		}
		return obj, nil
	case yaml.SequenceNode:
		items := make([]any, 0, len(node.Content))
		for _, child := range node.Content {
			value, err := fromYAMLNode(child)
			if err != nil {
				return nil, err
			}
			items = append(items, value)
		}
		return items, nil
	}

	var scalar any
	if err := node.Decode(&scalar); err != nil {
		return nil, fmt.Errorf("structure: yaml line %d: %w", node.Line, err)
	}
	switch typed := scalar.(type) {
	case int:
		return json.Number(strconv.Itoa(typed)), nil
	case int64:
		return json.Number(strconv.FormatInt(typed, 10)), nil
	case uint64:
		return json.Number(strconv.FormatUint(typed, 10)), nil
	case float64:
		return json.Number(strconv.FormatFloat(typed, 'f', -1, 64)), nil
	default:
		return scalar, nil
	}
}
