package table

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"aliasspace/alias"
	"aliasspace/internal/common"
)

const nullTag = "!!null"

// --- StringOrArray YAML methods ---

// UnmarshalYAML implements custom YAML unmarshaling for StringOrArray.
// Accepts either a single scalar or a sequence of scalars. Scalars are taken
// verbatim, so `NO` or `31` stay strings. Null items are skipped.
func (s *StringOrArray) UnmarshalYAML(node *yaml.Node) error {
	node = resolveAlias(node)

	switch node.Kind {
	case yaml.ScalarNode:
		if node.ShortTag() == nullTag || node.Value == "" {
			*s = StringOrArray{}
		} else {
			*s = StringOrArray{node.Value}
		}

		return nil

	case yaml.SequenceNode:
		arr := make(StringOrArray, 0, len(node.Content))

		for _, item := range node.Content {
			item = resolveAlias(item)
			if item.Kind != yaml.ScalarNode {
				return fmt.Errorf("line %d: expected string, got %s", item.Line, kindName(item.Kind))
			}

			if item.ShortTag() == nullTag {
				continue
			}

			arr = append(arr, item.Value)
		}

		*s = arr

		return nil

	default:
		return fmt.Errorf("line %d: expected string or array, got %s", node.Line, kindName(node.Kind))
	}
}

// MarshalYAML implements custom YAML marshaling for StringOrArray.
// Outputs a single string if length is 1, otherwise a flow sequence.
func (s StringOrArray) MarshalYAML() (any, error) {
	if common.IsSingle(s) {
		return strNode(s[0]), nil
	}

	seq := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, v := range s {
		seq.Content = append(seq.Content, strNode(v))
	}

	return seq, nil
}

// --- GroupList YAML methods ---

// UnmarshalYAML decodes a mapping of representative to aliases, keeping file order.
// A null value means the representative has no aliases.
func (g *GroupList) UnmarshalYAML(node *yaml.Node) error {
	node = resolveAlias(node)

	if node.ShortTag() == nullTag {
		*g = GroupList{}
		return nil
	}

	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: aliases must be a mapping of representative to aliases, got %s",
			node.Line, kindName(node.Kind))
	}

	groups := make(GroupList, 0, len(node.Content)/2)

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := resolveAlias(node.Content[i]), node.Content[i+1]
		if key.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: representative must be a string, got %s", key.Line, kindName(key.Kind))
		}

		var aliases StringOrArray
		if err := aliases.UnmarshalYAML(value); err != nil {
			return fmt.Errorf("representative %q: %w", key.Value, err)
		}

		groups = append(groups, alias.Group{Representative: key.Value, Aliases: aliases})
	}

	*g = groups

	return nil
}

// MarshalYAML encodes the groups as an ordered mapping.
func (g GroupList) MarshalYAML() (any, error) {
	m := &yaml.Node{Kind: yaml.MappingNode}

	for _, group := range g {
		value, err := StringOrArray(group.Aliases).MarshalYAML()
		if err != nil {
			return nil, err
		}

		m.Content = append(m.Content, strNode(group.Representative), value.(*yaml.Node))
	}

	return m, nil
}

// resolveAlias follows anchor references (`*name`) to the anchored node.
func resolveAlias(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}

	return node
}

func strNode(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
