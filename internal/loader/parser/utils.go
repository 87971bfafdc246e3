package parser

import (
	"sort"

	"gopkg.in/yaml.v3"
)

// resolve follows aliases and unwraps document nodes.
func resolve(n *yaml.Node) *yaml.Node {
	for n != nil {
		switch {
		case n.Kind == yaml.AliasNode && n.Alias != nil:
			n = n.Alias
		case n.Kind == yaml.DocumentNode && len(n.Content) > 0:
			n = n.Content[0]
		default:
			return n
		}
	}
	return n
}

func kindName(n *yaml.Node) string {
	switch n.Kind {
	case yaml.MappingNode:
		return "mapping"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.ScalarNode:
		return "scalar"
	default:
		return "node"
	}
}

func isValidKey(key string, section string) error {
	f := SceneSections[section]
	if _, ok := f[key]; !ok {
		return ErrUnknownField
	}
	return nil
}

// checkMissingRequiredKey returns the first missing required key in
// alphabetical order so errors are stable across runs.
func checkMissingRequiredKey(section string, keys map[string]*yaml.Node) (string, error) {
	f := SceneSections[section]
	names := make([]string, 0, len(f))
	for key, field := range f {
		if field.Required {
			names = append(names, key)
		}
	}
	sort.Strings(names)
	for _, key := range names {
		if _, ok := keys[key]; !ok {
			return key, ErrRequiredField
		}
	}
	return "", nil
}

type scalar interface {
	~int | ~int64 | ~float64 | ~string
}

func decodeScalar[T scalar](n *yaml.Node, section, field, validType string, state *parseState) (T, error) {
	var out T
	n = resolve(n)
	if n.Kind != yaml.ScalarNode {
		return out, &fieldTypeError{section: section, player: state.player, field: field, validType: validType, line: n.Line}
	}
	if err := n.Decode(&out); err != nil {
		return out, &fieldTypeError{section: section, player: state.player, field: field, validType: validType, line: n.Line, reason: err}
	}
	return out, nil
}
