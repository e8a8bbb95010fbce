package booking

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Services is the ordered service list of an adapter booking.
type Services []AdapterService

type typeHeader struct {
	Type string `yaml:"type"`
}

// UnmarshalYAML decodes each entry into the variant named by its "type" key.
// Entries with an unknown type decode as RawService keeping the type verbatim.
func (s *Services) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode {
		return fmt.Errorf("expected service list, got %v", node.Kind)
	}

	out := make(Services, 0, len(node.Content))

	for i, item := range node.Content {
		var header typeHeader

		if err := item.Decode(&header); err != nil {
			return fmt.Errorf("service %d: %w", i, err)
		}

		kind, _ := ParseKind(header.Type)
		svc := NewService(kind)

		if err := item.Decode(svc); err != nil {
			return fmt.Errorf("service %d (%s): %w", i, header.Type, err)
		}

		out = append(out, svc)
	}

	*s = out

	return nil
}

// MarshalYAML writes each variant with a leading "type" key.
func (s Services) MarshalYAML() (any, error) {
	seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}

	for i, svc := range s {
		if svc == nil {
			continue
		}

		var item yaml.Node

		if err := item.Encode(svc); err != nil {
			return nil, fmt.Errorf("service %d: %w", i, err)
		}

		if svc.Kind() != KindRaw {
			item.Content = append([]*yaml.Node{
				{Kind: yaml.ScalarNode, Tag: "!!str", Value: "type"},
				{Kind: yaml.ScalarNode, Tag: "!!str", Value: svc.Kind().String()},
			}, item.Content...)
		}

		seq.Content = append(seq.Content, &item)
	}

	return seq, nil
}
