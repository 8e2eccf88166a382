package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/jsonc"

	"github.com/concept-learner/winston/classtree"
)

// Load parses data as a JSONC document (comments and trailing commas
// allowed) into a slice of [ClassSpec], preserving document order.
func Load(data []byte) ([]ClassSpec, error) {
	var specs []ClassSpec
	if err := json.Unmarshal(jsonc.ToJSON(data), &specs); err != nil {
		return nil, fmt.Errorf("config: parsing classification hierarchy: %w", err)
	}
	return specs, nil
}

// LoadFile reads path and parses it with [Load].
func LoadFile(path string) ([]ClassSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	return Load(data)
}

// Build registers every spec into a new [classtree.Tree], in the order
// given. A spec naming a parent not yet registered implicitly registers
// that parent as a root, per [classtree.Tree.Add].
func Build(specs []ClassSpec, opts ...classtree.Option) (*classtree.Tree, error) {
	tree := classtree.New(opts...)
	for _, s := range specs {
		if err := tree.Add(s.Name, s.Parent); err != nil {
			return nil, fmt.Errorf("config: registering class %q: %w", s.Name, err)
		}
	}
	return tree, nil
}

// LoadTree is the common-case composition of Load and Build.
func LoadTree(data []byte, opts ...classtree.Option) (*classtree.Tree, error) {
	specs, err := Load(data)
	if err != nil {
		return nil, err
	}
	return Build(specs, opts...)
}

// LoadTreeFile is the common-case composition of LoadFile and Build.
func LoadTreeFile(path string, opts ...classtree.Option) (*classtree.Tree, error) {
	specs, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	return Build(specs, opts...)
}
