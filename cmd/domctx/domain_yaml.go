package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	domctx "github.com/reoring/domctx"
)

// domainDoc is the YAML shape of a candidate domain:
//
//	attributes:
//	  - name: sepal length
//	    type: continuous
//	  - name: iris
//	    type: discrete
//	    values: [setosa, versicolor, virginica]
//	class_vars: [...]
//	metas: [...]
type domainDoc struct {
	Attributes []columnDoc `yaml:"attributes"`
	ClassVars  []columnDoc `yaml:"class_vars"`
	Metas      []columnDoc `yaml:"metas"`
}

type columnDoc struct {
	Name   string   `yaml:"name"`
	Type   string   `yaml:"type"`
	Values []string `yaml:"values"`
}

func loadDomain(path string) (domctx.Domain, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domctx.Domain{}, err
	}
	var doc domainDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return domctx.Domain{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return doc.domain()
}

func (d domainDoc) domain() (domctx.Domain, error) {
	var out domctx.Domain
	var err error
	if out.Attributes, err = columns(d.Attributes); err != nil {
		return out, err
	}
	if out.ClassVars, err = columns(d.ClassVars); err != nil {
		return out, err
	}
	if out.Metas, err = columns(d.Metas); err != nil {
		return out, err
	}
	return out, nil
}

func columns(docs []columnDoc) ([]domctx.Variable, error) {
	if len(docs) == 0 {
		return nil, nil
	}
	out := make([]domctx.Variable, 0, len(docs))
	for _, c := range docs {
		t, err := varType(c.Type)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", c.Name, err)
		}
		out = append(out, domctx.Variable{Name: c.Name, Type: t, Values: c.Values})
	}
	return out, nil
}

func varType(s string) (domctx.VarType, error) {
	switch s {
	case "discrete":
		return domctx.TypeDiscrete, nil
	case "continuous":
		return domctx.TypeContinuous, nil
	case "string":
		return domctx.TypeString, nil
	case "time":
		return domctx.TypeTime, nil
	default:
		return 0, fmt.Errorf("unknown column type %q", s)
	}
}
