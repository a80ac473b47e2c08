package main

import (
	"os"
	"path/filepath"
	"testing"

	domctx "github.com/reoring/domctx"
)

func TestLoadDomain(t *testing.T) {
	doc := `
attributes:
  - name: sepal length
    type: continuous
  - name: iris
    type: discrete
    values: [setosa, versicolor, virginica]
class_vars:
  - name: cluster
    type: discrete
    values: [c1, c2]
metas:
  - name: note
    type: string
`
	path := filepath.Join(t.TempDir(), "domain.yaml")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	d, err := loadDomain(path)
	if err != nil {
		t.Fatalf("loadDomain: %v", err)
	}
	if len(d.Attributes) != 2 || len(d.ClassVars) != 1 || len(d.Metas) != 1 {
		t.Fatalf("unexpected domain shape: %+v", d)
	}
	if d.Attributes[1].Type != domctx.TypeDiscrete || len(d.Attributes[1].Values) != 3 {
		t.Errorf("iris column parsed wrong: %+v", d.Attributes[1])
	}
}

func TestLoadDomain_UnknownType(t *testing.T) {
	path := filepath.Join(t.TempDir(), "domain.yaml")
	if err := os.WriteFile(path, []byte("attributes:\n  - name: x\n    type: fuzzy\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadDomain(path); err == nil {
		t.Fatal("expected an error for unknown column type")
	}
}
