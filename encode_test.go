package domctx_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	domctx "github.com/reoring/domctx"
)

func testDomain() domctx.Domain {
	return domctx.Domain{
		Attributes: []domctx.Variable{
			domctx.Continuous("c1"),
			domctx.Discrete("d1", "a", "b", "c"),
			domctx.Discrete("d2", "d", "e", "f"),
		},
		ClassVars: []domctx.Variable{
			domctx.Discrete("d3", "g", "h", "i"),
		},
		Metas: []domctx.Variable{
			domctx.Continuous("c2"),
			domctx.Discrete("d4", "j", "k", "l"),
		},
	}
}

// typeCodedAttrs is the attribute encoding of testDomain under MatchNone.
func typeCodedAttrs() domctx.Encoding {
	return domctx.Encoding{
		"c1": {Type: domctx.TypeContinuous},
		"d1": {Type: domctx.TypeDiscrete},
		"d2": {Type: domctx.TypeDiscrete},
		"d3": {Type: domctx.TypeDiscrete},
	}
}

func typeCodedMetas() domctx.Encoding {
	return domctx.Encoding{
		"c2": {Type: domctx.TypeContinuous},
		"d4": {Type: domctx.TypeDiscrete},
	}
}

func TestEncodeDomain_MatchNone(t *testing.T) {
	h := domctx.NewHandler(
		domctx.MatchValues(domctx.MatchNone),
		domctx.EncodeMetas(true),
	)

	attrs, metas := h.EncodeDomain(testDomain())

	if diff := cmp.Diff(typeCodedAttrs(), attrs); diff != "" {
		t.Errorf("attrs mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(typeCodedMetas(), metas); diff != "" {
		t.Errorf("metas mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeDomain_MatchClass(t *testing.T) {
	h := domctx.NewHandler(
		domctx.MatchValues(domctx.MatchClass),
		domctx.EncodeMetas(true),
	)

	attrs, metas := h.EncodeDomain(testDomain())

	wantAttrs := domctx.Encoding{
		"c1": {Type: domctx.TypeContinuous},
		"d1": {Type: domctx.TypeDiscrete},
		"d2": {Type: domctx.TypeDiscrete},
		"d3": {Type: domctx.TypeDiscrete, Values: []string{"g", "h", "i"}},
	}
	if diff := cmp.Diff(wantAttrs, attrs); diff != "" {
		t.Errorf("attrs mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(typeCodedMetas(), metas); diff != "" {
		t.Errorf("metas mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeDomain_MatchAll(t *testing.T) {
	h := domctx.NewHandler(
		domctx.MatchValues(domctx.MatchAll),
		domctx.EncodeMetas(true),
	)

	attrs, metas := h.EncodeDomain(testDomain())

	wantAttrs := domctx.Encoding{
		"c1": {Type: domctx.TypeContinuous},
		"d1": {Type: domctx.TypeDiscrete, Values: []string{"a", "b", "c"}},
		"d2": {Type: domctx.TypeDiscrete, Values: []string{"d", "e", "f"}},
		"d3": {Type: domctx.TypeDiscrete, Values: []string{"g", "h", "i"}},
	}
	wantMetas := domctx.Encoding{
		"c2": {Type: domctx.TypeContinuous},
		"d4": {Type: domctx.TypeDiscrete, Values: []string{"j", "k", "l"}},
	}
	if diff := cmp.Diff(wantAttrs, attrs); diff != "" {
		t.Errorf("attrs mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wantMetas, metas); diff != "" {
		t.Errorf("metas mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeDomain_AttributesToggledOff(t *testing.T) {
	h := domctx.NewHandler(
		domctx.EncodeAttributes(false),
		domctx.EncodeMetas(true),
	)

	attrs, metas := h.EncodeDomain(testDomain())

	if len(attrs) != 0 || attrs == nil {
		t.Errorf("expected empty non-nil attrs, got %v", attrs)
	}
	if diff := cmp.Diff(typeCodedMetas(), metas); diff != "" {
		t.Errorf("metas mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeDomain_MetasToggledOff(t *testing.T) {
	h := domctx.NewHandler(
		domctx.EncodeAttributes(true),
		domctx.EncodeMetas(false),
	)

	attrs, metas := h.EncodeDomain(testDomain())

	if diff := cmp.Diff(typeCodedAttrs(), attrs); diff != "" {
		t.Errorf("attrs mismatch (-want +got):\n%s", diff)
	}
	if len(metas) != 0 || metas == nil {
		t.Errorf("expected empty non-nil metas, got %v", metas)
	}
}

func TestCodeEqual(t *testing.T) {
	typeOnly := domctx.Code{Type: domctx.TypeDiscrete}
	withValues := domctx.Code{Type: domctx.TypeDiscrete, Values: []string{"a", "b"}}

	if !typeOnly.Equal(domctx.Code{Type: domctx.TypeDiscrete}) {
		t.Errorf("equal type tags should match")
	}
	if typeOnly.Equal(domctx.Code{Type: domctx.TypeContinuous}) {
		t.Errorf("different type tags should not match")
	}
	if typeOnly.Equal(withValues) {
		t.Errorf("type tag should not match a value-level code")
	}
	if !withValues.Equal(domctx.Code{Values: []string{"a", "b"}}) {
		t.Errorf("identical label lists should match")
	}
	if withValues.Equal(domctx.Code{Type: domctx.TypeDiscrete, Values: []string{"a"}}) {
		t.Errorf("different label lists should not match")
	}
}
