// ABOUTME: Tests for the per-element variant registry
// ABOUTME: Covers apply/replace, instance lookup, destroy, and unknown names

package fly

import (
	"errors"
	"reflect"
	"testing"
)

func TestRegistry_ApplyInstanceDestroy(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	r := NewRegistry(h.factory, Tooltip(), Dropdown())
	el := newAnchor(testAnchorRect)

	first, err := r.Apply(TooltipName, el)
	if err != nil {
		t.Fatalf("Apply() error: %v", err)
	}
	if r.Instance(TooltipName, el) != first {
		t.Fatal("Instance() did not return the applied overlay")
	}

	second, err := r.Apply(TooltipName, el, WithText("again"))
	if err != nil {
		t.Fatalf("second Apply() error: %v", err)
	}
	if !first.Destroyed() {
		t.Error("re-applying did not destroy the previous instance")
	}
	if r.Instance(TooltipName, el) != second || r.Len() != 1 {
		t.Error("registry does not track the replacement")
	}

	r.Destroy(TooltipName, el)
	r.Destroy(TooltipName, el)
	if !second.Destroyed() || r.Instance(TooltipName, el) != nil {
		t.Error("Destroy did not destroy and forget the instance")
	}
}

func TestRegistry_VariantsIndependentPerElement(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	r := NewRegistry(h.factory, Tooltip(), Dropdown())
	el := newAnchor(testAnchorRect)

	tip, _ := r.Apply(TooltipName, el)
	drop, _ := r.Apply(DropdownName, el)

	if tip.Destroyed() || drop.Destroyed() || r.Len() != 2 {
		t.Error("different variants on one element must coexist")
	}

	r.DestroyAll()
	if !tip.Destroyed() || !drop.Destroyed() || r.Len() != 0 {
		t.Error("DestroyAll left instances alive")
	}
}

func TestRegistry_UnknownVariant(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	r := NewRegistry(h.factory)

	if _, err := r.Apply("popover", newAnchor(testAnchorRect)); !errors.Is(err, ErrUnknownVariant) {
		t.Errorf("Apply() error = %v, want ErrUnknownVariant", err)
	}
}

func TestRegistry_Names(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	r := NewRegistry(h.factory, Tooltip(), Dropdown())

	if got, want := r.Names(), []string{DropdownName, TooltipName}; !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}
