package treeview

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type item struct {
	ID       int
	ParentID int
	Name     string
}

func build(items []item) []*Node[item] {
	return Build(items,
		func(i item) int { return i.ID },
		func(i item) int { return i.ParentID },
	)
}

func TestBuild(t *testing.T) {
	items := []item{
		{ID: 1, ParentID: 1, Name: "root"}, // self-parented root
		{ID: 2, ParentID: 1, Name: "a"},
		{ID: 3, ParentID: 1, Name: "b"},
		{ID: 4, ParentID: 2, Name: "a1"},
	}

	got := build(items)

	want := []*Node[item]{
		{
			Item: items[0],
			Children: []*Node[item]{
				{
					Item: items[1],
					Children: []*Node[item]{
						{Item: items[3], Children: []*Node[item]{}},
					},
				},
				{Item: items[2], Children: []*Node[item]{}},
			},
		},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Build() mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild_OrphanBecomesRoot(t *testing.T) {
	items := []item{
		{ID: 5, ParentID: 99, Name: "orphan"},
		{ID: 6, ParentID: 5, Name: "child"},
	}

	got := build(items)

	if len(got) != 1 {
		t.Fatalf("Build() roots = %d, want 1", len(got))
	}
	if got[0].Item.Name != "orphan" {
		t.Errorf("Build() root = %q, want %q", got[0].Item.Name, "orphan")
	}
	if len(got[0].Children) != 1 || got[0].Children[0].Item.Name != "child" {
		t.Errorf("Build() orphan children = %+v, want one child", got[0].Children)
	}
}

func TestBuild_ChildOrderFollowsInput(t *testing.T) {
	items := []item{
		{ID: 1, ParentID: 0, Name: "root"},
		{ID: 9, ParentID: 1, Name: "z"},
		{ID: 2, ParentID: 1, Name: "a"},
		{ID: 5, ParentID: 1, Name: "m"},
	}

	got := build(items)

	if len(got) != 1 {
		t.Fatalf("Build() roots = %d, want 1", len(got))
	}
	names := make([]string, 0, len(got[0].Children))
	for _, child := range got[0].Children {
		names = append(names, child.Item.Name)
	}
	if diff := cmp.Diff([]string{"z", "a", "m"}, names); diff != "" {
		t.Errorf("Build() child order mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild_Empty(t *testing.T) {
	if got := build(nil); got != nil {
		t.Errorf("Build(nil) = %v, want nil", got)
	}
}
