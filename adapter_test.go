package cyclemenu

import "testing"

func TestItemAdapterCounts(t *testing.T) {
	a := NewItemAdapter("a", "b", "c")
	if got := a.RealItemCount(); got != 3 {
		t.Errorf("RealItemCount() = %d, want 3", got)
	}
	if n, ok := a.ItemCount().Len(); !ok || n != 3 {
		t.Errorf("ItemCount() = (%d, %v), want (3, true)", n, ok)
	}

	a.SetScrollPolicy(Endless)
	if !a.ItemCount().IsUnbounded() {
		t.Error("ItemCount() bounded under Endless")
	}
	if got, ok := a.ItemAt(EndlessAnchor(3) + 4); !ok || got != "b" {
		t.Errorf("ItemAt(anchor+4) = (%q, %v), want (\"b\", true)", got, ok)
	}

	a.Add("d")
	a.SetScrollPolicy(Basic)
	if n, _ := a.ItemCount().Len(); n != 4 {
		t.Errorf("ItemCount() after Add = %d, want 4", n)
	}
	a.Clear()
	if a.RealItemCount() != 0 {
		t.Error("Clear() left items")
	}
}

func TestItemAdapterClickUsesRealPosition(t *testing.T) {
	a := NewItemAdapter(1, 2, 3, 4, 5)
	a.SetScrollPolicy(Endless)
	var clicked, long []int
	a.SetItemClickListener(ItemClickFuncs{
		Click:     func(p int) { clicked = append(clicked, p) },
		LongClick: func(p int) { long = append(long, p) },
	})

	a.OnItemClick(12)
	a.OnItemLongClick(EndlessAnchor(5) + 1)
	if len(clicked) != 1 || clicked[0] != 2 {
		t.Errorf("clicks = %v, want [2]", clicked)
	}
	if len(long) != 1 || long[0] != 1 {
		t.Errorf("long clicks = %v, want [1]", long)
	}
}

func TestItemAdapterWithoutListener(t *testing.T) {
	a := NewItemAdapter[string]()
	a.OnItemClick(0)
	a.SetItemClickListener(ItemClickFuncs{})
	a.OnItemClick(3)
	a.OnItemLongClick(3)
}

func TestItemAdapterEmptyItemAt(t *testing.T) {
	a := NewItemAdapter[string]()
	for _, raw := range []int{0, 3, -1, EndlessAnchor(1)} {
		if got, ok := a.ItemAt(raw); ok || got != "" {
			t.Errorf("ItemAt(%d) on empty adapter = (%q, %v), want (\"\", false)", raw, got, ok)
		}
	}
}

func TestItemAdapterLabel(t *testing.T) {
	var _ Labeler = (*ItemAdapter[int])(nil)

	a := NewItemAdapter(7, 42)
	tests := []struct {
		index int
		want  string
	}{
		{0, "7"},
		{1, "42"},
		{2, ""},
		{-1, ""},
	}
	for _, tt := range tests {
		if got := a.Label(tt.index); got != tt.want {
			t.Errorf("Label(%d) = %q, want %q", tt.index, got, tt.want)
		}
	}
}
