package dllist_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/sirkon/dlseq/internal/dllist"
)

// resource данные на которые ссылаются элементы списка указателей.
type resource struct {
	id       uuid.UUID
	name     string
	released bool
}

func newResource(name string) *resource {
	return &resource{
		id:   uuid.New(),
		name: name,
	}
}

func sameName(a, b *resource) bool {
	return a.name == b.name
}

func TestIndexOf(t *testing.T) {
	l := listOf(5, 7, 5, 9)

	tests := []struct {
		name  string
		value int
		want  int
	}{
		{
			name:  "first-of-duplicates",
			value: 5,
			want:  0,
		},
		{
			name:  "middle",
			value: 7,
			want:  1,
		},
		{
			name:  "last",
			value: 9,
			want:  3,
		},
		{
			name:  "absent",
			value: 42,
			want:  dllist.NotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := l.IndexOf(tt.value); got != tt.want {
				t.Errorf("IndexOf(%d) = %d, want %d", tt.value, got, tt.want)
			}
			if got := l.Contains(tt.value); got != (tt.want != dllist.NotFound) {
				t.Errorf("Contains(%d) = %v", tt.value, got)
			}
		})
	}
}

func TestEqualityPolicy(t *testing.T) {
	a := newResource("a")
	b := newResource("b")

	t.Run("native-compares-pointers", func(t *testing.T) {
		l := listOf(a, b)
		if l.Contains(newResource("b")) {
			t.Error("distinct pointers must not be equal without a policy")
		}
		if got := l.IndexOf(b); got != 1 {
			t.Errorf("expected the very pointer to be found at 1, got %d", got)
		}
	})

	t.Run("policy-compares-values", func(t *testing.T) {
		l := dllist.New[*resource](dllist.WithEqualFunc(sameName))
		l.Append(a)
		l.Append(b)

		if got := l.IndexOf(newResource("b")); got != 1 {
			t.Errorf("expected value match at 1, got %d", got)
		}
		if l.Contains(newResource("c")) {
			t.Error("unexpected match for absent value")
		}
	})

	t.Run("deep-equal", func(t *testing.T) {
		l := dllist.New[[]int](dllist.WithEqualer(dllist.DeepEqual[[]int]()))
		l.Append([]int{1, 2})
		l.Append([]int{3})

		if got := l.IndexOf([]int{3}); got != 1 {
			t.Errorf("expected slice match at 1, got %d", got)
		}
		if l.Contains([]int{2, 1}) {
			t.Error("unexpected match for a different slice")
		}
	})
}

func TestRemoveItem(t *testing.T) {
	t.Run("present", func(t *testing.T) {
		l := listOf(1, 2, 3, 2)
		if !l.RemoveItem(2) {
			t.Error("expected removal")
		}
		checkValues(t, "values", []int{1, 3, 2}, l.Values())
	})

	t.Run("absent", func(t *testing.T) {
		l := listOf(1, 2, 3)
		if l.RemoveItem(4) {
			t.Error("unexpected removal")
		}
		if l.Len() != 3 {
			t.Errorf("size must stay 3, got %d", l.Len())
		}
		if l.IndexOf(4) != dllist.NotFound || l.Contains(4) {
			t.Error("absent value must not be found")
		}
	})

	t.Run("cleanup", func(t *testing.T) {
		a := newResource("a")
		b := newResource("b")
		l := dllist.New[*resource](dllist.WithEqualFunc(sameName))
		l.Append(a)
		l.Append(b)

		release := func(r *resource) {
			r.released = true
		}
		if !l.RemoveItemWith(newResource("b"), release) {
			t.Error("expected removal")
		}
		if !b.released {
			t.Error("cleanup must get the stored value")
		}
		if a.released {
			t.Error("cleanup must touch only the removed value")
		}

		if l.RemoveItemWith(newResource("z"), release) {
			t.Error("unexpected removal")
		}
	})
}

func TestMatch(t *testing.T) {
	l := listOf('F', 'G', 'B')

	tests := []struct {
		name  string
		items []rune
		want  bool
	}{
		{
			name:  "same",
			items: []rune{'F', 'G', 'B'},
			want:  true,
		},
		{
			name:  "different-order",
			items: []rune{'G', 'F', 'B'},
			want:  false,
		},
		{
			name:  "prefix",
			items: []rune{'F', 'G'},
			want:  false,
		},
		{
			name:  "longer",
			items: []rune{'F', 'G', 'B', 'C'},
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := l.Match(tt.items); got != tt.want {
				t.Errorf("Match(%q) = %v, want %v", string(tt.items), got, tt.want)
			}
		})
	}

	t.Run("empty", func(t *testing.T) {
		if !dllist.New[int]().Match(nil) {
			t.Error("empty list must match empty items")
		}
	})
}
