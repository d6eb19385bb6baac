package watch

import "testing"

func TestSubscribeDeliversLatestValueImmediately(t *testing.T) {
	v := NewValue("alice")

	var got []string
	cancel := v.Subscribe(func(s string) {
		got = append(got, s)
	})
	defer cancel()

	if len(got) != 1 || got[0] != "alice" {
		t.Fatalf("expected immediate delivery of latest value, got %v", got)
	}
}

func TestSetNotifiesAllSubscribers(t *testing.T) {
	v := NewValue(0)

	var first, second []int
	cancelFirst := v.Subscribe(func(n int) { first = append(first, n) })
	defer cancelFirst()
	cancelSecond := v.Subscribe(func(n int) { second = append(second, n) })
	defer cancelSecond()

	v.Set(1)
	v.Set(2)

	want := []int{0, 1, 2}
	for name, got := range map[string][]int{"first": first, "second": second} {
		if len(got) != len(want) {
			t.Fatalf("%s subscriber: expected %v, got %v", name, want, got)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("%s subscriber: expected %v, got %v", name, want, got)
			}
		}
	}
}

func TestCancelStopsDelivery(t *testing.T) {
	v := NewValue("")

	var got []string
	cancel := v.Subscribe(func(s string) { got = append(got, s) })

	v.Set("a")
	cancel()
	cancel() // idempotent
	v.Set("b")

	if len(got) != 2 || got[1] != "a" {
		t.Fatalf("expected delivery to stop after cancel, got %v", got)
	}
}

func TestGetReturnsLatest(t *testing.T) {
	v := NewValue("x")
	v.Set("y")

	if got := v.Get(); got != "y" {
		t.Fatalf("expected latest value %q, got %q", "y", got)
	}
}

func TestLateSubscriberSeesCurrentNotHistory(t *testing.T) {
	v := NewValue(1)
	v.Set(2)
	v.Set(3)

	var got []int
	cancel := v.Subscribe(func(n int) { got = append(got, n) })
	defer cancel()

	if len(got) != 1 || got[0] != 3 {
		t.Fatalf("expected only the latest value, got %v", got)
	}
}
