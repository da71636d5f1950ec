package service_test

import (
	"reflect"
	"testing"
)

func TestReorderBoundariesAreNoOps(t *testing.T) {
	svc, sink := newTestService(t)

	before, err := svc.ListCarousel(false)
	if err != nil {
		t.Fatalf("ListCarousel: %v", err)
	}
	first := before[0].ID
	last := before[len(before)-1].ID
	entries := auditCount(t, sink)

	if err := svc.ReorderCarouselItem(actor, first, "up"); err != nil {
		t.Fatalf("reorder first up: %v", err)
	}
	if err := svc.ReorderCarouselItem(actor, last, "down"); err != nil {
		t.Fatalf("reorder last down: %v", err)
	}

	after, _ := svc.ListCarousel(false)
	if !reflect.DeepEqual(before, after) {
		t.Fatalf("boundary reorder changed the collection:\n%+v\n%+v", before, after)
	}
	if auditCount(t, sink) != entries {
		t.Fatal("boundary no-op wrote an audit entry")
	}
}

func TestReorderSwapsWithNeighbor(t *testing.T) {
	svc, _ := newTestService(t)

	before, _ := svc.ListCarousel(false)
	second := before[1].ID

	if err := svc.ReorderCarouselItem(actor, second, "up"); err != nil {
		t.Fatalf("ReorderCarouselItem: %v", err)
	}

	after, _ := svc.ListCarousel(false)
	if after[0].ID != second {
		t.Fatalf("expected item %d first after moving up, got %+v", second, after)
	}
	if after[1].ID != before[0].ID {
		t.Fatalf("neighbor not swapped down: %+v", after)
	}
}

func TestToggleCarouselActiveRoundTrip(t *testing.T) {
	svc, _ := newTestService(t)

	items, _ := svc.ListCarousel(false)
	original := items[0]

	once, err := svc.ToggleCarouselActive(actor, original.ID)
	if err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	if once.Active == original.Active {
		t.Fatal("toggle did not flip the flag")
	}

	twice, err := svc.ToggleCarouselActive(actor, original.ID)
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if twice.Active != original.Active {
		t.Fatal("double toggle did not restore the flag")
	}
}

func TestPublicCarouselHidesInactive(t *testing.T) {
	svc, _ := newTestService(t)

	public, err := svc.ListCarousel(true)
	if err != nil {
		t.Fatalf("ListCarousel: %v", err)
	}
	for _, item := range public {
		if !item.Active {
			t.Fatalf("inactive item in public carousel: %+v", item)
		}
	}

	all, _ := svc.ListCarousel(false)
	if len(all) <= len(public) {
		t.Fatalf("expected seed to include an inactive item: %d vs %d", len(all), len(public))
	}

	for i := 1; i < len(public); i++ {
		if public[i-1].Order > public[i].Order {
			t.Fatalf("carousel not sorted by order: %+v", public)
		}
	}
}
