package ecs

import (
	"testing"

	"github.com/milk9111/blockdash/ecs/component"
)

func TestEntityReuseBumpsGeneration(t *testing.T) {
	w := NewWorld()
	e1 := CreateEntity(w)
	if !DestroyEntity(w, e1) {
		t.Fatal("destroy failed")
	}
	e2 := CreateEntity(w)
	if e1.id() != e2.id() {
		t.Fatalf("expected slot reuse, got %d and %d", e1.id(), e2.id())
	}
	if e1 == e2 {
		t.Fatal("reused entity must carry a new generation")
	}
	if IsAlive(w, e1) {
		t.Fatal("stale handle reported alive")
	}
	if DestroyEntity(w, e1) {
		t.Fatal("destroying a stale handle must fail")
	}
}

func TestDestroyEntityDropsComponents(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()
	e := CreateEntity(w)
	if err := Add(w, e, h.Kind(), intPtr(4)); err != nil {
		t.Fatal(err)
	}
	DestroyEntity(w, e)
	e2 := CreateEntity(w)
	if Has(w, e2, h.Kind()) {
		t.Fatal("new entity in a reused slot inherited a component")
	}
	if len(w.Query(h.Kind())) != 0 {
		t.Fatal("query returned a destroyed entity")
	}
}

func TestAddRejectsDeadAndNil(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()
	e := CreateEntity(w)
	if err := Add[int](w, e, h.Kind(), nil); err == nil {
		t.Fatal("expected error for nil component")
	}
	DestroyEntity(w, e)
	if err := Add(w, e, h.Kind(), intPtr(1)); err == nil {
		t.Fatal("expected error for dead entity")
	}
	if err := w.AddComponent(CreateEntity(w), component.ComponentKind[int]{}, intPtr(1)); err == nil {
		t.Fatal("expected error for zero kind")
	}
}

func TestFirstAndMustFirst(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[string]()
	if _, ok := w.First(h.Kind()); ok {
		t.Fatal("First on empty world should fail")
	}
	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("MustFirst should panic on a missing singleton")
			}
		}()
		w.MustFirst(h.Kind())
	}()
	e := CreateEntity(w)
	if err := Add(w, e, h.Kind(), stringPtr("state")); err != nil {
		t.Fatal(err)
	}
	if got := w.MustFirst(h.Kind()); got != e {
		t.Fatalf("MustFirst = %v, want %v", got, e)
	}
}

func TestForEachToleratesDestroy(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()
	for i := 0; i < 5; i++ {
		e := CreateEntity(w)
		if err := Add(w, e, h.Kind(), intPtr(i)); err != nil {
			t.Fatal(err)
		}
	}
	visited := 0
	ForEach(w, h.Kind(), func(e Entity, _ *int) {
		visited++
		DestroyEntity(w, e)
	})
	if visited != 5 {
		t.Fatalf("visited %d, want 5", visited)
	}
	if w.Count() != 0 {
		t.Fatalf("expected empty world, got %d", w.Count())
	}
}

func TestDestroyRecursive(t *testing.T) {
	w := NewWorld()
	root := CreateEntity(w)
	child := CreateEntity(w)
	grandchild := CreateEntity(w)
	other := CreateEntity(w)
	if err := Add(w, child, component.ParentComponent.Kind(), &component.Parent{Entity: uint64(root)}); err != nil {
		t.Fatal(err)
	}
	if err := Add(w, grandchild, component.ParentComponent.Kind(), &component.Parent{Entity: uint64(child)}); err != nil {
		t.Fatal(err)
	}

	if n := DestroyRecursive(w, root); n != 3 {
		t.Fatalf("destroyed %d, want 3", n)
	}
	for _, e := range []Entity{root, child, grandchild} {
		if IsAlive(w, e) {
			t.Fatalf("entity %v survived", e)
		}
	}
	if !IsAlive(w, other) {
		t.Fatal("unrelated entity destroyed")
	}
}

func TestContactSetIsUnordered(t *testing.T) {
	var c ContactSet
	a, b := makeEntity(1, 0), makeEntity(2, 0)
	if c.Touching(a, b) {
		t.Fatal("empty set reported contact")
	}
	c.Add(b, a)
	if !c.Touching(a, b) || !c.Touching(b, a) {
		t.Fatal("contact should be symmetric")
	}
	c.Add(a, a)
	if c.Len() != 1 {
		t.Fatalf("self contact should be ignored, len=%d", c.Len())
	}
	c.Reset()
	if c.Touching(a, b) {
		t.Fatal("reset kept a contact")
	}
}

func TestBlockIndex(t *testing.T) {
	w := NewWorld()
	g1 := CreateEntity(w)
	g2 := CreateEntity(w)
	s1 := CreateEntity(w)
	w.Blocks().Insert(g2, component.BlockGround)
	w.Blocks().Insert(g1, component.BlockGround)
	w.Blocks().Insert(s1, component.BlockHazard)

	ground := w.Blocks().Of(component.BlockGround)
	if len(ground) != 2 || ground[0] != g1 || ground[1] != g2 {
		t.Fatalf("unexpected ground index %v", ground)
	}

	w.Blocks().Insert(s1, component.BlockClipped)
	if w.Blocks().Len(component.BlockHazard) != 0 || w.Blocks().Len(component.BlockClipped) != 1 {
		t.Fatal("re-insert should move the entity between kinds")
	}

	DestroyEntity(w, g1)
	if got := w.Blocks().Of(component.BlockGround); len(got) != 1 || got[0] != g2 {
		t.Fatalf("destroy should drop index entry, got %v", got)
	}
}

type recordingSystem struct {
	name string
	log  *[]string
}

func (r recordingSystem) Update(*World) { *r.log = append(*r.log, r.name) }

func TestSchedulerStageOrder(t *testing.T) {
	w := NewWorld()
	var log []string
	w.AddSystem(StageCamera, recordingSystem{"camera", &log})
	w.AddSystem(StagePhysics, recordingSystem{"physics", &log})
	w.AddSystem(StagePlayer, recordingSystem{"jump", &log})
	w.AddSystem(StagePhysics, recordingSystem{"physics2", &log})
	w.AddSystem(StageMode, recordingSystem{"mode", &log})
	w.Update()

	want := []string{"mode", "physics", "physics2", "jump", "camera"}
	if len(log) != len(want) {
		t.Fatalf("ran %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("ran %v, want %v", log, want)
		}
	}
}

type emitSystem struct{}

func (emitSystem) Update(w *World) {
	Emit(w, EventRespawnRequested, RespawnRequestedEvent{Player: 7, Cause: RespawnHazard})
}

type readSystem struct{ seen *int }

func (r readSystem) Update(w *World) { *r.seen += len(EventsOf[RespawnRequestedEvent](w)) }

func TestEventsLiveForOneTick(t *testing.T) {
	w := NewWorld()
	seen := 0
	w.AddSystem(StageCollision, emitSystem{})
	w.AddSystem(StageRespawn, readSystem{seen: &seen})
	w.Update()
	w.Update()
	if seen != 2 {
		t.Fatalf("expected one event per tick, saw %d over two ticks", seen)
	}
	if len(w.Events().Pending()) != 0 {
		t.Fatal("events should be flushed at tick end")
	}
	if len(EventsOf[CollisionEvent](w)) != 0 {
		t.Fatal("type filter leaked")
	}
}
