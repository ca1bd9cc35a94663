package ecs

import (
	"testing"

	"github.com/milk9111/blockdash/ecs/component"
)

func TestSparseWorldEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"player_only", 1, 0},
		{"level_despawn_middle_block", 3, 1},
		{"editor_keeps_all", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, CreateEntity(w))
			}
			if len(Entities(w)) != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, len(Entities(w)))
			}
			if c.destroyIndex >= 0 {
				if !DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if IsAlive(w, ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
				if len(Entities(w)) != c.create-1 {
					t.Fatalf("expected %d entities after destroy, got %d", c.create-1, len(Entities(w)))
				}
			}
		})
	}
}

func toSet(ents []Entity) map[Entity]struct{} {
	m := make(map[Entity]struct{}, len(ents))
	for _, e := range ents {
		m[e] = struct{}{}
	}
	return m
}

func intPtr(i int) *int {
	return &i
}

func stringPtr(s string) *string {
	return &s
}

// spawnBlock adds the components a placed tile carries.
func spawnBlock(t *testing.T, w *World, id int, kind component.BlockKind, x, y float64, owner component.Mode) Entity {
	t.Helper()
	e := CreateEntity(w)
	if err := Add(w, e, component.BlockComponent.Kind(), &component.Block{ID: id, Kind: kind}); err != nil {
		t.Fatal(err)
	}
	if err := Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1}); err != nil {
		t.Fatal(err)
	}
	if err := Add(w, e, component.SessionOwnerComponent.Kind(), &component.SessionOwner{Mode: owner}); err != nil {
		t.Fatal(err)
	}
	return e
}

// spawnRunner adds the components the jump step iterates.
func spawnRunner(t *testing.T, w *World) Entity {
	t.Helper()
	e := CreateEntity(w)
	if err := Add(w, e, component.PlayerComponent.Kind(), &component.Player{RunSpeed: 300, JumpImpulse: 800}); err != nil {
		t.Fatal(err)
	}
	if err := Add(w, e, component.JumpStateComponent.Kind(), component.NewJumpState()); err != nil {
		t.Fatal(err)
	}
	if err := Add(w, e, component.VelocityComponent.Kind(), &component.Velocity{X: 300}); err != nil {
		t.Fatal(err)
	}
	if err := Add(w, e, component.TransformComponent.Kind(), &component.Transform{ScaleX: 1, ScaleY: 1}); err != nil {
		t.Fatal(err)
	}
	return e
}

func TestSparseWorldComponentsAndQueries(t *testing.T) {
	t.Run("component_table", func(t *testing.T) {
		w := NewWorld()
		player := CreateEntity(w)
		block := CreateEntity(w)

		tests := []struct {
			name     string
			setup    func() error
			check    func(t *testing.T)
			teardown func() bool
		}{
			{
				name: "transform_on_player",
				setup: func() error {
					return Add(w, player, component.TransformComponent.Kind(), &component.Transform{X: -320, Y: -220})
				},
				check: func(t *testing.T) {
					tr, ok := Get(w, player, component.TransformComponent.Kind())
					if !ok || tr.X != -320 || tr.Y != -220 {
						t.Fatalf("expected (-320,-220), got %+v ok=%v", tr, ok)
					}
					if Has(w, block, component.TransformComponent.Kind()) {
						t.Fatalf("block should not share the player's transform")
					}
				},
				teardown: func() bool { return Remove(w, player, component.TransformComponent.Kind()) },
			},
			{
				name: "session_owner_on_both",
				setup: func() error {
					if err := Add(w, player, component.SessionOwnerComponent.Kind(), &component.SessionOwner{Mode: component.ModeLevel}); err != nil {
						return err
					}
					return Add(w, block, component.SessionOwnerComponent.Kind(), &component.SessionOwner{Mode: component.ModeEditor})
				},
				check: func(t *testing.T) {
					po, okP := Get(w, player, component.SessionOwnerComponent.Kind())
					bo, okB := Get(w, block, component.SessionOwnerComponent.Kind())
					if !okP || !okB {
						t.Fatalf("expected both entities to have a session owner")
					}
					if po.Mode != component.ModeLevel || bo.Mode != component.ModeEditor {
						t.Fatalf("owners mixed up: player=%v block=%v", po.Mode, bo.Mode)
					}
				},
				teardown: func() bool { return Remove(w, player, component.SessionOwnerComponent.Kind()) },
			},
			{
				name: "block_mutated_through_pointer",
				setup: func() error {
					return Add(w, block, component.BlockComponent.Kind(), &component.Block{ID: 1, Kind: component.BlockGround})
				},
				check: func(t *testing.T) {
					b, ok := Get(w, block, component.BlockComponent.Kind())
					if !ok {
						t.Fatalf("expected block present")
					}
					b.Order = 7
					again, _ := Get(w, block, component.BlockComponent.Kind())
					if again.Order != 7 {
						t.Fatalf("expected stored block to be updated in place, got order %d", again.Order)
					}
				},
				teardown: func() bool { return Remove(w, block, component.BlockComponent.Kind()) },
			},
			{
				name: "jump_state_remove_twice",
				setup: func() error {
					return Add(w, player, component.JumpStateComponent.Kind(), component.NewJumpState())
				},
				check: func(t *testing.T) {
					js, ok := Get(w, player, component.JumpStateComponent.Kind())
					if !ok || !js.Airborne || js.Rotation != 0 {
						t.Fatalf("expected fresh airborne state, got %+v ok=%v", js, ok)
					}
				},
				teardown: func() bool {
					if !Remove(w, player, component.JumpStateComponent.Kind()) {
						return false
					}
					return !Remove(w, player, component.JumpStateComponent.Kind())
				},
			},
		}

		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				if err := tc.setup(); err != nil {
					t.Fatalf("setup failed: %v", err)
				}
				tc.check(t)
				if !tc.teardown() {
					t.Fatalf("teardown failed for %s", tc.name)
				}
			})
		}
	})
}

func TestForEach(t *testing.T) {
	w := NewWorld()
	b1 := spawnBlock(t, w, 1, component.BlockGround, 0, 0, component.ModeEditor)
	CreateEntity(w)
	b3 := spawnBlock(t, w, 0, component.BlockHazard, 64, 0, component.ModeEditor)

	var ents []Entity
	ForEach(w, component.BlockComponent.Kind(), func(e Entity, _ *component.Block) { ents = append(ents, e) })
	set := toSet(ents)

	if len(set) != 2 {
		t.Fatalf("expected 2 blocks, got %v", ents)
	}
	if _, ok := set[b1]; !ok {
		t.Fatalf("expected ground block in ForEach result")
	}
	if _, ok := set[b3]; !ok {
		t.Fatalf("expected hazard block in ForEach result")
	}
}

func TestForEach3(t *testing.T) {
	tests := []struct {
		name string
		run  func(t *testing.T)
	}{
		{
			name: "owned_blocks_only",
			run: func(t *testing.T) {
				w := NewWorld()
				b := spawnBlock(t, w, 1, component.BlockGround, 0, 0, component.ModeLevel)
				if err := Add(w, CreateEntity(w), component.BlockComponent.Kind(), &component.Block{ID: 2}); err != nil {
					t.Fatal(err)
				}
				cam := CreateEntity(w)
				if err := Add(w, cam, component.TransformComponent.Kind(), &component.Transform{}); err != nil {
					t.Fatal(err)
				}
				if err := Add(w, cam, component.SessionOwnerComponent.Kind(), &component.SessionOwner{Mode: component.ModeLevel}); err != nil {
					t.Fatal(err)
				}

				var res []Entity
				ForEach3(w, component.BlockComponent.Kind(), component.TransformComponent.Kind(), component.SessionOwnerComponent.Kind(),
					func(e Entity, _ *component.Block, _ *component.Transform, _ *component.SessionOwner) { res = append(res, e) })
				if len(res) != 1 || res[0] != b {
					t.Fatalf("expected only the owned block, got %v", res)
				}
			},
		},
		{
			name: "ignores_dead_entities",
			run: func(t *testing.T) {
				w := NewWorld()
				b := spawnBlock(t, w, 0, component.BlockHazard, 0, 0, component.ModeEditor)
				if !DestroyEntity(w, b) {
					t.Fatal("failed to destroy entity")
				}

				var res []Entity
				ForEach3(w, component.BlockComponent.Kind(), component.TransformComponent.Kind(), component.SessionOwnerComponent.Kind(),
					func(e Entity, _ *component.Block, _ *component.Transform, _ *component.SessionOwner) { res = append(res, e) })
				if len(res) != 0 {
					t.Fatalf("expected empty result after destroy, got %v", res)
				}
			},
		},
		{
			name: "missing_store_returns_nothing",
			run: func(t *testing.T) {
				w := NewWorld()
				if err := Add(w, CreateEntity(w), component.BlockComponent.Kind(), &component.Block{}); err != nil {
					t.Fatal(err)
				}

				var res []Entity
				ForEach3(w, component.BlockComponent.Kind(), component.CameraComponent.Kind(), component.SessionOwnerComponent.Kind(),
					func(e Entity, _ *component.Block, _ *component.Camera, _ *component.SessionOwner) { res = append(res, e) })
				if len(res) != 0 {
					t.Fatalf("expected empty when other store missing, got %v", res)
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, tc.run)
	}
}

func TestForEach4(t *testing.T) {
	tests := []struct {
		name string
		run  func(t *testing.T)
	}{
		{
			name: "runners_only",
			run: func(t *testing.T) {
				w := NewWorld()
				runner := spawnRunner(t, w)
				spawnBlock(t, w, 1, component.BlockGround, 0, 0, component.ModeLevel)

				frozen := spawnRunner(t, w)
				if !Remove(w, frozen, component.VelocityComponent.Kind()) {
					t.Fatal("remove velocity failed")
				}

				var res []Entity
				ForEach4(w, component.PlayerComponent.Kind(), component.JumpStateComponent.Kind(), component.VelocityComponent.Kind(), component.TransformComponent.Kind(),
					func(e Entity, _ *component.Player, _ *component.JumpState, _ *component.Velocity, _ *component.Transform) {
						res = append(res, e)
					})
				if len(res) != 1 || res[0] != runner {
					t.Fatalf("expected only the complete runner, got %v", res)
				}
			},
		},
		{
			name: "writes_reach_storage",
			run: func(t *testing.T) {
				w := NewWorld()
				runner := spawnRunner(t, w)

				ForEach4(w, component.PlayerComponent.Kind(), component.JumpStateComponent.Kind(), component.VelocityComponent.Kind(), component.TransformComponent.Kind(),
					func(_ Entity, p *component.Player, js *component.JumpState, v *component.Velocity, _ *component.Transform) {
						js.Airborne = false
						v.Y = p.JumpImpulse
					})

				v, _ := Get(w, runner, component.VelocityComponent.Kind())
				js, _ := Get(w, runner, component.JumpStateComponent.Kind())
				if v.Y != 800 || js.Airborne {
					t.Fatalf("expected writes through pointers, got v=%+v js=%+v", v, js)
				}
			},
		},
		{
			name: "ignores_dead_entities",
			run: func(t *testing.T) {
				w := NewWorld()
				runner := spawnRunner(t, w)
				if !DestroyEntity(w, runner) {
					t.Fatal("failed to destroy entity")
				}

				var res []Entity
				ForEach4(w, component.PlayerComponent.Kind(), component.JumpStateComponent.Kind(), component.VelocityComponent.Kind(), component.TransformComponent.Kind(),
					func(e Entity, _ *component.Player, _ *component.JumpState, _ *component.Velocity, _ *component.Transform) {
						res = append(res, e)
					})
				if len(res) != 0 {
					t.Fatalf("expected empty result after destroy, got %v", res)
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, tc.run)
	}
}
