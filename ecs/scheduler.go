package ecs

import "slices"

// Stage orders systems within a tick. Lower stages run first; systems in
// the same stage run in registration order.
type Stage int

const (
	StageInput Stage = iota * 10
	StageMode
	StageEditor
	StageMovement
	StagePhysics
	StageCollision
	StagePlayer
	StageRespawn
	StageCamera
)

type stagedSystem struct {
	stage  Stage
	system System
}

type Scheduler struct {
	systems []stagedSystem
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

func (s *Scheduler) Add(stage Stage, system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, stagedSystem{stage: stage, system: system})
	slices.SortStableFunc(s.systems, func(a, b stagedSystem) int {
		return int(a.stage) - int(b.stage)
	})
}

func (s *Scheduler) Update(w *World) {
	for _, staged := range s.systems {
		staged.system.Update(w)
	}
}

func (s *Scheduler) Systems() []System {
	systems := make([]System, 0, len(s.systems))
	for _, staged := range s.systems {
		systems = append(systems, staged.system)
	}
	return systems
}
