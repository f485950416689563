package material

import "github.com/df07/weekend-pathtracer/pkg/core"

// scriptedSampler replays a fixed list of values, cycling when exhausted
type scriptedSampler struct {
	values []float64
	calls  int
}

func newScriptedSampler(values ...float64) *scriptedSampler {
	return &scriptedSampler{values: values}
}

func (s *scriptedSampler) next() float64 {
	v := s.values[s.calls%len(s.values)]
	s.calls++
	return v
}

func (s *scriptedSampler) Get1D() float64 { return s.next() }
func (s *scriptedSampler) Get2D() core.Vec2 {
	return core.NewVec2(s.next(), s.next())
}
func (s *scriptedSampler) Get3D() core.Vec3 {
	return core.NewVec3(s.next(), s.next(), s.next())
}
