package game

import "sort"

// Store is the beat ordered, read-only sequence of objects of one chart.
type Store struct {
	objects []Object

	NoteCount     int64
	BombCount     int64
	ObstacleCount int64
}

// NewStore copies and stably sorts objects by beat. Objects sharing a beat
// keep their input order, so a store built from the same file always
// schedules identically.
func NewStore(objects []Object) (*Store, error) {
	s := &Store{objects: make([]Object, len(objects))}
	copy(s.objects, objects)

	for i := range s.objects {
		o := &s.objects[i]
		if err := o.validate(); nil != err {
			return nil, err
		}
		switch o.Kind() {
		case KindNote:
			s.NoteCount++
		case KindBomb:
			s.BombCount++
		case KindObstacle:
			s.ObstacleCount++
		}
	}

	sort.SliceStable(s.objects, func(i, j int) bool {
		return s.objects[i].Beat < s.objects[j].Beat
	})
	return s, nil
}

func (s *Store) Len() int {
	return len(s.objects)
}

// At returns the object at index i. The pointer must not be used to modify
// the object.
func (s *Store) At(i int) *Object {
	return &s.objects[i]
}

// LastBeat is the largest end beat of any object, 0 for an empty store.
func (s *Store) LastBeat() float64 {
	last := 0.0
	for i := range s.objects {
		if e := s.objects[i].EndBeat(); e > last {
			last = e
		}
	}
	return last
}
