package game

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/kennel/components"
)

// dogStore keeps owned dogs as ECS entities. The world holds only owned
// dogs; roster order lives in the entity slice.
type dogStore struct {
	world *ecs.World

	mapper *ecs.Map4[
		components.Identity,
		components.Needs,
		components.Progress,
		components.Temperament,
	]
	filter *ecs.Filter4[
		components.Identity,
		components.Needs,
		components.Progress,
		components.Temperament,
	]

	// Individual component mappers for lookups
	idMap    *ecs.Map1[components.Identity]
	needsMap *ecs.Map1[components.Needs]
	progMap  *ecs.Map1[components.Progress]
	tempMap  *ecs.Map1[components.Temperament]

	roster  []ecs.Entity
	nextSeq uint32
}

func newDogStore() *dogStore {
	world := ecs.NewWorld()
	return &dogStore{
		world: world,
		mapper: ecs.NewMap4[
			components.Identity,
			components.Needs,
			components.Progress,
			components.Temperament,
		](world),
		filter: ecs.NewFilter4[
			components.Identity,
			components.Needs,
			components.Progress,
			components.Temperament,
		](world),
		idMap:    ecs.NewMap1[components.Identity](world),
		needsMap: ecs.NewMap1[components.Needs](world),
		progMap:  ecs.NewMap1[components.Progress](world),
		tempMap:  ecs.NewMap1[components.Temperament](world),
	}
}

// dog is a roster entry resolved to component pointers. Pointers are valid
// until the next structural change to the world.
type dog struct {
	entity ecs.Entity
	id     *components.Identity
	needs  *components.Needs
	prog   *components.Progress
	temp   *components.Temperament
}

// add appends a dog to the roster and returns its index.
func (s *dogStore) add(name string, needs components.Needs, prog components.Progress, temp components.Temperament) int {
	s.nextSeq++
	id := components.Identity{Name: name, Seq: s.nextSeq}
	needs.Normalize()
	e := s.mapper.NewEntity(&id, &needs, &prog, &temp)
	s.roster = append(s.roster, e)
	return len(s.roster) - 1
}

// dog returns the dog at roster index i.
func (s *dogStore) dog(i int) dog {
	e := s.roster[i]
	return dog{
		entity: e,
		id:     s.idMap.Get(e),
		needs:  s.needsMap.Get(e),
		prog:   s.progMap.Get(e),
		temp:   s.tempMap.Get(e),
	}
}

func (s *dogStore) len() int {
	return len(s.roster)
}

// needs returns a copy of every dog's needs in roster order.
func (s *dogStore) needs() []components.Needs {
	out := make([]components.Needs, len(s.roster))
	for i, e := range s.roster {
		out[i] = *s.needsMap.Get(e)
	}
	return out
}

// levels returns every dog's level in roster order.
func (s *dogStore) levels() []int {
	out := make([]int, len(s.roster))
	for i, e := range s.roster {
		out[i] = s.progMap.Get(e).Level
	}
	return out
}

// names returns the set of owned dog names.
func (s *dogStore) names() map[string]bool {
	out := make(map[string]bool, len(s.roster))
	for _, e := range s.roster {
		out[s.idMap.Get(e).Name] = true
	}
	return out
}

// reset removes every dog entity from the world.
func (s *dogStore) reset() {
	for _, e := range s.roster {
		if s.world.Alive(e) {
			s.world.RemoveEntity(e)
		}
	}
	s.roster = s.roster[:0]
	s.nextSeq = 0
}
