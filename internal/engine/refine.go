package engine

import (
	"math/rand"
	"sort"
	"sync"

	"github.com/packwise/glasscut/internal/model"
)

// The refinement layer searches a neighborhood of instance orderings around
// the greedy pass. Candidates are full packing runs; they share no mutable
// state, so each generation is evaluated concurrently.

const (
	mutationRate    = 0.1
	parentPoolSize  = 3
	stagnationLimit = 3
)

// candidate is one member of the population: a permutation of the expanded
// instance list plus the packing run it decodes to.
type candidate struct {
	order    []int
	solution model.Solution
	runErr   error
	score    float64
}

type refiner struct {
	engine    *Engine
	instances []model.Part
	stocks    []model.StockSheet
	cfg       model.RefineConfig
	rng       *rand.Rand
}

// refine runs the population search over orderings of the given unit-demand
// instances. The greedy ordering always seeds the population, so the result
// never scores below the single-pass solution.
func (e *Engine) refine(instances []model.Part, stocks []model.StockSheet) (model.Solution, error) {
	cfg := *e.Settings.Refine
	def := model.DefaultRefineConfig()
	if cfg.PopulationSize <= 0 {
		cfg.PopulationSize = def.PopulationSize
	}
	if cfg.Generations <= 0 {
		cfg.Generations = def.Generations
	}

	if len(instances) == 0 {
		return e.packOrdered(instances, stocks)
	}

	r := &refiner{
		engine:    e,
		instances: instances,
		stocks:    stocks,
		cfg:       cfg,
		rng:       rand.New(rand.NewSource(cfg.Seed)),
	}
	best := r.run()
	return best.solution, best.runErr
}

func (r *refiner) run() candidate {
	n := len(r.instances)

	population := make([]candidate, r.cfg.PopulationSize)
	for i := range population {
		if i == 0 {
			population[i].order = identityOrder(n)
			continue
		}
		population[i].order = r.rng.Perm(n)
	}
	r.evaluate(population)
	sortByScore(population)

	bestScore := population[0].score
	stagnant := 0

	for gen := 0; gen < r.cfg.Generations; gen++ {
		offspring := make([]candidate, 0, r.cfg.PopulationSize-1)
		for len(offspring) < r.cfg.PopulationSize-1 {
			p1, p2 := r.pickParents(population)
			child := candidate{order: r.orderCrossover(p1.order, p2.order)}
			r.mutate(child.order)
			offspring = append(offspring, child)
		}
		r.evaluate(offspring)

		// Elitism: the incumbent best survives unmodified.
		population = append(offspring, population[0])
		sortByScore(population)

		if population[0].score > bestScore {
			bestScore = population[0].score
			stagnant = 0
		} else {
			stagnant++
			if stagnant >= stagnationLimit {
				break
			}
		}
	}

	return population[0]
}

// evaluate decodes every candidate into a packing run. Runs are independent,
// so they execute in parallel and the results are joined before selection.
func (r *refiner) evaluate(population []candidate) {
	var wg sync.WaitGroup
	for i := range population {
		wg.Add(1)
		go func(c *candidate) {
			defer wg.Done()
			ordered := make([]model.Part, len(c.order))
			for j, idx := range c.order {
				ordered[j] = r.instances[idx]
			}
			c.solution, c.runErr = r.engine.packOrdered(ordered, r.stocks)
			c.score = fitness(c.solution)
		}(&population[i])
	}
	wg.Wait()
}

// fitness is the material utilization of the decoded solution, with the
// unplaced-panel and extra-sheet penalties discouraging layouts that trade
// completeness for density.
func fitness(s model.Solution) float64 {
	var usedArea, totalArea float64
	for _, sheet := range s.Sheets {
		usedArea += sheet.UsedArea()
		totalArea += sheet.TotalArea()
	}
	if totalArea == 0 {
		return 0
	}
	f := usedArea/totalArea -
		0.1*float64(len(s.Unplaced)) -
		0.05*float64(len(s.Sheets)-1)
	if f < 0 {
		f = 0
	}
	return f
}

func sortByScore(population []candidate) {
	sort.SliceStable(population, func(i, j int) bool {
		return population[i].score > population[j].score
	})
}

// pickParents draws two distinct members from the top scorers.
func (r *refiner) pickParents(population []candidate) (candidate, candidate) {
	pool := parentPoolSize
	if pool > len(population) {
		pool = len(population)
	}
	i := r.rng.Intn(pool)
	j := r.rng.Intn(pool)
	if pool > 1 {
		for j == i {
			j = r.rng.Intn(pool)
		}
	}
	return population[i], population[j]
}

// orderCrossover recombines two orderings (OX1): a random segment of the
// first parent is kept in place and the remaining positions are filled with
// the second parent's instances in their relative order. Every instance
// appears exactly once in the child, so part conservation holds by
// construction.
func (r *refiner) orderCrossover(p1, p2 []int) []int {
	n := len(p1)
	if n <= 2 {
		return append([]int(nil), p1...)
	}

	lo := r.rng.Intn(n)
	hi := r.rng.Intn(n)
	if lo > hi {
		lo, hi = hi, lo
	}

	child := make([]int, n)
	inSegment := make(map[int]bool, hi-lo+1)
	for i := lo; i <= hi; i++ {
		child[i] = p1[i]
		inSegment[p1[i]] = true
	}

	pos := (hi + 1) % n
	for _, idx := range p2 {
		if inSegment[idx] {
			continue
		}
		child[pos] = idx
		pos = (pos + 1) % n
	}
	return child
}

// mutate swaps two positions with a small probability. Operating on the
// ordering rather than on placed sheets keeps the part multiset intact.
func (r *refiner) mutate(order []int) {
	n := len(order)
	if n < 2 {
		return
	}
	if r.rng.Float64() < mutationRate {
		i := r.rng.Intn(n)
		j := r.rng.Intn(n)
		order[i], order[j] = order[j], order[i]
	}
}

func identityOrder(n int) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	return order
}
