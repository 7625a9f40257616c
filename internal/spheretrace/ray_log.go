package spheretrace

import (
	"fmt"
	"sort"
	"sync"
)

type Category uint8

const (
	Hit    Category = iota // ray hit the sphere
	Miss                   // ray missed the sphere
	Behind                 // near root at or behind the ray origin
	Dark                   // ray hit but no light reached the point
)

func (c Category) String() string {
	switch c {
	case Hit:
		return "hit"
	case Miss:
		return "miss"
	case Behind:
		return "behind"
	case Dark:
		return "dark"
	}
	return fmt.Sprintf("category(%d)", uint8(c))
}

// RayLog records one camera ray; Distance is only meaningful for hits.
type RayLog struct {
	Category  Category
	X, Y      int
	Origin    Vector
	Direction Vector
	Distance  Real
}

type RayLogCache struct {
	mu   sync.Mutex
	rays map[Category][]RayLog
}

var cache = &RayLogCache{
	rays: make(map[Category][]RayLog),
}

func resetRayLog() {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	cache.rays = make(map[Category][]RayLog)
}

func logRay(category Category, x, y int, ray Ray, distance Real) {
	if !Debug {
		return
	}
	cache.mu.Lock()
	defer cache.mu.Unlock()
	cache.rays[category] = append(cache.rays[category], RayLog{
		Category:  category,
		X:         x,
		Y:         y,
		Origin:    ray.Pos,
		Direction: ray.Dir,
		Distance:  distance,
	})
}

// rayCounts returns the number of logged rays per category.
func rayCounts() map[Category]int {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	counts := make(map[Category]int, len(cache.rays))
	for k, v := range cache.rays {
		counts[k] = len(v)
	}
	return counts
}

func raysStats() {
	counts := rayCounts()
	keys := make([]Category, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	for _, k := range keys {
		fmt.Printf("Ray type %s: %d logs\n", k, counts[k])
	}
}
