package utils

import "time"

// Stats accumulates performance figures across a run
type Stats struct {
	Generations          int
	Restarts             int
	GenerationsPerSecond float64
	AveragePopulation    float64
	PeakPopulation       int
	StartTime            time.Time

	updateTime time.Duration
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Record adds one generation whose Update took updateTime and which left population
// cells alive
func (s *Stats) Record(population int, updateTime time.Duration) {
	s.Generations++
	s.updateTime += updateTime
	if s.updateTime > 0 {
		s.GenerationsPerSecond = float64(s.Generations) / s.updateTime.Seconds()
	}

	s.PeakPopulation = max(s.PeakPopulation, population)

	// Exponential moving average, seeded by the first sample
	if s.Generations == 1 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}
