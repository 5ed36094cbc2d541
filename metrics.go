package turing_machine

import (
	"fmt"
)

// RunStats holds aggregate statistics over the archived runs of one
// program.
type RunStats struct {
	TotalRuns    uint
	AcceptedRuns uint
	StuckRuns    uint
	LimitRuns    uint
	CheckFails   uint
	AvgSteps     float64
	MaxSteps     uint
	MinDistance  uint
}

// QueryRunStats aggregates the archive for one program with a single raw
// SQL pass over the records table.
func (p *Persistence) QueryRunStats(programName string) (*RunStats, error) {
	db, err := p.DB.DB()
	if err != nil {
		return nil, fmt.Errorf("Failed to retrieve raw DB: %w", err)
	}

	row := db.QueryRow(`SELECT COUNT(*),
		COALESCE(SUM(accepted), 0),
		COALESCE(SUM(step_limit_hit), 0),
		COALESCE(SUM(check_fail != 0), 0),
		COALESCE(AVG(steps), 0),
		COALESCE(MAX(steps), 0),
		COALESCE(MIN(distance), 0)
		FROM run_records WHERE program_name = ?`, programName)

	var total, accepted, limited, failed, maxSteps, minDistance int64
	var avgSteps float64
	if err := row.Scan(&total, &accepted, &limited, &failed, &avgSteps, &maxSteps, &minDistance); err != nil {
		return nil, err
	}

	stats := &RunStats{
		TotalRuns:    uint(total),
		AcceptedRuns: uint(accepted),
		LimitRuns:    uint(limited),
		CheckFails:   uint(failed),
		AvgSteps:     avgSteps,
		MaxSteps:     uint(maxSteps),
		MinDistance:  uint(minDistance),
	}
	// Everything that halted without accepting and without hitting the
	// budget got stuck.
	stats.StuckRuns = stats.TotalRuns - stats.AcceptedRuns - stats.LimitRuns

	return stats, nil
}
