package game

import "time"

const (
	ScoreSingle = 100
	ScoreDouble = 300
	ScoreTriple = 500
	ScoreTetris = 800

	// ScorePerLevel is the cumulative score needed to advance one level.
	ScorePerLevel = 1000
)

const (
	BaseDropInterval = 1000 * time.Millisecond
	DropIntervalStep = 100 * time.Millisecond
	MinDropInterval  = 100 * time.Millisecond
	StartingLevel    = 1
)

// ScoreForLines returns the score awarded for clearing lines rows with a
// single lock.
func ScoreForLines(lines int) int {
	switch lines {
	case 1:
		return ScoreSingle
	case 2:
		return ScoreDouble
	case 3:
		return ScoreTriple
	case 4:
		return ScoreTetris
	default:
		return 0
	}
}

// LevelForScore derives the level from the cumulative score.
func LevelForScore(score int) int {
	if score < 0 {
		return StartingLevel
	}

	return score/ScorePerLevel + StartingLevel
}

// DropInterval is the gravity period at level, floored at MinDropInterval.
func DropInterval(level int) time.Duration {
	d := BaseDropInterval - time.Duration(level-StartingLevel)*DropIntervalStep
	if d < MinDropInterval {
		return MinDropInterval
	}
	if d > BaseDropInterval {
		return BaseDropInterval
	}

	return d
}
