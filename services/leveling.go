// services/leveling.go
package services

// Garden growth stages, ordered Seed < Flower < Fruit < Tree.
const (
	StageSeed   = "Seed"
	StageFlower = "Flower"
	StageFruit  = "Fruit"
	StageTree   = "Tree"
)

// stageThresholds: lifetime points required before each stage, evaluated
// highest-first.
var stageThresholds = []struct {
	min   int
	stage string
}{
	{3000, StageTree},
	{1500, StageFruit},
	{500, StageFlower},
	{0, StageSeed},
}

// StageForPoints maps a lifetime score to its garden stage. Negative
// input floors to Seed.
func StageForPoints(lifetime int) string {
	for _, t := range stageThresholds {
		if lifetime >= t.min {
			return t.stage
		}
	}
	return StageSeed
}

// StageRank orders stages for display and comparisons. Unknown labels
// rank as Seed.
func StageRank(stage string) int {
	switch stage {
	case StageTree:
		return 3
	case StageFruit:
		return 2
	case StageFlower:
		return 1
	default:
		return 0
	}
}
