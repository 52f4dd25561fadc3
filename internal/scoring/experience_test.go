package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Krithikeswaran/Hire-Me-AI-Powered-Resume-Analyser-sub001/internal/types"
)

func TestExtractYears(t *testing.T) {
	assert.Equal(t, 3, ExtractYears("3 years of backend work"))
	assert.Equal(t, 10, ExtractYears("10+ years shipping software"))
	assert.Equal(t, 8, ExtractYears("2 years at Acme, then 8 years at Initech"))
	assert.Equal(t, 1, ExtractYears("1 year internship"))
	assert.Equal(t, 0, ExtractYears("seasoned engineer, no numbers given"))
}

func bandJob(min, max int) *types.JobDescription {
	return &types.JobDescription{Title: "Engineer", MinExperience: min, MaxExperience: max}
}

func TestEstimateExperience_InsideBand(t *testing.T) {
	text := "5+ years of experience. Worked as a developer and designed services."
	// base 50, band hit +30, verbs experience/worked/designed +9
	assert.Equal(t, 89, EstimateExperience(text, bandJob(3, 5)))
}

func TestEstimateExperience_SlightlyOverBand(t *testing.T) {
	assert.Equal(t, 75, EstimateExperience("7 years in the field", bandJob(3, 5)))
}

func TestEstimateExperience_FarOverBand(t *testing.T) {
	assert.Equal(t, 65, EstimateExperience("10 years in consulting", bandJob(3, 5)))
}

func TestEstimateExperience_UnderBandPartialCredit(t *testing.T) {
	// base 50 + 20*2/4
	assert.Equal(t, 60, EstimateExperience("2 years writing software", bandJob(4, 6)))
}

func TestEstimateExperience_ProjectFallback(t *testing.T) {
	text := "Project: shop API. Project: chat bot. Project: portfolio site."
	assert.Equal(t, 85, EstimateExperience(text, bandJob(3, 5)))

	two := "Project: shop API. Project: chat bot."
	assert.Equal(t, 80, EstimateExperience(two, bandJob(3, 5)))
}

func TestEstimateExperience_NoSignalsAtAll(t *testing.T) {
	assert.Equal(t, 50, EstimateExperience("fresh graduate", bandJob(3, 5)))
}

func TestEstimateExperience_LevelConsistencyAndCap(t *testing.T) {
	job := bandJob(5, 8)
	job.ExperienceLevel = "senior"
	// base 50 + band 30 + "senior" title 5 + consistency 10 = 95
	got := EstimateExperience("6 years as senior engineer", job)
	assert.Equal(t, 95, got)
}

func TestLevelConsistent(t *testing.T) {
	assert.True(t, levelConsistent("entry", 1))
	assert.False(t, levelConsistent("entry", 4))
	assert.True(t, levelConsistent("mid", 3))
	assert.False(t, levelConsistent("mid", 7))
	assert.True(t, levelConsistent("senior", 9))
	assert.False(t, levelConsistent("lead", 5))
	assert.False(t, levelConsistent("", 5))
}
