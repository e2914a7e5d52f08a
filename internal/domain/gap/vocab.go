package gap

import "skill-path/internal/domain/skillset"

// Foundational skills are core tooling and process primitives that
// unlock most other learning; they get the largest importance boost.
var foundationalSkills = skillset.New(
	"sql",
	"git",
	"linux",
	"communication",
	"problem solving",
	"testing",
	"data structures",
	"algorithms",
)

// Modern high-demand skills get a smaller boost on top of the baseline.
var modernSkills = skillset.New(
	"python",
	"javascript",
	"typescript",
	"go",
	"rust",
	"docker",
	"kubernetes",
	"aws",
	"gcp",
	"azure",
	"terraform",
	"react",
	"machine learning",
	"deep learning",
	"tensorflow",
	"pytorch",
	"spark",
	"kafka",
)

const (
	importanceBaseline = 0.5
	foundationalBoost  = 0.3
	modernBoost        = 0.2
)
