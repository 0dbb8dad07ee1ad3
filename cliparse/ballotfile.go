package cliparse

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/danielhkuo/quickly-rank/models"
)

// BallotFile is a YAML ballot description:
//
//	title: Lunch
//	candidates: [Pizza, Sushi, Tacos]
//	initial_ranking:
//	  - {candidate: 1, rank: 0}
//	  - {candidate: 0, rank: 1}
//	  - {candidate: 2, rank: 1}
//
// initial_ranking is optional. When present it is a previous submission and
// is restored as is. Blank candidates are dropped, which is only allowed
// without an initial_ranking.
type BallotFile struct {
	Title          string               `yaml:"title"`
	Candidates     []string             `yaml:"candidates"`
	InitialRanking models.FlatSelection `yaml:"initial_ranking"`
}

func LoadBallotFile(path string) (BallotFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return BallotFile{}, fmt.Errorf("failed to read ballot file: %w", err)
	}

	var bf BallotFile
	if err := yaml.Unmarshal(data, &bf); err != nil {
		return BallotFile{}, fmt.Errorf("failed to parse ballot file %s: %w", path, err)
	}

	names := make([]string, 0, len(bf.Candidates))
	for _, c := range bf.Candidates {
		if c = strings.TrimSpace(c); c != "" {
			names = append(names, c)
		}
	}
	// Indices in initial_ranking refer to the list as written.
	if len(names) != len(bf.Candidates) && len(bf.InitialRanking) > 0 {
		return BallotFile{}, fmt.Errorf("ballot file %s: initial_ranking requires a list without blank candidates", path)
	}
	bf.Candidates = names
	return bf, nil
}
