package types

import "strings"

// DegreeLevel is a canonical education level
type DegreeLevel string

const (
	DegreeNone      DegreeLevel = "none"
	DegreeAssociate DegreeLevel = "associate"
	DegreeBachelor  DegreeLevel = "bachelor"
	DegreeMaster    DegreeLevel = "master"
	DegreePhD       DegreeLevel = "phd"
	// DegreeNotDetected marks an education sentence with no recognizable degree token.
	DegreeNotDetected DegreeLevel = "none-detected"
)

// degreeOrdinals orders the levels that earn education credit.
var degreeOrdinals = map[DegreeLevel]int{
	DegreeAssociate: 1,
	DegreeBachelor:  2,
	DegreeMaster:    3,
	DegreePhD:       4,
}

// degreeAliases maps common spellings to canonical levels.
var degreeAliases = map[string]DegreeLevel{
	"associate":  DegreeAssociate,
	"associates": DegreeAssociate,
	"bachelor":   DegreeBachelor,
	"bachelors":  DegreeBachelor,
	"bsc":        DegreeBachelor,
	"bs":         DegreeBachelor,
	"ba":         DegreeBachelor,
	"btech":      DegreeBachelor,
	"master":     DegreeMaster,
	"masters":    DegreeMaster,
	"msc":        DegreeMaster,
	"ms":         DegreeMaster,
	"ma":         DegreeMaster,
	"mba":        DegreeMaster,
	"mtech":      DegreeMaster,
	"phd":        DegreePhD,
	"doctorate":  DegreePhD,
	"doctoral":   DegreePhD,
	"none":       DegreeNone,
}

// Ordinal returns the rank of the level, 0 for levels that carry no credit.
func (d DegreeLevel) Ordinal() int {
	return degreeOrdinals[d]
}

// MaxDegreeOrdinal returns the highest ordinal among entries, 0 when none carries credit.
func MaxDegreeOrdinal(entries []EducationEntry) int {
	highest := 0
	for _, entry := range entries {
		if o := entry.DegreeLevel.Ordinal(); o > highest {
			highest = o
		}
	}
	return highest
}

// ParseDegreeLevel maps free text such as "B.S.", "Ph.D" or "MBA" to a canonical level.
// Unrecognized input yields DegreeNotDetected.
func ParseDegreeLevel(s string) DegreeLevel {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer(".", "", "'", "", "’", "", " ", "", "-", "").Replace(key)
	if level, ok := degreeAliases[key]; ok {
		return level
	}
	return DegreeNotDetected
}
