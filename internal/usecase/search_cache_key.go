package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"jobhunt/internal/domain/skill"
	"jobhunt/internal/search"
)

const (
	jobsSearchPrefix = "jobs:search:"
	jobsLockPrefix   = "jobs:lock:"
	jobsRecoPrefix   = "jobs:reco:"
)

type jobSearchCacheKeyInput struct {
	Title      string   `json:"title"`
	Location   string   `json:"location"`
	JobType    string   `json:"job_type"`
	SalaryMin  string   `json:"salary_min"`
	SalaryMax  string   `json:"salary_max"`
	Skills     []string `json:"skills"`
	SalaryFrom *int64   `json:"salary_from,omitempty"`
	SalaryTo   *int64   `json:"salary_to,omitempty"`
}

// JobsSearchCacheKey hashes the criteria normalised exactly as search.Filter
// reads them, so two criteria share a key only when they select the same
// postings. The experience level has no effect on results and is left out.
func JobsSearchCacheKey(c search.Criteria) string {
	in := jobSearchCacheKeyInput{
		Title:      skill.Normalize(c.Title),
		Location:   skill.Normalize(c.Location),
		JobType:    skill.Normalize(c.JobType),
		SalaryMin:  skill.Normalize(c.SalaryMin),
		SalaryMax:  skill.Normalize(c.SalaryMax),
		Skills:     skill.Parse(c.Skills),
		SalaryFrom: c.SalaryFrom,
		SalaryTo:   c.SalaryTo,
	}

	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	h := hex.EncodeToString(sum[:])
	return jobsSearchPrefix + h
}

func JobsSearchLockKey(searchKey string) string {
	searchKey = strings.TrimSpace(searchKey)
	if strings.HasPrefix(searchKey, jobsSearchPrefix) {
		return jobsLockPrefix + strings.TrimPrefix(searchKey, jobsSearchPrefix)
	}
	return jobsLockPrefix + searchKey
}

func RecommendationCacheKey(userID string, limit int) string {
	return fmt.Sprintf("%s%s:%d", jobsRecoPrefix, userID, limit)
}

func RecommendationCachePattern(userID string) string {
	return jobsRecoPrefix + userID + ":*"
}
