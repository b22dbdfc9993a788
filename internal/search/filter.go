package search

import (
	"sort"
	"strings"

	"jobhunt/internal/domain/job"
	"jobhunt/internal/domain/skill"
)

// ExperienceLevels are the experience tags the search form offers. Postings
// carry no experience field, so the tag is accepted and never filtered on.
var ExperienceLevels = []string{"entry", "mid", "senior"}

// Criteria holds the optional search predicates. Empty fields impose no
// constraint.
//
// SalaryMin and SalaryMax are matched as substrings of the free-text salary.
// SalaryFrom and SalaryTo are numeric bounds compared against the range
// parsed from that text; they are independent of the substring fields.
type Criteria struct {
	Title           string
	Location        string
	JobType         string
	SalaryMin       string
	SalaryMax       string
	ExperienceLevel string
	Skills          string

	SalaryFrom *int64
	SalaryTo   *int64
}

func (c Criteria) IsEmpty() bool {
	return strings.TrimSpace(c.Title) == "" &&
		strings.TrimSpace(c.Location) == "" &&
		strings.TrimSpace(c.JobType) == "" &&
		strings.TrimSpace(c.SalaryMin) == "" &&
		strings.TrimSpace(c.SalaryMax) == "" &&
		len(skill.Parse(c.Skills)) == 0 &&
		c.SalaryFrom == nil &&
		c.SalaryTo == nil
}

type compiled struct {
	title     string
	location  string
	jobType   string
	salaryMin string
	salaryMax string
	skills    []string
	from      *int64
	to        *int64
}

func compile(c Criteria) compiled {
	return compiled{
		title:     skill.Normalize(c.Title),
		location:  skill.Normalize(c.Location),
		jobType:   skill.Normalize(c.JobType),
		salaryMin: skill.Normalize(c.SalaryMin),
		salaryMax: skill.Normalize(c.SalaryMax),
		skills:    skill.Parse(c.Skills),
		from:      c.SalaryFrom,
		to:        c.SalaryTo,
	}
}

// Filter returns the postings of catalog satisfying every non-empty criterion,
// newest first. The catalog slice is not modified.
func Filter(c Criteria, catalog []job.Posting) []job.Posting {
	cc := compile(c)

	out := make([]job.Posting, 0, len(catalog))
	for _, p := range catalog {
		if !cc.match(p) {
			continue
		}
		out = append(out, p)
	}

	SortByRecency(out)
	return out
}

func (cc compiled) match(p job.Posting) bool {
	if cc.title != "" && !strings.Contains(strings.ToLower(p.Title), cc.title) {
		return false
	}
	if cc.location != "" && !strings.Contains(strings.ToLower(p.Location), cc.location) {
		return false
	}
	if cc.jobType != "" && !strings.Contains(strings.ToLower(p.EmploymentType), cc.jobType) {
		return false
	}

	salary := strings.ToLower(p.Salary)
	if cc.salaryMin != "" && !strings.Contains(salary, cc.salaryMin) {
		return false
	}
	if cc.salaryMax != "" && !strings.Contains(salary, cc.salaryMax) {
		return false
	}

	if len(cc.skills) > 0 && !skill.ContainsAll(p.MatchText(), cc.skills) {
		return false
	}

	if cc.from != nil || cc.to != nil {
		r, ok := ParseSalary(p.Salary)
		if !ok || !r.Overlaps(cc.from, cc.to) {
			return false
		}
	}
	return true
}

// SortByRecency orders postings by creation time, newest first. Equal
// timestamps keep their relative order.
func SortByRecency(items []job.Posting) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
}
