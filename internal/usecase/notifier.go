package usecase

import "jobhunt/internal/domain/job"

type CatalogNotifier interface {
	JobPosted(p job.Posting)
	JobRetired(p job.Posting)
}

type noopNotifier struct{}

func (noopNotifier) JobPosted(job.Posting)  {}
func (noopNotifier) JobRetired(job.Posting) {}
