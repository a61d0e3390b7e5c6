package services

import (
	"log/slog"

	"github.com/ohtu-ilmo/review-service/internal/cache"
	"github.com/ohtu-ilmo/review-service/internal/events"
	"github.com/ohtu-ilmo/review-service/internal/repositories"
	"github.com/ohtu-ilmo/review-service/internal/validator"
)

// ServiceManager aggregates all services behind one dependency.
type ServiceManager interface {
	Review() ReviewService
	Topic() TopicService
	Export() ExportService
}

type serviceManager struct {
	review ReviewService
	topic  TopicService
	export ExportService
}

func NewServiceManager(
	repo repositories.Repository,
	cacheService cache.CacheService,
	publisher events.EventPublisher,
	logger *slog.Logger,
	v *validator.Validator,
) ServiceManager {
	return &serviceManager{
		review: NewReviewService(repo, cacheService, publisher, logger, v),
		topic:  NewTopicService(repo, publisher, logger, v),
		export: NewExportService(repo, logger),
	}
}

func (m *serviceManager) Review() ReviewService {
	return m.review
}

func (m *serviceManager) Topic() TopicService {
	return m.topic
}

func (m *serviceManager) Export() ExportService {
	return m.export
}
