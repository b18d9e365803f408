package service

import (
	"context"
	"math"
	"strings"
	"time"

	"kayan/internal/model"
)

const (
	defaultTestimonialPage  = 1
	defaultTestimonialLimit = 10
	defaultPublicLimit      = 20

	// One submission per address per day
	submissionWindow = 24 * time.Hour
)

// TestimonialService handles review collection and moderation
type TestimonialService struct {
	testimonialRepo TestimonialRepositoryInterface
	notifier        NotifierInterface
}

// NewTestimonialService creates a new Testimonial Service
func NewTestimonialService(testimonialRepo TestimonialRepositoryInterface, notifier NotifierInterface) *TestimonialService {
	return &TestimonialService{
		testimonialRepo: testimonialRepo,
		notifier:        notifier,
	}
}

// Submit validates and stores a review, unapproved, subject to the one-per-
// address daily window. The throttle is a lookup before the insert, so two
// racing submissions from one address can both pass; the moderation step
// catches what slips through.
func (s *TestimonialService) Submit(ctx context.Context, req *model.TestimonialRequest, clientIP, userAgent string) (*model.CreatedResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Service = strings.TrimSpace(req.Service)
	req.Message = strings.TrimSpace(req.Message)

	if err := validateTestimonial(req); err != nil {
		return nil, err
	}

	recent, err := s.testimonialRepo.RecentTestimonialsByIP(ctx, clientIP, time.Now().UTC().Add(-submissionWindow))
	if err != nil {
		return nil, err
	}
	if recent > 0 {
		return nil, ErrRateLimited
	}

	t := &model.Testimonial{
		Name:      req.Name,
		Email:     strings.ToLower(req.Email),
		Service:   req.Service,
		Rating:    *req.Rating,
		Message:   req.Message,
		IPAddress: clientIP,
		UserAgent: userAgent,
		Approved:  false,
	}

	if err := s.testimonialRepo.SaveTestimonial(ctx, t); err != nil {
		return nil, err
	}

	s.notifier.NotifyTestimonial(ctx, t)

	return &model.CreatedResponse{
		ID:        t.ID,
		Timestamp: t.CreatedAt.Format(time.RFC3339),
	}, nil
}

// List returns one page of reviews with the approved-average attached
func (s *TestimonialService) List(ctx context.Context, q *model.TestimonialListQuery) (*model.TestimonialList, error) {
	if q.Page < 1 {
		q.Page = defaultTestimonialPage
	}
	if q.Limit < 1 {
		q.Limit = defaultTestimonialLimit
	}
	if q.Status == "" {
		q.Status = "approved"
	}

	testimonials, total, err := s.testimonialRepo.ListTestimonials(ctx, q)
	if err != nil {
		return nil, err
	}

	summary, err := s.testimonialRepo.ApprovedRatingSummary(ctx)
	if err != nil {
		return nil, err
	}
	summary.AverageRating = roundRating(summary.AverageRating)

	return &model.TestimonialList{
		Testimonials: testimonials,
		Pagination:   buildPagination(q.Page, q.Limit, total),
		Statistics:   *summary,
	}, nil
}

// ListPublic returns the newest approved reviews stripped to their public
// fields
func (s *TestimonialService) ListPublic(ctx context.Context, service string, limit int) ([]model.PublicTestimonial, error) {
	if limit < 1 {
		limit = defaultPublicLimit
	}

	testimonials, err := s.testimonialRepo.ListApprovedTestimonials(ctx, service, limit)
	if err != nil {
		return nil, err
	}

	public := make([]model.PublicTestimonial, len(testimonials))
	for i, t := range testimonials {
		public[i] = model.PublicTestimonial{
			Name:      t.Name,
			Service:   t.Service,
			Rating:    t.Rating,
			Message:   t.Message,
			CreatedAt: t.CreatedAt,
		}
	}
	return public, nil
}

// Approve flips the moderation flag and reports the resulting state
func (s *TestimonialService) Approve(ctx context.Context, id int64, req *model.ApproveTestimonialRequest) (bool, error) {
	approved := req.Approved != nil && *req.Approved

	affected, err := s.testimonialRepo.SetTestimonialApproval(ctx, id, approved, req.AdminNotes, time.Now().UTC())
	if err != nil {
		return false, err
	}
	if affected == 0 {
		return false, ErrNotFound
	}
	return approved, nil
}

// Delete removes one review by id
func (s *TestimonialService) Delete(ctx context.Context, id int64) error {
	affected, err := s.testimonialRepo.DeleteTestimonial(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Stats returns the moderation and rating summary
func (s *TestimonialService) Stats(ctx context.Context) (*model.TestimonialStats, error) {
	stats, err := s.testimonialRepo.TestimonialStats(ctx, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	stats.AverageRating = roundRating(stats.AverageRating)
	return stats, nil
}

func validateTestimonial(req *model.TestimonialRequest) error {
	var errs ValidationErrors

	nameLen := len([]rune(req.Name))
	if nameLen < 2 || nameLen > 100 {
		errs = errs.add("name", "الاسم يجب أن يكون بين 2 و 100 حرف")
	} else if !nameRe.MatchString(req.Name) {
		errs = errs.add("name", "الاسم يجب أن يحتوي على أحرف صحيحة فقط")
	}

	if req.Email != "" && !validEmail(req.Email) {
		errs = errs.add("email", "البريد الإلكتروني غير صحيح")
	}

	if !model.ValidServiceCode(req.Service) {
		errs = errs.add("service", "نوع الخدمة غير صحيح")
	}

	if req.Rating == nil || *req.Rating < 1 || *req.Rating > 5 {
		errs = errs.add("rating", "التقييم يجب أن يكون بين 1 و 5")
	}

	msgLen := len([]rune(req.Message))
	if msgLen < 10 || msgLen > 1000 {
		errs = errs.add("message", "التعليق يجب أن يكون بين 10 و 1000 حرف")
	}

	return errs.orNil()
}

// roundRating rounds an average to one decimal place
func roundRating(avg float64) float64 {
	return math.Round(avg*10) / 10
}
