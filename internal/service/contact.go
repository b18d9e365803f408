package service

import (
	"context"
	"net/mail"
	"regexp"
	"strings"
	"time"

	"kayan/internal/model"
	"kayan/internal/repository"
)

const (
	defaultContactPage  = 1
	defaultContactLimit = 20
)

var (
	nameRe  = regexp.MustCompile(`^[\p{Arabic}\s\w]+$`)
	phoneRe = regexp.MustCompile(`^[\d\s\-\+\(\)]+$`)
)

// ContactService handles contact form submissions and their moderation
type ContactService struct {
	contactRepo ContactRepositoryInterface
	notifier    NotifierInterface
}

// NewContactService creates a new Contact Service
func NewContactService(contactRepo ContactRepositoryInterface, notifier NotifierInterface) *ContactService {
	return &ContactService{
		contactRepo: contactRepo,
		notifier:    notifier,
	}
}

// Submit validates and stores a contact form submission, then fires the
// admin notification and auto-reply. Notification failures never surface;
// the submission is saved either way.
func (s *ContactService) Submit(ctx context.Context, req *model.ContactRequest, clientIP, userAgent string) (*model.CreatedResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Phone = strings.TrimSpace(req.Phone)
	req.Message = strings.TrimSpace(req.Message)

	if err := validateContact(req); err != nil {
		return nil, err
	}

	m := &model.ContactMessage{
		Name:      req.Name,
		Email:     strings.ToLower(req.Email),
		Phone:     req.Phone,
		Message:   req.Message,
		IPAddress: clientIP,
		UserAgent: userAgent,
		Status:    model.ContactStatusNew,
	}

	if err := s.contactRepo.SaveContactMessage(ctx, m); err != nil {
		return nil, err
	}

	s.notifier.NotifyContactMessage(ctx, m)

	return &model.CreatedResponse{
		ID:        m.ID,
		Timestamp: m.CreatedAt.Format(time.RFC3339),
	}, nil
}

// List returns one page of the contact inbox
func (s *ContactService) List(ctx context.Context, q *model.ContactListQuery) (*model.ContactList, error) {
	if q.Page < 1 {
		q.Page = defaultContactPage
	}
	if q.Limit < 1 {
		q.Limit = defaultContactLimit
	}

	messages, total, err := s.contactRepo.ListContactMessages(ctx, q)
	if err != nil {
		return nil, err
	}

	return &model.ContactList{
		Messages:   messages,
		Pagination: buildPagination(q.Page, q.Limit, total),
	}, nil
}

// Get loads one message by id
func (s *ContactService) Get(ctx context.Context, id int64) (*model.ContactMessage, error) {
	m, err := s.contactRepo.GetContactMessage(ctx, id)
	if err != nil {
		if repository.IsRecordNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return m, nil
}

// UpdateStatus moves a message through the moderation workflow
func (s *ContactService) UpdateStatus(ctx context.Context, id int64, req *model.ContactStatusRequest) error {
	if !model.ValidContactStatus(req.Status) {
		return ValidationErrors{}.add("status", "حالة غير صحيحة")
	}

	affected, err := s.contactRepo.UpdateContactStatus(ctx, id, req.Status, req.Response, time.Now().UTC())
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes one message by id
func (s *ContactService) Delete(ctx context.Context, id int64) error {
	affected, err := s.contactRepo.DeleteContactMessage(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Stats returns the inbox summary
func (s *ContactService) Stats(ctx context.Context) (*model.ContactStats, error) {
	return s.contactRepo.ContactStats(ctx, time.Now().UTC())
}

func validateContact(req *model.ContactRequest) error {
	var errs ValidationErrors

	nameLen := len([]rune(req.Name))
	if nameLen < 2 || nameLen > 100 {
		errs = errs.add("name", "الاسم يجب أن يكون بين 2 و 100 حرف")
	} else if !nameRe.MatchString(req.Name) {
		errs = errs.add("name", "الاسم يجب أن يحتوي على أحرف صحيحة فقط")
	}

	if !validEmail(req.Email) {
		errs = errs.add("email", "البريد الإلكتروني غير صحيح")
	}

	if req.Phone != "" {
		phoneLen := len([]rune(req.Phone))
		if phoneLen < 10 || phoneLen > 20 {
			errs = errs.add("phone", "رقم الهاتف يجب أن يكون بين 10 و 20 رقم")
		} else if !phoneRe.MatchString(req.Phone) {
			errs = errs.add("phone", "رقم الهاتف يحتوي على أحرف غير صحيحة")
		}
	}

	msgLen := len([]rune(req.Message))
	if msgLen < 10 || msgLen > 2000 {
		errs = errs.add("message", "الرسالة يجب أن تكون بين 10 و 2000 حرف")
	}

	return errs.orNil()
}

// validEmail accepts a bare address without display name
func validEmail(s string) bool {
	if s == "" {
		return false
	}
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}
