// Package service implements contact inquiry submission and listing.
package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"property_catalog_backend/internal/contacts/repository"
	"property_catalog_backend/internal/contacts/transport"
	"property_catalog_backend/internal/events"
	"property_catalog_backend/platform/apperr"
	"property_catalog_backend/platform/logger"
	"property_catalog_backend/platform/paging"
	"property_catalog_backend/platform/phone"
	"property_catalog_backend/platform/sanitize"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100

	msgInvalidPhone   = "invalid phone number"
	msgEmptyAfterTrim = "name and message must contain text"
	msgSaveFailed     = "failed to save contact"
	msgListFailed     = "failed to list contacts"
)

// Service handles contact inquiries.
type Service struct {
	repo   repository.Repository
	bus    events.Bus
	region string
	log    *logger.Logger
}

// New creates a new contacts service. region is the default phone region.
func New(repo repository.Repository, bus events.Bus, region string, log *logger.Logger) *Service {
	return &Service{repo: repo, bus: bus, region: region, log: log}
}

// Submit stores an inquiry and publishes ContactSubmitted.
func (s *Service) Submit(ctx context.Context, req transport.SubmitContactRequest) (transport.ContactResponse, error) {
	params := repository.CreateContactParams{
		Name:    sanitize.Line(req.Name),
		Email:   strings.ToLower(strings.TrimSpace(req.Email)),
		Message: sanitize.Text(req.Message),
	}
	if params.Name == "" || params.Message == "" {
		return transport.ContactResponse{}, apperr.Validation(msgEmptyAfterTrim)
	}

	if req.Phone != nil && strings.TrimSpace(*req.Phone) != "" {
		normalized, ok := phone.NormalizeE164(*req.Phone, s.region)
		if !ok {
			return transport.ContactResponse{}, apperr.Validation(msgInvalidPhone)
		}
		params.Phone = &normalized
	}

	if req.ListingID != nil && *req.ListingID != "" {
		id, err := uuid.Parse(*req.ListingID)
		if err != nil {
			return transport.ContactResponse{}, apperr.Validation("invalid listing id")
		}
		params.ListingID = &id
	}

	contact, err := s.repo.Create(ctx, params)
	if err != nil {
		return transport.ContactResponse{}, apperr.Opaque(err, "contacts.Submit", msgSaveFailed)
	}

	event := events.ContactSubmitted{
		BaseEvent: events.NewBaseEvent(),
		ContactID: contact.ID,
		Name:      contact.Name,
		Email:     contact.Email,
		Message:   contact.Message,
		ListingID: contact.ListingID,
	}
	if contact.Phone != nil {
		event.Phone = *contact.Phone
	}
	s.bus.Publish(ctx, event)

	s.log.Info("contact submitted", "id", contact.ID, "hasListing", contact.ListingID != nil)
	return toResponse(contact), nil
}

// List returns inquiries newest first.
func (s *Service) List(ctx context.Context, q transport.ListContactsQuery) (transport.ContactListResponse, error) {
	window := paging.NewWindow(q.Page, q.Limit, defaultPageSize, maxPageSize)

	contacts, total, err := s.repo.List(ctx, repository.ListContactsParams{
		Offset: window.Offset,
		Limit:  window.Limit,
	})
	if err != nil {
		return transport.ContactListResponse{}, apperr.Opaque(err, "contacts.List", msgListFailed)
	}

	items := make([]transport.ContactResponse, 0, len(contacts))
	for _, c := range contacts {
		items = append(items, toResponse(c))
	}

	meta := paging.NewMeta(total, window.Page, window.Limit)
	return transport.ContactListResponse{
		Items:      items,
		Total:      total,
		Page:       window.Page,
		Limit:      window.Limit,
		TotalPages: meta.TotalPages,
		HasNext:    meta.HasNext,
		HasPrev:    meta.HasPrev,
	}, nil
}

func toResponse(c repository.Contact) transport.ContactResponse {
	resp := transport.ContactResponse{
		ID:        c.ID.String(),
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Message:   c.Message,
		CreatedAt: c.CreatedAt.UTC().Format(time.RFC3339),
	}
	if c.ListingID != nil {
		id := c.ListingID.String()
		resp.ListingID = &id
	}
	return resp
}
