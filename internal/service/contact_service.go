package service

import (
	"context"

	"go.uber.org/zap"

	"mycontacts/internal/apperr"
	"mycontacts/internal/model"
	"mycontacts/internal/repository"
)

var ErrContactNotFound = apperr.New(apperr.KindNotFound, "Contact not found")

// ContactService defines operations on the contact book.
type ContactService interface {
	CreateContact(ctx context.Context, req model.ContactRequest) (*model.Contact, error)
	GetContacts(ctx context.Context) ([]model.Contact, error)
	GetContactByID(ctx context.Context, id string) (*model.Contact, error)
	UpdateContact(ctx context.Context, id string, req model.ContactRequest) (*model.Contact, error)
	DeleteContact(ctx context.Context, id string) (*model.Contact, error)
}

type contactService struct {
	repo repository.ContactRepository
	log  *zap.Logger
}

// NewContactService creates a new ContactService
func NewContactService(repo repository.ContactRepository, log *zap.Logger) ContactService {
	return &contactService{repo: repo, log: log}
}

func (s *contactService) CreateContact(ctx context.Context, req model.ContactRequest) (*model.Contact, error) {
	if req.Name == "" || req.Email == "" || req.Phone == "" {
		return nil, ErrAllFieldsMandatory
	}

	contact := &model.Contact{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	}
	if err := s.repo.Create(ctx, contact); err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "Failed to create contact", err)
	}
	return contact, nil
}

func (s *contactService) GetContacts(ctx context.Context) ([]model.Contact, error) {
	contacts, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "Failed to retrieve contacts", err)
	}
	if contacts == nil {
		contacts = []model.Contact{}
	}
	return contacts, nil
}

func (s *contactService) GetContactByID(ctx context.Context, id string) (*model.Contact, error) {
	contact, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "Failed to retrieve contact", err)
	}
	if contact == nil {
		return nil, ErrContactNotFound
	}
	return contact, nil
}

// UpdateContact is a full replacement: every field is mandatory, matching
// the create contract.
func (s *contactService) UpdateContact(ctx context.Context, id string, req model.ContactRequest) (*model.Contact, error) {
	if req.Name == "" || req.Email == "" || req.Phone == "" {
		return nil, ErrAllFieldsMandatory
	}

	contact, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "Failed to update contact", err)
	}
	if contact == nil {
		return nil, ErrContactNotFound
	}

	contact.Name = req.Name
	contact.Email = req.Email
	contact.Phone = req.Phone

	if err := s.repo.Update(ctx, contact); err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "Failed to update contact", err)
	}
	return contact, nil
}

// DeleteContact removes a contact and returns the deleted record, which
// clients display in confirmation flows.
func (s *contactService) DeleteContact(ctx context.Context, id string) (*model.Contact, error) {
	contact, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "Failed to delete contact", err)
	}
	if contact == nil {
		return nil, ErrContactNotFound
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "Failed to delete contact", err)
	}
	return contact, nil
}
