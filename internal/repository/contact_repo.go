package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"mycontacts/internal/model"
)

// ContactRepository defines operations for contact data
type ContactRepository interface {
	Create(ctx context.Context, contact *model.Contact) error
	FindAll(ctx context.Context) ([]model.Contact, error)
	FindByID(ctx context.Context, id string) (*model.Contact, error)
	Update(ctx context.Context, contact *model.Contact) error
	Delete(ctx context.Context, id string) error
}

type contactRepository struct {
	db PgxPool
}

// NewContactRepository creates a new ContactRepository
func NewContactRepository(db PgxPool) ContactRepository {
	return &contactRepository{db: db}
}

// Create inserts a new contact, assigning an opaque ID.
func (r *contactRepository) Create(ctx context.Context, contact *model.Contact) error {
	contact.ID = uuid.NewString()
	sql := `INSERT INTO contacts (id, name, email, phone)
            VALUES ($1, $2, $3, $4) RETURNING created_at, updated_at`
	err := r.db.QueryRow(ctx, sql, contact.ID, contact.Name, contact.Email, contact.Phone).
		Scan(&contact.CreatedAt, &contact.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create contact: %w", err)
	}
	return nil
}

// FindAll retrieves every contact, newest first.
func (r *contactRepository) FindAll(ctx context.Context) ([]model.Contact, error) {
	sql := `SELECT id, name, email, phone, created_at, updated_at
            FROM contacts ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query contacts: %w", err)
	}
	defer rows.Close()

	var contacts []model.Contact
	for rows.Next() {
		var c model.Contact
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan contact row: %w", err)
		}
		contacts = append(contacts, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating contact rows: %w", err)
	}
	return contacts, nil
}

// FindByID retrieves a contact by ID. Returns (nil, nil) when not found.
func (r *contactRepository) FindByID(ctx context.Context, id string) (*model.Contact, error) {
	c := &model.Contact{}
	sql := `SELECT id, name, email, phone, created_at, updated_at FROM contacts WHERE id = $1`
	err := r.db.QueryRow(ctx, sql, id).Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find contact by ID: %w", err)
	}
	return c, nil
}

// Update replaces the mutable fields of an existing contact.
func (r *contactRepository) Update(ctx context.Context, contact *model.Contact) error {
	sql := `UPDATE contacts SET name = $1, email = $2, phone = $3
            WHERE id = $4 RETURNING updated_at`
	err := r.db.QueryRow(ctx, sql, contact.Name, contact.Email, contact.Phone, contact.ID).
		Scan(&contact.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("contact not found for update")
		}
		return fmt.Errorf("failed to update contact: %w", err)
	}
	return nil
}

// Delete removes a contact from the database.
func (r *contactRepository) Delete(ctx context.Context, id string) error {
	sql := `DELETE FROM contacts WHERE id = $1`
	cmdTag, err := r.db.Exec(ctx, sql, id)
	if err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("contact not found for deletion")
	}
	return nil
}
