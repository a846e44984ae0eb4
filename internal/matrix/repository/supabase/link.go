package supabase

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"eisenhower-matrix/internal/matrix/repository"
	"eisenhower-matrix/internal/model"
	pkgLog "eisenhower-matrix/pkg/log"
)

type implLinkRepository struct {
	client *Client
	l      pkgLog.Logger
}

// NewLinkRepository creates the Supabase-backed custom link repository.
func NewLinkRepository(client *Client, l pkgLog.Logger) repository.LinkRepository {
	return &implLinkRepository{client: client, l: l}
}

func (r *implLinkRepository) GetCustomLinks(ctx context.Context, userID string) ([]model.CustomLink, error) {
	query := url.Values{}
	query.Set("user_id", "eq."+userID)
	query.Set("order", "created_at.asc")
	query.Set("select", "*")

	var rows []linkRow
	if err := r.client.do(ctx, http.MethodGet, "custom_links", query.Encode(), nil, &rows); err != nil {
		r.l.Errorf(ctx, "supabase repository: failed to list custom links: %v", err)
		return nil, err
	}

	links := make([]model.CustomLink, 0, len(rows))
	for _, row := range rows {
		links = append(links, row.toLink())
	}
	return links, nil
}

func (r *implLinkRepository) CreateCustomLink(ctx context.Context, userID string, opt repository.CreateLinkOptions) (model.CustomLink, error) {
	body := linkInsert{
		UserID:    userID,
		Name:      opt.Name,
		URL:       opt.URL,
		Type:      string(opt.Type),
		Phone:     opt.Phone,
		Message:   opt.Message,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}

	var rows []linkRow
	if err := r.client.do(ctx, http.MethodPost, "custom_links", "", body, &rows); err != nil {
		r.l.Errorf(ctx, "supabase repository: failed to create custom link: %v", err)
		return model.CustomLink{}, err
	}
	if len(rows) == 0 {
		return model.CustomLink{}, fmt.Errorf("supabase create custom link: empty representation returned")
	}
	return rows[0].toLink(), nil
}

func (r *implLinkRepository) DeleteCustomLink(ctx context.Context, linkID string) error {
	query := url.Values{}
	query.Set("id", "eq."+linkID)

	if err := r.client.do(ctx, http.MethodDelete, "custom_links", query.Encode(), nil, nil); err != nil {
		r.l.Errorf(ctx, "supabase repository: failed to delete custom link %s: %v", linkID, err)
		return err
	}
	return nil
}

// ---- Wire types ----

type linkInsert struct {
	UserID    string `json:"user_id"`
	Name      string `json:"name"`
	URL       string `json:"url"`
	Type      string `json:"type"`
	Phone     string `json:"phone,omitempty"`
	Message   string `json:"message,omitempty"`
	CreatedAt string `json:"created_at"`
}

type linkRow struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	URL     string `json:"url"`
	Type    string `json:"type"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

func (row linkRow) toLink() model.CustomLink {
	return model.CustomLink{
		ID:      row.ID,
		Name:    row.Name,
		URL:     row.URL,
		Type:    model.LinkType(row.Type),
		Phone:   row.Phone,
		Message: row.Message,
	}
}
