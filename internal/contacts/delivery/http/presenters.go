package http

import (
	"eisenhower-matrix/internal/contacts"
	"eisenhower-matrix/internal/model"
)

type searchReq struct {
	Query    string `form:"q"`
	Category string `form:"category"`
	Page     int    `form:"page"`
	Limit    int    `form:"limit"`
}

func (r searchReq) toInput() contacts.SearchInput {
	return contacts.SearchInput{
		Query:    r.Query,
		Category: r.Category,
		Page:     r.Page,
		Limit:    r.Limit,
	}
}

type addContactReq struct {
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Category string `json:"category"`
}

func (r addContactReq) toInput() contacts.ContactInput {
	return contacts.ContactInput{
		Name:     r.Name,
		Phone:    r.Phone,
		Category: r.Category,
	}
}

type importReq struct {
	Contacts []addContactReq `json:"contacts"`
	VCard    string          `json:"vcard"`
}

type contactResp struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Category string `json:"category"`
}

func newContactResp(c model.Contact) contactResp {
	return contactResp{
		ID:       c.ID,
		Name:     c.Name,
		Phone:    c.Phone,
		Category: c.Category,
	}
}

type searchResp struct {
	Contacts []contactResp `json:"contacts"`
	Total    int           `json:"total"`
	HasMore  bool          `json:"has_more"`
}

func newSearchResp(out contacts.SearchOutput) searchResp {
	list := make([]contactResp, 0, len(out.Contacts))
	for _, c := range out.Contacts {
		list = append(list, newContactResp(c))
	}
	return searchResp{
		Contacts: list,
		Total:    out.Total,
		HasMore:  out.HasMore,
	}
}

type importResp struct {
	Imported []contactResp `json:"imported"`
	Count    int           `json:"count"`
}

func newImportResp(inserted []model.Contact) importResp {
	list := make([]contactResp, 0, len(inserted))
	for _, c := range inserted {
		list = append(list, newContactResp(c))
	}
	return importResp{Imported: list, Count: len(list)}
}

type statsResp struct {
	Total      int            `json:"total"`
	ByCategory map[string]int `json:"by_category"`
}
