package model

// Project is immutable reference data seeded at startup. Tasks reference
// projects by ID only.
type Project struct {
	ID   string
	Name string
}

// LinkType categorizes a custom link.
type LinkType string

const (
	LinkTypeAI       LinkType = "AI"
	LinkTypePerson   LinkType = "Person"
	LinkTypeTool     LinkType = "Tool"
	LinkTypeWhatsApp LinkType = "WhatsApp"
	LinkTypeCustom   LinkType = "Custom"
)

// CustomLink is a user-defined quick link. Phone and Message are only used
// to build WhatsApp deep links.
type CustomLink struct {
	ID      string
	Name    string
	URL     string
	Type    LinkType
	Phone   string
	Message string
}

// DayData aggregates everything scoped to one calendar date: the five
// quadrant collections and the custom links. Invariant: each task ID appears
// in at most one quadrant collection.
type DayData struct {
	Date        string `json:"date"` // ISO day key, e.g. "2026-08-30"
	Tasks       map[Quadrant][]Task
	CustomLinks []CustomLink
}

// NewDayData returns an empty DayData for the given date with all five
// quadrant collections initialized.
func NewDayData(date string) DayData {
	tasks := make(map[Quadrant][]Task, len(AllQuadrants))
	for _, q := range AllQuadrants {
		tasks[q] = []Task{}
	}
	return DayData{
		Date:        date,
		Tasks:       tasks,
		CustomLinks: []CustomLink{},
	}
}
