package notion

// Property is one typed property value as returned by the Notion API. The
// Type field discriminates which value field is populated; the rest stay at
// their zero value.
type Property struct {
	Type string `json:"type"`

	Title          []RichText     `json:"title,omitempty"`
	RichText       []RichText     `json:"rich_text,omitempty"`
	Number         *float64       `json:"number,omitempty"`
	Select         *SelectOption  `json:"select,omitempty"`
	MultiSelect    []SelectOption `json:"multi_select,omitempty"`
	Date           *DateValue     `json:"date,omitempty"`
	Checkbox       *bool          `json:"checkbox,omitempty"`
	URL            *string        `json:"url,omitempty"`
	Email          *string        `json:"email,omitempty"`
	PhoneNumber    *string        `json:"phone_number,omitempty"`
	Formula        *Formula       `json:"formula,omitempty"`
	Relation       []Relation     `json:"relation,omitempty"`
	Rollup         *Rollup        `json:"rollup,omitempty"`
	Status         *SelectOption  `json:"status,omitempty"`
	CreatedTime    string         `json:"created_time,omitempty"`
	LastEditedTime string         `json:"last_edited_time,omitempty"`
	CreatedBy      *UserRef       `json:"created_by,omitempty"`
	LastEditedBy   *UserRef       `json:"last_edited_by,omitempty"`
	Files          []File         `json:"files,omitempty"`
}

// RichText is one text run inside a title or rich_text property.
type RichText struct {
	PlainText string `json:"plain_text"`
}

// SelectOption is the chosen option of a select, multi_select or status.
type SelectOption struct {
	Name string `json:"name"`
}

// DateValue is a date or date range. Only the start matters to us.
type DateValue struct {
	Start string `json:"start"`
	End   string `json:"end,omitempty"`
}

// Formula carries a computed value keyed by its declared result type.
type Formula struct {
	Type    string     `json:"type"`
	String  *string    `json:"string,omitempty"`
	Number  *float64   `json:"number,omitempty"`
	Boolean *bool      `json:"boolean,omitempty"`
	Date    *DateValue `json:"date,omitempty"`
}

// Relation is a link to another page.
type Relation struct {
	ID string `json:"id"`
}

// Rollup aggregates a property across related pages.
type Rollup struct {
	Type   string     `json:"type"`
	Number *float64   `json:"number,omitempty"`
	Date   *DateValue `json:"date,omitempty"`
	Array  []Property `json:"array,omitempty"`
}

// UserRef identifies the user who created or last edited a page.
type UserRef struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// File is one attachment. Internal uploads carry a "file" object, links an
// "external" one.
type File struct {
	Name     string   `json:"name,omitempty"`
	File     *FileRef `json:"file,omitempty"`
	External *FileRef `json:"external,omitempty"`
}

// FileRef holds the resolved URL of an attachment.
type FileRef struct {
	URL string `json:"url"`
}

// Extract normalizes one property into a plain scalar or slice: strings for
// text-like types, float64 for numbers, bool for checkboxes, []string for
// multi-valued types. Absent values and unknown property types come back as
// nil; a malformed field never aborts a sync.
func Extract(p *Property) interface{} {
	if p == nil {
		return nil
	}
	switch p.Type {
	case "title":
		return joinRuns(p.Title)
	case "rich_text":
		return joinRuns(p.RichText)
	case "number":
		if p.Number == nil {
			return nil
		}
		return *p.Number
	case "select":
		return optionName(p.Select)
	case "multi_select":
		return optionNames(p.MultiSelect)
	case "date":
		if p.Date == nil {
			return nil
		}
		return p.Date.Start
	case "checkbox":
		if p.Checkbox == nil {
			return nil
		}
		return *p.Checkbox
	case "url":
		return stringOrNil(p.URL)
	case "email":
		return stringOrNil(p.Email)
	case "phone_number":
		return stringOrNil(p.PhoneNumber)
	case "formula":
		return extractFormula(p.Formula)
	case "relation":
		ids := make([]string, 0, len(p.Relation))
		for _, r := range p.Relation {
			ids = append(ids, r.ID)
		}
		return ids
	case "rollup":
		return extractRollup(p.Rollup)
	case "status":
		return optionName(p.Status)
	case "created_time":
		return p.CreatedTime
	case "last_edited_time":
		return p.LastEditedTime
	case "created_by":
		return userNameOrID(p.CreatedBy)
	case "last_edited_by":
		return userNameOrID(p.LastEditedBy)
	case "files":
		urls := make([]string, 0, len(p.Files))
		for _, f := range p.Files {
			if f.File != nil {
				urls = append(urls, f.File.URL)
			} else if f.External != nil {
				urls = append(urls, f.External.URL)
			}
		}
		return urls
	}
	// Unsupported types (people, unique_id, verification, ...) degrade to nil.
	return nil
}

func joinRuns(runs []RichText) string {
	out := ""
	for _, r := range runs {
		out += r.PlainText
	}
	return out
}

func optionName(opt *SelectOption) interface{} {
	if opt == nil {
		return nil
	}
	return opt.Name
}

func optionNames(opts []SelectOption) []string {
	names := make([]string, 0, len(opts))
	for _, o := range opts {
		names = append(names, o.Name)
	}
	return names
}

func stringOrNil(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}

func extractFormula(f *Formula) interface{} {
	if f == nil {
		return nil
	}
	switch f.Type {
	case "string":
		return stringOrNil(f.String)
	case "number":
		if f.Number == nil {
			return nil
		}
		return *f.Number
	case "boolean":
		if f.Boolean == nil {
			return nil
		}
		return *f.Boolean
	case "date":
		if f.Date == nil {
			return nil
		}
		return f.Date.Start
	}
	return nil
}

// extractRollup unwraps a rollup: array rollups are extracted member by
// member (one level deep), anything else passes its nested value through.
func extractRollup(r *Rollup) interface{} {
	if r == nil {
		return nil
	}
	switch r.Type {
	case "array":
		values := make([]interface{}, 0, len(r.Array))
		for i := range r.Array {
			values = append(values, Extract(&r.Array[i]))
		}
		return values
	case "number":
		if r.Number == nil {
			return nil
		}
		return *r.Number
	case "date":
		if r.Date == nil {
			return nil
		}
		return r.Date.Start
	}
	return nil
}

func userNameOrID(u *UserRef) interface{} {
	if u == nil {
		return nil
	}
	if u.Name != "" {
		return u.Name
	}
	return u.ID
}
