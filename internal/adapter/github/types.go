package github

// Wire types mirroring the GraphQL response. Optional variant keys are
// pointers so presence can be told apart from a zero value.

type pageInfo struct {
	HasNextPage bool   `json:"hasNextPage"`
	EndCursor   string `json:"endCursor"`
}

type projectItemsData struct {
	Node *struct {
		Items struct {
			PageInfo pageInfo  `json:"pageInfo"`
			Nodes    []rawItem `json:"nodes"`
		} `json:"items"`
	} `json:"node"`
}

type rawItem struct {
	ID          string      `json:"id"`
	Content     *rawContent `json:"content"`
	FieldValues struct {
		Nodes []rawFieldValue `json:"nodes"`
	} `json:"fieldValues"`
}

type rawContent struct {
	Title     string    `json:"title"`
	Assignees *userList `json:"assignees"`
}

type userList struct {
	Nodes []struct {
		Login string `json:"login"`
	} `json:"nodes"`
}

// rawFieldValue is the flattened union of all field-value variants. Exactly
// one variant's value key is present per entry; kind() picks it out.
type rawFieldValue struct {
	Field struct {
		Name string `json:"name"`
	} `json:"field"`

	// ProjectV2ItemFieldTextValue
	Text *string `json:"text"`
	// ProjectV2ItemFieldDateValue
	Date *string `json:"date"`
	// ProjectV2ItemFieldSingleSelectValue
	Name      *string `json:"name"`
	UpdatedAt *string `json:"updatedAt"`
	// ProjectV2ItemFieldNumberValue
	Number *float64 `json:"number"`
	// ProjectV2ItemFieldIterationValue
	IterationID *string `json:"iterationId"`
	StartDate   *string `json:"startDate"`
	Duration    *int    `json:"duration"`
	Title       *string `json:"title"`
	// ProjectV2ItemFieldUserValue
	Users *userList `json:"users"`
}

// fieldKind is the closed enumeration of field-value variants.
type fieldKind int

const (
	kindUnknown fieldKind = iota
	kindText
	kindDate
	kindSingleSelect
	kindNumber
	kindIteration
	kindUsers
)

// kind discriminates the variant by which value key is present. Iteration
// and user entries are checked before single-select because they also carry
// a "title"/"name"-adjacent shape in the schema.
func (v rawFieldValue) kind() fieldKind {
	switch {
	case v.IterationID != nil:
		return kindIteration
	case v.Users != nil:
		return kindUsers
	case v.Number != nil:
		return kindNumber
	case v.Name != nil:
		return kindSingleSelect
	case v.Date != nil:
		return kindDate
	case v.Text != nil:
		return kindText
	default:
		return kindUnknown
	}
}
