package github

import (
	"fmt"
	"time"

	"gh-burndown/internal/domain"
)

// Board field names the normalizer maps onto card attributes.
const (
	statusFieldName   = "Status"
	estimateFieldName = "Estimate (Hours)"
	priorityFieldName = "Priority"
	impactFieldName   = "Impact"
)

// normalizeItem flattens one raw project item into a domain card.
//
// Assignees have two possible sources: the issue/PR content and the board's
// user-type field. The field-level value is canonical since it is what the
// board displays; content assignees are used only when no user field entry
// is present, which keeps the result independent of entry order.
func normalizeItem(item rawItem) (domain.Card, error) {
	card := domain.Card{ID: item.ID}

	var contentAssignees []string
	if item.Content != nil {
		card.Title = item.Content.Title
		if item.Content.Assignees != nil {
			contentAssignees = logins(*item.Content.Assignees)
		}
	}

	var fieldAssignees []string
	haveFieldAssignees := false

	for _, fv := range item.FieldValues.Nodes {
		switch fv.kind() {
		case kindSingleSelect:
			switch fv.Field.Name {
			case statusFieldName:
				card.StatusName = *fv.Name
				if fv.UpdatedAt == nil {
					return domain.Card{}, fmt.Errorf("item %s: status value has no updatedAt", item.ID)
				}
				ts, err := time.Parse(time.RFC3339, *fv.UpdatedAt)
				if err != nil {
					return domain.Card{}, fmt.Errorf("item %s: parsing status updatedAt: %w", item.ID, err)
				}
				card.StatusUpdatedAt = ts
			case priorityFieldName:
				card.Priority = *fv.Name
			case impactFieldName:
				card.Impact = *fv.Name
			}
		case kindIteration:
			if fv.StartDate == nil || fv.Duration == nil {
				return domain.Card{}, fmt.Errorf("item %s: iteration value missing start date or duration", item.ID)
			}
			start, err := time.Parse("2006-01-02", *fv.StartDate)
			if err != nil {
				return domain.Card{}, fmt.Errorf("item %s: parsing iteration start date: %w", item.ID, err)
			}
			end := start.AddDate(0, 0, *fv.Duration)
			card.IterationID = *fv.IterationID
			card.IterationEnd = &end
		case kindUsers:
			fieldAssignees = logins(*fv.Users)
			haveFieldAssignees = true
		case kindNumber:
			if fv.Field.Name == estimateFieldName {
				card.EstimateHours = *fv.Number
			}
		case kindText, kindDate, kindUnknown:
			// Not mapped to any card attribute.
		}
	}

	if haveFieldAssignees {
		card.Assignees = fieldAssignees
	} else {
		card.Assignees = contentAssignees
	}

	return domain.NewCard(card)
}

func logins(ul userList) []string {
	out := make([]string, 0, len(ul.Nodes))
	for _, n := range ul.Nodes {
		out = append(out, n.Login)
	}
	return out
}
