package create

import (
	"context"
	"fmt"
	"strings"

	"storeadmin.GO/upstream"
)

// CustomerInput is the create-customer draft.
type CustomerInput struct {
	Email     string
	FirstName string
	LastName  string
	Phone     string
	GroupIDs  []string
}

// CustomerOutcome reports a customer create. GroupWarnings lists the group
// assignments that failed after the customer itself was created — reported
// as a qualified success with the customer id, not as a blanket failure.
type CustomerOutcome struct {
	CustomerID    string
	GroupWarnings []string
}

// CreateCustomer creates the customer, then assigns it to each requested
// group. Assignment failures are collected per group; the created customer
// is never discarded or hidden.
func CreateCustomer(ctx context.Context, client Poster, in CustomerInput) (*CustomerOutcome, error) {
	if strings.TrimSpace(in.Email) == "" {
		return nil, &FieldError{Field: "email", Message: "required"}
	}

	payload := map[string]interface{}{"email": in.Email}
	if in.FirstName != "" {
		payload["first_name"] = in.FirstName
	}
	if in.LastName != "" {
		payload["last_name"] = in.LastName
	}
	if in.Phone != "" {
		payload["phone"] = in.Phone
	}

	res, err := client.Create(ctx, "/admin/customers", payload)
	if err != nil {
		return nil, err
	}

	out := &CustomerOutcome{CustomerID: upstream.EntityID(upstream.CreatedEntity(res, "customer"))}

	for _, groupID := range in.GroupIDs {
		endpoint := "/admin/customer-groups/" + groupID + "/customers"
		body := map[string]interface{}{"customer_ids": []string{out.CustomerID}}
		if _, gerr := client.Create(ctx, endpoint, body); gerr != nil {
			out.GroupWarnings = append(out.GroupWarnings, fmt.Sprintf("group %s: %v", groupID, gerr))
		}
	}
	return out, nil
}
