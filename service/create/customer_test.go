package create

import (
	"context"
	"errors"
	"strings"
	"testing"

	"storeadmin.GO/upstream"
)

func TestCreateCustomer_AssignsGroups(t *testing.T) {
	var endpoints []string
	poster := &fakePoster{respond: func(endpoint string, body interface{}) (map[string]interface{}, error) {
		endpoints = append(endpoints, endpoint)
		if endpoint == "/admin/customers" {
			return map[string]interface{}{"customer": map[string]interface{}{"id": "cus_1"}}, nil
		}
		return map[string]interface{}{}, nil
	}}

	out, err := CreateCustomer(context.Background(), poster, CustomerInput{
		Email:    "ada@example.com",
		GroupIDs: []string{"grp_1", "grp_2"},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if out.CustomerID != "cus_1" || len(out.GroupWarnings) != 0 {
		t.Errorf("outcome = %+v", out)
	}
	if len(endpoints) != 3 {
		t.Fatalf("calls = %v, want customer create plus two group assignments", endpoints)
	}
	if endpoints[1] != "/admin/customer-groups/grp_1/customers" {
		t.Errorf("group endpoint = %q", endpoints[1])
	}
}

func TestCreateCustomer_GroupFailureIsQualifiedSuccess(t *testing.T) {
	poster := &fakePoster{respond: func(endpoint string, body interface{}) (map[string]interface{}, error) {
		if endpoint == "/admin/customers" {
			return map[string]interface{}{"customer": map[string]interface{}{"id": "cus_1"}}, nil
		}
		if strings.Contains(endpoint, "grp_bad") {
			return nil, &upstream.APIError{Status: 404, Message: "group not found"}
		}
		return map[string]interface{}{}, nil
	}}

	out, err := CreateCustomer(context.Background(), poster, CustomerInput{
		Email:    "ada@example.com",
		GroupIDs: []string{"grp_ok", "grp_bad"},
	})
	if err != nil {
		t.Fatalf("customer was created; must not report total failure: %v", err)
	}
	if out.CustomerID != "cus_1" {
		t.Errorf("customer id = %q, must be exposed", out.CustomerID)
	}
	if len(out.GroupWarnings) != 1 || !strings.Contains(out.GroupWarnings[0], "grp_bad") {
		t.Errorf("warnings = %v, want one naming grp_bad", out.GroupWarnings)
	}
}

func TestCreateCustomer_CreateFailureIsTotalFailure(t *testing.T) {
	poster := &fakePoster{respond: func(endpoint string, body interface{}) (map[string]interface{}, error) {
		return nil, &upstream.APIError{Status: 422, Message: "email already registered"}
	}}

	_, err := CreateCustomer(context.Background(), poster, CustomerInput{Email: "ada@example.com"})
	if err == nil {
		t.Fatal("expected failure when nothing was created")
	}
}

func TestCreateCustomer_MissingEmail(t *testing.T) {
	poster := &fakePoster{respond: func(string, interface{}) (map[string]interface{}, error) {
		t.Fatal("network must not be reached")
		return nil, nil
	}}
	_, err := CreateCustomer(context.Background(), poster, CustomerInput{})
	var fe *FieldError
	if !errors.As(err, &fe) || fe.Field != "email" {
		t.Errorf("err = %v, want FieldError on email", err)
	}
}
