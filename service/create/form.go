package create

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"storeadmin.GO/resource"
	"storeadmin.GO/upstream"
)

// State is the per-form lifecycle: Idle → Validating → Saving →
// Succeeded | Failed. Exactly one submit may be in flight per form.
type State int32

const (
	StateIdle State = iota
	StateValidating
	StateSaving
	StateSucceeded
	StateFailed
)

// ErrSaving rejects a second submit while one is already in flight.
var ErrSaving = errors.New("create: submit already in flight")

// FieldError scopes a local validation failure to the offending field.
// Unrelated errors are never aggregated into one opaque message.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Poster is the slice of the upstream client the orchestrator needs.
type Poster interface {
	Create(ctx context.Context, endpoint string, body interface{}) (map[string]interface{}, error)
}

// FormSpec declares how a resource's draft fields are validated and coerced
// at submit time. Drafts hold strings for every field; typed payload values
// exist only in the outgoing request.
type FormSpec struct {
	Required []string
	Numeric  []string
	Boolean  []string
	JSON     []string // free-form JSON fields (metadata)
	IDLists  []string // comma-separated id lists
}

// Outcome reports a submit that reached the backend. Warning is set for
// composite creates where the entity exists but a dependent step failed —
// a qualified success, never masked as total failure.
type Outcome struct {
	ID      string
	Entity  map[string]interface{}
	Message string
	Warning string
}

// SecondaryStep is a dependent call run after the entity is created (assign
// customer to groups, create the default variant, ...).
type SecondaryStep func(ctx context.Context, entity map[string]interface{}) error

// Form owns one create-subform: its draft buffer, its state machine and its
// submit path. A failed save preserves the draft exactly as entered.
type Form struct {
	mu        sync.Mutex
	state     State
	inFlight  bool
	draft     map[string]string
	message   string
	desc      resource.Descriptor
	spec      FormSpec
	client    Poster
	secondary SecondaryStep
}

// NewForm creates an idle form with an empty draft.
func NewForm(client Poster, desc resource.Descriptor, spec FormSpec) *Form {
	return &Form{
		state:  StateIdle,
		draft:  map[string]string{},
		desc:   desc,
		spec:   spec,
		client: client,
	}
}

// WithSecondary attaches a dependent step to run after creation.
func (f *Form) WithSecondary(step SecondaryStep) *Form {
	f.secondary = step
	return f
}

// SetField writes one draft field.
func (f *Form) SetField(key, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft[key] = value
}

// SetDraft replaces the whole draft buffer.
func (f *Form) SetDraft(draft map[string]string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft = make(map[string]string, len(draft))
	for k, v := range draft {
		f.draft[k] = v
	}
}

// Draft returns a copy of the current draft buffer.
func (f *Form) Draft() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[string]string, len(f.draft))
	for k, v := range f.draft {
		out[k] = v
	}
	return out
}

// State returns the current lifecycle state.
func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Message returns the last success or failure message.
func (f *Form) Message() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.message
}

// Submit validates the draft, POSTs the payload and runs the secondary
// step if one is attached. On success the draft resets to empty; on any
// failure the operator's input survives untouched.
func (f *Form) Submit(ctx context.Context) (*Outcome, error) {
	f.mu.Lock()
	// The in-flight flag covers the whole submit span, validation
	// included; gating on StateSaving alone leaves a window where a
	// second submit slips through and POSTs twice.
	if f.inFlight {
		f.mu.Unlock()
		return nil, ErrSaving
	}
	f.inFlight = true
	f.state = StateValidating
	draft := make(map[string]string, len(f.draft))
	for k, v := range f.draft {
		draft[k] = v
	}
	f.mu.Unlock()
	defer func() {
		f.mu.Lock()
		f.inFlight = false
		f.mu.Unlock()
	}()

	payload, err := BuildPayload(draft, f.spec)
	if err != nil {
		f.fail(err.Error())
		return nil, err
	}

	f.mu.Lock()
	f.state = StateSaving
	f.mu.Unlock()

	res, err := f.client.Create(ctx, f.desc.Endpoint, payload)
	if err != nil {
		msg := upstream.ServerMessage(err)
		if msg == "" {
			msg = fmt.Sprintf("unable to save %s", strings.ToLower(f.desc.Label))
		}
		f.fail(msg)
		return nil, err
	}

	entity := upstream.CreatedEntity(res, entityKey(f.desc))
	out := &Outcome{ID: upstream.EntityID(entity), Entity: entity}

	if f.secondary != nil {
		if serr := f.secondary(ctx, entity); serr != nil {
			out.Warning = fmt.Sprintf("%s created (id %s), but a follow-up step failed: %v", f.desc.Label, out.ID, serr)
			f.succeed(out.Warning)
			return out, nil
		}
	}
	out.Message = fmt.Sprintf("%s created", f.desc.Label)
	f.succeed(out.Message)
	return out, nil
}

func (f *Form) fail(msg string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = StateFailed
	f.message = msg
	// draft untouched: operator input must survive a failed save
}

func (f *Form) succeed(msg string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = StateSucceeded
	f.message = msg
	f.draft = map[string]string{}
}

// entityKey guesses the created-entity key from the list key; CreatedEntity
// falls back to the first object-valued property anyway.
func entityKey(desc resource.Descriptor) string {
	return strings.TrimSuffix(desc.ListKey, "s")
}

// BuildPayload coerces a string draft into a typed request body per spec.
// The first offending field halts the submit with a field-scoped error.
func BuildPayload(draft map[string]string, spec FormSpec) (map[string]interface{}, error) {
	for _, field := range spec.Required {
		if strings.TrimSpace(draft[field]) == "" {
			return nil, &FieldError{Field: field, Message: "required"}
		}
	}

	payload := make(map[string]interface{}, len(draft))
	for k, v := range draft {
		if v != "" {
			payload[k] = v
		}
	}

	for _, field := range spec.Numeric {
		raw, ok := draft[field]
		if !ok || raw == "" {
			continue
		}
		n, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, &FieldError{Field: field, Message: "must be a number"}
		}
		payload[field] = n
	}

	for _, field := range spec.Boolean {
		raw, ok := draft[field]
		if !ok || raw == "" {
			continue
		}
		b, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return nil, &FieldError{Field: field, Message: "must be true or false"}
		}
		payload[field] = b
	}

	for _, field := range spec.JSON {
		raw, ok := draft[field]
		if !ok || strings.TrimSpace(raw) == "" {
			continue
		}
		var parsed interface{}
		if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
			return nil, &FieldError{Field: field, Message: fmt.Sprintf("invalid JSON: %v", err)}
		}
		payload[field] = parsed
	}

	for _, field := range spec.IDLists {
		raw, ok := draft[field]
		if !ok || strings.TrimSpace(raw) == "" {
			continue
		}
		var ids []string
		for _, part := range strings.Split(raw, ",") {
			if id := strings.TrimSpace(part); id != "" {
				ids = append(ids, id)
			}
		}
		payload[field] = ids
	}

	return payload, nil
}
