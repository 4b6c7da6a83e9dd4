package entities

import "github.com/simkit-dev/modelcheck/internal/domain/values"

// MessageCode classifies a validation message.
type MessageCode string

const (
	// CodeFormulaParseError marks an explicit formula that failed to parse.
	CodeFormulaParseError MessageCode = "FormulaParseError"
	// CodeUnresolvedMoleculeReference marks an application of an undeclared molecule.
	CodeUnresolvedMoleculeReference MessageCode = "UnresolvedMoleculeReference"
)

// ValidationState summarizes a result.
type ValidationState string

const (
	StateValid             ValidationState = "valid"
	StateValidWithWarnings ValidationState = "valid_with_warnings"
	StateInvalid           ValidationState = "invalid"
)

// ValidationMessage is one finding of a validation pass.
type ValidationMessage struct {
	Type          values.NotificationType
	Code          MessageCode
	Subject       Subject
	Text          string
	BuildingBlock BuildingBlock
}

// SubjectName returns the name of the subject, or "" if there is none.
func (m ValidationMessage) SubjectName() string {
	if m.Subject == nil {
		return ""
	}
	return m.Subject.Name()
}

// SubjectType returns the object type of the subject, or "" if there is none.
func (m ValidationMessage) SubjectType() string {
	if m.Subject == nil {
		return ""
	}
	return m.Subject.ObjectType()
}

// BuildingBlockName returns the name of the related block, or "" if there is none.
func (m ValidationMessage) BuildingBlockName() string {
	if m.BuildingBlock == nil {
		return ""
	}
	return m.BuildingBlock.Name()
}

// ValidationResult is an ordered, append-only list of validation messages.
// Messages are never sorted or deduplicated.
type ValidationResult struct {
	messages []ValidationMessage
}

// NewValidationResult creates an empty result.
func NewValidationResult() *ValidationResult {
	return &ValidationResult{}
}

// AddMessage appends an uncoded message.
func (r *ValidationResult) AddMessage(notification values.NotificationType, subject Subject, text string, block BuildingBlock) {
	r.Add(ValidationMessage{
		Type:          notification,
		Subject:       subject,
		Text:          text,
		BuildingBlock: block,
	})
}

// Add appends a message.
func (r *ValidationResult) Add(msg ValidationMessage) {
	r.messages = append(r.messages, msg)
}

// AddMessagesFrom appends every message of other, preserving order.
func (r *ValidationResult) AddMessagesFrom(other *ValidationResult) {
	if other == nil {
		return
	}
	r.messages = append(r.messages, other.messages...)
}

// Messages returns a copy of the messages in insertion order.
func (r *ValidationResult) Messages() []ValidationMessage {
	out := make([]ValidationMessage, len(r.messages))
	copy(out, r.messages)
	return out
}

// Len returns the number of messages.
func (r *ValidationResult) Len() int {
	return len(r.messages)
}

// Count returns the number of messages of the given type.
func (r *ValidationResult) Count(notification values.NotificationType) int {
	n := 0
	for _, m := range r.messages {
		if m.Type.Equals(notification) {
			n++
		}
	}
	return n
}

// CountByCode returns the number of messages with the given code.
func (r *ValidationResult) CountByCode(code MessageCode) int {
	n := 0
	for _, m := range r.messages {
		if m.Code == code {
			n++
		}
	}
	return n
}

// State returns Invalid if any error was reported, ValidWithWarnings if any
// warning was, and Valid otherwise.
func (r *ValidationResult) State() ValidationState {
	if r.Count(values.NotifyError) > 0 {
		return StateInvalid
	}
	if r.Count(values.NotifyWarning) > 0 {
		return StateValidWithWarnings
	}
	return StateValid
}
