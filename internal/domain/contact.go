package domain

import (
	"context"
	"sort"
	"strings"
	"time"
)

// FarmSize is the acreage bucket selected on the contact form
type FarmSize string

const (
	FarmSize1to5   FarmSize = "1-5"
	FarmSize5to10  FarmSize = "5-10"
	FarmSize10to25 FarmSize = "10-25"
	FarmSize25to50 FarmSize = "25-50"
	FarmSize50Plus FarmSize = "50+"
)

// FarmSizes lists the buckets in display order
var FarmSizes = []FarmSize{FarmSize1to5, FarmSize5to10, FarmSize10to25, FarmSize25to50, FarmSize50Plus}

// Valid reports whether s is one of the closed bucket set. Empty means "not selected".
func (s FarmSize) Valid() bool {
	for _, fs := range FarmSizes {
		if s == fs {
			return true
		}
	}
	return false
}

// Label is the human-readable option text
func (s FarmSize) Label() string {
	return string(s) + " acres"
}

// Contact form field names, shared by JSON, form posts and error maps
const (
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPhone    = "phone"
	FieldFarmSize = "farmSize"
	FieldMessage  = "message"
)

// ContactFields lists the form fields in display order
var ContactFields = []string{FieldName, FieldEmail, FieldPhone, FieldFarmSize, FieldMessage}

// IsContactField reports whether name is one of the five form fields
func IsContactField(name string) bool {
	for _, f := range ContactFields {
		if f == name {
			return true
		}
	}
	return false
}

// ContactRequest represents a contact form submission.
// Validation lives in pkg/validation; the tags map struct fields to the form's field names.
type ContactRequest struct {
	Name     string `json:"name" form:"name" validate:"notblank"`
	Email    string `json:"email" form:"email" validate:"notblank,pond_email"`
	Phone    string `json:"phone" form:"phone" validate:"notblank,ten_digit_phone"`
	FarmSize string `json:"farmSize" form:"farmSize" validate:"farm_size"`
	Message  string `json:"message" form:"message" validate:"notblank"`
}

// Get returns the value of a form field by name
func (r ContactRequest) Get(field string) string {
	switch field {
	case FieldName:
		return r.Name
	case FieldEmail:
		return r.Email
	case FieldPhone:
		return r.Phone
	case FieldFarmSize:
		return r.FarmSize
	case FieldMessage:
		return r.Message
	}
	return ""
}

// Set assigns a form field by name. Unknown fields are ignored and reported false.
func (r *ContactRequest) Set(field, value string) bool {
	switch field {
	case FieldName:
		r.Name = value
	case FieldEmail:
		r.Email = value
	case FieldPhone:
		r.Phone = value
	case FieldFarmSize:
		r.FarmSize = value
	case FieldMessage:
		r.Message = value
	default:
		return false
	}
	return true
}

// ValidationErrors maps a field name to its message. Empty means valid.
type ValidationErrors map[string]string

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "validation passed"
	}
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+e[f])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Clone returns an independent copy (never nil)
func (e ValidationErrors) Clone() ValidationErrors {
	out := make(ValidationErrors, len(e))
	for k, v := range e {
		out[k] = v
	}
	return out
}

// Inquiry source values
const (
	SourceForm = "form"
	SourceAPI  = "api"
)

// SubmitMeta describes where a submission came from
type SubmitMeta struct {
	Source    string
	RemoteIP  string
	UserAgent string
	RequestID string
}

// Inquiry is an accepted contact request
type Inquiry struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	FarmSize  FarmSize  `json:"farmSize"`
	Message   string    `json:"message"`
	Source    string    `json:"source"`
	RemoteIP  string    `json:"remoteIp,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// ContactUsecase defines the contact form operations
type ContactUsecase interface {
	// Validate runs the field rules without side effects
	Validate(req *ContactRequest) ValidationErrors
	// Submit validates and accepts a request. A ValidationErrors error means nothing was accepted.
	Submit(ctx context.Context, req *ContactRequest, meta SubmitMeta) (*Inquiry, error)
}

// InquiryUsecase exposes accepted inquiries to staff
type InquiryUsecase interface {
	List(ctx context.Context, limit int) ([]Inquiry, error)
	// Export renders the newest inquiries as an XLSX workbook and its file name
	Export(ctx context.Context) ([]byte, string, error)
}

// InquiryRepository persists accepted inquiries
type InquiryRepository interface {
	Create(ctx context.Context, inq *Inquiry) error
	List(ctx context.Context, limit int) ([]Inquiry, error)
}

// InquiryNotifier forwards accepted inquiries (email etc.)
type InquiryNotifier interface {
	NotifyInquiry(ctx context.Context, inq *Inquiry) error
}
