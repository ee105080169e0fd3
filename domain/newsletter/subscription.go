// Package newsletter holds the newsletter signup types and the rules a
// signup must satisfy before it is forwarded to the subscriber service.
package newsletter

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"regexp"

	"portfolio-backend/pkg/utils"
)

// EmailPattern is the basic local@domain.tld shape accepted for signups.
var EmailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const emailTag = "subscriber_email"

var (
	ErrMissingFields = errors.New("missing required fields: email and firstName")
	ErrInvalidEmail  = errors.New("invalid email format")
	ErrMalformedBody = errors.New("malformed subscription body")
)

func init() {
	if err := utils.RegisterPattern(emailTag, EmailPattern); err != nil {
		panic(err)
	}
}

// SubscriptionRequest is the signup payload posted by the site's form.
type SubscriptionRequest struct {
	Email     string `json:"email" validate:"required,subscriber_email"`
	FirstName string `json:"firstName" validate:"required"`

	// emailNotString marks an email given as a JSON number, object or
	// array. Email then holds its raw text.
	emailNotString bool
}

// DecodeSubscriptionRequest reads exactly one JSON object from r. Keys are
// matched case-sensitively. Absent or null fields decode as empty; a
// non-string email decodes as an invalid address and a non-string
// firstName as missing. Anything after the object is ErrMalformedBody.
func DecodeSubscriptionRequest(r io.Reader) (SubscriptionRequest, error) {
	dec := json.NewDecoder(r)

	var fields map[string]json.RawMessage
	if err := dec.Decode(&fields); err != nil {
		return SubscriptionRequest{}, fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}
	if fields == nil {
		return SubscriptionRequest{}, fmt.Errorf("%w: body is null", ErrMalformedBody)
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return SubscriptionRequest{}, fmt.Errorf("%w: unexpected data after object", ErrMalformedBody)
	}

	var req SubscriptionRequest
	email, ok := stringField(fields, "email")
	if ok {
		req.Email = email
	} else {
		req.Email = string(bytes.TrimSpace(fields["email"]))
		req.emailNotString = true
	}
	req.FirstName, _ = stringField(fields, "firstName")
	return req, nil
}

// stringField returns the string stored under key. An absent or null value
// is reported as "" with ok true; any other non-string value has ok false.
func stringField(fields map[string]json.RawMessage, key string) (string, bool) {
	raw, present := fields[key]
	if !present || string(bytes.TrimSpace(raw)) == "null" {
		return "", true
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// Validate reports ErrMissingFields when either field is empty and
// ErrInvalidEmail when the email does not match EmailPattern.
func (r SubscriptionRequest) Validate() error {
	err := utils.ValidateStruct(r)
	if err == nil {
		if r.emailNotString {
			return fmt.Errorf("%w: email must be a string", ErrInvalidEmail)
		}
		return nil
	}

	failed := utils.FailedTags(err)
	if failed == nil {
		return err
	}
	detail := utils.FormatValidationError(err)
	for _, tag := range failed {
		if tag == "required" {
			return fmt.Errorf("%w: %s", ErrMissingFields, detail)
		}
	}
	if failed["email"] == emailTag {
		return fmt.Errorf("%w: %s", ErrInvalidEmail, detail)
	}
	return err
}

// Subscriber returns the upstream representation of the request.
func (r SubscriptionRequest) Subscriber() Subscriber {
	return Subscriber{
		EmailAddress: r.Email,
		FirstName:    r.FirstName,
	}
}

// Subscriber is the body sent to the subscriber service.
type Subscriber struct {
	EmailAddress string `json:"email_address"`
	FirstName    string `json:"first_name"`
}

// UpstreamResponse is the subscriber service's reply, relayed unchanged.
type UpstreamResponse struct {
	StatusCode int
	Body       json.RawMessage
}

// ErrMissingCredential is returned by a gateway that has no API key to
// present to the subscriber service.
var ErrMissingCredential = errors.New("subscriber service credential is not configured")
