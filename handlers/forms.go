package handlers

import (
	"errors"
	"net/mail"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
)

const (
	reviewNameMaxLen    = 100
	reviewContentMaxLen = 300
	bookingMinAttendees = 1
	bookingMaxAttendees = 20
)

// ReviewForm validates a public review submission. Errors maps field name to
// user-facing messages, in the order the checks ran.
type ReviewForm struct {
	Name    string
	Content string
	Errors  map[string][]string
}

func NewReviewForm(c *gin.Context) *ReviewForm {
	return &ReviewForm{
		Name:    strings.TrimSpace(c.PostForm("name")),
		Content: strings.TrimSpace(c.PostForm("content")),
		Errors:  map[string][]string{},
	}
}

func EmptyReviewForm() *ReviewForm {
	return &ReviewForm{Errors: map[string][]string{}}
}

func (f *ReviewForm) addError(field, msg string) {
	f.Errors[field] = append(f.Errors[field], msg)
}

func (f *ReviewForm) Valid() bool {
	f.Errors = map[string][]string{}

	if utf8.RuneCountInString(f.Name) > reviewNameMaxLen {
		f.addError("name", "Name is too long.")
	}

	switch {
	case f.Content == "":
		f.addError("content", "This field is required.")
	case utf8.RuneCountInString(f.Content) > reviewContentMaxLen:
		f.addError("content", "Too long — please keep it under 300 characters.")
	}

	// second pass over the already-validated value, kept as a deliberate
	// extra guard on the 300 character cap
	if len(f.Errors["content"]) == 0 {
		if err := f.cleanContent(); err != nil {
			f.addError("content", err.Error())
		}
	}

	return len(f.Errors) == 0
}

func (f *ReviewForm) cleanContent() error {
	if utf8.RuneCountInString(f.Content) > reviewContentMaxLen {
		return errors.New("Review cannot exceed 300 characters.")
	}
	return nil
}

// letters, spaces, hyphens and apostrophes
var fullNamePattern = regexp.MustCompile(`^[A-Za-z\s'\-]+$`)

// BookingForm validates a booking request for a tour.
type BookingForm struct {
	FullName     string
	Email        string
	AttendeesRaw string
	Attendees    int
	Errors       map[string][]string
}

func NewBookingForm(c *gin.Context) *BookingForm {
	return &BookingForm{
		FullName:     strings.TrimSpace(c.PostForm("full_name")),
		Email:        strings.TrimSpace(c.PostForm("email")),
		AttendeesRaw: strings.TrimSpace(c.PostForm("attendees")),
		Errors:       map[string][]string{},
	}
}

func EmptyBookingForm() *BookingForm {
	return &BookingForm{Errors: map[string][]string{}}
}

func (f *BookingForm) addError(field, msg string) {
	f.Errors[field] = append(f.Errors[field], msg)
}

func (f *BookingForm) Valid() bool {
	f.Errors = map[string][]string{}

	switch {
	case f.FullName == "":
		f.addError("full_name", "Please enter your full name.")
	case !fullNamePattern.MatchString(f.FullName):
		f.addError("full_name", "Enter a valid name (letters, spaces, hyphens and apostrophes only).")
	}

	if f.Email == "" {
		f.addError("email", "Please provide an email address.")
	} else if _, err := mail.ParseAddress(f.Email); err != nil {
		f.addError("email", "Enter a valid email address.")
	}

	if f.AttendeesRaw == "" {
		f.addError("attendees", "This field is required.")
	} else if n, err := strconv.Atoi(f.AttendeesRaw); err != nil {
		f.addError("attendees", "Enter a whole number.")
	} else {
		f.Attendees = n
		if n < bookingMinAttendees {
			f.addError("attendees", "At least one guest is required.")
		} else if n > bookingMaxAttendees {
			f.addError("attendees", "Please contact us for groups larger than 20.")
		}
	}

	return len(f.Errors) == 0
}
