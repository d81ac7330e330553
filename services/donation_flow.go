package services

import (
	"errors"
	"fmt"
	"strings"
)

// DonationStep is the explicit state tag of the donation capture flow. The
// numbering matches the donor-facing wizard screens; TipAmount is the one
// optional branch before Success.
type DonationStep int

const (
	StepBankDetails DonationStep = 1
	StepProofUpload DonationStep = 2
	StepTipPrompt   DonationStep = 3
	StepTipAmount   DonationStep = 4
	StepSuccess     DonationStep = 7
)

func (s DonationStep) String() string {
	switch s {
	case StepBankDetails:
		return "bank_details"
	case StepProofUpload:
		return "proof_upload"
	case StepTipPrompt:
		return "tip_prompt"
	case StepTipAmount:
		return "tip_amount"
	case StepSuccess:
		return "success"
	}
	return fmt.Sprintf("unknown(%d)", int(s))
}

type DonationEvent int

const (
	EventConfirmBankDetails DonationEvent = iota
	EventProofSubmitted
	EventTipAccepted
	EventTipSkipped
	EventTipSettled
)

var ErrInvalidTransition = errors.New("invalid donation step transition")

// Transition is the pure step function of the capture flow. Side effects
// (upload, insert, gateway charge) happen between the event firing and the
// transition being applied; a failed side effect means the event is never
// fired and the donor stays on the current step, resubmittable.
func Transition(step DonationStep, event DonationEvent) (DonationStep, error) {
	switch {
	case step == StepBankDetails && event == EventConfirmBankDetails:
		return StepProofUpload, nil
	case step == StepProofUpload && event == EventProofSubmitted:
		return StepTipPrompt, nil
	case step == StepTipPrompt && event == EventTipAccepted:
		return StepTipAmount, nil
	case step == StepTipPrompt && event == EventTipSkipped:
		return StepSuccess, nil
	case step == StepTipAmount && event == EventTipSettled:
		return StepSuccess, nil
	}
	return step, fmt.Errorf("%w: %s on step %s", ErrInvalidTransition, eventName(event), step)
}

func eventName(event DonationEvent) string {
	switch event {
	case EventConfirmBankDetails:
		return "confirm_bank_details"
	case EventProofSubmitted:
		return "proof_submitted"
	case EventTipAccepted:
		return "tip_accepted"
	case EventTipSkipped:
		return "tip_skipped"
	case EventTipSettled:
		return "tip_settled"
	}
	return fmt.Sprintf("unknown(%d)", int(event))
}

// DonorDetails is the identity block of the proof-upload form.
type DonorDetails struct {
	FirstName string
	LastName  string
	Email     string
	Anonymous bool
}

// GuestIdentity resolves the stored guest name and email. Anonymous donors
// always become "Anonymous" with no email, no matter what was typed;
// otherwise first name, last name and email are all required.
func (d DonorDetails) GuestIdentity() (string, *string, error) {
	if d.Anonymous {
		return "Anonymous", nil, nil
	}

	first := strings.TrimSpace(d.FirstName)
	last := strings.TrimSpace(d.LastName)
	email := strings.TrimSpace(d.Email)

	if first == "" {
		return "", nil, &ValidationError{Field: "first_name", Reason: "required for non-anonymous donations"}
	}
	if last == "" {
		return "", nil, &ValidationError{Field: "last_name", Reason: "required for non-anonymous donations"}
	}
	if email == "" {
		return "", nil, &ValidationError{Field: "email", Reason: "required for non-anonymous donations"}
	}

	name := strings.TrimSpace(first + " " + last)
	return name, &email, nil
}
