package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransitionHappyPathWithTip(t *testing.T) {
	step := StepBankDetails

	step, err := Transition(step, EventConfirmBankDetails)
	assert.NoError(t, err)
	assert.Equal(t, StepProofUpload, step)

	step, err = Transition(step, EventProofSubmitted)
	assert.NoError(t, err)
	assert.Equal(t, StepTipPrompt, step)

	step, err = Transition(step, EventTipAccepted)
	assert.NoError(t, err)
	assert.Equal(t, StepTipAmount, step)

	step, err = Transition(step, EventTipSettled)
	assert.NoError(t, err)
	assert.Equal(t, StepSuccess, step)
}

func TestTransitionSkipTipGoesStraightToSuccess(t *testing.T) {
	step, err := Transition(StepTipPrompt, EventTipSkipped)
	assert.NoError(t, err)
	assert.Equal(t, StepSuccess, step)
}

func TestTransitionRejectsInvalidEvents(t *testing.T) {
	cases := []struct {
		step  DonationStep
		event DonationEvent
	}{
		{StepBankDetails, EventProofSubmitted},
		{StepBankDetails, EventTipSkipped},
		{StepProofUpload, EventTipAccepted},
		{StepTipAmount, EventTipSkipped},
		{StepSuccess, EventConfirmBankDetails},
	}

	for _, tc := range cases {
		next, err := Transition(tc.step, tc.event)
		assert.ErrorIs(t, err, ErrInvalidTransition)
		assert.Equal(t, tc.step, next, "a rejected event must leave the step unchanged")
	}
}

func TestGuestIdentityAnonymousOverridesEnteredDetails(t *testing.T) {
	donor := DonorDetails{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@x.com",
		Anonymous: true,
	}

	name, email, err := donor.GuestIdentity()
	assert.NoError(t, err)
	assert.Equal(t, "Anonymous", name)
	assert.Nil(t, email)
}

func TestGuestIdentityConcatenatesTrimmedNames(t *testing.T) {
	donor := DonorDetails{
		FirstName: "  Jane ",
		LastName:  " Doe  ",
		Email:     " jane@x.com ",
	}

	name, email, err := donor.GuestIdentity()
	assert.NoError(t, err)
	assert.Equal(t, "Jane Doe", name)
	if assert.NotNil(t, email) {
		assert.Equal(t, "jane@x.com", *email)
	}
}

func TestGuestIdentityRequiresAllFieldsWhenNotAnonymous(t *testing.T) {
	cases := []DonorDetails{
		{LastName: "Doe", Email: "jane@x.com"},
		{FirstName: "Jane", Email: "jane@x.com"},
		{FirstName: "Jane", LastName: "Doe"},
		{FirstName: "   ", LastName: "Doe", Email: "jane@x.com"},
	}

	for _, donor := range cases {
		_, _, err := donor.GuestIdentity()
		var validationErr *ValidationError
		assert.ErrorAs(t, err, &validationErr)
	}
}
