package checkout

import (
	"testing"

	"github.com/SergeyBogomolovv/knet-checkout/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWizard_Forward(t *testing.T) {
	d := validDraft()
	w := NewWizard(&d)

	assert.Equal(t, StepInfo, w.Step())
	require.NoError(t, w.Next())
	assert.Equal(t, StepAddress, w.Step())
	require.NoError(t, w.Next())
	assert.Equal(t, StepPayment, w.Step())
	assert.ErrorIs(t, w.Next(), ErrNoNextStep)
}

func TestWizard_InfoGuard(t *testing.T) {
	d := validDraft()
	d.Customer.Email = ""
	w := NewWizard(&d)

	assert.Error(t, w.Next())
	assert.Equal(t, StepInfo, w.Step())
}

func TestWizard_MissingBlockBlocksNext(t *testing.T) {
	d := validDraft()
	d.ShippingAddress.Block = ""
	w := NewWizard(&d)
	require.NoError(t, w.Next())

	err := w.Next()
	var ve *entities.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, []string{"shipping.block"}, ve.Fields)
	assert.Equal(t, StepAddress, w.Step())

	d.ShippingAddress.Block = "4"
	require.NoError(t, w.Next())
	assert.Equal(t, StepPayment, w.Step())
}

func TestWizard_Previous(t *testing.T) {
	d := validDraft()
	w := NewWizard(&d)

	assert.ErrorIs(t, w.Previous(), ErrNoPreviousStep)
	require.NoError(t, w.Next())
	require.NoError(t, w.Next())

	require.NoError(t, w.Previous())
	assert.Equal(t, StepAddress, w.Step())
	require.NoError(t, w.Previous())
	assert.Equal(t, StepInfo, w.Step())
}

func TestWizard_Submit(t *testing.T) {
	d := validDraft()
	w := NewWizard(&d)

	assert.ErrorIs(t, w.BeginSubmit(), ErrNotAtPayment)

	require.NoError(t, w.Next())
	require.NoError(t, w.Next())
	require.NoError(t, w.BeginSubmit())
	assert.True(t, w.Submitting())
	assert.ErrorIs(t, w.BeginSubmit(), entities.ErrSubmitInProgress)

	w.EndSubmit()
	assert.False(t, w.Submitting())
	assert.NoError(t, w.BeginSubmit())
}

func TestParseStep(t *testing.T) {
	step, err := ParseStep("address")
	require.NoError(t, err)
	assert.Equal(t, StepAddress, step)

	_, err = ParseStep("shipping")
	assert.ErrorIs(t, err, ErrUnknownStep)
}
