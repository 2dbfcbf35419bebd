package forms

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"desguace-service/internal/model"
)

func validPartForm() PartForm {
	return PartForm{
		Code:           "MOT-IBZ-15",
		Name:           "Motor 1.4",
		Category:       "engine",
		SalePrice:      "420",
		AvailableStock: "2",
		MinimumStock:   "1",
	}
}

func TestToPart(t *testing.T) {
	p, err := validPartForm().ToPart()
	require.NoError(t, err)

	assert.Equal(t, "MOT-IBZ-15", p.Code)
	assert.Equal(t, model.PartCategoryEngine, p.Category)
	assert.Equal(t, 420.0, p.SalePrice)
	assert.Equal(t, 2, p.AvailableStock)
	assert.Equal(t, 1, p.MinimumStock)
}

func TestToPartUppercasesCode(t *testing.T) {
	form := validPartForm()
	form.Code = " mot-ibz-15 "

	p, err := form.ToPart()
	require.NoError(t, err)
	assert.Equal(t, "MOT-IBZ-15", p.Code)
}

func TestToPartRejectsBadCode(t *testing.T) {
	for _, code := range []string{"", "MOT IBZ", "MOT_IBZ", "MOT/IBZ"} {
		form := validPartForm()
		form.Code = code

		_, err := form.ToPart()
		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr, "code %q", code)
		assert.Equal(t, "code", validationErr.Field)
	}
}

func TestToPartRejectsUnknownCategory(t *testing.T) {
	form := validPartForm()
	form.Category = "exhaust"

	_, err := form.ToPart()
	require.Error(t, err)
}

func TestToPartBlankFieldsTakeDefaults(t *testing.T) {
	form := validPartForm()
	form.SalePrice = ""
	form.AvailableStock = ""
	form.MinimumStock = ""

	p, err := form.ToPart()
	require.NoError(t, err)

	assert.Zero(t, p.SalePrice)
	assert.Zero(t, p.AvailableStock)
	assert.Equal(t, model.DefaultMinimumStock, p.MinimumStock)
}

func TestToPartRejectsInvalidStock(t *testing.T) {
	form := validPartForm()
	form.AvailableStock = "-1"
	_, err := form.ToPart()
	require.Error(t, err)

	form = validPartForm()
	form.MinimumStock = "0"
	_, err = form.ToPart()
	require.Error(t, err)
}

func TestPartRoundTrip(t *testing.T) {
	original, err := validPartForm().ToPart()
	require.NoError(t, err)

	roundTripped, err := FromPart(original).ToPart()
	require.NoError(t, err)
	assert.Equal(t, original, roundTripped)
}
