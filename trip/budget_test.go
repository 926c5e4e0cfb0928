package trip

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBudget_Empty(t *testing.T) {
	assert.True(t, Budget(TripData{}).Empty())
}

func TestBudget_Rows(t *testing.T) {
	data := TripData{
		BasePackage: &BasePackage{Description: "Aéreo + Hotel", Value: 9800},
		Tours: []Tour{
			{Name: "City tour", PricePerPerson: 180, Included: true},
			{Name: "Machu Picchu", PricePerPerson: 950},
		},
	}

	b := Budget(data)
	assert.False(t, b.Empty())
	assert.Equal(t, "Aéreo + Hotel", b.Base.Description)
	assert.Len(t, b.Options, 2)
}

func TestBudget_ToursOnly(t *testing.T) {
	b := Budget(TripData{Tours: []Tour{{Name: "Passeio"}}})
	assert.False(t, b.Empty())
	assert.Nil(t, b.Base)
}
