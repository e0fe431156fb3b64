package outfit_models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyDescription(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"Navy Blazer with tailored trousers", CategoryProfessional},
		{"Oversized hoodie and cargo pants", CategoryStreetwear},
		{"Yoga legging set for the gym", CategoryAthleisure},
		{"Flowy boho maxi dress", CategoryBohemian},
		{"Retro 90s denim jacket", CategoryVintage},
		{"Monochrome essential tee", CategoryMinimalist},
		{"Sequin cocktail gown", CategoryGlamorous},
		{"Just a plain everyday look", DefaultCategory},
		{"", DefaultCategory},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, ClassifyDescription(tc.text), "文本: %q", tc.text)
	}
}

func TestCanonicalCategory(t *testing.T) {
	assert.Equal(t, CategoryCasual, CanonicalCategory("casual"))
	assert.Equal(t, CategoryStreetwear, CanonicalCategory("STREETWEAR"))
	assert.Equal(t, CategoryVintage, CanonicalCategory("  vintage  "))
	assert.Equal(t, "", CanonicalCategory("couture"))
	assert.Equal(t, "", CanonicalCategory(""))
}

func TestApplySearchDefaults_FillsMissingFields(t *testing.T) {
	o := OutfitRecord{Description: "oversized hoodie street look"}
	ApplySearchDefaults(&o)

	assert.Equal(t, CategoryStreetwear, o.Category)
	assert.Equal(t, DefaultColors(), o.Colors)
	assert.NotNil(t, o.Patterns)
	assert.NotNil(t, o.Occasions)
	assert.Equal(t, "Untitled Look", o.Title)
}

func TestApplySearchDefaults_KeepsValidCategory(t *testing.T) {
	o := OutfitRecord{
		Title:    "Evening dress",
		Category: "glamorous",
		Colors:   []string{"red"},
	}
	ApplySearchDefaults(&o)

	assert.Equal(t, CategoryGlamorous, o.Category)
	assert.Equal(t, []string{"red"}, o.Colors)
	assert.Equal(t, "Evening dress", o.Title)
}
