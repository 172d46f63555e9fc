package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var riskyVerdict = Verdict{OverallRisk: Risky}

func TestFindAlternatives_PrefersSameCategory(t *testing.T) {
	food := Food{ID: "1", Name: "Cola", Category: "beverages"}
	pool := []Food{
		{ID: "1", Name: "Cola", Category: "beverages"},
		{ID: "2", Name: "Apple", Category: "produce"},
		{ID: "3", Name: "Sparkling Water", Category: "beverages"},
		{ID: "4", Name: "Green Tea", Category: "Beverages"},
		{ID: "5", Name: "Herbal Tea", Category: "beverages"},
		{ID: "6", Name: "Lemon Water", Category: "beverages"},
	}

	alts := FindAlternatives(food, riskyVerdict, pool, 0)

	assert.Equal(t, []Alternative{
		{ID: "3", Name: "Sparkling Water", Category: "beverages"},
		{ID: "4", Name: "Green Tea", Category: "Beverages"},
		{ID: "5", Name: "Herbal Tea", Category: "beverages"},
	}, alts)
}

func TestFindAlternatives_FallsBackToAnyCategory(t *testing.T) {
	food := Food{Name: "Candy Bar", Brand: "Sweetco", Category: "snacks"}
	pool := []Food{
		{Name: "Candy Bar", Brand: "sweetco", Category: "snacks"},
		{Name: "Apple", Category: "produce"},
		{Name: "Carrots", Category: "produce"},
	}

	alts := FindAlternatives(food, riskyVerdict, pool, 5)

	assert.Len(t, alts, 2)
	assert.Equal(t, "Apple", alts[0].Name)
}

func TestFindAlternatives_SafeFoodNeedsNone(t *testing.T) {
	alts := FindAlternatives(Food{Name: "Apple"}, Verdict{OverallRisk: Safe}, []Food{{Name: "Pear"}}, 3)
	assert.Empty(t, alts)
}

func TestSuggestSubstitutes(t *testing.T) {
	kb := DefaultKnowledgeBase()

	subs := SuggestSubstitutes(kb, Food{Name: "White Bread"}, Profile{})
	assert.Equal(t, []string{"Whole-grain bread", "Ezekiel bread", "Cauliflower bread"}, subs)

	subs = SuggestSubstitutes(kb, Food{Name: "Spaghetti Pasta"}, Profile{Diseases: names("Type 2 Diabetes")})
	assert.Equal(t, []string{"Zucchini noodles", "Whole-wheat pasta", "Chickpea pasta"}, subs)

	subs = SuggestSubstitutes(kb, Food{Name: "Potato Chips", Ingredients: []string{"potatoes", "salt"}}, Profile{Diseases: names("hypertension")})
	assert.Contains(t, subs, "Roasted chickpeas")
	assert.Contains(t, subs, "Salt-free seasoning blend")
}

func TestSuggestSubstitutes_SkipsAllergens(t *testing.T) {
	subs := SuggestSubstitutes(DefaultKnowledgeBase(), Food{Name: "Skim Milk"}, Profile{Allergies: names("nuts", "soy")})

	assert.Equal(t, []string{"Oat milk"}, subs)
}
