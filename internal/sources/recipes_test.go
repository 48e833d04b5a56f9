package sources

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func sampleMeal(id, name, area, category, instructions string) map[string]*string {
	meal := map[string]*string{
		"idMeal":          strPtr(id),
		"strMeal":         strPtr(name),
		"strMealThumb":    strPtr("https://example.com/thumb.jpg"),
		"strArea":         strPtr(area),
		"strCategory":     strPtr(category),
		"strInstructions": strPtr(instructions),
		"strSource":       strPtr("https://example.com/recipe"),
		"strIngredient1":  strPtr("Spaghetti"),
		"strMeasure1":     strPtr("400g"),
		"strIngredient2":  strPtr("Olive oil"),
		"strMeasure2":     strPtr("2 tbsp"),
		"strIngredient3":  strPtr("Garlic"),
		"strMeasure3":     strPtr(" "),
	}
	return meal
}

func TestFormatRecipeIngredients(t *testing.T) {
	recipe := formatRecipe(sampleMeal("1", "Aglio e Olio", "Italian", "Pasta", "Boil pasta."), nil, false)

	require.Len(t, recipe.Ingredients, 3)
	assert.Equal(t, "400g Spaghetti", recipe.Ingredients[0])
	assert.Equal(t, "2 tbsp Olive oil", recipe.Ingredients[1])
	// Blank measure keeps the bare ingredient.
	assert.Equal(t, "Garlic", recipe.Ingredients[2])

	assert.Equal(t, []string{"Italian"}, recipe.Cuisine)
	assert.Equal(t, 4, recipe.Servings)
	assert.Contains(t, recipe.Dietary, "Pasta")
}

func TestFormatRecipeTimeEstimate(t *testing.T) {
	cases := []struct {
		instructions string
		want         int
	}{
		{strings.Repeat("x", 1200), 60},
		{strings.Repeat("x", 700), 45},
		{strings.Repeat("x", 300), 30},
		{strings.Repeat("x", 100), 20},
		{"", 30},
	}

	for _, tc := range cases {
		recipe := formatRecipe(sampleMeal("1", "Dish", "Italian", "Pasta", tc.instructions), nil, false)
		assert.Equal(t, tc.want, recipe.ReadyInMinutes, "instructions length %d", len(tc.instructions))
	}
}

func TestFormatRecipeNutritionFromIngredients(t *testing.T) {
	meal := sampleMeal("1", "Dish", "Italian", "Pasta", "Cook.")
	recipe := formatRecipe(meal, nil, false)

	// 3 ingredients, one fat match (olive oil), no protein/carb matches.
	assert.Equal(t, 300+3*15, recipe.Nutrition.Calories)
	assert.Equal(t, "15g", recipe.Nutrition.Protein)
	assert.Equal(t, "30g", recipe.Nutrition.Carbs)
	assert.Equal(t, "14g", recipe.Nutrition.Fat)
}

func TestFormatRecipeCapsIngredients(t *testing.T) {
	meal := sampleMeal("1", "Dish", "Italian", "Pasta", "Cook.")
	for i := 4; i <= 20; i++ {
		meal["strIngredient"+strconv.Itoa(i)] = strPtr("Ingredient")
		meal["strMeasure"+strconv.Itoa(i)] = strPtr("1")
	}

	recipe := formatRecipe(meal, nil, false)
	assert.Len(t, recipe.Ingredients, 12)
	// Calories still count every slot.
	assert.Equal(t, 300+20*15, recipe.Nutrition.Calories)
}

func TestFormatRecipeDietaryTags(t *testing.T) {
	recipe := formatRecipe(sampleMeal("1", "Salad", "Greek", "Vegetarian", "Mix."), []string{"vegan"}, true)

	assert.Contains(t, recipe.Dietary, "Vegetarian")
	assert.Contains(t, recipe.Dietary, "Vegan")
}

func TestSearchNoResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"meals": nil})
	}))
	defer server.Close()

	client := NewMealDBClient()
	client.BaseURL = server.URL

	_, err := client.Search(context.Background(), "zzz", nil)
	assert.ErrorIs(t, err, ErrNoRecipes)
}

func TestSearchFiltersMeatForVegetarians(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(mealDBListResponse{Meals: []map[string]*string{
			sampleMeal("1", "Chicken Parmigiana", "Italian", "Chicken", "Fry."),
			sampleMeal("2", "Margherita Pizza", "Italian", "Vegetarian", "Bake."),
		}})
	}))
	defer server.Close()

	client := NewMealDBClient()
	client.BaseURL = server.URL

	recipes, err := client.Search(context.Background(), "italian", []string{"vegetarian"})
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, "Margherita Pizza", recipes[0].Title)
}

func TestByCuisinesLimitsAndAreaCheck(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasPrefix(r.URL.Path, "/filter.php"):
			json.NewEncoder(w).Encode(mealDBListResponse{Meals: []map[string]*string{
				{"idMeal": strPtr("10")},
				{"idMeal": strPtr("11")},
				{"idMeal": strPtr("12")},
				{"idMeal": strPtr("13")},
			}})
		case strings.HasPrefix(r.URL.Path, "/lookup.php"):
			id := r.URL.Query().Get("i")
			area := "Italian"
			if id == "12" {
				// Listing noise from another area is dropped.
				area = "French"
			}
			json.NewEncoder(w).Encode(mealDBListResponse{Meals: []map[string]*string{
				sampleMeal(id, "Dish "+id, area, "Pasta", "Cook."),
			}})
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	client := NewMealDBClient()
	client.BaseURL = server.URL

	recipes, err := client.ByCuisines(context.Background(), []string{"italian"}, nil)
	require.NoError(t, err)
	require.Len(t, recipes, 3)
	for _, recipe := range recipes {
		assert.Equal(t, []string{"Italian"}, recipe.Cuisine)
	}
}

func TestByCuisinesEmptyIsErrNoRecipes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"meals": nil})
	}))
	defer server.Close()

	client := NewMealDBClient()
	client.BaseURL = server.URL

	_, err := client.ByCuisines(context.Background(), []string{"italian"}, nil)
	assert.ErrorIs(t, err, ErrNoRecipes)
}

func TestMockRecipesRespectDiet(t *testing.T) {
	recipes := MockRecipes("pasta", []string{"vegan"})
	require.NotEmpty(t, recipes)
	for _, recipe := range recipes {
		for _, ingredient := range recipe.Ingredients {
			lower := strings.ToLower(ingredient)
			assert.NotContains(t, lower, "chicken")
			assert.NotContains(t, lower, "beef")
			assert.NotContains(t, lower, "salmon")
		}
	}
}
