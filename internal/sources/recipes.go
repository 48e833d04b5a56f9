package sources

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/onehub-dev/onehub/internal/types"
)

const mealDBBaseURL = "https://www.themealdb.com/api/json/v1/1"

// ErrNoRecipes distinguishes an empty MealDB search result from a transport
// failure; handlers turn it into a no_results response instead of the mock
// fallback.
var ErrNoRecipes = fmt.Errorf("no recipes found")

// MealDBClient resolves recipes from TheMealDB, either by the user's
// preferred cuisines or by a free-text query.
type MealDBClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewMealDBClient() *MealDBClient {
	return &MealDBClient{
		BaseURL:    mealDBBaseURL,
		HTTPClient: newHTTPClient(8 * time.Second),
	}
}

// MealDB names cuisines by "area"; option ids map onto those names.
var cuisineAreas = map[string]string{
	"italian":  "Italian",
	"chinese":  "Chinese",
	"indian":   "Indian",
	"mexican":  "Mexican",
	"french":   "French",
	"american": "American",
	"british":  "British",
	"thai":     "Thai",
	"japanese": "Japanese",
}

var meatKeywords = []string{"chicken", "beef", "pork", "lamb", "fish", "seafood", "meat", "turkey", "duck", "bacon"}

type mealDBListResponse struct {
	Meals []map[string]*string `json:"meals"`
}

func mealField(meal map[string]*string, key string) string {
	if v, ok := meal[key]; ok && v != nil {
		return *v
	}
	return ""
}

// IsVegetarian reports whether any dietary id implies a plant-based diet.
func IsVegetarian(dietary []string) bool {
	for _, diet := range dietary {
		switch strings.ToLower(diet) {
		case "vegetarian", "vegan", "plant-based":
			return true
		}
	}
	return false
}

func containsMeat(meal map[string]*string) bool {
	name := strings.ToLower(mealField(meal, "strMeal"))
	category := strings.ToLower(mealField(meal, "strCategory"))

	for _, keyword := range meatKeywords {
		if strings.Contains(name, keyword) || strings.Contains(category, keyword) {
			return true
		}
	}
	return false
}

// ByCuisines loads up to 8 recipes across the user's top 3 preferred
// cuisines, at most 3 per cuisine. Each hit is resolved through the detail
// lookup so ingredients and instructions are populated, and kept only when
// its area actually matches the requested cuisine.
func (c *MealDBClient) ByCuisines(ctx context.Context, cuisines, dietary []string) ([]types.Recipe, error) {
	vegetarian := IsVegetarian(dietary)

	if len(cuisines) > 3 {
		cuisines = cuisines[:3]
	}

	var recipes []types.Recipe
	seen := make(map[string]bool)

	for _, cuisine := range cuisines {
		if len(recipes) >= 8 {
			break
		}

		area, ok := cuisineAreas[strings.ToLower(cuisine)]
		if !ok {
			area = titleCase(cuisine)
		}

		var listing mealDBListResponse
		endpoint := fmt.Sprintf("%s/filter.php?a=%s", c.BaseURL, url.QueryEscape(area))
		if err := getJSON(ctx, c.HTTPClient, endpoint, nil, &listing); err != nil {
			continue
		}

		added := 0
		for _, meal := range listing.Meals {
			if len(recipes) >= 8 || added >= 3 {
				break
			}

			mealID := mealField(meal, "idMeal")
			if mealID == "" || seen[mealID] {
				continue
			}

			detail, err := c.lookup(ctx, mealID)
			if err != nil {
				continue
			}

			if !strings.EqualFold(mealField(detail, "strArea"), cuisine) && !strings.EqualFold(mealField(detail, "strArea"), area) {
				continue
			}
			if vegetarian && containsMeat(detail) {
				continue
			}

			recipes = append(recipes, formatRecipe(detail, dietary, vegetarian))
			seen[mealID] = true
			added++
		}
	}

	if len(recipes) == 0 {
		return nil, ErrNoRecipes
	}

	return recipes, nil
}

// Search resolves a free-text query against MealDB's search index. An empty
// result set returns ErrNoRecipes so the handler can answer with a
// first-class no_results state.
func (c *MealDBClient) Search(ctx context.Context, query string, dietary []string) ([]types.Recipe, error) {
	vegetarian := IsVegetarian(dietary)

	var listing mealDBListResponse
	endpoint := fmt.Sprintf("%s/search.php?s=%s", c.BaseURL, url.QueryEscape(query))
	if err := getJSON(ctx, c.HTTPClient, endpoint, nil, &listing); err != nil {
		return nil, err
	}

	if len(listing.Meals) == 0 {
		return nil, ErrNoRecipes
	}

	meals := listing.Meals
	if len(meals) > 6 {
		meals = meals[:6]
	}

	var recipes []types.Recipe
	seen := make(map[string]bool)

	for _, meal := range meals {
		if len(recipes) >= 8 {
			break
		}

		mealID := mealField(meal, "idMeal")
		if mealID == "" || seen[mealID] {
			continue
		}
		if vegetarian && containsMeat(meal) {
			continue
		}

		recipes = append(recipes, formatRecipe(meal, dietary, vegetarian))
		seen[mealID] = true
	}

	return recipes, nil
}

func (c *MealDBClient) lookup(ctx context.Context, mealID string) (map[string]*string, error) {
	var detail mealDBListResponse
	endpoint := fmt.Sprintf("%s/lookup.php?i=%s", c.BaseURL, url.QueryEscape(mealID))
	if err := getJSON(ctx, c.HTTPClient, endpoint, nil, &detail); err != nil {
		return nil, err
	}
	if len(detail.Meals) == 0 {
		return nil, fmt.Errorf("meal %s not found", mealID)
	}
	return detail.Meals[0], nil
}

func countMatching(ingredients []string, keywords []string) int {
	count := 0
	for _, ingredient := range ingredients {
		lower := strings.ToLower(ingredient)
		for _, keyword := range keywords {
			if strings.Contains(lower, keyword) {
				count++
				break
			}
		}
	}
	return count
}

var (
	proteinKeywords = []string{"egg", "meat", "fish", "bean", "lentil", "chicken", "tofu", "cheese"}
	carbKeywords    = []string{"flour", "rice", "pasta", "bread", "potato", "oat"}
	fatKeywords     = []string{"oil", "butter", "cream", "cheese", "nut", "avocado"}
)

// formatRecipe normalizes a MealDB meal into the API shape: numbered
// ingredient slots 1-20 joined with their measures, dietary tags from the
// category plus the user's preferences, cooking time estimated from
// instruction length, and nutrition estimated from ingredient keywords.
func formatRecipe(meal map[string]*string, dietary []string, vegetarian bool) types.Recipe {
	var ingredients []string
	for i := 1; i <= 20; i++ {
		ingredient := strings.TrimSpace(mealField(meal, fmt.Sprintf("strIngredient%d", i)))
		if ingredient == "" {
			continue
		}

		measure := strings.TrimSpace(mealField(meal, fmt.Sprintf("strMeasure%d", i)))
		if measure != "" {
			ingredients = append(ingredients, measure+" "+ingredient)
		} else {
			ingredients = append(ingredients, ingredient)
		}
	}

	category := strings.ToLower(mealField(meal, "strCategory"))

	var tags []string
	if vegetarian || strings.Contains(category, "vegetarian") {
		tags = append(tags, "Vegetarian")
	}
	if category != "" && category != "miscellaneous" {
		tags = append(tags, titleCase(category))
	}
	for _, diet := range dietary {
		duplicate := false
		for _, tag := range tags {
			if strings.EqualFold(tag, diet) {
				duplicate = true
				break
			}
		}
		if !duplicate {
			tags = append(tags, titleCase(diet))
		}
	}

	instructions := mealField(meal, "strInstructions")

	estimatedTime := 30
	switch {
	case len(instructions) > 1000:
		estimatedTime = 60
	case len(instructions) > 500:
		estimatedTime = 45
	case len(instructions) > 0 && len(instructions) < 200:
		estimatedTime = 20
	}

	proteins := countMatching(ingredients, proteinKeywords)
	carbs := countMatching(ingredients, carbKeywords)
	fats := countMatching(ingredients, fatKeywords)

	cuisine := mealField(meal, "strArea")
	if cuisine == "" {
		cuisine = "International"
	}

	if instructions == "" {
		instructions = "Instructions not available for this recipe."
	}

	capped := ingredients
	if len(capped) > 12 {
		capped = capped[:12]
	}

	return types.Recipe{
		ID:             mealField(meal, "idMeal"),
		Title:          mealField(meal, "strMeal"),
		Image:          mealField(meal, "strMealThumb"),
		ReadyInMinutes: estimatedTime,
		Servings:       4,
		Cuisine:        []string{cuisine},
		Dietary:        tags,
		Ingredients:    capped,
		Instructions:   instructions,
		SourceURL:      mealField(meal, "strSource"),
		Nutrition: types.Nutrition{
			Calories: 300 + len(ingredients)*15,
			Protein:  fmt.Sprintf("%dg", 15+proteins*8),
			Carbs:    fmt.Sprintf("%dg", 30+carbs*12),
			Fat:      fmt.Sprintf("%dg", 10+fats*4),
		},
	}
}

type recipeTemplate struct {
	title        string
	image        string
	ingredients  []string
	instructions string
	time         int
	cuisine      string
}

var vegetarianTemplates = []recipeTemplate{
	{
		title: "Vegetarian %s Curry",
		image: "https://images.unsplash.com/photo-1565299624946-b28f40a0ca4b?w=300&h=200&fit=crop",
		ingredients: []string{"2 cups mixed vegetables", "1 can coconut milk", "2 tbsp curry powder", "1 onion diced",
			"3 cloves garlic", "1 inch ginger", "2 tbsp oil", "Salt to taste", "Fresh cilantro", "Basmati rice"},
		instructions: "1. Heat oil in a large pan over medium heat. 2. Add onion, garlic, and ginger, cook until fragrant. 3. Add curry powder and cook for 1 minute. 4. Add vegetables and cook for 5 minutes. 5. Pour in coconut milk and simmer for 15 minutes. 6. Season with salt and garnish with cilantro. 7. Serve over basmati rice.",
		time:         35,
		cuisine:      "Indian",
	},
	{
		title: "Mediterranean %s Bowl",
		image: "https://images.unsplash.com/photo-1546069901-ba9599a7e63c?w=300&h=200&fit=crop",
		ingredients: []string{"1 cup quinoa", "1 cucumber diced", "2 tomatoes chopped", "1/2 red onion", "1/4 cup olives",
			"1/4 cup feta cheese", "3 tbsp olive oil", "2 tbsp lemon juice", "1 tsp oregano", "Fresh parsley"},
		instructions: "1. Cook quinoa according to package instructions and let cool. 2. Dice cucumber, tomatoes, and red onion. 3. In a large bowl, combine quinoa with vegetables. 4. Add olives and feta cheese. 5. Whisk together olive oil, lemon juice, and oregano. 6. Pour dressing over salad and toss. 7. Garnish with fresh parsley.",
		time:         25,
		cuisine:      "Mediterranean",
	},
	{
		title: "Asian %s Stir-fry",
		image: "https://images.unsplash.com/photo-1567620905732-2d1ec7ab7445?w=300&h=200&fit=crop",
		ingredients: []string{"200g tofu cubed", "2 cups mixed stir-fry vegetables", "3 tbsp soy sauce", "2 tbsp sesame oil",
			"1 tbsp rice vinegar", "2 cloves garlic minced", "1 tsp ginger grated", "2 green onions", "1 tbsp sesame seeds", "Cooked rice"},
		instructions: "1. Press tofu to remove excess water, then cube. 2. Heat sesame oil in a wok over high heat. 3. Add tofu and cook until golden, about 5 minutes. 4. Add garlic and ginger, cook for 30 seconds. 5. Add vegetables and stir-fry for 3-4 minutes. 6. Mix soy sauce and rice vinegar, pour over stir-fry. 7. Garnish with green onions and sesame seeds. 8. Serve over rice.",
		time:         20,
		cuisine:      "Asian",
	},
}

var standardTemplates = []recipeTemplate{
	{
		title: "Grilled %s with Herbs",
		image: "https://images.unsplash.com/photo-1565299624946-b28f40a0ca4b?w=300&h=200&fit=crop",
		ingredients: []string{"4 chicken breasts", "3 tbsp olive oil", "2 tbsp fresh rosemary", "3 cloves garlic minced",
			"1 lemon juiced", "Salt and pepper", "2 cups roasted vegetables", "1 lb baby potatoes"},
		instructions: "1. Marinate chicken in olive oil, rosemary, garlic, and lemon juice for 30 minutes. 2. Preheat grill to medium-high heat. 3. Season chicken with salt and pepper. 4. Grill chicken for 6-7 minutes per side until cooked through. 5. Meanwhile, roast vegetables and potatoes at 400F for 25 minutes. 6. Let chicken rest for 5 minutes before serving. 7. Serve with roasted vegetables and potatoes.",
		time:         45,
		cuisine:      "American",
	},
	{
		title: "Spicy %s Pasta",
		image: "https://images.unsplash.com/photo-1546069901-ba9599a7e63c?w=300&h=200&fit=crop",
		ingredients: []string{"400g pasta", "500g ground beef", "1 onion diced", "4 cloves garlic", "1 can crushed tomatoes",
			"2 tbsp tomato paste", "1 tsp red pepper flakes", "1 tsp oregano", "1/2 cup red wine", "Parmesan cheese", "Fresh basil"},
		instructions: "1. Cook pasta according to package directions. 2. In a large pan, brown ground beef over medium-high heat. 3. Add onion and garlic, cook until softened. 4. Add tomato paste and cook for 1 minute. 5. Add crushed tomatoes, red wine, red pepper flakes, and oregano. 6. Simmer for 20 minutes until sauce thickens. 7. Toss with cooked pasta. 8. Serve with Parmesan and fresh basil.",
		time:         35,
		cuisine:      "Italian",
	},
	{
		title: "Pan-seared %s with Sauce",
		image: "https://images.unsplash.com/photo-1567620905732-2d1ec7ab7445?w=300&h=200&fit=crop",
		ingredients: []string{"4 salmon fillets", "2 tbsp butter", "1 lemon", "2 tbsp capers", "1/4 cup white wine",
			"2 tbsp fresh dill", "1 lb asparagus", "Salt and pepper", "Olive oil"},
		instructions: "1. Season salmon fillets with salt and pepper. 2. Heat olive oil in a large skillet over medium-high heat. 3. Cook salmon skin-side up for 4 minutes, then flip and cook 3 more minutes. 4. Remove salmon and set aside. 5. Add butter, lemon juice, capers, and wine to pan. 6. Cook until sauce reduces slightly. 7. Meanwhile, roast asparagus with olive oil at 425F for 12 minutes. 8. Serve salmon with sauce and asparagus, garnished with dill.",
		time:         25,
		cuisine:      "French",
	},
}

// MockRecipes builds the fallback payload from the template set matching the
// user's diet, sampled in random order with nutrition estimated the same way
// as live recipes.
func MockRecipes(query string, dietary []string) []types.Recipe {
	vegetarian := IsVegetarian(dietary)

	templates := standardTemplates
	if vegetarian {
		templates = vegetarianTemplates
	}

	order := rand.Perm(len(templates))
	if len(order) > 3 {
		order = order[:3]
	}

	tags := dietary
	if len(tags) > 2 {
		tags = tags[:2]
	}
	if len(tags) == 0 && vegetarian {
		tags = []string{"Vegetarian"}
	}
	if tags == nil {
		tags = []string{}
	}

	var recipes []types.Recipe
	for i, idx := range order {
		template := templates[idx]

		proteins := countMatching(template.ingredients, []string{"chicken", "beef", "salmon", "tofu", "cheese", "egg"})
		carbs := countMatching(template.ingredients, []string{"pasta", "rice", "potato", "quinoa", "bread"})

		recipes = append(recipes, types.Recipe{
			ID:             fmt.Sprintf("mock_%d", i+1),
			Title:          fmt.Sprintf(template.title, titleCase(query)),
			Image:          template.image,
			ReadyInMinutes: template.time,
			Servings:       4,
			Cuisine:        []string{template.cuisine},
			Dietary:        tags,
			Ingredients:    template.ingredients,
			Instructions:   template.instructions,
			SourceURL:      "",
			Nutrition: types.Nutrition{
				Calories: 300 + proteins*50 + carbs*30,
				Protein:  fmt.Sprintf("%dg", 15+proteins*10),
				Carbs:    fmt.Sprintf("%dg", 30+carbs*15),
				Fat:      fmt.Sprintf("%dg", 12+proteins*3),
			},
		})
	}

	return recipes
}
