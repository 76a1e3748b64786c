package validators

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-recipe-book/models"
)

// Recipe field names accepted by [RecipeValidator.Validate].
const (
	FieldName               = "name"
	FieldCuisine            = "cuisine"
	FieldDifficulty         = "difficulty"
	FieldPrepTimeMinutes    = "prepTimeMinutes"
	FieldCookTimeMinutes    = "cookTimeMinutes"
	FieldServings           = "servings"
	FieldCaloriesPerServing = "caloriesPerServing"
	FieldImage              = "image"
	FieldIngredients        = "ingredients"
	FieldInstructions       = "instructions"

	FieldUsername = "username"
	FieldPassword = "password"
)

var recipeFields = []string{
	FieldName,
	FieldCuisine,
	FieldDifficulty,
	FieldPrepTimeMinutes,
	FieldCookTimeMinutes,
	FieldServings,
	FieldCaloriesPerServing,
	FieldImage,
	FieldIngredients,
	FieldInstructions,
}

// RecipeValidator checks recipe drafts, create bodies, partial updates and
// login requests. The first violated rule is returned.
type RecipeValidator struct{}

func NewRecipeValidator() Validator {
	return &RecipeValidator{}
}

func (v *RecipeValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RecipeDraft:
		return v.validateDraft(value, fields...)
	case *models.RecipeDraft:
		return v.validateDraft(*value, fields...)

	case models.RecipeFields:
		return v.validateFields(value, fields...)
	case *models.RecipeFields:
		return v.validateFields(*value, fields...)

	case models.RecipeUpdate:
		return v.validateUpdate(value)
	case *models.RecipeUpdate:
		return v.validateUpdate(*value)

	case models.LoginRequest:
		return v.validateLogin(value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateDraft checks the raw form text: numbers must parse before the
// parsed values are checked like a create body.
func (v *RecipeValidator) validateDraft(d models.RecipeDraft, fields ...string) error {
	if len(fields) == 0 {
		fields = recipeFields
	}

	numbers := map[string]struct {
		raw string
		err error
	}{
		FieldPrepTimeMinutes:    {d.PrepTimeMinutes, ErrInvalidPrepTime},
		FieldCookTimeMinutes:    {d.CookTimeMinutes, ErrInvalidCookTime},
		FieldServings:           {d.Servings, ErrInvalidServings},
		FieldCaloriesPerServing: {d.CaloriesPerServing, ErrInvalidCalories},
	}
	for _, f := range fields {
		n, ok := numbers[f]
		if !ok {
			continue
		}
		if _, err := strconv.Atoi(strings.TrimSpace(n.raw)); err != nil {
			return n.err
		}
	}

	return v.validateFields(d.ToFields(), fields...)
}

func (v *RecipeValidator) validateFields(r models.RecipeFields, fields ...string) error {
	if len(fields) == 0 {
		fields = recipeFields
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldName:
			err = checkName(r.Name)
		case FieldCuisine:
			err = checkCuisine(r.Cuisine)
		case FieldDifficulty:
			err = checkDifficulty(r.Difficulty)
		case FieldPrepTimeMinutes:
			err = checkNonNegative(r.PrepTimeMinutes, ErrInvalidPrepTime)
		case FieldCookTimeMinutes:
			err = checkNonNegative(r.CookTimeMinutes, ErrInvalidCookTime)
		case FieldServings:
			err = checkServings(r.Servings)
		case FieldCaloriesPerServing:
			err = checkNonNegative(r.CaloriesPerServing, ErrInvalidCalories)
		case FieldImage:
			err = checkImage(r.Image)
		case FieldIngredients:
			err = checkNotEmpty(r.Ingredients, ErrNoIngredients)
		case FieldInstructions:
			err = checkNotEmpty(r.Instructions, ErrNoInstructions)
		default:
			err = ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// validateUpdate checks only the fields present in the update.
func (v *RecipeValidator) validateUpdate(u models.RecipeUpdate) error {
	checks := make([]error, 0, len(recipeFields))
	if u.Name != nil {
		checks = append(checks, checkName(*u.Name))
	}
	if u.Cuisine != nil {
		checks = append(checks, checkCuisine(*u.Cuisine))
	}
	if u.Difficulty != nil {
		checks = append(checks, checkDifficulty(*u.Difficulty))
	}
	if u.PrepTimeMinutes != nil {
		checks = append(checks, checkNonNegative(*u.PrepTimeMinutes, ErrInvalidPrepTime))
	}
	if u.CookTimeMinutes != nil {
		checks = append(checks, checkNonNegative(*u.CookTimeMinutes, ErrInvalidCookTime))
	}
	if u.Servings != nil {
		checks = append(checks, checkServings(*u.Servings))
	}
	if u.CaloriesPerServing != nil {
		checks = append(checks, checkNonNegative(*u.CaloriesPerServing, ErrInvalidCalories))
	}
	if u.Image != nil {
		checks = append(checks, checkImage(*u.Image))
	}
	// tags have no rules but still count as a provided field
	if u.Tags != nil {
		checks = append(checks, nil)
	}
	if u.Ingredients != nil {
		checks = append(checks, checkNotEmpty(*u.Ingredients, ErrNoIngredients))
	}
	if u.Instructions != nil {
		checks = append(checks, checkNotEmpty(*u.Instructions, ErrNoInstructions))
	}

	if len(checks) == 0 {
		return ErrNoFieldsToUpdate
	}
	for _, err := range checks {
		if err != nil {
			return err
		}
	}
	return nil
}

func (v *RecipeValidator) validateLogin(r models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if strings.TrimSpace(r.Username) == "" {
				return ErrUsernameRequired
			}
		case FieldPassword:
			if r.Password == "" {
				return ErrPasswordRequired
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func checkName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameRequired
	}
	return nil
}

func checkCuisine(cuisine string) error {
	if strings.TrimSpace(cuisine) == "" {
		return ErrCuisineRequired
	}
	return nil
}

func checkDifficulty(d models.Difficulty) error {
	if !d.IsValid() {
		return ErrInvalidDifficulty
	}
	return nil
}

func checkServings(n int) error {
	if n < 1 {
		return ErrInvalidServings
	}
	return nil
}

func checkNonNegative(n int, err error) error {
	if n < 0 {
		return err
	}
	return nil
}

func checkNotEmpty(items []string, err error) error {
	for _, item := range items {
		if strings.TrimSpace(item) != "" {
			return nil
		}
	}
	return err
}

// checkImage accepts an empty image; a set image must be an absolute http or
// https URL with a host.
func checkImage(image string) error {
	image = strings.TrimSpace(image)
	if image == "" {
		return nil
	}

	u, err := url.Parse(image)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ErrInvalidImageURL
	}
	return nil
}
