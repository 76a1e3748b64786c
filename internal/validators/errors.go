package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrNameRequired      = errors.New("name is required")
	ErrCuisineRequired   = errors.New("cuisine is required")
	ErrInvalidDifficulty = errors.New("difficulty must be Easy, Medium or Hard")
	ErrInvalidServings   = errors.New("servings must be a whole number of at least 1")
	ErrInvalidPrepTime   = errors.New("prep time must be a whole number of minutes, 0 or more")
	ErrInvalidCookTime   = errors.New("cook time must be a whole number of minutes, 0 or more")
	ErrInvalidCalories   = errors.New("calories per serving must be a whole number, 0 or more")
	ErrNoIngredients     = errors.New("at least one ingredient is required")
	ErrNoInstructions    = errors.New("at least one instruction is required")
	ErrInvalidImageURL   = errors.New("image must be an absolute http(s) URL")
	ErrNoFieldsToUpdate  = errors.New("at least one field must be provided for update")

	ErrUsernameRequired = errors.New("username is required")
	ErrPasswordRequired = errors.New("password is required")
)
