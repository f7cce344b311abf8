package service

import "errors"

var (
	ErrFoodNotFound    = errors.New("food not found")
	ErrAddonNotFound   = errors.New("add-on not found")
	ErrRecipeNotFound  = errors.New("recipe not found")
	ErrMealNotFound    = errors.New("meal not found")
	ErrInvalidQuantity = errors.New("quantity must be between 0.5 and 100 in steps of 0.5")
	ErrInvalidMode     = errors.New("search mode must be ranked or browse")
	ErrInvalidToken    = errors.New("invalid token")
)
