package orderapi

import (
	"fmt"
	"strings"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func ValidateOrderRequest(req *CreateOrderRequest) error {
	if err := validateCustomerName(req.CustomerName); err != nil {
		return err
	}

	if err := validateAddress(req.Address); err != nil {
		return err
	}

	if err := validateFoodType(req.FoodType); err != nil {
		return err
	}

	if err := validateIngredients(req.Ingredients); err != nil {
		return err
	}

	return validateDecorators(req.Decorators)
}

func validateCustomerName(name string) error {
	if name == "" {
		return ValidationError{
			Field:   "customer_name",
			Message: "customer name is required",
		}
	}

	if len(name) > 100 {
		return ValidationError{
			Field:   "customer_name",
			Message: "customer name must be less than 100 characters",
		}
	}
	return nil
}

func validateAddress(address string) error {
	if address == "" {
		return ValidationError{
			Field:   "address",
			Message: "delivery address is required",
		}
	}
	return nil
}

func validateFoodType(foodType string) error {
	if foodType == "" {
		return ValidationError{
			Field:   "food_type",
			Message: "food type is required",
		}
	}

	allowedTypes := map[string]bool{
		"pizza":  true,
		"burger": true,
		"salad":  true,
	}

	if !allowedTypes[strings.ToLower(foodType)] {
		return ValidationError{
			Field:   "food_type",
			Message: "invalid food type",
		}
	}
	return nil
}

func validateIngredients(ingredients []IngredientSpec) error {
	if len(ingredients) > 20 {
		return ValidationError{
			Field:   "ingredients",
			Message: "a maximum of 20 ingredients is allowed",
		}
	}

	for i, ing := range ingredients {
		if ing.Name == "" {
			return ValidationError{
				Field:   fmt.Sprintf("ingredients[%d].name", i),
				Message: "ingredient name is required",
			}
		}
		if ing.Price < 0 {
			return ValidationError{
				Field:   fmt.Sprintf("ingredients[%d].price", i),
				Message: "ingredient price must not be negative",
			}
		}
		if ing.Price > 99.99 {
			return ValidationError{
				Field:   fmt.Sprintf("ingredients[%d].price", i),
				Message: "ingredient price must be less than or equal to 99.99",
			}
		}
	}
	return nil
}

func validateDecorators(decorators []DecoratorSpec) error {
	for i, dec := range decorators {
		switch dec.Kind {
		case "discount", "express", "loyalty":
		case "occasion":
			if strings.TrimSpace(dec.Message) == "" {
				return ValidationError{
					Field:   fmt.Sprintf("decorators[%d].message", i),
					Message: "occasion message is required",
				}
			}
		default:
			return ValidationError{
				Field:   fmt.Sprintf("decorators[%d].kind", i),
				Message: "invalid decorator kind",
			}
		}
	}
	return nil
}
