package validatex_test

import (
	"errors"
	"fmt"

	"github.com/Conversia-AI/craftable-convx/validatex"
)

func ExampleValidate() {
	type Address struct {
		City    string `validatex:"required"`
		ZipCode string `validatex:"required,regex=^\\d{5}$"`
	}
	type Customer struct {
		Name    string `validatex:"required,min=3"`
		Age     int    `validatex:"max=120"`
		Address Address
	}

	err := validatex.Validate(Customer{Name: "Al", Age: 130, Address: Address{ZipCode: "ABC"}})

	var errs validatex.ValidationErrors
	if errors.As(err, &errs) {
		for _, e := range errs {
			fmt.Printf("%s %s: %s\n", e.Field, e.Reason, e.Message)
		}
	}
	// Output:
	// Name too_short: Property Name is too short. Minimal length is 3
	// Age too_big: Property Age value is too big. Maximal value is 120
	// Address.City required: Property Address.City must be set
	// Address.ZipCode pattern_mismatch: Property Address.ZipCode does not match regular expression: ^\d{5}$
}

func ExampleValidateWithErrx() {
	type Signup struct {
		Email string `validatex:"required,email"`
		Role  string `validatex:"oneof=admin user guest"`
	}

	if err := validatex.ValidateWithErrx(Signup{Email: "john@example.com", Role: "root"}); err != nil {
		fmt.Println(err.Code)
		fmt.Println(err.Message)
	}
	// Output:
	// VALIDATOR_INVALID_VALUE
	// Property Role must be one of: admin user guest
}
