// Package validatex provides struct validation through field tags with error handling via errx.
//
// Rules are declared in the validatex tag and evaluated in declaration order.
// Every failure is collected into ValidationErrors, each entry carrying the
// dotted field path, the rule, its parameter and a Reason that tells callers
// which constraint was violated (too_short, too_big, pattern_mismatch, ...).
//
//	type Address struct {
//		City string `validatex:"required,max=64"`
//	}
//
//	type User struct {
//		Username string   `validatex:"required,min=3,max=50"`
//		Email    string   `validatex:"required,email"`
//		Age      int      `validatex:"min=18,max=120"`
//		Code     string   `validatex:"regex=^[A-Z]{2},[0-9]+$"`
//		Address  *Address // validated recursively as Address.City
//		Cache    string   `validatex:"-"`
//	}
//
//	if err := validatex.Validate(user); err != nil {
//		var verrs validatex.ValidationErrors
//		if errors.As(err, &verrs) {
//			for _, e := range verrs.ByReason(validatex.ReasonTooShort) {
//				fmt.Println(e.Message) // Property Username is too short. Minimal length is 3
//			}
//		}
//	}
//
// Available rules:
//
//   - required: value must be set and non-empty
//   - omitempty: skip the remaining rules for zero values
//   - min=N, max=N: length for strings and collections, value for numbers
//   - len=N: exact length (or value)
//   - oneof=V1 V2 V3: value must be one of the listed values
//   - regex=PATTERN: must be the last rule, the pattern runs to the end of the tag
//   - email, url: checked with go-playground/validator
//   - uuid: string parsed with google/uuid
//   - alpha, alphanum, numeric: character classes
//
// Nil pointers are skipped unless the field is required. Custom rules are
// registered globally with RegisterValidationFunc or per validator with
// CustomValidator.RegisterRule.
package validatex
