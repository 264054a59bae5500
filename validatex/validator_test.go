package validatex

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Conversia-AI/craftable-convx/errx"
)

type testAddress struct {
	City string `validatex:"required,max=10"`
}

type testUser struct {
	Name    string  `validatex:"required,min=3,max=20"`
	Age     int     `validatex:"min=18,max=120"`
	Email   string  `validatex:"omitempty,email"`
	Code    string  `validatex:"omitempty,regex=^[A-Z]{2},[0-9]+$"`
	Role    string  `validatex:"omitempty,oneof=admin user"`
	Note    *string `validatex:"min=2"`
	Secret  string  `validatex:"-"`
	Address *testAddress
}

func validUser() testUser {
	return testUser{
		Name:    "alice",
		Age:     30,
		Email:   "alice@example.com",
		Code:    "AB,42",
		Role:    "admin",
		Address: &testAddress{City: "Lisbon"},
	}
}

func asValidationErrors(t *testing.T, err error) ValidationErrors {
	t.Helper()
	var verrs ValidationErrors
	require.True(t, errors.As(err, &verrs), "expected ValidationErrors, got %T", err)
	return verrs
}

func TestValidate_Valid(t *testing.T) {
	assert.NoError(t, Validate(validUser()))
	u := validUser()
	assert.NoError(t, Validate(&u))
}

func TestValidate_TooShortNamesField(t *testing.T) {
	u := validUser()
	u.Name = "al"

	verrs := asValidationErrors(t, Validate(u))
	require.Len(t, verrs, 1)
	assert.Equal(t, "Name", verrs[0].Field)
	assert.Equal(t, ReasonTooShort, verrs[0].Reason)
	assert.Equal(t, "Property Name is too short. Minimal length is 3", verrs[0].Message)
}

func TestValidate_TooBigNamesField(t *testing.T) {
	u := validUser()
	u.Age = 150

	verrs := asValidationErrors(t, Validate(u))
	require.Len(t, verrs, 1)
	assert.Equal(t, "Age", verrs[0].Field)
	assert.Equal(t, ReasonTooBig, verrs[0].Reason)
	assert.Equal(t, "Property Age value is too big. Maximal value is 120", verrs[0].Message)
}

func TestValidate_Reasons(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*testUser)
		field  string
		reason Reason
	}{
		{"missing name", func(u *testUser) { u.Name = "" }, "Name", ReasonRequired},
		{"long name", func(u *testUser) { u.Name = strings.Repeat("x", 21) }, "Name", ReasonTooLong},
		{"young", func(u *testUser) { u.Age = 17 }, "Age", ReasonTooLow},
		{"bad code", func(u *testUser) { u.Code = "ab,1" }, "Code", ReasonPatternMismatch},
		{"bad email", func(u *testUser) { u.Email = "nope" }, "Email", ReasonInvalid},
		{"bad role", func(u *testUser) { u.Role = "root" }, "Role", ReasonInvalid},
		{"short note", func(u *testUser) { n := "x"; u.Note = &n }, "Note", ReasonTooShort},
		{"nested city", func(u *testUser) { u.Address.City = "" }, "Address.City", ReasonRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := validUser()
			tt.mutate(&u)

			verrs := asValidationErrors(t, Validate(u))
			require.Len(t, verrs, 1)
			assert.Equal(t, tt.field, verrs[0].Field)
			assert.Equal(t, tt.reason, verrs[0].Reason)
			assert.Len(t, verrs.ByReason(tt.reason), 1)
		})
	}
}

func TestValidate_RequiredStopsFurtherRules(t *testing.T) {
	u := validUser()
	u.Name = ""

	verrs := asValidationErrors(t, Validate(u))
	assert.Len(t, verrs.Get("Name"), 1)
	assert.Empty(t, verrs.ByRule("min"))
}

func TestValidate_CollectsInDeclarationOrder(t *testing.T) {
	u := validUser()
	u.Name = "al"
	u.Age = 1
	u.Address.City = "Rio de Janeiro"

	verrs := asValidationErrors(t, Validate(u))
	require.Len(t, verrs, 3)
	assert.Equal(t, []string{"Name", "Age", "Address.City"}, []string{verrs[0].Field, verrs[1].Field, verrs[2].Field})
	assert.True(t, verrs.Has("Address.City"))
	assert.Contains(t, verrs.Error(), "3 validation errors")
}

func TestValidate_TransientFieldIgnored(t *testing.T) {
	type withTransient struct {
		Cache string `validatex:"-"`
	}
	assert.NoError(t, Validate(withTransient{}))
}

func TestValidate_NilPointerSkippedUnlessRequired(t *testing.T) {
	type optional struct {
		Nick *string `validatex:"min=3"`
	}
	type mandatory struct {
		Nick *string `validatex:"required,min=3"`
	}

	assert.NoError(t, Validate(optional{}))

	verrs := asValidationErrors(t, Validate(mandatory{}))
	require.Len(t, verrs, 1)
	assert.Equal(t, ReasonRequired, verrs[0].Reason)
}

func TestValidate_EmbeddedStructFlattened(t *testing.T) {
	type Base struct {
		ID string `validatex:"required,uuid"`
	}
	type entity struct {
		Base
		Title string `validatex:"required"`
	}

	verrs := asValidationErrors(t, Validate(entity{Base: Base{ID: "not-a-uuid"}, Title: "x"}))
	require.Len(t, verrs, 1)
	assert.Equal(t, "ID", verrs[0].Field)
	assert.Equal(t, "uuid", verrs[0].Rule)

	assert.NoError(t, Validate(entity{Base: Base{ID: "6ba7b810-9dad-11d1-80b4-00c04fd430c8"}, Title: "x"}))
}

func TestValidate_SelfReferenceTerminates(t *testing.T) {
	type node struct {
		Name string `validatex:"required"`
		Next *node
	}
	n := &node{Name: "a"}
	n.Next = n

	assert.NoError(t, Validate(n))
}

type selfChecked struct {
	Value int
}

func (s selfChecked) Validate() error {
	if s.Value < 0 {
		return ValidationErrors{NewValidationError("Value", "min", "0", s.Value, "")}
	}
	return nil
}

func TestValidate_Validatable(t *testing.T) {
	type holder struct {
		Inner selfChecked
	}

	assert.NoError(t, Validate(holder{Inner: selfChecked{Value: 1}}))

	verrs := asValidationErrors(t, Validate(holder{Inner: selfChecked{Value: -1}}))
	require.Len(t, verrs, 1)
	assert.Equal(t, "Inner.Value", verrs[0].Field)
	assert.Equal(t, ReasonTooLow, verrs[0].Reason)
}

func TestValidate_NotAStruct(t *testing.T) {
	err := Validate(42)
	require.Error(t, err)
	assert.True(t, errx.IsCode(err, ErrInvalidStruct))
}

func TestValidate_UnknownRule(t *testing.T) {
	type odd struct {
		X string `validatex:"shiny"`
	}
	verrs := asValidationErrors(t, Validate(odd{X: "a"}))
	require.Len(t, verrs, 1)
	assert.Equal(t, ReasonUnknownRule, verrs[0].Reason)
}

func TestParseTag(t *testing.T) {
	rules := parseTag("required, min=3,regex=^a,b$")
	require.Len(t, rules, 3)
	assert.Equal(t, rule{Name: "required"}, rules[0])
	assert.Equal(t, rule{Name: "min", Param: "3"}, rules[1])
	assert.Equal(t, rule{Name: "regex", Param: "^a,b$"}, rules[2])
}

func TestValidateField(t *testing.T) {
	assert.NoError(t, ValidateField("abc", "min=2,alpha"))
	assert.Error(t, ValidateField("ab1", "alpha"))
	assert.NoError(t, ValidateField("ab1", "alphanum"))
	assert.NoError(t, ValidateField("123", "numeric,len=3"))

	xerr := ValidateFieldWithErrx("zip", "12", "len=5")
	require.NotNil(t, xerr)
	assert.Equal(t, "zip", xerr.Details["field"])
}

func TestValidate_RegexMatchesWholeValue(t *testing.T) {
	type slug struct {
		Value string `validatex:"regex=[a-z]+"`
	}

	assert.NoError(t, Validate(slug{Value: "abc"}))

	err := Validate(slug{Value: "abc123!!"})
	require.Error(t, err)
	var errs ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Equal(t, ReasonPatternMismatch, errs[0].Reason)

	assert.Error(t, ValidateField("xabc", "regex=abc|def"))
	assert.NoError(t, ValidateField("def", "regex=abc|def"))
}

func TestCustomValidator(t *testing.T) {
	type product struct {
		SKU string `check:"even"`
	}

	v := NewValidator().
		WithTagName("check").
		RegisterRule("even", func(value any, _ string) bool {
			s, _ := value.(string)
			return len(s)%2 == 0
		})

	assert.NoError(t, v.Validate(product{SKU: "ab"}))

	verrs := asValidationErrors(t, v.Validate(product{SKU: "abc"}))
	require.Len(t, verrs, 1)
	assert.Equal(t, ReasonInvalid, verrs[0].Reason)
}

func TestCustomErrorMessage(t *testing.T) {
	type letters struct {
		Word string `validatex:"alpha"`
	}

	SetCustomErrorMessage("alpha", "{field} accepts letters only")
	t.Cleanup(func() {
		customErrorMessagesMu.Lock()
		delete(customErrorMessages, "alpha")
		customErrorMessagesMu.Unlock()
	})

	verrs := asValidationErrors(t, Validate(letters{Word: "a1"}))
	require.Len(t, verrs, 1)
	assert.Equal(t, "Word accepts letters only", verrs[0].Message)
}

func TestValidationErrors_ToErrx(t *testing.T) {
	u := validUser()
	u.Name = "al"

	xerr := ValidateWithErrx(u)
	require.NotNil(t, xerr)
	assert.Equal(t, ErrTooShort, xerr.Code)
	assert.Equal(t, errx.TypeValidation, xerr.Type)
	assert.Equal(t, 1, xerr.Details["error_count"])

	u.Age = 500
	xerr = ValidateWithErrx(u)
	require.NotNil(t, xerr)
	assert.Equal(t, ErrValidationFailed, xerr.Code)
	assert.Equal(t, 2, xerr.Details["field_count"])
}

func TestMustValidate(t *testing.T) {
	assert.NotPanics(t, func() { MustValidate(validUser()) })
	assert.Panics(t, func() { MustValidate(testUser{}) })
}

func TestValidateRequest(t *testing.T) {
	rec := httptest.NewRecorder()
	assert.False(t, ValidateRequest(rec, testUser{Name: "al"}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATOR_")

	rec = httptest.NewRecorder()
	assert.True(t, ValidateRequest(rec, validUser()))
}

func TestValidateRequestCustom(t *testing.T) {
	type ticket struct {
		Code string `check:"required,upper"`
	}

	v := NewValidator().WithTagName("check").
		RegisterRule("upper", func(value any, _ string) bool {
			s, ok := value.(string)
			return ok && s == strings.ToUpper(s)
		})

	rec := httptest.NewRecorder()
	assert.False(t, ValidateRequestCustom(rec, ticket{Code: "abc"}, v))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	assert.True(t, ValidateRequestCustom(rec, ticket{Code: "ABC"}, v))
}

func TestDecodeAndValidate(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"Name":"bob","Age":40}`))
	var u testUser
	require.NoError(t, DecodeAndValidate(req, &u))
	assert.Equal(t, "bob", u.Name)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"Name":`))
	err := DecodeAndValidate(req, &u)
	assert.True(t, errx.IsCode(err, ErrInvalidBody))

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"Name":"bo","Age":40}`))
	err = DecodeAndValidate(req, &u)
	assert.True(t, errx.IsCode(err, ErrTooShort))
}
