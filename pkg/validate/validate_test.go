package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type registerForm struct {
	Name     string `json:"name" validate:"required,max=20"`
	Password string `json:"password" validate:"required,min=6"`
	Phone    string `json:"phone" validate:"nullable,digits=7"`
}

func TestRequiredAndLength(t *testing.T) {
	errs := Struct(&registerForm{Name: "", Password: "ab"})
	assert.Equal(t, "The name field is required.", errs["name"])
	assert.Equal(t, "The password must be at least 6 characters.", errs["password"])

	errs = Struct(&registerForm{Name: "asha", Password: "secret123"})
	assert.False(t, HasErrors(errs))

	errs = Struct(&registerForm{
		Name:     "a-name-well-over-twenty-characters",
		Password: "secret123",
	})
	assert.Contains(t, errs["name"], "must not exceed 20 characters")
}

func TestNullableSkipsWhenEmpty(t *testing.T) {
	errs := Struct(&registerForm{Name: "asha", Password: "secret123", Phone: ""})
	assert.False(t, HasErrors(errs))

	errs = Struct(&registerForm{Name: "asha", Password: "secret123", Phone: "555x100"})
	assert.Equal(t, "The phone must be 7 digits.", errs["phone"])

	errs = Struct(&registerForm{Name: "asha", Password: "secret123", Phone: "5550100"})
	assert.False(t, HasErrors(errs))
}

func TestInRuleKeepsItsParameterList(t *testing.T) {
	type form struct {
		Role string `json:"role" validate:"nullable,in=User,Admin"`
	}

	assert.False(t, HasErrors(Struct(&form{Role: "User"})))
	assert.False(t, HasErrors(Struct(&form{Role: "Admin"})))
	assert.False(t, HasErrors(Struct(&form{Role: ""})))
	assert.Equal(t, "The selected role is invalid.",
		Struct(&form{Role: "Owner"})["role"])
}

func TestPointerFields(t *testing.T) {
	type form struct {
		Price *float64 `json:"price" validate:"gte=0"`
	}

	assert.False(t, HasErrors(Struct(&form{})))

	ok := 12.5
	assert.False(t, HasErrors(Struct(&form{Price: &ok})))

	bad := -1.0
	assert.Equal(t, "The price must be greater than or equal to 0.",
		Struct(&form{Price: &bad})["price"])
}

func TestNumericAndDate(t *testing.T) {
	type form struct {
		Amount string `json:"amount" validate:"numeric"`
		Visit  string `json:"visit" validate:"date"`
	}

	errs := Struct(&form{Amount: "12.5", Visit: "2026-09-01"})
	assert.False(t, HasErrors(errs))

	errs = Struct(&form{Amount: "twelve", Visit: "someday"})
	assert.Equal(t, "The amount field must be a number.", errs["amount"])
	assert.Equal(t, "The visit is not a valid date.", errs["visit"])
}

func TestFirstFailingRuleWins(t *testing.T) {
	type form struct {
		Code string `json:"code" validate:"required,digits=4,max=4"`
	}

	errs := Struct(&form{Code: ""})
	assert.Equal(t, "The code field is required.", errs["code"])

	errs = Struct(&form{Code: "12a4"})
	assert.Equal(t, "The code must be 4 digits.", errs["code"])
}
