package repuestos

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/shopspring/decimal"
)

// FieldError describes one field that failed validation.
type FieldError struct {
	// Field is the wire (JSON) name of the field.
	Field string `json:"field"           yaml:"field"`
	// Rule is the failed rule, e.g. "email" or "gt".
	Rule string `json:"rule"            yaml:"rule"`
	// Param is the rule parameter, e.g. "0" for gt=0.
	Param string `json:"param,omitempty" yaml:"param,omitempty"`
}

func (f FieldError) String() string {
	if f.Param == "" {
		return fmt.Sprintf("%s: %s", f.Field, f.Rule)
	}

	return fmt.Sprintf("%s: %s=%s", f.Field, f.Rule, f.Param)
}

// ValidationError is returned when a request payload is rejected before it is sent.
type ValidationError struct {
	Fields []FieldError `json:"fields" yaml:"fields"`
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, field := range e.Fields {
		parts = append(parts, field.String())
	}

	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, ", "))
}

// Unwrap makes errors.Is(err, ErrValidation) hold.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// HasField reports whether the named wire field failed validation.
func (e *ValidationError) HasField(name string) bool {
	for _, field := range e.Fields {
		if field.Field == name {
			return true
		}
	}

	return false
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func requestValidator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}

			if name == "" {
				return field.Name
			}

			return name
		})

		v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
			if d, ok := field.Interface().(decimal.Decimal); ok {
				f, _ := d.Float64()

				return f
			}

			return nil
		}, decimal.Decimal{})

		if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
			panic(fmt.Sprintf("registering notblank validation: %v", err))
		}

		v.RegisterStructValidation(equivalenciaCreateStructLevel, EquivalenciaCreateRequest{})
		v.RegisterStructValidation(equivalenciaUpdateStructLevel, EquivalenciaUpdateRequest{})

		validate = v
	})

	return validate
}

func sameOEMCode(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

func equivalenciaCreateStructLevel(sl validator.StructLevel) {
	req, ok := sl.Current().Interface().(EquivalenciaCreateRequest)
	if !ok {
		return
	}

	if strings.TrimSpace(req.CodigoOEMOriginal) != "" && sameOEMCode(req.CodigoOEMOriginal, req.CodigoOEMEquivalente) {
		sl.ReportError(req.CodigoOEMEquivalente, "codigo_OEM_equivalente", "CodigoOEMEquivalente", "nefield", "codigo_OEM_original")
	}
}

// An update may change both codes at once; they still have to differ.
func equivalenciaUpdateStructLevel(sl validator.StructLevel) {
	req, ok := sl.Current().Interface().(EquivalenciaUpdateRequest)
	if !ok {
		return
	}

	if req.CodigoOEMOriginal != nil && req.CodigoOEMEquivalente != nil &&
		sameOEMCode(*req.CodigoOEMOriginal, *req.CodigoOEMEquivalente) {
		sl.ReportError(*req.CodigoOEMEquivalente, "codigo_OEM_equivalente", "CodigoOEMEquivalente", "nefield", "codigo_OEM_original")
	}
}

// Validate checks a create or update request against its validate tags.
// It returns nil or a *ValidationError.
func Validate(request interface{}) error {
	if request == nil {
		return nil
	}

	err := requestValidator().Struct(request)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return fmt.Errorf("validating request: %w", err)
	}

	result := &ValidationError{Fields: make([]FieldError, 0, len(validationErrs))}
	for _, fieldErr := range validationErrs {
		result.Fields = append(result.Fields, FieldError{
			Field: fieldErr.Field(),
			Rule:  fieldErr.Tag(),
			Param: fieldErr.Param(),
		})
	}

	return result
}
