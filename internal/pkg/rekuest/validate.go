package rekuest

import (
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	"github.com/goccy/go-json"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"exusiai.dev/snippets/internal/pkg/apierr"
)

var (
	Validate = validator.New()

	translator ut.Translator
)

func init() {
	locale := en.New()
	translator, _ = ut.New(locale, locale).GetTranslator("en")

	// report json field names in violations
	Validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := enTranslations.RegisterDefaultTranslations(Validate, translator); err != nil {
		log.Warn().Err(err).Str("locale", "en").Msg("could not register translation")
	}
}

type ErrorResponse struct {
	Field     string `json:"field,omitempty"`
	Violation string `json:"violation"`
	Message   string `json:"message"`
}

// translate translates errors into ErrorResponses
func translate(ve validator.ValidationErrors) []*ErrorResponse {
	trans := []*ErrorResponse{}

	for _, fe := range ve {
		trans = append(trans, &ErrorResponse{
			Field:     fe.Namespace(),
			Violation: fe.Tag(),
			Message:   fe.Translate(translator),
		})
	}

	return trans
}

func validateStruct(s any) []*ErrorResponse {
	err := Validate.Struct(s)
	if err != nil {
		errs, ok := err.(validator.ValidationErrors)
		if !ok {
			panic(err)
		}
		return translate(errs)
	}
	return nil
}

// ParseJSON decodes the request body as JSON into dest regardless of the
// declared content type. Validation is left to the caller so it can order
// its checks. dest shall always be a pointer.
func ParseJSON(ctx *fiber.Ctx, dest any) error {
	if err := json.Unmarshal(ctx.Body(), dest); err != nil {
		return apierr.ErrInvalidReq.Msg("invalid request: body is not valid JSON: %s", err)
	}

	return nil
}

func ValidStruct(dest any) error {
	if err := validateStruct(dest); err != nil {
		return apierr.NewInvalidViolations(err)
	}

	return nil
}
