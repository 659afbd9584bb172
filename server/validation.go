package server

import (
	stderrors "errors"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/penhub/penhub/models"
)

// trans renders gin binding failures as readable field messages.
var trans ut.Translator

func init() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	english := en.New()
	uni := ut.New(english, english)
	trans, _ = uni.GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(v, trans)
}

// translateBindingError turns validator field errors into a single
// human-readable error. Non-validation errors pass through unchanged.
func translateBindingError(err error) error {
	var validatorErrs validator.ValidationErrors
	if trans == nil || !stderrors.As(err, &validatorErrs) {
		return err
	}
	translated := models.TranslateError(validatorErrs, trans)
	msgs := make([]string, 0, len(translated))
	for _, e := range translated {
		msgs = append(msgs, e.Error())
	}
	return stderrors.New(strings.TrimSpace(strings.Join(msgs, " ")))
}
