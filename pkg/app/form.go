package app

import (
	"strings"

	"github.com/gin-gonic/gin"
	ut "github.com/go-playground/universal-translator"
	val "github.com/go-playground/validator/v10"
)

// ValidError 单个字段的校验错误
type ValidError struct {
	Key     string
	Message string
}

type ValidErrors []*ValidError

func (v *ValidError) Error() string {
	return v.Message
}

func (v ValidErrors) Error() string {
	return strings.Join(v.Errors(), ",")
}

func (v ValidErrors) Errors() []string {
	var errs []string
	for _, err := range v {
		errs = append(errs, err.Error())
	}
	return errs
}

func (v ValidErrors) ErrorsToString() string {
	return strings.Join(v.Errors(), ",")
}

func (v ValidErrors) Maps() map[string]string {
	m := make(map[string]string, len(v))
	for _, err := range v {
		m[err.Key] = err.Message
	}
	return m
}

func (v ValidErrors) MapsToString() string {
	var sb strings.Builder
	for _, err := range v {
		if sb.Len() > 0 {
			sb.WriteString(";")
		}
		sb.WriteString(err.Key)
		sb.WriteString(":")
		sb.WriteString(err.Message)
	}
	return sb.String()
}

// BindAndValid binds the request body and translates validation errors
// with the translator stored in the context by the lang middleware
// BindAndValid 绑定请求参数并使用语言中间件注入的翻译器翻译校验错误
func BindAndValid(c *gin.Context, v interface{}) (bool, ValidErrors) {
	var errs ValidErrors
	err := c.ShouldBind(v)
	if err != nil {
		verrs, isValid := err.(val.ValidationErrors)
		transValue, exist := c.Get("trans")
		if !isValid || !exist {
			errs = append(errs, &ValidError{
				Key:     "body",
				Message: err.Error(),
			})
			return false, errs
		}
		trans, _ := transValue.(ut.Translator)
		for key, value := range verrs.Translate(trans) {
			errs = append(errs, &ValidError{
				Key:     key,
				Message: value,
			})
		}
		return false, errs
	}

	return true, nil
}
