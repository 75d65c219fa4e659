package validator

import (
	"reflect"
	"sync"

	"github.com/haierkeys/note-keeper-service/pkg/util"

	"github.com/gin-gonic/gin/binding"
	val "github.com/go-playground/validator/v10"
)

// CustomValidator implements gin binding.StructValidator with custom rules
// CustomValidator 实现 gin 的 binding.StructValidator 接口，注册自定义规则
type CustomValidator struct {
	once     sync.Once
	validate *val.Validate
}

func NewCustomValidator() *CustomValidator {
	return &CustomValidator{}
}

func (v *CustomValidator) ValidateStruct(obj interface{}) error {
	if reflect.ValueOf(obj).Kind() == reflect.Ptr && reflect.ValueOf(obj).IsNil() {
		return nil
	}
	v.lazyinit()
	return v.validate.Struct(obj)
}

func (v *CustomValidator) Engine() interface{} {
	v.lazyinit()
	return v.validate
}

func (v *CustomValidator) lazyinit() {
	v.once.Do(func() {
		v.validate = val.New()
		v.validate.SetTagName("binding")

		// username 用户名规则：字母数字下划线，3-20 位
		_ = v.validate.RegisterValidation("username", func(fl val.FieldLevel) bool {
			return util.IsValidUsername(fl.Field().String())
		})

		// strongpassword 密码强度规则：至少 8 位，含大小写字母和数字
		_ = v.validate.RegisterValidation("strongpassword", func(fl val.FieldLevel) bool {
			return util.IsStrongPassword(fl.Field().String())
		})
	})
}

// 确保接口实现
var _ binding.StructValidator = (*CustomValidator)(nil)
